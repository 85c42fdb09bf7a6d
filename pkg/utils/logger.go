package utils

import (
	"io"

	"cosmossdk.io/log"
)

// NewLogger builds the tool logger from cfg, writing to w
func NewLogger(cfg LogConfig, w io.Writer) (log.Logger, error) {
	lvl, err := ParseLogLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	opts := []log.Option{log.LevelOption(lvl), log.ColorOption(false)}
	if cfg.JSON {
		opts = append(opts, log.OutputJSONOption())
	}

	return log.NewLogger(w, opts...), nil
}
