package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. VECMATH_OUTPUT_PRECISION
	EnvPrefix = "VECMATH"

	FormatText = "text"
	FormatJSON = "json"

	configDirName = ".vecmath"
	configName    = "config"
	configType    = "yaml"
	maxPrecision  = 17
)

// Config represents the tool configuration
type Config struct {
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// OutputConfig controls how results are printed
type OutputConfig struct {
	// Precision is the number of digits after the decimal point; -1 prints
	// the shortest representation that round-trips.
	Precision int    `yaml:"precision" mapstructure:"precision"`
	Format    string `yaml:"format" mapstructure:"format"`
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
	JSON  bool   `yaml:"json" mapstructure:"json"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Precision: -1,
			Format:    FormatText,
		},
		Log: LogConfig{
			Level: "info",
			JSON:  false,
		},
	}
}

// ConfigDir returns the directory searched first for config.yaml
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configDirName), nil
}

// GetConfigPath returns the path to the default config file
func GetConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configName+"."+configType), nil
}

// ConfigureViper points v at cfgFile, or at the default search paths when
// cfgFile is empty, and registers defaults and environment overrides
func ConfigureViper(v *viper.Viper, cfgFile string) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if dir, err := ConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
		v.SetConfigName(configName)
		v.SetConfigType(configType)
	}

	def := DefaultConfig()
	v.SetDefault("output.precision", def.Output.Precision)
	v.SetDefault("output.format", def.Output.Format)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.json", def.Log.JSON)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// LoadConfig reads the configuration v was pointed at. A missing file in the
// search paths is not an error; defaults and environment still apply.
func LoadConfig(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// SaveConfig writes config as YAML to path, creating parent directories
func SaveConfig(config *Config, path string) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if config.Output.Precision < -1 || config.Output.Precision > maxPrecision {
		return fmt.Errorf("output precision must be between -1 and %d, got %d", maxPrecision, config.Output.Precision)
	}

	switch config.Output.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid output format: %q", config.Output.Format)
	}

	if _, err := ParseLogLevel(config.Log.Level); err != nil {
		return err
	}

	return nil
}

// ParseLogLevel converts a level name such as "debug" or "warn"
func ParseLogLevel(level string) (zerolog.Level, error) {
	if strings.TrimSpace(level) == "" {
		return zerolog.NoLevel, fmt.Errorf("log level cannot be empty")
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}
