package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	v := viper.New()
	ConfigureViper(v, "")

	config, err := LoadConfig(v)
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), config)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
output:
  precision: 3
  format: json
log:
  level: debug
  json: true
`)

	v := viper.New()
	ConfigureViper(v, path)

	config, err := LoadConfig(v)
	require.NoError(t, err)
	require.Equal(t, 3, config.Output.Precision)
	require.Equal(t, FormatJSON, config.Output.Format)
	require.Equal(t, "debug", config.Log.Level)
	require.True(t, config.Log.JSON)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "output:\n  precision: 2\n")

	v := viper.New()
	ConfigureViper(v, path)

	config, err := LoadConfig(v)
	require.NoError(t, err)
	require.Equal(t, 2, config.Output.Precision)
	require.Equal(t, FormatText, config.Output.Format)
	require.Equal(t, "info", config.Log.Level)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := writeConfig(t, "output:\n  precision: 2\n")
	t.Setenv("VECMATH_OUTPUT_PRECISION", "5")
	t.Setenv("VECMATH_LOG_LEVEL", "warn")

	v := viper.New()
	ConfigureViper(v, path)

	config, err := LoadConfig(v)
	require.NoError(t, err)
	require.Equal(t, 5, config.Output.Precision)
	require.Equal(t, "warn", config.Log.Level)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	v := viper.New()
	ConfigureViper(v, filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := LoadConfig(v)
	require.Error(t, err)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"precision too low", "output:\n  precision: -2\n"},
		{"precision too high", "output:\n  precision: 40\n"},
		{"bad format", "output:\n  format: xml\n"},
		{"bad level", "log:\n  level: loud\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			ConfigureViper(v, writeConfig(t, tt.body))

			_, err := LoadConfig(v)
			require.ErrorContains(t, err, "invalid config")
		})
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	want := DefaultConfig()
	want.Output.Precision = 4
	want.Log.Level = "error"
	require.NoError(t, SaveConfig(want, path))

	v := viper.New()
	ConfigureViper(v, path)
	got, err := LoadConfig(v)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestSaveConfigRejectsInvalid(t *testing.T) {
	config := DefaultConfig()
	config.Output.Format = "csv"
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.Error(t, SaveConfig(config, path))
	require.NoFileExists(t, path)
}

func TestGetConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := GetConfigPath()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".vecmath", "config.yaml"), path)
}

func TestParseLogLevel(t *testing.T) {
	lvl, err := ParseLogLevel("DEBUG")
	require.NoError(t, err)
	require.Equal(t, zerolog.DebugLevel, lvl)

	_, err = ParseLogLevel("")
	require.Error(t, err)

	_, err = ParseLogLevel("chatty")
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(LogConfig{Level: "warn", JSON: true}, &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "k", 1)
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")

	_, err = NewLogger(LogConfig{Level: "nope"}, &buf)
	require.Error(t, err)
}
