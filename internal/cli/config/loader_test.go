package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revet-dev/revet/internal/cli/config"
	"github.com/revet-dev/revet/pkg/core"
	"github.com/revet-dev/revet/pkg/review"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "revet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	cfg, err := config.LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, review.DefaultMaxFileLines, cfg.MaxFileLines)
	assert.Equal(t, review.DefaultMaxComponentLines, cfg.MaxComponentLines)
	assert.Equal(t, config.DefaultOutput, cfg.OutputFormat)
	assert.False(t, cfg.Verbose)
	assert.Same(t, cfg, config.GetCurrentConfig())
}

func TestLoadConfigFromFile(t *testing.T) {
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	path := writeConfigFile(t, `
max_file_lines: 200
exclude:
  - generated
disabled:
  - JS04
severity:
  PY11: info
`)

	cfg, err := config.LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 200, cfg.MaxFileLines)
	assert.Equal(t, []string{"generated"}, cfg.Exclude)
	assert.Equal(t, []string{"JS04"}, cfg.Disabled)
	assert.Equal(t, "info", cfg.Severity["PY11"])
	assert.Equal(t, path, config.GetConfigFileUsed())
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	path := writeConfigFile(t, "max_file_lines: 200\n")
	t.Setenv("REVET_MAX_FILE_LINES", "321")

	cfg, err := config.LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 321, cfg.MaxFileLines)
}

func TestLoadConfigFlagsWin(t *testing.T) {
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	t.Setenv("REVET_OUTPUT", "markdown")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "", "")
	require.NoError(t, flags.Set("output", "json"))

	cfg, err := config.LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.OutputFormat)
}

func TestLoadConfigUnchangedFlagIgnored(t *testing.T) {
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "", "")

	cfg, err := config.LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultOutput, cfg.OutputFormat, "unset flag must not mask the default")
}

func TestLoadConfigBadFile(t *testing.T) {
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	path := writeConfigFile(t, "max_file_lines: [not: valid\n")
	_, err := config.LoadConfig(path, nil)
	require.Error(t, err)
}

func TestReviewConfigConversion(t *testing.T) {
	cfg := &config.Config{
		MaxFileLines: 100,
		Exclude:      []string{"gen"},
		Disabled:     []string{"JS04", "PY11"},
		Severity:     map[string]string{"SQ01": "high", "bogus": "nonsense"},
		Workers:      3,
	}

	rc := cfg.ReviewConfig()
	assert.Equal(t, 100, rc.MaxFileLines)
	assert.Equal(t, review.DefaultMaxComponentLines, rc.MaxComponentLines, "zero falls back to default")
	assert.Contains(t, rc.ExcludeDirs, "gen")
	assert.True(t, rc.IsDisabled("JS04"))
	assert.True(t, rc.IsDisabled("PY11"))
	assert.Equal(t, 3, rc.Workers)
	assert.Equal(t, core.SeverityHigh, rc.GetSeverity("SQ01", core.SeverityMedium))
	assert.Equal(t, core.SeverityMedium, rc.GetSeverity("bogus", core.SeverityMedium),
		"unknown severity strings are ignored")
}
