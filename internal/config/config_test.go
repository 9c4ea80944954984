package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"mixtape/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a temporary YAML config file
func createTestYAML(t *testing.T, content string) string {
	t.Helper()
	tmpFile, err := os.CreateTemp(t.TempDir(), "config-*.yaml")
	require.NoError(t, err)
	_, err = tmpFile.WriteString(content)
	require.NoError(t, err)
	err = tmpFile.Close()
	require.NoError(t, err)
	return tmpFile.Name()
}

const validYAML = `
files:
  patterns: ["*.mp3", "*.wav"]
combine:
  silence_ms: 1500
  format: "wav"
settings:
  debug: true
theme:
  picked: "#FF00FF"
`

const invalidSyntaxYAML = `
combine:
  silence_ms: [not
`

func TestDefaults(t *testing.T) {
	cfg := config.New()

	assert.Equal(t, []string{"*.mp3"}, cfg.Files.Patterns)
	assert.Equal(t, 3000, cfg.Combine.SilenceMs)
	assert.Equal(t, "mp3", cfg.Combine.Format)
	assert.Equal(t, "320k", cfg.Combine.Bitrate)
	assert.False(t, cfg.Settings.Debug)
}

func TestLoadConfigFileMergesWithDefaults(t *testing.T) {
	path := createTestYAML(t, validYAML)

	cfg, err := config.LoadConfigFile(path)
	require.NoError(t, err)

	// Overridden values
	assert.Equal(t, []string{"*.mp3", "*.wav"}, cfg.Files.Patterns)
	assert.Equal(t, 1500, cfg.Combine.SilenceMs)
	assert.Equal(t, "wav", cfg.Combine.Format)
	assert.True(t, cfg.Settings.Debug)
	assert.Equal(t, "#FF00FF", cfg.Theme.Picked)

	// Defaults preserved for fields the file doesn't set
	assert.Equal(t, "320k", cfg.Combine.Bitrate)
	assert.Equal(t, "#73F59F", cfg.Theme.Focused)
}

func TestLoadConfigFileMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.New(), cfg)
}

func TestLoadConfigFileInvalidSyntax(t *testing.T) {
	path := createTestYAML(t, invalidSyntaxYAML)

	_, err := config.LoadConfigFile(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := config.New()
	cfg.Combine.SilenceMs = 500
	cfg.Combine.Format = "wav"

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, cfg.Save(path))

	loaded, err := config.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, 500, loaded.Combine.SilenceMs)
	assert.Equal(t, "wav", loaded.Combine.Format)
}
