package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.False(t, cfg.Logging.DebugMode)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "catena-logs", cfg.Logging.Dir)
}

func TestLoadParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catena.yaml")
	data := `
logging:
  debug_mode: true
  level: debug
  dir: /tmp/catena
  categories:
    hierarchy: true
    kernel: false
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Logging.DebugMode)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/catena", cfg.Logging.Dir)
	assert.True(t, cfg.Logging.IsCategoryEnabled("hierarchy"))
	assert.False(t, cfg.Logging.IsCategoryEnabled("kernel"))
	// Unlisted categories stay enabled.
	assert.True(t, cfg.Logging.IsCategoryEnabled("cache"))
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catena.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging: ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CATENA_DEBUG", "true")
	t.Setenv("CATENA_LOG_LEVEL", "warn")
	t.Setenv("CATENA_LOG_DIR", "/tmp/elsewhere")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.True(t, cfg.Logging.DebugMode)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "/tmp/elsewhere", cfg.Logging.Dir)
}

func TestCategoriesDisabledWithoutDebugMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Categories = map[string]bool{"hierarchy": true}
	assert.False(t, cfg.Logging.IsCategoryEnabled("hierarchy"))
}
