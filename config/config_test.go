package config

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Empty(t, cfg.Sources.Paths, "default is the embedded corpus")
	assert.Contains(t, cfg.Sources.Extensions, ".md")
	assert.False(t, cfg.Watch.Enabled)
	assert.Equal(t, 500*time.Millisecond, cfg.Watch.DebounceDelay)
	assert.Equal(t, "info", cfg.Log.Level)
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.Level = "verbose"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Watch.DebounceDelay = -time.Second
	assert.Error(t, cfg.Validate())
}

func TestConfig_Merge(t *testing.T) {
	base := DefaultConfig()
	other := &Config{
		Sources: SourcesConfig{Paths: []string{"docs/**/*.md"}},
		Watch:   WatchConfig{Enabled: true, DebounceDelay: time.Second},
		Log:     LogConfig{Level: "debug"},
	}

	base.Merge(other)

	assert.Equal(t, []string{"docs/**/*.md"}, base.Sources.Paths)
	assert.True(t, base.Watch.Enabled)
	assert.Equal(t, time.Second, base.Watch.DebounceDelay)
	assert.Equal(t, "debug", base.Log.Level)
	// Unset fields keep defaults
	assert.Contains(t, base.Sources.Extensions, ".md")
}

func TestConfig_MergeNil(t *testing.T) {
	base := DefaultConfig()
	base.Merge(nil)
	assert.Equal(t, DefaultConfig(), base)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "guidekb.yaml")
	content := `sources:
  paths:
    - docs/guidelines.md
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"docs/guidelines.md"}, cfg.Sources.Paths)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Defaults survive for unset fields
	assert.Equal(t, 500*time.Millisecond, cfg.Watch.DebounceDelay)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile("/does/not/exist.yaml")
	require.Error(t, err)
	// The loader distinguishes a missing file from a broken one through the
	// wrapped error, so it must stay matchable
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestSaveToFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Sources.Paths = []string{"corpus/*.md"}
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Sources.Paths, loaded.Sources.Paths)
}

func TestSlogLevel(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())

	cfg.Log.Level = "debug"
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())

	cfg.Log.Level = "error"
	assert.Equal(t, slog.LevelError, cfg.SlogLevel())
}
