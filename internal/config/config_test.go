package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_WritesDefaultsOnFirstRun(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "home")
	t.Setenv(HomeEnv, dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	path, err := ConfigPath()
	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.DirExists(t, filepath.Join(dir, "db"))
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(HomeEnv, dir)

	content := `
default_sort = "most-liked"
log_level = "debug"
extra_categories = ["Game Development"]
extra_tech_tags = ["Bevy", "Godot"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "most-liked", cfg.DefaultSort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "1", cfg.CurrentMember)
	assert.Equal(t, []string{"Game Development"}, cfg.ExtraCategories)
	assert.Equal(t, []string{"Bevy", "Godot"}, cfg.ExtraTechTags)
}

func TestLoad_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(HomeEnv, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("default_sort = "), 0644))

	_, err := Load()
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv(HomeEnv, t.TempDir())
	require.NoError(t, EnsureDirectories())

	cfg := DefaultConfig()
	cfg.CurrentMember = "4"
	cfg.ExtraCategories = []string{"Embedded"}
	require.NoError(t, Save(cfg))

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestPaths(t *testing.T) {
	t.Setenv(HomeEnv, "/tmp/devboard-test")

	db, err := DatabasePath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/devboard-test/db/devboard.sqlite", db)

	logPath, err := LogPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/devboard-test/devboard.log", logPath)
}
