package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withTempHome points the config directory at a throwaway home.
func withTempHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, defaultSyncIntervalMin, cfg.SyncIntervalMinutes)
	assert.Equal(t, defaultThumbnailSize, cfg.ThumbnailSize)
	assert.True(t, cfg.AreNotificationsEnabled())
	assert.True(t, cfg.IsTelemetryEnabled())
}

func TestLoadConfigFirstRunWritesDefaults(t *testing.T) {
	home := withTempHome(t)

	cfg := LoadConfig()
	require.NotNil(t, cfg)

	written := filepath.Join(home, ".config", "rollcall", ConfigFileName)
	_, err := os.Stat(written)
	assert.NoError(t, err, "first run must persist default config")
}

func TestLoadConfigRoundTrip(t *testing.T) {
	withTempHome(t)

	cfg := DefaultConfig()
	cfg.RepositoryURL = "https://photos.example.edu/manifest.json"
	cfg.SyncIntervalMinutes = 5
	require.NoError(t, SaveConfig(cfg))

	loaded := LoadConfig()
	assert.Equal(t, "https://photos.example.edu/manifest.json", loaded.RepositoryURL)
	assert.Equal(t, 5, loaded.SyncIntervalMinutes)
}

func TestLoadConfigCorruptFileFallsBackToDefaults(t *testing.T) {
	home := withTempHome(t)
	dir := filepath.Join(home, ".config", "rollcall")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{broken"), 0644))

	cfg := LoadConfig()
	assert.Equal(t, defaultSyncIntervalMin, cfg.SyncIntervalMinutes)
}

func TestTOMLOverlayWins(t *testing.T) {
	home := withTempHome(t)

	cfg := DefaultConfig()
	cfg.RepositoryURL = "https://json.example.edu/manifest.json"
	require.NoError(t, SaveConfig(cfg))

	dir := filepath.Join(home, ".config", "rollcall")
	tomlContent := `
repository_url = "https://toml.example.edu/manifest.json"
sync_interval_minutes = 10
animate_ui = true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, TOMLFileName), []byte(tomlContent), 0644))

	loaded := LoadConfig()
	assert.Equal(t, "https://toml.example.edu/manifest.json", loaded.RepositoryURL)
	assert.Equal(t, 10, loaded.SyncIntervalMinutes)
	assert.True(t, loaded.AnimateUI)
	// Fields absent from the overlay keep their JSON values.
	assert.Equal(t, defaultThumbnailSize, loaded.ThumbnailSize)
}

func TestTOMLOverlayBadFileIsIgnored(t *testing.T) {
	home := withTempHome(t)
	require.NoError(t, SaveConfig(DefaultConfig()))

	dir := filepath.Join(home, ".config", "rollcall")
	require.NoError(t, os.WriteFile(filepath.Join(dir, TOMLFileName), []byte("= broken ="), 0644))

	loaded := LoadConfig()
	assert.Equal(t, defaultSyncIntervalMin, loaded.SyncIntervalMinutes)
}

func TestResolvePhotoDirDefaultsUnderConfig(t *testing.T) {
	home := withTempHome(t)

	cfg := DefaultConfig()
	dir, err := cfg.ResolvePhotoDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "rollcall", "photos"), dir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestResolvePhotoDirExplicit(t *testing.T) {
	withTempHome(t)
	custom := filepath.Join(t.TempDir(), "shots")

	cfg := DefaultConfig()
	cfg.PhotoDir = custom
	dir, err := cfg.ResolvePhotoDir()
	require.NoError(t, err)
	assert.Equal(t, custom, dir)
}
