package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/classkit/rollcall/log"
)

const (
	ConfigFileName = "config.json"
	TOMLFileName   = "config.toml"

	defaultSyncIntervalMin = 30
	defaultThumbnailSize   = 96
)

// GetConfigDir returns the path to the application's configuration directory,
// XDG-compliant ~/.config/rollcall/.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "rollcall"), nil
}

// Config represents the application configuration.
type Config struct {
	// RepositoryURL is the base URL of the photo repository manifest endpoint.
	RepositoryURL string `json:"repository_url,omitempty" toml:"repository_url,omitempty"`
	// RepositoryToken is the bearer token sent with repository requests.
	RepositoryToken string `json:"repository_token,omitempty" toml:"repository_token,omitempty"`
	// SyncIntervalMinutes is how often the background sync reminder fires.
	SyncIntervalMinutes int `json:"sync_interval_minutes" toml:"sync_interval_minutes,omitempty"`
	// PhotoDir is where downloaded and assigned photos live. Empty means
	// <config dir>/photos.
	PhotoDir string `json:"photo_dir,omitempty" toml:"photo_dir,omitempty"`
	// ThumbnailSize is the pixel edge used when the UI reports photo metadata.
	ThumbnailSize int `json:"thumbnail_size" toml:"thumbnail_size,omitempty"`
	// NotificationsEnabled controls desktop notifications when a sync finishes.
	NotificationsEnabled *bool `json:"notifications_enabled,omitempty" toml:"notifications_enabled,omitempty"`
	// TelemetryEnabled controls whether crash reporting via Sentry is active.
	// Defaults to true when not set.
	TelemetryEnabled *bool `json:"telemetry_enabled,omitempty" toml:"telemetry_enabled,omitempty"`
	// AnimateUI controls toast slide animation (disabled by default).
	AnimateUI bool `json:"animate_ui,omitempty" toml:"animate_ui,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	trueVal := true
	return &Config{
		SyncIntervalMinutes:  defaultSyncIntervalMin,
		ThumbnailSize:        defaultThumbnailSize,
		NotificationsEnabled: &trueVal,
	}
}

// AreNotificationsEnabled returns whether desktop notifications are enabled.
// Defaults to true when the field is not set.
func (c *Config) AreNotificationsEnabled() bool {
	if c.NotificationsEnabled == nil {
		return true
	}
	return *c.NotificationsEnabled
}

// IsTelemetryEnabled returns whether Sentry telemetry is enabled.
// Defaults to true when the field is not set.
func (c *Config) IsTelemetryEnabled() bool {
	if c.TelemetryEnabled == nil {
		return true
	}
	return *c.TelemetryEnabled
}

// ResolvePhotoDir returns the effective photo directory, creating it if needed.
func (c *Config) ResolvePhotoDir() (string, error) {
	dir := c.PhotoDir
	if dir == "" {
		configDir, err := GetConfigDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(configDir, "photos")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create photo directory: %w", err)
	}
	return dir, nil
}

// LoadConfig reads config.json from the config directory, creating it with
// defaults on first run, then overlays config.toml when present. Load never
// fails: any read or parse error falls back to defaults so a bad config file
// cannot keep the app from starting.
func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			defaultCfg := DefaultConfig()
			if saveErr := saveConfig(defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}
		log.WarningLog.Printf("failed to read config file: %v", err)
		return DefaultConfig()
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		log.ErrorLog.Printf("failed to parse config file: %v", err)
		return DefaultConfig()
	}
	applyTOMLOverlay(&config, filepath.Join(configDir, TOMLFileName))
	return &config
}

// applyTOMLOverlay merges config.toml into cfg. TOML is authority for the
// fields it sets; absent fields keep their JSON values.
func applyTOMLOverlay(cfg *Config, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WarningLog.Printf("failed to read TOML config: %v", err)
		}
		return
	}

	var overlay Config
	if err := toml.Unmarshal(data, &overlay); err != nil {
		log.WarningLog.Printf("failed to parse TOML config: %v", err)
		return
	}

	if overlay.RepositoryURL != "" {
		cfg.RepositoryURL = overlay.RepositoryURL
	}
	if overlay.RepositoryToken != "" {
		cfg.RepositoryToken = overlay.RepositoryToken
	}
	if overlay.SyncIntervalMinutes > 0 {
		cfg.SyncIntervalMinutes = overlay.SyncIntervalMinutes
	}
	if overlay.PhotoDir != "" {
		cfg.PhotoDir = overlay.PhotoDir
	}
	if overlay.ThumbnailSize > 0 {
		cfg.ThumbnailSize = overlay.ThumbnailSize
	}
	if overlay.NotificationsEnabled != nil {
		cfg.NotificationsEnabled = overlay.NotificationsEnabled
	}
	if overlay.TelemetryEnabled != nil {
		cfg.TelemetryEnabled = overlay.TelemetryEnabled
	}
	if overlay.AnimateUI {
		cfg.AnimateUI = true
	}
}

// saveConfig saves the configuration to disk.
func saveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// SaveConfig exports the saveConfig function for use by other packages.
func SaveConfig(config *Config) error {
	return saveConfig(config)
}
