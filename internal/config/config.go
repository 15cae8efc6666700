// ABOUTME: Workout configuration management with backend selection
// ABOUTME: Handles settings, the storage factory, and the home origin

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harper/workout/internal/kv"
	"github.com/harper/workout/internal/models"
)

// Config stores workout configuration.
type Config struct {
	// Backend selects the storage backend: "badger" (default) or "sqlite".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for data storage. Badger puts its
	// database directory here, SQLite puts workout.db here. Supports ~
	// expansion. Defaults to ~/.local/share/workout.
	DataDir string `json:"data_dir,omitempty"`

	// HomeLat/HomeLng are the default map origin used when a workout is
	// logged without explicit coordinates.
	HomeLat *float64 `json:"home_lat,omitempty"`
	HomeLng *float64 `json:"home_lng,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "badger".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "badger"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return defaultDataDir()
	}
	return ExpandPath(c.DataDir)
}

// HomeOrigin returns the configured default coordinates, if set.
func (c *Config) HomeOrigin() (models.Coords, bool) {
	if c.HomeLat == nil || c.HomeLng == nil {
		return models.Coords{}, false
	}
	return models.Coords{Lat: *c.HomeLat, Lng: *c.HomeLng}, true
}

// defaultDataDir returns the default XDG data directory for workout.
func defaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "workout")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenMedium creates the key-value medium for the configured backend.
func (c *Config) OpenMedium() (kv.Medium, error) {
	dataDir := c.GetDataDir()

	switch backend := c.GetBackend(); backend {
	case "badger":
		return kv.OpenBadger(filepath.Join(dataDir, "badger"))
	case "sqlite":
		return kv.OpenSQLite(filepath.Join(dataDir, "workout.db"))
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "workout", "config.json")
}

// Load reads config from disk. A missing file yields the defaults.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
