// Package config provides configuration management for remind.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	remerrors "github.com/dpramesti/remind/internal/errors"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = "config.yaml"
	// RemindDir is the data directory name under the user's home.
	RemindDir = ".remind"
	// DataFileName is the default JSON data file name.
	DataFileName = "tasks.json"
	// DBFileName is the SQLite data file name.
	DBFileName = "tasks.db"
)

// StoreConfig selects and locates the persistence backend.
type StoreConfig struct {
	// Mode is "file" (JSON, default) or "sqlite".
	Mode string `yaml:"mode"`
	// Path overrides the data file location. Empty means
	// <data_dir>/tasks.json or <data_dir>/tasks.db depending on mode.
	Path string `yaml:"path,omitempty"`
}

// Config represents the remind configuration.
type Config struct {
	// DataDir is where remind keeps its data and config.
	DataDir string `yaml:"data_dir"`

	// Store selects the persistence backend.
	Store StoreConfig `yaml:"store"`

	// UpcomingDays is the default window for the upcoming listing.
	UpcomingDays int `yaml:"upcoming_days"`

	// DefaultCategory is applied to tasks created without one.
	DefaultCategory string `yaml:"default_category"`

	// Color controls styled output: "auto" (default), "always", "never".
	Color string `yaml:"color"`
}

// Default returns the configuration defaults. The data directory is
// ~/.remind, falling back to the working directory when the home
// directory cannot be resolved.
func Default() *Config {
	dir := RemindDir
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, RemindDir)
	} else {
		slog.Warn("could not resolve home directory, using working directory", "error", err)
	}

	return &Config{
		DataDir:         dir,
		Store:           StoreConfig{Mode: "file"},
		UpcomingDays:    7,
		DefaultCategory: "general",
		Color:           "auto",
	}
}

// Load reads config from the given path, merged over defaults.
// A missing file returns the defaults unchanged; a malformed file is an
// error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	switch c.Store.Mode {
	case "", "file", "sqlite":
	default:
		return remerrors.ErrConfigInvalid("store.mode",
			fmt.Sprintf("must be \"file\" or \"sqlite\", got %q", c.Store.Mode))
	}

	if c.UpcomingDays < 1 {
		return remerrors.ErrConfigInvalid("upcoming_days", "must be at least 1")
	}

	switch c.Color {
	case "", "auto", "always", "never":
	default:
		return remerrors.ErrConfigInvalid("color",
			fmt.Sprintf("must be \"auto\", \"always\" or \"never\", got %q", c.Color))
	}

	return nil
}

// ConfigPath returns the config file path inside the data directory.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.DataDir, ConfigFileName)
}

// StorePath resolves the data file path for the configured store mode.
func (c *Config) StorePath() string {
	if c.Store.Path != "" {
		return c.Store.Path
	}
	if c.Store.Mode == "sqlite" {
		return filepath.Join(c.DataDir, DBFileName)
	}
	return filepath.Join(c.DataDir, DataFileName)
}

// Save writes the config to its path inside the data directory.
func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.MkdirAll(c.DataDir, 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	if err := os.WriteFile(c.ConfigPath(), data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
