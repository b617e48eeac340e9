package cli

import (
	"os"

	"github.com/spf13/viper"

	"github.com/dpramesti/remind/internal/config"
	remerrors "github.com/dpramesti/remind/internal/errors"
	"github.com/dpramesti/remind/internal/manager"
	"github.com/dpramesti/remind/internal/storage"
)

// app bundles the wired-up components behind a command.
type app struct {
	cfg   *config.Config
	store storage.Store
	mgr   *manager.Manager
}

// openApp loads config, opens the store and the manager. Fails with
// NOT_INITIALIZED when the data directory does not exist yet.
func openApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(cfg.DataDir); os.IsNotExist(err) {
		return nil, remerrors.ErrNotInitialized(cfg.DataDir)
	}

	store, err := storage.New(storage.Mode(cfg.Store.Mode), cfg.StorePath())
	if err != nil {
		return nil, err
	}

	mgr, err := manager.New(store)
	if err != nil {
		store.Close()
		return nil, err
	}

	return &app{cfg: cfg, store: store, mgr: mgr}, nil
}

// Close releases store resources.
func (a *app) Close() {
	_ = a.store.Close()
}

// loadConfig reads the config file merged over defaults, then applies
// viper overrides (flags take effect through viper's env binding).
func loadConfig() (*config.Config, error) {
	cfg := config.Default()

	path := cfgFile
	if path == "" {
		path = cfg.ConfigPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	// Environment overrides: REMIND_DATA_DIR, REMIND_STORE_MODE, REMIND_COLOR.
	if v := viper.GetString("data_dir"); v != "" {
		cfg.DataDir = v
	}
	if v := viper.GetString("store_mode"); v != "" {
		cfg.Store.Mode = v
	}
	if v := viper.GetString("color"); v != "" {
		cfg.Color = v
	}
	if noColor {
		cfg.Color = "never"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
