package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dpramesti/remind/internal/config"
	"github.com/dpramesti/remind/internal/storage"
)

// newInitCmd creates the init command
func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the remind data directory",
		Long: `Create the data directory and a default config file.

Example:
  remind init
  remind init --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if _, err := os.Stat(cfg.ConfigPath()); err == nil && !force {
				fmt.Printf("Already initialized at %s (use --force to rewrite the config)\n", cfg.DataDir)
				return nil
			}

			if err := cfg.Save(); err != nil {
				return err
			}

			// Touch the store so the first list works without a prior add.
			store, err := storage.New(storage.Mode(cfg.Store.Mode), cfg.StorePath())
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.Save(nil); err != nil {
				return err
			}

			fmt.Printf("Initialized remind in %s\n", cfg.DataDir)
			fmt.Printf("  store: %s (%s)\n", cfg.StorePath(), storeModeName(cfg))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "rewrite an existing config")
	return cmd
}

func storeModeName(cfg *config.Config) string {
	if cfg.Store.Mode == "" {
		return "file"
	}
	return cfg.Store.Mode
}
