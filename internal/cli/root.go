// Package cli implements the remind command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	remerrors "github.com/dpramesti/remind/internal/errors"
)

var (
	cfgFile string
	verbose bool
	noColor bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "remind",
	Short: "Personal task and deadline tracker",
	Long: `remind tracks tasks with deadlines, priorities and categories, and
tells you what is urgent, due today, or coming up.

Quick start:
  remind init                          Initialize the data directory
  remind add "Submit report" -d 2026-09-01
  remind list                          Show all tasks
  remind remind                        Show today's reminder
  remind done <id>                     Mark a task completed`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Structured errors are rendered with
// their what/why/fix message.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}
	if re := remerrors.AsRemindError(err); re != nil {
		fmt.Fprintln(os.Stderr, re.UserMessage())
	} else {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func init() {
	cobra.OnInitialize(initViper)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.remind/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add subcommands
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newEditCmd())
	rootCmd.AddCommand(newDoneCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newRemindCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newCleanupCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// initViper reads the config file and REMIND_* environment variables.
func initViper() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("$HOME/.remind")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("REMIND")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if verbose {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}
