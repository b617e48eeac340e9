package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// newCleanupCmd creates the cleanup command
func newCleanupCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Remove old completed tasks",
		Long: `Delete completed tasks whose completion is older than the given
number of days.

Example:
  remind cleanup
  remind cleanup --days 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			removed, err := a.mgr.CleanupCompleted(time.Now(), days)
			if err != nil {
				return err
			}

			if removed == 0 {
				fmt.Println("Nothing to clean up.")
				return nil
			}
			fmt.Printf("Removed %d completed task(s) older than %d days\n", removed, days)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 30, "age threshold in days")
	return cmd
}
