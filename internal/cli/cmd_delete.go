package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newDeleteCmd creates the delete command
func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Long: `Remove a task permanently.

Example:
  remind rm 3f2a`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			t, err := resolveTask(a.mgr, args[0])
			if err != nil {
				return err
			}

			if err := a.mgr.Delete(t.ID); err != nil {
				return err
			}

			fmt.Printf("Deleted %s: %s\n", shortID(t.ID), t.Title)
			return nil
		},
	}
}
