package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// newSearchCmd creates the search command
func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search tasks by title or description",
		Long: `Find tasks whose title or description contains the query,
case-insensitively.

Example:
  remind search exam`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			tasks := a.mgr.Search(args[0])
			if len(tasks) == 0 {
				fmt.Printf("No tasks matching %q\n", args[0])
				return nil
			}

			printTaskTable(tasks, time.Now(), colorEnabled(a.cfg))
			return nil
		},
	}
}
