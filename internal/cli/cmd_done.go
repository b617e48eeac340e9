package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dpramesti/remind/internal/task"
)

// newDoneCmd creates the done command
func newDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "done <id>",
		Aliases: []string{"complete"},
		Short:   "Mark a task as completed",
		Long: `Mark a task completed. Completing a recurring task schedules its
next occurrence automatically.

Example:
  remind done 3f2a`,
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

			done, err := a.mgr.Complete(t.ID, time.Now())
			if err != nil {
				return err
			}

			fmt.Printf("Completed: %s\n", done.Title)
			if done.Kind == task.KindRecurring {
				fmt.Printf("Next occurrence scheduled for %s\n",
					done.NextDeadline().Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}
