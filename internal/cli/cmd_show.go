package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	remerrors "github.com/dpramesti/remind/internal/errors"
	"github.com/dpramesti/remind/internal/manager"
	"github.com/dpramesti/remind/internal/task"
)

// newShowCmd creates the show command
func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show task details",
		Long: `Show full details of one task. The id may be abbreviated to any
unique prefix.

Example:
  remind show 3f2a`,
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

			now := time.Now()
			color := colorEnabled(a.cfg)

			fmt.Println(styleHeader.Render(t.Title))
			if t.Description != "" {
				fmt.Println(t.Description)
			}
			fmt.Println()
			fmt.Printf("  id:        %s\n", t.ID)
			fmt.Printf("  deadline:  %s\n", t.Deadline.Format("2006-01-02 15:04"))
			fmt.Printf("  priority:  %s\n", t.Priority)
			fmt.Printf("  category:  %s\n", t.Category)
			fmt.Printf("  urgency:   %s\n", urgencyLabel(t.Urgency(now), color))
			if t.Kind == task.KindRecurring {
				fmt.Printf("  repeats:   every %d %s, next would be %s\n",
					t.Every, t.Recurrence, t.NextDeadline().Format("2006-01-02"))
			}
			fmt.Printf("  created:   %s\n", t.CreatedAt.Format("2006-01-02 15:04"))
			if t.CompletedAt != nil {
				fmt.Printf("  completed: %s\n", t.CompletedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}

// resolveTask finds a task by full id or unique id prefix.
func resolveTask(mgr *manager.Manager, arg string) (*task.Task, error) {
	if t, err := mgr.Get(arg); err == nil {
		return t, nil
	}

	var match *task.Task
	for _, t := range mgr.Tasks() {
		if strings.HasPrefix(t.ID, arg) {
			if match != nil {
				return nil, fmt.Errorf("id prefix %q is ambiguous", arg)
			}
			match = t
		}
	}
	if match == nil {
		return nil, remerrors.ErrTaskNotFound(arg)
	}
	return match, nil
}
