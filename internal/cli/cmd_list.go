package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/dpramesti/remind/internal/manager"
	"github.com/dpramesti/remind/internal/task"
)

// newListCmd creates the list command
func newListCmd() *cobra.Command {
	var (
		today       bool
		upcoming    bool
		overdue     bool
		pending     bool
		completed   bool
		category    string
		priorityStr string
		days        int
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Long: `List tasks, optionally narrowed to a scope.

Example:
  remind list
  remind list --today
  remind list --upcoming --days 3
  remind list --category college
  remind list --priority high`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			f := manager.Filter{Scope: manager.ScopeAll}
			switch {
			case today:
				f.Scope = manager.ScopeToday
			case upcoming:
				f.Scope = manager.ScopeUpcoming
				if days > 0 {
					f.Days = days
				} else {
					f.Days = a.cfg.UpcomingDays
				}
			case overdue:
				f.Scope = manager.ScopeOverdue
			case pending:
				f.Scope = manager.ScopePending
			case completed:
				f.Scope = manager.ScopeCompleted
			case category != "":
				f.Scope = manager.ScopeCategory
				f.Category = category
			case priorityStr != "":
				p, err := task.ParsePriority(priorityStr)
				if err != nil {
					return err
				}
				f.Scope = manager.ScopePriority
				f.Priority = p
			}

			tasks := a.mgr.List(f)
			if len(tasks) == 0 {
				fmt.Println("No tasks found. Create one with: remind add \"Your task\" --date YYYY-MM-DD")
				return nil
			}

			printTaskTable(tasks, time.Now(), colorEnabled(a.cfg))
			return nil
		},
	}

	cmd.Flags().BoolVar(&today, "today", false, "only tasks due today")
	cmd.Flags().BoolVar(&upcoming, "upcoming", false, "only pending tasks due in the next days")
	cmd.Flags().BoolVar(&overdue, "overdue", false, "only overdue tasks")
	cmd.Flags().BoolVar(&pending, "pending", false, "only pending tasks")
	cmd.Flags().BoolVar(&completed, "completed", false, "only completed tasks")
	cmd.Flags().StringVarP(&category, "category", "c", "", "only tasks in this category")
	cmd.Flags().StringVarP(&priorityStr, "priority", "p", "", "only tasks with this priority")
	cmd.Flags().IntVar(&days, "days", 0, "upcoming window in days (with --upcoming)")
	return cmd
}

// printTaskTable renders tasks in table format.
func printTaskTable(tasks []*task.Task, now time.Time, color bool) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDEADLINE\tPRI\tCATEGORY\tURGENCY\tTITLE")
	fmt.Fprintln(w, "──\t────────\t───\t────────\t───────\t─────")

	for _, t := range tasks {
		kindMark := ""
		if t.Kind == task.KindRecurring {
			kindMark = " ↻"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s%s\n",
			shortID(t.ID),
			t.Deadline.Format("2006-01-02 15:04"),
			t.Priority,
			t.Category,
			urgencyLabel(t.Urgency(now), color),
			truncate(t.Title, 40),
			kindMark)
	}

	w.Flush()
}
