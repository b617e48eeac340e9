package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dpramesti/remind/internal/manager"
	"github.com/dpramesti/remind/internal/task"
)

// newEditCmd creates the edit command
func newEditCmd() *cobra.Command {
	var (
		title       string
		description string
		dateStr     string
		timeStr     string
		priorityStr string
		category    string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit task fields",
		Long: `Update fields of an existing task. Only the provided flags change.

Example:
  remind edit 3f2a --date 2026-09-15
  remind edit 3f2a --title "Submit final thesis" --priority high`,
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

			var p manager.Patch
			if cmd.Flags().Changed("title") {
				p.Title = &title
			}
			if cmd.Flags().Changed("desc") {
				p.Description = &description
			}
			if cmd.Flags().Changed("date") || cmd.Flags().Changed("time") {
				if dateStr == "" {
					dateStr = t.Deadline.Format(task.DateLayout)
				}
				deadline, err := task.ParseDeadline(dateStr, timeStr)
				if err != nil {
					return err
				}
				p.Deadline = &deadline
			}
			if cmd.Flags().Changed("priority") {
				pr, err := task.ParsePriority(priorityStr)
				if err != nil {
					return err
				}
				p.Priority = &pr
			}
			if cmd.Flags().Changed("category") {
				p.Category = &category
			}

			updated, err := a.mgr.Update(t.ID, p)
			if err != nil {
				return err
			}

			fmt.Printf("Updated %s: %s (due %s, %s)\n",
				shortID(updated.ID), updated.Title,
				updated.Deadline.Format("2006-01-02 15:04"), updated.Priority)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVarP(&description, "desc", "D", "", "new description")
	cmd.Flags().StringVarP(&dateStr, "date", "d", "", "new deadline date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&timeStr, "time", "t", "", "new deadline time (HH:MM)")
	cmd.Flags().StringVarP(&priorityStr, "priority", "p", "", "new priority")
	cmd.Flags().StringVarP(&category, "category", "c", "", "new category")
	return cmd
}
