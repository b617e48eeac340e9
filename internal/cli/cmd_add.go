package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dpramesti/remind/internal/manager"
	"github.com/dpramesti/remind/internal/task"
	"github.com/dpramesti/remind/internal/wizard"
)

// newAddCmd creates the add command
func newAddCmd() *cobra.Command {
	var (
		description string
		dateStr     string
		timeStr     string
		priorityStr string
		category    string
		recurStr    string
		every       int
		interactive bool
	)

	cmd := &cobra.Command{
		Use:     "add [title]",
		Aliases: []string{"new"},
		Short:   "Add a new task",
		Long: `Add a task with a deadline. With --interactive (or no arguments),
an interactive wizard collects the fields instead.

Example:
  remind add "Submit thesis draft" --date 2026-09-01 --time 17:00 --priority high
  remind add "Water plants" --date 2026-08-26 --recur daily
  remind add -i`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			var req manager.CreateRequest
			if interactive || len(args) == 0 {
				req, err = wizard.Run(a.cfg.DefaultCategory)
				if err != nil {
					return err
				}
			} else {
				req, err = buildRequest(args[0], description, dateStr, timeStr,
					priorityStr, category, recurStr, every)
				if err != nil {
					return err
				}
			}
			if req.Category == "" {
				req.Category = a.cfg.DefaultCategory
			}

			t, err := a.mgr.Create(req)
			if err != nil {
				return err
			}

			fmt.Printf("Added %s: %s (due %s, %s)\n",
				shortID(t.ID), t.Title, t.Deadline.Format("2006-01-02 15:04"), t.Priority)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "desc", "D", "", "task description")
	cmd.Flags().StringVarP(&dateStr, "date", "d", "", "deadline date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&timeStr, "time", "t", "", "deadline time (HH:MM, optional)")
	cmd.Flags().StringVarP(&priorityStr, "priority", "p", "", "priority: high, medium, low (default medium)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "category label")
	cmd.Flags().StringVar(&recurStr, "recur", "", "recurrence: daily, weekly, monthly")
	cmd.Flags().IntVar(&every, "every", 1, "repeat every N intervals (with --recur)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "use the interactive wizard")
	return cmd
}

// buildRequest assembles a create request from flag values.
func buildRequest(title, description, dateStr, timeStr, priorityStr, category, recurStr string, every int) (manager.CreateRequest, error) {
	var req manager.CreateRequest

	if dateStr == "" {
		return req, fmt.Errorf("--date is required (or use --interactive)")
	}
	deadline, err := task.ParseDeadline(dateStr, timeStr)
	if err != nil {
		return req, err
	}

	priority, err := task.ParsePriority(priorityStr)
	if err != nil {
		return req, err
	}

	req = manager.CreateRequest{
		Title:       title,
		Description: description,
		Deadline:    deadline,
		Priority:    priority,
		Category:    category,
	}

	if recurStr != "" {
		rec := task.Recurrence(strings.ToLower(recurStr))
		if !task.IsValidRecurrence(rec) {
			return req, fmt.Errorf("unknown recurrence %q (want daily, weekly or monthly)", recurStr)
		}
		req.Recurring = true
		req.Recurrence = rec
		req.Every = every
	}

	return req, nil
}
