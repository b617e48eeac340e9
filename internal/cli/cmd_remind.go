package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dpramesti/remind/internal/reminder"
)

// newRemindCmd creates the remind command
func newRemindCmd() *cobra.Command {
	var (
		urgent bool
		weekly bool
		smart  bool
	)

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Show reminders",
		Long: `Show the daily reminder, or the urgent/weekly view.

Example:
  remind remind
  remind remind --urgent
  remind remind --weekly
  remind remind --smart`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			tasks := a.mgr.Tasks()
			now := time.Now()

			switch {
			case urgent:
				fmt.Print(reminder.UrgentMessage(tasks, now))
			case weekly:
				fmt.Print(reminder.WeeklyMessage(tasks, now))
			default:
				fmt.Print(reminder.DailyMessage(tasks, now))
			}

			if smart {
				recs := reminder.Recommendations(tasks, now)
				if len(recs) > 0 {
					fmt.Println("\nRecommendations:")
					for _, r := range recs {
						fmt.Printf("  - %s\n", r)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&urgent, "urgent", false, "show only overdue and due-today tasks")
	cmd.Flags().BoolVar(&weekly, "weekly", false, "show the 7-day outlook")
	cmd.Flags().BoolVar(&smart, "smart", false, "append recommendations")
	return cmd
}
