package cli

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/dpramesti/remind/internal/stats"
	"github.com/dpramesti/remind/internal/task"
)

// newStatsCmd creates the stats command
func newStatsCmd() *cobra.Command {
	var trends bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show task statistics",
		Long: `Show completion rate and breakdowns by category and priority.

Example:
  remind stats
  remind stats --trends`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			tasks := a.mgr.Tasks()
			s := stats.Compute(tasks, time.Now())

			fmt.Println(styleHeader.Render("Task statistics"))
			fmt.Printf("  total:      %d\n", s.Total)
			fmt.Printf("  completed:  %d\n", s.Completed)
			fmt.Printf("  pending:    %d\n", s.Pending)
			fmt.Printf("  overdue:    %d\n", s.OverdueCount)
			fmt.Printf("  completion: %.0f%%\n", s.CompletionRate*100)

			if len(s.ByCategory) > 0 {
				cats := make([]string, 0, len(s.ByCategory))
				for cat := range s.ByCategory {
					cats = append(cats, cat)
				}
				sort.Strings(cats)

				fmt.Println("\nBy category:")
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				for _, cat := range cats {
					fmt.Fprintf(w, "  %s\t%d\n", cat, s.ByCategory[cat])
				}
				w.Flush()
			}

			fmt.Println("\nBy priority:")
			for _, p := range task.ValidPriorities() {
				fmt.Printf("  %-7s %d\n", p, s.ByPriority[p])
			}

			if trends {
				tr := stats.ComputeTrends(tasks)
				fmt.Println("\nProductivity:")
				fmt.Printf("  completed total: %d\n", tr.TotalCompleted)
				if tr.MostProductiveCategory != "" {
					fmt.Printf("  best category:   %s (%d done)\n",
						tr.MostProductiveCategory,
						tr.CompletedByCategory[tr.MostProductiveCategory])
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&trends, "trends", false, "include productivity trends")
	return cmd
}
