// Package export renders the task collection as a formatted text report.
package export

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dpramesti/remind/internal/stats"
	"github.com/dpramesti/remind/internal/task"
	"github.com/dpramesti/remind/internal/util"
)

// DefaultFilename returns a timestamped export file name.
func DefaultFilename(now time.Time) string {
	return fmt.Sprintf("task_export_%s.txt", now.Format("20060102_150405"))
}

// Write renders the report for the given tasks to w. Tasks are printed
// in the order given; callers pass the manager's sorted listing.
func Write(w io.Writer, tasks []*task.Task, now time.Time) error {
	s := stats.Compute(tasks, now)

	fmt.Fprintln(w, "REMIND - TASK EXPORT")
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintf(w, "Exported on: %s\n\n", now.Format("2006-01-02 15:04:05"))

	fmt.Fprintf(w, "Total tasks: %d\n", s.Total)
	fmt.Fprintf(w, "Completed:   %d\n", s.Completed)
	fmt.Fprintf(w, "Pending:     %d\n", s.Pending)
	fmt.Fprintf(w, "Overdue:     %d\n", s.OverdueCount)
	fmt.Fprintf(w, "Completion:  %.0f%%\n\n", s.CompletionRate*100)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TITLE\tDEADLINE\tPRIORITY\tCATEGORY\tSTATUS\tURGENCY")
	for _, t := range tasks {
		status := "pending"
		if t.Completed {
			status = "completed"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			t.Title,
			t.Deadline.Format("2006-01-02 15:04"),
			t.Priority,
			t.Category,
			status,
			t.Urgency(now))
	}
	return tw.Flush()
}

// WriteFile renders the report to a file. An empty path picks a
// timestamped name in the current directory. Returns the path written.
func WriteFile(path string, tasks []*task.Task, now time.Time) (string, error) {
	if path == "" {
		path = DefaultFilename(now)
	}

	var b strings.Builder
	if err := Write(&b, tasks, now); err != nil {
		return "", err
	}

	if err := util.AtomicWriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return filepath.Clean(path), nil
}
