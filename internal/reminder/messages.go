package reminder

import (
	"fmt"
	"strings"
	"time"

	"github.com/dpramesti/remind/internal/task"
)

// Display caps so a noisy day doesn't flood the terminal.
const (
	maxTodayLines  = 5
	maxUrgentLines = 10
)

// DailyMessage renders the daily reminder as plain text.
func DailyMessage(tasks []*task.Task, now time.Time) string {
	s := Summarize(tasks, now)

	var b strings.Builder
	fmt.Fprintf(&b, "Daily reminder for %s\n", now.Format("Monday, January 2 2006"))

	if s.OverdueCount > 0 {
		fmt.Fprintf(&b, "\nOverdue: %d task(s) need attention\n", s.OverdueCount)
	}

	if len(s.TodayTasks) > 0 {
		fmt.Fprintf(&b, "\nToday (%d):\n", len(s.TodayTasks))
		for i, t := range s.TodayTasks {
			if i == maxTodayLines {
				fmt.Fprintf(&b, "  ... and %d more\n", len(s.TodayTasks)-maxTodayLines)
				break
			}
			fmt.Fprintf(&b, "  - %s (%s)\n", t.Title, t.Deadline.Format(task.TimeShortLayout))
		}
	}

	if s.UpcomingCount > 0 {
		fmt.Fprintf(&b, "\nUpcoming: %d task(s) in the next 3 days\n", s.UpcomingCount)
	}

	fmt.Fprintf(&b, "\nCompletion rate: %.0f%%\n", s.CompletionRate*100)
	return b.String()
}

// UrgentMessage renders overdue and due-today tasks, highest priority
// first.
func UrgentMessage(tasks []*task.Task, now time.Time) string {
	b := ClassifyWith(tasks, now, Options{PrioritizedOrdering: true})
	urgent := append(append([]*task.Task(nil), b.Overdue...), b.DueToday...)
	if len(urgent) == 0 {
		return "No urgent tasks right now.\n"
	}

	var sb strings.Builder
	sb.WriteString("Urgent tasks:\n")
	for i, t := range urgent {
		if i == maxUrgentLines {
			fmt.Fprintf(&sb, "... and %d more\n", len(urgent)-maxUrgentLines)
			break
		}
		status := "DUE TODAY"
		if t.IsOverdue(now) {
			status = "OVERDUE"
		}
		fmt.Fprintf(&sb, "%-9s %s (due %s)\n", status, t.Title,
			t.Deadline.Format("2006-01-02 15:04"))
	}
	return sb.String()
}

// WeeklyMessage renders the 7-day outlook.
func WeeklyMessage(tasks []*task.Task, now time.Time) string {
	var b strings.Builder
	b.WriteString("Weekly outlook:\n")
	for _, day := range WeeklyOutlook(tasks, now) {
		name := day.Date.Format("Monday")
		if day.IsToday {
			name += " (today)"
		}
		marker := ""
		if day.HasHighPriority {
			marker = " [high priority]"
		}
		fmt.Fprintf(&b, "%-18s %d task(s)%s\n", name, len(day.Tasks), marker)
	}
	return b.String()
}

// Recommendations suggests habit fixes based on the current collection.
// Thresholds follow simple heuristics over completion rate, overdue
// count and the category/priority spread.
func Recommendations(tasks []*task.Task, now time.Time) []string {
	var recs []string

	total, completed, overdue, high, other := 0, 0, 0, 0, 0
	categories := map[string]bool{}
	for _, t := range tasks {
		total++
		if t.Completed {
			completed++
		}
		if t.IsOverdue(now) {
			overdue++
		}
		if t.Priority == task.PriorityHigh {
			high++
		} else {
			other++
		}
		categories[t.Category] = true
	}
	if total == 0 {
		return nil
	}

	if float64(completed)/float64(total) < 0.7 {
		recs = append(recs, "Consider breaking large tasks into smaller ones")
	}
	if overdue > 3 {
		recs = append(recs, "Many tasks are overdue; reschedule or reprioritize them")
	}
	if len(categories) == 1 {
		recs = append(recs, "Categorize tasks to organize your workload")
	}
	if high > other {
		recs = append(recs, "Most tasks are high priority; check whether they all truly are")
	}
	return recs
}
