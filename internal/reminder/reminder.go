// Package reminder classifies tasks into urgency buckets relative to a
// reference instant. Everything here is a pure function over a task
// slice and a time: no state, safe to call repeatedly with different
// instants.
package reminder

import (
	"sort"
	"time"

	"github.com/dpramesti/remind/internal/task"
)

// Buckets holds pending tasks grouped by urgency. A task appears in at
// most one bucket; tasks further out than the upcoming window and
// completed tasks appear in none.
type Buckets struct {
	Overdue  []*task.Task
	DueToday []*task.Task
	Upcoming []*task.Task
}

// Options tweaks classification output.
type Options struct {
	// PrioritizedOrdering sorts each bucket by priority (high first),
	// then soonest deadline, instead of deadline order.
	PrioritizedOrdering bool
}

// Classify groups pending tasks by urgency relative to now, each bucket
// ordered by soonest deadline.
func Classify(tasks []*task.Task, now time.Time) Buckets {
	return ClassifyWith(tasks, now, Options{})
}

// ClassifyWith is Classify with explicit options.
func ClassifyWith(tasks []*task.Task, now time.Time, opts Options) Buckets {
	var b Buckets
	for _, t := range tasks {
		switch t.Urgency(now) {
		case task.UrgencyOverdue:
			b.Overdue = append(b.Overdue, t)
		case task.UrgencyDueToday:
			b.DueToday = append(b.DueToday, t)
		case task.UrgencyUpcoming:
			b.Upcoming = append(b.Upcoming, t)
		}
	}

	for _, bucket := range [][]*task.Task{b.Overdue, b.DueToday, b.Upcoming} {
		sortBucket(bucket, opts.PrioritizedOrdering)
	}
	return b
}

// Summary aggregates bucket counts and completion state for a daily
// overview.
type Summary struct {
	Date                time.Time
	OverdueCount        int
	DueTodayCount       int
	UpcomingCount       int
	TotalPending        int
	TotalCompleted      int
	HighPriorityPending int
	CompletionRate      float64
	TodayTasks          []*task.Task
}

// Summarize builds the daily summary for the given instant.
func Summarize(tasks []*task.Task, now time.Time) Summary {
	b := Classify(tasks, now)
	s := Summary{
		Date:          now,
		OverdueCount:  len(b.Overdue),
		DueTodayCount: len(b.DueToday),
		UpcomingCount: len(b.Upcoming),
		TodayTasks:    b.DueToday,
	}

	for _, t := range tasks {
		if t.Completed {
			s.TotalCompleted++
			continue
		}
		s.TotalPending++
		if t.Priority == task.PriorityHigh {
			s.HighPriorityPending++
		}
	}

	if total := s.TotalPending + s.TotalCompleted; total > 0 {
		s.CompletionRate = float64(s.TotalCompleted) / float64(total)
	}
	return s
}

// DayOutlook describes one day of the weekly outlook.
type DayOutlook struct {
	Date            time.Time
	IsToday         bool
	Tasks           []*task.Task
	HasHighPriority bool
}

// WeeklyOutlook returns a 7-day view of tasks due on each day, starting
// at now's date.
func WeeklyOutlook(tasks []*task.Task, now time.Time) []DayOutlook {
	outlook := make([]DayOutlook, 0, 7)
	for i := 0; i < 7; i++ {
		day := now.AddDate(0, 0, i)
		d := DayOutlook{Date: day, IsToday: i == 0}
		for _, t := range tasks {
			if t.IsDueOn(day) {
				d.Tasks = append(d.Tasks, t)
				if t.Priority == task.PriorityHigh {
					d.HasHighPriority = true
				}
			}
		}
		sortBucket(d.Tasks, false)
		outlook = append(outlook, d)
	}
	return outlook
}

func sortBucket(tasks []*task.Task, prioritized bool) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if prioritized {
			if a.Priority != b.Priority {
				return a.Priority < b.Priority
			}
			return a.Deadline.Before(b.Deadline)
		}
		if !a.Deadline.Equal(b.Deadline) {
			return a.Deadline.Before(b.Deadline)
		}
		return a.Priority < b.Priority
	})
}
