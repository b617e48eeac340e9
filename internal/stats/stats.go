// Package stats aggregates completion and distribution statistics over
// a task collection. Pure and deterministic.
package stats

import (
	"time"

	"github.com/dpramesti/remind/internal/task"
)

// Stats is the aggregate view of a task collection.
type Stats struct {
	Total          int
	Completed      int
	Pending        int
	OverdueCount   int
	CompletionRate float64 // completed/total, 0 for an empty collection
	ByCategory     map[string]int
	ByPriority     map[task.Priority]int
}

// Compute aggregates the collection relative to now (needed for the
// overdue count).
func Compute(tasks []*task.Task, now time.Time) Stats {
	s := Stats{
		ByCategory: make(map[string]int),
		ByPriority: make(map[task.Priority]int),
	}

	for _, t := range tasks {
		s.Total++
		if t.Completed {
			s.Completed++
		} else {
			s.Pending++
		}
		if t.IsOverdue(now) {
			s.OverdueCount++
		}
		s.ByCategory[t.Category]++
		s.ByPriority[t.Priority]++
	}

	if s.Total > 0 {
		s.CompletionRate = float64(s.Completed) / float64(s.Total)
	}
	return s
}

// Trends breaks down completed work by category.
type Trends struct {
	TotalCompleted         int
	CompletedByCategory    map[string]int
	MostProductiveCategory string
}

// ComputeTrends analyzes completed tasks. The most productive category
// is the one with the most completions; empty when nothing is done yet.
func ComputeTrends(tasks []*task.Task) Trends {
	tr := Trends{CompletedByCategory: make(map[string]int)}

	for _, t := range tasks {
		if !t.Completed {
			continue
		}
		tr.TotalCompleted++
		tr.CompletedByCategory[t.Category]++
	}

	best := 0
	for cat, n := range tr.CompletedByCategory {
		if n > best || (n == best && cat < tr.MostProductiveCategory) {
			best = n
			tr.MostProductiveCategory = cat
		}
	}
	return tr
}
