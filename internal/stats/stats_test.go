package stats

import (
	"testing"
	"time"

	"github.com/dpramesti/remind/internal/task"
)

var testNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.Local)

func mk(title, category string, pri task.Priority, deadline time.Time, done bool) *task.Task {
	t := task.New(title, deadline)
	t.SetCategory(category)
	t.Priority = pri
	if done {
		t.Complete(deadline)
	}
	return t
}

func TestCompute(t *testing.T) {
	tasks := []*task.Task{
		mk("a", "college", task.PriorityHigh, testNow.AddDate(0, 0, -1), false),
		mk("b", "college", task.PriorityMedium, testNow.AddDate(0, 0, 1), false),
		mk("c", "work", task.PriorityHigh, testNow.AddDate(0, 0, -2), true),
		mk("d", "home", task.PriorityLow, testNow.AddDate(0, 0, 3), true),
	}

	s := Compute(tasks, testNow)

	if s.Total != 4 {
		t.Errorf("Total = %d, want 4", s.Total)
	}
	if s.Completed != 2 || s.Pending != 2 {
		t.Errorf("Completed/Pending = %d/%d, want 2/2", s.Completed, s.Pending)
	}
	if s.CompletionRate != 0.5 {
		t.Errorf("CompletionRate = %f, want 0.5", s.CompletionRate)
	}
	// Task c is past its deadline but completed, so not overdue.
	if s.OverdueCount != 1 {
		t.Errorf("OverdueCount = %d, want 1", s.OverdueCount)
	}

	if s.ByCategory["college"] != 2 || s.ByCategory["work"] != 1 || s.ByCategory["home"] != 1 {
		t.Errorf("ByCategory = %v", s.ByCategory)
	}
	if s.ByPriority[task.PriorityHigh] != 2 || s.ByPriority[task.PriorityMedium] != 1 || s.ByPriority[task.PriorityLow] != 1 {
		t.Errorf("ByPriority = %v", s.ByPriority)
	}
}

func TestComputeEmpty(t *testing.T) {
	s := Compute(nil, testNow)

	if s.Total != 0 {
		t.Errorf("Total = %d, want 0", s.Total)
	}
	if s.CompletionRate != 0 {
		t.Errorf("CompletionRate = %f, want 0 for empty collection", s.CompletionRate)
	}
	if len(s.ByCategory) != 0 || len(s.ByPriority) != 0 {
		t.Errorf("maps not empty: %v %v", s.ByCategory, s.ByPriority)
	}
}

func TestCompletionRateBounds(t *testing.T) {
	allDone := []*task.Task{
		mk("a", "x", task.PriorityMedium, testNow, true),
		mk("b", "x", task.PriorityMedium, testNow, true),
	}
	if s := Compute(allDone, testNow); s.CompletionRate != 1.0 {
		t.Errorf("CompletionRate = %f, want 1.0", s.CompletionRate)
	}

	nonePending := []*task.Task{
		mk("a", "x", task.PriorityMedium, testNow.AddDate(0, 0, 1), false),
	}
	if s := Compute(nonePending, testNow); s.CompletionRate != 0 {
		t.Errorf("CompletionRate = %f, want 0", s.CompletionRate)
	}
}

func TestComputeTrends(t *testing.T) {
	tasks := []*task.Task{
		mk("a", "college", task.PriorityHigh, testNow, true),
		mk("b", "college", task.PriorityMedium, testNow, true),
		mk("c", "work", task.PriorityHigh, testNow, true),
		mk("d", "work", task.PriorityLow, testNow, false),
	}

	tr := ComputeTrends(tasks)

	if tr.TotalCompleted != 3 {
		t.Errorf("TotalCompleted = %d, want 3", tr.TotalCompleted)
	}
	if tr.CompletedByCategory["college"] != 2 || tr.CompletedByCategory["work"] != 1 {
		t.Errorf("CompletedByCategory = %v", tr.CompletedByCategory)
	}
	if tr.MostProductiveCategory != "college" {
		t.Errorf("MostProductiveCategory = %q, want college", tr.MostProductiveCategory)
	}
}

func TestComputeTrendsEmpty(t *testing.T) {
	tr := ComputeTrends(nil)
	if tr.TotalCompleted != 0 || tr.MostProductiveCategory != "" {
		t.Errorf("ComputeTrends(nil) = %+v", tr)
	}
}

func TestComputeTrendsTie(t *testing.T) {
	tasks := []*task.Task{
		mk("a", "beta", task.PriorityMedium, testNow, true),
		mk("b", "alpha", task.PriorityMedium, testNow, true),
	}

	tr := ComputeTrends(tasks)
	if tr.MostProductiveCategory != "alpha" {
		t.Errorf("MostProductiveCategory = %q, want alpha (lexical tie-break)", tr.MostProductiveCategory)
	}
}
