package manager

import (
	"strings"
	"time"

	"github.com/dpramesti/remind/internal/task"
)

// Scope selects which tasks List returns.
type Scope string

const (
	ScopeAll       Scope = "all"
	ScopeToday     Scope = "today"
	ScopeUpcoming  Scope = "upcoming"
	ScopeOverdue   Scope = "overdue"
	ScopePending   Scope = "pending"
	ScopeCompleted Scope = "completed"
	ScopeCategory  Scope = "category"
	ScopePriority  Scope = "priority"
)

// Filter narrows List results. The zero value lists everything.
type Filter struct {
	Scope    Scope
	Days     int           // upcoming window, defaults to 7
	Category string        // for ScopeCategory
	Priority task.Priority // for ScopePriority
	Now      time.Time     // reference instant, defaults to time.Now()
}

// FilterAll matches every task.
var FilterAll = Filter{Scope: ScopeAll}

// List returns tasks matching the filter, ordered by deadline ascending,
// ties broken by priority (high first), then by creation time.
func (m *Manager) List(f Filter) []*task.Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := f.Now
	if now.IsZero() {
		now = time.Now()
	}
	days := f.Days
	if days <= 0 {
		days = 7
	}

	var out []*task.Task
	for _, t := range m.tasks {
		if matches(t, f, now, days) {
			out = append(out, t)
		}
	}
	sortTasks(out)
	return out
}

func matches(t *task.Task, f Filter, now time.Time, days int) bool {
	switch f.Scope {
	case ScopeAll, "":
		return true
	case ScopeToday:
		return !t.Completed && t.IsDueOn(now)
	case ScopeUpcoming:
		if t.Completed || t.Deadline.Before(now) {
			return false
		}
		return !t.Deadline.After(now.AddDate(0, 0, days))
	case ScopeOverdue:
		return t.IsOverdue(now)
	case ScopePending:
		return !t.Completed
	case ScopeCompleted:
		return t.Completed
	case ScopeCategory:
		return strings.EqualFold(t.Category, f.Category)
	case ScopePriority:
		return t.Priority == f.Priority
	default:
		return false
	}
}
