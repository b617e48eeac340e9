// Package task provides the task model for remind.
package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind distinguishes the two task variants.
type Kind string

const (
	// KindRegular is a one-shot task: completing it is terminal.
	KindRegular Kind = "RegularTask"
	// KindRecurring is a repeating task: completing it spawns the next occurrence.
	KindRecurring Kind = "RecurringTask"
)

// ValidKinds returns all valid kind values.
func ValidKinds() []Kind {
	return []Kind{KindRegular, KindRecurring}
}

// IsValidKind returns true if the kind is a valid kind value.
func IsValidKind(k Kind) bool {
	switch k {
	case KindRegular, KindRecurring:
		return true
	default:
		return false
	}
}

// Priority represents the urgency/importance of a task.
// The numeric values are part of the persisted record contract.
type Priority int

const (
	PriorityHigh   Priority = 1
	PriorityMedium Priority = 2
	PriorityLow    Priority = 3
)

// ValidPriorities returns all valid priority values.
func ValidPriorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// IsValidPriority returns true if the priority is a valid priority value.
func IsValidPriority(p Priority) bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// String returns the priority as display text.
func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	case PriorityLow:
		return "low"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}

// ParsePriority converts user input (name or number) to a Priority.
// Empty input defaults to medium.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "high":
		return PriorityHigh, nil
	case "2", "medium", "":
		return PriorityMedium, nil
	case "3", "low":
		return PriorityLow, nil
	default:
		return 0, fmt.Errorf("unknown priority %q", s)
	}
}

// Recurrence is the unit by which a recurring task's deadline advances.
type Recurrence string

const (
	RecurDaily   Recurrence = "daily"
	RecurWeekly  Recurrence = "weekly"
	RecurMonthly Recurrence = "monthly"
)

// ValidRecurrences returns all valid recurrence values.
func ValidRecurrences() []Recurrence {
	return []Recurrence{RecurDaily, RecurWeekly, RecurMonthly}
}

// IsValidRecurrence returns true if the recurrence is a valid recurrence value.
func IsValidRecurrence(r Recurrence) bool {
	switch r {
	case RecurDaily, RecurWeekly, RecurMonthly:
		return true
	default:
		return false
	}
}

// Urgency classifies a task relative to a reference instant.
// Derived on demand, never persisted.
type Urgency string

const (
	UrgencyCompleted Urgency = "completed"
	UrgencyOverdue   Urgency = "overdue"
	UrgencyDueToday  Urgency = "due_today"
	UrgencyUpcoming  Urgency = "upcoming"
	UrgencyScheduled Urgency = "scheduled"
)

// UpcomingWindow is how far ahead of now a pending deadline counts as upcoming.
const UpcomingWindow = 72 * time.Hour

// DefaultCategory is used when a task is created without a category.
const DefaultCategory = "general"

// Task represents one deadline item.
type Task struct {
	// ID is the unique identifier, assigned at creation.
	ID string `yaml:"id" json:"id"`

	// Title is a short description of the task.
	Title string `yaml:"title" json:"title"`

	// Description is the full task description.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Deadline is the combined date+time the task is due, in local wall clock.
	Deadline time.Time `yaml:"deadline" json:"deadline"`

	// Priority indicates urgency/importance (1=high, 2=medium, 3=low).
	Priority Priority `yaml:"priority" json:"priority"`

	// Category is a free-text label (e.g. "college", "work", "personal").
	// Stored lowercased.
	Category string `yaml:"category" json:"category"`

	// Kind selects the task variant.
	Kind Kind `yaml:"kind" json:"kind"`

	// Completed marks the task as done.
	Completed bool `yaml:"completed" json:"completed"`

	// CreatedAt is when the task was created.
	CreatedAt time.Time `yaml:"created_at" json:"created_at"`

	// CompletedAt is set exactly once, when Completed flips to true.
	CompletedAt *time.Time `yaml:"completed_at,omitempty" json:"completed_at,omitempty"`

	// Recurrence and Every describe the repeat interval for recurring
	// tasks: the deadline advances by Every units per completion.
	// Zero values for regular tasks.
	Recurrence Recurrence `yaml:"recurrence,omitempty" json:"recurrence,omitempty"`
	Every      int        `yaml:"every,omitempty" json:"every,omitempty"`
}

// NewID generates a fresh task identifier.
func NewID() string {
	return uuid.NewString()
}

// New creates a regular task with the given title and deadline.
func New(title string, deadline time.Time) *Task {
	return &Task{
		ID:        NewID(),
		Title:     title,
		Deadline:  deadline,
		Priority:  PriorityMedium,
		Category:  DefaultCategory,
		Kind:      KindRegular,
		CreatedAt: time.Now(),
	}
}

// NewRecurring creates a recurring task advancing by every units of rec.
func NewRecurring(title string, deadline time.Time, rec Recurrence, every int) *Task {
	t := New(title, deadline)
	t.Kind = KindRecurring
	t.Recurrence = rec
	if every < 1 {
		every = 1
	}
	t.Every = every
	return t
}

// SetCategory normalizes and sets the category, falling back to the default.
func (t *Task) SetCategory(c string) {
	c = strings.ToLower(strings.TrimSpace(c))
	if c == "" {
		c = DefaultCategory
	}
	t.Category = c
}

// Urgency classifies the task relative to now.
func (t *Task) Urgency(now time.Time) Urgency {
	if t.Completed {
		return UrgencyCompleted
	}
	if t.Deadline.Before(now) {
		return UrgencyOverdue
	}
	if sameDay(t.Deadline, now) {
		return UrgencyDueToday
	}
	if t.Deadline.Sub(now) <= UpcomingWindow {
		return UrgencyUpcoming
	}
	return UrgencyScheduled
}

// IsOverdue returns true if the task is pending and past its deadline.
func (t *Task) IsOverdue(now time.Time) bool {
	return !t.Completed && t.Deadline.Before(now)
}

// IsDueOn returns true if the task's deadline falls on the given calendar day.
func (t *Task) IsDueOn(day time.Time) bool {
	return sameDay(t.Deadline, day)
}

// Complete marks the task done at the given instant. For recurring tasks
// it also returns the next pending occurrence with the deadline advanced
// by the recurrence interval; for regular tasks next is nil. Guarding
// against double completion is the caller's job.
func (t *Task) Complete(now time.Time) (next *Task) {
	t.Completed = true
	done := now
	t.CompletedAt = &done

	if t.Kind != KindRecurring {
		return nil
	}

	n := *t
	n.ID = NewID()
	n.Deadline = t.NextDeadline()
	n.Completed = false
	n.CompletedAt = nil
	n.CreatedAt = now
	return &n
}

// NextDeadline returns the deadline advanced by one recurrence interval.
// Monthly intervals use calendar month arithmetic, not a 30-day approximation.
// For regular tasks the deadline is returned unchanged.
func (t *Task) NextDeadline() time.Time {
	every := t.Every
	if every < 1 {
		every = 1
	}
	switch t.Recurrence {
	case RecurDaily:
		return t.Deadline.AddDate(0, 0, every)
	case RecurWeekly:
		return t.Deadline.AddDate(0, 0, 7*every)
	case RecurMonthly:
		return t.Deadline.AddDate(0, every, 0)
	default:
		return t.Deadline
	}
}

// Matches reports whether the query appears in the title or description,
// case-insensitively.
func (t *Task) Matches(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.Description), q)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
