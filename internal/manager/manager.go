// Package manager owns the in-memory task collection and coordinates
// persistence. All mutating operations persist exactly once; a failed
// persist surfaces as PERSIST_FAILED and the in-memory change is kept
// (documented limitation: callers retry or accept divergence until the
// next successful save).
package manager

import (
	"sort"
	"strings"
	"sync"
	"time"

	remerrors "github.com/dpramesti/remind/internal/errors"
	"github.com/dpramesti/remind/internal/storage"
	"github.com/dpramesti/remind/internal/task"
)

// Manager owns the authoritative in-memory task set.
// A single coarse mutex linearizes all access, held across the store
// call on mutations.
type Manager struct {
	mu    sync.Mutex
	store storage.Store
	tasks []*task.Task
}

// New creates a manager backed by the given store and loads prior state.
func New(store storage.Store) (*Manager, error) {
	tasks, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Manager{store: store, tasks: tasks}, nil
}

// CreateRequest holds the fields for a new task.
type CreateRequest struct {
	Title       string
	Description string
	Deadline    time.Time
	Priority    task.Priority
	Category    string
	Recurring   bool
	Recurrence  task.Recurrence
	Every       int
}

// Create validates the request, builds the right variant, assigns a
// fresh id, appends it to the collection and persists.
func (m *Manager) Create(req CreateRequest) (*task.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var t *task.Task
	if req.Recurring {
		t = task.NewRecurring(req.Title, req.Deadline, req.Recurrence, req.Every)
	} else {
		t = task.New(req.Title, req.Deadline)
	}
	t.Description = req.Description
	if req.Priority != 0 {
		t.Priority = req.Priority
	}
	t.SetCategory(req.Category)

	if errs := t.Validate(); errs.HasErrors() {
		return nil, remerrors.ErrValidation(errs)
	}

	m.tasks = append(m.tasks, t)
	return t, m.persist()
}

// Patch holds optional field updates for an existing task.
// Nil fields are left unchanged.
type Patch struct {
	Title       *string
	Description *string
	Deadline    *time.Time
	Priority    *task.Priority
	Category    *string
}

// Update applies the patch to the task with the given id, re-validates
// and persists.
func (m *Manager) Update(id string, p Patch) (*task.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := m.find(id)
	if t == nil {
		return nil, remerrors.ErrTaskNotFound(id)
	}

	// Apply onto a copy first so a validation failure leaves the task intact.
	updated := *t
	if p.Title != nil {
		updated.Title = *p.Title
	}
	if p.Description != nil {
		updated.Description = *p.Description
	}
	if p.Deadline != nil {
		updated.Deadline = *p.Deadline
	}
	if p.Priority != nil {
		updated.Priority = *p.Priority
	}
	if p.Category != nil {
		updated.SetCategory(*p.Category)
	}

	if errs := updated.Validate(); errs.HasErrors() {
		return nil, remerrors.ErrValidation(errs)
	}

	*t = updated
	return t, m.persist()
}

// Delete removes the task with the given id and persists.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, t := range m.tasks {
		if t.ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return m.persist()
		}
	}
	return remerrors.ErrTaskNotFound(id)
}

// Complete marks the task done at the given instant. Completing a
// recurring task appends its next pending occurrence. Completing an
// already-completed task fails without touching completedAt.
func (m *Manager) Complete(id string, now time.Time) (*task.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := m.find(id)
	if t == nil {
		return nil, remerrors.ErrTaskNotFound(id)
	}
	if t.Completed {
		return nil, remerrors.ErrTaskAlreadyDone(id)
	}

	if next := t.Complete(now); next != nil {
		m.tasks = append(m.tasks, next)
	}
	return t, m.persist()
}

// Get returns the task with the given id.
func (m *Manager) Get(id string) (*task.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if t := m.find(id); t != nil {
		return t, nil
	}
	return nil, remerrors.ErrTaskNotFound(id)
}

// Tasks returns a snapshot of the current collection for the reminder
// and statistics engines.
func (m *Manager) Tasks() []*task.Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*task.Task(nil), m.tasks...)
}

// Search returns tasks whose title or description contains the query,
// case-insensitively, in the standard order.
func (m *Manager) Search(query string) []*task.Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	query = strings.TrimSpace(query)
	var out []*task.Task
	for _, t := range m.tasks {
		if t.Matches(query) {
			out = append(out, t)
		}
	}
	sortTasks(out)
	return out
}

// CleanupCompleted removes completed tasks whose completion is older
// than the given number of days, persists once, and returns the number
// removed. Nothing is persisted when no task matches.
func (m *Manager) CleanupCompleted(now time.Time, olderThanDays int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := now.AddDate(0, 0, -olderThanDays)
	kept := m.tasks[:0]
	removed := 0
	for _, t := range m.tasks {
		if t.Completed && t.CompletedAt != nil && t.CompletedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	m.tasks = kept

	if removed == 0 {
		return 0, nil
	}
	return removed, m.persist()
}

// find returns the task with the given id, or nil. Caller holds mu.
func (m *Manager) find(id string) *task.Task {
	for _, t := range m.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// persist saves the whole collection. Caller holds mu.
func (m *Manager) persist() error {
	if err := m.store.Save(m.tasks); err != nil {
		return remerrors.ErrPersistFailed(err)
	}
	return nil
}

// sortTasks orders by deadline ascending, ties broken by priority
// (high first), then by creation time.
func sortTasks(tasks []*task.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if !a.Deadline.Equal(b.Deadline) {
			return a.Deadline.Before(b.Deadline)
		}
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
}
