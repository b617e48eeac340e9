// Package storage provides the persistence boundary for remind.
// Two backends are supported: a JSON file (default) and SQLite.
// Both implement full-overwrite save semantics: every Save replaces
// the durable copy with the given collection.
package storage

import (
	"fmt"
	"time"

	"github.com/dpramesti/remind/internal/task"
)

// Store is the persistence contract consumed by the task manager.
type Store interface {
	// Load returns all persisted tasks in creation order, or nil when
	// no prior data exists.
	Load() ([]*task.Task, error)

	// Save fully overwrites the persisted state with the given tasks.
	Save(tasks []*task.Task) error

	// Close releases any backend resources.
	Close() error
}

// Mode selects the storage backend.
type Mode string

const (
	ModeFile   Mode = "file"
	ModeSQLite Mode = "sqlite"
)

// New creates a store backend for the given mode and path.
// An empty mode defaults to the file backend.
func New(mode Mode, path string) (Store, error) {
	switch mode {
	case ModeFile, "":
		return NewFileStore(path), nil
	case ModeSQLite:
		return OpenSQLiteStore(path)
	default:
		return nil, fmt.Errorf("unknown storage mode: %s", mode)
	}
}

// record is the persisted per-task shape, shared by both backends.
// The field-level contract (split date/time, numeric priority, kind tag)
// is kept stable for compatibility with older data files.
type record struct {
	ID           string `json:"task_id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	DeadlineDate string `json:"deadline_date"`
	DeadlineTime string `json:"deadline_time"`
	Priority     int    `json:"priority"`
	Category     string `json:"category"`
	Completed    bool   `json:"completed"`
	CreatedAt    string `json:"created_at"`
	CompletedAt  string `json:"completed_at,omitempty"`
	Kind         string `json:"task_type"`
	Recurrence   string `json:"recurrence_type,omitempty"`
	Every        int    `json:"recurrence_count,omitempty"`
}

func toRecord(t *task.Task) record {
	r := record{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		DeadlineDate: t.Deadline.Format(task.DateLayout),
		DeadlineTime: t.Deadline.Format(task.TimeLayout),
		Priority:     int(t.Priority),
		Category:     t.Category,
		Completed:    t.Completed,
		CreatedAt:    t.CreatedAt.Format(time.RFC3339),
		Kind:         string(t.Kind),
		Recurrence:   string(t.Recurrence),
		Every:        t.Every,
	}
	if t.CompletedAt != nil {
		r.CompletedAt = t.CompletedAt.Format(time.RFC3339)
	}
	return r
}

func fromRecord(r record) (*task.Task, error) {
	deadline, err := task.ParseDeadline(r.DeadlineDate, r.DeadlineTime)
	if err != nil {
		return nil, fmt.Errorf("task %s: %w", r.ID, err)
	}

	createdAt, err := time.Parse(time.RFC3339, r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("task %s: parse created_at: %w", r.ID, err)
	}

	kind := task.Kind(r.Kind)
	if r.Kind == "" {
		kind = task.KindRegular
	}
	if !task.IsValidKind(kind) {
		return nil, fmt.Errorf("task %s: unknown task type %q", r.ID, r.Kind)
	}

	t := &task.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Deadline:    deadline,
		Priority:    task.Priority(r.Priority),
		Category:    r.Category,
		Kind:        kind,
		Completed:   r.Completed,
		CreatedAt:   createdAt.Local(),
		Recurrence:  task.Recurrence(r.Recurrence),
		Every:       r.Every,
	}

	if r.CompletedAt != "" {
		done, err := time.Parse(time.RFC3339, r.CompletedAt)
		if err != nil {
			return nil, fmt.Errorf("task %s: parse completed_at: %w", r.ID, err)
		}
		local := done.Local()
		t.CompletedAt = &local
	}

	return t, nil
}
