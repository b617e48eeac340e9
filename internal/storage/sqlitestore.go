package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	remerrors "github.com/dpramesti/remind/internal/errors"
	"github.com/dpramesti/remind/internal/task"
)

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	task_id          TEXT PRIMARY KEY,
	title            TEXT NOT NULL,
	description      TEXT NOT NULL DEFAULT '',
	deadline_date    TEXT NOT NULL,
	deadline_time    TEXT NOT NULL,
	priority         INTEGER NOT NULL DEFAULT 2,
	category         TEXT NOT NULL DEFAULT 'general',
	completed        INTEGER NOT NULL DEFAULT 0,
	created_at       TEXT NOT NULL,
	completed_at     TEXT,
	task_type        TEXT NOT NULL DEFAULT 'RegularTask',
	recurrence_type  TEXT NOT NULL DEFAULT '',
	recurrence_count INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// SQLiteStore persists tasks in a single-table SQLite database.
// Save replaces the table contents in one transaction, matching the
// file store's full-overwrite semantics.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// OpenSQLiteStore opens (creating if needed) the database at path.
// Pass ":memory:" for an in-memory database.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set journal mode: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// Path returns the database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Load reads all tasks in creation order.
func (s *SQLiteStore) Load() ([]*task.Task, error) {
	rows, err := s.db.Query(`
		SELECT task_id, title, description, deadline_date, deadline_time,
		       priority, category, completed, created_at, completed_at,
		       task_type, recurrence_type, recurrence_count
		FROM tasks ORDER BY created_at, task_id`)
	if err != nil {
		return nil, remerrors.ErrStoreCorrupt(s.path, err)
	}
	defer rows.Close()

	var tasks []*task.Task
	for rows.Next() {
		var r record
		var completed int
		var completedAt sql.NullString
		if err := rows.Scan(&r.ID, &r.Title, &r.Description, &r.DeadlineDate,
			&r.DeadlineTime, &r.Priority, &r.Category, &completed, &r.CreatedAt,
			&completedAt, &r.Kind, &r.Recurrence, &r.Every); err != nil {
			return nil, remerrors.ErrStoreCorrupt(s.path, err)
		}
		r.Completed = completed != 0
		if completedAt.Valid {
			r.CompletedAt = completedAt.String
		}

		t, err := fromRecord(r)
		if err != nil {
			return nil, remerrors.ErrStoreCorrupt(s.path, err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, remerrors.ErrStoreCorrupt(s.path, err)
	}
	return tasks, nil
}

// Save replaces all persisted tasks with the given collection and
// refreshes the last_updated stamp.
func (s *SQLiteStore) Save(tasks []*task.Task) error {
	tx, err := s.db.Begin()
	if err != nil {
		return remerrors.ErrStoreWrite(s.path, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM tasks"); err != nil {
		return remerrors.ErrStoreWrite(s.path, err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO tasks (task_id, title, description, deadline_date,
			deadline_time, priority, category, completed, created_at,
			completed_at, task_type, recurrence_type, recurrence_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return remerrors.ErrStoreWrite(s.path, err)
	}
	defer stmt.Close()

	for _, t := range tasks {
		r := toRecord(t)
		completed := 0
		if r.Completed {
			completed = 1
		}
		var completedAt any
		if r.CompletedAt != "" {
			completedAt = r.CompletedAt
		}
		if _, err := stmt.Exec(r.ID, r.Title, r.Description, r.DeadlineDate,
			r.DeadlineTime, r.Priority, r.Category, completed, r.CreatedAt,
			completedAt, r.Kind, r.Recurrence, r.Every); err != nil {
			return remerrors.ErrStoreWrite(s.path, err)
		}
	}

	if _, err := tx.Exec(`INSERT INTO meta (key, value) VALUES ('last_updated', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		time.Now().Format(time.RFC3339)); err != nil {
		return remerrors.ErrStoreWrite(s.path, err)
	}

	if err := tx.Commit(); err != nil {
		return remerrors.ErrStoreWrite(s.path, err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
