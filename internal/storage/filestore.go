package storage

import (
	"encoding/json"
	"os"
	"time"

	"github.com/tidwall/gjson"

	remerrors "github.com/dpramesti/remind/internal/errors"
	"github.com/dpramesti/remind/internal/task"
	"github.com/dpramesti/remind/internal/util"
)

// envelope is the top-level shape of the data file.
type envelope struct {
	Tasks       []record `json:"tasks"`
	LastUpdated string   `json:"last_updated"`
}

// FileStore persists tasks as a single JSON envelope on disk.
// Writes are atomic (temp file + rename), so a crash mid-save cannot
// corrupt the previous state.
type FileStore struct {
	path string
}

// NewFileStore creates a file store backed by the given path.
// The file is created on first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the data file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads all tasks from the data file. A missing file yields nil
// tasks and no error. Earlier releases wrote a bare task array instead
// of the envelope; both shapes are accepted.
func (s *FileStore) Load() ([]*task.Task, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, remerrors.ErrStoreCorrupt(s.path, err)
	}

	if !gjson.ValidBytes(data) {
		return nil, remerrors.ErrStoreCorrupt(s.path, errInvalidJSON)
	}

	// Sniff the shape before strict unmarshaling: legacy files are a
	// bare array, current files are an envelope with a tasks field.
	var records []record
	root := gjson.ParseBytes(data)
	switch {
	case root.IsArray():
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, remerrors.ErrStoreCorrupt(s.path, err)
		}
	case root.IsObject():
		var env envelope
		if err := json.Unmarshal(data, &env); err != nil {
			return nil, remerrors.ErrStoreCorrupt(s.path, err)
		}
		records = env.Tasks
	default:
		return nil, remerrors.ErrStoreCorrupt(s.path, errInvalidJSON)
	}

	tasks := make([]*task.Task, 0, len(records))
	for _, r := range records {
		t, err := fromRecord(r)
		if err != nil {
			return nil, remerrors.ErrStoreCorrupt(s.path, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// Save atomically overwrites the data file with the given tasks and a
// refreshed last_updated stamp.
func (s *FileStore) Save(tasks []*task.Task) error {
	env := envelope{
		Tasks:       make([]record, 0, len(tasks)),
		LastUpdated: time.Now().Format(time.RFC3339),
	}
	for _, t := range tasks {
		env.Tasks = append(env.Tasks, toRecord(t))
	}

	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return remerrors.ErrStoreWrite(s.path, err)
	}

	if err := util.AtomicWriteFile(s.path, data, 0644); err != nil {
		return remerrors.ErrStoreWrite(s.path, err)
	}
	return nil
}

// Close is a no-op for the file store.
func (s *FileStore) Close() error {
	return nil
}

var errInvalidJSON = jsonError("data file is not valid JSON")

type jsonError string

func (e jsonError) Error() string { return string(e) }
