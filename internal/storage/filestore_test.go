package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	remerrors "github.com/dpramesti/remind/internal/errors"
	"github.com/dpramesti/remind/internal/task"
)

func sampleTasks(t *testing.T) []*task.Task {
	t.Helper()

	deadline, err := task.ParseDeadline("2024-06-10", "14:30")
	require.NoError(t, err)

	regular := task.New("Submit thesis draft", deadline)
	regular.Description = "final review pass"
	regular.Priority = task.PriorityHigh
	regular.SetCategory("College")

	recurring := task.NewRecurring("Water plants", deadline.AddDate(0, 0, 2), task.RecurDaily, 3)
	recurring.SetCategory("home")

	done := task.New("Pay rent", deadline.AddDate(0, 0, -5))
	done.Complete(deadline.AddDate(0, 0, -6))

	return []*task.Task{regular, recurring, done}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	store := NewFileStore(path)

	want := sampleTasks(t)
	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	require.Len(t, got, len(want))

	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Title, got[i].Title)
		assert.Equal(t, want[i].Description, got[i].Description)
		assert.True(t, want[i].Deadline.Equal(got[i].Deadline), "deadline mismatch for %s", want[i].Title)
		assert.Equal(t, want[i].Priority, got[i].Priority)
		assert.Equal(t, want[i].Category, got[i].Category)
		assert.Equal(t, want[i].Kind, got[i].Kind)
		assert.Equal(t, want[i].Completed, got[i].Completed)
		assert.Equal(t, want[i].Recurrence, got[i].Recurrence)
		assert.Equal(t, want[i].Every, got[i].Every)
	}

	require.NotNil(t, got[2].CompletedAt)
	assert.True(t, want[2].CompletedAt.Equal(*got[2].CompletedAt))
}

func TestFileStoreMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))

	tasks, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, tasks)
}

func TestFileStoreEnvelope(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	store := NewFileStore(path)

	require.NoError(t, store.Save(sampleTasks(t)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var env map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &env))
	assert.Contains(t, env, "tasks")
	assert.Contains(t, env, "last_updated")

	var stamp string
	require.NoError(t, json.Unmarshal(env["last_updated"], &stamp))
	_, err = time.Parse(time.RFC3339, stamp)
	assert.NoError(t, err, "last_updated must be RFC3339")
}

func TestFileStoreLegacyArray(t *testing.T) {
	// Earlier releases wrote a bare array of records.
	path := filepath.Join(t.TempDir(), "tasks.json")
	legacy := `[
		{
			"task_id": "abc-123",
			"title": "Old task",
			"deadline_date": "2024-06-10",
			"deadline_time": "18:00:00",
			"priority": 2,
			"category": "general",
			"completed": false,
			"created_at": "2024-06-01T09:00:00Z",
			"task_type": "RegularTask"
		}
	]`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0644))

	tasks, err := NewFileStore(path).Load()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "abc-123", tasks[0].ID)
	assert.Equal(t, "Old task", tasks[0].Title)
	assert.Equal(t, task.KindRegular, tasks[0].Kind)
}

func TestFileStoreMissingKindDefaultsRegular(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	data := `{"tasks":[{"task_id":"x","title":"t","deadline_date":"2024-06-10","deadline_time":"18:00:00","priority":2,"category":"general","completed":false,"created_at":"2024-06-01T09:00:00Z"}],"last_updated":"2024-06-01T09:00:00Z"}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	tasks, err := NewFileStore(path).Load()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, task.KindRegular, tasks[0].Kind)
}

func TestFileStoreCorrupt(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"truncated json", `{"tasks": [`},
		{"not json at all", `hello world`},
		{"wrong root type", `"just a string"`},
		{"bad deadline in record", `{"tasks":[{"task_id":"x","title":"t","deadline_date":"June 10","deadline_time":"18:00:00","priority":2,"category":"g","created_at":"2024-06-01T09:00:00Z","task_type":"RegularTask"}],"last_updated":"2024-06-01T09:00:00Z"}`},
		{"unknown task type", `{"tasks":[{"task_id":"x","title":"t","deadline_date":"2024-06-10","deadline_time":"18:00:00","priority":2,"category":"g","created_at":"2024-06-01T09:00:00Z","task_type":"MysteryTask"}],"last_updated":"2024-06-01T09:00:00Z"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tasks.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0644))

			_, err := NewFileStore(path).Load()
			require.Error(t, err)
			assert.True(t, remerrors.HasCode(err, remerrors.CodeStoreCorrupt),
				"want STORE_CORRUPT, got %v", err)
		})
	}
}

func TestFileStoreSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	store := NewFileStore(path)

	require.NoError(t, store.Save(sampleTasks(t)))
	require.NoError(t, store.Save(nil))

	tasks, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
