package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpramesti/remind/internal/task"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := NewTestStore(t)

	want := sampleTasks(t)
	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	require.Len(t, got, len(want))

	byID := make(map[string]*task.Task, len(got))
	for _, tk := range got {
		byID[tk.ID] = tk
	}

	for _, w := range want {
		g, ok := byID[w.ID]
		require.True(t, ok, "task %s missing after round trip", w.Title)
		assert.Equal(t, w.Title, g.Title)
		assert.Equal(t, w.Description, g.Description)
		assert.True(t, w.Deadline.Equal(g.Deadline))
		assert.Equal(t, w.Priority, g.Priority)
		assert.Equal(t, w.Category, g.Category)
		assert.Equal(t, w.Kind, g.Kind)
		assert.Equal(t, w.Completed, g.Completed)
		assert.Equal(t, w.Recurrence, g.Recurrence)
		assert.Equal(t, w.Every, g.Every)
	}
}

func TestSQLiteStoreEmpty(t *testing.T) {
	store := NewTestStore(t)

	tasks, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestSQLiteStoreSaveOverwrites(t *testing.T) {
	store := NewTestStore(t)

	require.NoError(t, store.Save(sampleTasks(t)))

	deadline, err := task.ParseDeadline("2024-07-01", "")
	require.NoError(t, err)
	only := task.New("sole survivor", deadline)
	require.NoError(t, store.Save([]*task.Task{only}))

	tasks, err := store.Load()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, only.ID, tasks[0].ID)
}

func TestSQLiteStoreCompletedAt(t *testing.T) {
	store := NewTestStore(t)

	deadline, err := task.ParseDeadline("2024-06-10", "12:00")
	require.NoError(t, err)
	tk := task.New("done deal", deadline)
	tk.Complete(deadline)

	require.NoError(t, store.Save([]*task.Task{tk}))

	tasks, err := store.Load()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.NotNil(t, tasks[0].CompletedAt)
	assert.True(t, tk.CompletedAt.Equal(*tasks[0].CompletedAt))
}

func TestSQLiteStoreOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.db")

	store, err := OpenSQLiteStore(path)
	require.NoError(t, err)

	want := sampleTasks(t)
	require.NoError(t, store.Save(want))
	require.NoError(t, store.Close())

	reopened, err := OpenSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	tasks, err := reopened.Load()
	require.NoError(t, err)
	assert.Len(t, tasks, len(want))
}

func TestNewStoreFactory(t *testing.T) {
	dir := t.TempDir()

	fileStore, err := New(ModeFile, filepath.Join(dir, "tasks.json"))
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, fileStore)

	defaulted, err := New("", filepath.Join(dir, "tasks2.json"))
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, defaulted)

	sqliteStore, err := New(ModeSQLite, filepath.Join(dir, "tasks.db"))
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, sqliteStore)
	sqliteStore.Close()

	_, err = New("postgres", "dsn")
	assert.Error(t, err)
}
