package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpramesti/remind/internal/config"
	remerrors "github.com/dpramesti/remind/internal/errors"
	"github.com/dpramesti/remind/internal/manager"
	"github.com/dpramesti/remind/internal/storage"
	"github.com/dpramesti/remind/internal/task"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		max   int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly ten chars!", 18, "exactly ten chars!"},
		{"this title is much too long to display", 15, "this title i..."},
	}

	for _, tt := range tests {
		if got := truncate(tt.input, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
		}
	}
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "3f2a9b1c", shortID("3f2a9b1c-0000-1111-2222-333344445555"))
	assert.Equal(t, "abc", shortID("abc"))
}

func TestColorEnabled(t *testing.T) {
	cfg := config.Default()

	cfg.Color = "always"
	assert.True(t, colorEnabled(cfg))

	cfg.Color = "never"
	assert.False(t, colorEnabled(cfg))
}

func TestResolveTask(t *testing.T) {
	mgr, err := manager.New(storage.NewTestStore(t))
	require.NoError(t, err)

	deadline, err := task.ParseDeadline("2024-06-10", "")
	require.NoError(t, err)

	created, err := mgr.Create(manager.CreateRequest{Title: "find me", Deadline: deadline})
	require.NoError(t, err)

	t.Run("full id", func(t *testing.T) {
		got, err := resolveTask(mgr, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("unique prefix", func(t *testing.T) {
		got, err := resolveTask(mgr, created.ID[:8])
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("no match", func(t *testing.T) {
		_, err := resolveTask(mgr, "zzzzzzzz")
		require.Error(t, err)
		assert.True(t, remerrors.HasCode(err, remerrors.CodeTaskNotFound))
	})
}

func TestUrgencyLabelPlain(t *testing.T) {
	tests := []struct {
		urgency task.Urgency
		want    string
	}{
		{task.UrgencyOverdue, "overdue"},
		{task.UrgencyDueToday, "due today"},
		{task.UrgencyUpcoming, "upcoming"},
		{task.UrgencyScheduled, "scheduled"},
		{task.UrgencyCompleted, "done"},
	}

	for _, tt := range tests {
		if got := urgencyLabel(tt.urgency, false); got != tt.want {
			t.Errorf("urgencyLabel(%v) = %q, want %q", tt.urgency, got, tt.want)
		}
	}
}
