// Test helpers for packages needing a store. In-memory SQLite keeps
// tests fast and isolated; cleanup is wired via t.Cleanup().
package storage

import (
	"testing"
)

// NewTestStore creates an in-memory SQLite store for testing.
// The store is automatically closed when the test completes.
func NewTestStore(t testing.TB) *SQLiteStore {
	t.Helper()

	s, err := OpenSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("create test store: %v", err)
	}

	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}
