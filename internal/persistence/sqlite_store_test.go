package persistence

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndListOutcomes(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	start := time.Now().Add(-time.Minute).Truncate(time.Millisecond)
	outcomes := []Outcome{
		{JobID: "job-1", RunID: "run-1", Input: "/videos/a.mp4", Status: StatusDone, StartedAt: start, FinishedAt: start.Add(30 * time.Second)},
		{JobID: "job-2", RunID: "run-1", Input: "/videos/b.mp4", Status: StatusFailed, Error: "conversion failed with code 1", StartedAt: start, FinishedAt: start.Add(time.Second)},
		{JobID: "job-3", RunID: "run-2", Input: "/videos/a.mp4", Status: StatusSkipped, StartedAt: start, FinishedAt: start},
	}
	for _, o := range outcomes {
		require.NoError(t, store.RecordOutcome(ctx, o))
	}

	got, err := store.ListOutcomes(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "job-1", got[0].JobID)
	assert.Equal(t, StatusDone, got[0].Status)
	assert.Equal(t, "/videos/b.mp4", got[1].Input)
	assert.Equal(t, "conversion failed with code 1", got[1].Error)
	assert.True(t, got[0].StartedAt.Equal(start.UTC()))

	got, err = store.ListOutcomes(ctx, "run-2")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, StatusSkipped, got[0].Status)

	all, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestNewSQLiteStoreRequiresPath(t *testing.T) {
	_, err := NewSQLiteStore("  ")
	assert.Error(t, err)
}
