package store

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chaincheck/internal/checklist"
	"chaincheck/internal/platform/sqlitedb"
	"chaincheck/internal/threat"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db := sqlitedb.OpenMemory(t, Schema)
	return NewSQLiteStore(db, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func seed(t *testing.T, s *SQLiteStore, key, value string) {
	t.Helper()
	require.NoError(t, s.put(context.Background(), key, value))
}

func TestSQLiteStoreDefaults(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	level, err := s.LoadThreatLevel(ctx)
	require.NoError(t, err)
	assert.Equal(t, threat.LevelAll, level)

	state, err := s.LoadCompletionState(ctx, threat.LevelAll)
	require.NoError(t, err)
	assert.Empty(t, state)

	history, err := s.LoadScoreHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, history.Entries)
}

func TestSQLiteStoreThreatLevel(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveThreatLevel(ctx, threat.LevelHighValue))
	level, err := s.LoadThreatLevel(ctx)
	require.NoError(t, err)
	assert.Equal(t, threat.LevelHighValue, level)

	// Overwrites, no duplicate rows.
	require.NoError(t, s.SaveThreatLevel(ctx, threat.LevelBasic))
	level, err = s.LoadThreatLevel(ctx)
	require.NoError(t, err)
	assert.Equal(t, threat.LevelBasic, level)

	t.Run("invalid stored value defaults to all", func(t *testing.T) {
		seed(t, s, keyThreatLevel, "paranoid")
		level, err := s.LoadThreatLevel(ctx)
		require.NoError(t, err)
		assert.Equal(t, threat.LevelAll, level)
	})
}

func TestSQLiteStoreCompletionState(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	want := checklist.CompletionState{"wallet-1": true, "wallet-2": false}
	require.NoError(t, s.SaveCompletionState(ctx, want))

	got, err := s.LoadCompletionState(ctx, threat.LevelAll)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	t.Run("legacy per-level blob is migrated on load", func(t *testing.T) {
		seed(t, s, keyCompletionState, `{"basic":{"wallet-1":true},"developer":{"dev-1":true}}`)

		got, err := s.LoadCompletionState(ctx, threat.LevelBasic)
		require.NoError(t, err)
		assert.True(t, got["wallet-1"])
		assert.True(t, got["dev-1"])
	})

	t.Run("corrupt blob degrades to empty", func(t *testing.T) {
		seed(t, s, keyCompletionState, `{"wallet-1": tru`)

		got, err := s.LoadCompletionState(ctx, threat.LevelAll)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestSQLiteStoreScoreHistory(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	var want checklist.ScoreHistory
	want.Append(checklist.ScoreHistoryEntry{ID: "a", Score: 40, Completed: 2, Total: 5})
	want.Append(checklist.ScoreHistoryEntry{ID: "b", Score: 60, Completed: 3, Total: 5})
	require.NoError(t, s.SaveScoreHistory(ctx, want))

	got, err := s.LoadScoreHistory(ctx)
	require.NoError(t, err)
	require.Len(t, got.Entries, 2)
	assert.Equal(t, "a", got.Entries[0].ID)
	assert.Equal(t, 60, got.Entries[1].Score)

	t.Run("corrupt blob degrades to empty", func(t *testing.T) {
		seed(t, s, keyScoreHistory, `not json`)

		got, err := s.LoadScoreHistory(ctx)
		require.NoError(t, err)
		assert.Empty(t, got.Entries)
	})
}
