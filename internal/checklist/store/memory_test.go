package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chaincheck/internal/checklist"
	"chaincheck/internal/threat"
)

func TestInMemoryStore(t *testing.T) {
	s := NewInMemoryStore()
	ctx := context.Background()

	level, err := s.LoadThreatLevel(ctx)
	require.NoError(t, err)
	assert.Equal(t, threat.LevelAll, level, "unset level defaults to all")

	require.NoError(t, s.SaveThreatLevel(ctx, threat.LevelDeveloper))
	level, err = s.LoadThreatLevel(ctx)
	require.NoError(t, err)
	assert.Equal(t, threat.LevelDeveloper, level)

	state := checklist.CompletionState{"wallet-1": true}
	require.NoError(t, s.SaveCompletionState(ctx, state))

	got, err := s.LoadCompletionState(ctx, threat.LevelAll)
	require.NoError(t, err)
	assert.Equal(t, state, got)

	t.Run("loads are isolated copies", func(t *testing.T) {
		got["wallet-2"] = true
		again, err := s.LoadCompletionState(ctx, threat.LevelAll)
		require.NoError(t, err)
		assert.NotContains(t, again, "wallet-2")
	})
}
