package checklist

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryWithScore(score int) ScoreHistoryEntry {
	return ScoreHistoryEntry{
		ID:    fmt.Sprintf("entry-%d", score),
		Date:  time.Now().UTC(),
		Score: score,
	}
}

func TestScoreHistoryAppend(t *testing.T) {
	t.Run("consecutive duplicates are dropped", func(t *testing.T) {
		var h ScoreHistory
		assert.True(t, h.Append(entryWithScore(70)))
		assert.False(t, h.Append(entryWithScore(70)))
		require.Len(t, h.Entries, 1)

		assert.True(t, h.Append(entryWithScore(75)))
		assert.Len(t, h.Entries, 2)
	})

	t.Run("non-consecutive repeats are kept", func(t *testing.T) {
		var h ScoreHistory
		h.Append(entryWithScore(70))
		h.Append(entryWithScore(75))
		assert.True(t, h.Append(entryWithScore(70)))
		assert.Len(t, h.Entries, 3)
	})

	t.Run("capped at 30 entries, oldest evicted", func(t *testing.T) {
		var h ScoreHistory
		for score := 1; score <= 31; score++ {
			require.True(t, h.Append(entryWithScore(score)))
		}
		require.Len(t, h.Entries, 30)
		assert.Equal(t, 2, h.Entries[0].Score, "oldest entry evicted")
		assert.Equal(t, 31, h.Entries[29].Score)
	})
}

func TestCompletionStateClone(t *testing.T) {
	state := CompletionState{"wallet-1": true}
	clone := state.Clone()
	clone["wallet-2"] = true
	assert.NotContains(t, state, "wallet-2")
}
