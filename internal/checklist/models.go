// Package checklist implements the threat-profile security scoring engine:
// global completion state, threat-filtered materialization, memoized
// percentage scores, presets and score history.
package checklist

import (
	"time"
)

// CompletionState is the single global record of which items the user has
// marked done, keyed by item ID and independent of threat profile.
type CompletionState map[string]bool

// Clone returns an independent copy of the state.
func (s CompletionState) Clone() CompletionState {
	out := make(CompletionState, len(s))
	for id, done := range s {
		out[id] = done
	}
	return out
}

// PresetMode selects how ApplyPreset mutates completion state.
type PresetMode string

const (
	// PresetMerge force-completes every item whose level is in the preset
	// set and never un-completes anything.
	PresetMerge PresetMode = "merge"
	// PresetReset replaces the completion state with the empty map.
	PresetReset PresetMode = "reset"
)

// SecurityStats summarizes the relevant item set for the active threat
// level. Essential/Optional/Advanced are per-level completion percentages;
// CriticalRemaining and RecommendedRemaining count incomplete items at the
// essential and recommended levels.
type SecurityStats struct {
	Total                int `json:"total"`
	Completed            int `json:"completed"`
	Essential            int `json:"essential"`
	Optional             int `json:"optional"`
	Advanced             int `json:"advanced"`
	CriticalRemaining    int `json:"criticalRemaining"`
	RecommendedRemaining int `json:"recommendedRemaining"`
}

// ScoreReport is the computed score view for one threat level.
type ScoreReport struct {
	ThreatLevel string         `json:"threatLevel"`
	Overall     int            `json:"overall"`
	Categories  map[string]int `json:"categories"`
}

// ScoreHistoryEntry is one overall-score snapshot.
type ScoreHistoryEntry struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Score     int       `json:"score"`
	Completed int       `json:"completed"`
	Total     int       `json:"total"`
}

// maxHistoryEntries caps the stored history; oldest entries are evicted.
const maxHistoryEntries = 30

// ScoreHistory is an append-only, deduplicated, capped list of snapshots.
type ScoreHistory struct {
	Entries []ScoreHistoryEntry `json:"entries"`
}

// Append adds a snapshot unless its score equals the most recent entry's
// score, evicting the oldest entry beyond the cap. It reports whether the
// entry was stored.
func (h *ScoreHistory) Append(entry ScoreHistoryEntry) bool {
	if n := len(h.Entries); n > 0 && h.Entries[n-1].Score == entry.Score {
		return false
	}
	h.Entries = append(h.Entries, entry)
	if len(h.Entries) > maxHistoryEntries {
		h.Entries = h.Entries[len(h.Entries)-maxHistoryEntries:]
	}
	return true
}

// Clone returns an independent copy of the history.
func (h ScoreHistory) Clone() ScoreHistory {
	entries := make([]ScoreHistoryEntry, len(h.Entries))
	copy(entries, h.Entries)
	return ScoreHistory{Entries: entries}
}
