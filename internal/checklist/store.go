package checklist

import (
	"context"

	"chaincheck/internal/threat"
)

// Store is the persistence adapter boundary: three independent records on
// device-local durable storage. Implementations substitute safe defaults
// for missing or corrupt data and only return errors for real storage
// faults; the service treats every load error as "use the default" and
// every save error as log-and-continue, because the in-memory state is the
// source of truth.
type Store interface {
	LoadThreatLevel(ctx context.Context) (threat.Level, error)
	SaveThreatLevel(ctx context.Context, level threat.Level) error

	// LoadCompletionState migrates the legacy per-threat-level layout
	// transparently; current is the threat level selected at load time,
	// which the legacy detection keys off.
	LoadCompletionState(ctx context.Context, current threat.Level) (CompletionState, error)
	SaveCompletionState(ctx context.Context, state CompletionState) error

	LoadScoreHistory(ctx context.Context) (ScoreHistory, error)
	SaveScoreHistory(ctx context.Context, history ScoreHistory) error
}
