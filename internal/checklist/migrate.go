package checklist

import (
	"encoding/json"
	"log/slog"

	"chaincheck/internal/threat"
)

// DecodeCompletionState parses a persisted completion blob, transparently
// migrating the legacy layout in which completion was stored per threat
// level ({"basic": {"wallet-1": true}, ...}) instead of globally.
//
// Detection: if the top-level JSON object has a key equal to the currently
// selected threat level, the whole blob is treated as legacy and flattened
// by OR-ing every item's flag across every stored level — an item counts
// as completed if it was ever completed under any profile. Anything
// unparseable yields the empty map; this function never fails.
func DecodeCompletionState(raw []byte, current threat.Level, logger *slog.Logger) CompletionState {
	if len(raw) == 0 {
		return CompletionState{}
	}

	var generic map[string]json.RawMessage
	if err := json.Unmarshal(raw, &generic); err != nil {
		logger.Warn("corrupt completion state, starting empty", "error", err.Error())
		return CompletionState{}
	}

	if _, legacy := generic[string(current)]; legacy {
		flat := CompletionState{}
		for level, sub := range generic {
			var items map[string]bool
			if err := json.Unmarshal(sub, &items); err != nil {
				logger.Warn("skipping unreadable legacy completion bucket",
					"threat_level", level,
					"error", err.Error(),
				)
				continue
			}
			for id, done := range items {
				if done {
					flat[id] = true
				}
			}
		}
		logger.Info("migrated legacy per-threat-level completion state",
			"items", len(flat),
		)
		return flat
	}

	var state CompletionState
	if err := json.Unmarshal(raw, &state); err != nil {
		logger.Warn("corrupt completion state, starting empty", "error", err.Error())
		return CompletionState{}
	}
	if state == nil {
		return CompletionState{}
	}
	return state
}
