// Package store provides the persistence adapter implementations for the
// checklist engine: an in-memory store for tests and ephemeral runs, and a
// SQLite store for device-local durable storage.
package store

import (
	"context"
	"sync"

	"chaincheck/internal/checklist"
	"chaincheck/internal/threat"
)

// InMemoryStore keeps the three records in process memory. Used in tests
// and when no database path is configured.
type InMemoryStore struct {
	mu         sync.RWMutex
	level      threat.Level
	levelSet   bool
	completion checklist.CompletionState
	history    checklist.ScoreHistory
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{completion: checklist.CompletionState{}}
}

func (s *InMemoryStore) LoadThreatLevel(_ context.Context) (threat.Level, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.levelSet {
		return threat.LevelAll, nil
	}
	if level, ok := threat.ParseLevel(string(s.level)); ok {
		return level, nil
	}
	return threat.LevelAll, nil
}

func (s *InMemoryStore) SaveThreatLevel(_ context.Context, level threat.Level) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.level = level
	s.levelSet = true
	return nil
}

func (s *InMemoryStore) LoadCompletionState(_ context.Context, _ threat.Level) (checklist.CompletionState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.completion.Clone(), nil
}

func (s *InMemoryStore) SaveCompletionState(_ context.Context, state checklist.CompletionState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.completion = state.Clone()
	return nil
}

func (s *InMemoryStore) LoadScoreHistory(_ context.Context) (checklist.ScoreHistory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.history.Clone(), nil
}

func (s *InMemoryStore) SaveScoreHistory(_ context.Context, history checklist.ScoreHistory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = history.Clone()
	return nil
}
