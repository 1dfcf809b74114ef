package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"

	"chaincheck/internal/checklist"
	"chaincheck/internal/platform/sqlitedb"
	"chaincheck/internal/threat"
)

// Storage keys for the three independent records.
const (
	keyThreatLevel     = "threat_level"
	keyCompletionState = "completion_state"
	keyScoreHistory    = "score_history"
)

// Schema is the key-value table backing the store. Exported so tests can
// open in-memory databases with the same shape.
const Schema = `
CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// SQLiteStore persists the three records as JSON values in a key-value
// table. Deserialization faults are degraded to the documented safe
// defaults and logged; only real storage errors propagate.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// OpenSQLite opens (creating if necessary) the database at path and
// returns a store over it.
func OpenSQLite(path string, logger *slog.Logger) (*SQLiteStore, error) {
	db, err := sqlitedb.Open(path, Schema)
	if err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db, logger: logger}, nil
}

// NewSQLiteStore wraps an already-open database, used by tests.
func NewSQLiteStore(db *sql.DB, logger *slog.Logger) *SQLiteStore {
	return &SQLiteStore{db: db, logger: logger}
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("store: get %s: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLiteStore) put(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("store: put %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) LoadThreatLevel(ctx context.Context) (threat.Level, error) {
	value, ok, err := s.get(ctx, keyThreatLevel)
	if err != nil {
		return threat.LevelAll, err
	}
	if !ok {
		return threat.LevelAll, nil
	}
	level, valid := threat.ParseLevel(value)
	if !valid {
		s.logger.Warn("stored threat level is invalid, defaulting to all", "value", value)
	}
	return level, nil
}

func (s *SQLiteStore) SaveThreatLevel(ctx context.Context, level threat.Level) error {
	return s.put(ctx, keyThreatLevel, string(level))
}

func (s *SQLiteStore) LoadCompletionState(ctx context.Context, current threat.Level) (checklist.CompletionState, error) {
	value, ok, err := s.get(ctx, keyCompletionState)
	if err != nil {
		return checklist.CompletionState{}, err
	}
	if !ok {
		return checklist.CompletionState{}, nil
	}
	return checklist.DecodeCompletionState([]byte(value), current, s.logger), nil
}

func (s *SQLiteStore) SaveCompletionState(ctx context.Context, state checklist.CompletionState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("store: marshal completion state: %w", err)
	}
	return s.put(ctx, keyCompletionState, string(data))
}

func (s *SQLiteStore) LoadScoreHistory(ctx context.Context) (checklist.ScoreHistory, error) {
	value, ok, err := s.get(ctx, keyScoreHistory)
	if err != nil {
		return checklist.ScoreHistory{}, err
	}
	if !ok {
		return checklist.ScoreHistory{}, nil
	}
	var history checklist.ScoreHistory
	if err := json.Unmarshal([]byte(value), &history); err != nil {
		s.logger.Warn("corrupt score history, starting empty", "error", err.Error())
		return checklist.ScoreHistory{}, nil
	}
	return history, nil
}

func (s *SQLiteStore) SaveScoreHistory(ctx context.Context, history checklist.ScoreHistory) error {
	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("store: marshal score history: %w", err)
	}
	return s.put(ctx, keyScoreHistory, string(data))
}
