// Package sqlitedb opens the device-local SQLite database with the pragmas
// this project relies on (WAL journaling, busy timeout, foreign keys).
//
// Callers blank-import the driver:
//
//	import _ "modernc.org/sqlite"
//	db, err := sqlitedb.Open("chaincheck.db", schema)
package sqlitedb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// Open opens (and creates if needed) the SQLite database at path, applies
// pragmas and executes the given schema. Parent directories are created.
func Open(path, schema string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("sqlitedb: mkdir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlitedb: open: %w", err)
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlitedb: %s: %w", p, err)
		}
	}

	if schema != "" {
		if _, err := db.Exec(schema); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlitedb: exec schema: %w", err)
		}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlitedb: ping: %w", err)
	}

	return db, nil
}

// OpenMemory opens an in-memory database for tests. MaxOpenConns is pinned
// to 1 because every new connection to ":memory:" is a separate database.
// Cleanup closes the handle when the test finishes.
func OpenMemory(t testing.TB, schema string) *sql.DB {
	t.Helper()
	db, err := Open(":memory:", schema)
	if err != nil {
		t.Fatalf("sqlitedb.OpenMemory: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}
