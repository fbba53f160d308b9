// Package store provides the SQLite-backed key-value persistence layer the
// engine reads and writes its aggregates through.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Persisted aggregate keys. Each key is saved independently with
// last-write-wins semantics; there is no cross-key transaction.
const (
	KeyMonthlyIncome     = "monthlyIncome"
	KeyAllocation        = "allocation"
	KeyHasCompletedSetup = "hasCompletedSetup"
	KeyAccounts          = "accounts"
	KeyGoal              = "goal"
	KeyHistory           = "history"
)

// Store is a SQLite-backed key-value store with JSON-encoded values.
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

// Open opens or creates the store database at the given path.
func Open(dbPath string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening store db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, log: log}, nil
}

// Close closes the store database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the value stored under key. The second return is false when the
// key is absent; callers treat absence as "use defaults".
func (s *Store) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading key %q: %w", key, err)
	}
	return value, true, nil
}

// Put stores value under key, replacing any previous value.
func (s *Store) Put(key string, value []byte) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`INSERT OR REPLACE INTO kv (key, value, updated_at)
		VALUES (?, ?, ?)`, key, value, now)
	if err != nil {
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	s.log.Debug("stored value", zap.String("key", key), zap.Int("bytes", len(value)))
	return nil
}

// Delete removes a key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	_, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key)
	return err
}

// Keys returns all stored keys.
func (s *Store) Keys() ([]string, error) {
	rows, err := s.db.Query("SELECT key FROM kv ORDER BY key")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
