// Package sqlite implements a SQLite-backed settings store. Values are
// stored in their raw textual form keyed by storage key, so reads flow back
// through the registry's coercer exactly like environment lookups, and
// every write appends a revision row for history.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/larder/pkg/settings"
)

// Store holds settings in a single SQLite database file.
type Store struct {
	mu sync.RWMutex
	db *sql.DB
}

// Open creates dataDir if needed, opens (or creates) larder.db inside it,
// and ensures the schema exists.
func Open(dataDir string) (*Store, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "larder.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", dbPath, err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Reader returns a settings.ReaderFunc reading raw values by storage key.
// A missing row reports absence, not an error.
func (s *Store) Reader() settings.ReaderFunc {
	return func(key string, _ *settings.Variable) (string, bool, error) {
		s.mu.RLock()
		defer s.mu.RUnlock()

		var raw string
		err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&raw)
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		if err != nil {
			return "", false, fmt.Errorf("reading %s: %w", key, err)
		}
		return raw, true, nil
	}
}

// Writer returns a settings.WriterFunc that upserts the textual form of the
// typed value and records a revision row (UUID v7) in the same transaction.
func (s *Store) Writer() settings.WriterFunc {
	return func(key string, value any, _ *settings.Variable) error {
		s.mu.Lock()
		defer s.mu.Unlock()

		raw := encodeValue(value)
		now := time.Now().UTC().Format(time.RFC3339)

		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("beginning write: %w", err)
		}
		defer tx.Rollback()

		_, err = tx.Exec(`
			INSERT INTO settings (key, value, updated_at)
			VALUES (?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET
				value = excluded.value,
				updated_at = excluded.updated_at`,
			key, raw, now)
		if err != nil {
			return fmt.Errorf("upserting %s: %w", key, err)
		}

		rev, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("generating revision ID: %w", err)
		}
		if _, err := tx.Exec(
			"INSERT INTO revisions (revision_id, key, value, written_at) VALUES (?, ?, ?, ?)",
			rev.String(), key, raw, now); err != nil {
			return fmt.Errorf("recording revision for %s: %w", key, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing write for %s: %w", key, err)
		}
		return nil
	}
}

// Revision is one historical write of a setting.
type Revision struct {
	RevisionID string
	Key        string
	Value      string
	WrittenAt  time.Time
}

// Revisions returns the write history for key, newest first. Returns an
// empty slice, not nil, when the key has never been written.
func (s *Store) Revisions(key string) ([]Revision, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		"SELECT revision_id, key, value, written_at FROM revisions WHERE key = ? ORDER BY written_at DESC, revision_id DESC",
		key)
	if err != nil {
		return nil, fmt.Errorf("fetching revisions for %s: %w", key, err)
	}
	defer rows.Close()

	revisions := []Revision{}
	for rows.Next() {
		var r Revision
		var writtenAt string
		if err := rows.Scan(&r.RevisionID, &r.Key, &r.Value, &writtenAt); err != nil {
			return nil, fmt.Errorf("scanning revision: %w", err)
		}
		r.WrittenAt, err = time.Parse(time.RFC3339, writtenAt)
		if err != nil {
			return nil, fmt.Errorf("parsing revision written_at: %w", err)
		}
		revisions = append(revisions, r)
	}
	return revisions, rows.Err()
}

// Keys returns every storage key currently holding a value, sorted.
func (s *Store) Keys() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT key FROM settings ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("fetching keys: %w", err)
	}
	defer rows.Close()

	keys := []string{}
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scanning key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
