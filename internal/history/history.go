// Package history remembers the letter sets a user submitted, most recent
// first. Only the letters are stored; responses and view state never are.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/kedare/wordsmith/internal/logger"
)

const (
	// FileName is the database file inside the wordsmith state directory.
	FileName = "history.db"
	// FilePermissions restricts the database to its owner.
	FilePermissions = 0o600
	// DefaultLimit is how many entries Recent returns when asked for zero.
	DefaultLimit = 20
)

// Entry is one remembered letter set.
type Entry struct {
	Letters  string
	LastUsed time.Time
	Uses     int
}

// Store is a SQLite-backed history. A nil *Store is a valid, disabled store.
type Store struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
	now  func() time.Time
}

// DefaultPath returns <user cache dir>/wordsmith/history.db.
func DefaultPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate cache directory: %w", err)
	}

	return filepath.Join(dir, "wordsmith", FileName), nil
}

// Open opens or creates the history database at path and migrates it.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	// SQLite allows one writer; serialise through a single connection.
	db.SetMaxOpenConns(1)

	if err := prepare(db, path); err != nil {
		_ = db.Close()

		return nil, err
	}

	if err := os.Chmod(path, FilePermissions); err != nil {
		logger.Log.Debugf("Failed to restrict history file permissions: %v", err)
	}

	logger.Log.Debugf("History database: %s (schema v%d)", path, SchemaVersion)

	return &Store{db: db, path: path, now: time.Now}, nil
}

func prepare(db *sql.DB, path string) error {
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("failed to configure history database: %w", err)
	}

	if err := initSchema(db); err != nil {
		return err
	}

	version, err := getSchemaVersion(db)
	if err != nil {
		return err
	}

	return migrate(db, version, path)
}

// Path returns the database file, or "" for a disabled store.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}

	return s.path
}

// Record remembers letters, bumping its use count when already known.
func (s *Store) Record(letters string) error {
	if s == nil {
		return nil
	}

	letters = strings.ToLower(strings.TrimSpace(letters))
	if letters == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO history (letters, last_used, uses)
		VALUES (?, ?, 1)
		ON CONFLICT(letters) DO UPDATE SET
			last_used = excluded.last_used,
			uses = uses + 1`

	now := s.now().UnixNano()
	logSQL(query, letters, now)

	if _, err := s.db.Exec(query, letters, now); err != nil {
		return fmt.Errorf("failed to record history: %w", err)
	}

	return nil
}

// Recent returns up to limit entries, most recently used first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	if s == nil {
		return nil, nil
	}

	if limit <= 0 {
		limit = DefaultLimit
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	query := `SELECT letters, last_used, uses FROM history ORDER BY last_used DESC, letters LIMIT ?`
	logSQL(query, limit)

	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry

	for rows.Next() {
		var (
			e    Entry
			used int64
		)

		if err := rows.Scan(&e.Letters, &used, &e.Uses); err != nil {
			logger.Log.Warnf("Failed to scan history row: %v", err)

			continue
		}

		e.LastUsed = time.Unix(0, used)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Letters returns the letters of the most recent entries.
func (s *Store) Letters(limit int) ([]string, error) {
	entries, err := s.Recent(limit)
	if err != nil {
		return nil, err
	}

	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Letters
	}

	return out, nil
}

// Clear forgets every entry and returns how many were removed.
func (s *Store) Clear() (int64, error) {
	if s == nil {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	query := `DELETE FROM history`
	logSQL(query)

	result, err := s.db.Exec(query)
	if err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}

	deleted, _ := result.RowsAffected()

	return deleted, nil
}

// Close releases the database.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}

	return s.db.Close()
}
