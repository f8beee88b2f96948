// Package migrations provides schema migrations for the history database.
package migrations

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"
)

// Migration defines a database schema migration.
type Migration interface {
	// Version returns the schema version after this migration is applied.
	Version() int

	// Description returns a human-readable summary of the change.
	Description() string

	// Up applies the migration. It must be idempotent.
	Up(db *sql.DB) error
}

var registry []Migration

// Register adds a migration to the registry. Called from init() in migration files.
func Register(m Migration) {
	registry = append(registry, m)
}

// All returns every registered migration sorted by version.
func All() []Migration {
	sorted := make([]Migration, len(registry))
	copy(sorted, registry)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Version() < sorted[j].Version()
	})

	return sorted
}

// LatestVersion returns the highest migration version available.
func LatestVersion() int {
	maxVersion := 1
	for _, m := range registry {
		if m.Version() > maxVersion {
			maxVersion = m.Version()
		}
	}

	return maxVersion
}

// GetPending returns migrations newer than currentVersion, in order.
func GetPending(currentVersion int) []Migration {
	var pending []Migration

	for _, m := range All() {
		if m.Version() > currentVersion {
			pending = append(pending, m)
		}
	}

	return pending
}

// ExecStatements executes statements in order, ignoring "already exists" errors.
func ExecStatements(db *sql.DB, statements []string) error {
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil && !isIgnorableError(err) {
			return fmt.Errorf("failed to execute statement: %w", err)
		}
	}

	return nil
}

func isIgnorableError(err error) bool {
	msg := err.Error()

	return strings.Contains(msg, "duplicate column") || strings.Contains(msg, "already exists")
}
