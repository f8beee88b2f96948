package history

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kedare/wordsmith/internal/history/migrations"
	"github.com/kedare/wordsmith/internal/logger"
)

// SchemaVersion is the schema version a fully migrated database reports.
var SchemaVersion = migrations.LatestVersion()

const createMetadataTable = `
	CREATE TABLE IF NOT EXISTS metadata (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`

// initSchema creates the base (v1) schema.
func initSchema(db *sql.DB) error {
	logSQL(createMetadataTable)

	if _, err := db.Exec(createMetadataTable); err != nil {
		return fmt.Errorf("failed to create metadata table: %w", err)
	}

	return nil
}

// getSchemaVersion returns 0 for a database that has never been versioned.
func getSchemaVersion(db *sql.DB) (int, error) {
	var version int

	query := "SELECT value FROM metadata WHERE key = 'schema_version'"
	logSQL(query)

	err := db.QueryRow(query).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}

	if err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}

	return version, nil
}

func setSchemaVersion(db *sql.DB, version int) error {
	query := "INSERT OR REPLACE INTO metadata (key, value) VALUES ('schema_version', ?)"
	logSQL(query, version)

	if _, err := db.Exec(query, version); err != nil {
		return fmt.Errorf("failed to set schema version: %w", err)
	}

	return nil
}

// migrate brings db from currentVersion to SchemaVersion. Existing files are
// copied to <path>.bak first and the copy is removed once every step succeeds.
func migrate(db *sql.DB, currentVersion int, dbPath string) error {
	pending := migrations.GetPending(currentVersion)
	if len(pending) == 0 {
		return nil
	}

	logger.Log.Debugf("Migrating history schema from version %d to %d", currentVersion, SchemaVersion)

	backedUp := false
	if currentVersion > 0 {
		if err := backupDatabase(dbPath); err != nil {
			logger.Log.Warnf("Failed to back up history before migration: %v", err)
		} else {
			backedUp = true
		}
	}

	for _, m := range pending {
		logger.Log.Debugf("Applying migration v%d: %s", m.Version(), m.Description())

		if err := m.Up(db); err != nil {
			return fmt.Errorf("migration v%d failed: %w", m.Version(), err)
		}
	}

	if err := setSchemaVersion(db, SchemaVersion); err != nil {
		return err
	}

	if backedUp {
		removeBackup(dbPath)
	}

	return nil
}

func backupDatabase(dbPath string) error {
	src, err := os.Open(dbPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("failed to open database for backup: %w", err)
	}
	defer func() { _ = src.Close() }()

	dst, err := os.OpenFile(dbPath+".bak", os.O_RDWR|os.O_CREATE|os.O_TRUNC, FilePermissions)
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	defer func() { _ = dst.Close() }()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to copy database to backup: %w", err)
	}

	return nil
}

func removeBackup(dbPath string) {
	if err := os.Remove(dbPath + ".bak"); err != nil && !os.IsNotExist(err) {
		logger.Log.Debugf("Failed to remove backup file: %v", err)
	}
}

func logSQL(query string, args ...any) {
	if len(args) == 0 {
		logger.Log.Tracef("SQL: %s", query)

		return
	}

	logger.Log.Tracef("SQL: %s %v", query, args)
}
