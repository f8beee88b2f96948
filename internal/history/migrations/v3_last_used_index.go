package migrations

import "database/sql"

func init() {
	Register(&v3LastUsedIndex{})
}

// v3LastUsedIndex speeds up the most-recent-first listing.
type v3LastUsedIndex struct{}

func (m *v3LastUsedIndex) Version() int {
	return 3
}

func (m *v3LastUsedIndex) Description() string {
	return "Index history by last use"
}

func (m *v3LastUsedIndex) Up(db *sql.DB) error {
	return ExecStatements(db, []string{
		`CREATE INDEX IF NOT EXISTS idx_history_last_used ON history(last_used DESC)`,
	})
}
