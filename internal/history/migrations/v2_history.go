package migrations

import "database/sql"

func init() {
	Register(&v2History{})
}

// v2History adds the table of submitted letter sets.
type v2History struct{}

func (m *v2History) Version() int {
	return 2
}

func (m *v2History) Description() string {
	return "Add history table for submitted letters"
}

func (m *v2History) Up(db *sql.DB) error {
	return ExecStatements(db, []string{
		`CREATE TABLE IF NOT EXISTS history (
			letters TEXT PRIMARY KEY,
			last_used INTEGER NOT NULL,
			uses INTEGER NOT NULL DEFAULT 1
		)`,
	})
}
