package db

import (
	"database/sql"
	"errors"
	"fmt"
)

// CurrentSchemaVersion is the schema version this build writes and reads.
const CurrentSchemaVersion = 1

// ErrSchemaTooNew is returned when the database was written by a newer build.
var ErrSchemaTooNew = errors.New("database schema is newer than this build")

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS kv_store (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS schema_meta (
		id      INTEGER PRIMARY KEY CHECK (id = 1),
		version INTEGER NOT NULL
	)`,
	`INSERT OR IGNORE INTO schema_meta (id, version) VALUES (1, 1)`,
}

// Migrate runs all schema migrations. Statements are idempotent so it is
// safe to call on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// SchemaVersion returns the recorded schema version.
func SchemaVersion(db *sql.DB) (int, error) {
	var v int
	if err := db.QueryRow(`SELECT version FROM schema_meta WHERE id = 1`).Scan(&v); err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return v, nil
}

// checkSchemaVersion refuses databases written by a newer schema.
func checkSchemaVersion(db *sql.DB) error {
	v, err := SchemaVersion(db)
	if err != nil {
		return err
	}
	if v > CurrentSchemaVersion {
		return fmt.Errorf("%w: version %d, supported %d", ErrSchemaTooNew, v, CurrentSchemaVersion)
	}
	return nil
}
