package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"kv_store", "schema_meta"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestSchemaVersion(t *testing.T) {
	db := openTestDB(t)

	v, err := SchemaVersion(db)
	require.NoError(t, err)
	assert.Equal(t, CurrentSchemaVersion, v)
}

func TestOpenDB_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "jornada.db")

	db, err := OpenDB(path)
	require.NoError(t, err)
	defer db.Close()

	assert.FileExists(t, path)
}

func TestOpenDB_RejectsNewerSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jornada.db")

	db, err := OpenDB(path)
	require.NoError(t, err)
	_, err = db.Exec(`UPDATE schema_meta SET version = ? WHERE id = 1`, CurrentSchemaVersion+1)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = OpenDB(path)
	assert.ErrorIs(t, err, ErrSchemaTooNew)
}
