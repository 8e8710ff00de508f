package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDialect(t *testing.T) {
	d, err := ParseDialect("sqlite")
	require.NoError(t, err)
	assert.Equal(t, SQLite, d)

	d, err = ParseDialect("postgres")
	require.NoError(t, err)
	assert.Equal(t, Postgres, d)

	_, err = ParseDialect("mysql")
	assert.ErrorContains(t, err, "mysql")
}

func TestMigrateSQLite(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	defer db.Close()

	version, _, err := MigrationVersion(db, SQLite)
	require.NoError(t, err)
	assert.Zero(t, version)

	require.NoError(t, Migrate(db, SQLite))
	// Second run is a no-op.
	require.NoError(t, Migrate(db, SQLite))

	version, dirty, err := MigrationVersion(db, SQLite)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)

	_, err = db.Exec(`INSERT INTO containers (container_id, name, latitude, longitude, vehicle_id) VALUES (1, 'c1', 41.0, 29.0, 7)`)
	require.NoError(t, err)
}

func TestMigrateUnsupportedDialect(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	defer db.Close()

	assert.Error(t, Migrate(db, Dialect("oracle")))
}
