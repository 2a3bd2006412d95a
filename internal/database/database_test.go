package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_Error(t *testing.T) {
	cfg := Config{
		Driver:             "invalid",
		ConnectionString:   "invalid",
		MaxOpenConnections: 10,
		MaxIdleConnections: 5,
		ConnMaxLifetime:    time.Hour,
	}

	db, err := Connect(cfg)
	assert.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "sql: unknown driver")
}

func TestConnect_SQLite(t *testing.T) {
	db, err := Connect(Config{
		Driver:             DriverSQLite,
		ConnectionString:   ":memory:",
		MaxOpenConnections: 25,
		MaxIdleConnections: 5,
		ConnMaxLifetime:    time.Minute,
	})
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, db.Close())
	}()

	assert.Equal(t, 1, db.Stats().MaxOpenConnections)
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, ConnectionString: ":memory:"})
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, db.Close())
	}()

	require.NoError(t, Migrate(db, DriverSQLite))

	// Second run is a no-op.
	require.NoError(t, Migrate(db, DriverSQLite))

	for _, table := range []string{"credentials", "templates", "processed_files"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?",
			table,
		).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_UnsupportedDriver(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, ConnectionString: ":memory:"})
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, db.Close())
	}()

	err = Migrate(db, "oracle")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}
