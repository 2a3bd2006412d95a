package commands

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/allisson/ciphershield/internal/database"
)

func TestRunMigrations(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("sqlite", func(t *testing.T) {
		db, err := database.Connect(database.Config{
			Driver:           database.DriverSQLite,
			ConnectionString: ":memory:",
		})
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		require.NoError(t, RunMigrations(db, database.DriverSQLite, logger))

		var count int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM templates").Scan(&count))
		require.Equal(t, 0, count)
	})

	t.Run("invalid-driver", func(t *testing.T) {
		err := RunMigrations(nil, "invalid", logger)
		require.Error(t, err)
	})
}
