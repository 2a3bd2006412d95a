package commands

import (
	"database/sql"
	"log/slog"

	"github.com/allisson/ciphershield/internal/database"
)

// RunMigrations applies every pending embedded migration for driver.
// Returns nil if the schema is already current.
func RunMigrations(db *sql.DB, driver string, logger *slog.Logger) error {
	logger.Info("running database migrations", slog.String("driver", driver))

	if err := database.Migrate(db, driver); err != nil {
		return err
	}

	logger.Info("migrations completed successfully")
	return nil
}
