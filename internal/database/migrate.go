package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/allisson/ciphershield/migrations"
)

// Migrate applies every pending embedded migration for driver to db.
// Returns nil when the schema is already current.
func Migrate(db *sql.DB, driver string) error {
	dir, err := migrationsDir(driver)
	if err != nil {
		return err
	}

	src, err := iofs.New(migrations.FS, dir)
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	defer func() {
		_ = src.Close()
	}()

	dbDriver, err := newMigrateDriver(db, driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate driver: %w", err)
	}

	// The sqlite driver closes the shared *sql.DB on Close; the others only
	// release the dedicated connection they grabbed.
	if driver != DriverSQLite {
		defer func() {
			_ = dbDriver.Close()
		}()
	}

	m, err := migrate.NewWithInstance("iofs", src, driver, dbDriver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func migrationsDir(driver string) (string, error) {
	switch driver {
	case DriverSQLite:
		return "sqlite", nil
	case DriverPostgres:
		return "postgresql", nil
	case DriverMySQL:
		return "mysql", nil
	default:
		return "", fmt.Errorf("unsupported database driver: %s", driver)
	}
}

func newMigrateDriver(db *sql.DB, driver string) (migratedb.Driver, error) {
	switch driver {
	case DriverSQLite:
		return sqlite.WithInstance(db, &sqlite.Config{})
	case DriverPostgres:
		return postgres.WithInstance(db, &postgres.Config{})
	case DriverMySQL:
		return mysql.WithInstance(db, &mysql.Config{})
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}
