package repository

import (
	"context"
	"database/sql"

	auditDomain "github.com/allisson/ciphershield/internal/audit/domain"
	"github.com/allisson/ciphershield/internal/database"
	apperrors "github.com/allisson/ciphershield/internal/errors"
)

// MySQLProcessedFileRepository implements ProcessedFile persistence for MySQL.
type MySQLProcessedFileRepository struct {
	db *sql.DB
}

// Create appends a record and sets its ID from LAST_INSERT_ID().
func (m *MySQLProcessedFileRepository) Create(ctx context.Context, file *auditDomain.ProcessedFile) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO processed_files (name, path, action, created_at) VALUES (?, ?, ?, ?)`

	result, err := querier.ExecContext(ctx, query, file.Name, file.Path, file.Action, file.CreatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to create processed file")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to read processed file id")
	}
	file.ID = id
	return nil
}

// List returns records newest first.
func (m *MySQLProcessedFileRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*auditDomain.ProcessedFile, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, path, action, created_at FROM processed_files
			  ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list processed files")
	}
	return collectProcessedFiles(rows)
}

// Rename changes the display name of a record.
// Renaming to the current name reports zero affected rows unless the DSN sets clientFoundRows=true.
func (m *MySQLProcessedFileRepository) Rename(ctx context.Context, id int64, name string) error {
	querier := database.GetTx(ctx, m.db)

	result, err := querier.ExecContext(ctx, `UPDATE processed_files SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to rename processed file")
	}
	return checkRenamed(result)
}

// NewMySQLProcessedFileRepository creates a new MySQL processed-file repository.
func NewMySQLProcessedFileRepository(db *sql.DB) *MySQLProcessedFileRepository {
	return &MySQLProcessedFileRepository{db: db}
}
