package repository

import (
	"context"
	"database/sql"

	auditDomain "github.com/allisson/ciphershield/internal/audit/domain"
	"github.com/allisson/ciphershield/internal/database"
	apperrors "github.com/allisson/ciphershield/internal/errors"
)

// PostgreSQLProcessedFileRepository implements ProcessedFile persistence for PostgreSQL.
type PostgreSQLProcessedFileRepository struct {
	db *sql.DB
}

// Create appends a record and sets its ID via RETURNING.
func (p *PostgreSQLProcessedFileRepository) Create(ctx context.Context, file *auditDomain.ProcessedFile) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO processed_files (name, path, action, created_at)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`

	err := querier.QueryRowContext(ctx, query, file.Name, file.Path, file.Action, file.CreatedAt).Scan(&file.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to create processed file")
	}
	return nil
}

// List returns records newest first.
func (p *PostgreSQLProcessedFileRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*auditDomain.ProcessedFile, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, path, action, created_at FROM processed_files
			  ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list processed files")
	}
	return collectProcessedFiles(rows)
}

// Rename changes the display name of a record.
func (p *PostgreSQLProcessedFileRepository) Rename(ctx context.Context, id int64, name string) error {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(ctx, `UPDATE processed_files SET name = $1 WHERE id = $2`, name, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to rename processed file")
	}
	return checkRenamed(result)
}

// NewPostgreSQLProcessedFileRepository creates a new PostgreSQL processed-file repository.
func NewPostgreSQLProcessedFileRepository(db *sql.DB) *PostgreSQLProcessedFileRepository {
	return &PostgreSQLProcessedFileRepository{db: db}
}
