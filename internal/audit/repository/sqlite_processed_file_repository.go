// Package repository implements processed-file log persistence for SQLite, PostgreSQL and MySQL.
package repository

import (
	"context"
	"database/sql"

	auditDomain "github.com/allisson/ciphershield/internal/audit/domain"
	"github.com/allisson/ciphershield/internal/database"
	apperrors "github.com/allisson/ciphershield/internal/errors"
)

func collectProcessedFiles(rows *sql.Rows) ([]*auditDomain.ProcessedFile, error) {
	defer func() {
		_ = rows.Close()
	}()

	files := make([]*auditDomain.ProcessedFile, 0)
	for rows.Next() {
		var file auditDomain.ProcessedFile
		if err := rows.Scan(&file.ID, &file.Name, &file.Path, &file.Action, &file.CreatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan processed file")
		}
		files = append(files, &file)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate processed files")
	}
	return files, nil
}

func checkRenamed(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if rows == 0 {
		return auditDomain.ErrProcessedFileNotFound
	}
	return nil
}

// SQLiteProcessedFileRepository implements ProcessedFile persistence for SQLite.
type SQLiteProcessedFileRepository struct {
	db *sql.DB
}

// Create appends a record and sets its ID.
func (s *SQLiteProcessedFileRepository) Create(ctx context.Context, file *auditDomain.ProcessedFile) error {
	querier := database.GetTx(ctx, s.db)

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
func (s *SQLiteProcessedFileRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*auditDomain.ProcessedFile, error) {
	querier := database.GetTx(ctx, s.db)

	query := `SELECT id, name, path, action, created_at FROM processed_files
			  ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list processed files")
	}
	return collectProcessedFiles(rows)
}

// Rename changes the display name of a record.
func (s *SQLiteProcessedFileRepository) Rename(ctx context.Context, id int64, name string) error {
	querier := database.GetTx(ctx, s.db)

	result, err := querier.ExecContext(ctx, `UPDATE processed_files SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to rename processed file")
	}
	return checkRenamed(result)
}

// NewSQLiteProcessedFileRepository creates a new SQLite processed-file repository.
func NewSQLiteProcessedFileRepository(db *sql.DB) *SQLiteProcessedFileRepository {
	return &SQLiteProcessedFileRepository{db: db}
}
