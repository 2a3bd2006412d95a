// Package repository implements template persistence for SQLite, PostgreSQL and MySQL.
//
// Mapping and recognizer lists are stored as opaque blobs and read back wholesale.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/ciphershield/internal/database"
	apperrors "github.com/allisson/ciphershield/internal/errors"
	templatesDomain "github.com/allisson/ciphershield/internal/templates/domain"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTemplateRecord(row rowScanner) (*templatesDomain.TemplateRecord, error) {
	var record templatesDomain.TemplateRecord
	err := row.Scan(
		&record.ID,
		&record.Name,
		&record.MappingsBlob,
		&record.CustomRecognizersBlob,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func collectTemplateRecords(rows *sql.Rows) ([]*templatesDomain.TemplateRecord, error) {
	defer func() {
		_ = rows.Close()
	}()

	records := make([]*templatesDomain.TemplateRecord, 0)
	for rows.Next() {
		record, err := scanTemplateRecord(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan template")
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate templates")
	}
	return records, nil
}

// SQLiteTemplateRepository implements TemplateRecord persistence for SQLite.
type SQLiteTemplateRepository struct {
	db *sql.DB
}

// Create inserts a template row and sets record.ID from the generated rowid.
func (s *SQLiteTemplateRepository) Create(ctx context.Context, record *templatesDomain.TemplateRecord) error {
	querier := database.GetTx(ctx, s.db)

	query := `INSERT INTO templates (name, mappings, custom_recognizers, created_at) VALUES (?, ?, ?, ?)`

	result, err := querier.ExecContext(
		ctx,
		query,
		record.Name,
		record.MappingsBlob,
		record.CustomRecognizersBlob,
		record.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create template")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to read template id")
	}
	record.ID = id
	return nil
}

// Get retrieves a template row by id. Returns ErrTemplateNotFound if absent.
func (s *SQLiteTemplateRepository) Get(ctx context.Context, id int64) (*templatesDomain.TemplateRecord, error) {
	querier := database.GetTx(ctx, s.db)

	query := `SELECT id, name, mappings, custom_recognizers, created_at FROM templates WHERE id = ?`

	record, err := scanTemplateRecord(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, templatesDomain.ErrTemplateNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get template")
	}
	return record, nil
}

// List returns every template row ordered by id.
func (s *SQLiteTemplateRepository) List(ctx context.Context) ([]*templatesDomain.TemplateRecord, error) {
	querier := database.GetTx(ctx, s.db)

	query := `SELECT id, name, mappings, custom_recognizers, created_at FROM templates ORDER BY id ASC`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list templates")
	}
	return collectTemplateRecords(rows)
}

// NewSQLiteTemplateRepository creates a new SQLite template repository.
func NewSQLiteTemplateRepository(db *sql.DB) *SQLiteTemplateRepository {
	return &SQLiteTemplateRepository{db: db}
}
