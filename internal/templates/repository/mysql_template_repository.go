package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/ciphershield/internal/database"
	apperrors "github.com/allisson/ciphershield/internal/errors"
	templatesDomain "github.com/allisson/ciphershield/internal/templates/domain"
)

// MySQLTemplateRepository implements TemplateRecord persistence for MySQL.
// Blobs are stored as LONGBLOB.
type MySQLTemplateRepository struct {
	db *sql.DB
}

// Create inserts a template row and sets record.ID from LAST_INSERT_ID().
func (m *MySQLTemplateRepository) Create(ctx context.Context, record *templatesDomain.TemplateRecord) error {
	querier := database.GetTx(ctx, m.db)

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

// Get retrieves a template row by id from the MySQL database.
func (m *MySQLTemplateRepository) Get(ctx context.Context, id int64) (*templatesDomain.TemplateRecord, error) {
	querier := database.GetTx(ctx, m.db)

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
func (m *MySQLTemplateRepository) List(ctx context.Context) ([]*templatesDomain.TemplateRecord, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, mappings, custom_recognizers, created_at FROM templates ORDER BY id ASC`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list templates")
	}
	return collectTemplateRecords(rows)
}

// NewMySQLTemplateRepository creates a new MySQL template repository.
func NewMySQLTemplateRepository(db *sql.DB) *MySQLTemplateRepository {
	return &MySQLTemplateRepository{db: db}
}
