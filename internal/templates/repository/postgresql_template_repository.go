package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/ciphershield/internal/database"
	apperrors "github.com/allisson/ciphershield/internal/errors"
	templatesDomain "github.com/allisson/ciphershield/internal/templates/domain"
)

// PostgreSQLTemplateRepository implements TemplateRecord persistence for PostgreSQL.
// Blobs are stored as BYTEA.
type PostgreSQLTemplateRepository struct {
	db *sql.DB
}

// Create inserts a template row and sets record.ID via RETURNING.
func (p *PostgreSQLTemplateRepository) Create(ctx context.Context, record *templatesDomain.TemplateRecord) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO templates (name, mappings, custom_recognizers, created_at)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`

	err := querier.QueryRowContext(
		ctx,
		query,
		record.Name,
		record.MappingsBlob,
		record.CustomRecognizersBlob,
		record.CreatedAt,
	).Scan(&record.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to create template")
	}
	return nil
}

// Get retrieves a template row by id from the PostgreSQL database.
func (p *PostgreSQLTemplateRepository) Get(ctx context.Context, id int64) (*templatesDomain.TemplateRecord, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, mappings, custom_recognizers, created_at FROM templates WHERE id = $1`

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
func (p *PostgreSQLTemplateRepository) List(ctx context.Context) ([]*templatesDomain.TemplateRecord, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, mappings, custom_recognizers, created_at FROM templates ORDER BY id ASC`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list templates")
	}
	return collectTemplateRecords(rows)
}

// NewPostgreSQLTemplateRepository creates a new PostgreSQL template repository.
func NewPostgreSQLTemplateRepository(db *sql.DB) *PostgreSQLTemplateRepository {
	return &PostgreSQLTemplateRepository{db: db}
}
