package repository

import (
	"context"
	"database/sql"
	"errors"

	authDomain "github.com/allisson/ciphershield/internal/auth/domain"
	"github.com/allisson/ciphershield/internal/database"
	apperrors "github.com/allisson/ciphershield/internal/errors"
)

// PostgreSQLCredentialRepository implements Credential persistence for PostgreSQL.
type PostgreSQLCredentialRepository struct {
	db *sql.DB
}

// Create inserts a new Credential into the PostgreSQL database.
func (p *PostgreSQLCredentialRepository) Create(ctx context.Context, credential *authDomain.Credential) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO credentials (email, password_hash, salt, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := querier.ExecContext(
		ctx,
		query,
		credential.Email,
		credential.PasswordHash,
		credential.Salt,
		credential.CreatedAt,
		credential.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create credential")
	}
	return nil
}

// Update replaces the digest and salt of an existing Credential.
func (p *PostgreSQLCredentialRepository) Update(ctx context.Context, credential *authDomain.Credential) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE credentials
			  SET password_hash = $1,
			      salt = $2,
			      updated_at = $3
			  WHERE email = $4`

	result, err := querier.ExecContext(
		ctx,
		query,
		credential.PasswordHash,
		credential.Salt,
		credential.UpdatedAt,
		credential.Email,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update credential")
	}

	return checkAffected(result)
}

// GetByEmail retrieves a Credential by email from the PostgreSQL database.
func (p *PostgreSQLCredentialRepository) GetByEmail(
	ctx context.Context,
	email string,
) (*authDomain.Credential, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT email, password_hash, salt, created_at, updated_at FROM credentials WHERE email = $1`

	var credential authDomain.Credential
	err := querier.QueryRowContext(ctx, query, email).Scan(
		&credential.Email,
		&credential.PasswordHash,
		&credential.Salt,
		&credential.CreatedAt,
		&credential.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, authDomain.ErrCredentialNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get credential")
	}

	return &credential, nil
}

// Count returns the number of stored credentials.
func (p *PostgreSQLCredentialRepository) Count(ctx context.Context) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	var count int64
	if err := querier.QueryRowContext(ctx, `SELECT COUNT(*) FROM credentials`).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count credentials")
	}
	return count, nil
}

// NewPostgreSQLCredentialRepository creates a new PostgreSQL Credential repository.
func NewPostgreSQLCredentialRepository(db *sql.DB) *PostgreSQLCredentialRepository {
	return &PostgreSQLCredentialRepository{db: db}
}
