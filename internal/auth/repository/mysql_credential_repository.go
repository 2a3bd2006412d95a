package repository

import (
	"context"
	"database/sql"
	"errors"

	authDomain "github.com/allisson/ciphershield/internal/auth/domain"
	"github.com/allisson/ciphershield/internal/database"
	apperrors "github.com/allisson/ciphershield/internal/errors"
)

// MySQLCredentialRepository implements Credential persistence for MySQL.
type MySQLCredentialRepository struct {
	db *sql.DB
}

// Create inserts a new Credential into the MySQL database.
func (m *MySQLCredentialRepository) Create(ctx context.Context, credential *authDomain.Credential) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO credentials (email, password_hash, salt, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?)`

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
// MySQL reports zero affected rows when the new values equal the old ones, which cannot
// happen here because every re-hash draws a new salt.
func (m *MySQLCredentialRepository) Update(ctx context.Context, credential *authDomain.Credential) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE credentials SET password_hash = ?, salt = ?, updated_at = ? WHERE email = ?`

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

// GetByEmail retrieves a Credential by email from the MySQL database.
func (m *MySQLCredentialRepository) GetByEmail(ctx context.Context, email string) (*authDomain.Credential, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT email, password_hash, salt, created_at, updated_at FROM credentials WHERE email = ?`

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
func (m *MySQLCredentialRepository) Count(ctx context.Context) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	var count int64
	if err := querier.QueryRowContext(ctx, `SELECT COUNT(*) FROM credentials`).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count credentials")
	}
	return count, nil
}

// NewMySQLCredentialRepository creates a new MySQL Credential repository.
func NewMySQLCredentialRepository(db *sql.DB) *MySQLCredentialRepository {
	return &MySQLCredentialRepository{db: db}
}
