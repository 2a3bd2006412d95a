// Package repository implements credential persistence.
//
// Provides SQLite, PostgreSQL and MySQL implementations with transaction support via
// database.GetTx(). SQLite is the default desktop-local store.
package repository

import (
	"context"
	"database/sql"
	"errors"

	authDomain "github.com/allisson/ciphershield/internal/auth/domain"
	"github.com/allisson/ciphershield/internal/database"
	apperrors "github.com/allisson/ciphershield/internal/errors"
)

// SQLiteCredentialRepository implements Credential persistence for SQLite.
type SQLiteCredentialRepository struct {
	db *sql.DB
}

// Create inserts a new Credential. The email primary key rejects duplicates.
func (s *SQLiteCredentialRepository) Create(ctx context.Context, credential *authDomain.Credential) error {
	querier := database.GetTx(ctx, s.db)

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
func (s *SQLiteCredentialRepository) Update(ctx context.Context, credential *authDomain.Credential) error {
	querier := database.GetTx(ctx, s.db)

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

// GetByEmail retrieves a Credential by email. Returns ErrCredentialNotFound if absent.
func (s *SQLiteCredentialRepository) GetByEmail(ctx context.Context, email string) (*authDomain.Credential, error) {
	querier := database.GetTx(ctx, s.db)

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
func (s *SQLiteCredentialRepository) Count(ctx context.Context) (int64, error) {
	querier := database.GetTx(ctx, s.db)

	var count int64
	if err := querier.QueryRowContext(ctx, `SELECT COUNT(*) FROM credentials`).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count credentials")
	}
	return count, nil
}

// NewSQLiteCredentialRepository creates a new SQLite Credential repository.
func NewSQLiteCredentialRepository(db *sql.DB) *SQLiteCredentialRepository {
	return &SQLiteCredentialRepository{db: db}
}

func checkAffected(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if rows == 0 {
		return authDomain.ErrCredentialNotFound
	}
	return nil
}
