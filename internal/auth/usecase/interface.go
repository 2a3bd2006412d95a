// Package usecase defines business logic interfaces for the local credential store.
package usecase

import (
	"context"

	authDomain "github.com/allisson/ciphershield/internal/auth/domain"
)

// CredentialRepository defines persistence operations for the local credential.
// Implementations must support transaction-aware operations via context propagation.
type CredentialRepository interface {
	// Create stores a new credential. Fails if the email already exists.
	Create(ctx context.Context, credential *authDomain.Credential) error

	// Update replaces the digest, salt and updated_at of an existing credential.
	// Returns ErrCredentialNotFound if no row matched.
	Update(ctx context.Context, credential *authDomain.Credential) error

	// GetByEmail retrieves a credential by email. Returns ErrCredentialNotFound if not found.
	GetByEmail(ctx context.Context, email string) (*authDomain.Credential, error)

	// Count returns the number of stored credentials.
	Count(ctx context.Context) (int64, error)
}

// CredentialUseCase defines the login and provisioning operations.
type CredentialUseCase interface {
	// Login checks an email/password pair against the stored credential.
	//
	// An unknown email, a wrong password or an undecodable stored credential is not an
	// error: the result carries Success=false and the user-facing message. Only storage
	// failures are returned as errors.
	Login(ctx context.Context, input *authDomain.LoginInput) (*authDomain.LoginResult, error)

	// Provision creates the first credential. Returns ErrAlreadyProvisioned if any
	// credential exists and ErrInvalidInput if the email or password fails the policy.
	Provision(ctx context.Context, input *authDomain.ProvisionInput) error

	// IsProvisioned reports whether first-run setup has completed.
	IsProvisioned(ctx context.Context) (bool, error)

	// ChangePassword re-hashes the credential under a fresh salt after verifying the
	// current password. Returns ErrInvalidCredentials on a mismatch.
	ChangePassword(ctx context.Context, input *authDomain.ChangePasswordInput) error
}
