// Package usecase implements business logic orchestration for the local credential store.
package usecase

import (
	"context"
	"log/slog"
	"time"

	validation "github.com/jellydator/validation"

	authDomain "github.com/allisson/ciphershield/internal/auth/domain"
	authService "github.com/allisson/ciphershield/internal/auth/service"
	"github.com/allisson/ciphershield/internal/database"
	apperrors "github.com/allisson/ciphershield/internal/errors"
	customValidation "github.com/allisson/ciphershield/internal/validation"
)

// credentialUseCase implements CredentialUseCase.
type credentialUseCase struct {
	txManager      database.TxManager
	credentialRepo CredentialRepository
	passwordHasher authService.PasswordHasher
	logger         *slog.Logger
}

// Login looks up the credential by email and verifies the password in constant time.
// A stored hash or salt that cannot be decoded is logged and reported as invalid
// credentials, so only repository failures surface as errors.
func (c *credentialUseCase) Login(
	ctx context.Context,
	input *authDomain.LoginInput,
) (*authDomain.LoginResult, error) {
	credential, err := c.credentialRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if apperrors.Is(err, authDomain.ErrCredentialNotFound) {
			return &authDomain.LoginResult{Error: authDomain.MessageUserNotFound}, nil
		}
		return nil, err
	}

	ok, err := c.passwordHasher.Verify(input.Password, credential.PasswordHash, credential.Salt)
	if err != nil {
		c.logger.Error("stored credential is unreadable",
			slog.String("email", credential.Email),
			slog.Any("error", err),
		)
		return &authDomain.LoginResult{Error: authDomain.MessageInvalidCredentials}, nil
	}
	if !ok {
		return &authDomain.LoginResult{Error: authDomain.MessageInvalidCredentials}, nil
	}

	return &authDomain.LoginResult{Success: true}, nil
}

// Provision stores the first credential inside a transaction so two concurrent setup
// attempts cannot both succeed.
func (c *credentialUseCase) Provision(ctx context.Context, input *authDomain.ProvisionInput) error {
	if err := validateCredential(input.Email, input.Password); err != nil {
		return err
	}

	digest, salt, err := c.passwordHasher.Hash(input.Password)
	if err != nil {
		return err
	}

	return c.txManager.WithTx(ctx, func(ctx context.Context) error {
		count, err := c.credentialRepo.Count(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			return authDomain.ErrAlreadyProvisioned
		}

		now := time.Now().UTC()
		return c.credentialRepo.Create(ctx, &authDomain.Credential{
			Email:        input.Email,
			PasswordHash: digest,
			Salt:         salt,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	})
}

// IsProvisioned reports whether any credential exists.
func (c *credentialUseCase) IsProvisioned(ctx context.Context) (bool, error) {
	count, err := c.credentialRepo.Count(ctx)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ChangePassword verifies the current password, then stores a new digest under a new salt.
func (c *credentialUseCase) ChangePassword(ctx context.Context, input *authDomain.ChangePasswordInput) error {
	if err := validateCredential(input.Email, input.NewPassword); err != nil {
		return err
	}

	return c.txManager.WithTx(ctx, func(ctx context.Context) error {
		credential, err := c.credentialRepo.GetByEmail(ctx, input.Email)
		if err != nil {
			return err
		}

		ok, err := c.passwordHasher.Verify(input.CurrentPassword, credential.PasswordHash, credential.Salt)
		if err != nil {
			return err
		}
		if !ok {
			return authDomain.ErrInvalidCredentials
		}

		digest, salt, err := c.passwordHasher.Hash(input.NewPassword)
		if err != nil {
			return err
		}

		credential.PasswordHash = digest
		credential.Salt = salt
		credential.UpdatedAt = time.Now().UTC()
		return c.credentialRepo.Update(ctx, credential)
	})
}

func validateCredential(email, password string) error {
	err := validation.Errors{
		"email":    validation.Validate(email, validation.Required, customValidation.Email),
		"password": validation.Validate(password, validation.Required, validation.Length(0, 128), customValidation.CredentialPassword),
	}.Filter()
	return customValidation.WrapValidationError(err)
}

// NewCredentialUseCase creates a new CredentialUseCase with the provided dependencies.
func NewCredentialUseCase(
	txManager database.TxManager,
	credentialRepo CredentialRepository,
	passwordHasher authService.PasswordHasher,
	logger *slog.Logger,
) CredentialUseCase {
	return &credentialUseCase{
		txManager:      txManager,
		credentialRepo: credentialRepo,
		passwordHasher: passwordHasher,
		logger:         logger,
	}
}
