package commands

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"

	authDomain "github.com/allisson/ciphershield/internal/auth/domain"
	authUseCase "github.com/allisson/ciphershield/internal/auth/usecase"
)

// RunChangePassword rotates the local credential after verifying the current password.
//
// Requirements: Database must be migrated and accessible.
func RunChangePassword(
	ctx context.Context,
	credentialUseCase authUseCase.CredentialUseCase,
	logger *slog.Logger,
	email string,
	rw IOTuple,
) error {
	reader := bufio.NewReader(rw.Reader)

	current, err := promptSecret(rw, reader, "Current password: ")
	if err != nil {
		return err
	}
	next, err := promptNewPassword(rw, reader, "New password: ")
	if err != nil {
		return err
	}

	if err := credentialUseCase.ChangePassword(ctx, &authDomain.ChangePasswordInput{
		Email:           email,
		CurrentPassword: current,
		NewPassword:     next,
	}); err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}

	_, _ = fmt.Fprintf(rw.Writer, "Password changed for %s\n", email)
	logger.Info("credential password changed", slog.String("email", email))
	return nil
}
