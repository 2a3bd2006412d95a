package usecase

import (
	"context"
	"time"

	authDomain "github.com/allisson/ciphershield/internal/auth/domain"
	"github.com/allisson/ciphershield/internal/metrics"
)

// credentialUseCaseWithMetrics decorates CredentialUseCase with metrics instrumentation.
type credentialUseCaseWithMetrics struct {
	next    CredentialUseCase
	metrics metrics.BusinessMetrics
}

// NewCredentialUseCaseWithMetrics wraps a CredentialUseCase with metrics recording.
func NewCredentialUseCaseWithMetrics(useCase CredentialUseCase, m metrics.BusinessMetrics) CredentialUseCase {
	return &credentialUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Login records metrics for login attempts. A rejected login is recorded as "denied".
func (c *credentialUseCaseWithMetrics) Login(
	ctx context.Context,
	input *authDomain.LoginInput,
) (*authDomain.LoginResult, error) {
	start := time.Now()
	result, err := c.next.Login(ctx, input)

	status := metrics.StatusFromError(err)
	if err == nil && !result.Success {
		status = "denied"
	}

	c.metrics.RecordOperation(ctx, "auth", "login", status)
	c.metrics.RecordDuration(ctx, "auth", "login", time.Since(start), status)

	return result, err
}

// Provision records metrics for first-run provisioning.
func (c *credentialUseCaseWithMetrics) Provision(ctx context.Context, input *authDomain.ProvisionInput) error {
	start := time.Now()
	err := c.next.Provision(ctx, input)

	status := metrics.StatusFromError(err)
	c.metrics.RecordOperation(ctx, "auth", "provision", status)
	c.metrics.RecordDuration(ctx, "auth", "provision", time.Since(start), status)

	return err
}

// IsProvisioned is not instrumented; it backs a status probe polled by the UI.
func (c *credentialUseCaseWithMetrics) IsProvisioned(ctx context.Context) (bool, error) {
	return c.next.IsProvisioned(ctx)
}

// ChangePassword records metrics for password rotation.
func (c *credentialUseCaseWithMetrics) ChangePassword(
	ctx context.Context,
	input *authDomain.ChangePasswordInput,
) error {
	start := time.Now()
	err := c.next.ChangePassword(ctx, input)

	status := metrics.StatusFromError(err)
	c.metrics.RecordOperation(ctx, "auth", "change_password", status)
	c.metrics.RecordDuration(ctx, "auth", "change_password", time.Since(start), status)

	return err
}
