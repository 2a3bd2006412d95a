// Package mocks provides mock implementations of the credential usecase interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/ciphershield/internal/auth/domain"
)

// MockCredentialRepository is a mock implementation of CredentialRepository.
type MockCredentialRepository struct {
	mock.Mock
}

// Create mocks the Create method.
func (m *MockCredentialRepository) Create(ctx context.Context, credential *authDomain.Credential) error {
	args := m.Called(ctx, credential)
	return args.Error(0)
}

// Update mocks the Update method.
func (m *MockCredentialRepository) Update(ctx context.Context, credential *authDomain.Credential) error {
	args := m.Called(ctx, credential)
	return args.Error(0)
}

// GetByEmail mocks the GetByEmail method.
func (m *MockCredentialRepository) GetByEmail(ctx context.Context, email string) (*authDomain.Credential, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Credential), args.Error(1)
}

// Count mocks the Count method.
func (m *MockCredentialRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockCredentialUseCase is a mock implementation of CredentialUseCase.
type MockCredentialUseCase struct {
	mock.Mock
}

// Login mocks the Login method.
func (m *MockCredentialUseCase) Login(
	ctx context.Context,
	input *authDomain.LoginInput,
) (*authDomain.LoginResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.LoginResult), args.Error(1)
}

// Provision mocks the Provision method.
func (m *MockCredentialUseCase) Provision(ctx context.Context, input *authDomain.ProvisionInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

// IsProvisioned mocks the IsProvisioned method.
func (m *MockCredentialUseCase) IsProvisioned(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

// ChangePassword mocks the ChangePassword method.
func (m *MockCredentialUseCase) ChangePassword(ctx context.Context, input *authDomain.ChangePasswordInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

// MockPasswordHasher is a mock implementation of PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// Hash mocks the Hash method.
func (m *MockPasswordHasher) Hash(password string) (string, string, error) {
	args := m.Called(password)
	return args.String(0), args.String(1), args.Error(2)
}

// Verify mocks the Verify method.
func (m *MockPasswordHasher) Verify(password, digest, salt string) (bool, error) {
	args := m.Called(password, digest, salt)
	return args.Bool(0), args.Error(1)
}
