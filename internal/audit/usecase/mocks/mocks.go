// Package mocks provides mock implementations of the processed-file usecase interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	auditDomain "github.com/allisson/ciphershield/internal/audit/domain"
)

// MockProcessedFileUseCase is a mock implementation of ProcessedFileUseCase.
type MockProcessedFileUseCase struct {
	mock.Mock
}

// Record mocks the Record method.
func (m *MockProcessedFileUseCase) Record(ctx context.Context, files []*auditDomain.ProcessedFile) error {
	args := m.Called(ctx, files)
	return args.Error(0)
}

// List mocks the List method.
func (m *MockProcessedFileUseCase) List(
	ctx context.Context,
	offset, limit int,
) ([]*auditDomain.ProcessedFile, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*auditDomain.ProcessedFile), args.Error(1)
}

// Rename mocks the Rename method.
func (m *MockProcessedFileUseCase) Rename(ctx context.Context, id int64, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}
