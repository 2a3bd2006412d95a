// Package mocks provides test doubles for the engine client.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/ciphershield/internal/engine/domain"
)

// MockClient is a mock implementation of client.Client.
type MockClient struct {
	mock.Mock
}

// Process mocks the Process method.
func (m *MockClient) Process(ctx context.Context, req *domain.Request) (*domain.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Response), args.Error(1)
}
