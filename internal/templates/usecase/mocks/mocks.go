// Package mocks provides mock implementations of the template usecase interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	templatesDomain "github.com/allisson/ciphershield/internal/templates/domain"
)

// MockTemplateRepository is a mock implementation of TemplateRepository.
type MockTemplateRepository struct {
	mock.Mock
}

// Create mocks the Create method.
func (m *MockTemplateRepository) Create(ctx context.Context, record *templatesDomain.TemplateRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// Get mocks the Get method.
func (m *MockTemplateRepository) Get(ctx context.Context, id int64) (*templatesDomain.TemplateRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*templatesDomain.TemplateRecord), args.Error(1)
}

// List mocks the List method.
func (m *MockTemplateRepository) List(ctx context.Context) ([]*templatesDomain.TemplateRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*templatesDomain.TemplateRecord), args.Error(1)
}

// MockTemplateUseCase is a mock implementation of TemplateUseCase.
type MockTemplateUseCase struct {
	mock.Mock
}

// Insert mocks the Insert method.
func (m *MockTemplateUseCase) Insert(ctx context.Context, input *templatesDomain.CreateTemplateInput) (int64, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(int64), args.Error(1)
}

// List mocks the List method.
func (m *MockTemplateUseCase) List(ctx context.Context) ([]*templatesDomain.Template, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*templatesDomain.Template), args.Error(1)
}

// Get mocks the Get method.
func (m *MockTemplateUseCase) Get(ctx context.Context, id int64) (*templatesDomain.Template, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*templatesDomain.Template), args.Error(1)
}

// GetMappings mocks the GetMappings method.
func (m *MockTemplateUseCase) GetMappings(ctx context.Context, id int64) ([]templatesDomain.MappingItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]templatesDomain.MappingItem), args.Error(1)
}
