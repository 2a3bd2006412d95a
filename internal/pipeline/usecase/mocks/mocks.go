// Package mocks provides test doubles for the pipeline use case and its item processor.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	pipelineDomain "github.com/allisson/ciphershield/internal/pipeline/domain"
	"github.com/allisson/ciphershield/internal/pipeline/service"
)

// MockItemProcessor is a mock implementation of service.ItemProcessor.
type MockItemProcessor struct {
	mock.Mock
}

// Process mocks the Process method.
func (m *MockItemProcessor) Process(
	ctx context.Context,
	ws *service.Workspace,
	item *pipelineDomain.Item,
) (*pipelineDomain.ItemOutcome, error) {
	args := m.Called(ctx, ws, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pipelineDomain.ItemOutcome), args.Error(1)
}

// MockPipelineUseCase is a mock implementation of usecase.PipelineUseCase.
type MockPipelineUseCase struct {
	mock.Mock
}

// ProcessFiles mocks the ProcessFiles method.
func (m *MockPipelineUseCase) ProcessFiles(
	ctx context.Context,
	input *pipelineDomain.ProcessFilesInput,
) (*pipelineDomain.FilesResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pipelineDomain.FilesResult), args.Error(1)
}

// ProcessText mocks the ProcessText method.
func (m *MockPipelineUseCase) ProcessText(
	ctx context.Context,
	input *pipelineDomain.ProcessTextInput,
) (*pipelineDomain.TextResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pipelineDomain.TextResult), args.Error(1)
}
