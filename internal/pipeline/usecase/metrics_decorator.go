package usecase

import (
	"context"
	"time"

	"github.com/allisson/ciphershield/internal/metrics"
	pipelineDomain "github.com/allisson/ciphershield/internal/pipeline/domain"
)

// pipelineUseCaseWithMetrics decorates PipelineUseCase with metrics instrumentation.
type pipelineUseCaseWithMetrics struct {
	next    PipelineUseCase
	metrics metrics.BusinessMetrics
}

// NewPipelineUseCaseWithMetrics wraps a PipelineUseCase with metrics recording.
func NewPipelineUseCaseWithMetrics(useCase PipelineUseCase, m metrics.BusinessMetrics) PipelineUseCase {
	return &pipelineUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (p *pipelineUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.StatusFromError(err)
	p.metrics.RecordOperation(ctx, "pipeline", operation, status)
	p.metrics.RecordDuration(ctx, "pipeline", operation, time.Since(start), status)
}

// ProcessFiles records metrics for file batches, plus processed files and produced mapping items.
func (p *pipelineUseCaseWithMetrics) ProcessFiles(
	ctx context.Context,
	input *pipelineDomain.ProcessFilesInput,
) (*pipelineDomain.FilesResult, error) {
	start := time.Now()
	result, err := p.next.ProcessFiles(ctx, input)
	p.record(ctx, "process_files", start, err)
	if err == nil {
		p.metrics.RecordItems(ctx, "pipeline", "process_files", "file", len(result.OutputPaths))
		p.metrics.RecordItems(ctx, "pipeline", "process_files", "mapping", len(result.Items))
	}
	return result, err
}

// ProcessText records metrics for text batches.
func (p *pipelineUseCaseWithMetrics) ProcessText(
	ctx context.Context,
	input *pipelineDomain.ProcessTextInput,
) (*pipelineDomain.TextResult, error) {
	start := time.Now()
	result, err := p.next.ProcessText(ctx, input)
	p.record(ctx, "process_text", start, err)
	if err == nil {
		p.metrics.RecordItems(ctx, "pipeline", "process_text", "mapping", len(result.Items))
	}
	return result, err
}
