package usecase

import (
	"context"
	"time"

	"github.com/allisson/ciphershield/internal/metrics"
	templatesDomain "github.com/allisson/ciphershield/internal/templates/domain"
)

// templateUseCaseWithMetrics decorates TemplateUseCase with metrics instrumentation.
type templateUseCaseWithMetrics struct {
	next    TemplateUseCase
	metrics metrics.BusinessMetrics
}

// NewTemplateUseCaseWithMetrics wraps a TemplateUseCase with metrics recording.
func NewTemplateUseCaseWithMetrics(useCase TemplateUseCase, m metrics.BusinessMetrics) TemplateUseCase {
	return &templateUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (t *templateUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.StatusFromError(err)
	t.metrics.RecordOperation(ctx, "templates", operation, status)
	t.metrics.RecordDuration(ctx, "templates", operation, time.Since(start), status)
}

// Insert records metrics for template creation and the number of stored mapping items.
func (t *templateUseCaseWithMetrics) Insert(
	ctx context.Context,
	input *templatesDomain.CreateTemplateInput,
) (int64, error) {
	start := time.Now()
	id, err := t.next.Insert(ctx, input)
	t.record(ctx, "template_insert", start, err)
	if err == nil {
		t.metrics.RecordItems(ctx, "templates", "template_insert", "mapping", len(input.Mappings))
	}
	return id, err
}

// List records metrics for template listing.
func (t *templateUseCaseWithMetrics) List(ctx context.Context) ([]*templatesDomain.Template, error) {
	start := time.Now()
	templates, err := t.next.List(ctx)
	t.record(ctx, "template_list", start, err)
	return templates, err
}

// Get records metrics for template retrieval.
func (t *templateUseCaseWithMetrics) Get(ctx context.Context, id int64) (*templatesDomain.Template, error) {
	start := time.Now()
	template, err := t.next.Get(ctx, id)
	t.record(ctx, "template_get", start, err)
	return template, err
}

// GetMappings records metrics for mapping retrieval.
func (t *templateUseCaseWithMetrics) GetMappings(
	ctx context.Context,
	id int64,
) ([]templatesDomain.MappingItem, error) {
	start := time.Now()
	mappings, err := t.next.GetMappings(ctx, id)
	t.record(ctx, "template_get_mappings", start, err)
	return mappings, err
}
