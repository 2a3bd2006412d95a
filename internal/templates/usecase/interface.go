// Package usecase defines the template store operations.
package usecase

import (
	"context"

	templatesDomain "github.com/allisson/ciphershield/internal/templates/domain"
)

// TemplateRepository persists template records.
// Implementations must support transaction-aware operations via context propagation.
type TemplateRepository interface {
	// Create inserts a record and sets its ID.
	Create(ctx context.Context, record *templatesDomain.TemplateRecord) error

	// Get retrieves a record by id. Returns ErrTemplateNotFound if not found.
	Get(ctx context.Context, id int64) (*templatesDomain.TemplateRecord, error)

	// List returns every record ordered by id.
	List(ctx context.Context) ([]*templatesDomain.TemplateRecord, error)
}

// TemplateUseCase is the Mapping/Template Store.
type TemplateUseCase interface {
	// Insert persists a new template and returns its assigned id.
	Insert(ctx context.Context, input *templatesDomain.CreateTemplateInput) (int64, error)

	// List returns every template. A template whose stored blobs cannot be decoded is
	// returned with empty mapping and recognizer lists instead of failing the listing.
	List(ctx context.Context) ([]*templatesDomain.Template, error)

	// Get returns a single template. Returns ErrTemplateNotFound for an unknown id and
	// ErrCorruptTemplate if its blobs cannot be decoded.
	Get(ctx context.Context, id int64) (*templatesDomain.Template, error)

	// GetMappings returns the ordered mapping list of a template.
	GetMappings(ctx context.Context, id int64) ([]templatesDomain.MappingItem, error)
}
