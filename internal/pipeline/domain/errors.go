package domain

import (
	"github.com/allisson/ciphershield/internal/errors"
)

// Pipeline errors.
var (
	// ErrTemplateIDRequired indicates a deanonymize batch without a template to restore from.
	ErrTemplateIDRequired = errors.Wrap(errors.ErrInvalidInput, "template_id is required for deanonymize")

	// ErrNoFiles indicates an empty file batch.
	ErrNoFiles = errors.Wrap(errors.ErrInvalidInput, "at least one file is required")
)

// ItemError reports the batch item that aborted a run.
// Error() is the item's own failure text so callers see exactly what the item hit.
type ItemError struct {
	Index int
	Name  string
	Err   error
}

func (e *ItemError) Error() string {
	return e.Err.Error()
}

func (e *ItemError) Unwrap() error {
	return e.Err
}
