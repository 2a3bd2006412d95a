package domain

import (
	"github.com/allisson/ciphershield/internal/errors"
)

// Template store errors.
var (
	// ErrTemplateNotFound indicates no template exists with the given id.
	ErrTemplateNotFound = errors.Wrap(errors.ErrNotFound, "template not found")

	// ErrCorruptTemplate indicates a stored blob could not be opened or decoded.
	ErrCorruptTemplate = errors.Wrap(errors.ErrSerialization, "template data is corrupt")

	// ErrTemplateNameRequired indicates an insert without a name.
	ErrTemplateNameRequired = errors.Wrap(errors.ErrInvalidInput, "template name is required")
)
