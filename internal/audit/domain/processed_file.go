// Package domain defines the processed-file log kept for the UI's history view.
package domain

import (
	"time"

	"github.com/allisson/ciphershield/internal/errors"
)

// ProcessedFile records one output written by a successful batch.
type ProcessedFile struct {
	ID        int64
	Name      string
	Path      string
	Action    string
	CreatedAt time.Time
}

// Processed-file log errors.
var (
	// ErrProcessedFileNotFound indicates no record exists with the given id.
	ErrProcessedFileNotFound = errors.Wrap(errors.ErrNotFound, "processed file not found")

	// ErrNameRequired indicates a rename to an empty name.
	ErrNameRequired = errors.Wrap(errors.ErrInvalidInput, "name is required")
)
