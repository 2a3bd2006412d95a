// Package usecase defines the processed-file log operations.
package usecase

import (
	"context"

	auditDomain "github.com/allisson/ciphershield/internal/audit/domain"
)

// ProcessedFileRepository persists processed-file records.
type ProcessedFileRepository interface {
	// Create appends a record and sets its ID.
	Create(ctx context.Context, file *auditDomain.ProcessedFile) error

	// List returns records newest first.
	List(ctx context.Context, offset, limit int) ([]*auditDomain.ProcessedFile, error)

	// Rename changes a record's display name. Returns ErrProcessedFileNotFound if absent.
	Rename(ctx context.Context, id int64, name string) error
}

// ProcessedFileUseCase is the append-only processed-file log read by the UI.
type ProcessedFileUseCase interface {
	// Record appends all files in a single transaction. CreatedAt is set when zero.
	Record(ctx context.Context, files []*auditDomain.ProcessedFile) error

	// List returns a page of records, newest first.
	List(ctx context.Context, offset, limit int) ([]*auditDomain.ProcessedFile, error)

	// Rename changes a record's display name.
	Rename(ctx context.Context, id int64, name string) error
}
