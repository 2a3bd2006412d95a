// Package service implements the per-item steps of the processing pipeline.
package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	apperrors "github.com/allisson/ciphershield/internal/errors"
)

// Workspace is a private scratch directory owned by a single operation.
// Envelope files live here only for the duration of one batch.
type Workspace struct {
	id  string
	dir string
}

// NewWorkspace creates <root>/<uuidv7> with owner-only permissions.
func NewWorkspace(root string) (*Workspace, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to generate operation id")
	}

	if err := os.MkdirAll(root, 0o700); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrIO, fmt.Sprintf("failed to create scratch root: %v", err))
	}

	dir := filepath.Join(root, id.String())
	if err := os.Mkdir(dir, 0o700); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrIO, fmt.Sprintf("failed to create scratch workspace: %v", err))
	}

	return &Workspace{id: id.String(), dir: dir}, nil
}

// ID returns the operation identifier.
func (w *Workspace) ID() string {
	return w.id
}

// Dir returns the workspace directory.
func (w *Workspace) Dir() string {
	return w.dir
}

// InputPath is the envelope handed to the engine for item index.
func (w *Workspace) InputPath(index int) string {
	return filepath.Join(w.dir, fmt.Sprintf("%d.in.enc", index))
}

// OutputPath is where the engine must write its envelope for item index.
func (w *Workspace) OutputPath(index int) string {
	return filepath.Join(w.dir, fmt.Sprintf("%d.out.enc", index))
}

// Close removes the workspace and everything in it.
func (w *Workspace) Close() error {
	if err := os.RemoveAll(w.dir); err != nil {
		return apperrors.Wrap(apperrors.ErrIO, fmt.Sprintf("failed to remove scratch workspace: %v", err))
	}
	return nil
}
