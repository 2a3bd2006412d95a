// Package usecase implements the processed-file log.
package usecase

import (
	"context"
	"strings"
	"time"

	auditDomain "github.com/allisson/ciphershield/internal/audit/domain"
	"github.com/allisson/ciphershield/internal/database"
)

type processedFileUseCase struct {
	txManager database.TxManager
	repo      ProcessedFileRepository
}

func (p *processedFileUseCase) Record(ctx context.Context, files []*auditDomain.ProcessedFile) error {
	if len(files) == 0 {
		return nil
	}

	now := time.Now().UTC()
	return p.txManager.WithTx(ctx, func(ctx context.Context) error {
		for _, file := range files {
			if file.CreatedAt.IsZero() {
				file.CreatedAt = now
			}
			if err := p.repo.Create(ctx, file); err != nil {
				return err
			}
		}
		return nil
	})
}

func (p *processedFileUseCase) List(ctx context.Context, offset, limit int) ([]*auditDomain.ProcessedFile, error) {
	return p.repo.List(ctx, offset, limit)
}

func (p *processedFileUseCase) Rename(ctx context.Context, id int64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return auditDomain.ErrNameRequired
	}
	return p.repo.Rename(ctx, id, name)
}

// NewProcessedFileUseCase creates a new ProcessedFileUseCase.
func NewProcessedFileUseCase(txManager database.TxManager, repo ProcessedFileRepository) ProcessedFileUseCase {
	return &processedFileUseCase{
		txManager: txManager,
		repo:      repo,
	}
}
