// Package usecase implements the template store on top of a TemplateRepository.
package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	cryptoService "github.com/allisson/ciphershield/internal/crypto/service"
	"github.com/allisson/ciphershield/internal/database"
	apperrors "github.com/allisson/ciphershield/internal/errors"
	templatesDomain "github.com/allisson/ciphershield/internal/templates/domain"
)

// templateUseCase serializes mapping sets to JSON and seals them with a BlobSealer
// before they reach the repository.
type templateUseCase struct {
	txManager    database.TxManager
	templateRepo TemplateRepository
	sealer       cryptoService.BlobSealer
	logger       *slog.Logger
}

// Insert encodes and seals both lists, then stores them in a single transactional insert.
func (t *templateUseCase) Insert(
	ctx context.Context,
	input *templatesDomain.CreateTemplateInput,
) (int64, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return 0, templatesDomain.ErrTemplateNameRequired
	}

	mappingsJSON, err := templatesDomain.EncodeMappings(input.Mappings)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrSerialization, err.Error())
	}
	recognizersJSON, err := templatesDomain.EncodeRecognizers(input.CustomRecognizers)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrSerialization, err.Error())
	}

	mappingsBlob, err := t.sealer.Seal(ctx, mappingsJSON)
	if err != nil {
		return 0, err
	}
	recognizersBlob, err := t.sealer.Seal(ctx, recognizersJSON)
	if err != nil {
		return 0, err
	}

	record := &templatesDomain.TemplateRecord{
		Name:                  name,
		MappingsBlob:          mappingsBlob,
		CustomRecognizersBlob: recognizersBlob,
		CreatedAt:             time.Now().UTC(),
	}

	err = t.txManager.WithTx(ctx, func(ctx context.Context) error {
		return t.templateRepo.Create(ctx, record)
	})
	if err != nil {
		return 0, err
	}

	return record.ID, nil
}

// List decodes every record, degrading corrupt ones to empty lists.
func (t *templateUseCase) List(ctx context.Context) ([]*templatesDomain.Template, error) {
	records, err := t.templateRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	templates := make([]*templatesDomain.Template, 0, len(records))
	for _, record := range records {
		template, err := t.decode(ctx, record)
		if err != nil {
			t.logger.Warn("template data is corrupt, listing with empty mappings",
				slog.Int64("template_id", record.ID),
				slog.Any("error", err))
			template = &templatesDomain.Template{
				ID:                record.ID,
				Name:              record.Name,
				Mappings:          []templatesDomain.MappingItem{},
				CustomRecognizers: []templatesDomain.CustomRecognizer{},
				CreatedAt:         record.CreatedAt,
			}
		}
		templates = append(templates, template)
	}

	return templates, nil
}

// Get decodes a single record strictly.
func (t *templateUseCase) Get(ctx context.Context, id int64) (*templatesDomain.Template, error) {
	record, err := t.templateRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return t.decode(ctx, record)
}

// GetMappings returns only the mapping list of a template.
func (t *templateUseCase) GetMappings(ctx context.Context, id int64) ([]templatesDomain.MappingItem, error) {
	template, err := t.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return template.Mappings, nil
}

func (t *templateUseCase) decode(
	ctx context.Context,
	record *templatesDomain.TemplateRecord,
) (*templatesDomain.Template, error) {
	mappingsJSON, err := t.sealer.Open(ctx, record.MappingsBlob)
	if err != nil {
		return nil, apperrors.Wrap(templatesDomain.ErrCorruptTemplate, err.Error())
	}
	mappings, err := templatesDomain.DecodeMappings(mappingsJSON)
	if err != nil {
		return nil, apperrors.Wrap(templatesDomain.ErrCorruptTemplate, err.Error())
	}

	recognizersJSON, err := t.sealer.Open(ctx, record.CustomRecognizersBlob)
	if err != nil {
		return nil, apperrors.Wrap(templatesDomain.ErrCorruptTemplate, err.Error())
	}
	recognizers, err := templatesDomain.DecodeRecognizers(recognizersJSON)
	if err != nil {
		return nil, apperrors.Wrap(templatesDomain.ErrCorruptTemplate, err.Error())
	}

	return &templatesDomain.Template{
		ID:                record.ID,
		Name:              record.Name,
		Mappings:          mappings,
		CustomRecognizers: recognizers,
		CreatedAt:         record.CreatedAt,
	}, nil
}

// NewTemplateUseCase creates a new TemplateUseCase.
func NewTemplateUseCase(
	txManager database.TxManager,
	templateRepo TemplateRepository,
	sealer cryptoService.BlobSealer,
	logger *slog.Logger,
) TemplateUseCase {
	return &templateUseCase{
		txManager:    txManager,
		templateRepo: templateRepo,
		sealer:       sealer,
		logger:       logger,
	}
}
