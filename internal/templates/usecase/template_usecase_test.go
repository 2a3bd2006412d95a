package usecase

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cryptoService "github.com/allisson/ciphershield/internal/crypto/service"
	"github.com/allisson/ciphershield/internal/database"
	apperrors "github.com/allisson/ciphershield/internal/errors"
	templatesDomain "github.com/allisson/ciphershield/internal/templates/domain"
	templatesRepository "github.com/allisson/ciphershield/internal/templates/repository"
	usecaseMocks "github.com/allisson/ciphershield/internal/templates/usecase/mocks"
	"github.com/allisson/ciphershield/internal/testutil"
)

type passthroughTxManager struct{}

func (passthroughTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func localKeyURI(t *testing.T) string {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return "base64key://" + base64.URLEncoding.EncodeToString(key)
}

func setupTemplateUseCase(t *testing.T, keyURI string) TemplateUseCase {
	t.Helper()

	db := testutil.SetupSQLiteDB(t)
	sealer, err := cryptoService.OpenBlobSealer(context.Background(), keyURI)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sealer.Close()
	})

	return NewTemplateUseCase(
		database.NewTxManager(db),
		templatesRepository.NewSQLiteTemplateRepository(db),
		sealer,
		discardLogger(),
	)
}

var sampleMappings = []templatesDomain.MappingItem{
	{Original: "John Smith", Anonymized: "<PERSON_1>", PIIType: "PERSON", Confidence: 0.85},
	{Original: "john@example.com", Anonymized: "<EMAIL_ADDRESS_1>", PIIType: "EMAIL_ADDRESS", Confidence: 1},
	{Original: "Jane Doe", Anonymized: "<PERSON_2>", PIIType: "PERSON", Confidence: 0.7},
}

var sampleRecognizers = []templatesDomain.CustomRecognizer{
	{EntityType: "EMPLOYEE_ID", Pattern: `E\d{6}`, Score: 0.9},
}

func TestTemplateUseCase_InsertThenGet(t *testing.T) {
	for name, keyURI := range map[string]func(t *testing.T) string{
		"Plain":  func(*testing.T) string { return "" },
		"Sealed": localKeyURI,
	} {
		t.Run(name, func(t *testing.T) {
			uc := setupTemplateUseCase(t, keyURI(t))
			ctx := context.Background()

			id, err := uc.Insert(ctx, &templatesDomain.CreateTemplateInput{
				Name:              "template_1700000000",
				Mappings:          sampleMappings,
				CustomRecognizers: sampleRecognizers,
			})
			require.NoError(t, err)
			assert.Greater(t, id, int64(0))

			template, err := uc.Get(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, "template_1700000000", template.Name)
			assert.Equal(t, sampleMappings, template.Mappings)
			assert.Equal(t, sampleRecognizers, template.CustomRecognizers)

			mappings, err := uc.GetMappings(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, sampleMappings, mappings)
		})
	}
}

func TestTemplateUseCase_Insert(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_EmptyListsStoredAsEmpty", func(t *testing.T) {
		uc := setupTemplateUseCase(t, "")

		id, err := uc.Insert(ctx, &templatesDomain.CreateTemplateInput{Name: "empty"})
		require.NoError(t, err)

		template, err := uc.Get(ctx, id)
		require.NoError(t, err)
		assert.NotNil(t, template.Mappings)
		assert.Empty(t, template.Mappings)
		assert.Empty(t, template.CustomRecognizers)
	})

	t.Run("Error_BlankName", func(t *testing.T) {
		uc := setupTemplateUseCase(t, "")

		_, err := uc.Insert(ctx, &templatesDomain.CreateTemplateInput{Name: "   "})
		assert.ErrorIs(t, err, templatesDomain.ErrTemplateNameRequired)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Error_Repository", func(t *testing.T) {
		repo := &usecaseMocks.MockTemplateRepository{}
		sealer, err := cryptoService.OpenBlobSealer(ctx, "")
		require.NoError(t, err)
		uc := NewTemplateUseCase(passthroughTxManager{}, repo, sealer, discardLogger())

		repoErr := errors.New("database is locked")
		repo.On("Create", ctx, mock.AnythingOfType("*domain.TemplateRecord")).Return(repoErr).Once()

		id, err := uc.Insert(ctx, &templatesDomain.CreateTemplateInput{Name: "x", Mappings: sampleMappings})
		assert.ErrorIs(t, err, repoErr)
		assert.Equal(t, int64(0), id)
	})
}

func TestTemplateUseCase_GetMappings_NotFound(t *testing.T) {
	uc := setupTemplateUseCase(t, "")

	mappings, err := uc.GetMappings(context.Background(), 404)
	assert.Nil(t, mappings)
	assert.ErrorIs(t, err, templatesDomain.ErrTemplateNotFound)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTemplateUseCase_CorruptBlob(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	records := []*templatesDomain.TemplateRecord{
		{ID: 1, Name: "good", MappingsBlob: []byte(`[{"original":"a","anonymized":"<A>","pii_type":"X","confidence":1}]`), CustomRecognizersBlob: []byte(`[]`), CreatedAt: now},
		{ID: 2, Name: "broken", MappingsBlob: []byte(`{oops`), CustomRecognizersBlob: []byte(`[]`), CreatedAt: now},
	}

	newUseCase := func(t *testing.T) (TemplateUseCase, *usecaseMocks.MockTemplateRepository) {
		repo := &usecaseMocks.MockTemplateRepository{}
		sealer, err := cryptoService.OpenBlobSealer(ctx, "")
		require.NoError(t, err)
		return NewTemplateUseCase(passthroughTxManager{}, repo, sealer, discardLogger()), repo
	}

	t.Run("List_DegradesToEmptyMappings", func(t *testing.T) {
		uc, repo := newUseCase(t)
		repo.On("List", ctx).Return(records, nil).Once()

		templates, err := uc.List(ctx)
		require.NoError(t, err)
		require.Len(t, templates, 2)

		assert.Len(t, templates[0].Mappings, 1)
		assert.Equal(t, "broken", templates[1].Name)
		assert.NotNil(t, templates[1].Mappings)
		assert.Empty(t, templates[1].Mappings)
	})

	t.Run("GetMappings_ReportsSerializationError", func(t *testing.T) {
		uc, repo := newUseCase(t)
		repo.On("Get", ctx, int64(2)).Return(records[1], nil).Once()

		_, err := uc.GetMappings(ctx, 2)
		assert.ErrorIs(t, err, templatesDomain.ErrCorruptTemplate)
		assert.ErrorIs(t, err, apperrors.ErrSerialization)
	})

	t.Run("List_SealedBlobsRoundTrip", func(t *testing.T) {
		writer := setupTemplateUseCase(t, localKeyURI(t))
		_, err := writer.Insert(ctx, &templatesDomain.CreateTemplateInput{Name: "sealed", Mappings: sampleMappings})
		require.NoError(t, err)

		templates, err := writer.List(ctx)
		require.NoError(t, err)
		require.Len(t, templates, 1)
		assert.Equal(t, sampleMappings, templates[0].Mappings)
	})

	t.Run("List_RepositoryError", func(t *testing.T) {
		uc, repo := newUseCase(t)
		repo.On("List", ctx).Return(nil, errors.New("boom")).Once()

		templates, err := uc.List(ctx)
		assert.Error(t, err)
		assert.Nil(t, templates)
	})
}
