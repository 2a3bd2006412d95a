package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	templatesDomain "github.com/allisson/ciphershield/internal/templates/domain"
	"github.com/allisson/ciphershield/internal/testutil"
)

func newTestRecord(name string) *templatesDomain.TemplateRecord {
	return &templatesDomain.TemplateRecord{
		Name:                  name,
		MappingsBlob:          []byte(`[{"original":"John","anonymized":"<PERSON_1>","pii_type":"PERSON","confidence":0.9}]`),
		CustomRecognizersBlob: []byte(`[]`),
		CreatedAt:             time.Now().UTC(),
	}
}

func TestSQLiteTemplateRepository_CreateAndGet(t *testing.T) {
	db := testutil.SetupSQLiteDB(t)
	repo := NewSQLiteTemplateRepository(db)
	ctx := context.Background()

	record := newTestRecord("template_1700000000")
	require.NoError(t, repo.Create(ctx, record))
	assert.Greater(t, record.ID, int64(0))

	retrieved, err := repo.Get(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.ID, retrieved.ID)
	assert.Equal(t, record.Name, retrieved.Name)
	assert.Equal(t, record.MappingsBlob, retrieved.MappingsBlob)
	assert.Equal(t, record.CustomRecognizersBlob, retrieved.CustomRecognizersBlob)
	assert.WithinDuration(t, record.CreatedAt, retrieved.CreatedAt, time.Second)
}

func TestSQLiteTemplateRepository_Create_AssignsIncreasingIDs(t *testing.T) {
	db := testutil.SetupSQLiteDB(t)
	repo := NewSQLiteTemplateRepository(db)
	ctx := context.Background()

	first := newTestRecord("first")
	second := newTestRecord("second")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	assert.Greater(t, second.ID, first.ID)
}

func TestSQLiteTemplateRepository_Get_NotFound(t *testing.T) {
	db := testutil.SetupSQLiteDB(t)
	repo := NewSQLiteTemplateRepository(db)

	record, err := repo.Get(context.Background(), 999)
	assert.Nil(t, record)
	assert.ErrorIs(t, err, templatesDomain.ErrTemplateNotFound)
}

func TestSQLiteTemplateRepository_List(t *testing.T) {
	db := testutil.SetupSQLiteDB(t)
	repo := NewSQLiteTemplateRepository(db)
	ctx := context.Background()

	records, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	require.NoError(t, repo.Create(ctx, newTestRecord("a")))
	require.NoError(t, repo.Create(ctx, newTestRecord("b")))

	records, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "a", records[0].Name)
	assert.Equal(t, "b", records[1].Name)
}
