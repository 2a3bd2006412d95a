package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	auditDomain "github.com/allisson/ciphershield/internal/audit/domain"
	"github.com/allisson/ciphershield/internal/database"
	apperrors "github.com/allisson/ciphershield/internal/errors"
	"github.com/allisson/ciphershield/internal/testutil"
)

func TestSQLiteProcessedFileRepository_CreateAndList(t *testing.T) {
	db := testutil.SetupSQLiteDB(t)
	repo := NewSQLiteProcessedFileRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	older := &auditDomain.ProcessedFile{
		Name:      "a_anonymized.txt",
		Path:      "/out/op1/a_anonymized.txt",
		Action:    "anonymize",
		CreatedAt: base,
	}
	newer := &auditDomain.ProcessedFile{
		Name:      "b_deanonymized.txt",
		Path:      "/out/op2/b_deanonymized.txt",
		Action:    "deanonymize",
		CreatedAt: base.Add(time.Minute),
	}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))
	assert.Greater(t, newer.ID, older.ID)

	files, err := repo.List(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, newer.ID, files[0].ID)
	assert.Equal(t, "b_deanonymized.txt", files[0].Name)
	assert.Equal(t, "/out/op2/b_deanonymized.txt", files[0].Path)
	assert.Equal(t, "deanonymize", files[0].Action)
	assert.Equal(t, older.ID, files[1].ID)

	page, err := repo.List(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, older.ID, page[0].ID)
}

func TestSQLiteProcessedFileRepository_Rename(t *testing.T) {
	db := testutil.SetupSQLiteDB(t)
	repo := NewSQLiteProcessedFileRepository(db)
	ctx := context.Background()

	file := &auditDomain.ProcessedFile{
		Name:      "a_anonymized.txt",
		Path:      "/out/op1/a_anonymized.txt",
		Action:    "anonymize",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, file))

	require.NoError(t, repo.Rename(ctx, file.ID, "contract for review"))

	files, err := repo.List(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "contract for review", files[0].Name)
	assert.Equal(t, "/out/op1/a_anonymized.txt", files[0].Path)

	err = repo.Rename(ctx, file.ID+100, "ghost")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestSQLiteProcessedFileRepository_TransactionRollback(t *testing.T) {
	db := testutil.SetupSQLiteDB(t)
	repo := NewSQLiteProcessedFileRepository(db)
	txManager := database.NewTxManager(db)
	ctx := context.Background()

	err := txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := repo.Create(ctx, &auditDomain.ProcessedFile{
			Name:      "a_anonymized.txt",
			Path:      "/out/op1/a_anonymized.txt",
			Action:    "anonymize",
			CreatedAt: time.Now().UTC(),
		}); err != nil {
			return err
		}
		return apperrors.ErrIO
	})
	require.ErrorIs(t, err, apperrors.ErrIO)

	files, err := repo.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, files)
}
