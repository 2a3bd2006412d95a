package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	templatesDomain "github.com/allisson/ciphershield/internal/templates/domain"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db, mock
}

var templateColumns = []string{"id", "name", "mappings", "custom_recognizers", "created_at"}

func TestPostgreSQLTemplateRepository_Create(t *testing.T) {
	t.Run("Success_ReturningID", func(t *testing.T) {
		db, mock := newSQLMockDB(t)
		repo := NewPostgreSQLTemplateRepository(db)
		record := newTestRecord("template_1700000000")

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO templates (name, mappings, custom_recognizers, created_at) VALUES ($1, $2, $3, $4) RETURNING id")).
			WithArgs(record.Name, record.MappingsBlob, record.CustomRecognizersBlob, record.CreatedAt).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

		require.NoError(t, repo.Create(context.Background(), record))
		assert.Equal(t, int64(42), record.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_Insert", func(t *testing.T) {
		db, mock := newSQLMockDB(t)
		repo := NewPostgreSQLTemplateRepository(db)

		mock.ExpectQuery("INSERT INTO templates").WillReturnError(errors.New("disk full"))

		err := repo.Create(context.Background(), newTestRecord("x"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create template")
	})
}

func TestPostgreSQLTemplateRepository_Get(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := newSQLMockDB(t)
		repo := NewPostgreSQLTemplateRepository(db)
		now := time.Now().UTC()

		mock.ExpectQuery(regexp.QuoteMeta("FROM templates WHERE id = $1")).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(templateColumns).AddRow(7, "t", []byte(`[]`), []byte(`[]`), now))

		record, err := repo.Get(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, int64(7), record.ID)
		assert.Equal(t, []byte(`[]`), record.MappingsBlob)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock := newSQLMockDB(t)
		repo := NewPostgreSQLTemplateRepository(db)

		mock.ExpectQuery("FROM templates").WillReturnError(sql.ErrNoRows)

		_, err := repo.Get(context.Background(), 7)
		assert.ErrorIs(t, err, templatesDomain.ErrTemplateNotFound)
	})
}

func TestPostgreSQLTemplateRepository_List(t *testing.T) {
	db, mock := newSQLMockDB(t)
	repo := NewPostgreSQLTemplateRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("FROM templates ORDER BY id ASC")).
		WillReturnRows(sqlmock.NewRows(templateColumns).
			AddRow(1, "a", []byte(`[]`), []byte(`[]`), now).
			AddRow(2, "b", []byte(`garbage`), []byte(`[]`), now))

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []byte(`garbage`), records[1].MappingsBlob)
}
