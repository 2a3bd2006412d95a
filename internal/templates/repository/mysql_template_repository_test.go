package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMySQLTemplateRepository_Create(t *testing.T) {
	t.Run("Success_LastInsertID", func(t *testing.T) {
		db, mock := newSQLMockDB(t)
		repo := NewMySQLTemplateRepository(db)
		record := newTestRecord("template_1700000000")

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO templates (name, mappings, custom_recognizers, created_at) VALUES (?, ?, ?, ?)")).
			WithArgs(record.Name, record.MappingsBlob, record.CustomRecognizersBlob, record.CreatedAt).
			WillReturnResult(sqlmock.NewResult(11, 1))

		require.NoError(t, repo.Create(context.Background(), record))
		assert.Equal(t, int64(11), record.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_LastInsertID", func(t *testing.T) {
		db, mock := newSQLMockDB(t)
		repo := NewMySQLTemplateRepository(db)

		mock.ExpectExec("INSERT INTO templates").
			WillReturnResult(sqlmock.NewErrorResult(errors.New("no id")))

		err := repo.Create(context.Background(), newTestRecord("x"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read template id")
	})
}

func TestMySQLTemplateRepository_List_QueryError(t *testing.T) {
	db, mock := newSQLMockDB(t)
	repo := NewMySQLTemplateRepository(db)

	mock.ExpectQuery("FROM templates").WillReturnError(errors.New("gone away"))

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list templates")
}
