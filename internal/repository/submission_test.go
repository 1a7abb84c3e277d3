package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/csv-challenge/backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var submissionColumns = []string{"id", "username", "title", "url", "description", "created_at"}

func TestSubmissionCreate(t *testing.T) {
	dbx, mock := newMockDB(t)
	repo := newSubmissionRepository(dbx)
	created := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO submission")).
		WithArgs(sqlmock.AnyArg(), "a1", "demo", "http://x", "", created).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &domain.Submission{
		ID:        uuid.New(),
		Username:  "a1",
		Title:     "demo",
		URL:       "http://x",
		CreatedAt: created,
	})
	require.NoError(t, err)
}

func TestSubmissionGetByUsername(t *testing.T) {
	dbx, mock := newMockDB(t)
	repo := newSubmissionRepository(dbx)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM submission WHERE username = ?")).
		WithArgs("a1").
		WillReturnRows(sqlmock.NewRows(submissionColumns).
			AddRow(id[:], "a1", "demo", "http://x", "first try", time.Now()))

	submissions, err := repo.GetByUsername(context.Background(), "a1")
	require.NoError(t, err)
	require.Len(t, submissions, 1)
	assert.Equal(t, id, submissions[0].ID)
	assert.Equal(t, "first try", submissions[0].Description)
}

func TestSubmissionGetAllEmptyIsNotNil(t *testing.T) {
	dbx, mock := newMockDB(t)
	repo := newSubmissionRepository(dbx)

	mock.ExpectQuery(regexp.QuoteMeta("FROM submission ORDER BY created_at DESC")).
		WillReturnRows(sqlmock.NewRows(submissionColumns))

	submissions, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, submissions)
	assert.Empty(t, submissions)
}
