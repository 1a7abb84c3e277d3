package v1

import (
	"net/http"
	"testing"
	"time"

	"github.com/csv-challenge/backend/internal/domain"
	"github.com/csv-challenge/backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateSubmission(t *testing.T) {
	api := newTestAPI()

	input := service.SubmissionInput{Username: "a1", Title: "Run 1", URL: "https://example.com/run1.csv"}
	created := &domain.Submission{ID: uuid.New(), Username: "a1", Title: "Run 1", URL: input.URL, CreatedAt: time.Now().UTC()}
	api.submissions.On("Create", mock.Anything, input).Return(created, nil).Once()

	w := api.do(t, http.MethodPost, "/api/submission", gin.H{"username": "a1", "title": "Run 1", "url": input.URL})
	require.Equal(t, http.StatusOK, w.Code)

	res := decode[submissionResponse](t, w)
	assert.Equal(t, "success", res.Status)
	assert.Equal(t, created.ID, res.Data.ID)
}

func TestCreateSubmissionBeforeVerification(t *testing.T) {
	api := newTestAPI()
	api.submissions.On("Create", mock.Anything, mock.Anything).Return(nil, service.ErrTeamNotFoundOrUnverified).Once()

	w := api.do(t, http.MethodPost, "/api/submission", gin.H{"username": "a1", "title": "Run 1", "url": "https://example.com/x"})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, ErrorMessage(TeamNotFoundOrUnverifiedMessage), decode[ErrorStruct](t, w).ErrorMessage)
}

func TestCreateSubmissionInvalidURL(t *testing.T) {
	api := newTestAPI()

	w := api.do(t, http.MethodPost, "/api/submission", gin.H{"username": "a1", "title": "Run 1", "url": "not a url"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	res := decode[ValidationErrorStruct](t, w)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "url", res.Errors[0].FieldKey)
}

func TestGetSubmissions(t *testing.T) {
	api := newTestAPI()
	list := []domain.Submission{{ID: uuid.New(), Username: "a1", Title: "Run 2"}, {ID: uuid.New(), Username: "a1", Title: "Run 1"}}
	api.submissions.On("GetByUsername", mock.Anything, "a1").Return(list, nil).Once()
	api.submissions.On("GetByUsername", mock.Anything, "b1").Return(nil, service.ErrTeamNotFoundOrUnverified).Once()
	api.submissions.On("GetAll", mock.Anything).Return(nil, nil).Once()

	w := api.do(t, http.MethodGet, "/api/submission/a1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[submissionsListResponse](t, w)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, "Run 2", res.Data[0].Title)

	w = api.do(t, http.MethodGet, "/api/submission/b1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(t, http.MethodGet, "/api/submissions/all", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total":0,"data":[]}`, w.Body.String())
}
