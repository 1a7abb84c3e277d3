package docs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/csv-challenge/backend/internal/config"
	"github.com/csv-challenge/backend/internal/doctoken"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

const testInstance = "docs-handler-test"

type testSpec struct{}

func (testSpec) ReadDoc() string {
	return `{"swagger":"2.0","info":{"title":"registration test api"}}`
}

func init() {
	swag.Register(testInstance, testSpec{})
}

func newTestRouter(ttl time.Duration) (*gin.Engine, *doctoken.Gate) {
	gin.SetMode(gin.TestMode)

	gate := doctoken.NewGate(doctoken.NewMemoryStore(), ttl)
	router := gin.New()
	NewHandler(gate, config.DocsConfig{Username: "admin", Password: "s3cret", TokenTTL: ttl}, testInstance).Init(router)

	return router, gate
}

func get(router http.Handler, target string, auth func(r *http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if auth != nil {
		auth(req)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestDocsAuthRequiresCredentials(t *testing.T) {
	router, _ := newTestRouter(5 * time.Second)

	w := get(router, "/docs-auth", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Header().Get("WWW-Authenticate"), "Basic")

	w = get(router, "/docs-auth", func(r *http.Request) { r.SetBasicAuth("admin", "wrong") })
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDocsAuthRedirectsWithToken(t *testing.T) {
	router, _ := newTestRouter(5 * time.Second)

	w := get(router, "/docs-auth", func(r *http.Request) { r.SetBasicAuth("admin", "s3cret") })
	require.Equal(t, http.StatusFound, w.Code)

	location, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/docs", location.Path)
	token := location.Query().Get("token")
	require.NotEmpty(t, token)

	w = get(router, location.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "registration test api")
	assert.Contains(t, w.Body.String(), "SwaggerUIBundle")

	w = get(router, location.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDocsRejectsBadTokens(t *testing.T) {
	router, gate := newTestRouter(5 * time.Second)

	w := get(router, "/docs", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid or expired docs token")

	w = get(router, "/docs?token=forged", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := gate.Issue(context.Background(), "admin")
	require.NoError(t, err)
	w = get(router, "/docs?token="+token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDocsTokenExpires(t *testing.T) {
	router, gate := newTestRouter(20 * time.Millisecond)

	token, err := gate.Issue(context.Background(), "admin")
	require.NoError(t, err)

	time.Sleep(40 * time.Millisecond)

	w := get(router, "/docs?token="+token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
