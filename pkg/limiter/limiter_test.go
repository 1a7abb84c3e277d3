package limiter

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter(v *visitors) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware(v))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func doRequest(r http.Handler, remoteAddr string) int {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestLimitBurstPerClient(t *testing.T) {
	r := newRouter(newVisitors(1, 2, time.Minute))

	assert.Equal(t, http.StatusOK, doRequest(r, "10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, doRequest(r, "10.0.0.1:1000"))
	assert.Equal(t, http.StatusTooManyRequests, doRequest(r, "10.0.0.1:1000"))

	assert.Equal(t, http.StatusOK, doRequest(r, "10.0.0.2:1000"))
}

func TestNonPositiveTTLFallsBackToDefault(t *testing.T) {
	for _, ttl := range []time.Duration{0, -time.Second} {
		assert.Equal(t, DefaultTTL, newVisitors(1, 1, ttl).ttl)
		assert.NotPanics(t, func() { Limit(1, 1, ttl) })
	}
}

func TestCleanupEvictsIdleVisitors(t *testing.T) {
	v := newVisitors(1, 1, time.Minute)
	now := time.Now()

	v.get("10.0.0.1", now.Add(-2*time.Minute))
	v.get("10.0.0.2", now)
	v.cleanup(now)

	assert.Equal(t, 1, v.len())
}
