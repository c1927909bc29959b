package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"grocery-genius/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.POST("/echo", func(c *gin.Context) {
		var body map[string]interface{}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, body)
	})
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestBodySizeLimit(t *testing.T) {
	r := newEngine(BodySizeLimit(16))

	w := do(r, http.MethodPost, "/echo", `{"a":1}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPost, "/echo", `{"line":"`+strings.Repeat("x", 64)+`"}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "REQUEST_TOO_LARGE")
}

func TestRecovery(t *testing.T) {
	r := newEngine(Recovery(), Logger())

	w := do(r, http.MethodGet, "/panic", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
}

func TestRateLimiter_PerClient(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return clock }

	assert.True(t, rl.Allow("a"))
	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"))
	assert.True(t, rl.Allow("b"), "clients are limited independently")

	clock = clock.Add(30 * time.Second)
	assert.True(t, rl.Allow("a"), "one token refilled after window/requests")
	assert.Equal(t, 30, rl.retryAfter())
}

func TestRateLimit_Middleware(t *testing.T) {
	r := newEngine(RateLimit(NewRateLimiter(1, time.Hour)))

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/ping", "").Code)

	w := do(r, http.MethodGet, "/ping", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "TOO_MANY_REQUESTS")
}

func TestDeduplication(t *testing.T) {
	d := NewDeduplicator(time.Minute)
	t.Cleanup(d.Stop)
	r := newEngine(d.Middleware())

	first := do(r, http.MethodPost, "/echo", `{"line":"2 cups flour"}`)
	require.Equal(t, http.StatusOK, first.Code)
	assert.JSONEq(t, `{"line":"2 cups flour"}`, first.Body.String(), "body restored for the handler")

	assert.Equal(t, http.StatusTooManyRequests, do(r, http.MethodPost, "/echo", `{"line":"2 cups flour"}`).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/echo", `{"line":"3 eggs"}`).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/ping", "").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/ping", "").Code, "GET is never deduplicated")
}

func TestDeduplicator_WindowExpires(t *testing.T) {
	d := NewDeduplicator(time.Second)
	t.Cleanup(d.Stop)
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d.now = func() time.Time { return clock }

	assert.False(t, d.seen("k"))
	assert.True(t, d.seen("k"))

	clock = clock.Add(2 * time.Second)
	assert.False(t, d.seen("k"))

	clock = clock.Add(time.Minute)
	d.cleanup()
	assert.Empty(t, d.requests)
}

func TestMetrics(t *testing.T) {
	r := newEngine(Metrics())
	counter := metrics.HTTPRequests.WithLabelValues(http.MethodGet, "/ping", "200")
	before := testutil.ToFloat64(counter)

	do(r, http.MethodGet, "/ping", "")
	do(r, http.MethodGet, "/missing", "")

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
	assert.GreaterOrEqual(t, testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues(http.MethodGet, "unmatched", "404")), 1.0)
}
