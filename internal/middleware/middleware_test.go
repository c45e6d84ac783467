package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestRequestLogger_LogsAndRecovers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	l := zerolog.New(&buf)

	router := gin.New()
	router.Use(RequestLogger(l))
	router.GET("/boom", func(c *gin.Context) { panic("kaboom") })
	router.GET("/fail", func(c *gin.Context) {
		_ = c.Error(errors.New("no such table: trainees"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
	})
	router.GET("/ctx", func(c *gin.Context) {
		zerolog.Ctx(c.Request.Context()).Info().Msg("inside handler")
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, w.Body.String())
	assert.Contains(t, buf.String(), "kaboom")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	buf.Reset()
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))
	assert.Contains(t, buf.String(), "no such table: trainees")
	assert.Contains(t, buf.String(), `"status":500`)
	assert.NotContains(t, w.Body.String(), "no such table")

	buf.Reset()
	req := httptest.NewRequest(http.MethodGet, "/ctx", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
	assert.Contains(t, buf.String(), `"message":"inside handler"`)
	assert.Contains(t, buf.String(), `"request_id":"req-123"`)
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS([]string{"https://coach.example"}))
	router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://coach.example")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://coach.example", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("1.1.1.1"))
	assert.True(t, rl.Allow("1.1.1.1"))
	assert.False(t, rl.Allow("1.1.1.1"))
	assert.True(t, rl.Allow("2.2.2.2"), "buckets are per client")

	now = now.Add(time.Second)
	assert.True(t, rl.Allow("1.1.1.1"))

	now = now.Add(10 * time.Minute)
	rl.Allow("3.3.3.3")
	assert.Len(t, rl.visitors, 1, "idle visitors are evicted")
}

func TestRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(0.001, 1)
	router := gin.New()
	router.Use(rl.Middleware())
	router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
