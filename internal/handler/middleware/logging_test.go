//go:build unit

package middleware_test

import (
	"bytes"
	"net/http"
	nethttptest "net/http/httptest"
	"regexp"
	"testing"
	"time"

	"waste-dashboard/internal/handler/middleware"
	"waste-dashboard/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedRouter(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := middleware.NewLoggerTo(buf, config.LogConfig{
		Level:      "debug",
		TimeZone:   "UTC",
		TimeFormat: time.RFC3339,
	})
	router := gin.New()
	router.Use(logger.LoggingMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})
	router.GET("/missing", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})
	return router
}

func TestLoggingMiddleware(t *testing.T) {
	t.Run("upstream request id is kept", func(t *testing.T) {
		var buf bytes.Buffer
		router := newLoggedRouter(&buf)

		req, err := http.NewRequest(http.MethodGet, "/ping", nil)
		require.NoError(t, err)
		req.Header.Set(middleware.RequestIDHeader, "edge-42")
		w := nethttptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "edge-42", w.Body.String())
		assert.Equal(t, "edge-42", w.Header().Get(middleware.RequestIDHeader))
		assert.Contains(t, buf.String(), "request_id=edge-42")
		assert.Contains(t, buf.String(), "status_code=200")
	})

	t.Run("missing id is generated", func(t *testing.T) {
		var buf bytes.Buffer
		router := newLoggedRouter(&buf)

		req, err := http.NewRequest(http.MethodGet, "/ping", nil)
		require.NoError(t, err)
		w := nethttptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Regexp(t, regexp.MustCompile(`^\d{14}-[0-9a-f]{8}$`), w.Body.String())
	})

	t.Run("client errors log at warn", func(t *testing.T) {
		var buf bytes.Buffer
		router := newLoggedRouter(&buf)

		req, err := http.NewRequest(http.MethodGet, "/missing", nil)
		require.NoError(t, err)
		router.ServeHTTP(nethttptest.NewRecorder(), req)

		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "status_code=404")
	})
}
