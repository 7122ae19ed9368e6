package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_AttachRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewRequestIDMiddleware()

	t.Run("generates an id when the header is absent", func(t *testing.T) {
		r := gin.New()
		var seen string
		r.Use(m.AttachRequestID())
		r.GET("/", func(c *gin.Context) {
			seen = c.GetString(RequestIDKey)
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req, err := http.NewRequest(http.MethodGet, "/", nil)
		require.NoError(t, err)
		r.ServeHTTP(w, req)

		require.NotEmpty(t, seen)
		_, err = uuid.Parse(seen)
		assert.NoError(t, err)
		assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
	})

	t.Run("reuses a caller supplied id", func(t *testing.T) {
		r := gin.New()
		var seen string
		r.Use(m.AttachRequestID())
		r.GET("/", func(c *gin.Context) {
			seen = c.GetString(RequestIDKey)
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req, err := http.NewRequest(http.MethodGet, "/", nil)
		require.NoError(t, err)
		req.Header.Set(RequestIDHeader, "caller-id-1")
		r.ServeHTTP(w, req)

		assert.Equal(t, "caller-id-1", seen)
		assert.Equal(t, "caller-id-1", w.Header().Get(RequestIDHeader))
	})
}
