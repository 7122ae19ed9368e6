package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-Id"
	RequestIDKey    = "request_id"
)

type RequestIDMiddleware interface {
	AttachRequestID() gin.HandlerFunc
}

type requestIDMiddleware struct {
}

// AttachRequestID assigns each request an id, reusing the caller-supplied
// X-Request-Id header when present, and exposes it to handlers and in the
// response.
func (r *requestIDMiddleware) AttachRequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.Request.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

func NewRequestIDMiddleware() RequestIDMiddleware {
	return &requestIDMiddleware{}
}
