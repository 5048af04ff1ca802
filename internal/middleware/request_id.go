// Package middleware provides HTTP middleware components for the waitlist service.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/guttosm/waitlist-service/internal/logger"
)

// RequestIDHeader carries the correlation id in both directions.
const RequestIDHeader = "X-Request-ID"

// maxRequestIDLength bounds client supplied ids before they reach logs and headers.
const maxRequestIDLength = 64

// ContextKey namespaces values stored on the gin context.
type ContextKey string

// RequestIDKey is where the correlation id is stored on the gin context.
const RequestIDKey ContextKey = "request_id"

// RequestID tags every request with a correlation id. A client id is echoed
// back when it is short and made of [A-Za-z0-9._-]; anything else is replaced
// by a fresh UUID. The request context gets a zerolog logger carrying the id,
// retrievable with RequestLog.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if !validRequestID(id) {
			id = uuid.NewString()
		}

		c.Set(string(RequestIDKey), id)
		c.Header(RequestIDHeader, id)

		reqLog := logger.Logger().With().Str("request_id", id).Logger()
		c.Request = c.Request.WithContext(reqLog.WithContext(c.Request.Context()))

		c.Next()
	}
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		ch := id[i]
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
		case ch == '-', ch == '_', ch == '.':
		default:
			return false
		}
	}
	return true
}

// GetRequestID returns the correlation id, or "" outside RequestID.
func GetRequestID(c *gin.Context) string {
	return c.GetString(string(RequestIDKey))
}

// RequestLog returns the request scoped logger. Outside RequestID it falls
// back to the global logger tagged with whatever id the context holds.
func RequestLog(c *gin.Context) zerolog.Logger {
	if c.Request != nil {
		if l := zerolog.Ctx(c.Request.Context()); l.GetLevel() != zerolog.Disabled {
			return *l
		}
	}
	return logger.Logger().With().Str("request_id", GetRequestID(c)).Logger()
}
