package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RequestLogger returns a middleware that logs one structured line per request.
// Paths in quiet (probes, metrics scrapes) are logged at debug level.
func RequestLogger(quiet ...string) gin.HandlerFunc {
	quietPaths := make(map[string]struct{}, len(quiet))
	for _, p := range quiet {
		quietPaths[p] = struct{}{}
	}

	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		statusCode := c.Writer.Status()
		path := c.Request.URL.Path

		log := RequestLog(c)
		ev := log.WithLevel(logLevel(statusCode))
		if _, ok := quietPaths[path]; ok && statusCode < 400 {
			ev = log.Debug()
		}

		ev = ev.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status_code", statusCode).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Str("ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent())
		if staffID := GetStaffID(c); staffID != "" {
			ev = ev.Str("staff_id", staffID)
		}
		ev.Msg("HTTP request")
	}
}

// logLevel returns the log level based on HTTP status code.
func logLevel(statusCode int) zerolog.Level {
	switch {
	case statusCode >= 500:
		return zerolog.ErrorLevel
	case statusCode >= 400:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
