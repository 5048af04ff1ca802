//go:build !integration

package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/waitlist-service/internal/logger"
)

func Test_logLevel(t *testing.T) {
	tests := []struct {
		statusCode int
		expected   zerolog.Level
	}{
		{statusCode: 200, expected: zerolog.InfoLevel},
		{statusCode: 301, expected: zerolog.InfoLevel},
		{statusCode: 400, expected: zerolog.WarnLevel},
		{statusCode: 404, expected: zerolog.WarnLevel},
		{statusCode: 500, expected: zerolog.ErrorLevel},
		{statusCode: 503, expected: zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.statusCode), func(t *testing.T) {
			assert.Equal(t, tt.expected, logLevel(tt.statusCode))
		})
	}
}

func TestRequestLogger(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		status     int
		staffID    string
		wantLevel  string
		wantLogged bool
	}{
		{name: "success logged at info", path: "/api/queue", status: http.StatusOK, wantLevel: "info", wantLogged: true},
		{name: "client error logged at warn", path: "/api/queue", status: http.StatusBadRequest, wantLevel: "warn", wantLogged: true},
		{name: "server error logged at error", path: "/api/queue", status: http.StatusInternalServerError, wantLevel: "error", wantLogged: true},
		{name: "staff id attached", path: "/api/queue", status: http.StatusOK, staffID: "abc", wantLevel: "info", wantLogged: true},
		{name: "probe is quiet at info level", path: "/healthz", status: http.StatusOK},
		{name: "failing probe still logged", path: "/healthz", status: http.StatusServiceUnavailable, wantLevel: "error", wantLogged: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger.InitWithWriter(&buf, "info", false)

			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.Use(RequestID(), RequestLogger("/healthz"))
			router.GET(tt.path, func(c *gin.Context) {
				if tt.staffID != "" {
					c.Set(StaffIDKey, tt.staffID)
				}
				c.Status(tt.status)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set(RequestIDHeader, "req-1")
			router.ServeHTTP(httptest.NewRecorder(), req)

			if !tt.wantLogged {
				assert.Zero(t, buf.Len())
				return
			}
			var line map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
			assert.Equal(t, tt.wantLevel, line["level"])
			assert.Equal(t, "req-1", line["request_id"])
			assert.Equal(t, tt.path, line["path"])
			assert.Equal(t, float64(tt.status), line["status_code"])
			if tt.staffID != "" {
				assert.Equal(t, tt.staffID, line["staff_id"])
			}
		})
	}
}
