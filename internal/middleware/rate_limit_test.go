//go:build !integration

package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewShardedRateLimiter(t *testing.T) {
	tests := []struct {
		name       string
		numShards  int
		wantShards int
	}{
		{name: "default shards when zero", numShards: 0, wantShards: defaultNumShards},
		{name: "default shards when negative", numShards: -1, wantShards: defaultNumShards},
		{name: "custom shard count", numShards: 8, wantShards: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := NewShardedRateLimiter(10, time.Minute, tt.numShards)
			defer rl.Stop()

			assert.Len(t, rl.shards, tt.wantShards)
			assert.Equal(t, 10, rl.Limit())
		})
	}
}

func TestShardedRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)
	defer rl.Stop()
	ctx := context.Background()

	for i, wantRemaining := range []int{2, 1, 0} {
		d, err := rl.Allow(ctx, "ip:1.2.3.4")
		require.NoError(t, err)
		assert.True(t, d.Allowed, "request %d", i)
		assert.Equal(t, wantRemaining, d.Remaining)
	}

	d, err := rl.Allow(ctx, "ip:1.2.3.4")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Positive(t, d.RetryAfter)
	assert.LessOrEqual(t, d.RetryAfter, time.Minute)

	d, _ = rl.Allow(ctx, "ip:5.6.7.8")
	assert.True(t, d.Allowed, "identifiers are counted separately")
}

func TestShardedRateLimiter_WindowReset(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, time.Minute)
	defer rl.Stop()
	rl.now = func() time.Time { return now }
	ctx := context.Background()

	d, _ := rl.Allow(ctx, "test")
	assert.True(t, d.Allowed)
	d, _ = rl.Allow(ctx, "test")
	assert.False(t, d.Allowed)

	now = now.Add(time.Minute)
	d, _ = rl.Allow(ctx, "test")
	assert.True(t, d.Allowed)
}

func TestShardedRateLimiter_CleanupAndStats(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewShardedRateLimiter(5, time.Second, 4)
	defer rl.Stop()
	rl.now = func() time.Time { return now }

	for _, id := range []string{"a", "b", "c"} {
		_, _ = rl.Allow(context.Background(), id)
	}
	total, perShard := rl.Stats()
	assert.Equal(t, 3, total)
	assert.Len(t, perShard, 4)

	now = now.Add(3 * time.Second)
	rl.cleanupExpired()
	total, _ = rl.Stats()
	assert.Zero(t, total)
}

func TestShardedRateLimiter_StopTwice(t *testing.T) {
	rl := NewRateLimiter(1, time.Second)
	assert.NotPanics(t, func() {
		rl.Stop()
		rl.Stop()
	})
}

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (Decision, error) {
	return Decision{}, errors.New("redis: connection refused")
}

func (failingLimiter) Limit() int { return 1 }

func TestRateLimit_Middleware(t *testing.T) {
	tests := []struct {
		name         string
		limiter      func() Limiter
		requests     int
		wantLast     int
		wantHeaders  bool
		wantRetryHdr bool
	}{
		{
			name:        "allows requests under the limit",
			limiter:     func() Limiter { return NewRateLimiter(5, time.Minute) },
			requests:    3,
			wantLast:    http.StatusOK,
			wantHeaders: true,
		},
		{
			name:         "rejects once the limit is spent",
			limiter:      func() Limiter { return NewRateLimiter(2, time.Minute) },
			requests:     3,
			wantLast:     http.StatusTooManyRequests,
			wantHeaders:  true,
			wantRetryHdr: true,
		},
		{
			name:     "fails open when the limiter errors",
			limiter:  func() Limiter { return failingLimiter{} },
			requests: 3,
			wantLast: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), RateLimit(tt.limiter()))
			router.GET("/test", func(c *gin.Context) {
				c.String(http.StatusOK, "ok")
			})

			var w *httptest.ResponseRecorder
			for i := 0; i < tt.requests; i++ {
				w = httptest.NewRecorder()
				req := httptest.NewRequest(http.MethodGet, "/test", nil)
				router.ServeHTTP(w, req)
			}

			assert.Equal(t, tt.wantLast, w.Code)
			if tt.wantHeaders {
				assert.NotEmpty(t, w.Header().Get("X-RateLimit-Limit"))
				assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
			}
			if tt.wantRetryHdr {
				assert.NotEmpty(t, w.Header().Get("Retry-After"))
				assert.Contains(t, w.Body.String(), "rate_limit_exceeded")
			}
		})
	}
}

func TestRateLimit_Identifier(t *testing.T) {
	tests := []struct {
		name     string
		staffID  string
		expected string
	}{
		{name: "anonymous uses client ip", expected: "ip:192.0.2.1"},
		{name: "staff uses staff id", staffID: "abc", expected: "staff:abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.RemoteAddr = "192.0.2.1:1234"
			if tt.staffID != "" {
				c.Set(StaffIDKey, tt.staffID)
			}

			assert.Equal(t, tt.expected, rateLimitIdentifier(c))
		})
	}
}
