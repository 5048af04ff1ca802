//go:build !integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/waitlist-service/config"
	"github.com/guttosm/waitlist-service/internal/middleware"
)

func TestInitializeRateLimiter_Disabled(t *testing.T) {
	components := InitializeRateLimiter(config.ServerConfig{RateLimit: 0}, config.RedisConfig{Enabled: true})
	defer components.Close()

	assert.Nil(t, components.Limiter)
}

func TestInitializeRateLimiter_InMemory(t *testing.T) {
	components := InitializeRateLimiter(config.ServerConfig{RateLimit: 2, RateWindow: time.Minute}, config.RedisConfig{})
	defer components.Close()

	require.IsType(t, &middleware.ShardedRateLimiter{}, components.Limiter)
	assert.Equal(t, 2, components.Limiter.Limit())

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		d, err := components.Limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, d.Allowed)
	}
	d, err := components.Limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
}

func TestInitializeRateLimiter_RedisUnreachableFallsBack(t *testing.T) {
	components := InitializeRateLimiter(
		config.ServerConfig{RateLimit: 5, RateWindow: time.Minute},
		config.RedisConfig{Enabled: true, Addr: "127.0.0.1:1"},
	)
	defer components.Close()

	assert.IsType(t, &middleware.ShardedRateLimiter{}, components.Limiter)
	assert.Nil(t, components.redis)
}
