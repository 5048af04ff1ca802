package app

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/waitlist-service/config"
	"github.com/guttosm/waitlist-service/internal/middleware"
)

const redisPingTimeout = 3 * time.Second

// RateLimitComponents holds the request limiter and what backs it.
type RateLimitComponents struct {
	// Limiter is nil when rate limiting is disabled.
	Limiter middleware.Limiter

	redis  *redis.Client
	memory *middleware.ShardedRateLimiter
}

// InitializeRateLimiter picks the Redis limiter when Redis is enabled and reachable,
// so that replicas share their counters, and the in-memory limiter otherwise.
func InitializeRateLimiter(server config.ServerConfig, cfg config.RedisConfig) *RateLimitComponents {
	if server.RateLimit <= 0 {
		return &RateLimitComponents{}
	}

	if cfg.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
		err := client.Ping(ctx).Err()
		cancel()
		if err == nil {
			log.Info().Str("addr", cfg.Addr).Msg("Using Redis rate limiter")
			return &RateLimitComponents{
				Limiter: middleware.NewRedisRateLimiter(client, "", server.RateLimit, server.RateWindow),
				redis:   client,
			}
		}
		_ = client.Close()
		log.Warn().Err(err).Str("addr", cfg.Addr).Msg("Redis unavailable - falling back to in-memory rate limiter")
	}

	memory := middleware.NewRateLimiter(server.RateLimit, server.RateWindow)
	return &RateLimitComponents{Limiter: memory, memory: memory}
}

// Close releases the limiter backend.
func (r *RateLimitComponents) Close() {
	if r.memory != nil {
		r.memory.Stop()
	}
	if r.redis != nil {
		if err := r.redis.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis client")
		}
	}
}
