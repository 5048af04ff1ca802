package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// fixedWindowScript increments the window counter and returns it with the
// remaining window in milliseconds. The first hit in a window sets the expiry.
var fixedWindowScript = redis.NewScript(`
local current = redis.call('INCR', KEYS[1])
if current == 1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('PTTL', KEYS[1])
return {current, ttl}
`)

// RedisRateLimiter is a Limiter shared by every replica through Redis.
type RedisRateLimiter struct {
	client redis.Scripter
	prefix string
	rate   int
	window time.Duration
}

// NewRedisRateLimiter creates a limiter storing counters under prefix.
func NewRedisRateLimiter(client redis.Scripter, prefix string, rate int, window time.Duration) *RedisRateLimiter {
	if prefix == "" {
		prefix = "waitlist:rl"
	}
	return &RedisRateLimiter{
		client: client,
		prefix: prefix,
		rate:   rate,
		window: window,
	}
}

// Limit is the number of requests allowed per window.
func (l *RedisRateLimiter) Limit() int {
	return l.rate
}

// Allow consumes one request for identifier in the current window.
func (l *RedisRateLimiter) Allow(ctx context.Context, identifier string) (Decision, error) {
	key := l.prefix + ":" + identifier
	vals, err := fixedWindowScript.Run(ctx, l.client, []string{key}, l.window.Milliseconds()).Int64Slice()
	if err != nil {
		return Decision{}, fmt.Errorf("rate limit script: %w", err)
	}
	if len(vals) != 2 {
		return Decision{}, fmt.Errorf("rate limit script: unexpected result %v", vals)
	}

	count, ttl := int(vals[0]), time.Duration(vals[1])*time.Millisecond
	if ttl < 0 {
		ttl = l.window
	}
	if count > l.rate {
		return Decision{RetryAfter: ttl}, nil
	}
	return Decision{Allowed: true, Remaining: l.rate - count}, nil
}
