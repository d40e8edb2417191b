package repository

import (
	"context"
	"fmt"
	"time"

	redisapp "portfolio/internal/storage/redis"
)

// RedisRateLimiter is a fixed-window counter: INCR on every hit, EXPIRE on
// the first hit of a window. A later hit that finds the key without a TTL
// (the first EXPIRE failed) arms it again, so a client is never blocked for
// longer than one window.
type RedisRateLimiter struct {
	Client *redisapp.Client
}

func NewRedisRateLimiter(client *redisapp.Client) *RedisRateLimiter {
	return &RedisRateLimiter{Client: client}
}

func (r *RedisRateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	const op = "repository.RedisRateLimiter.Allow"

	k := rateLimitKey(key)

	count, err := r.Client.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	arm := count == 1
	if !arm {
		ttl, err := r.Client.TTL(ctx, k).Result()
		if err != nil {
			return false, fmt.Errorf("%s: %w", op, err)
		}
		arm = ttl == noExpiry
	}

	if arm {
		if err := r.Client.Expire(ctx, k, window).Err(); err != nil {
			return false, fmt.Errorf("%s: %w", op, err)
		}
	}

	return count <= int64(limit), nil
}

// noExpiry is what TTL reports for a key that exists without an expiry.
const noExpiry = time.Duration(-1)

func rateLimitKey(key string) string {
	return "ratelimit:contact:" + key
}
