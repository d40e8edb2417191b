package repository_test

import (
	"testing"
	"time"

	"portfolio/internal/repository"
	redisapp "portfolio/internal/storage/redis"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLimiter() (*repository.RedisRateLimiter, redismock.ClientMock) {
	db, mock := redismock.NewClientMock()
	return repository.NewRedisRateLimiter(redisapp.Wrap(db)), mock
}

func TestRedisRateLimiter_Allow(t *testing.T) {
	const key = "ratelimit:contact:10.0.0.1"
	window := 10 * time.Minute

	t.Run("first hit starts the window", func(t *testing.T) {
		limiter, mock := setupLimiter()
		mock.ExpectIncr(key).SetVal(1)
		mock.ExpectExpire(key, window).SetVal(true)

		ok, err := limiter.Allow(testCtx, "10.0.0.1", 5, window)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("at the limit", func(t *testing.T) {
		limiter, mock := setupLimiter()
		mock.ExpectIncr(key).SetVal(5)
		mock.ExpectTTL(key).SetVal(4 * time.Minute)

		ok, err := limiter.Allow(testCtx, "10.0.0.1", 5, window)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("over the limit", func(t *testing.T) {
		limiter, mock := setupLimiter()
		mock.ExpectIncr(key).SetVal(6)
		mock.ExpectTTL(key).SetVal(4 * time.Minute)

		ok, err := limiter.Allow(testCtx, "10.0.0.1", 5, window)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("lost expiry is armed again", func(t *testing.T) {
		limiter, mock := setupLimiter()
		mock.ExpectIncr(key).SetVal(1)
		mock.ExpectExpire(key, window).SetErr(redis.ErrClosed)

		_, err := limiter.Allow(testCtx, "10.0.0.1", 1, window)
		require.ErrorIs(t, err, redis.ErrClosed)

		mock.ExpectIncr(key).SetVal(2)
		mock.ExpectTTL(key).SetVal(time.Duration(-1))
		mock.ExpectExpire(key, window).SetVal(true)

		ok, err := limiter.Allow(testCtx, "10.0.0.1", 1, window)
		require.NoError(t, err)
		assert.False(t, ok)

		mock.ExpectIncr(key).SetVal(3)
		mock.ExpectTTL(key).SetVal(window)

		ok, err = limiter.Allow(testCtx, "10.0.0.1", 1, window)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ttl error", func(t *testing.T) {
		limiter, mock := setupLimiter()
		mock.ExpectIncr(key).SetVal(2)
		mock.ExpectTTL(key).SetErr(redis.ErrClosed)

		_, err := limiter.Allow(testCtx, "10.0.0.1", 5, window)
		assert.ErrorIs(t, err, redis.ErrClosed)
	})

	t.Run("redis error", func(t *testing.T) {
		limiter, mock := setupLimiter()
		mock.ExpectIncr(key).SetErr(redis.ErrClosed)

		_, err := limiter.Allow(testCtx, "10.0.0.1", 5, window)
		assert.ErrorIs(t, err, redis.ErrClosed)
	})
}
