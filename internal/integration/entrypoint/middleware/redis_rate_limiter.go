package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter is a fixed window Limiter shared by every API instance.
type RedisRateLimiter struct {
	client         *redis.Client
	prefix         string
	maxAttempts    int64
	windowDuration time.Duration
}

// NewRedisRateLimiter creates a Redis backed limiter. Keys are namespaced with prefix.
func NewRedisRateLimiter(client *redis.Client, prefix string, maxAttempts int, windowDuration time.Duration) *RedisRateLimiter {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if windowDuration <= 0 {
		windowDuration = defaultWindowDuration
	}
	return &RedisRateLimiter{
		client:         client,
		prefix:         prefix,
		maxAttempts:    int64(maxAttempts),
		windowDuration: windowDuration,
	}
}

// Allow implements Limiter. The first attempt of a window sets the expiry.
func (rl *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := rl.prefix + ":" + key

	var incr *redis.IntCmd
	_, err := rl.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.ExpireNX(ctx, redisKey, rl.windowDuration)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to count attempt: %w", err)
	}

	return incr.Val() <= rl.maxAttempts, nil
}
