package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter keeps one sorted set per key scored by request time, so
// every instance behind a load balancer shares the same window.
type RedisRateLimiter struct {
	client *redis.Client
	prefix string
	limit  Limit
}

func NewRedisRateLimiter(client *redis.Client, prefix string, limit Limit) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		prefix: prefix,
		limit:  limit,
	}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if !l.limit.Enabled() {
		return true, nil
	}

	now := time.Now()
	redisKey := l.key(key)
	windowStart := now.Add(-l.limit.Window).UnixNano()
	nowNano := now.UnixNano()

	pipe := l.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatInt(windowStart, 10))
	zcard := pipe.ZCard(ctx, redisKey)
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(nowNano), Member: nowNano})
	pipe.Expire(ctx, redisKey, l.limit.Window+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to execute rate limit pipeline: %w", err)
	}

	return zcard.Val() < int64(l.limit.Requests), nil
}

func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to reset rate limit for %s: %w", key, err)
	}
	return nil
}

func (l *RedisRateLimiter) key(identifier string) string {
	return fmt.Sprintf("%sratelimit:%s", l.prefix, identifier)
}
