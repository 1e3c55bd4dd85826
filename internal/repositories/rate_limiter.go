package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/almasezhe/warauction/internal/config"
	"github.com/redis/go-redis/v9"
)

// RateLimiter counts attempts per key in a sliding window.
type RateLimiter interface {
	// Allow records an attempt and reports whether it fits in the window, how
	// many attempts remain and, when denied, the seconds until the next slot frees.
	Allow(ctx context.Context, key string) (bool, int, int, error)
}

type redisRateLimiter struct {
	client *redis.Client
	cfg    config.RateLimit
	now    func() time.Time
}

// NewRateLimiter stores attempts in a sorted set per key, scored by time. A nil
// clock uses time.Now.
func NewRateLimiter(client *redis.Client, cfg config.RateLimit, now func() time.Time) RateLimiter {
	if now == nil {
		now = time.Now
	}

	return &redisRateLimiter{client: client, cfg: cfg, now: now}
}

func rateLimitKey(key string) string {
	return "rate_limit:" + key
}

func (r *redisRateLimiter) Allow(ctx context.Context, key string) (bool, int, int, error) {
	setKey := rateLimitKey(key)

	now := r.now().UnixNano()
	windowStart := now - r.cfg.WindowSize.Nanoseconds()

	pipe := r.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, setKey, "0", strconv.FormatInt(windowStart, 10))
	pipe.ZAdd(ctx, setKey, redis.Z{Score: float64(now), Member: now})
	count := pipe.ZCard(ctx, setKey)
	pipe.Expire(ctx, setKey, r.cfg.WindowSize)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, 0, fmt.Errorf("recording attempt: %w", err)
	}

	attempts := count.Val()
	if attempts <= r.cfg.MaxAttempts {
		return true, int(r.cfg.MaxAttempts - attempts), 0, nil
	}

	oldest, err := r.client.ZRangeWithScores(ctx, setKey, 0, 0).Result()
	if err != nil {
		return false, 0, 0, fmt.Errorf("reading oldest attempt: %w", err)
	}

	retryAfter := int(r.cfg.WindowSize.Seconds())
	if len(oldest) > 0 {
		frees := time.Duration(int64(oldest[0].Score) + r.cfg.WindowSize.Nanoseconds() - now)
		retryAfter = int((frees + time.Second - 1) / time.Second)
	}

	return false, 0, max(retryAfter, 1), nil
}
