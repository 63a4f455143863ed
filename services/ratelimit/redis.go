package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a sliding-window limiter over a sorted set per key, so the window
// is shared by every instance pointing at the same Redis.
type Redis struct {
	client *redis.Client
	limit  int
	window time.Duration
	prefix string
}

func NewRedis(client *redis.Client, limit int, window time.Duration) *Redis {
	return &Redis{client: client, limit: limit, window: window, prefix: "rate_limit:"}
}

func (r *Redis) Allow(ctx context.Context, key string) (bool, time.Time, error) {
	now := time.Now()
	redisKey := r.prefix + key
	member := fmt.Sprintf("%d", now.UnixNano())

	pipe := r.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "-inf", fmt.Sprintf("%d", now.Add(-r.window).UnixNano()))
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(now.UnixNano()), Member: member})
	count := pipe.ZCard(ctx, redisKey)
	pipe.Expire(ctx, redisKey, r.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, time.Time{}, fmt.Errorf("rate limit check for %s: %w", key, err)
	}

	if count.Val() <= int64(r.limit) {
		return true, time.Time{}, nil
	}

	// Denied: the window resets when the oldest recorded attempt ages out
	oldest, err := r.client.ZRangeWithScores(ctx, redisKey, 0, 0).Result()
	if err != nil || len(oldest) == 0 {
		return false, now.Add(r.window), nil
	}
	return false, time.Unix(0, int64(oldest[0].Score)).Add(r.window), nil
}
