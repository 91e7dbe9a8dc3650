package cache

import (
	"context"
	"fmt"
	"time"

	"bond_portal/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const rateNamespace = "acceptance:rate"

// RedisRateLimiter is a fixed-window counter: INCR the key and set its expiry on
// the first hit of a window.
type RedisRateLimiter struct {
	rdb    redis.UniversalClient
	window time.Duration
	max    int
}

var _ interfaces.IRateLimiter = (*RedisRateLimiter)(nil)

func NewRedisRateLimiter(rdb redis.UniversalClient, window time.Duration, max int) *RedisRateLimiter {
	return &RedisRateLimiter{rdb: rdb, window: window, max: max}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := rateNamespace + ":" + key

	var incr *redis.IntCmd
	_, err := l.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		pipe.ExpireNX(ctx, k, l.window)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("rate limit: %w", err)
	}
	return incr.Val() <= int64(l.max), nil
}
