package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisTimeout = 250 * time.Millisecond

// RedisLimiter is a fixed-window counter shared by every instance that
// talks to the same Redis. It fails open when Redis is unreachable.
type RedisLimiter struct {
	client redis.Cmdable
	prefix string
	max    int64
	window time.Duration
	now    func() time.Time
}

func NewRedis(client redis.Cmdable, prefix string, max int, window time.Duration) *RedisLimiter {
	if window < time.Second {
		window = time.Second
	}
	return &RedisLimiter{
		client: client,
		prefix: prefix,
		max:    int64(max),
		window: window,
		now:    time.Now,
	}
}

func (l *RedisLimiter) Allow(key string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	k := l.key(key)
	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		zap.L().Warn("rate limiter unavailable, allowing request", zap.String("key", key), zap.Error(err))
		return true
	}
	if n == 1 {
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			zap.L().Warn("can't set rate limit window", zap.String("key", key), zap.Error(err))
		}
	}
	return n <= l.max
}

func (l *RedisLimiter) key(key string) string {
	bucket := l.now().Unix() / int64(l.window/time.Second)
	return fmt.Sprintf("%s:%s:%d", l.prefix, key, bucket)
}
