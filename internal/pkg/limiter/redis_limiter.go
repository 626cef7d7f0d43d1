package limiter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrLimitExceeded = errors.New("daily AI usage limit reached")

type IUsageLimiter interface {
	Allow(ctx context.Context, agencyID uuid.UUID) error
}

// RedisUsageLimiter caps AI assistant calls per agency per day.
// The counter key expires at the next midnight UTC.
type RedisUsageLimiter struct {
	client   *redis.Client
	dailyCap int64
}

func NewRedisUsageLimiter(client *redis.Client, dailyCap int64) *RedisUsageLimiter {
	if dailyCap <= 0 {
		dailyCap = 200
	}
	return &RedisUsageLimiter{
		client:   client,
		dailyCap: dailyCap,
	}
}

func (l *RedisUsageLimiter) Allow(ctx context.Context, agencyID uuid.UUID) error {
	now := time.Now().UTC()
	key := fmt.Sprintf("ai_usage:%s:%s", agencyID.String(), now.Format("2006-01-02"))

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		// Redis being down should not block the assistant.
		return nil
	}
	if count == 1 {
		midnight := now.Truncate(24 * time.Hour).Add(24 * time.Hour)
		l.client.ExpireAt(ctx, key, midnight)
	}
	if count > l.dailyCap {
		return ErrLimitExceeded
	}
	return nil
}

// NoopLimiter is used when Redis is not configured.
type NoopLimiter struct{}

func (NoopLimiter) Allow(ctx context.Context, agencyID uuid.UUID) error { return nil }
