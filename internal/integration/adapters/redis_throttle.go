// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/partilio/backend/internal/application/adapter"
)

// redisLoginThrottle implements adapter.LoginThrottle with a fixed window
// counter per key. The first attempt creates the counter with a TTL; the
// window never slides, it simply expires.
type redisLoginThrottle struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
}

// NewRedisLoginThrottle creates a new redis-backed login throttle.
func NewRedisLoginThrottle(client *redis.Client, maxAttempts int, window time.Duration) adapter.LoginThrottle {
	return &redisLoginThrottle{
		client:      client,
		maxAttempts: maxAttempts,
		window:      window,
	}
}

// Allow records one attempt for the key and reports whether it is within
// the window's budget.
func (t *redisLoginThrottle) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := t.redisKey(key)

	created, err := t.client.SetNX(ctx, redisKey, 1, t.window).Result()
	if err != nil {
		return false, fmt.Errorf("failed to initialize throttle counter: %w", err)
	}
	if created {
		return true, nil
	}

	count, err := t.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment throttle counter: %w", err)
	}

	// A counter that lost its TTL (e.g. INCR on an expiring key race) would
	// lock the key out forever; re-arm the window.
	ttl, err := t.client.TTL(ctx, redisKey).Result()
	if err == nil && ttl < 0 {
		t.client.Expire(ctx, redisKey, t.window)
	}

	return count <= int64(t.maxAttempts), nil
}

// Reset clears the counter for the key, typically after a successful login.
func (t *redisLoginThrottle) Reset(ctx context.Context, key string) error {
	return t.client.Del(ctx, t.redisKey(key)).Err()
}

func (t *redisLoginThrottle) redisKey(key string) string {
	return "login_throttle:" + key
}
