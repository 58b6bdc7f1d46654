package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestThrottle(t *testing.T, maxAttempts int, window time.Duration) (*miniredis.Miniredis, *redisLoginThrottle) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	throttle := NewRedisLoginThrottle(client, maxAttempts, window).(*redisLoginThrottle)
	return mr, throttle
}

func TestRedisLoginThrottle_AllowsUpToLimit(t *testing.T) {
	_, throttle := newTestThrottle(t, 3, time.Minute)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		allowed, err := throttle.Allow(ctx, "user@example.com")
		if err != nil {
			t.Fatalf("Allow() attempt %d: unexpected error %v", i, err)
		}
		if !allowed {
			t.Fatalf("Allow() attempt %d = false, want true", i)
		}
	}

	allowed, err := throttle.Allow(ctx, "user@example.com")
	if err != nil {
		t.Fatalf("Allow() over limit: unexpected error %v", err)
	}
	if allowed {
		t.Error("Allow() over limit = true, want false")
	}
}

func TestRedisLoginThrottle_KeysAreIndependent(t *testing.T) {
	_, throttle := newTestThrottle(t, 1, time.Minute)
	ctx := context.Background()

	if allowed, _ := throttle.Allow(ctx, "a@example.com"); !allowed {
		t.Fatal("first attempt for a@example.com should be allowed")
	}
	if allowed, _ := throttle.Allow(ctx, "a@example.com"); allowed {
		t.Error("second attempt for a@example.com should be blocked")
	}
	if allowed, _ := throttle.Allow(ctx, "b@example.com"); !allowed {
		t.Error("first attempt for b@example.com should be allowed")
	}
}

func TestRedisLoginThrottle_WindowExpires(t *testing.T) {
	mr, throttle := newTestThrottle(t, 1, time.Minute)
	ctx := context.Background()

	if allowed, _ := throttle.Allow(ctx, "user@example.com"); !allowed {
		t.Fatal("first attempt should be allowed")
	}
	if allowed, _ := throttle.Allow(ctx, "user@example.com"); allowed {
		t.Fatal("second attempt should be blocked")
	}

	mr.FastForward(time.Minute + time.Second)

	if allowed, _ := throttle.Allow(ctx, "user@example.com"); !allowed {
		t.Error("attempt after window expiry should be allowed")
	}
}

func TestRedisLoginThrottle_ResetClearsCounter(t *testing.T) {
	_, throttle := newTestThrottle(t, 1, time.Minute)
	ctx := context.Background()

	if allowed, _ := throttle.Allow(ctx, "user@example.com"); !allowed {
		t.Fatal("first attempt should be allowed")
	}
	if err := throttle.Reset(ctx, "user@example.com"); err != nil {
		t.Fatalf("Reset() unexpected error: %v", err)
	}
	if allowed, _ := throttle.Allow(ctx, "user@example.com"); !allowed {
		t.Error("attempt after reset should be allowed")
	}
}
