package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

func newTestThrottle(t *testing.T) (*LoginThrottle, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewLoginThrottle(client), mr
}

func TestLoginThrottle_AllowsFreshEmail(t *testing.T) {
	throttle, _ := newTestThrottle(t)

	ok, err := throttle.Allow(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("allow: %v", err)
	}
	if !ok {
		t.Fatalf("fresh email should be allowed")
	}
}

func TestLoginThrottle_BlocksAfterMaxFailures(t *testing.T) {
	throttle, _ := newTestThrottle(t)
	ctx := context.Background()

	for i := 0; i < throttleMaxFailures; i++ {
		ok, err := throttle.Allow(ctx, "bob@example.com")
		if err != nil {
			t.Fatalf("allow %d: %v", i, err)
		}
		if !ok {
			t.Fatalf("attempt %d should still be allowed", i)
		}
		if err := throttle.RecordFailure(ctx, "bob@example.com"); err != nil {
			t.Fatalf("record failure %d: %v", i, err)
		}
	}

	ok, err := throttle.Allow(ctx, "bob@example.com")
	if err != nil {
		t.Fatalf("allow after failures: %v", err)
	}
	if ok {
		t.Fatalf("expected block after %d failures", throttleMaxFailures)
	}
}

func TestLoginThrottle_ResetClearsCounter(t *testing.T) {
	throttle, _ := newTestThrottle(t)
	ctx := context.Background()

	for i := 0; i < throttleMaxFailures; i++ {
		_ = throttle.RecordFailure(ctx, "carol@example.com")
	}
	if ok, _ := throttle.Allow(ctx, "carol@example.com"); ok {
		t.Fatalf("should be blocked before reset")
	}

	if err := throttle.Reset(ctx, "carol@example.com"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if ok, _ := throttle.Allow(ctx, "carol@example.com"); !ok {
		t.Fatalf("should be allowed after reset")
	}
}

func TestLoginThrottle_WindowExpires(t *testing.T) {
	throttle, mr := newTestThrottle(t)
	ctx := context.Background()

	for i := 0; i < throttleMaxFailures; i++ {
		_ = throttle.RecordFailure(ctx, "dave@example.com")
	}
	if ok, _ := throttle.Allow(ctx, "dave@example.com"); ok {
		t.Fatalf("should be blocked inside the window")
	}

	mr.FastForward(throttleWindow + time.Second)

	if ok, _ := throttle.Allow(ctx, "dave@example.com"); !ok {
		t.Fatalf("counter should expire with the window")
	}
}

func TestLoginThrottle_PerEmailIsolation(t *testing.T) {
	throttle, _ := newTestThrottle(t)
	ctx := context.Background()

	for i := 0; i < throttleMaxFailures; i++ {
		_ = throttle.RecordFailure(ctx, "eve@example.com")
	}

	if ok, _ := throttle.Allow(ctx, "frank@example.com"); !ok {
		t.Fatalf("failures for one email must not block another")
	}
}
