package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedWindowLimiter_AllowsUpToLimit(t *testing.T) {
	limiter := NewFixedWindowLimiter()
	ctx := context.Background()

	key := "192.0.2.1"
	limit := 5
	window := time.Minute

	for i := 0; i < limit; i++ {
		allowed, remaining, _, err := limiter.Allow(ctx, key, limit, window)
		assert.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
		assert.Equal(t, limit-i-1, remaining)
	}

	// 6th request should be denied
	allowed, remaining, retryAfter, err := limiter.Allow(ctx, key, limit, window)
	assert.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, 0, remaining)
	assert.Greater(t, retryAfter, time.Duration(0))
	assert.LessOrEqual(t, retryAfter, window)
}

func TestFixedWindowLimiter_KeysAreIndependent(t *testing.T) {
	limiter := NewFixedWindowLimiter()
	ctx := context.Background()

	allowed, _, _, err := limiter.Allow(ctx, "192.0.2.1", 1, time.Minute)
	assert.NoError(t, err)
	assert.True(t, allowed)

	allowed, _, _, _ = limiter.Allow(ctx, "192.0.2.1", 1, time.Minute)
	assert.False(t, allowed)

	allowed, _, _, err = limiter.Allow(ctx, "192.0.2.2", 1, time.Minute)
	assert.NoError(t, err)
	assert.True(t, allowed)
}

func TestFixedWindowLimiter_WindowExpiry(t *testing.T) {
	limiter := NewFixedWindowLimiter()
	ctx := context.Background()

	window := 20 * time.Millisecond

	allowed, _, _, _ := limiter.Allow(ctx, "key", 1, window)
	assert.True(t, allowed)

	allowed, _, _, _ = limiter.Allow(ctx, "key", 1, window)
	assert.False(t, allowed)

	time.Sleep(window + 10*time.Millisecond)

	allowed, remaining, _, err := limiter.Allow(ctx, "key", 1, window)
	assert.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 0, remaining)
}

func TestFixedWindowLimiter_ResetsExactlyAtWindowBoundary(t *testing.T) {
	limiter := NewFixedWindowLimiter().(*FixedWindowLimiter)
	ctx := context.Background()

	window := time.Minute
	start := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	now := start
	limiter.now = func() time.Time { return now }

	allowed, _, _, _ := limiter.Allow(ctx, "key", 1, window)
	assert.True(t, allowed)

	// One nanosecond before the boundary still belongs to the exhausted window.
	now = start.Add(window - time.Nanosecond)
	allowed, _, retryAfter, _ := limiter.Allow(ctx, "key", 1, window)
	assert.False(t, allowed)
	assert.Equal(t, time.Nanosecond, retryAfter)

	// Exactly at the boundary a fresh window starts.
	now = start.Add(window)
	allowed, remaining, retryAfter, err := limiter.Allow(ctx, "key", 1, window)
	assert.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 0, remaining)
	assert.Equal(t, window, retryAfter)
}

func TestFixedWindowLimiter_Reset(t *testing.T) {
	limiter := NewFixedWindowLimiter()
	ctx := context.Background()

	allowed, _, _, _ := limiter.Allow(ctx, "key", 1, time.Minute)
	assert.True(t, allowed)

	allowed, _, _, _ = limiter.Allow(ctx, "key", 1, time.Minute)
	assert.False(t, allowed)

	assert.NoError(t, limiter.Reset(ctx, "key"))

	allowed, _, _, _ = limiter.Allow(ctx, "key", 1, time.Minute)
	assert.True(t, allowed)
}
