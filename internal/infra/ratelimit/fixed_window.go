// Package ratelimit provides in-memory request rate limiting.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"trove/internal/domain/service"
)

type fixedWindowEntry struct {
	count     int
	expiresAt time.Time
}

// FixedWindowLimiter implements rate limiting using fixed time windows.
// Counters live in process memory, so limits apply per instance.
type FixedWindowLimiter struct {
	mu      sync.Mutex
	entries map[string]*fixedWindowEntry
	now     func() time.Time
}

// NewFixedWindowLimiter creates a new fixed window rate limiter.
func NewFixedWindowLimiter() service.RateLimiter {
	return &FixedWindowLimiter{
		entries: make(map[string]*fixedWindowEntry),
		now:     time.Now,
	}
}

func (r *FixedWindowLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, int, time.Duration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	entry, exists := r.entries[key]

	// A request at exactly expiresAt belongs to the next window.
	if !exists || !now.Before(entry.expiresAt) {
		r.entries[key] = &fixedWindowEntry{
			count:     1,
			expiresAt: now.Add(window),
		}

		return true, limit - 1, window, nil
	}

	retryAfter := entry.expiresAt.Sub(now)

	if entry.count >= limit {
		return false, 0, retryAfter, nil
	}

	entry.count++
	remaining := limit - entry.count

	return true, remaining, retryAfter, nil
}

func (r *FixedWindowLimiter) Reset(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, key)

	return nil
}
