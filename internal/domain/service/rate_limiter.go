package service

import (
	"context"
	"time"
)

// RateLimiter counts requests per key within a fixed window.
type RateLimiter interface {
	// Allow records a hit for key and reports whether it is within limit for
	// the window, along with the remaining quota after this hit and the time
	// left until the current window resets.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (allowed bool, remaining int, retryAfter time.Duration, err error)

	// Reset clears the counter for key.
	Reset(ctx context.Context, key string) error
}
