package middleware

import (
	"log/slog"
	"strconv"
	"time"

	"trove/config"
	domainerrors "trove/internal/domain/errors"
	"trove/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// RateLimitMiddleware throttles requests per client IP on the routes it is
// attached to.
type RateLimitMiddleware struct {
	limiter service.RateLimiter
	cfg     *config.Config
	logger  *slog.Logger
}

// NewRateLimitMiddleware is the constructor for RateLimitMiddleware.
func NewRateLimitMiddleware(limiter service.RateLimiter, cfg *config.Config, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter, cfg: cfg, logger: logger}
}

// Limit enforces the configured fixed-window quota, keyed by client IP.
// Rejections go through the shared error responder; a failing limiter fails
// open so a broken counter never takes the auth endpoints down.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.cfg.RateLimit == nil {
			return next(c)
		}

		key := c.RealIP()

		allowed, remaining, retryAfter, err := m.limiter.Allow(c.Request().Context(), key, m.cfg.RateLimit.Max, m.cfg.RateLimit.Window)
		if err != nil {
			m.logger.Error("Rate limiter failure, allowing request",
				slog.String("key", key),
				slog.Any("error", err),
			)

			return next(c)
		}

		c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			seconds := int((retryAfter + time.Second - 1) / time.Second)
			if seconds < 1 {
				seconds = 1
			}
			c.Response().Header().Set("Retry-After", strconv.Itoa(seconds))

			return domainerrors.ErrRateLimited
		}

		return next(c)
	}
}
