package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"trove/config"
	domainerrors "trove/internal/domain/errors"
	mockSvc "trove/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type rateLimitFixtures struct {
	middleware *RateLimitMiddleware
	limiter    *mockSvc.MockRateLimiter
}

func createTestRateLimitMiddleware(t *testing.T) rateLimitFixtures {
	limiter := mockSvc.NewMockRateLimiter(t)
	cfg := &config.Config{
		RateLimit: &config.RateLimitConfig{
			Max:    5,
			Window: 15 * time.Minute,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return rateLimitFixtures{
		middleware: NewRateLimitMiddleware(limiter, cfg, logger),
		limiter:    limiter,
	}
}

func newLoginRequest() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestRateLimitMiddleware_AllowsWithinQuota(t *testing.T) {
	f := createTestRateLimitMiddleware(t)

	f.limiter.EXPECT().Allow(mock.Anything, mock.AnythingOfType("string"), 5, 15*time.Minute).Return(true, 3, 10*time.Minute, nil)

	c, rec := newLoginRequest()

	nextCalled := false
	err := f.middleware.Limit(func(c echo.Context) error {
		nextCalled = true

		return nil
	})(c)

	assert.NoError(t, err)
	assert.True(t, nextCalled)
	assert.Equal(t, "3", rec.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimitMiddleware_RejectsOverQuota(t *testing.T) {
	f := createTestRateLimitMiddleware(t)

	f.limiter.EXPECT().Allow(mock.Anything, mock.AnythingOfType("string"), 5, 15*time.Minute).Return(false, 0, 9*time.Minute+2*time.Second, nil)

	c, rec := newLoginRequest()

	err := f.middleware.Limit(func(c echo.Context) error {
		t.Fatal("next should not run for a rejected request")

		return nil
	})(c)

	assert.ErrorIs(t, err, domainerrors.ErrRateLimited)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "542", rec.Header().Get("Retry-After"))
}

func TestRateLimitMiddleware_RetryAfterRoundsUpSubSecondWaits(t *testing.T) {
	f := createTestRateLimitMiddleware(t)

	f.limiter.EXPECT().Allow(mock.Anything, mock.AnythingOfType("string"), 5, 15*time.Minute).Return(false, 0, 300*time.Millisecond, nil)

	c, rec := newLoginRequest()

	err := f.middleware.Limit(func(c echo.Context) error {
		t.Fatal("next should not run for a rejected request")

		return nil
	})(c)

	assert.ErrorIs(t, err, domainerrors.ErrRateLimited)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
}

func TestRateLimitMiddleware_FailsOpenOnLimiterError(t *testing.T) {
	f := createTestRateLimitMiddleware(t)

	f.limiter.EXPECT().Allow(mock.Anything, mock.AnythingOfType("string"), 5, 15*time.Minute).Return(false, 0, time.Duration(0), assert.AnError)

	c, _ := newLoginRequest()

	nextCalled := false
	err := f.middleware.Limit(func(c echo.Context) error {
		nextCalled = true

		return nil
	})(c)

	assert.NoError(t, err)
	assert.True(t, nextCalled)
}
