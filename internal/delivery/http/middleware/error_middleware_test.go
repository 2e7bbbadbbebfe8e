package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"trove/internal/delivery/http/response"
	domainerrors "trove/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/trips/abc", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Envelope {
	t.Helper()

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope
}

func createTestErrorMiddleware() *ErrorMiddleware {
	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestErrorMiddleware_AppErrorEnvelope(t *testing.T) {
	m := createTestErrorMiddleware()
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(domainerrors.ErrTripNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "NOT_FOUND_ERROR", envelope.Error.Type)
	assert.Equal(t, "RES_001", envelope.Error.Code)
	assert.Equal(t, "Trip not found", envelope.Error.Message)
	assert.Equal(t, "/api/trips/abc", envelope.Error.Path)
	assert.False(t, envelope.Error.Timestamp.IsZero())
}

func TestErrorMiddleware_WrappedAppErrorStillClassified(t *testing.T) {
	m := createTestErrorMiddleware()
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(errors.Wrap(domainerrors.ErrInvalidCredentials, "login"), c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "AUTH_004", envelope.Error.Code)
}

func TestErrorMiddleware_ValidationDetailsSurface(t *testing.T) {
	m := createTestErrorMiddleware()
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(domainerrors.ErrInvalidInput.WithDetails(map[string]string{"email": "is required"}), c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "VAL_001", envelope.Error.Code)

	details, ok := envelope.Error.Details.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "is required", details["email"])
}

func TestErrorMiddleware_RateLimitEnvelope(t *testing.T) {
	m := createTestErrorMiddleware()
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(domainerrors.ErrRateLimited, c)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "RATE_LIMIT_ERROR", envelope.Error.Type)
	assert.Equal(t, "RATE_001", envelope.Error.Code)
}

func TestErrorMiddleware_EchoHTTPErrorTranslated(t *testing.T) {
	m := createTestErrorMiddleware()
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(echo.NewHTTPError(http.StatusNotFound, "Not Found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "Not Found", envelope.Error.Message)
	assert.Equal(t, "SRV_003", envelope.Error.Code)
}

func TestErrorMiddleware_UnknownErrorCoercedToInternal(t *testing.T) {
	m := createTestErrorMiddleware()
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(errors.New("pq: connection refused"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", envelope.Error.Type)
	assert.Equal(t, "SRV_003", envelope.Error.Code)
	// The driver message must not leak to the client.
	assert.Equal(t, "Internal server error", envelope.Error.Message)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestErrorMiddleware_CommittedResponseUntouched(t *testing.T) {
	m := createTestErrorMiddleware()
	c, rec := newErrorTestContext(t)

	require.NoError(t, c.NoContent(http.StatusOK))
	m.HandleHTTPError(domainerrors.ErrInternal, c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}
