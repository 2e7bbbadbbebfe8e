package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "trove/internal/delivery/context"
	"trove/internal/delivery/http/response"
	domainerrors "trove/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware renders every failure through the unified error envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware.
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is installed as Echo's HTTPErrorHandler. Classified
// failures render with their kind, code and details; echo's own errors are
// translated into the envelope; anything else is logged and coerced to a
// generic internal error so driver and stack detail never reaches a client.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.logSecurityEvent(logger, appErr, c)

		m.render(c, appErr.HTTPStatus(), &response.ErrorInfo{
			Type:    string(appErr.Kind()),
			Message: appErr.Message(),
			Code:    appErr.ErrorCode(),
			Details: appErr.Details(),
		})

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		m.render(c, httpErr.Code, &response.ErrorInfo{
			Type:    string(domainerrors.KindInternal),
			Message: fmt.Sprintf("%v", httpErr.Message),
			Code:    domainerrors.CodeUnknownError,
		})

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("method", c.Request().Method),
		slog.String("path", c.Request().URL.Path),
	)

	m.render(c, http.StatusInternalServerError, &response.ErrorInfo{
		Type:    string(domainerrors.KindInternal),
		Message: "Internal server error",
		Code:    domainerrors.CodeUnknownError,
	})
}

func (m *ErrorMiddleware) render(c echo.Context, status int, info *response.ErrorInfo) {
	info.Timestamp = time.Now().UTC()
	info.Path = c.Request().URL.Path

	if err := response.Failure(c, status, info); err != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", err))
	}
}

// logSecurityEvent records rejected credentials and permission failures with
// the caller's address, which operators watch for probing.
func (m *ErrorMiddleware) logSecurityEvent(logger *slog.Logger, appErr domainerrors.AppError, c echo.Context) {
	switch appErr.Kind() {
	case domainerrors.KindAuthentication, domainerrors.KindAuthorization:
		logger.Warn("Security event",
			slog.String("code", appErr.ErrorCode()),
			slog.String("ip", c.RealIP()),
			slog.String("user_agent", c.Request().UserAgent()),
			slog.String("method", c.Request().Method),
			slog.String("path", c.Request().URL.Path),
		)
	}
}
