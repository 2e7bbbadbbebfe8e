// Package response defines the unified API response envelope. Handlers only
// ever write the success shape; the error shape is rendered centrally by the
// error middleware.
package response

import (
	"time"

	"github.com/labstack/echo/v4"
)

// Envelope is the unified API response structure.
type Envelope struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries the failure details of an error envelope.
type ErrorInfo struct {
	Type      string    `json:"type"`    // Failure category, e.g. "VALIDATION_ERROR"
	Message   string    `json:"message"` // User-facing message
	Code      string    `json:"code"`    // Stable machine-readable code, e.g. "VAL_001"
	Details   any       `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Path      string    `json:"path"`
}

// Success writes a successful response.
func Success(c echo.Context, statusCode int, data any, message string) error {
	return c.JSON(statusCode, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Failure writes an error response. Only the error middleware should call
// this; handlers return errors instead.
func Failure(c echo.Context, statusCode int, info *ErrorInfo) error {
	if info.Timestamp.IsZero() {
		info.Timestamp = time.Now().UTC()
	}
	if info.Path == "" {
		info.Path = c.Request().URL.Path
	}

	return c.JSON(statusCode, Envelope{
		Success: false,
		Error:   info,
	})
}
