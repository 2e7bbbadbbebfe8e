package handler

import (
	"net/http"
	"time"

	"trove/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck is the unauthenticated liveness probe.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC(),
	}, "")
}

// TestPing backs the unauthenticated /test probe.
func TestPing(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"message": "API is working",
	}, "")
}
