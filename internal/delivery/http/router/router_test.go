package router

import (
	"net/http"
	"testing"

	"trove/internal/delivery/http/middleware"
	"trove/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRoutes_ProbesAlwaysRegistered(t *testing.T) {
	e := echo.New()

	r := NewRouter(RouterParams{
		AuthHandler:         &handler.AuthHandler{},
		TripHandler:         &handler.TripHandler{},
		PlannerHandler:      &handler.PlannerHandler{},
		AuthMiddleware:      &middleware.AuthMiddleware{},
		RateLimitMiddleware: &middleware.RateLimitMiddleware{},
	})
	r.RegisterRoutes(e)

	registered := make(map[string]bool)
	for _, route := range e.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	assert.True(t, registered[http.MethodGet+" /health"])
	assert.True(t, registered[http.MethodGet+" /test"])
	assert.True(t, registered[http.MethodPost+" /api/auth/login"])
	assert.True(t, registered[http.MethodGet+" /api/trips/:id/share"])
}
