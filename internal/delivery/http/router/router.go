// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"trove/internal/delivery/http/middleware"
	"trove/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	TripHandler    *handler.TripHandler
	PlannerHandler *handler.PlannerHandler

	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	tripHandler    *handler.TripHandler
	plannerHandler *handler.PlannerHandler

	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		tripHandler:         params.TripHandler,
		plannerHandler:      params.PlannerHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Unauthenticated probes
	e.GET("/health", handler.HealthCheck)
	e.GET("/test", handler.TestPing)

	api := e.Group("/api")

	// Auth routes; register and login carry the brute-force rate limit
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register, r.rateLimitMiddleware.Limit)
		authGroup.POST("/login", r.authHandler.Login, r.rateLimitMiddleware.Limit)

		authGroup.GET("/google", r.authHandler.GoogleLogin)
		authGroup.GET("/google/callback", r.authHandler.GoogleCallback)
		authGroup.POST("/google/token", r.authHandler.GoogleTokenLogin)

		authGroup.GET("/profile", r.authHandler.Profile, r.authMiddleware.Authenticate)
		authGroup.POST("/refresh", r.authHandler.Refresh, r.authMiddleware.Authenticate)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
	}

	// Trip routes, all owner-scoped. The share endpoint is the single public
	// exception and authenticates optionally.
	api.GET("/trips/:id/share", r.tripHandler.ShareQR, r.authMiddleware.OptionalAuthenticate)

	tripGroup := api.Group("/trips")
	tripGroup.Use(r.authMiddleware.Authenticate)
	{
		tripGroup.GET("", r.tripHandler.List)
		tripGroup.GET("/stats", r.tripHandler.Stats)
		tripGroup.GET("/:id", r.tripHandler.Get)
		tripGroup.POST("", r.tripHandler.Create)
		tripGroup.PUT("/:id", r.tripHandler.Update)
		tripGroup.PATCH("/:id/status", r.tripHandler.UpdateStatus)
		tripGroup.DELETE("/:id", r.tripHandler.Delete)
	}

	// AI planning routes
	aiGroup := api.Group("/ai")
	aiGroup.Use(r.authMiddleware.Authenticate)
	{
		aiGroup.POST("/itinerary/:tripId", r.plannerHandler.GenerateItinerary)
		aiGroup.PUT("/itinerary/:tripId/regenerate", r.plannerHandler.RegenerateItinerary)
		aiGroup.POST("/suggestions", r.plannerHandler.SuggestActivities)
		aiGroup.POST("/recommendations", r.plannerHandler.Recommendations)
	}
}
