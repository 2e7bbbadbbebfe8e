package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "trove/internal/delivery/context"
	"trove/internal/delivery/http/response"
	domainerrors "trove/internal/domain/errors"
	"trove/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PlannerHandler holds dependencies for the AI planning handlers.
type PlannerHandler struct {
	uc     usecase.PlannerUsecase
	logger *slog.Logger
}

// NewPlannerHandler is the constructor for PlannerHandler, injected by Fx.
func NewPlannerHandler(uc usecase.PlannerUsecase, logger *slog.Logger) *PlannerHandler {
	return &PlannerHandler{
		uc:     uc,
		logger: logger,
	}
}

// GenerateItinerary creates an itinerary for an owned trip.
func (h *PlannerHandler) GenerateItinerary(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	tripID, err := parseIDParam(c, "tripId")
	if err != nil {
		return err
	}

	itinerary, err := h.uc.GenerateItinerary(c.Request().Context(), tripID, identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, itinerary, "Itinerary generated successfully")
}

// RegenerateItinerary replaces an owned trip's itinerary with a fresh one.
func (h *PlannerHandler) RegenerateItinerary(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	tripID, err := parseIDParam(c, "tripId")
	if err != nil {
		return err
	}

	itinerary, err := h.uc.RegenerateItinerary(c.Request().Context(), tripID, identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, itinerary, "Itinerary regenerated successfully")
}

// SuggestActivities proposes activities for a destination.
func (h *PlannerHandler) SuggestActivities(c echo.Context) error {
	var input usecase.SuggestActivitiesInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidInput
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	suggestions, err := h.uc.SuggestActivities(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, suggestions, "")
}

// Recommendations produces destination-level travel advice.
func (h *PlannerHandler) Recommendations(c echo.Context) error {
	var input usecase.RecommendationsInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidInput
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	recommendations, err := h.uc.Recommendations(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recommendations, "")
}
