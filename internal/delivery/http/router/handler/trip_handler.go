package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "trove/internal/delivery/context"
	"trove/internal/delivery/http/response"
	"trove/internal/domain/entity"
	domainerrors "trove/internal/domain/errors"
	"trove/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TripHandler holds dependencies for trip CRUD handlers.
type TripHandler struct {
	uc     usecase.TripUsecase
	logger *slog.Logger
}

// NewTripHandler is the constructor for TripHandler, injected by Fx.
func NewTripHandler(uc usecase.TripUsecase, logger *slog.Logger) *TripHandler {
	return &TripHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns the caller's trips, optionally filtered by status and
// destination substring.
func (h *TripHandler) List(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	var input usecase.ListTripsInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidInput
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	trips, err := h.uc.List(c.Request().Context(), identity.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, trips, "")
}

// Stats returns the caller's aggregated trip counts.
func (h *TripHandler) Stats(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	stats, err := h.uc.Stats(c.Request().Context(), identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}

// Get returns one owned trip together with its itinerary when one exists.
func (h *TripHandler) Get(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	tripID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.uc.Get(c.Request().Context(), tripID, identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, detail, "")
}

// Create validates and persists a new trip for the caller.
func (h *TripHandler) Create(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	var input usecase.CreateTripInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidInput
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	trip, err := h.uc.Create(c.Request().Context(), identity.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, trip, "Trip created successfully")
}

// Update applies a partial update to an owned trip.
func (h *TripHandler) Update(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	tripID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateTripInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidInput
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	trip, err := h.uc.Update(c.Request().Context(), tripID, identity.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, trip, "Trip updated successfully")
}

// updateStatusInput is the PATCH body for a status change.
type updateStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// UpdateStatus moves an owned trip to a new lifecycle status.
func (h *TripHandler) UpdateStatus(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	tripID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var input updateStatusInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidInput
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	trip, err := h.uc.UpdateStatus(c.Request().Context(), tripID, identity.ID, entity.TripStatus(input.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, trip, "Trip status updated")
}

// Delete removes an owned trip together with its itinerary.
func (h *TripHandler) Delete(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	tripID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), tripID, identity.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Trip deleted successfully")
}

// ShareQR renders a QR code PNG linking to the trip's public share page.
// Anonymous callers can share public trips; owners can always share their own.
func (h *TripHandler) ShareQR(c echo.Context) error {
	tripID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var viewerID *uuid.UUID
	if identity, ok := deliverycontext.GetIdentity(c); ok {
		viewerID = &identity.ID
	}

	png, err := h.uc.ShareQR(c.Request().Context(), tripID, viewerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// parseIDParam reads a UUID route parameter; malformed values are a 400, not
// a 404, so typos are distinguishable from missing resources.
func parseIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidFormat.WithDetails(map[string]string{name: "must be a valid UUID"})
	}

	return id, nil
}
