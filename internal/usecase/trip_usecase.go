package usecase

import (
	"context"
	"time"

	"trove/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// TravelersInput mirrors entity.Travelers for request payloads.
type TravelersInput struct {
	Count   int    `json:"count" validate:"required,min=1"`
	Type    string `json:"type" validate:"required,oneof=solo couple family group"`
	Details string `json:"details,omitempty" validate:"max=500"`
}

// BudgetInput mirrors entity.Budget for request payloads.
type BudgetInput struct {
	Amount   float64 `json:"amount" validate:"min=0"`
	Currency string  `json:"currency" validate:"required,len=3"`
	Type     string  `json:"type" validate:"required,oneof=budget moderate premium luxury"`
}

// CreateTripInput defines the data required to create a trip.
type CreateTripInput struct {
	Name        string         `json:"name" validate:"required,min=1,max=200"`
	Destination string         `json:"destination" validate:"required,min=1,max=200"`
	StartDate   time.Time      `json:"startDate" validate:"required"`
	EndDate     time.Time      `json:"endDate" validate:"required"`
	Travelers   TravelersInput `json:"travelers" validate:"required"`
	Budget      BudgetInput    `json:"budget" validate:"required"`
	Description string         `json:"description,omitempty" validate:"max=2000"`
	Tags        []string       `json:"tags,omitempty" validate:"max=20,dive,max=50"`
	IsPublic    *bool          `json:"isPublic,omitempty"`
}

// UpdateTripInput defines a partial trip update. Nil fields are left unchanged;
// date, traveler and budget rules are re-checked against the merged state.
type UpdateTripInput struct {
	Name        *string         `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Destination *string         `json:"destination,omitempty" validate:"omitempty,min=1,max=200"`
	StartDate   *time.Time      `json:"startDate,omitempty"`
	EndDate     *time.Time      `json:"endDate,omitempty"`
	Travelers   *TravelersInput `json:"travelers,omitempty"`
	Budget      *BudgetInput    `json:"budget,omitempty"`
	Description *string         `json:"description,omitempty" validate:"omitempty,max=2000"`
	Tags        []string        `json:"tags,omitempty" validate:"max=20,dive,max=50"`
	IsPublic    *bool           `json:"isPublic,omitempty"`
}

// ListTripsInput narrows a trip listing.
type ListTripsInput struct {
	Status      string `query:"status" validate:"omitempty,oneof=draft planning confirmed completed cancelled"`
	Destination string `query:"destination" validate:"omitempty,max=200"`
}

// --- Output DTOs ---

// TripDetail joins a trip with its itinerary when one exists.
type TripDetail struct {
	Trip      *entity.Trip      `json:"trip"`
	Itinerary *entity.Itinerary `json:"itinerary,omitempty"`
}

// TripUsecase defines the interface for trip-related business operations.
// Every operation is scoped to the authenticated owner; public sharing is the
// single deliberate exception.
type TripUsecase interface {
	// List returns the owner's trips ordered by start date.
	List(ctx context.Context, ownerID uuid.UUID, input *ListTripsInput) ([]*entity.Trip, error)

	// Get returns one owned trip with its itinerary, if any.
	Get(ctx context.Context, id, ownerID uuid.UUID) (*TripDetail, error)

	// Create validates and persists a new trip.
	Create(ctx context.Context, ownerID uuid.UUID, input *CreateTripInput) (*entity.Trip, error)

	// Update applies a partial update to an owned trip.
	Update(ctx context.Context, id, ownerID uuid.UUID, input *UpdateTripInput) (*entity.Trip, error)

	// UpdateStatus moves an owned trip to a new lifecycle status.
	UpdateStatus(ctx context.Context, id, ownerID uuid.UUID, status entity.TripStatus) (*entity.Trip, error)

	// Delete removes an owned trip together with its itinerary, atomically.
	Delete(ctx context.Context, id, ownerID uuid.UUID) error

	// Stats aggregates the owner's trip counts.
	Stats(ctx context.Context, ownerID uuid.UUID) (*entity.TripStats, error)

	// ShareQR renders a QR code pointing at a public trip. Owners can always
	// share their own trips; anyone can share a public one.
	ShareQR(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) ([]byte, error)
}
