package repository

import (
	"context"
	"errors"

	"trove/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrItineraryNotFound is returned when no itinerary exists for a trip.
var ErrItineraryNotFound = errors.New("itinerary not found")

// ItineraryRepository defines the standard operations for itinerary persistence.
type ItineraryRepository interface {
	// FindByTrip retrieves the itinerary attached to a trip, if any.
	FindByTrip(ctx context.Context, tripID uuid.UUID) (*entity.Itinerary, error)

	// Create persists a new itinerary.
	Create(ctx context.Context, itinerary *entity.Itinerary) error

	// DeleteByTrip removes the itinerary attached to a trip. Deleting a trip
	// without an itinerary is not an error.
	DeleteByTrip(ctx context.Context, tripID uuid.UUID) error
}
