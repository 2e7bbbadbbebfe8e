package repository

import (
	"context"
	"errors"
	"time"

	"trove/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTripNotFound is returned when a trip does not exist or is not owned by
// the requesting user. The two cases are deliberately indistinguishable so a
// caller cannot probe for other users' trip IDs.
var ErrTripNotFound = errors.New("trip not found")

// TripFilter narrows a trip listing. Zero values mean "no filter".
type TripFilter struct {
	Status      entity.TripStatus
	Destination string // case-insensitive substring match
}

// TripRepository defines the standard operations for trip persistence.
// Every operation that touches a specific trip is scoped by the owner's ID.
type TripRepository interface {
	// ListByOwner retrieves all trips owned by a user, filtered and ordered by start date.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, filter TripFilter) ([]*entity.Trip, error)

	// FindByIDAndOwner retrieves a trip by ID only when it is owned by ownerID.
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Trip, error)

	// FindPublicByID retrieves a trip by ID regardless of owner, but only when it is public.
	FindPublicByID(ctx context.Context, id uuid.UUID) (*entity.Trip, error)

	// Create persists a new trip.
	Create(ctx context.Context, trip *entity.Trip) error

	// Update modifies an existing trip in place.
	Update(ctx context.Context, trip *entity.Trip) error

	// DeleteByIDAndOwner removes a trip owned by ownerID. Returns ErrTripNotFound
	// when no matching row exists.
	DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) error

	// StatsByOwner aggregates trip counts for a user. "Upcoming" means the start
	// date is at or after now and the status is draft, planning or confirmed.
	StatsByOwner(ctx context.Context, ownerID uuid.UUID, now time.Time) (*entity.TripStats, error)
}
