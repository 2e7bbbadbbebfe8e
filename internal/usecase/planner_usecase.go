package usecase

import (
	"context"

	"trove/internal/domain/entity"
	"trove/internal/domain/service"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SuggestActivitiesInput defines what to suggest activities for.
type SuggestActivitiesInput struct {
	Destination string   `json:"destination" validate:"required,min=1,max=200"`
	Interests   []string `json:"interests,omitempty" validate:"max=20,dive,max=50"`
	Budget      *struct {
		Amount   float64 `json:"amount" validate:"min=0"`
		Currency string  `json:"currency" validate:"required,len=3"`
	} `json:"budget,omitempty"`
}

// RecommendationsInput defines what to produce travel advice for. Trip type
// and budget tier default to "general" and "moderate".
type RecommendationsInput struct {
	Destination string `json:"destination" validate:"required,min=1,max=200"`
	TripType    string `json:"tripType,omitempty" validate:"omitempty,max=50"`
	Budget      string `json:"budget,omitempty" validate:"omitempty,oneof=budget moderate premium luxury"`
}

// PlannerUsecase defines the AI planning operations. All of them require the
// planner to be configured with an API key.
type PlannerUsecase interface {
	// GenerateItinerary creates an itinerary for an owned trip. Fails with a
	// conflict when the trip already has one.
	GenerateItinerary(ctx context.Context, tripID, ownerID uuid.UUID) (*entity.Itinerary, error)

	// RegenerateItinerary replaces an owned trip's itinerary, bumping its
	// version, in a single transaction.
	RegenerateItinerary(ctx context.Context, tripID, ownerID uuid.UUID) (*entity.Itinerary, error)

	// SuggestActivities proposes activities for a destination.
	SuggestActivities(ctx context.Context, input *SuggestActivitiesInput) ([]service.ActivitySuggestion, error)

	// Recommendations produces destination-level travel advice.
	Recommendations(ctx context.Context, input *RecommendationsInput) (*service.Recommendations, error)
}
