package service

import (
	"context"

	"trove/internal/domain/entity"
)

// ItineraryDraft is the planner's parsed output before it is persisted as an
// Itinerary for a specific trip.
type ItineraryDraft struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Days        []entity.ItineraryDay `json:"days"`
	TotalCost   *entity.Cost          `json:"totalCost,omitempty"`
}

// ActivitySuggestion is one proposed activity for a destination.
type ActivitySuggestion struct {
	Name          string                  `json:"name"`
	Description   string                  `json:"description"`
	Category      entity.ActivityCategory `json:"category"`
	EstimatedCost *entity.Cost            `json:"estimatedCost,omitempty"`
	Duration      int                     `json:"duration"`
	Priority      entity.ActivityPriority `json:"priority"`
}

// SuggestionRequest describes what to suggest activities for.
type SuggestionRequest struct {
	Destination string
	Interests   []string
	Budget      *entity.Cost
}

// RecommendationRequest describes what to produce travel advice for.
type RecommendationRequest struct {
	Destination string
	TripType    string // defaults to "general"
	BudgetTier  string // defaults to "moderate"
}

// Recommendations is the destination-level travel advice block.
type Recommendations struct {
	BestTimeToVisit string   `json:"bestTimeToVisit"`
	Weather         string   `json:"weather"`
	Transportation  string   `json:"transportation"`
	Accommodation   string   `json:"accommodation"`
	Food            string   `json:"food"`
	Safety          string   `json:"safety"`
	Budget          string   `json:"budget"`
	Packing         string   `json:"packing"`
	Tips            []string `json:"tips"`
}

// PlannerService defines the interface to the language-model planning backend.
// Implementations build a text prompt from trip attributes, call the completion
// API, and parse the textual response as JSON. No retries and no streaming.
type PlannerService interface {
	// Configured reports whether the planner has an API key. When false, every
	// other method fails with the "not configured" error; callers can check
	// first to fail before doing any work.
	Configured() bool

	// GenerateItinerary produces a day-by-day plan for the trip.
	GenerateItinerary(ctx context.Context, trip *entity.Trip) (*ItineraryDraft, error)

	// SuggestActivities proposes activities for a destination.
	SuggestActivities(ctx context.Context, req *SuggestionRequest) ([]ActivitySuggestion, error)

	// Recommend produces destination-level travel advice.
	Recommend(ctx context.Context, req *RecommendationRequest) (*Recommendations, error)
}
