package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActivityCategory classifies a single itinerary activity.
type ActivityCategory string

const (
	ActivityCategoryAttraction    ActivityCategory = "attraction"
	ActivityCategoryRestaurant    ActivityCategory = "restaurant"
	ActivityCategoryTransport     ActivityCategory = "transport"
	ActivityCategoryAccommodation ActivityCategory = "accommodation"
	ActivityCategoryActivity      ActivityCategory = "activity"
	ActivityCategoryOther         ActivityCategory = "other"
)

// ActivityPriority ranks how important an activity is within a day.
type ActivityPriority string

const (
	ActivityPriorityMustSee     ActivityPriority = "must-see"
	ActivityPriorityRecommended ActivityPriority = "recommended"
	ActivityPriorityOptional    ActivityPriority = "optional"
)

// Cost is a money amount with its currency code.
type Cost struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Location names where an activity happens.
type Location struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

// Activity is a single scheduled item within an itinerary day.
// Times use the HH:MM wall-clock format, duration is in minutes.
type Activity struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Location    Location         `json:"location"`
	StartTime   string           `json:"startTime"`
	EndTime     string           `json:"endTime"`
	Duration    int              `json:"duration"`
	Category    ActivityCategory `json:"category"`
	Cost        *Cost            `json:"cost,omitempty"`
	Notes       string           `json:"notes,omitempty"`
	IsFlexible  bool             `json:"isFlexible"`
	Priority    ActivityPriority `json:"priority"`
}

// Weather is the forecast attached to an itinerary day.
type Weather struct {
	Forecast    string  `json:"forecast,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
	Conditions  string  `json:"conditions,omitempty"`
}

// ItineraryDay holds one day of planned activities.
type ItineraryDay struct {
	Date       string     `json:"date"`
	DayNumber  int        `json:"dayNumber"`
	Activities []Activity `json:"activities"`
	Notes      string     `json:"notes,omitempty"`
	Weather    *Weather   `json:"weather,omitempty"`
}

// Itinerary is the generated day-by-day plan for a trip. At most one itinerary
// exists per trip; regeneration replaces it and bumps the version.
type Itinerary struct {
	ID          uuid.UUID      `json:"id"`
	TripID      uuid.UUID      `json:"tripId"`
	UserID      uuid.UUID      `json:"userId"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Days        []ItineraryDay `json:"days"`
	TotalCost   *Cost          `json:"totalCost,omitempty"`
	Version     int            `json:"version"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
