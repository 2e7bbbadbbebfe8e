package entity

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus tracks where a trip sits in its planning lifecycle.
type TripStatus string

const (
	TripStatusDraft     TripStatus = "draft"
	TripStatusPlanning  TripStatus = "planning"
	TripStatusConfirmed TripStatus = "confirmed"
	TripStatusCompleted TripStatus = "completed"
	TripStatusCancelled TripStatus = "cancelled"
)

// String returns the string representation of the TripStatus.
func (s TripStatus) String() string {
	return string(s)
}

// IsValid checks if the TripStatus is a known value.
func (s TripStatus) IsValid() bool {
	switch s {
	case TripStatusDraft, TripStatusPlanning, TripStatusConfirmed, TripStatusCompleted, TripStatusCancelled:
		return true
	default:
		return false
	}
}

// TravelerType classifies the travel party.
type TravelerType string

const (
	TravelerTypeSolo   TravelerType = "solo"
	TravelerTypeCouple TravelerType = "couple"
	TravelerTypeFamily TravelerType = "family"
	TravelerTypeGroup  TravelerType = "group"
)

// IsValid checks if the TravelerType is a known value.
func (t TravelerType) IsValid() bool {
	switch t {
	case TravelerTypeSolo, TravelerTypeCouple, TravelerTypeFamily, TravelerTypeGroup:
		return true
	default:
		return false
	}
}

// BudgetTier classifies the spending level a trip is planned against.
type BudgetTier string

const (
	BudgetTierBudget   BudgetTier = "budget"
	BudgetTierModerate BudgetTier = "moderate"
	BudgetTierPremium  BudgetTier = "premium"
	BudgetTierLuxury   BudgetTier = "luxury"
)

// IsValid checks if the BudgetTier is a known value.
func (b BudgetTier) IsValid() bool {
	switch b {
	case BudgetTierBudget, BudgetTierModerate, BudgetTierPremium, BudgetTierLuxury:
		return true
	default:
		return false
	}
}

// Travelers describes the party taking the trip.
type Travelers struct {
	Count   int          `json:"count"`
	Type    TravelerType `json:"type"`
	Details string       `json:"details,omitempty"`
}

// Budget describes the money set aside for the trip.
type Budget struct {
	Amount   float64    `json:"amount"`
	Currency string     `json:"currency"`
	Type     BudgetTier `json:"type"`
}

// Trip is a planned journey owned by exactly one user. Every read, update and
// delete is scoped by the owning user's ID.
type Trip struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"userId"`
	Name        string     `json:"name"`
	Destination string     `json:"destination"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     time.Time  `json:"endDate"`
	Travelers   Travelers  `json:"travelers"`
	Budget      Budget     `json:"budget"`
	Status      TripStatus `json:"status"`
	Description string     `json:"description,omitempty"`
	Tags        []string   `json:"tags"`
	IsPublic    bool       `json:"isPublic"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// DurationDays returns the trip length in whole days, rounding partial days up.
// A trip that ends the day after it starts is one day long.
func (t *Trip) DurationDays() int {
	d := t.EndDate.Sub(t.StartDate)
	days := int(d.Hours() / 24)
	if d%(24*time.Hour) != 0 {
		days++
	}
	if days < 1 {
		days = 1
	}

	return days
}

// TripStats summarizes a user's trips for the dashboard.
type TripStats struct {
	TotalTrips    int            `json:"totalTrips"`
	UpcomingTrips int            `json:"upcomingTrips"`
	ByStatus      map[string]int `json:"byStatus"`
}
