package service

import (
	"context"
	"time"
)

// DomainEvent is published when something notable happens to an aggregate.
type DomainEvent struct {
	Type       string         `json:"type"`
	UserID     string         `json:"userId,omitempty"`
	ResourceID string         `json:"resourceId,omitempty"`
	Payload    map[string]any `json:"payload,omitempty"`
	OccurredAt time.Time      `json:"occurredAt"`
}

// Event type names.
const (
	EventUserRegistered     = "user.registered"
	EventTripCreated        = "trip.created"
	EventTripDeleted        = "trip.deleted"
	EventItineraryGenerated = "itinerary.generated"
)

// EventPublisher delivers domain events to interested consumers. Publishing is
// best effort; callers log failures and carry on.
type EventPublisher interface {
	Publish(ctx context.Context, event *DomainEvent) error
	Close() error
}
