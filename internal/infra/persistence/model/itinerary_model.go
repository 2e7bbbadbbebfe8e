package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ItineraryModel mirrors the 'itineraries' table. The day-by-day plan is an
// opaque JSONB document; the application never filters inside it.
type ItineraryModel struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TripID            uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	UserID            uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name              string         `gorm:"type:varchar(200);not null"`
	Description       string         `gorm:"type:text"`
	Days              datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	TotalCostAmount   *float64
	TotalCostCurrency string `gorm:"type:varchar(3)"`
	Version           int    `gorm:"not null;default:1"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ItineraryModel) TableName() string {
	return "itineraries"
}
