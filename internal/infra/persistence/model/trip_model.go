package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TripModel mirrors the 'trips' table. Traveler and budget attributes are
// flattened into columns so they can be filtered and aggregated in SQL.
type TripModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name            string         `gorm:"type:varchar(200);not null"`
	Destination     string         `gorm:"type:varchar(200);not null;index"`
	StartDate       time.Time      `gorm:"not null;index"`
	EndDate         time.Time      `gorm:"not null"`
	TravelerCount   int            `gorm:"not null;default:1"`
	TravelerType    string         `gorm:"type:varchar(20);not null"`
	TravelerDetails string         `gorm:"type:text"`
	BudgetAmount    float64        `gorm:"not null;default:0"`
	BudgetCurrency  string         `gorm:"type:varchar(3);not null;default:'USD'"`
	BudgetType      string         `gorm:"type:varchar(20);not null;default:'moderate'"`
	Status          string         `gorm:"type:varchar(20);not null;default:'draft';index"`
	Description     string         `gorm:"type:text"`
	Tags            datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	IsPublic        bool           `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Itinerary *ItineraryModel `gorm:"foreignKey:TripID"`
}

// TableName explicitly sets the table name for GORM.
func (TripModel) TableName() string {
	return "trips"
}
