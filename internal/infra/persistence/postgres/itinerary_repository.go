package postgres

import (
	"context"
	"encoding/json"

	"trove/internal/domain/entity"
	domainerrors "trove/internal/domain/errors"
	"trove/internal/domain/repository"
	"trove/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// itineraryRepository implements the repository.ItineraryRepository interface using GORM.
type itineraryRepository struct {
	db *gorm.DB
}

// NewItineraryRepository is the constructor for itineraryRepository.
func NewItineraryRepository(db *gorm.DB) repository.ItineraryRepository {
	return &itineraryRepository{db: db}
}

// FindByTrip retrieves the itinerary attached to a trip, if any.
func (repo *itineraryRepository) FindByTrip(ctx context.Context, tripID uuid.UUID) (*entity.Itinerary, error) {
	var itineraryM model.ItineraryModel
	err := repo.db.WithContext(ctx).Where("trip_id = ?", tripID).First(&itineraryM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItineraryNotFound
		}

		return nil, errors.Wrap(err, "failed to find itinerary")
	}

	return toItineraryDomain(&itineraryM)
}

// Create persists a new itinerary.
func (repo *itineraryRepository) Create(ctx context.Context, itinerary *entity.Itinerary) error {
	itineraryM, err := fromItineraryDomain(itinerary)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(itineraryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrItineraryExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrTripNotFound
		}

		return domainerrors.NewDatabaseError(err, "failed to create itinerary")
	}

	itinerary.ID = itineraryM.ID
	itinerary.CreatedAt = itineraryM.CreatedAt
	itinerary.UpdatedAt = itineraryM.UpdatedAt

	return nil
}

// DeleteByTrip removes the itinerary attached to a trip. A trip without an
// itinerary is not an error.
func (repo *itineraryRepository) DeleteByTrip(ctx context.Context, tripID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Delete(&model.ItineraryModel{}).Error; err != nil {
		return domainerrors.NewDatabaseError(err, "failed to delete itinerary")
	}

	return nil
}

// toItineraryDomain maps the persistence model to a pure domain entity.
func toItineraryDomain(itineraryM *model.ItineraryModel) (*entity.Itinerary, error) {
	var days []entity.ItineraryDay
	if len(itineraryM.Days) != 0 {
		if err := json.Unmarshal(itineraryM.Days, &days); err != nil {
			return nil, errors.Wrap(err, "failed to decode itinerary days")
		}
	}

	var totalCost *entity.Cost
	if itineraryM.TotalCostAmount != nil {
		totalCost = &entity.Cost{
			Amount:   *itineraryM.TotalCostAmount,
			Currency: itineraryM.TotalCostCurrency,
		}
	}

	return &entity.Itinerary{
		ID:          itineraryM.ID,
		TripID:      itineraryM.TripID,
		UserID:      itineraryM.UserID,
		Name:        itineraryM.Name,
		Description: itineraryM.Description,
		Days:        days,
		TotalCost:   totalCost,
		Version:     itineraryM.Version,
		CreatedAt:   itineraryM.CreatedAt,
		UpdatedAt:   itineraryM.UpdatedAt,
	}, nil
}

// fromItineraryDomain maps a domain entity to the persistence model.
func fromItineraryDomain(itinerary *entity.Itinerary) (*model.ItineraryModel, error) {
	days := itinerary.Days
	if days == nil {
		days = []entity.ItineraryDay{}
	}
	encoded, err := json.Marshal(days)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode itinerary days")
	}

	itineraryM := &model.ItineraryModel{
		ID:          itinerary.ID,
		TripID:      itinerary.TripID,
		UserID:      itinerary.UserID,
		Name:        itinerary.Name,
		Description: itinerary.Description,
		Days:        encoded,
		Version:     itinerary.Version,
		CreatedAt:   itinerary.CreatedAt,
		UpdatedAt:   itinerary.UpdatedAt,
	}
	if itinerary.TotalCost != nil {
		amount := itinerary.TotalCost.Amount
		itineraryM.TotalCostAmount = &amount
		itineraryM.TotalCostCurrency = itinerary.TotalCost.Currency
	}

	return itineraryM, nil
}
