package postgres

import (
	"context"
	"encoding/json"
	"time"

	"trove/internal/domain/entity"
	domainerrors "trove/internal/domain/errors"
	"trove/internal/domain/repository"
	"trove/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tripRepository implements the repository.TripRepository interface using GORM.
type tripRepository struct {
	db *gorm.DB
}

// NewTripRepository is the constructor for tripRepository.
func NewTripRepository(db *gorm.DB) repository.TripRepository {
	return &tripRepository{db: db}
}

// ListByOwner retrieves all trips owned by a user, filtered and ordered by start date.
func (repo *tripRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, filter repository.TripFilter) ([]*entity.Trip, error) {
	query := repo.db.WithContext(ctx).Where("user_id = ?", ownerID)

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Destination != "" {
		query = query.Where("destination ILIKE ?", "%"+filter.Destination+"%")
	}

	var tripMs []model.TripModel
	if err := query.Order("start_date ASC").Find(&tripMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list trips")
	}

	trips := make([]*entity.Trip, 0, len(tripMs))
	for i := range tripMs {
		trip, err := toTripDomain(&tripMs[i])
		if err != nil {
			return nil, err
		}
		trips = append(trips, trip)
	}

	return trips, nil
}

// FindByIDAndOwner retrieves a trip by ID only when it is owned by ownerID.
// A trip owned by someone else is indistinguishable from a missing one.
func (repo *tripRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Trip, error) {
	var tripM model.TripModel
	err := repo.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).First(&tripM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTripNotFound
		}

		return nil, errors.Wrap(err, "failed to find trip")
	}

	return toTripDomain(&tripM)
}

// FindPublicByID retrieves a trip by ID regardless of owner, but only when it is public.
func (repo *tripRepository) FindPublicByID(ctx context.Context, id uuid.UUID) (*entity.Trip, error) {
	var tripM model.TripModel
	err := repo.db.WithContext(ctx).Where("id = ? AND is_public = TRUE", id).First(&tripM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTripNotFound
		}

		return nil, errors.Wrap(err, "failed to find public trip")
	}

	return toTripDomain(&tripM)
}

// Create persists a new trip.
func (repo *tripRepository) Create(ctx context.Context, trip *entity.Trip) error {
	tripM, err := fromTripDomain(trip)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(tripM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("trip owner does not exist")
		}

		return domainerrors.NewDatabaseError(err, "failed to create trip")
	}

	trip.ID = tripM.ID
	trip.CreatedAt = tripM.CreatedAt
	trip.UpdatedAt = tripM.UpdatedAt

	return nil
}

// Update modifies an existing trip in place.
func (repo *tripRepository) Update(ctx context.Context, trip *entity.Trip) error {
	tripM, err := fromTripDomain(trip)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Save(tripM).Error; err != nil {
		return domainerrors.NewDatabaseError(err, "failed to update trip")
	}

	trip.UpdatedAt = tripM.UpdatedAt

	return nil
}

// DeleteByIDAndOwner removes a trip owned by ownerID.
func (repo *tripRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.TripModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseError(result.Error, "failed to delete trip")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTripNotFound
	}

	return nil
}

// StatsByOwner aggregates trip counts for a user.
func (repo *tripRepository) StatsByOwner(ctx context.Context, ownerID uuid.UUID, now time.Time) (*entity.TripStats, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.TripModel{}).
		Where("user_id = ?", ownerID).
		Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count trips")
	}

	var upcoming int64
	if err := repo.db.WithContext(ctx).Model(&model.TripModel{}).
		Where("user_id = ? AND start_date >= ? AND status IN ?", ownerID, now,
			[]string{entity.TripStatusDraft.String(), entity.TripStatusPlanning.String(), entity.TripStatusConfirmed.String()}).
		Count(&upcoming).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count upcoming trips")
	}

	type statusCount struct {
		Status string
		Count  int64
	}
	var counts []statusCount
	if err := repo.db.WithContext(ctx).Model(&model.TripModel{}).
		Select("status, COUNT(*) AS count").
		Where("user_id = ?", ownerID).
		Group("status").
		Scan(&counts).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count trips by status")
	}

	byStatus := make(map[string]int, len(counts))
	for _, c := range counts {
		byStatus[c.Status] = int(c.Count)
	}

	return &entity.TripStats{
		TotalTrips:    int(total),
		UpcomingTrips: int(upcoming),
		ByStatus:      byStatus,
	}, nil
}

// toTripDomain maps the persistence model to a pure domain entity.
func toTripDomain(tripM *model.TripModel) (*entity.Trip, error) {
	var tags []string
	if len(tripM.Tags) != 0 {
		if err := json.Unmarshal(tripM.Tags, &tags); err != nil {
			return nil, errors.Wrap(err, "failed to decode trip tags")
		}
	}

	return &entity.Trip{
		ID:          tripM.ID,
		UserID:      tripM.UserID,
		Name:        tripM.Name,
		Destination: tripM.Destination,
		StartDate:   tripM.StartDate,
		EndDate:     tripM.EndDate,
		Travelers: entity.Travelers{
			Count:   tripM.TravelerCount,
			Type:    entity.TravelerType(tripM.TravelerType),
			Details: tripM.TravelerDetails,
		},
		Budget: entity.Budget{
			Amount:   tripM.BudgetAmount,
			Currency: tripM.BudgetCurrency,
			Type:     entity.BudgetTier(tripM.BudgetType),
		},
		Status:      entity.TripStatus(tripM.Status),
		Description: tripM.Description,
		Tags:        tags,
		IsPublic:    tripM.IsPublic,
		CreatedAt:   tripM.CreatedAt,
		UpdatedAt:   tripM.UpdatedAt,
	}, nil
}

// fromTripDomain maps a domain entity to the persistence model.
func fromTripDomain(trip *entity.Trip) (*model.TripModel, error) {
	tags := trip.Tags
	if tags == nil {
		tags = []string{}
	}
	encoded, err := json.Marshal(tags)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode trip tags")
	}

	return &model.TripModel{
		ID:              trip.ID,
		UserID:          trip.UserID,
		Name:            trip.Name,
		Destination:     trip.Destination,
		StartDate:       trip.StartDate,
		EndDate:         trip.EndDate,
		TravelerCount:   trip.Travelers.Count,
		TravelerType:    string(trip.Travelers.Type),
		TravelerDetails: trip.Travelers.Details,
		BudgetAmount:    trip.Budget.Amount,
		BudgetCurrency:  trip.Budget.Currency,
		BudgetType:      string(trip.Budget.Type),
		Status:          trip.Status.String(),
		Description:     trip.Description,
		Tags:            encoded,
		IsPublic:        trip.IsPublic,
		CreatedAt:       trip.CreatedAt,
		UpdatedAt:       trip.UpdatedAt,
	}, nil
}
