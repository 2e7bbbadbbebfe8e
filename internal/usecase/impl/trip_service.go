package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"trove/config"
	deliverycontext "trove/internal/delivery/context"
	"trove/internal/domain/entity"
	domainerrors "trove/internal/domain/errors"
	"trove/internal/domain/repository"
	"trove/internal/domain/service"
	"trove/internal/errors"
	"trove/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// tripService implements the TripUsecase interface.
type tripService struct {
	txManager repository.TransactionManager
	tripRepo  repository.TripRepository
	itinRepo  repository.ItineraryRepository
	qrService service.QRCodeService
	publisher service.EventPublisher
	clientURL string
	logger    *slog.Logger
}

// TripServiceParams holds dependencies for TripService, injected by Fx.
type TripServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	TripRepo  repository.TripRepository
	ItinRepo  repository.ItineraryRepository
	QRService service.QRCodeService
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewTripService is the constructor for tripService.
func NewTripService(params TripServiceParams) usecase.TripUsecase {
	return &tripService{
		txManager: params.TxManager,
		tripRepo:  params.TripRepo,
		itinRepo:  params.ItinRepo,
		qrService: params.QRService,
		publisher: params.Publisher,
		clientURL: params.Config.ClientURL,
		logger:    params.Logger,
	}
}

func (srv *tripService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the owner's trips ordered by start date.
func (srv *tripService) List(ctx context.Context, ownerID uuid.UUID, input *usecase.ListTripsInput) ([]*entity.Trip, error) {
	filter := repository.TripFilter{}
	if input != nil {
		filter.Status = entity.TripStatus(input.Status)
		filter.Destination = strings.TrimSpace(input.Destination)
	}

	trips, err := srv.tripRepo.ListByOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list trips")
	}

	return trips, nil
}

// Get returns one owned trip with its itinerary, if any.
func (srv *tripService) Get(ctx context.Context, id, ownerID uuid.UUID) (*usecase.TripDetail, error) {
	trip, err := srv.findOwnedTrip(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	detail := &usecase.TripDetail{Trip: trip}

	itinerary, err := srv.itinRepo.FindByTrip(ctx, id)
	switch {
	case err == nil:
		detail.Itinerary = itinerary
	case errors.Is(err, repository.ErrItineraryNotFound):
		// A trip without an itinerary is perfectly normal.
	default:
		return nil, errors.Wrap(err, "failed to load itinerary")
	}

	return detail, nil
}

// Create validates and persists a new trip.
func (srv *tripService) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateTripInput) (*entity.Trip, error) {
	trip := &entity.Trip{
		UserID:      ownerID,
		Name:        strings.TrimSpace(input.Name),
		Destination: strings.TrimSpace(input.Destination),
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Travelers: entity.Travelers{
			Count:   input.Travelers.Count,
			Type:    entity.TravelerType(input.Travelers.Type),
			Details: input.Travelers.Details,
		},
		Budget: entity.Budget{
			Amount:   input.Budget.Amount,
			Currency: strings.ToUpper(input.Budget.Currency),
			Type:     entity.BudgetTier(input.Budget.Type),
		},
		Status:      entity.TripStatusDraft,
		Description: input.Description,
		Tags:        input.Tags,
	}
	if input.IsPublic != nil {
		trip.IsPublic = *input.IsPublic
	}

	if err := validateTripDates(trip.StartDate, trip.EndDate, true); err != nil {
		return nil, err
	}
	if err := validateTripAttributes(trip); err != nil {
		return nil, err
	}

	if err := srv.tripRepo.Create(ctx, trip); err != nil {
		return nil, err
	}

	srv.publishEvent(ctx, &service.DomainEvent{
		Type:       service.EventTripCreated,
		UserID:     ownerID.String(),
		ResourceID: trip.ID.String(),
		Payload:    map[string]any{"destination": trip.Destination},
		OccurredAt: time.Now().UTC(),
	})

	srv.log(ctx).Info("Trip created", slog.Any("tripID", trip.ID), slog.String("destination", trip.Destination))

	return trip, nil
}

// Update applies a partial update to an owned trip and revalidates the merged state.
func (srv *tripService) Update(ctx context.Context, id, ownerID uuid.UUID, input *usecase.UpdateTripInput) (*entity.Trip, error) {
	trip, err := srv.findOwnedTrip(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		trip.Name = strings.TrimSpace(*input.Name)
	}
	if input.Destination != nil {
		trip.Destination = strings.TrimSpace(*input.Destination)
	}
	datesChanged := input.StartDate != nil || input.EndDate != nil
	if input.StartDate != nil {
		trip.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		trip.EndDate = *input.EndDate
	}
	if input.Travelers != nil {
		trip.Travelers = entity.Travelers{
			Count:   input.Travelers.Count,
			Type:    entity.TravelerType(input.Travelers.Type),
			Details: input.Travelers.Details,
		}
	}
	if input.Budget != nil {
		trip.Budget = entity.Budget{
			Amount:   input.Budget.Amount,
			Currency: strings.ToUpper(input.Budget.Currency),
			Type:     entity.BudgetTier(input.Budget.Type),
		}
	}
	if input.Description != nil {
		trip.Description = *input.Description
	}
	if input.Tags != nil {
		trip.Tags = input.Tags
	}
	if input.IsPublic != nil {
		trip.IsPublic = *input.IsPublic
	}

	// Existing trips may already be underway, so the start-in-the-future rule
	// only applies when the dates themselves change.
	if err := validateTripDates(trip.StartDate, trip.EndDate, datesChanged); err != nil {
		return nil, err
	}
	if err := validateTripAttributes(trip); err != nil {
		return nil, err
	}

	if err := srv.tripRepo.Update(ctx, trip); err != nil {
		return nil, err
	}

	return trip, nil
}

// UpdateStatus moves an owned trip to a new lifecycle status.
func (srv *tripService) UpdateStatus(ctx context.Context, id, ownerID uuid.UUID, status entity.TripStatus) (*entity.Trip, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails(map[string]any{
			"status": fmt.Sprintf("unknown trip status %q", status),
		})
	}

	trip, err := srv.findOwnedTrip(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	trip.Status = status
	if err := srv.tripRepo.Update(ctx, trip); err != nil {
		return nil, err
	}

	return trip, nil
}

// Delete removes an owned trip together with its itinerary in one transaction.
func (srv *tripService) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ItineraryRepo().DeleteByTrip(ctx, id); err != nil {
			return err
		}

		return repoFactory.TripRepo().DeleteByIDAndOwner(ctx, id, ownerID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			return domainerrors.ErrTripNotFound
		}

		return err
	}

	srv.publishEvent(ctx, &service.DomainEvent{
		Type:       service.EventTripDeleted,
		UserID:     ownerID.String(),
		ResourceID: id.String(),
		OccurredAt: time.Now().UTC(),
	})

	srv.log(ctx).Info("Trip deleted", slog.Any("tripID", id))

	return nil
}

// Stats aggregates the owner's trip counts.
func (srv *tripService) Stats(ctx context.Context, ownerID uuid.UUID) (*entity.TripStats, error) {
	stats, err := srv.tripRepo.StatsByOwner(ctx, ownerID, time.Now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate trip stats")
	}

	return stats, nil
}

// ShareQR renders a QR code pointing at a trip's public share page.
func (srv *tripService) ShareQR(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) ([]byte, error) {
	var trip *entity.Trip
	var err error

	if viewerID != nil {
		trip, err = srv.tripRepo.FindByIDAndOwner(ctx, id, *viewerID)
	}
	if trip == nil {
		trip, err = srv.tripRepo.FindPublicByID(ctx, id)
	}
	if err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			return nil, domainerrors.ErrTripNotFound
		}

		return nil, errors.Wrap(err, "failed to load trip for sharing")
	}

	shareURL := fmt.Sprintf("%s/trips/shared/%s", strings.TrimSuffix(srv.clientURL, "/"), trip.ID)

	png, err := srv.qrService.GeneratePNG(shareURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render share QR code")
	}

	return png, nil
}

func (srv *tripService) findOwnedTrip(ctx context.Context, id, ownerID uuid.UUID) (*entity.Trip, error) {
	trip, err := srv.tripRepo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			return nil, domainerrors.ErrTripNotFound
		}

		return nil, errors.Wrap(err, "failed to load trip")
	}

	return trip, nil
}

func (srv *tripService) publishEvent(ctx context.Context, event *service.DomainEvent) {
	if srv.publisher == nil {
		return
	}
	if err := srv.publisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish event",
			slog.String("event_type", event.Type),
			slog.Any("error", err),
		)
	}
}

// validateTripDates enforces the date rules. requireFutureStart applies on
// creation and whenever a date is being changed.
func validateTripDates(start, end time.Time, requireFutureStart bool) error {
	details := map[string]any{}

	if requireFutureStart && start.Before(time.Now().Truncate(24*time.Hour)) {
		details["startDate"] = "start date cannot be in the past"
	}
	if !end.After(start) {
		details["endDate"] = "end date must be after start date"
	}

	if len(details) != 0 {
		return domainerrors.ErrInvalidInput.WithDetails(details)
	}

	return nil
}

// validateTripAttributes enforces the traveler and budget rules on the merged state.
func validateTripAttributes(trip *entity.Trip) error {
	details := map[string]any{}

	if trip.Travelers.Count < 1 {
		details["travelers.count"] = "at least one traveler is required"
	}
	if !trip.Travelers.Type.IsValid() {
		details["travelers.type"] = fmt.Sprintf("unknown traveler type %q", trip.Travelers.Type)
	}
	if trip.Budget.Amount < 0 {
		details["budget.amount"] = "budget amount cannot be negative"
	}
	if !trip.Budget.Type.IsValid() {
		details["budget.type"] = fmt.Sprintf("unknown budget tier %q", trip.Budget.Type)
	}

	if len(details) != 0 {
		return domainerrors.ErrInvalidInput.WithDetails(details)
	}

	return nil
}
