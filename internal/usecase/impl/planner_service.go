package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

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

const (
	defaultTripType   = "general"
	defaultBudgetTier = "moderate"
)

// plannerService implements the PlannerUsecase interface.
type plannerService struct {
	planner   service.PlannerService
	txManager repository.TransactionManager
	tripRepo  repository.TripRepository
	itinRepo  repository.ItineraryRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// PlannerServiceParams holds dependencies for PlannerService, injected by Fx.
type PlannerServiceParams struct {
	fx.In

	Planner   service.PlannerService
	TxManager repository.TransactionManager
	TripRepo  repository.TripRepository
	ItinRepo  repository.ItineraryRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewPlannerService is the constructor for plannerService.
func NewPlannerService(params PlannerServiceParams) usecase.PlannerUsecase {
	return &plannerService{
		planner:   params.Planner,
		txManager: params.TxManager,
		tripRepo:  params.TripRepo,
		itinRepo:  params.ItinRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *plannerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GenerateItinerary creates an itinerary for an owned trip. Fails with a
// conflict when the trip already has one.
func (srv *plannerService) GenerateItinerary(ctx context.Context, tripID, ownerID uuid.UUID) (*entity.Itinerary, error) {
	trip, err := srv.findOwnedTrip(ctx, tripID, ownerID)
	if err != nil {
		return nil, err
	}

	if _, err := srv.itinRepo.FindByTrip(ctx, tripID); err == nil {
		return nil, domainerrors.ErrItineraryExists
	} else if !errors.Is(err, repository.ErrItineraryNotFound) {
		return nil, errors.Wrap(err, "failed to check for existing itinerary")
	}

	itinerary, err := srv.draftItinerary(ctx, trip, 1)
	if err != nil {
		return nil, err
	}

	if err := srv.itinRepo.Create(ctx, itinerary); err != nil {
		return nil, err
	}

	srv.publishEvent(ctx, &service.DomainEvent{
		Type:       service.EventItineraryGenerated,
		UserID:     ownerID.String(),
		ResourceID: trip.ID.String(),
		Payload:    map[string]any{"version": itinerary.Version},
		OccurredAt: time.Now().UTC(),
	})

	srv.log(ctx).Info("Itinerary generated",
		slog.Any("tripID", tripID),
		slog.Int("days", len(itinerary.Days)),
	)

	return itinerary, nil
}

// RegenerateItinerary replaces an owned trip's itinerary, bumping its version.
// The replacement happens in one transaction so a planner failure never leaves
// the trip without a plan.
func (srv *plannerService) RegenerateItinerary(ctx context.Context, tripID, ownerID uuid.UUID) (*entity.Itinerary, error) {
	trip, err := srv.findOwnedTrip(ctx, tripID, ownerID)
	if err != nil {
		return nil, err
	}

	version := 1
	existing, err := srv.itinRepo.FindByTrip(ctx, tripID)
	switch {
	case err == nil:
		version = existing.Version + 1
	case errors.Is(err, repository.ErrItineraryNotFound):
		// First generation through the regenerate endpoint is fine.
	default:
		return nil, errors.Wrap(err, "failed to load existing itinerary")
	}

	itinerary, err := srv.draftItinerary(ctx, trip, version)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ItineraryRepo().DeleteByTrip(ctx, tripID); err != nil {
			return err
		}

		return repoFactory.ItineraryRepo().Create(ctx, itinerary)
	})
	if err != nil {
		return nil, err
	}

	srv.publishEvent(ctx, &service.DomainEvent{
		Type:       service.EventItineraryGenerated,
		UserID:     ownerID.String(),
		ResourceID: trip.ID.String(),
		Payload:    map[string]any{"version": itinerary.Version},
		OccurredAt: time.Now().UTC(),
	})

	srv.log(ctx).Info("Itinerary regenerated",
		slog.Any("tripID", tripID),
		slog.Int("version", itinerary.Version),
	)

	return itinerary, nil
}

// SuggestActivities proposes activities for a destination.
func (srv *plannerService) SuggestActivities(ctx context.Context, input *usecase.SuggestActivitiesInput) ([]service.ActivitySuggestion, error) {
	request := &service.SuggestionRequest{
		Destination: strings.TrimSpace(input.Destination),
		Interests:   input.Interests,
	}
	if input.Budget != nil {
		request.Budget = &entity.Cost{
			Amount:   input.Budget.Amount,
			Currency: strings.ToUpper(input.Budget.Currency),
		}
	}

	suggestions, err := srv.planner.SuggestActivities(ctx, request)
	if err != nil {
		return nil, err
	}

	return suggestions, nil
}

// Recommendations produces destination-level travel advice.
func (srv *plannerService) Recommendations(ctx context.Context, input *usecase.RecommendationsInput) (*service.Recommendations, error) {
	request := &service.RecommendationRequest{
		Destination: strings.TrimSpace(input.Destination),
		TripType:    input.TripType,
		BudgetTier:  input.Budget,
	}
	if request.TripType == "" {
		request.TripType = defaultTripType
	}
	if request.BudgetTier == "" {
		request.BudgetTier = defaultBudgetTier
	}

	return srv.planner.Recommend(ctx, request)
}

func (srv *plannerService) draftItinerary(ctx context.Context, trip *entity.Trip, version int) (*entity.Itinerary, error) {
	draft, err := srv.planner.GenerateItinerary(ctx, trip)
	if err != nil {
		return nil, err
	}

	return &entity.Itinerary{
		TripID:      trip.ID,
		UserID:      trip.UserID,
		Name:        draft.Name,
		Description: draft.Description,
		Days:        draft.Days,
		TotalCost:   draft.TotalCost,
		Version:     version,
	}, nil
}

func (srv *plannerService) findOwnedTrip(ctx context.Context, id, ownerID uuid.UUID) (*entity.Trip, error) {
	trip, err := srv.tripRepo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			return nil, domainerrors.ErrTripNotFound
		}

		return nil, errors.Wrap(err, "failed to load trip")
	}

	return trip, nil
}

func (srv *plannerService) publishEvent(ctx context.Context, event *service.DomainEvent) {
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
