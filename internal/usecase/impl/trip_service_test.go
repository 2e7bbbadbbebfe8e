package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"trove/config"
	"trove/internal/domain/entity"
	domainerrors "trove/internal/domain/errors"
	"trove/internal/domain/repository"
	mockRepo "trove/internal/mocks/repository"
	mockSvc "trove/internal/mocks/service"
	"trove/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// tripServiceFixtures holds all test dependencies for trip service tests.
type tripServiceFixtures struct {
	service   usecase.TripUsecase
	txManager *mockRepo.MockTransactionManager
	tripRepo  *mockRepo.MockTripRepository
	itinRepo  *mockRepo.MockItineraryRepository
	qrService *mockSvc.MockQRCodeService
	publisher *mockSvc.MockEventPublisher
}

func createTestTripService(t *testing.T) tripServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	tripRepo := mockRepo.NewMockTripRepository(t)
	itinRepo := mockRepo.NewMockItineraryRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewTripService(TripServiceParams{
		TxManager: txManager,
		TripRepo:  tripRepo,
		ItinRepo:  itinRepo,
		QRService: qrService,
		Publisher: publisher,
		Config:    &config.Config{ClientURL: "http://localhost:5173"},
		Logger:    logger,
	})

	return tripServiceFixtures{
		service:   service,
		txManager: txManager,
		tripRepo:  tripRepo,
		itinRepo:  itinRepo,
		qrService: qrService,
		publisher: publisher,
	}
}

func validCreateTripInput() *usecase.CreateTripInput {
	return &usecase.CreateTripInput{
		Name:        "Tokyo Adventure",
		Destination: "Tokyo, Japan",
		StartDate:   time.Now().AddDate(0, 1, 0),
		EndDate:     time.Now().AddDate(0, 1, 4),
		Travelers:   usecase.TravelersInput{Count: 2, Type: "couple"},
		Budget:      usecase.BudgetInput{Amount: 3000, Currency: "usd", Type: "moderate"},
		Tags:        []string{"food", "culture"},
	}
}

func TestTripService_Create_Success(t *testing.T) {
	fx := createTestTripService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.tripRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Trip")).
		Run(func(ctx context.Context, trip *entity.Trip) {
			trip.ID = uuid.New()
		}).
		Return(nil)

	fx.publisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	trip, err := fx.service.Create(ctx, ownerID, validCreateTripInput())

	require.NoError(t, err)
	assert.Equal(t, ownerID, trip.UserID)
	assert.Equal(t, entity.TripStatusDraft, trip.Status)
	assert.Equal(t, "USD", trip.Budget.Currency)
	assert.Equal(t, entity.TravelerTypeCouple, trip.Travelers.Type)
	assert.False(t, trip.IsPublic)
}

func TestTripService_Create_PastStartDate(t *testing.T) {
	fx := createTestTripService(t)

	input := validCreateTripInput()
	input.StartDate = time.Now().AddDate(0, 0, -2)
	input.EndDate = time.Now().AddDate(0, 0, 2)

	trip, err := fx.service.Create(context.Background(), uuid.New(), input)

	require.Error(t, err)
	assert.Nil(t, trip)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestTripService_Create_EndBeforeStart(t *testing.T) {
	fx := createTestTripService(t)

	input := validCreateTripInput()
	input.EndDate = input.StartDate.AddDate(0, 0, -1)

	trip, err := fx.service.Create(context.Background(), uuid.New(), input)

	require.Error(t, err)
	assert.Nil(t, trip)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestTripService_Create_NegativeBudget(t *testing.T) {
	fx := createTestTripService(t)

	input := validCreateTripInput()
	input.Budget.Amount = -100

	trip, err := fx.service.Create(context.Background(), uuid.New(), input)

	require.Error(t, err)
	assert.Nil(t, trip)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestTripService_List_PassesFilter(t *testing.T) {
	fx := createTestTripService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	expected := []*entity.Trip{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.tripRepo.EXPECT().
		ListByOwner(ctx, ownerID, repository.TripFilter{
			Status:      entity.TripStatusPlanning,
			Destination: "tokyo",
		}).
		Return(expected, nil)

	trips, err := fx.service.List(ctx, ownerID, &usecase.ListTripsInput{
		Status:      "planning",
		Destination: " tokyo ",
	})

	require.NoError(t, err)
	assert.Equal(t, expected, trips)
}

func TestTripService_Get_WithItinerary(t *testing.T) {
	fx := createTestTripService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	tripID := uuid.New()
	trip := &entity.Trip{ID: tripID, UserID: ownerID}
	itinerary := &entity.Itinerary{ID: uuid.New(), TripID: tripID, Version: 2}

	fx.tripRepo.EXPECT().FindByIDAndOwner(ctx, tripID, ownerID).Return(trip, nil)
	fx.itinRepo.EXPECT().FindByTrip(ctx, tripID).Return(itinerary, nil)

	detail, err := fx.service.Get(ctx, tripID, ownerID)

	require.NoError(t, err)
	assert.Equal(t, trip, detail.Trip)
	assert.Equal(t, itinerary, detail.Itinerary)
}

func TestTripService_Get_WithoutItinerary(t *testing.T) {
	fx := createTestTripService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	tripID := uuid.New()

	fx.tripRepo.EXPECT().
		FindByIDAndOwner(ctx, tripID, ownerID).
		Return(&entity.Trip{ID: tripID, UserID: ownerID}, nil)
	fx.itinRepo.EXPECT().
		FindByTrip(ctx, tripID).
		Return(nil, repository.ErrItineraryNotFound)

	detail, err := fx.service.Get(ctx, tripID, ownerID)

	require.NoError(t, err)
	assert.Nil(t, detail.Itinerary)
}

func TestTripService_Get_NotOwned(t *testing.T) {
	fx := createTestTripService(t)

	ctx := context.Background()
	tripID := uuid.New()

	fx.tripRepo.EXPECT().
		FindByIDAndOwner(ctx, tripID, mock.AnythingOfType("uuid.UUID")).
		Return(nil, repository.ErrTripNotFound)

	detail, err := fx.service.Get(ctx, tripID, uuid.New())

	require.Error(t, err)
	assert.Nil(t, detail)
	assert.ErrorIs(t, err, domainerrors.ErrTripNotFound)
}

func TestTripService_Update_MergesFields(t *testing.T) {
	fx := createTestTripService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	tripID := uuid.New()
	existing := &entity.Trip{
		ID:          tripID,
		UserID:      ownerID,
		Name:        "Tokyo Adventure",
		Destination: "Tokyo, Japan",
		StartDate:   time.Now().AddDate(0, 1, 0),
		EndDate:     time.Now().AddDate(0, 1, 4),
		Travelers:   entity.Travelers{Count: 2, Type: entity.TravelerTypeCouple},
		Budget:      entity.Budget{Amount: 3000, Currency: "USD", Type: entity.BudgetTierModerate},
		Status:      entity.TripStatusDraft,
	}

	fx.tripRepo.EXPECT().FindByIDAndOwner(ctx, tripID, ownerID).Return(existing, nil)
	fx.tripRepo.EXPECT().Update(ctx, existing).Return(nil)

	newName := "Tokyo & Kyoto"
	isPublic := true
	trip, err := fx.service.Update(ctx, tripID, ownerID, &usecase.UpdateTripInput{
		Name:     &newName,
		IsPublic: &isPublic,
	})

	require.NoError(t, err)
	assert.Equal(t, "Tokyo & Kyoto", trip.Name)
	assert.True(t, trip.IsPublic)
	assert.Equal(t, "Tokyo, Japan", trip.Destination)
}

func TestTripService_Update_InvalidMergedDates(t *testing.T) {
	fx := createTestTripService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	tripID := uuid.New()
	existing := &entity.Trip{
		ID:        tripID,
		UserID:    ownerID,
		StartDate: time.Now().AddDate(0, 1, 0),
		EndDate:   time.Now().AddDate(0, 1, 4),
		Travelers: entity.Travelers{Count: 1, Type: entity.TravelerTypeSolo},
		Budget:    entity.Budget{Amount: 500, Currency: "USD", Type: entity.BudgetTierBudget},
	}

	fx.tripRepo.EXPECT().FindByIDAndOwner(ctx, tripID, ownerID).Return(existing, nil)

	// New end date lands before the unchanged start date.
	badEnd := time.Now().AddDate(0, 0, 2)
	trip, err := fx.service.Update(ctx, tripID, ownerID, &usecase.UpdateTripInput{
		EndDate: &badEnd,
	})

	require.Error(t, err)
	assert.Nil(t, trip)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestTripService_UpdateStatus_Success(t *testing.T) {
	fx := createTestTripService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	tripID := uuid.New()
	existing := &entity.Trip{ID: tripID, UserID: ownerID, Status: entity.TripStatusDraft}

	fx.tripRepo.EXPECT().FindByIDAndOwner(ctx, tripID, ownerID).Return(existing, nil)
	fx.tripRepo.EXPECT().Update(ctx, existing).Return(nil)

	trip, err := fx.service.UpdateStatus(ctx, tripID, ownerID, entity.TripStatusConfirmed)

	require.NoError(t, err)
	assert.Equal(t, entity.TripStatusConfirmed, trip.Status)
}

func TestTripService_UpdateStatus_UnknownStatus(t *testing.T) {
	fx := createTestTripService(t)

	trip, err := fx.service.UpdateStatus(context.Background(), uuid.New(), uuid.New(), entity.TripStatus("parked"))

	require.Error(t, err)
	assert.Nil(t, trip)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestTripService_Delete_Success(t *testing.T) {
	fx := createTestTripService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	tripID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockItinRepo := mockRepo.NewMockItineraryRepository(t)
			mockTripRepo := mockRepo.NewMockTripRepository(t)

			mockFactory.EXPECT().ItineraryRepo().Return(mockItinRepo)
			mockFactory.EXPECT().TripRepo().Return(mockTripRepo)

			mockItinRepo.EXPECT().DeleteByTrip(ctx, tripID).Return(nil)
			mockTripRepo.EXPECT().DeleteByIDAndOwner(ctx, tripID, ownerID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	err := fx.service.Delete(ctx, tripID, ownerID)

	require.NoError(t, err)
}

func TestTripService_Delete_NotFound(t *testing.T) {
	fx := createTestTripService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrTripNotFound)

	err := fx.service.Delete(ctx, uuid.New(), uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTripNotFound)
}

func TestTripService_Stats(t *testing.T) {
	fx := createTestTripService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	expected := &entity.TripStats{
		TotalTrips:    4,
		UpcomingTrips: 2,
		ByStatus:      map[string]int{"draft": 1, "confirmed": 2, "completed": 1},
	}

	fx.tripRepo.EXPECT().
		StatsByOwner(ctx, ownerID, mock.AnythingOfType("time.Time")).
		Return(expected, nil)

	stats, err := fx.service.Stats(ctx, ownerID)

	require.NoError(t, err)
	assert.Equal(t, expected, stats)
}

func TestTripService_ShareQR_Owner(t *testing.T) {
	fx := createTestTripService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	tripID := uuid.New()
	trip := &entity.Trip{ID: tripID, UserID: ownerID}

	fx.tripRepo.EXPECT().FindByIDAndOwner(ctx, tripID, ownerID).Return(trip, nil)
	fx.qrService.EXPECT().
		GeneratePNG("http://localhost:5173/trips/shared/"+tripID.String()).
		Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	png, err := fx.service.ShareQR(ctx, tripID, &ownerID)

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestTripService_ShareQR_PublicTripAnonymousViewer(t *testing.T) {
	fx := createTestTripService(t)

	ctx := context.Background()
	tripID := uuid.New()
	trip := &entity.Trip{ID: tripID, UserID: uuid.New(), IsPublic: true}

	fx.tripRepo.EXPECT().FindPublicByID(ctx, tripID).Return(trip, nil)
	fx.qrService.EXPECT().
		GeneratePNG(mock.AnythingOfType("string")).
		Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	png, err := fx.service.ShareQR(ctx, tripID, nil)

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestTripService_ShareQR_ViewerFallsBackToPublicLookup(t *testing.T) {
	fx := createTestTripService(t)

	ctx := context.Background()
	viewerID := uuid.New()
	tripID := uuid.New()
	trip := &entity.Trip{ID: tripID, UserID: uuid.New(), IsPublic: true}

	fx.tripRepo.EXPECT().
		FindByIDAndOwner(ctx, tripID, viewerID).
		Return(nil, repository.ErrTripNotFound)
	fx.tripRepo.EXPECT().FindPublicByID(ctx, tripID).Return(trip, nil)
	fx.qrService.EXPECT().
		GeneratePNG(mock.AnythingOfType("string")).
		Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	png, err := fx.service.ShareQR(ctx, tripID, &viewerID)

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestTripService_ShareQR_PrivateTripNotVisible(t *testing.T) {
	fx := createTestTripService(t)

	ctx := context.Background()
	tripID := uuid.New()

	fx.tripRepo.EXPECT().
		FindPublicByID(ctx, tripID).
		Return(nil, repository.ErrTripNotFound)

	png, err := fx.service.ShareQR(ctx, tripID, nil)

	require.Error(t, err)
	assert.Nil(t, png)
	assert.ErrorIs(t, err, domainerrors.ErrTripNotFound)
}

func TestTripService_List_RepositoryError(t *testing.T) {
	fx := createTestTripService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.tripRepo.EXPECT().
		ListByOwner(ctx, ownerID, repository.TripFilter{}).
		Return(nil, errors.New("connection reset"))

	trips, err := fx.service.List(ctx, ownerID, nil)

	require.Error(t, err)
	assert.Nil(t, trips)
}
