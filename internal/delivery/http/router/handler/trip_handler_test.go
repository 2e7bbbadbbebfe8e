package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	deliverycontext "trove/internal/delivery/context"
	"trove/internal/domain/entity"
	domainerrors "trove/internal/domain/errors"
	mockUC "trove/internal/mocks/usecase"
	"trove/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type tripHandlerFixtures struct {
	handler *TripHandler
	uc      *mockUC.MockTripUsecase
}

func createTestTripHandler(t *testing.T) tripHandlerFixtures {
	uc := mockUC.NewMockTripUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return tripHandlerFixtures{
		handler: NewTripHandler(uc, logger),
		uc:      uc,
	}
}

func withIdentity(c echo.Context, userID uuid.UUID) {
	deliverycontext.SetIdentity(c, &deliverycontext.Identity{ID: userID})
}

func TestTripHandler_Create_Success(t *testing.T) {
	f := createTestTripHandler(t)
	ownerID := uuid.New()
	trip := &entity.Trip{ID: uuid.New(), UserID: ownerID, Name: "Tokyo Spring"}

	f.uc.EXPECT().Create(mock.Anything, ownerID, mock.AnythingOfType("*usecase.CreateTripInput")).
		Run(func(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateTripInput) {
			assert.Equal(t, "Tokyo Spring", input.Name)
			assert.Equal(t, "Tokyo", input.Destination)
		}).
		Return(trip, nil)

	c, rec := newJSONRequest(http.MethodPost, "/api/trips", `{
		"name": "Tokyo Spring",
		"destination": "Tokyo",
		"startDate": "2027-04-01T00:00:00Z",
		"endDate": "2027-04-08T00:00:00Z",
		"travelers": {"count": 2, "type": "couple"},
		"budget": {"amount": 3000, "currency": "USD", "type": "moderate"}
	}`)
	withIdentity(c, ownerID)

	err := f.handler.Create(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Tokyo Spring")
}

func TestTripHandler_Create_ValidationFailure(t *testing.T) {
	f := createTestTripHandler(t)

	c, _ := newJSONRequest(http.MethodPost, "/api/trips", `{"name": ""}`)
	withIdentity(c, uuid.New())

	err := f.handler.Create(c)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestTripHandler_Create_RequiresIdentity(t *testing.T) {
	f := createTestTripHandler(t)

	c, _ := newJSONRequest(http.MethodPost, "/api/trips", `{}`)

	err := f.handler.Create(c)

	assert.ErrorIs(t, err, domainerrors.ErrTokenMissing)
}

func TestTripHandler_List_PassesFilters(t *testing.T) {
	f := createTestTripHandler(t)
	ownerID := uuid.New()

	f.uc.EXPECT().List(mock.Anything, ownerID, mock.AnythingOfType("*usecase.ListTripsInput")).
		Run(func(ctx context.Context, ownerID uuid.UUID, input *usecase.ListTripsInput) {
			assert.Equal(t, "planning", input.Status)
			assert.Equal(t, "tokyo", input.Destination)
		}).
		Return([]*entity.Trip{}, nil)

	c, rec := newJSONRequest(http.MethodGet, "/api/trips?status=planning&destination=tokyo", "")
	withIdentity(c, ownerID)

	err := f.handler.List(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTripHandler_Get_MalformedID(t *testing.T) {
	f := createTestTripHandler(t)

	c, _ := newJSONRequest(http.MethodGet, "/api/trips/not-a-uuid", "")
	withIdentity(c, uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := f.handler.Get(c)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidFormat)
}

func TestTripHandler_Get_NotOwned(t *testing.T) {
	f := createTestTripHandler(t)
	ownerID := uuid.New()
	tripID := uuid.New()

	f.uc.EXPECT().Get(mock.Anything, tripID, ownerID).Return(nil, domainerrors.ErrTripNotFound)

	c, _ := newJSONRequest(http.MethodGet, "/api/trips/"+tripID.String(), "")
	withIdentity(c, ownerID)
	c.SetParamNames("id")
	c.SetParamValues(tripID.String())

	err := f.handler.Get(c)

	assert.ErrorIs(t, err, domainerrors.ErrTripNotFound)
}

func TestTripHandler_UpdateStatus_Success(t *testing.T) {
	f := createTestTripHandler(t)
	ownerID := uuid.New()
	tripID := uuid.New()
	trip := &entity.Trip{ID: tripID, UserID: ownerID, Status: entity.TripStatusConfirmed}

	f.uc.EXPECT().UpdateStatus(mock.Anything, tripID, ownerID, entity.TripStatusConfirmed).Return(trip, nil)

	c, rec := newJSONRequest(http.MethodPatch, "/api/trips/"+tripID.String()+"/status", `{"status":"confirmed"}`)
	withIdentity(c, ownerID)
	c.SetParamNames("id")
	c.SetParamValues(tripID.String())

	err := f.handler.UpdateStatus(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTripHandler_Delete_Success(t *testing.T) {
	f := createTestTripHandler(t)
	ownerID := uuid.New()
	tripID := uuid.New()

	f.uc.EXPECT().Delete(mock.Anything, tripID, ownerID).Return(nil)

	c, rec := newJSONRequest(http.MethodDelete, "/api/trips/"+tripID.String(), "")
	withIdentity(c, ownerID)
	c.SetParamNames("id")
	c.SetParamValues(tripID.String())

	err := f.handler.Delete(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "deleted")
}

func TestTripHandler_Stats_Success(t *testing.T) {
	f := createTestTripHandler(t)
	ownerID := uuid.New()

	f.uc.EXPECT().Stats(mock.Anything, ownerID).Return(&entity.TripStats{
		TotalTrips:    4,
		UpcomingTrips: 2,
		ByStatus:      map[string]int{"planning": 2, "completed": 2},
	}, nil)

	c, rec := newJSONRequest(http.MethodGet, "/api/trips/stats", "")
	withIdentity(c, ownerID)

	err := f.handler.Stats(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalTrips":4`)
}

func TestTripHandler_ShareQR_AnonymousViewer(t *testing.T) {
	f := createTestTripHandler(t)
	tripID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	f.uc.EXPECT().ShareQR(mock.Anything, tripID, (*uuid.UUID)(nil)).Return(png, nil)

	c, rec := newJSONRequest(http.MethodGet, "/api/trips/"+tripID.String()+"/share", "")
	c.SetParamNames("id")
	c.SetParamValues(tripID.String())

	err := f.handler.ShareQR(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestTripHandler_ShareQR_AuthenticatedViewer(t *testing.T) {
	f := createTestTripHandler(t)
	viewerID := uuid.New()
	tripID := uuid.New()

	f.uc.EXPECT().ShareQR(mock.Anything, tripID, &viewerID).Return([]byte{1}, nil)

	c, rec := newJSONRequest(http.MethodGet, "/api/trips/"+tripID.String()+"/share", "")
	withIdentity(c, viewerID)
	c.SetParamNames("id")
	c.SetParamValues(tripID.String())

	err := f.handler.ShareQR(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
