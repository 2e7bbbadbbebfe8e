package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"trove/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgDriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newTripRepoWithMock(t *testing.T) (repository.TripRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(pgDriver.New(pgDriver.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	return NewTripRepository(gormDB), mock
}

func TestTripRepository_StatsByOwner(t *testing.T) {
	repo, mock := newTripRepoWithMock(t)

	ownerID := uuid.New()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "trips" WHERE user_id = $1`)).
		WithArgs(ownerID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "trips" WHERE user_id = $1 AND start_date >= $2 AND status IN`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT status, COUNT(*) AS count FROM "trips" WHERE user_id = $1 GROUP BY`)).
		WithArgs(ownerID).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("planning", 2).
			AddRow("confirmed", 1).
			AddRow("completed", 1))

	stats, err := repo.StatsByOwner(context.Background(), ownerID, now)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalTrips)
	assert.Equal(t, 2, stats.UpcomingTrips)
	assert.Equal(t, map[string]int{
		"planning":  2,
		"confirmed": 1,
		"completed": 1,
	}, stats.ByStatus)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripRepository_StatsByOwner_NoTrips(t *testing.T) {
	repo, mock := newTripRepoWithMock(t)

	ownerID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "trips" WHERE user_id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "trips" WHERE user_id = $1 AND start_date >= $2 AND status IN`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT status, COUNT(*) AS count FROM "trips" WHERE user_id = $1 GROUP BY`)).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}))

	stats, err := repo.StatsByOwner(context.Background(), ownerID, time.Now())
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalTrips)
	assert.Equal(t, 0, stats.UpcomingTrips)
	assert.Empty(t, stats.ByStatus)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripRepository_FindByIDAndOwner_NotFound(t *testing.T) {
	repo, mock := newTripRepoWithMock(t)

	id := uuid.New()
	ownerID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "trips" WHERE id = $1 AND user_id = $2`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	trip, err := repo.FindByIDAndOwner(context.Background(), id, ownerID)
	assert.Nil(t, trip)
	assert.ErrorIs(t, err, repository.ErrTripNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
