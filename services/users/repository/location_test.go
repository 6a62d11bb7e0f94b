package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/piresc/pullup/internal/pkg/constants"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepo_UpsertLocation(t *testing.T) {
	repo, mock, _ := setupRepo(t)
	loc := &models.UserLocation{
		UserID:      uuid.New(),
		UserType:    models.RoleDriver,
		Latitude:    40.7128,
		Longitude:   -74.006,
		Address:     "123 Main St",
		Geohash:     "dr5reg",
		LastUpdated: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}

	mock.ExpectQuery(regexp.QuoteMeta(`ON CONFLICT (user_id) DO UPDATE SET`)).
		WithArgs(loc.UserID, "driver", 40.7128, -74.006, "123 Main St", 0.0, "dr5reg", false, loc.LastUpdated).
		WillReturnRows(sqlmock.NewRows([]string{"is_online"}).AddRow(true))

	err := repo.UpsertLocation(context.Background(), loc)

	require.NoError(t, err)
	assert.True(t, loc.IsOnline)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_FindNearbyDrivers(t *testing.T) {
	repo, mock, _ := setupRepo(t)
	driverID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM get_nearby_drivers($1, $2, $3)`)).
		WithArgs(40.7128, -74.006, 5.0).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "full_name", "rating", "latitude", "longitude", "distance_km"}).
			AddRow(driverID.String(), "Michael Chen", 4.9, 40.72, -74.01, 0.96))

	drivers, err := repo.FindNearbyDrivers(context.Background(), 40.7128, -74.006, 5)

	require.NoError(t, err)
	require.Len(t, drivers, 1)
	assert.Equal(t, driverID, drivers[0].UserID)
	assert.Equal(t, 0.96, drivers[0].DistanceKm)
}

func TestUserRepo_FindNearbyDrivers_Error(t *testing.T) {
	repo, mock, _ := setupRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(`get_nearby_drivers`)).WillReturnError(errors.New("function does not exist"))

	_, err := repo.FindNearbyDrivers(context.Background(), 0, 0, 5)

	assert.ErrorContains(t, err, "failed to find nearby drivers")
}

func TestUserRepo_SetDriverOnline(t *testing.T) {
	t.Run("updates profile and location", func(t *testing.T) {
		repo, mock, _ := setupRepo(t)
		userID := uuid.New()
		now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE driver_profiles SET is_online = $2`)).
			WithArgs(userID, true).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE user_locations SET is_online = $2 WHERE user_id = $1`)).
			WithArgs(userID, true).
			WillReturnRows(sqlmock.NewRows(locationColumnNames).
				AddRow(userID.String(), "driver", 40.7128, -74.006, "123 Main St", 0.0, "dr5reg", true, now))
		mock.ExpectCommit()

		loc, err := repo.SetDriverOnline(context.Background(), userID, true)

		require.NoError(t, err)
		require.NotNil(t, loc)
		assert.True(t, loc.IsOnline)
		assert.Equal(t, models.RoleDriver, loc.UserType)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no location yet", func(t *testing.T) {
		repo, mock, _ := setupRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE driver_profiles SET is_online = $2`)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE user_locations SET is_online = $2`)).
			WillReturnRows(sqlmock.NewRows(locationColumnNames))
		mock.ExpectCommit()

		loc, err := repo.SetDriverOnline(context.Background(), uuid.New(), false)

		require.NoError(t, err)
		assert.Nil(t, loc)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not a driver", func(t *testing.T) {
		repo, mock, _ := setupRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE driver_profiles SET is_online = $2`)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		_, err := repo.SetDriverOnline(context.Background(), uuid.New(), true)

		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepo_DriverGeoIndex(t *testing.T) {
	repo, _, mr := setupRepo(t)
	ctx := context.Background()
	driverID := uuid.New()

	require.NoError(t, repo.IndexDriverLocation(ctx, driverID, 40.7128, -74.006))
	members, err := mr.ZMembers(constants.KeyDriverGeo)
	require.NoError(t, err)
	assert.Equal(t, []string{driverID.String()}, members)

	require.NoError(t, repo.RemoveDriverLocation(ctx, driverID))
	assert.False(t, mr.Exists(constants.KeyDriverGeo))
}
