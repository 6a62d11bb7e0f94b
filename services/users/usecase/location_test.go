package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/internal/pkg/realtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestUpdateUserLocation(t *testing.T) {
	t.Run("online driver is indexed", func(t *testing.T) {
		// Arrange
		f := newUserFixture(t)
		ctx := context.Background()
		input := models.LocationInput{
			Latitude: floatPtr(40.7128), Longitude: floatPtr(-74.006),
			Address: "123 Main St", UserType: models.RoleDriver,
		}

		f.repo.EXPECT().UpsertLocation(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, loc *models.UserLocation) error {
				assert.Equal(t, f.userID, loc.UserID)
				assert.Equal(t, "dr5reg", loc.Geohash)
				assert.Equal(t, fixedNow, loc.LastUpdated)
				loc.IsOnline = true
				return nil
			})
		f.repo.EXPECT().IndexDriverLocation(ctx, f.userID, 40.7128, -74.006).Return(nil)
		f.gw.EXPECT().PublishLocationChange(realtime.EventUpdate, gomock.Any()).Return(nil)

		// Act
		result := f.uc.UpdateUserLocation(ctx, f.userID, input)

		// Assert
		require.True(t, result.Success)
		assert.True(t, result.Data.IsOnline)
	})

	t.Run("offline driver is removed from index", func(t *testing.T) {
		f := newUserFixture(t)
		ctx := context.Background()

		f.repo.EXPECT().UpsertLocation(ctx, gomock.Any()).Return(nil)
		f.repo.EXPECT().RemoveDriverLocation(ctx, f.userID).Return(errors.New("redis down"))
		f.gw.EXPECT().PublishLocationChange(gomock.Any(), gomock.Any()).Return(nil)

		result := f.uc.UpdateUserLocation(ctx, f.userID, models.LocationInput{
			Latitude: floatPtr(1), Longitude: floatPtr(2), UserType: models.RoleDriver,
		})

		assert.True(t, result.Success)
	})

	t.Run("rider defaults and skips index", func(t *testing.T) {
		f := newUserFixture(t)

		f.repo.EXPECT().UpsertLocation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, loc *models.UserLocation) error {
				assert.Equal(t, models.RoleRider, loc.UserType)
				return nil
			})
		f.gw.EXPECT().PublishLocationChange(gomock.Any(), gomock.Any()).Return(nil)

		result := f.uc.UpdateUserLocation(context.Background(), f.userID, models.LocationInput{
			Latitude: floatPtr(0), Longitude: floatPtr(0),
		})

		assert.True(t, result.Success)
	})

	invalid := []struct {
		name  string
		input models.LocationInput
		want  string
	}{
		{"missing", models.LocationInput{Latitude: floatPtr(1)}, "location: latitude and longitude are required"},
		{"range", models.LocationInput{Latitude: floatPtr(91), Longitude: floatPtr(0)}, "location: coordinates are out of range"},
		{"type", models.LocationInput{Latitude: floatPtr(1), Longitude: floatPtr(1), UserType: "admin"}, "user_type: must be rider or driver"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			f := newUserFixture(t)

			result := f.uc.UpdateUserLocation(context.Background(), f.userID, tt.input)

			assert.Equal(t, tt.want, result.Error)
		})
	}
}

func TestGetNearbyDrivers(t *testing.T) {
	t.Run("default radius", func(t *testing.T) {
		f := newUserFixture(t)
		ctx := context.Background()
		want := []models.NearbyDriver{{FullName: "Michael Chen", DistanceKm: 0.8}}

		f.repo.EXPECT().FindNearbyDrivers(ctx, 40.7128, -74.006, 5.0).Return(want, nil)

		result := f.uc.GetNearbyDrivers(ctx, 40.7128, -74.006, 0)

		require.True(t, result.Success)
		assert.Equal(t, want, result.Data)
	})

	t.Run("explicit radius", func(t *testing.T) {
		f := newUserFixture(t)
		f.repo.EXPECT().FindNearbyDrivers(gomock.Any(), 1.0, 2.0, 12.5).Return([]models.NearbyDriver{}, nil)

		result := f.uc.GetNearbyDrivers(context.Background(), 1, 2, 12.5)

		assert.True(t, result.Success)
	})

	t.Run("negative radius", func(t *testing.T) {
		f := newUserFixture(t)

		result := f.uc.GetNearbyDrivers(context.Background(), 1, 2, -1)

		assert.Equal(t, "radius: must not be negative", result.Error)
	})

	t.Run("store failure", func(t *testing.T) {
		f := newUserFixture(t)
		f.repo.EXPECT().FindNearbyDrivers(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("function get_nearby_drivers does not exist"))

		result := f.uc.GetNearbyDrivers(context.Background(), 1, 2, 3)

		assert.Equal(t, "Failed to find nearby drivers.", result.Error)
	})
}

func TestToggleDriverOnlineStatus(t *testing.T) {
	t.Run("going online indexes last location", func(t *testing.T) {
		f := newUserFixture(t)
		ctx := context.Background()
		loc := &models.UserLocation{UserID: f.userID, UserType: models.RoleDriver, Latitude: 40.7, Longitude: -74, IsOnline: true}

		f.repo.EXPECT().SetDriverOnline(ctx, f.userID, true).Return(loc, nil)
		f.repo.EXPECT().IndexDriverLocation(ctx, f.userID, 40.7, -74.0).Return(nil)
		f.gw.EXPECT().PublishLocationChange(realtime.EventUpdate, *loc).Return(nil)
		f.gw.EXPECT().PublishDriverProfileChange(realtime.EventUpdate, gomock.Any()).Return(nil)

		result := f.uc.ToggleDriverOnlineStatus(ctx, f.userID, true)

		require.True(t, result.Success)
		assert.Equal(t, &models.OnlineStatus{UserID: f.userID, IsOnline: true}, result.Data)
	})

	t.Run("going offline without location", func(t *testing.T) {
		f := newUserFixture(t)
		ctx := context.Background()

		f.repo.EXPECT().SetDriverOnline(ctx, f.userID, false).Return(nil, nil)
		f.repo.EXPECT().RemoveDriverLocation(ctx, f.userID).Return(nil)
		f.gw.EXPECT().PublishDriverProfileChange(realtime.EventUpdate, gomock.Any()).Return(nil)

		result := f.uc.ToggleDriverOnlineStatus(ctx, f.userID, false)

		require.True(t, result.Success)
		assert.False(t, result.Data.IsOnline)
	})

	t.Run("not a driver", func(t *testing.T) {
		f := newUserFixture(t)
		f.repo.EXPECT().SetDriverOnline(gomock.Any(), f.userID, true).
			Return(nil, fmt.Errorf("%w: driver profile", models.ErrNotFound))

		result := f.uc.ToggleDriverOnlineStatus(context.Background(), f.userID, true)

		assert.False(t, result.Success)
		assert.ErrorIs(t, result.Err, models.ErrNotFound)
	})

	t.Run("unexpected failure", func(t *testing.T) {
		f := newUserFixture(t)
		f.repo.EXPECT().SetDriverOnline(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("deadlock detected"))

		result := f.uc.ToggleDriverOnlineStatus(context.Background(), f.userID, true)

		assert.Equal(t, "Failed to update online status.", result.Error)
	})
}
