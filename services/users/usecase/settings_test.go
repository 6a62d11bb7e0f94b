package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/piresc/pullup/internal/pkg/appstate"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionIDs(sections []models.SettingsSection) []string {
	ids := make([]string, len(sections))
	for i, s := range sections {
		ids[i] = s.ID
	}
	return ids
}

func TestSettingsView(t *testing.T) {
	driverProfile := func(f *userFixture) *models.UserProfile {
		return &models.UserProfile{
			ID: f.userID, FullName: "Alex Johnson", Role: models.RoleDriver,
			DriverProfile: &models.DriverProfile{
				UserID: f.userID, IsOnline: true,
				Vehicles: []models.Vehicle{{Make: "Toyota", Model: "Camry"}},
			},
		}
	}

	t.Run("rider mode hides vehicle section", func(t *testing.T) {
		f := newUserFixture(t)
		ctx := context.Background()
		f.repo.EXPECT().GetUserProfile(ctx, f.userID).Return(driverProfile(f), nil)
		f.appState.EXPECT().Get(ctx, f.userID).Return(appstate.Default(f.userID), nil)

		view, err := f.uc.SettingsView(ctx, f.userID)

		require.NoError(t, err)
		assert.Equal(t, models.ModeRider, view.Mode)
		assert.Equal(t, []string{"profile", "preferences", "security", "account"}, sectionIDs(view.Sections))
		assert.Empty(t, view.Vehicles)
		assert.True(t, view.IsOnline)
	})

	t.Run("driver mode shows vehicles", func(t *testing.T) {
		f := newUserFixture(t)
		ctx := context.Background()
		state := appstate.Default(f.userID)
		state.Mode = models.ModeDriver
		f.repo.EXPECT().GetUserProfile(ctx, f.userID).Return(driverProfile(f), nil)
		f.appState.EXPECT().Get(ctx, f.userID).Return(state, nil)

		view, err := f.uc.SettingsView(ctx, f.userID)

		require.NoError(t, err)
		assert.Equal(t, []string{"profile", "vehicle", "preferences", "security", "account"}, sectionIDs(view.Sections))
		require.Len(t, view.Vehicles, 1)
		assert.Equal(t, "Camry", view.Vehicles[0].Model)
	})

	t.Run("missing profile", func(t *testing.T) {
		f := newUserFixture(t)
		f.repo.EXPECT().GetUserProfile(context.Background(), f.userID).Return(nil, models.ErrNotFound)

		_, err := f.uc.SettingsView(context.Background(), f.userID)

		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestSwitchMode(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()
	want := appstate.State{UserID: f.userID, Mode: models.ModeDriver, UpdatedAt: fixedNow}

	f.appState.EXPECT().Dispatch(ctx, f.userID, appstate.SwitchMode(models.ModeDriver)).Return(want, nil)
	f.appState.EXPECT().Get(ctx, f.userID).Return(want, nil)

	got, err := f.uc.SwitchMode(ctx, f.userID, models.ModeDriver)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	current, err := f.uc.GetMode(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, models.ModeDriver, current.Mode)
}

func TestSwitchMode_Invalid(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()
	invalid := models.NewValidationError("mode", "must be rider or driver")

	f.appState.EXPECT().Dispatch(ctx, f.userID, appstate.SwitchMode("pilot")).
		Return(appstate.Default(f.userID), invalid)

	_, err := f.uc.SwitchMode(ctx, f.userID, "pilot")

	assert.True(t, errors.Is(err, models.ErrValidation))
}
