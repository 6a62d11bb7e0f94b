package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/pullup/internal/pkg/appstate"
	"github.com/piresc/pullup/internal/pkg/models"
)

// SettingsSections is the profile settings navigation, in display order
var SettingsSections = []models.SettingsSection{
	{ID: "profile", Label: "Profile Information", Description: "Personal details and photo"},
	{ID: "vehicle", Label: "Vehicle Information", Description: "Car details and documents", DriverOnly: true},
	{ID: "preferences", Label: "Preferences", Description: "Notifications and privacy"},
	{ID: "security", Label: "Security", Description: "Password and safety settings"},
	{ID: "account", Label: "Account Management", Description: "Data and account actions"},
}

// GetMode returns the app state of userID, rider mode when never set
func (uc *userUC) GetMode(ctx context.Context, userID uuid.UUID) (appstate.State, error) {
	return uc.appState.Get(ctx, userID)
}

// SwitchMode persists the chosen side of the app
func (uc *userUC) SwitchMode(ctx context.Context, userID uuid.UUID, mode models.Mode) (appstate.State, error) {
	return uc.appState.Dispatch(ctx, userID, appstate.SwitchMode(mode))
}

// SettingsView assembles the profile settings page for the current mode
func (uc *userUC) SettingsView(ctx context.Context, userID uuid.UUID) (*models.SettingsView, error) {
	profile, err := uc.repo.GetUserProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	state, err := uc.appState.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := &models.SettingsView{
		Profile:  *profile,
		Mode:     state.Mode,
		Sections: make([]models.SettingsSection, 0, len(SettingsSections)),
	}
	for _, s := range SettingsSections {
		if s.DriverOnly && state.Mode != models.ModeDriver {
			continue
		}
		view.Sections = append(view.Sections, s)
	}
	if d := profile.DriverProfile; d != nil {
		view.IsOnline = d.IsOnline
		if state.Mode == models.ModeDriver {
			view.Vehicles = d.Vehicles
		}
	}
	return view, nil
}
