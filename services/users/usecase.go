package users

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/pullup/internal/pkg/appstate"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/internal/pkg/realtime"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/pullup/services/users UserUC,RealtimeUC

// UserUC defines the profile, driver and location operations. Every adapter
// operation answers with a models.Result envelope instead of an error.
type UserUC interface {
	GetUserProfiles(ctx context.Context, filter models.UserProfileFilter) models.Result[[]models.UserProfile]
	GetUserByID(ctx context.Context, userID uuid.UUID) models.Result[*models.UserProfile]
	UpdateUserProfile(ctx context.Context, userID uuid.UUID, update models.UserProfileUpdate) models.Result[*models.UserProfile]

	CreateDriverProfile(ctx context.Context, userID uuid.UUID, input models.DriverProfileInput) models.Result[*models.DriverProfile]
	UpdateDriverProfile(ctx context.Context, userID uuid.UUID, update models.DriverProfileUpdate) models.Result[*models.DriverProfile]
	AddDriverVehicle(ctx context.Context, driverID uuid.UUID, vehicle models.Vehicle) models.Result[*models.Vehicle]
	UpdateDriverVehicle(ctx context.Context, driverID, vehicleID uuid.UUID, update models.VehicleUpdate) models.Result[*models.Vehicle]
	DeleteDriverVehicle(ctx context.Context, driverID, vehicleID uuid.UUID) models.Result[struct{}]

	UpdateUserLocation(ctx context.Context, userID uuid.UUID, input models.LocationInput) models.Result[*models.UserLocation]
	GetNearbyDrivers(ctx context.Context, latitude, longitude, radiusKm float64) models.Result[[]models.NearbyDriver]
	ToggleDriverOnlineStatus(ctx context.Context, userID uuid.UUID, isOnline bool) models.Result[*models.OnlineStatus]

	GetMode(ctx context.Context, userID uuid.UUID) (appstate.State, error)
	SwitchMode(ctx context.Context, userID uuid.UUID, mode models.Mode) (appstate.State, error)
	SettingsView(ctx context.Context, userID uuid.UUID) (*models.SettingsView, error)
}

// RealtimeUC manages row change subscriptions. Handles are opaque.
type RealtimeUC interface {
	SubscribeToUserProfile(userID uuid.UUID, handler realtime.Handler) models.Result[string]
	SubscribeToDriverLocations(handler realtime.Handler) models.Result[string]
	Unsubscribe(handle string) models.Result[struct{}]
}
