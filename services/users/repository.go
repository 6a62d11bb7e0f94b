package users

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/pullup/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/pullup/services/users UserRepo

// UserRepo defines the profile, vehicle and location persistence operations
type UserRepo interface {
	ListUserProfiles(ctx context.Context, filter models.UserProfileFilter) ([]models.UserProfile, error)
	GetUserProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
	UpdateUserProfile(ctx context.Context, userID uuid.UUID, update models.UserProfileUpdate) (*models.UserProfile, error)

	// CreateDriverProfile stores profile, its first vehicle when set, and promotes the user to driver
	CreateDriverProfile(ctx context.Context, profile *models.DriverProfile, vehicle *models.Vehicle) error
	GetDriverProfile(ctx context.Context, userID uuid.UUID) (*models.DriverProfile, error)
	UpdateDriverProfile(ctx context.Context, userID uuid.UUID, update models.DriverProfileUpdate) (*models.DriverProfile, error)
	CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error
	UpdateVehicle(ctx context.Context, driverID, vehicleID uuid.UUID, update models.VehicleUpdate) (*models.Vehicle, error)
	DeleteVehicle(ctx context.Context, driverID, vehicleID uuid.UUID) error

	UpsertLocation(ctx context.Context, location *models.UserLocation) error
	FindNearbyDrivers(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.NearbyDriver, error)
	// SetDriverOnline updates the driver profile and location row in one transaction
	SetDriverOnline(ctx context.Context, userID uuid.UUID, isOnline bool) (*models.UserLocation, error)

	IndexDriverLocation(ctx context.Context, userID uuid.UUID, latitude, longitude float64) error
	RemoveDriverLocation(ctx context.Context, userID uuid.UUID) error
}
