package rides

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/pullup/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/pullup/services/rides RideRepo,TrackingRepo

// RideRepo defines the ride persistence operations
type RideRepo interface {
	CreateRide(ctx context.Context, ride *models.Ride) error
	GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	// UpdateRide saves ride only while its stored status is still from
	UpdateRide(ctx context.Context, ride *models.Ride, from models.RideStatus) error
	GetActiveRideByPassenger(ctx context.Context, passengerID uuid.UUID) (*models.Ride, error)
	GetActiveRideByDriver(ctx context.Context, driverID uuid.UUID) (*models.Ride, error)
	ListCompletedRidesByDriver(ctx context.Context, driverID uuid.UUID, since time.Time) ([]models.Ride, error)
	ListBusyDrivers(ctx context.Context, driverIDs []uuid.UUID) ([]uuid.UUID, error)

	FindNearbyDrivers(ctx context.Context, at models.Place, radiusKm float64, limit int) ([]models.NearbyDriver, error)
	GetDriverCard(ctx context.Context, driverID uuid.UUID) (*models.DriverCard, error)
	GetPassengerCard(ctx context.Context, userID uuid.UUID) (*models.PassengerCard, error)
	IsDriverOnline(ctx context.Context, driverID uuid.UUID) (bool, error)
}

// TrackingRepo defines the short-lived state of active rides
type TrackingRepo interface {
	SavePosition(ctx context.Context, rideID uuid.UUID, pos models.VehiclePosition) error
	GetPosition(ctx context.Context, rideID uuid.UUID) (*models.VehiclePosition, error)
	AppendMessage(ctx context.Context, msg models.ChatMessage) error
	ListMessages(ctx context.Context, rideID uuid.UUID) ([]models.ChatMessage, error)
	SaveShareLink(ctx context.Context, link models.ShareLink) error
	GetShareLink(ctx context.Context, token string) (*models.ShareLink, error)
	GetRideShareLink(ctx context.Context, rideID uuid.UUID) (*models.ShareLink, error)
	ClearRide(ctx context.Context, rideID uuid.UUID) error
}
