package rides

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/services/rides/projection"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/pullup/services/rides RideUC,TrackingUC

// RideUC defines the ride lifecycle operations
type RideUC interface {
	RequestRide(ctx context.Context, caller models.Caller, req models.RideRequest) (*models.Ride, error)
	GetRide(ctx context.Context, caller models.Caller, rideID uuid.UUID) (*models.Ride, error)
	GetActiveRide(ctx context.Context, caller models.Caller) (*models.Ride, error)
	AssignDriver(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	ArrivedAtPickup(ctx context.Context, caller models.Caller, rideID uuid.UUID) (*models.Ride, error)
	StartTrip(ctx context.Context, caller models.Caller, rideID uuid.UUID) (*models.Ride, error)
	CompleteTrip(ctx context.Context, caller models.Caller, rideID uuid.UUID) (*models.Ride, error)
	CancelRide(ctx context.Context, caller models.Caller, rideID uuid.UUID) (*models.Ride, error)

	EstimateFares(ctx context.Context, pickup, destination models.Place) ([]models.FareQuote, error)
	ListVehicleClasses() []models.VehicleClass

	RiderDashboard(ctx context.Context, caller models.Caller, at *models.Place) (*projection.RiderDashboard, error)
	DriverDashboard(ctx context.Context, caller models.Caller) (*projection.DriverDashboard, error)
}

// TrackingUC defines the active ride tracking operations
type TrackingUC interface {
	UpdatePosition(ctx context.Context, caller models.Caller, rideID uuid.UUID, pos models.VehiclePosition) error
	GetTracking(ctx context.Context, caller models.Caller, rideID uuid.UUID) (*projection.TrackingView, error)
	GetActiveTracking(ctx context.Context, caller models.Caller) (*projection.TrackingView, error)

	QuickMessages() []string
	SendMessage(ctx context.Context, caller models.Caller, rideID uuid.UUID, text string) (*models.ChatMessage, error)
	ListMessages(ctx context.Context, caller models.Caller, rideID uuid.UUID) ([]models.ChatMessage, error)

	StartCall(ctx context.Context, caller models.Caller, rideID uuid.UUID) (*models.CallSession, error)
	EndCall(ctx context.Context, caller models.Caller, rideID uuid.UUID) (*models.CallSession, error)
	GetCall(ctx context.Context, caller models.Caller, rideID uuid.UUID) (*models.CallSession, error)

	ShareTrip(ctx context.Context, caller models.Caller, rideID uuid.UUID, recipients []string) (*models.ShareLink, error)
	GetSharedTracking(ctx context.Context, token string) (*projection.TrackingView, error)
	RaiseEmergency(ctx context.Context, caller models.Caller, rideID uuid.UUID, note string) (*models.EmergencyAlert, error)

	// ReleaseRide drops the live state of a ride that reached a terminal status
	ReleaseRide(ctx context.Context, rideID uuid.UUID) error
}
