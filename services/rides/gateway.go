package rides

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/pullup/internal/pkg/appstate"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/services/rides/dispatch"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/pullup/services/rides RideGW,Dispatcher,AppState

// RideGW defines the ride event publishing operations
type RideGW interface {
	PublishRideUpdated(ctx context.Context, event models.RideEvent) error
	PublishRideCompleted(ctx context.Context, event models.RideCompletedEvent) error
	PublishMessage(ctx context.Context, event models.MessageEvent) error
	PublishTripShared(ctx context.Context, link models.ShareLink) error
	PublishEmergency(ctx context.Context, alert models.EmergencyAlert) error
}

// Dispatcher schedules the simulated driver assignment of a ride
type Dispatcher interface {
	Schedule(rideID uuid.UUID, assign dispatch.AssignFunc)
	Cancel(rideID uuid.UUID) bool
}

// AppState is the shared per-user application state
type AppState interface {
	Get(ctx context.Context, userID uuid.UUID) (appstate.State, error)
	Dispatch(ctx context.Context, userID uuid.UUID, action appstate.Action) (appstate.State, error)
}
