package users

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/pullup/internal/pkg/appstate"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/internal/pkg/realtime"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/pullup/services/users UserGW,AppState

// UserGW announces row changes and manages realtime subscriptions
type UserGW interface {
	PublishProfileChange(eventType string, profile models.UserProfile) error
	PublishDriverProfileChange(eventType string, profile models.DriverProfile) error
	PublishVehicleChange(eventType string, vehicle models.Vehicle) error
	PublishLocationChange(eventType string, location models.UserLocation) error

	SubscribeUserProfile(userID uuid.UUID, handler realtime.Handler) (string, error)
	SubscribeDriverLocations(handler realtime.Handler) (string, error)
	Unsubscribe(handle string) error
}

// AppState is the shared per-user application state
type AppState interface {
	Get(ctx context.Context, userID uuid.UUID) (appstate.State, error)
	Dispatch(ctx context.Context, userID uuid.UUID, action appstate.Action) (appstate.State, error)
}
