package gateway

import (
	"github.com/google/uuid"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/internal/pkg/realtime"
)

// Tables whose row changes are published
const (
	TableUserProfiles   = "user_profiles"
	TableDriverProfiles = "driver_profiles"
	TableDriverVehicles = "driver_vehicles"
	TableUserLocations  = "user_locations"
)

// Broker is the realtime bus the gateway publishes to
type Broker interface {
	Publish(table, eventType string, record interface{}, keys map[string]string) error
	Subscribe(table string, filter *realtime.Filter, handler realtime.Handler) (string, error)
	Unsubscribe(handle string) error
}

// UserGW maps profile, vehicle and location rows onto realtime subjects
type UserGW struct {
	broker Broker
}

// NewUserGW creates a gateway on broker
func NewUserGW(broker Broker) *UserGW {
	return &UserGW{broker: broker}
}

func (g *UserGW) PublishProfileChange(eventType string, profile models.UserProfile) error {
	return g.broker.Publish(TableUserProfiles, eventType, profile, map[string]string{
		"id":   profile.ID.String(),
		"role": string(profile.Role),
	})
}

func (g *UserGW) PublishDriverProfileChange(eventType string, profile models.DriverProfile) error {
	return g.broker.Publish(TableDriverProfiles, eventType, profile, map[string]string{
		"user_id": profile.UserID.String(),
	})
}

func (g *UserGW) PublishVehicleChange(eventType string, vehicle models.Vehicle) error {
	return g.broker.Publish(TableDriverVehicles, eventType, vehicle, map[string]string{
		"id":        vehicle.ID.String(),
		"driver_id": vehicle.DriverID.String(),
	})
}

func (g *UserGW) PublishLocationChange(eventType string, location models.UserLocation) error {
	return g.broker.Publish(TableUserLocations, eventType, location, map[string]string{
		"user_id":   location.UserID.String(),
		"user_type": string(location.UserType),
	})
}

// SubscribeUserProfile follows the profile row of userID
func (g *UserGW) SubscribeUserProfile(userID uuid.UUID, handler realtime.Handler) (string, error) {
	return g.broker.Subscribe(TableUserProfiles, &realtime.Filter{Column: "id", Value: userID.String()}, handler)
}

// SubscribeDriverLocations follows every driver location row
func (g *UserGW) SubscribeDriverLocations(handler realtime.Handler) (string, error) {
	return g.broker.Subscribe(TableUserLocations, &realtime.Filter{Column: "user_type", Value: string(models.RoleDriver)}, handler)
}

func (g *UserGW) Unsubscribe(handle string) error {
	return g.broker.Unsubscribe(handle)
}
