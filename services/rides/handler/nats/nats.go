package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/pullup/internal/pkg/constants"
	"github.com/piresc/pullup/internal/pkg/logger"
	"github.com/piresc/pullup/internal/pkg/models"
	natspkg "github.com/piresc/pullup/internal/pkg/nats"
	nrpkg "github.com/piresc/pullup/internal/pkg/newrelic"
	"github.com/piresc/pullup/services/rides"
	"github.com/piresc/pullup/services/rides/lifecycle"
	"github.com/piresc/pullup/services/rides/projection"
)

// Notifier pushes an event to every live connection of a user
type Notifier interface {
	NotifyUser(userID uuid.UUID, event string, data interface{})
}

// RideUpdate is the ride_updated payload; each participant gets its own projection
type RideUpdate struct {
	Ride     models.Ride            `json:"ride"`
	Previous models.RideStatus      `json:"previous_status,omitempty"`
	Rider    *projection.RiderView  `json:"rider_view,omitempty"`
	Driver   *projection.DriverView `json:"driver_view,omitempty"`
}

// RidesHandler consumes ride events and fans them out to WebSocket clients
type RidesHandler struct {
	trackingUC rides.TrackingUC
	notifier   Notifier
	natsClient *natspkg.Client
	subs       []*nats.Subscription
	cfg        *models.Config
	nrApp      *newrelic.Application
}

// NewRidesHandler creates a new rides NATS handler
func NewRidesHandler(
	trackingUC rides.TrackingUC,
	notifier Notifier,
	client *natspkg.Client,
	cfg *models.Config,
	nrApp *newrelic.Application,
) *RidesHandler {
	return &RidesHandler{
		trackingUC: trackingUC,
		notifier:   notifier,
		natsClient: client,
		cfg:        cfg,
		nrApp:      nrApp,
	}
}

// InitNATSConsumers subscribes to the ride subjects
func (h *RidesHandler) InitNATSConsumers() error {
	handlers := map[string]func(context.Context, []byte) error{
		constants.SubjectRideUpdated: h.handleRideUpdated,
		constants.SubjectRideMessage: h.handleRideMessage,
	}
	for subject, handle := range handlers {
		subject, handle := subject, handle
		sub, err := h.natsClient.Subscribe(subject, func(msg *nats.Msg) {
			ctx, end := nrpkg.StartBackground(context.Background(), h.nrApp, "nats/"+subject)
			defer end()
			if err := handle(ctx, msg.Data); err != nil {
				nrpkg.NoticeError(ctx, err)
				logger.ErrorCtx(ctx, "Failed to handle ride event",
					logger.String("subject", subject),
					logger.Err(err))
			}
		})
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
		}
		h.subs = append(h.subs, sub)
	}
	logger.Info("Rides NATS consumers started", logger.Int("subscriptions", len(h.subs)))
	return nil
}

// Close unsubscribes every consumer
func (h *RidesHandler) Close() {
	for _, sub := range h.subs {
		_ = sub.Unsubscribe()
	}
	h.subs = nil
}

func (h *RidesHandler) handleRideUpdated(ctx context.Context, data []byte) error {
	var event models.RideEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal ride event: %w", err)
	}
	ride := event.Ride

	rider := projection.Rider(ride)
	h.notifier.NotifyUser(ride.PassengerID, constants.EventRideUpdated, RideUpdate{
		Ride: ride, Previous: event.Previous, Rider: &rider,
	})
	if ride.DriverID != nil && *ride.DriverID != ride.PassengerID {
		driver := projection.Driver(ride, h.cfg.Rides.CommissionRate)
		h.notifier.NotifyUser(*ride.DriverID, constants.EventRideUpdated, RideUpdate{
			Ride: ride, Previous: event.Previous, Driver: &driver,
		})
	}

	if lifecycle.IsTerminal(ride.Status) {
		if err := h.trackingUC.ReleaseRide(ctx, ride.ID); err != nil {
			return fmt.Errorf("failed to release ride %s: %w", ride.ID, err)
		}
	}
	return nil
}

func (h *RidesHandler) handleRideMessage(ctx context.Context, data []byte) error {
	var event models.MessageEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal message event: %w", err)
	}
	if len(event.Recipients) == 0 {
		logger.WarnCtx(ctx, "Ride message without recipients", logger.String("ride_id", event.Message.RideID.String()))
		return nil
	}
	for _, userID := range event.Recipients {
		h.notifier.NotifyUser(userID, constants.EventRideMessage, event.Message)
	}
	return nil
}
