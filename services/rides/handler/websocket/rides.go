package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/pullup/internal/pkg/constants"
	"github.com/piresc/pullup/internal/pkg/logger"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/internal/pkg/websocket"
	"github.com/piresc/pullup/services/rides"
)

// Inbound events accepted on the ride feed
const (
	EventSendMessage    = "send_message"
	EventUpdatePosition = "update_position"
	EventRefresh        = "refresh"
)

const requestTimeout = 5 * time.Second

type sendMessageRequest struct {
	RideID uuid.UUID `json:"ride_id"`
	Text   string    `json:"text"`
}

type updatePositionRequest struct {
	RideID    uuid.UUID `json:"ride_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Heading   float64   `json:"heading"`
}

// RideFeedHandler serves the live ride feed at /ws/rides
type RideFeedHandler struct {
	manager    *websocket.Manager
	trackingUC rides.TrackingUC
}

// NewRideFeedHandler creates a new ride feed handler
func NewRideFeedHandler(manager *websocket.Manager, trackingUC rides.TrackingUC) *RideFeedHandler {
	return &RideFeedHandler{manager: manager, trackingUC: trackingUC}
}

// HandleWebSocket upgrades the request and serves the feed until the client leaves
func (h *RideFeedHandler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, h.sendSnapshot, h.handleMessage, func(client *websocket.Client) {
		logger.Debug("Ride feed client disconnected", logger.String("user_id", client.Caller.ID.String()))
	})
}

// sendSnapshot pushes the caller's active ride, or null when there is none
func (h *RideFeedHandler) sendSnapshot(client *websocket.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	view, err := h.trackingUC.GetActiveTracking(ctx, client.Caller)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return err
	}
	if view == nil {
		return client.Send(constants.EventRideSnapshot, nil)
	}
	return client.Send(constants.EventRideSnapshot, view)
}

func (h *RideFeedHandler) handleMessage(client *websocket.Client, msg websocket.WSMessage) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	switch msg.Event {
	case EventRefresh:
		return h.sendSnapshot(client)

	case EventSendMessage:
		var req sendMessageRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			return fmt.Errorf("invalid message payload: %w", err)
		}
		// delivery to both participants happens through the ride.message fan-out
		_, err := h.trackingUC.SendMessage(ctx, client.Caller, req.RideID, req.Text)
		return err

	case EventUpdatePosition:
		var req updatePositionRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			return fmt.Errorf("invalid position payload: %w", err)
		}
		return h.trackingUC.UpdatePosition(ctx, client.Caller, req.RideID, models.VehiclePosition{
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
			Heading:   req.Heading,
		})

	default:
		return fmt.Errorf("unsupported event: %s", msg.Event)
	}
}
