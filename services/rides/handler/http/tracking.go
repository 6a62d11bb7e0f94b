package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/pullup/internal/pkg/logger"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/internal/utils"
	"github.com/piresc/pullup/services/rides"
)

// TrackingHandler handles HTTP requests made during an active ride
type TrackingHandler struct {
	trackingUC rides.TrackingUC
}

// NewTrackingHandler creates a new tracking handler
func NewTrackingHandler(trackingUC rides.TrackingUC) *TrackingHandler {
	return &TrackingHandler{trackingUC: trackingUC}
}

type positionRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Heading   float64  `json:"heading"`
}

type messageRequest struct {
	Text string `json:"text"`
}

type shareRequest struct {
	Recipients []string `json:"recipients"`
}

type emergencyRequest struct {
	Note string `json:"note"`
}

// UpdatePosition handles PUT /api/v1/rides/:id/position
func (h *TrackingHandler) UpdatePosition(c echo.Context) error {
	caller, ok, err := callerOrReject(c)
	if !ok {
		return err
	}
	rideID, ok, err := rideIDParam(c)
	if !ok {
		return err
	}

	var req positionRequest
	if err := c.Bind(&req); err != nil || req.Latitude == nil || req.Longitude == nil {
		return utils.BadRequestResponse(c, "latitude and longitude are required")
	}

	pos := models.VehiclePosition{
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Heading:   req.Heading,
		Timestamp: time.Now().UTC(),
	}
	if err := h.trackingUC.UpdatePosition(c.Request().Context(), caller, rideID, pos); err != nil {
		return utils.DomainErrorResponse(c, err, "Failed to update position")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Position updated", pos)
}

// GetTracking handles GET /api/v1/rides/:id/tracking
func (h *TrackingHandler) GetTracking(c echo.Context) error {
	caller, ok, err := callerOrReject(c)
	if !ok {
		return err
	}
	rideID, ok, err := rideIDParam(c)
	if !ok {
		return err
	}

	view, err := h.trackingUC.GetTracking(c.Request().Context(), caller, rideID)
	if err != nil {
		return utils.DomainErrorResponse(c, err, "Failed to load tracking")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Tracking retrieved", view)
}

// ActiveRideTracking handles GET /api/v1/views/active-ride-tracking
func (h *TrackingHandler) ActiveRideTracking(c echo.Context) error {
	caller, ok, err := callerOrReject(c)
	if !ok {
		return err
	}

	view, err := h.trackingUC.GetActiveTracking(c.Request().Context(), caller)
	if err != nil {
		return utils.DomainErrorResponse(c, err, "Failed to load active ride tracking")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Active ride tracking", view)
}

// QuickMessages handles GET /api/v1/messages/quick
func (h *TrackingHandler) QuickMessages(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Quick messages", h.trackingUC.QuickMessages())
}

// SendMessage handles POST /api/v1/rides/:id/messages
func (h *TrackingHandler) SendMessage(c echo.Context) error {
	caller, ok, err := callerOrReject(c)
	if !ok {
		return err
	}
	rideID, ok, err := rideIDParam(c)
	if !ok {
		return err
	}

	var req messageRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	msg, err := h.trackingUC.SendMessage(c.Request().Context(), caller, rideID, req.Text)
	if err != nil {
		return utils.DomainErrorResponse(c, err, "Failed to send message")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Message sent", msg)
}

// ListMessages handles GET /api/v1/rides/:id/messages
func (h *TrackingHandler) ListMessages(c echo.Context) error {
	caller, ok, err := callerOrReject(c)
	if !ok {
		return err
	}
	rideID, ok, err := rideIDParam(c)
	if !ok {
		return err
	}

	msgs, err := h.trackingUC.ListMessages(c.Request().Context(), caller, rideID)
	if err != nil {
		return utils.DomainErrorResponse(c, err, "Failed to load messages")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Messages retrieved", msgs)
}

// StartCall handles POST /api/v1/rides/:id/call
func (h *TrackingHandler) StartCall(c echo.Context) error {
	caller, ok, err := callerOrReject(c)
	if !ok {
		return err
	}
	rideID, ok, err := rideIDParam(c)
	if !ok {
		return err
	}

	session, err := h.trackingUC.StartCall(c.Request().Context(), caller, rideID)
	if err != nil {
		return utils.DomainErrorResponse(c, err, "Failed to start call")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Call started", session)
}

// EndCall handles DELETE /api/v1/rides/:id/call
func (h *TrackingHandler) EndCall(c echo.Context) error {
	caller, ok, err := callerOrReject(c)
	if !ok {
		return err
	}
	rideID, ok, err := rideIDParam(c)
	if !ok {
		return err
	}

	session, err := h.trackingUC.EndCall(c.Request().Context(), caller, rideID)
	if err != nil {
		return utils.DomainErrorResponse(c, err, "Failed to end call")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Call ended", session)
}

// GetCall handles GET /api/v1/rides/:id/call
func (h *TrackingHandler) GetCall(c echo.Context) error {
	caller, ok, err := callerOrReject(c)
	if !ok {
		return err
	}
	rideID, ok, err := rideIDParam(c)
	if !ok {
		return err
	}

	session, err := h.trackingUC.GetCall(c.Request().Context(), caller, rideID)
	if err != nil {
		return utils.DomainErrorResponse(c, err, "Failed to load call")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Call retrieved", session)
}

// ShareTrip handles POST /api/v1/rides/:id/share
func (h *TrackingHandler) ShareTrip(c echo.Context) error {
	caller, ok, err := callerOrReject(c)
	if !ok {
		return err
	}
	rideID, ok, err := rideIDParam(c)
	if !ok {
		return err
	}

	var req shareRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	link, err := h.trackingUC.ShareTrip(c.Request().Context(), caller, rideID, req.Recipients)
	if err != nil {
		return utils.DomainErrorResponse(c, err, "Failed to share trip")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Trip shared", link)
}

// SharedTracking handles the public GET /api/v1/shared/:token
func (h *TrackingHandler) SharedTracking(c echo.Context) error {
	token := strings.TrimSpace(c.Param("token"))
	if token == "" {
		return utils.BadRequestResponse(c, "Invalid share token")
	}

	view, err := h.trackingUC.GetSharedTracking(c.Request().Context(), token)
	if err != nil {
		return utils.DomainErrorResponse(c, err, "Failed to load shared trip")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Shared trip", view)
}

// RaiseEmergency handles POST /api/v1/rides/:id/emergency
func (h *TrackingHandler) RaiseEmergency(c echo.Context) error {
	caller, ok, err := callerOrReject(c)
	if !ok {
		return err
	}
	rideID, ok, err := rideIDParam(c)
	if !ok {
		return err
	}

	var req emergencyRequest
	_ = c.Bind(&req)

	alert, err := h.trackingUC.RaiseEmergency(c.Request().Context(), caller, rideID, req.Note)
	if err != nil {
		logger.Error("Failed to raise emergency",
			logger.String("ride_id", rideID.String()),
			logger.String("user_id", caller.ID.String()),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err, "Failed to raise emergency")
	}
	return utils.SuccessResponse(c, http.StatusAccepted, "Emergency raised", alert)
}
