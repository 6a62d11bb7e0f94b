package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/pullup/internal/pkg/logger"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/internal/utils"
	"github.com/piresc/pullup/services/rides"
)

// RideHandler handles HTTP requests for the ride lifecycle and the dashboards
type RideHandler struct {
	rideUC rides.RideUC
}

// NewRideHandler creates a new ride handler
func NewRideHandler(rideUC rides.RideUC) *RideHandler {
	return &RideHandler{rideUC: rideUC}
}

// RequestRide handles POST /api/v1/rides
func (h *RideHandler) RequestRide(c echo.Context) error {
	caller, ok, err := callerOrReject(c)
	if !ok {
		return err
	}

	var req models.RideRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for ride request", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	ride, err := h.rideUC.RequestRide(c.Request().Context(), caller, req)
	if err != nil {
		logger.Warn("Ride request rejected",
			logger.String("user_id", caller.ID.String()),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err, "Failed to request ride")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Ride requested", ride)
}

// GetRide handles GET /api/v1/rides/:id
func (h *RideHandler) GetRide(c echo.Context) error {
	caller, ok, err := callerOrReject(c)
	if !ok {
		return err
	}
	rideID, ok, err := rideIDParam(c)
	if !ok {
		return err
	}

	ride, err := h.rideUC.GetRide(c.Request().Context(), caller, rideID)
	if err != nil {
		return utils.DomainErrorResponse(c, err, "Failed to load ride")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride retrieved", ride)
}

// GetActiveRide handles GET /api/v1/rides/active
func (h *RideHandler) GetActiveRide(c echo.Context) error {
	caller, ok, err := callerOrReject(c)
	if !ok {
		return err
	}

	ride, err := h.rideUC.GetActiveRide(c.Request().Context(), caller)
	if err != nil {
		return utils.DomainErrorResponse(c, err, "Failed to load active ride")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Active ride retrieved", ride)
}

// ArrivedAtPickup handles POST /api/v1/rides/:id/arrived
func (h *RideHandler) ArrivedAtPickup(c echo.Context) error {
	return h.transition(c, h.rideUC.ArrivedAtPickup, "Driver arrived at pickup")
}

// StartTrip handles POST /api/v1/rides/:id/start
func (h *RideHandler) StartTrip(c echo.Context) error {
	return h.transition(c, h.rideUC.StartTrip, "Trip started")
}

// CompleteTrip handles POST /api/v1/rides/:id/complete
func (h *RideHandler) CompleteTrip(c echo.Context) error {
	return h.transition(c, h.rideUC.CompleteTrip, "Trip completed")
}

// CancelRide handles POST /api/v1/rides/:id/cancel
func (h *RideHandler) CancelRide(c echo.Context) error {
	return h.transition(c, h.rideUC.CancelRide, "Ride cancelled")
}

type transitionFunc func(ctx context.Context, caller models.Caller, rideID uuid.UUID) (*models.Ride, error)

func (h *RideHandler) transition(c echo.Context, fn transitionFunc, message string) error {
	caller, ok, err := callerOrReject(c)
	if !ok {
		return err
	}
	rideID, ok, err := rideIDParam(c)
	if !ok {
		return err
	}

	ride, err := fn(c.Request().Context(), caller, rideID)
	if err != nil {
		logger.Info("Ride transition rejected",
			logger.String("ride_id", rideID.String()),
			logger.String("user_id", caller.ID.String()),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err, "Failed to update ride")
	}
	return utils.SuccessResponse(c, http.StatusOK, message, ride)
}

type estimateRequest struct {
	Pickup      *models.Place `json:"pickup"`
	Destination *models.Place `json:"destination"`
}

// EstimateFares handles POST /api/v1/rides/estimate
func (h *RideHandler) EstimateFares(c echo.Context) error {
	var req estimateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Pickup == nil || req.Destination == nil {
		return utils.BadRequestResponse(c, "pickup and destination are required")
	}

	quotes, err := h.rideUC.EstimateFares(c.Request().Context(), *req.Pickup, *req.Destination)
	if err != nil {
		return utils.DomainErrorResponse(c, err, "Failed to estimate fares")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Fares estimated", quotes)
}

// ListVehicleClasses handles GET /api/v1/vehicle-classes
func (h *RideHandler) ListVehicleClasses(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Vehicle classes retrieved", h.rideUC.ListVehicleClasses())
}

// RiderDashboard handles GET /api/v1/views/rider-dashboard
func (h *RideHandler) RiderDashboard(c echo.Context) error {
	caller, ok, err := callerOrReject(c)
	if !ok {
		return err
	}
	at, err := placeQuery(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	view, err := h.rideUC.RiderDashboard(c.Request().Context(), caller, at)
	if err != nil {
		return utils.DomainErrorResponse(c, err, "Failed to load rider dashboard")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Rider dashboard", view)
}

// DriverDashboard handles GET /api/v1/views/driver-dashboard
func (h *RideHandler) DriverDashboard(c echo.Context) error {
	caller, ok, err := callerOrReject(c)
	if !ok {
		return err
	}

	view, err := h.rideUC.DriverDashboard(c.Request().Context(), caller)
	if err != nil {
		return utils.DomainErrorResponse(c, err, "Failed to load driver dashboard")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver dashboard", view)
}
