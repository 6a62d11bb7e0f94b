package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/pullup/internal/pkg/middleware"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/services/rides/handler/http"
	"github.com/piresc/pullup/services/rides/handler/nats"
	"github.com/piresc/pullup/services/rides/handler/websocket"
)

// Handler coordinates all protocol handlers for the rides service
type Handler struct {
	rideHandler     *http.RideHandler
	trackingHandler *http.TrackingHandler
	feedHandler     *websocket.RideFeedHandler
	natsHandler     *nats.RidesHandler
	cfg             *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	rideHandler *http.RideHandler,
	trackingHandler *http.TrackingHandler,
	feedHandler *websocket.RideFeedHandler,
	natsHandler *nats.RidesHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		rideHandler:     rideHandler,
		trackingHandler: trackingHandler,
		feedHandler:     feedHandler,
		natsHandler:     natsHandler,
		cfg:             cfg,
	}
}

// InitNATSConsumers starts the ride event consumers
func (h *Handler) InitNATSConsumers() error {
	return h.natsHandler.InitNATSConsumers()
}

// Close stops the NATS consumers
func (h *Handler) Close() {
	h.natsHandler.Close()
}

// RegisterRoutes registers all protocol handlers and their routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes
	e.GET("/api/v1/shared/:token", h.trackingHandler.SharedTracking)
	e.GET("/ws/rides", h.feedHandler.HandleWebSocket)

	api := e.Group("/api/v1", middleware.JWTAuthMiddleware(h.cfg.JWT))

	api.GET("/vehicle-classes", h.rideHandler.ListVehicleClasses)
	api.GET("/messages/quick", h.trackingHandler.QuickMessages)

	rideGroup := api.Group("/rides")
	rideGroup.POST("", h.rideHandler.RequestRide)
	rideGroup.GET("/active", h.rideHandler.GetActiveRide)
	rideGroup.POST("/estimate", h.rideHandler.EstimateFares)
	rideGroup.GET("/:id", h.rideHandler.GetRide)
	rideGroup.POST("/:id/arrived", h.rideHandler.ArrivedAtPickup)
	rideGroup.POST("/:id/start", h.rideHandler.StartTrip)
	rideGroup.POST("/:id/complete", h.rideHandler.CompleteTrip)
	rideGroup.POST("/:id/cancel", h.rideHandler.CancelRide)

	// Live tracking
	rideGroup.PUT("/:id/position", h.trackingHandler.UpdatePosition)
	rideGroup.GET("/:id/tracking", h.trackingHandler.GetTracking)
	rideGroup.GET("/:id/messages", h.trackingHandler.ListMessages)
	rideGroup.POST("/:id/messages", h.trackingHandler.SendMessage)
	rideGroup.POST("/:id/call", h.trackingHandler.StartCall)
	rideGroup.GET("/:id/call", h.trackingHandler.GetCall)
	rideGroup.DELETE("/:id/call", h.trackingHandler.EndCall)
	rideGroup.POST("/:id/share", h.trackingHandler.ShareTrip)
	rideGroup.POST("/:id/emergency", h.trackingHandler.RaiseEmergency)

	views := api.Group("/views")
	views.GET("/rider-dashboard", h.rideHandler.RiderDashboard)
	views.GET("/driver-dashboard", h.rideHandler.DriverDashboard)
	views.GET("/active-ride-tracking", h.trackingHandler.ActiveRideTracking)
}
