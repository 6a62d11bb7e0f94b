package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/pullup/internal/pkg/middleware"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/services/users/handler/http"
	"github.com/piresc/pullup/services/users/handler/websocket"
)

// Handler coordinates all protocol handlers for the users service
type Handler struct {
	userHandler     *http.UserHandler
	realtimeHandler *websocket.RealtimeHandler
	cfg             *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(userHandler *http.UserHandler, realtimeHandler *websocket.RealtimeHandler, cfg *models.Config) *Handler {
	return &Handler{
		userHandler:     userHandler,
		realtimeHandler: realtimeHandler,
		cfg:             cfg,
	}
}

// RegisterRoutes registers the users routes. The realtime feed authenticates on upgrade.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	e.GET("/", h.userHandler.Landing, auth)
	e.GET("/ws/realtime", h.realtimeHandler.HandleWebSocket)

	api := e.Group("/api/v1", auth)

	usersGroup := api.Group("/users")
	usersGroup.GET("", h.userHandler.ListProfiles)
	usersGroup.GET("/me", h.userHandler.GetMe)
	usersGroup.PUT("/me", h.userHandler.UpdateMe)
	usersGroup.POST("/me/driver-profile", h.userHandler.CreateDriverProfile)
	usersGroup.PUT("/me/driver-profile", h.userHandler.UpdateDriverProfile)
	usersGroup.POST("/me/vehicles", h.userHandler.AddVehicle)
	usersGroup.PUT("/me/vehicles/:id", h.userHandler.UpdateVehicle)
	usersGroup.DELETE("/me/vehicles/:id", h.userHandler.DeleteVehicle)
	usersGroup.PUT("/me/location", h.userHandler.UpdateLocation)
	usersGroup.PUT("/me/online", h.userHandler.SetOnline)
	usersGroup.GET("/me/mode", h.userHandler.GetMode)
	usersGroup.PUT("/me/mode", h.userHandler.SwitchMode)
	usersGroup.GET("/:id", h.userHandler.GetUser)

	api.GET("/drivers/nearby", h.userHandler.NearbyDrivers)
	api.GET("/views/user-profile-settings", h.userHandler.SettingsView)
}
