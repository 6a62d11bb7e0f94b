package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/pullup/internal/pkg/logger"
	"github.com/piresc/pullup/internal/pkg/middleware"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/internal/utils"
	"github.com/piresc/pullup/services/users"
)

// Landing pages per mode
const (
	RiderLandingPath  = "/api/v1/views/rider-dashboard"
	DriverLandingPath = "/api/v1/views/driver-dashboard"
)

type onlineRequest struct {
	IsOnline bool `json:"is_online"`
}

type modeRequest struct {
	Mode models.Mode `json:"mode"`
}

// UserHandler handles HTTP requests for profiles, drivers, vehicles and locations
type UserHandler struct {
	userUC users.UserUC
	cfg    *models.Config
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC users.UserUC, cfg *models.Config) *UserHandler {
	return &UserHandler{userUC: userUC, cfg: cfg}
}

func userOrReject(c echo.Context) (uuid.UUID, bool, error) {
	userID := middleware.UserIDFromContext(c)
	if userID == uuid.Nil {
		return uuid.Nil, false, utils.UnauthorizedResponse(c, "Authentication required")
	}
	return userID, true, nil
}

// Landing handles GET / by redirecting to the dashboard of the stored mode
func (h *UserHandler) Landing(c echo.Context) error {
	userID, ok, err := userOrReject(c)
	if !ok {
		return err
	}
	state, err := h.userUC.GetMode(c.Request().Context(), userID)
	if err != nil {
		logger.Warn("Mode lookup failed, using rider landing", logger.String("user_id", userID.String()), logger.Err(err))
	}

	path := RiderLandingPath
	if state.Mode == models.ModeDriver {
		path = DriverLandingPath
	}
	return c.Redirect(http.StatusFound, strings.TrimRight(h.cfg.Users.PageBaseURL, "/")+path)
}

// ListProfiles handles GET /api/v1/users
func (h *UserHandler) ListProfiles(c echo.Context) error {
	filter := models.UserProfileFilter{
		Status: c.QueryParam("status"),
		Search: c.QueryParam("search"),
	}
	if raw := c.QueryParam("role"); raw != "" {
		for _, role := range strings.Split(raw, ",") {
			if role = strings.TrimSpace(role); role != "" {
				filter.Roles = append(filter.Roles, role)
			}
		}
	}
	return utils.ResultResponse(c, http.StatusOK, h.userUC.GetUserProfiles(c.Request().Context(), filter))
}

// GetMe handles GET /api/v1/users/me
func (h *UserHandler) GetMe(c echo.Context) error {
	userID, ok, err := userOrReject(c)
	if !ok {
		return err
	}
	return utils.ResultResponse(c, http.StatusOK, h.userUC.GetUserByID(c.Request().Context(), userID))
}

// GetUser handles GET /api/v1/users/:id
func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}
	return utils.ResultResponse(c, http.StatusOK, h.userUC.GetUserByID(c.Request().Context(), userID))
}

// UpdateMe handles PUT /api/v1/users/me
func (h *UserHandler) UpdateMe(c echo.Context) error {
	userID, ok, err := userOrReject(c)
	if !ok {
		return err
	}
	var req models.UserProfileUpdate
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	return utils.ResultResponse(c, http.StatusOK, h.userUC.UpdateUserProfile(c.Request().Context(), userID, req))
}

// CreateDriverProfile handles POST /api/v1/users/me/driver-profile
func (h *UserHandler) CreateDriverProfile(c echo.Context) error {
	userID, ok, err := userOrReject(c)
	if !ok {
		return err
	}
	var req models.DriverProfileInput
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	return utils.ResultResponse(c, http.StatusCreated, h.userUC.CreateDriverProfile(c.Request().Context(), userID, req))
}

// UpdateDriverProfile handles PUT /api/v1/users/me/driver-profile
func (h *UserHandler) UpdateDriverProfile(c echo.Context) error {
	userID, ok, err := userOrReject(c)
	if !ok {
		return err
	}
	var req models.DriverProfileUpdate
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	return utils.ResultResponse(c, http.StatusOK, h.userUC.UpdateDriverProfile(c.Request().Context(), userID, req))
}

// AddVehicle handles POST /api/v1/users/me/vehicles
func (h *UserHandler) AddVehicle(c echo.Context) error {
	userID, ok, err := userOrReject(c)
	if !ok {
		return err
	}
	var req models.Vehicle
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	return utils.ResultResponse(c, http.StatusCreated, h.userUC.AddDriverVehicle(c.Request().Context(), userID, req))
}

// UpdateVehicle handles PUT /api/v1/users/me/vehicles/:id
func (h *UserHandler) UpdateVehicle(c echo.Context) error {
	userID, ok, err := userOrReject(c)
	if !ok {
		return err
	}
	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle ID")
	}
	var req models.VehicleUpdate
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	return utils.ResultResponse(c, http.StatusOK, h.userUC.UpdateDriverVehicle(c.Request().Context(), userID, vehicleID, req))
}

// DeleteVehicle handles DELETE /api/v1/users/me/vehicles/:id
func (h *UserHandler) DeleteVehicle(c echo.Context) error {
	userID, ok, err := userOrReject(c)
	if !ok {
		return err
	}
	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle ID")
	}
	return utils.ResultResponse(c, http.StatusOK, h.userUC.DeleteDriverVehicle(c.Request().Context(), userID, vehicleID))
}

// UpdateLocation handles PUT /api/v1/users/me/location
func (h *UserHandler) UpdateLocation(c echo.Context) error {
	userID, ok, err := userOrReject(c)
	if !ok {
		return err
	}
	var req models.LocationInput
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	return utils.ResultResponse(c, http.StatusOK, h.userUC.UpdateUserLocation(c.Request().Context(), userID, req))
}

// SetOnline handles PUT /api/v1/users/me/online
func (h *UserHandler) SetOnline(c echo.Context) error {
	userID, ok, err := userOrReject(c)
	if !ok {
		return err
	}
	var req onlineRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	return utils.ResultResponse(c, http.StatusOK, h.userUC.ToggleDriverOnlineStatus(c.Request().Context(), userID, req.IsOnline))
}

// NearbyDrivers handles GET /api/v1/drivers/nearby?lat=&lng=&radius=
func (h *UserHandler) NearbyDrivers(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid latitude")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid longitude")
	}
	var radius float64
	if raw := c.QueryParam("radius"); raw != "" {
		if radius, err = strconv.ParseFloat(raw, 64); err != nil {
			return utils.BadRequestResponse(c, "Invalid radius")
		}
	}
	return utils.ResultResponse(c, http.StatusOK, h.userUC.GetNearbyDrivers(c.Request().Context(), lat, lng, radius))
}

// GetMode handles GET /api/v1/users/me/mode
func (h *UserHandler) GetMode(c echo.Context) error {
	userID, ok, err := userOrReject(c)
	if !ok {
		return err
	}
	state, err := h.userUC.GetMode(c.Request().Context(), userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err, "Failed to load mode")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Mode retrieved", state)
}

// SwitchMode handles PUT /api/v1/users/me/mode
func (h *UserHandler) SwitchMode(c echo.Context) error {
	userID, ok, err := userOrReject(c)
	if !ok {
		return err
	}
	var req modeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	state, err := h.userUC.SwitchMode(c.Request().Context(), userID, req.Mode)
	if err != nil {
		return utils.DomainErrorResponse(c, err, "Failed to switch mode")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Mode switched", state)
}

// SettingsView handles GET /api/v1/views/user-profile-settings
func (h *UserHandler) SettingsView(c echo.Context) error {
	userID, ok, err := userOrReject(c)
	if !ok {
		return err
	}
	view, err := h.userUC.SettingsView(c.Request().Context(), userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err, "Failed to load profile settings")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profile settings retrieved", view)
}
