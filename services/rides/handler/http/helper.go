package http

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/pullup/internal/pkg/middleware"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/internal/utils"
)

// callerOrReject returns the authenticated caller, writing a 401 when there is none
func callerOrReject(c echo.Context) (models.Caller, bool, error) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		return models.Caller{}, false, utils.UnauthorizedResponse(c, "Authentication required")
	}
	return caller, true, nil
}

// rideIDParam parses the :id path parameter, writing a 400 when it is malformed
func rideIDParam(c echo.Context) (uuid.UUID, bool, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, false, utils.BadRequestResponse(c, "Invalid ride ID")
	}
	return id, true, nil
}

// placeQuery reads an optional lat/lng/address query triple
func placeQuery(c echo.Context) (*models.Place, error) {
	lat, lng := c.QueryParam("lat"), c.QueryParam("lng")
	if lat == "" && lng == "" {
		return nil, nil
	}
	latitude, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return nil, models.NewValidationError("lat", "must be a number")
	}
	longitude, err := strconv.ParseFloat(lng, 64)
	if err != nil {
		return nil, models.NewValidationError("lng", "must be a number")
	}
	if !utils.ValidCoordinates(latitude, longitude) {
		return nil, models.NewValidationError("lat", "coordinates are out of range")
	}
	return &models.Place{Address: c.QueryParam("address"), Latitude: latitude, Longitude: longitude}, nil
}
