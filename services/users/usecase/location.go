package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/pullup/internal/pkg/logger"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/internal/pkg/realtime"
	"github.com/piresc/pullup/internal/utils"
)

const defaultNearbyRadiusKm = 5.0

// UpdateUserLocation stores the last position of userID. Online drivers are
// also placed in the GEO index dispatch searches.
func (uc *userUC) UpdateUserLocation(ctx context.Context, userID uuid.UUID, input models.LocationInput) models.Result[*models.UserLocation] {
	const fallback = "Failed to update location."

	if input.Latitude == nil || input.Longitude == nil {
		return utils.AdapterResult[*models.UserLocation](models.NewValidationError("location", "latitude and longitude are required"), fallback)
	}
	lat, lng := *input.Latitude, *input.Longitude
	if !utils.ValidCoordinates(lat, lng) {
		return utils.AdapterResult[*models.UserLocation](models.NewValidationError("location", "coordinates are out of range"), fallback)
	}

	userType := input.UserType
	if userType == "" {
		userType = models.RoleRider
	}
	if userType != models.RoleRider && userType != models.RoleDriver {
		return utils.AdapterResult[*models.UserLocation](models.NewValidationError("user_type", "must be rider or driver"), fallback)
	}

	loc := &models.UserLocation{
		UserID:      userID,
		UserType:    userType,
		Latitude:    lat,
		Longitude:   lng,
		Address:     utils.SanitizeString(input.Address),
		Heading:     input.Heading,
		Geohash:     utils.EncodeLocation(lat, lng, utils.GeohashPrecision),
		LastUpdated: uc.now(),
	}
	if err := uc.repo.UpsertLocation(ctx, loc); err != nil {
		return utils.AdapterResult[*models.UserLocation](err, fallback)
	}

	if loc.UserType == models.RoleDriver {
		uc.syncDriverIndex(ctx, userID, loc)
	}
	announce("user_location", uc.gw.PublishLocationChange(realtime.EventUpdate, *loc))
	return models.Ok(loc)
}

// GetNearbyDrivers returns online drivers within radiusKm, nearest first
func (uc *userUC) GetNearbyDrivers(ctx context.Context, latitude, longitude, radiusKm float64) models.Result[[]models.NearbyDriver] {
	const fallback = "Failed to find nearby drivers."

	if !utils.ValidCoordinates(latitude, longitude) {
		return utils.AdapterResult[[]models.NearbyDriver](models.NewValidationError("location", "coordinates are out of range"), fallback)
	}
	if radiusKm < 0 {
		return utils.AdapterResult[[]models.NearbyDriver](models.NewValidationError("radius", "must not be negative"), fallback)
	}
	if radiusKm == 0 {
		radiusKm = uc.nearbyRadius()
	}

	drivers, err := uc.repo.FindNearbyDrivers(ctx, latitude, longitude, radiusKm)
	if err != nil {
		return utils.AdapterResult[[]models.NearbyDriver](err, fallback)
	}
	return models.Ok(drivers)
}

// ToggleDriverOnlineStatus flips the availability of a driver
func (uc *userUC) ToggleDriverOnlineStatus(ctx context.Context, userID uuid.UUID, isOnline bool) models.Result[*models.OnlineStatus] {
	loc, err := uc.repo.SetDriverOnline(ctx, userID, isOnline)
	if err != nil {
		return utils.AdapterResult[*models.OnlineStatus](err, "Failed to update online status.")
	}

	if loc != nil {
		uc.syncDriverIndex(ctx, userID, loc)
		announce("user_location", uc.gw.PublishLocationChange(realtime.EventUpdate, *loc))
	} else if !isOnline {
		uc.syncDriverIndex(ctx, userID, &models.UserLocation{UserID: userID})
	}
	announce("driver_profile", uc.gw.PublishDriverProfileChange(realtime.EventUpdate,
		models.DriverProfile{UserID: userID, IsOnline: isOnline, UpdatedAt: uc.now()}))

	logger.Info("Driver availability changed",
		logger.String("user_id", userID.String()),
		logger.Bool("is_online", isOnline))
	return models.Ok(&models.OnlineStatus{UserID: userID, IsOnline: isOnline})
}

// syncDriverIndex keeps the GEO index in line with the stored location. The
// database stays authoritative, so index failures are logged.
func (uc *userUC) syncDriverIndex(ctx context.Context, userID uuid.UUID, loc *models.UserLocation) {
	var err error
	if loc.IsOnline {
		err = uc.repo.IndexDriverLocation(ctx, userID, loc.Latitude, loc.Longitude)
	} else {
		err = uc.repo.RemoveDriverLocation(ctx, userID)
	}
	if err != nil {
		logger.Warn("Failed to sync driver GEO index",
			logger.String("user_id", userID.String()),
			logger.Err(err))
	}
}

func (uc *userUC) nearbyRadius() float64 {
	if uc.cfg.Users.NearbyRadiusKm > 0 {
		return uc.cfg.Users.NearbyRadiusKm
	}
	return defaultNearbyRadiusKm
}
