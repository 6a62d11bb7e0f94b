package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/pullup/internal/pkg/logger"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/internal/pkg/realtime"
	"github.com/piresc/pullup/internal/utils"
)

const (
	defaultDriverRating = 5.0
	maxLicenseLength    = 32
	minVehicleYear      = 1990
)

// CreateDriverProfile registers userID as a driver, optionally with a first vehicle
func (uc *userUC) CreateDriverProfile(ctx context.Context, userID uuid.UUID, input models.DriverProfileInput) models.Result[*models.DriverProfile] {
	const fallback = "Failed to create driver profile."

	license, err := normalizeLicense(input.LicenseNumber)
	if err != nil {
		return utils.AdapterResult[*models.DriverProfile](err, fallback)
	}

	now := uc.now()
	profile := &models.DriverProfile{
		UserID:        userID,
		LicenseNumber: license,
		Rating:        defaultDriverRating,
		CreatedAt:     now,
		UpdatedAt:     now,
		Vehicles:      []models.Vehicle{},
	}

	var vehicle *models.Vehicle
	if input.Vehicle != nil {
		v, err := uc.newVehicle(userID, *input.Vehicle)
		if err != nil {
			return utils.AdapterResult[*models.DriverProfile](err, fallback)
		}
		vehicle = v
		profile.Vehicles = append(profile.Vehicles, *v)
	}

	if err := uc.repo.CreateDriverProfile(ctx, profile, vehicle); err != nil {
		return utils.AdapterResult[*models.DriverProfile](err, fallback)
	}

	logger.Info("Driver profile created", logger.String("user_id", userID.String()))
	announce("driver_profile", uc.gw.PublishDriverProfileChange(realtime.EventInsert, *profile))
	if vehicle != nil {
		announce("driver_vehicle", uc.gw.PublishVehicleChange(realtime.EventInsert, *vehicle))
	}
	return models.Ok(profile)
}

// UpdateDriverProfile applies a partial driver profile update
func (uc *userUC) UpdateDriverProfile(ctx context.Context, userID uuid.UUID, update models.DriverProfileUpdate) models.Result[*models.DriverProfile] {
	const fallback = "Failed to update driver profile."

	if update.LicenseNumber == nil {
		return utils.AdapterResult[*models.DriverProfile](models.NewValidationError("driver_profile", "no changes provided"), fallback)
	}
	license, err := normalizeLicense(*update.LicenseNumber)
	if err != nil {
		return utils.AdapterResult[*models.DriverProfile](err, fallback)
	}
	update.LicenseNumber = &license

	profile, err := uc.repo.UpdateDriverProfile(ctx, userID, update)
	if err != nil {
		return utils.AdapterResult[*models.DriverProfile](err, fallback)
	}
	announce("driver_profile", uc.gw.PublishDriverProfileChange(realtime.EventUpdate, *profile))
	return models.Ok(profile)
}

// AddDriverVehicle registers a new active vehicle for driverID
func (uc *userUC) AddDriverVehicle(ctx context.Context, driverID uuid.UUID, vehicle models.Vehicle) models.Result[*models.Vehicle] {
	const fallback = "Failed to add vehicle."

	v, err := uc.newVehicle(driverID, vehicle)
	if err != nil {
		return utils.AdapterResult[*models.Vehicle](err, fallback)
	}
	if err := uc.repo.CreateVehicle(ctx, v); err != nil {
		return utils.AdapterResult[*models.Vehicle](err, fallback)
	}
	announce("driver_vehicle", uc.gw.PublishVehicleChange(realtime.EventInsert, *v))
	return models.Ok(v)
}

// UpdateDriverVehicle applies a partial update to a vehicle of driverID
func (uc *userUC) UpdateDriverVehicle(ctx context.Context, driverID, vehicleID uuid.UUID, update models.VehicleUpdate) models.Result[*models.Vehicle] {
	const fallback = "Failed to update vehicle."

	if err := uc.normalizeVehicleUpdate(&update); err != nil {
		return utils.AdapterResult[*models.Vehicle](err, fallback)
	}
	v, err := uc.repo.UpdateVehicle(ctx, driverID, vehicleID, update)
	if err != nil {
		return utils.AdapterResult[*models.Vehicle](err, fallback)
	}
	announce("driver_vehicle", uc.gw.PublishVehicleChange(realtime.EventUpdate, *v))
	return models.Ok(v)
}

// DeleteDriverVehicle removes a vehicle of driverID
func (uc *userUC) DeleteDriverVehicle(ctx context.Context, driverID, vehicleID uuid.UUID) models.Result[struct{}] {
	if err := uc.repo.DeleteVehicle(ctx, driverID, vehicleID); err != nil {
		return utils.AdapterResult[struct{}](err, "Failed to delete vehicle.")
	}
	announce("driver_vehicle", uc.gw.PublishVehicleChange(realtime.EventDelete, models.Vehicle{ID: vehicleID, DriverID: driverID}))
	return models.Ok(struct{}{})
}

func normalizeLicense(raw string) (string, error) {
	license := strings.ToUpper(strings.TrimSpace(raw))
	switch {
	case license == "":
		return "", models.NewValidationError("license_number", "is required")
	case len(license) > maxLicenseLength:
		return "", models.NewValidationError("license_number", "is too long")
	}
	return license, nil
}

func (uc *userUC) newVehicle(driverID uuid.UUID, in models.Vehicle) (*models.Vehicle, error) {
	v := &models.Vehicle{
		ID:           uuid.New(),
		DriverID:     driverID,
		Make:         utils.SanitizeString(in.Make),
		Model:        utils.SanitizeString(in.Model),
		Year:         in.Year,
		Color:        utils.SanitizeString(in.Color),
		LicensePlate: strings.ToUpper(strings.TrimSpace(in.LicensePlate)),
		IsActive:     true,
		CreatedAt:    uc.now(),
	}
	switch {
	case v.Make == "":
		return nil, models.NewValidationError("make", "is required")
	case v.Model == "":
		return nil, models.NewValidationError("model", "is required")
	case v.LicensePlate == "":
		return nil, models.NewValidationError("license_plate", "is required")
	}
	if err := uc.validateYear(v.Year); err != nil {
		return nil, err
	}
	return v, nil
}

func (uc *userUC) normalizeVehicleUpdate(update *models.VehicleUpdate) error {
	if update.Make == nil && update.Model == nil && update.Year == nil &&
		update.Color == nil && update.LicensePlate == nil && update.IsActive == nil {
		return models.NewValidationError("vehicle", "no changes provided")
	}

	required := []struct {
		field string
		value **string
	}{
		{"make", &update.Make},
		{"model", &update.Model},
		{"license_plate", &update.LicensePlate},
	}
	for _, r := range required {
		if *r.value == nil {
			continue
		}
		v := utils.SanitizeString(**r.value)
		if v == "" {
			return models.NewValidationError(r.field, "must not be empty")
		}
		*r.value = &v
	}
	if update.LicensePlate != nil {
		plate := strings.ToUpper(*update.LicensePlate)
		update.LicensePlate = &plate
	}
	if update.Color != nil {
		color := utils.SanitizeString(*update.Color)
		update.Color = &color
	}
	if update.Year != nil {
		return uc.validateYear(*update.Year)
	}
	return nil
}

func (uc *userUC) validateYear(year int) error {
	if year < minVehicleYear || year > uc.now().Year()+1 {
		return models.NewValidationError("year", "is out of range")
	}
	return nil
}
