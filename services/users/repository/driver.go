package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/pullup/internal/pkg/database"
	"github.com/piresc/pullup/internal/pkg/models"
)

const driverColumns = `user_id, license_number, rating, total_trips, is_online, created_at, updated_at`

const vehicleColumns = `id, driver_id, make, model, year, color, license_plate, is_active, created_at`

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

// driverProfiles loads the driver profiles of userIDs keyed by user, each with its vehicles
func (r *UserRepo) driverProfiles(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*models.DriverProfile, error) {
	var rows []models.DriverProfile
	query := `SELECT ` + driverColumns + ` FROM driver_profiles WHERE user_id = ANY($1::uuid[])`
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(idStrings(userIDs))); err != nil {
		return nil, fmt.Errorf("failed to list driver profiles: %w", err)
	}

	out := make(map[uuid.UUID]*models.DriverProfile, len(rows))
	if len(rows) == 0 {
		return out, nil
	}

	driverIDs := make([]uuid.UUID, len(rows))
	for i := range rows {
		rows[i].Vehicles = []models.Vehicle{}
		driverIDs[i] = rows[i].UserID
		out[rows[i].UserID] = &rows[i]
	}

	var vehicles []models.Vehicle
	query = `SELECT ` + vehicleColumns + ` FROM driver_vehicles WHERE driver_id = ANY($1::uuid[]) ORDER BY created_at ASC`
	if err := r.db.SelectContext(ctx, &vehicles, query, pq.Array(idStrings(driverIDs))); err != nil {
		return nil, fmt.Errorf("failed to list driver vehicles: %w", err)
	}
	for _, v := range vehicles {
		if d, ok := out[v.DriverID]; ok {
			d.Vehicles = append(d.Vehicles, v)
		}
	}
	return out, nil
}

// CreateDriverProfile promotes the user to driver and stores the profile and optional first vehicle
func (r *UserRepo) CreateDriverProfile(ctx context.Context, profile *models.DriverProfile, vehicle *models.Vehicle) error {
	return database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE user_profiles SET role = $2, updated_at = NOW() WHERE id = $1`,
			profile.UserID, string(models.RoleDriver))
		if err != nil {
			return fmt.Errorf("failed to promote user: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("%w: user %s", models.ErrNotFound, profile.UserID)
		}

		query := `
			INSERT INTO driver_profiles (` + driverColumns + `)
			VALUES (:user_id, :license_number, :rating, :total_trips, :is_online, :created_at, :updated_at)`
		if _, err := tx.NamedExecContext(ctx, query, profile); err != nil {
			if database.IsUniqueViolation(err) {
				return fmt.Errorf("%w: driver profile already exists", models.ErrConflict)
			}
			return fmt.Errorf("failed to insert driver profile: %w", err)
		}

		if vehicle != nil {
			return insertVehicle(ctx, tx, vehicle)
		}
		return nil
	})
}

// GetDriverProfile returns the driver profile of userID with its vehicles
func (r *UserRepo) GetDriverProfile(ctx context.Context, userID uuid.UUID) (*models.DriverProfile, error) {
	profiles, err := r.driverProfiles(ctx, []uuid.UUID{userID})
	if err != nil {
		return nil, err
	}
	profile, ok := profiles[userID]
	if !ok {
		return nil, fmt.Errorf("%w: driver profile %s", models.ErrNotFound, userID)
	}
	return profile, nil
}

// UpdateDriverProfile applies the set fields of update
func (r *UserRepo) UpdateDriverProfile(ctx context.Context, userID uuid.UUID, update models.DriverProfileUpdate) (*models.DriverProfile, error) {
	query := `
		UPDATE driver_profiles SET
			license_number = COALESCE($2, license_number),
			updated_at = NOW()
		WHERE user_id = $1`
	res, err := r.db.ExecContext(ctx, query, userID, update.LicenseNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to update driver profile: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("%w: driver profile %s", models.ErrNotFound, userID)
	}
	return r.GetDriverProfile(ctx, userID)
}

// CreateVehicle registers a vehicle for an existing driver profile
func (r *UserRepo) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	return database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return insertVehicle(ctx, tx, vehicle)
	})
}

func insertVehicle(ctx context.Context, tx *sqlx.Tx, vehicle *models.Vehicle) error {
	var exists bool
	if err := tx.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM driver_profiles WHERE user_id = $1)`, vehicle.DriverID); err != nil {
		return fmt.Errorf("failed to check driver profile: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: driver profile %s", models.ErrNotFound, vehicle.DriverID)
	}

	query := `
		INSERT INTO driver_vehicles (` + vehicleColumns + `)
		VALUES (:id, :driver_id, :make, :model, :year, :color, :license_plate, :is_active, :created_at)`
	if _, err := tx.NamedExecContext(ctx, query, vehicle); err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("%w: license plate is already registered", models.ErrConflict)
		}
		return fmt.Errorf("failed to insert vehicle: %w", err)
	}
	return nil
}

// UpdateVehicle applies the set fields of update to a vehicle owned by driverID
func (r *UserRepo) UpdateVehicle(ctx context.Context, driverID, vehicleID uuid.UUID, update models.VehicleUpdate) (*models.Vehicle, error) {
	query := `
		UPDATE driver_vehicles SET
			make = COALESCE($3, make),
			model = COALESCE($4, model),
			year = COALESCE($5, year),
			color = COALESCE($6, color),
			license_plate = COALESCE($7, license_plate),
			is_active = COALESCE($8, is_active)
		WHERE id = $1 AND driver_id = $2
		RETURNING ` + vehicleColumns

	var vehicle models.Vehicle
	err := r.db.GetContext(ctx, &vehicle, query, vehicleID, driverID,
		update.Make, update.Model, update.Year, update.Color, update.LicensePlate, update.IsActive)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("%w: vehicle %s", models.ErrNotFound, vehicleID)
	case database.IsUniqueViolation(err):
		return nil, fmt.Errorf("%w: license plate is already registered", models.ErrConflict)
	case err != nil:
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}
	return &vehicle, nil
}

// DeleteVehicle removes a vehicle owned by driverID
func (r *UserRepo) DeleteVehicle(ctx context.Context, driverID, vehicleID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM driver_vehicles WHERE id = $1 AND driver_id = $2`, vehicleID, driverID)
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: vehicle %s", models.ErrNotFound, vehicleID)
	}
	return nil
}
