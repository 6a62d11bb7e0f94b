package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/pullup/internal/pkg/constants"
	"github.com/piresc/pullup/internal/pkg/database"
	"github.com/piresc/pullup/internal/pkg/models"
)

const locationColumns = `user_id, user_type, latitude, longitude, address, heading, geohash, is_online, last_updated`

// UpsertLocation stores the last position of a user. The online flag of an
// existing row is owned by the driver toggle and is only read back.
func (r *UserRepo) UpsertLocation(ctx context.Context, location *models.UserLocation) error {
	query := `
		INSERT INTO user_locations (` + locationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id) DO UPDATE SET
			user_type = EXCLUDED.user_type,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			address = EXCLUDED.address,
			heading = EXCLUDED.heading,
			geohash = EXCLUDED.geohash,
			last_updated = EXCLUDED.last_updated
		RETURNING is_online`

	err := r.db.QueryRowxContext(ctx, query,
		location.UserID, string(location.UserType), location.Latitude, location.Longitude,
		location.Address, location.Heading, location.Geohash, location.IsOnline, location.LastUpdated,
	).Scan(&location.IsOnline)
	if err != nil {
		return fmt.Errorf("failed to upsert location: %w", err)
	}
	return nil
}

// FindNearbyDrivers runs the get_nearby_drivers database function
func (r *UserRepo) FindNearbyDrivers(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.NearbyDriver, error) {
	drivers := []models.NearbyDriver{}
	query := `
		SELECT user_id, full_name, rating, latitude, longitude, distance_km
		FROM get_nearby_drivers($1, $2, $3)`
	if err := r.db.SelectContext(ctx, &drivers, query, latitude, longitude, radiusKm); err != nil {
		return nil, fmt.Errorf("failed to find nearby drivers: %w", err)
	}
	return drivers, nil
}

// SetDriverOnline flips the availability of a driver. The returned location is
// nil when the driver never reported one.
func (r *UserRepo) SetDriverOnline(ctx context.Context, userID uuid.UUID, isOnline bool) (*models.UserLocation, error) {
	var location *models.UserLocation
	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE driver_profiles SET is_online = $2, updated_at = NOW() WHERE user_id = $1`,
			userID, isOnline)
		if err != nil {
			return fmt.Errorf("failed to update driver availability: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("%w: driver profile %s", models.ErrNotFound, userID)
		}

		var loc models.UserLocation
		query := `UPDATE user_locations SET is_online = $2 WHERE user_id = $1 RETURNING ` + locationColumns
		err = tx.GetContext(ctx, &loc, query, userID, isOnline)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to update location availability: %w", err)
		}
		location = &loc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return location, nil
}

// IndexDriverLocation places the driver in the shared GEO index used by dispatch
func (r *UserRepo) IndexDriverLocation(ctx context.Context, userID uuid.UUID, latitude, longitude float64) error {
	if err := r.redisClient.GeoAdd(ctx, constants.KeyDriverGeo, longitude, latitude, userID.String()); err != nil {
		return fmt.Errorf("failed to index driver location: %w", err)
	}
	return nil
}

// RemoveDriverLocation drops the driver from the GEO index
func (r *UserRepo) RemoveDriverLocation(ctx context.Context, userID uuid.UUID) error {
	if err := r.redisClient.GeoRemove(ctx, constants.KeyDriverGeo, userID.String()); err != nil {
		return fmt.Errorf("failed to remove driver location: %w", err)
	}
	return nil
}
