package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/pullup/internal/pkg/constants"
	"github.com/piresc/pullup/internal/pkg/database"
	"github.com/piresc/pullup/internal/pkg/logger"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/services/rides"
)

const rideColumns = `
	id, passenger_id, driver_id, vehicle_class, status,
	pickup_address, pickup_latitude, pickup_longitude,
	destination_address, destination_latitude, destination_longitude,
	base_fare, distance_fare, time_fare, service_fee, total_fare, currency, distance_km, duration_min,
	passenger_snapshot, driver_snapshot, demo_driver, cancellation_fee_warning,
	requested_at, assigned_at, arrived_at, started_at, completed_at, cancelled_at, updated_at`

// Partial unique indexes on unfinished rides
const (
	activePassengerIndex = "uq_rides_active_passenger"
	activeDriverIndex    = "uq_rides_active_driver"
)

var activeStatuses = []string{
	string(models.RideStatusSearching),
	string(models.RideStatusDriverAssigned),
	string(models.RideStatusArrived),
	string(models.RideStatusInProgress),
}

// rideRow is the flat rides table layout
type rideRow struct {
	ID                   uuid.UUID  `db:"id"`
	PassengerID          uuid.UUID  `db:"passenger_id"`
	DriverID             *uuid.UUID `db:"driver_id"`
	VehicleClass         string     `db:"vehicle_class"`
	Status               string     `db:"status"`
	PickupAddress        string     `db:"pickup_address"`
	PickupLatitude       float64    `db:"pickup_latitude"`
	PickupLongitude      float64    `db:"pickup_longitude"`
	DestinationAddress   string     `db:"destination_address"`
	DestinationLatitude  float64    `db:"destination_latitude"`
	DestinationLongitude float64    `db:"destination_longitude"`
	BaseFare             float64    `db:"base_fare"`
	DistanceFare         float64    `db:"distance_fare"`
	TimeFare             float64    `db:"time_fare"`
	ServiceFee           float64    `db:"service_fee"`
	TotalFare            float64    `db:"total_fare"`
	Currency             string     `db:"currency"`
	DistanceKm           float64    `db:"distance_km"`
	DurationMin          int        `db:"duration_min"`
	PassengerSnapshot    []byte     `db:"passenger_snapshot"`
	DriverSnapshot       []byte     `db:"driver_snapshot"`
	DemoDriver           bool       `db:"demo_driver"`
	CancellationFee      bool       `db:"cancellation_fee_warning"`
	RequestedAt          time.Time  `db:"requested_at"`
	AssignedAt           *time.Time `db:"assigned_at"`
	ArrivedAt            *time.Time `db:"arrived_at"`
	StartedAt            *time.Time `db:"started_at"`
	CompletedAt          *time.Time `db:"completed_at"`
	CancelledAt          *time.Time `db:"cancelled_at"`
	UpdatedAt            time.Time  `db:"updated_at"`
}

func toRow(r *models.Ride) (*rideRow, error) {
	passenger, err := json.Marshal(r.Passenger)
	if err != nil {
		return nil, fmt.Errorf("failed to encode passenger snapshot: %w", err)
	}
	var driver []byte
	if r.Driver != nil {
		if driver, err = json.Marshal(r.Driver); err != nil {
			return nil, fmt.Errorf("failed to encode driver snapshot: %w", err)
		}
	}
	return &rideRow{
		ID:                   r.ID,
		PassengerID:          r.PassengerID,
		DriverID:             r.DriverID,
		VehicleClass:         r.VehicleClass,
		Status:               string(r.Status),
		PickupAddress:        r.Pickup.Address,
		PickupLatitude:       r.Pickup.Latitude,
		PickupLongitude:      r.Pickup.Longitude,
		DestinationAddress:   r.Destination.Address,
		DestinationLatitude:  r.Destination.Latitude,
		DestinationLongitude: r.Destination.Longitude,
		BaseFare:             r.Fare.BaseFare,
		DistanceFare:         r.Fare.DistanceFare,
		TimeFare:             r.Fare.TimeFare,
		ServiceFee:           r.Fare.ServiceFee,
		TotalFare:            r.Fare.Total,
		Currency:             r.Fare.Currency,
		DistanceKm:           r.Fare.DistanceKm,
		DurationMin:          r.Fare.DurationMin,
		PassengerSnapshot:    passenger,
		DriverSnapshot:       driver,
		DemoDriver:           r.DemoDriver,
		CancellationFee:      r.CancellationFeeWarning,
		RequestedAt:          r.RequestedAt,
		AssignedAt:           r.AssignedAt,
		ArrivedAt:            r.ArrivedAt,
		StartedAt:            r.StartedAt,
		CompletedAt:          r.CompletedAt,
		CancelledAt:          r.CancelledAt,
		UpdatedAt:            r.UpdatedAt,
	}, nil
}

func (row *rideRow) toModel() (*models.Ride, error) {
	ride := &models.Ride{
		ID:           row.ID,
		PassengerID:  row.PassengerID,
		DriverID:     row.DriverID,
		VehicleClass: row.VehicleClass,
		Status:       models.RideStatus(row.Status),
		Pickup: models.Place{
			Address:   row.PickupAddress,
			Latitude:  row.PickupLatitude,
			Longitude: row.PickupLongitude,
		},
		Destination: models.Place{
			Address:   row.DestinationAddress,
			Latitude:  row.DestinationLatitude,
			Longitude: row.DestinationLongitude,
		},
		Fare: models.FareBreakdown{
			BaseFare:     row.BaseFare,
			DistanceFare: row.DistanceFare,
			TimeFare:     row.TimeFare,
			ServiceFee:   row.ServiceFee,
			Total:        row.TotalFare,
			Currency:     row.Currency,
			DistanceKm:   row.DistanceKm,
			DurationMin:  row.DurationMin,
		},
		DemoDriver:             row.DemoDriver,
		CancellationFeeWarning: row.CancellationFee,
		RequestedAt:            row.RequestedAt,
		AssignedAt:             row.AssignedAt,
		ArrivedAt:              row.ArrivedAt,
		StartedAt:              row.StartedAt,
		CompletedAt:            row.CompletedAt,
		CancelledAt:            row.CancelledAt,
		UpdatedAt:              row.UpdatedAt,
	}
	if len(row.PassengerSnapshot) > 0 {
		if err := json.Unmarshal(row.PassengerSnapshot, &ride.Passenger); err != nil {
			return nil, fmt.Errorf("failed to decode passenger snapshot: %w", err)
		}
	}
	if len(row.DriverSnapshot) > 0 {
		ride.Driver = &models.DriverCard{}
		if err := json.Unmarshal(row.DriverSnapshot, ride.Driver); err != nil {
			return nil, fmt.Errorf("failed to decode driver snapshot: %w", err)
		}
	}
	return ride, nil
}

// RideRepo stores rides in PostgreSQL and reads driver proximity from Redis
type RideRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewRideRepository creates a new ride repository
func NewRideRepository(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) rides.RideRepo {
	return &RideRepo{cfg: cfg, db: db, redisClient: redisClient}
}

// CreateRide inserts a new ride
func (r *RideRepo) CreateRide(ctx context.Context, ride *models.Ride) error {
	row, err := toRow(ride)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO rides (` + rideColumns + `
		) VALUES (
			:id, :passenger_id, :driver_id, :vehicle_class, :status,
			:pickup_address, :pickup_latitude, :pickup_longitude,
			:destination_address, :destination_latitude, :destination_longitude,
			:base_fare, :distance_fare, :time_fare, :service_fee, :total_fare, :currency, :distance_km, :duration_min,
			:passenger_snapshot, :driver_snapshot, :demo_driver, :cancellation_fee_warning,
			:requested_at, :assigned_at, :arrived_at, :started_at, :completed_at, :cancelled_at, :updated_at
		)`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		if database.IsUniqueViolation(err) {
			return uniqueRideError(err, ride)
		}
		return fmt.Errorf("failed to insert ride: %w", err)
	}
	return nil
}

// GetRide retrieves a ride by ID
func (r *RideRepo) GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	return r.getOne(ctx, `SELECT `+rideColumns+` FROM rides WHERE id = $1`, rideID)
}

// UpdateRide saves the mutable fields of ride while its stored status is still from.
// A concurrent change of the status surfaces as ErrConflict, and assigning a real
// driver who already has an unfinished ride as ErrDriverBusy.
func (r *RideRepo) UpdateRide(ctx context.Context, ride *models.Ride, from models.RideStatus) error {
	row, err := toRow(ride)
	if err != nil {
		return err
	}

	query := `
		UPDATE rides SET
			driver_id = $1, status = $2, driver_snapshot = $3, demo_driver = $4, cancellation_fee_warning = $5,
			assigned_at = $6, arrived_at = $7, started_at = $8, completed_at = $9, cancelled_at = $10,
			updated_at = $11
		WHERE id = $12 AND status = $13`
	res, err := r.db.ExecContext(ctx, query,
		row.DriverID, row.Status, row.DriverSnapshot, row.DemoDriver, row.CancellationFee,
		row.AssignedAt, row.ArrivedAt, row.StartedAt, row.CompletedAt, row.CancelledAt,
		row.UpdatedAt,
		row.ID, string(from),
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return uniqueRideError(err, ride)
		}
		return fmt.Errorf("failed to update ride: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update ride: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: ride %s is no longer %s", models.ErrConflict, ride.ID, from)
	}
	return nil
}

func uniqueRideError(err error, ride *models.Ride) error {
	switch database.ViolatedConstraint(err) {
	case activePassengerIndex:
		return fmt.Errorf("%w: %s", models.ErrActiveRideExists, ride.PassengerID)
	case activeDriverIndex:
		return fmt.Errorf("%w: %s", models.ErrDriverBusy, ride.DriverID)
	default:
		return fmt.Errorf("%w: ride %s already exists", models.ErrConflict, ride.ID)
	}
}

// GetActiveRideByPassenger returns the unfinished ride requested by passengerID
func (r *RideRepo) GetActiveRideByPassenger(ctx context.Context, passengerID uuid.UUID) (*models.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides
		WHERE passenger_id = $1 AND status = ANY($2)
		ORDER BY requested_at DESC LIMIT 1`
	return r.getOne(ctx, query, passengerID, pq.Array(activeStatuses))
}

// GetActiveRideByDriver returns the unfinished ride assigned to driverID
func (r *RideRepo) GetActiveRideByDriver(ctx context.Context, driverID uuid.UUID) (*models.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides
		WHERE driver_id = $1 AND status = ANY($2)
		ORDER BY requested_at DESC LIMIT 1`
	return r.getOne(ctx, query, driverID, pq.Array(activeStatuses))
}

// ListCompletedRidesByDriver returns the trips driverID completed since, newest first
func (r *RideRepo) ListCompletedRidesByDriver(ctx context.Context, driverID uuid.UUID, since time.Time) ([]models.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides
		WHERE driver_id = $1 AND status = $2 AND completed_at >= $3
		ORDER BY completed_at DESC`

	var rows []rideRow
	if err := r.db.SelectContext(ctx, &rows, query, driverID, string(models.RideStatusCompleted), since); err != nil {
		return nil, fmt.Errorf("failed to list completed rides: %w", err)
	}

	out := make([]models.Ride, 0, len(rows))
	for i := range rows {
		ride, err := rows[i].toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, *ride)
	}
	return out, nil
}

// ListBusyDrivers returns which of driverIDs already have an unfinished ride
func (r *RideRepo) ListBusyDrivers(ctx context.Context, driverIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(driverIDs) == 0 {
		return nil, nil
	}
	ids := make([]string, len(driverIDs))
	for i, id := range driverIDs {
		ids[i] = id.String()
	}

	var busy []uuid.UUID
	query := `SELECT DISTINCT driver_id FROM rides WHERE driver_id = ANY($1::uuid[]) AND status = ANY($2)`
	if err := r.db.SelectContext(ctx, &busy, query, pq.Array(ids), pq.Array(activeStatuses)); err != nil {
		return nil, fmt.Errorf("failed to list busy drivers: %w", err)
	}
	return busy, nil
}

// FindNearbyDrivers returns online drivers around at, nearest first
func (r *RideRepo) FindNearbyDrivers(ctx context.Context, at models.Place, radiusKm float64, limit int) ([]models.NearbyDriver, error) {
	locations, err := r.redisClient.GeoRadius(ctx, constants.KeyDriverGeo, at.Longitude, at.Latitude, radiusKm, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby drivers: %w", err)
	}

	drivers := make([]models.NearbyDriver, 0, len(locations))
	for _, loc := range locations {
		id, err := uuid.Parse(loc.Name)
		if err != nil {
			logger.Warn("Ignoring malformed driver geo member", logger.String("member", loc.Name))
			continue
		}
		drivers = append(drivers, models.NearbyDriver{
			UserID:     id,
			Latitude:   loc.Latitude,
			Longitude:  loc.Longitude,
			DistanceKm: loc.Dist,
		})
		if limit > 0 && len(drivers) == limit {
			break
		}
	}
	return drivers, nil
}

type driverCardRow struct {
	ID           uuid.UUID       `db:"id"`
	FullName     string          `db:"full_name"`
	Phone        string          `db:"phone"`
	Rating       float64         `db:"rating"`
	TotalTrips   int             `db:"total_trips"`
	IsOnline     bool            `db:"is_online"`
	VehicleID    *uuid.UUID      `db:"vehicle_id"`
	Make         sql.NullString  `db:"make"`
	Model        sql.NullString  `db:"model"`
	Year         sql.NullInt64   `db:"year"`
	Color        sql.NullString  `db:"color"`
	LicensePlate sql.NullString  `db:"license_plate"`
	Latitude     sql.NullFloat64 `db:"latitude"`
	Longitude    sql.NullFloat64 `db:"longitude"`
	Address      sql.NullString  `db:"address"`
}

// GetDriverCard builds the rider-facing card of a driver from their profile, active vehicle and last location
func (r *RideRepo) GetDriverCard(ctx context.Context, driverID uuid.UUID) (*models.DriverCard, error) {
	query := `
		SELECT u.id, u.full_name, u.phone, d.rating, d.total_trips, d.is_online,
			v.id AS vehicle_id, v.make, v.model, v.year, v.color, v.license_plate,
			l.latitude, l.longitude, l.address
		FROM user_profiles u
		JOIN driver_profiles d ON d.user_id = u.id
		LEFT JOIN driver_vehicles v ON v.driver_id = u.id AND v.is_active
		LEFT JOIN user_locations l ON l.user_id = u.id
		WHERE u.id = $1
		ORDER BY v.created_at DESC NULLS LAST
		LIMIT 1`

	var row driverCardRow
	if err := r.db.GetContext(ctx, &row, query, driverID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: driver %s", models.ErrNotFound, driverID)
		}
		return nil, fmt.Errorf("failed to get driver card: %w", err)
	}

	card := &models.DriverCard{
		ID:         row.ID,
		Name:       row.FullName,
		Phone:      row.Phone,
		Rating:     row.Rating,
		TotalTrips: row.TotalTrips,
		IsOnline:   row.IsOnline,
		Vehicle: models.Vehicle{
			DriverID:     row.ID,
			Make:         row.Make.String,
			Model:        row.Model.String,
			Year:         int(row.Year.Int64),
			Color:        row.Color.String,
			LicensePlate: row.LicensePlate.String,
			IsActive:     row.VehicleID != nil,
		},
	}
	if row.VehicleID != nil {
		card.Vehicle.ID = *row.VehicleID
	}
	if row.Latitude.Valid && row.Longitude.Valid {
		card.Location = &models.Place{
			Address:   row.Address.String,
			Latitude:  row.Latitude.Float64,
			Longitude: row.Longitude.Float64,
		}
	}
	return card, nil
}

// GetPassengerCard returns the driver-facing card of a passenger
func (r *RideRepo) GetPassengerCard(ctx context.Context, userID uuid.UUID) (*models.PassengerCard, error) {
	var card models.PassengerCard
	query := `SELECT id, full_name, phone FROM user_profiles WHERE id = $1`
	if err := r.db.QueryRowxContext(ctx, query, userID).Scan(&card.ID, &card.Name, &card.Phone); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: user %s", models.ErrNotFound, userID)
		}
		return nil, fmt.Errorf("failed to get passenger card: %w", err)
	}
	return &card, nil
}

// IsDriverOnline reports the availability toggle of a driver; users without a driver profile are offline
func (r *RideRepo) IsDriverOnline(ctx context.Context, driverID uuid.UUID) (bool, error) {
	var online bool
	err := r.db.GetContext(ctx, &online, `SELECT is_online FROM driver_profiles WHERE user_id = $1`, driverID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read driver availability: %w", err)
	}
	return online, nil
}

func (r *RideRepo) getOne(ctx context.Context, query string, args ...interface{}) (*models.Ride, error) {
	var row rideRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: ride", models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}
	return row.toModel()
}
