package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/pullup/internal/pkg/appstate"
	"github.com/piresc/pullup/internal/pkg/logger"
	"github.com/piresc/pullup/internal/pkg/metrics"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/internal/utils"
	"github.com/piresc/pullup/services/rides"
	"github.com/piresc/pullup/services/rides/fare"
	"github.com/piresc/pullup/services/rides/lifecycle"
)

const nearbyDriverLimit = 10

var ErrNoDriverAvailable = errors.New("no driver available")

// rideUC implements rides.RideUC
type rideUC struct {
	cfg        *models.Config
	catalog    *fare.Catalog
	rideRepo   rides.RideRepo
	rideGW     rides.RideGW
	dispatcher rides.Dispatcher
	appState   rides.AppState
	now        func() time.Time
}

// NewRideUC creates the ride lifecycle use case
func NewRideUC(
	cfg *models.Config,
	catalog *fare.Catalog,
	rideRepo rides.RideRepo,
	rideGW rides.RideGW,
	dispatcher rides.Dispatcher,
	appState rides.AppState,
) rides.RideUC {
	return &rideUC{
		cfg:        cfg,
		catalog:    catalog,
		rideRepo:   rideRepo,
		rideGW:     rideGW,
		dispatcher: dispatcher,
		appState:   appState,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// RequestRide creates a ride in searching and schedules its driver assignment
func (uc *rideUC) RequestRide(ctx context.Context, caller models.Caller, req models.RideRequest) (*models.Ride, error) {
	if err := validatePlace("pickup", req.Pickup); err != nil {
		return nil, err
	}
	if err := validatePlace("destination", req.Destination); err != nil {
		return nil, err
	}
	estimate, err := uc.catalog.Estimate(req.VehicleClass, *req.Pickup, *req.Destination)
	if err != nil {
		return nil, err
	}

	active, err := uc.rideRepo.GetActiveRideByPassenger(ctx, caller.ID)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("failed to check active ride: %w", err)
	}
	if active != nil {
		return nil, fmt.Errorf("%w: ride %s is still active", models.ErrConflict, active.ID)
	}

	passenger, err := uc.passengerCard(ctx, caller)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	ride := &models.Ride{
		ID:           uuid.New(),
		PassengerID:  caller.ID,
		VehicleClass: req.VehicleClass,
		Status:       models.RideStatusSearching,
		Pickup:       *req.Pickup,
		Destination:  *req.Destination,
		Fare:         estimate,
		Passenger:    *passenger,
		RequestedAt:  now,
		UpdatedAt:    now,
	}
	if err := uc.rideRepo.CreateRide(ctx, ride); err != nil {
		if errors.Is(err, models.ErrActiveRideExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create ride: %w", err)
	}
	metrics.RideTransitionsTotal.WithLabelValues("", string(ride.Status)).Inc()

	uc.dispatchState(ctx, caller.ID, appstate.ActivateRide(ride.ID))
	uc.publishUpdated(ctx, ride, "")

	rideID := ride.ID
	uc.dispatcher.Schedule(rideID, func(ctx context.Context) error {
		_, err := uc.AssignDriver(ctx, rideID)
		return err
	})

	logger.Info("Ride requested",
		logger.String("ride_id", ride.ID.String()),
		logger.String("passenger_id", caller.ID.String()),
		logger.String("vehicle_class", ride.VehicleClass),
		logger.Float64("fare_total", ride.Fare.Total))
	return ride, nil
}

// GetRide returns a ride to its passenger or driver
func (uc *rideUC) GetRide(ctx context.Context, caller models.Caller, rideID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if !isParticipant(ride, caller.ID) {
		return nil, fmt.Errorf("%w: not a participant of this ride", models.ErrForbidden)
	}
	return ride, nil
}

// GetActiveRide returns the ride the caller is currently part of
func (uc *rideUC) GetActiveRide(ctx context.Context, caller models.Caller) (*models.Ride, error) {
	st, err := uc.appState.Get(ctx, caller.ID)
	if err != nil {
		logger.Warn("Failed to read app state, falling back to ride lookup",
			logger.String("user_id", caller.ID.String()),
			logger.Err(err))
	} else if st.ActiveRideID != nil {
		ride, err := uc.rideRepo.GetRide(ctx, *st.ActiveRideID)
		if err == nil && lifecycle.IsActive(ride.Status) && isParticipant(ride, caller.ID) {
			return ride, nil
		}
		if err != nil && !errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
	}

	lookups := []func(context.Context, uuid.UUID) (*models.Ride, error){
		uc.rideRepo.GetActiveRideByPassenger,
		uc.rideRepo.GetActiveRideByDriver,
	}
	if st.Mode == models.ModeDriver {
		lookups[0], lookups[1] = lookups[1], lookups[0]
	}
	for _, lookup := range lookups {
		ride, err := lookup(ctx, caller.ID)
		if err == nil {
			return ride, nil
		}
		if !errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: no active ride", models.ErrNotFound)
}

// AssignDriver gives a searching ride its driver. Called by the dispatch simulator.
func (uc *rideUC) AssignDriver(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if _, err := lifecycle.Next(ride.Status, lifecycle.AssignDriver); err != nil {
		return nil, err
	}

	driver, demo, err := uc.pickDriver(ctx, ride)
	if err != nil {
		return nil, err
	}

	searching := *ride
	err = uc.assign(ctx, ride, driver, demo)
	if errors.Is(err, models.ErrDriverBusy) && !demo {
		logger.Warn("Driver taken by another ride, using demo roster",
			logger.String("ride_id", ride.ID.String()),
			logger.String("driver_id", driver.ID.String()))
		*ride = searching
		if driver, err = uc.nearestDemoDriver(ride); err != nil {
			return nil, err
		}
		demo = true
		err = uc.assign(ctx, ride, driver, demo)
	}
	if err != nil {
		return nil, err
	}
	if !demo {
		uc.dispatchState(ctx, driver.ID, appstate.ActivateRide(ride.ID))
	}

	logger.Info("Driver assigned",
		logger.String("ride_id", ride.ID.String()),
		logger.String("driver_id", driver.ID.String()),
		logger.Bool("demo_driver", demo))
	return ride, nil
}

func (uc *rideUC) assign(ctx context.Context, ride *models.Ride, driver *models.DriverCard, demo bool) error {
	ride.DriverID = &driver.ID
	ride.Driver = driver
	ride.DemoDriver = demo
	return uc.transition(ctx, ride, lifecycle.AssignDriver)
}

// ArrivedAtPickup marks the driver as waiting at the pickup
func (uc *rideUC) ArrivedAtPickup(ctx context.Context, caller models.Caller, rideID uuid.UUID) (*models.Ride, error) {
	return uc.driverAction(ctx, caller, rideID, lifecycle.ArriveAtPickup)
}

// StartTrip starts the trip once the passenger is on board
func (uc *rideUC) StartTrip(ctx context.Context, caller models.Caller, rideID uuid.UUID) (*models.Ride, error) {
	return uc.driverAction(ctx, caller, rideID, lifecycle.StartTrip)
}

// CompleteTrip ends the trip, settles the wallet through ride.completed and frees both users
func (uc *rideUC) CompleteTrip(ctx context.Context, caller models.Caller, rideID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.driverAction(ctx, caller, rideID, lifecycle.CompleteTrip)
	if err != nil {
		return nil, err
	}

	event := models.RideCompletedEvent{
		RideID:         ride.ID,
		PassengerID:    ride.PassengerID,
		DriverID:       *ride.DriverID,
		Destination:    ride.Destination.Address,
		Fare:           ride.Fare,
		DriverEarnings: fare.DriverEarnings(ride.Fare.Total, uc.cfg.Rides.CommissionRate),
		CompletedAt:    *ride.CompletedAt,
	}
	if err := uc.rideGW.PublishRideCompleted(ctx, event); err != nil {
		logger.Error("Failed to publish ride completed event",
			logger.String("ride_id", ride.ID.String()),
			logger.Err(err))
	}

	uc.releaseParticipants(ctx, ride)
	return ride, nil
}

// CancelRide cancels a ride that has not started yet
func (uc *rideUC) CancelRide(ctx context.Context, caller models.Caller, rideID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.GetRide(ctx, caller, rideID)
	if err != nil {
		return nil, err
	}

	if err := uc.transition(ctx, ride, lifecycle.Cancel); err != nil {
		return nil, err
	}
	uc.dispatcher.Cancel(ride.ID)
	uc.releaseParticipants(ctx, ride)

	logger.Info("Ride cancelled",
		logger.String("ride_id", ride.ID.String()),
		logger.String("cancelled_by", caller.ID.String()),
		logger.Bool("fee_warning", ride.CancellationFeeWarning))
	return ride, nil
}

// EstimateFares prices the route for every vehicle class
func (uc *rideUC) EstimateFares(ctx context.Context, pickup, destination models.Place) ([]models.FareQuote, error) {
	if err := validatePlace("pickup", &pickup); err != nil {
		return nil, err
	}
	if err := validatePlace("destination", &destination); err != nil {
		return nil, err
	}
	return uc.catalog.Quotes(pickup, destination), nil
}

// ListVehicleClasses returns the bookable vehicle classes
func (uc *rideUC) ListVehicleClasses() []models.VehicleClass {
	classes := make([]models.VehicleClass, len(uc.catalog.VehicleClasses))
	copy(classes, uc.catalog.VehicleClasses)
	return classes
}

func (uc *rideUC) driverAction(ctx context.Context, caller models.Caller, rideID uuid.UUID, ev lifecycle.Event) (*models.Ride, error) {
	ride, err := uc.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if !canActAsDriver(uc.catalog, ride, caller) {
		return nil, fmt.Errorf("%w: only the assigned driver can do this", models.ErrForbidden)
	}
	if err := uc.transition(ctx, ride, ev); err != nil {
		return nil, err
	}
	return ride, nil
}

// canActAsDriver allows the assigned driver, and the passenger when the driver
// is a placeholder from the demo roster that no real account controls
func canActAsDriver(catalog *fare.Catalog, ride *models.Ride, caller models.Caller) bool {
	if ride.DriverID == nil {
		return false
	}
	if *ride.DriverID == caller.ID {
		return true
	}
	_, demo := catalog.DemoDriver(*ride.DriverID)
	return demo && ride.PassengerID == caller.ID
}

func (uc *rideUC) transition(ctx context.Context, ride *models.Ride, ev lifecycle.Event) error {
	from := ride.Status
	if err := lifecycle.Apply(ride, ev, uc.now()); err != nil {
		return err
	}
	if err := uc.rideRepo.UpdateRide(ctx, ride, from); err != nil {
		return fmt.Errorf("failed to save ride: %w", err)
	}
	metrics.RideTransitionsTotal.WithLabelValues(string(from), string(ride.Status)).Inc()
	uc.publishUpdated(ctx, ride, from)
	return nil
}

func (uc *rideUC) publishUpdated(ctx context.Context, ride *models.Ride, from models.RideStatus) {
	event := models.RideEvent{Ride: *ride, Previous: from, Timestamp: ride.UpdatedAt}
	if err := uc.rideGW.PublishRideUpdated(ctx, event); err != nil {
		logger.Warn("Failed to publish ride update",
			logger.String("ride_id", ride.ID.String()),
			logger.String("status", string(ride.Status)),
			logger.Err(err))
	}
}

func (uc *rideUC) releaseParticipants(ctx context.Context, ride *models.Ride) {
	uc.dispatchState(ctx, ride.PassengerID, appstate.ClearRide(ride.ID))
	if ride.DriverID != nil {
		if _, demo := uc.catalog.DemoDriver(*ride.DriverID); !demo {
			uc.dispatchState(ctx, *ride.DriverID, appstate.ClearRide(ride.ID))
		}
	}
}

// dispatchState applies a checkpoint; the ride row stays the source of truth when it fails
func (uc *rideUC) dispatchState(ctx context.Context, userID uuid.UUID, action appstate.Action) {
	if _, err := uc.appState.Dispatch(ctx, userID, action); err != nil {
		logger.Warn("Failed to update app state",
			logger.String("user_id", userID.String()),
			logger.String("action", string(action.Type)),
			logger.Err(err))
	}
}

// pickDriver returns the nearest free online driver, or the nearest demo roster driver
func (uc *rideUC) pickDriver(ctx context.Context, ride *models.Ride) (*models.DriverCard, bool, error) {
	nearby, err := uc.rideRepo.FindNearbyDrivers(ctx, ride.Pickup, uc.cfg.Rides.SearchRadiusKm, nearbyDriverLimit)
	if err != nil {
		logger.Warn("Nearby driver lookup failed, using demo roster",
			logger.String("ride_id", ride.ID.String()),
			logger.Err(err))
	}

	if len(nearby) > 0 {
		if card := uc.firstFreeDriver(ctx, ride, nearby); card != nil {
			return card, false, nil
		}
	}

	card, err := uc.nearestDemoDriver(ride)
	if err != nil {
		return nil, false, err
	}
	return card, true, nil
}

func (uc *rideUC) nearestDemoDriver(ride *models.Ride) (*models.DriverCard, error) {
	var best *fare.DemoDriver
	bestKm := math.MaxFloat64
	pickup := utils.GeoPointFromPlace(ride.Pickup)
	for i := range uc.catalog.DemoDrivers {
		d := &uc.catalog.DemoDrivers[i]
		km := utils.CalculateDistance(pickup, utils.GeoPoint{Latitude: d.Latitude, Longitude: d.Longitude})
		if km < bestKm {
			best, bestKm = d, km
		}
	}
	if best == nil {
		return nil, ErrNoDriverAvailable
	}
	return best.Card(), nil
}

func (uc *rideUC) firstFreeDriver(ctx context.Context, ride *models.Ride, nearby []models.NearbyDriver) *models.DriverCard {
	ids := make([]uuid.UUID, 0, len(nearby))
	for _, d := range nearby {
		if d.UserID != ride.PassengerID {
			ids = append(ids, d.UserID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	busy, err := uc.rideRepo.ListBusyDrivers(ctx, ids)
	if err != nil {
		logger.Warn("Busy driver lookup failed", logger.String("ride_id", ride.ID.String()), logger.Err(err))
		return nil
	}
	taken := make(map[uuid.UUID]bool, len(busy))
	for _, id := range busy {
		taken[id] = true
	}

	for _, d := range nearby {
		if taken[d.UserID] || d.UserID == ride.PassengerID {
			continue
		}
		card, err := uc.rideRepo.GetDriverCard(ctx, d.UserID)
		if err != nil {
			logger.Warn("Skipping driver without card",
				logger.String("driver_id", d.UserID.String()),
				logger.Err(err))
			continue
		}
		card.Location = &models.Place{Latitude: d.Latitude, Longitude: d.Longitude}
		return card
	}
	return nil
}

func (uc *rideUC) passengerCard(ctx context.Context, caller models.Caller) (*models.PassengerCard, error) {
	card, err := uc.rideRepo.GetPassengerCard(ctx, caller.ID)
	if err == nil {
		return card, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("failed to load passenger: %w", err)
	}
	return &models.PassengerCard{ID: caller.ID, Name: caller.Name, Phone: caller.Phone}, nil
}

func isParticipant(ride *models.Ride, userID uuid.UUID) bool {
	return ride.PassengerID == userID || (ride.DriverID != nil && *ride.DriverID == userID)
}

func validatePlace(field string, p *models.Place) error {
	if p == nil {
		return models.NewValidationError(field, "is required")
	}
	if !utils.ValidCoordinates(p.Latitude, p.Longitude) {
		return models.NewValidationError(field, "coordinates are out of range")
	}
	if strings.TrimSpace(p.Address) == "" {
		return models.NewValidationError(field, "address is required")
	}
	return nil
}
