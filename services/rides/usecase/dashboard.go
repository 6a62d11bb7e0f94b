package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/piresc/pullup/internal/pkg/logger"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/services/rides/projection"
)

// RiderDashboard assembles the rider landing page. at is the rider position, when known.
func (uc *rideUC) RiderDashboard(ctx context.Context, caller models.Caller, at *models.Place) (*projection.RiderDashboard, error) {
	st, err := uc.appState.Get(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load app state: %w", err)
	}

	dash := &projection.RiderDashboard{
		Mode:           st.Mode,
		VehicleClasses: uc.ListVehicleClasses(),
		NearbyDrivers:  uc.nearbyDriverCards(ctx, at),
	}

	ride, err := uc.rideRepo.GetActiveRideByPassenger(ctx, caller.ID)
	switch {
	case err == nil:
		view := projection.Rider(*ride)
		dash.ActiveRide = &view
	case !errors.Is(err, models.ErrNotFound):
		return nil, err
	}
	return dash, nil
}

// DriverDashboard assembles the driver landing page
func (uc *rideUC) DriverDashboard(ctx context.Context, caller models.Caller) (*projection.DriverDashboard, error) {
	st, err := uc.appState.Get(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load app state: %w", err)
	}

	online, err := uc.rideRepo.IsDriverOnline(ctx, caller.ID)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	dash := &projection.DriverDashboard{Mode: st.Mode, IsOnline: online}

	ride, err := uc.rideRepo.GetActiveRideByDriver(ctx, caller.ID)
	switch {
	case err == nil:
		view := projection.Driver(*ride, uc.cfg.Rides.CommissionRate)
		dash.ActiveRide = &view
	case !errors.Is(err, models.ErrNotFound):
		return nil, err
	}

	now := uc.now()
	since := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if weekAgo := now.AddDate(0, 0, -7); weekAgo.Before(since) {
		since = weekAgo
	}
	completed, err := uc.rideRepo.ListCompletedRidesByDriver(ctx, caller.ID, since)
	if err != nil {
		return nil, err
	}
	dash.Earnings = projection.SummarizeEarnings(completed, uc.cfg.Rides.CommissionRate, now)
	return dash, nil
}

// nearbyDriverCards lists online drivers around at, or the demo roster when none is known
func (uc *rideUC) nearbyDriverCards(ctx context.Context, at *models.Place) []models.DriverCard {
	cards := []models.DriverCard{}
	if at != nil {
		nearby, err := uc.rideRepo.FindNearbyDrivers(ctx, *at, uc.cfg.Rides.SearchRadiusKm, nearbyDriverLimit)
		if err != nil {
			logger.Warn("Nearby driver lookup failed", logger.Err(err))
		}
		for _, d := range nearby {
			card, err := uc.rideRepo.GetDriverCard(ctx, d.UserID)
			if err != nil {
				continue
			}
			card.IsOnline = true
			card.Location = &models.Place{Latitude: d.Latitude, Longitude: d.Longitude}
			cards = append(cards, *card)
		}
	}
	if len(cards) > 0 {
		return cards
	}
	for _, d := range uc.catalog.DemoDrivers {
		cards = append(cards, *d.Card())
	}
	return cards
}
