package projection

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/internal/utils"
	"github.com/piresc/pullup/services/rides/fare"
)

const recentTripsLimit = 3

// RiderDashboard is the landing page of rider mode
type RiderDashboard struct {
	Mode           models.Mode           `json:"mode"`
	ActiveRide     *RiderView            `json:"active_ride,omitempty"`
	VehicleClasses []models.VehicleClass `json:"vehicle_classes"`
	NearbyDrivers  []models.DriverCard   `json:"nearby_drivers"`
}

// DriverDashboard is the landing page of driver mode
type DriverDashboard struct {
	Mode       models.Mode     `json:"mode"`
	IsOnline   bool            `json:"is_online"`
	ActiveRide *DriverView     `json:"active_ride,omitempty"`
	Earnings   EarningsSummary `json:"earnings"`
}

// TripEarning is one completed trip in the earnings tracker
type TripEarning struct {
	RideID      uuid.UUID `json:"ride_id"`
	Destination string    `json:"destination"`
	CompletedAt time.Time `json:"completed_at"`
	DistanceKm  float64   `json:"distance_km"`
	Earnings    float64   `json:"earnings"`
}

// EarningsSummary aggregates driver earnings over completed rides
type EarningsSummary struct {
	Today          float64       `json:"today"`
	Week           float64       `json:"week"`
	Month          float64       `json:"month"`
	TripsToday     int           `json:"trips_today"`
	TripsCompleted int           `json:"trips_completed"`
	RecentTrips    []TripEarning `json:"recent_trips"`
}

// SummarizeEarnings totals the driver share of completed rides. Today and month are
// calendar periods in now's location; week is the last seven days.
func SummarizeEarnings(rides []models.Ride, commissionRate float64, now time.Time) EarningsSummary {
	s := EarningsSummary{RecentTrips: []TripEarning{}}

	y, m, d := now.Date()
	startOfDay := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	weekAgo := now.AddDate(0, 0, -7)

	trips := make([]TripEarning, 0, len(rides))
	for _, r := range rides {
		if r.Status != models.RideStatusCompleted || r.CompletedAt == nil {
			continue
		}
		at := r.CompletedAt.In(now.Location())
		earned := fare.DriverEarnings(r.Fare.Total, commissionRate)

		s.TripsCompleted++
		if !at.Before(startOfDay) {
			s.Today += earned
			s.TripsToday++
		}
		if at.After(weekAgo) {
			s.Week += earned
		}
		if ay, am, _ := at.Date(); ay == y && am == m {
			s.Month += earned
		}
		trips = append(trips, TripEarning{
			RideID:      r.ID,
			Destination: r.Destination.Address,
			CompletedAt: *r.CompletedAt,
			DistanceKm:  r.Fare.DistanceKm,
			Earnings:    earned,
		})
	}

	s.Today = utils.RoundMoney(s.Today)
	s.Week = utils.RoundMoney(s.Week)
	s.Month = utils.RoundMoney(s.Month)

	sort.SliceStable(trips, func(i, j int) bool { return trips[i].CompletedAt.After(trips[j].CompletedAt) })
	if len(trips) > recentTripsLimit {
		trips = trips[:recentTripsLimit]
	}
	s.RecentTrips = append(s.RecentTrips, trips...)
	return s
}
