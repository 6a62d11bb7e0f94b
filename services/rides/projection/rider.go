// Package projection derives the role-specific read models of a ride.
// Every function here is pure: one ride state drives all three views.
package projection

import (
	"github.com/google/uuid"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/services/rides/lifecycle"
)

// Phase is the rider-facing label of a ride status
type Phase string

const (
	PhaseSearching     Phase = "searching"
	PhaseDriverEnRoute Phase = "driver_en_route"
	PhaseDriverArrived Phase = "driver_arrived"
	PhaseOnTrip        Phase = "on_trip"
	PhaseCompleted     Phase = "completed"
	PhaseCancelled     Phase = "cancelled"
)

// PhaseOf maps a stored status to its rider phase
func PhaseOf(status models.RideStatus) Phase {
	switch status {
	case models.RideStatusSearching:
		return PhaseSearching
	case models.RideStatusDriverAssigned:
		return PhaseDriverEnRoute
	case models.RideStatusArrived:
		return PhaseDriverArrived
	case models.RideStatusInProgress:
		return PhaseOnTrip
	case models.RideStatusCompleted:
		return PhaseCompleted
	}
	return PhaseCancelled
}

// RiderView is what the passenger sees of a ride
type RiderView struct {
	RideID                 uuid.UUID            `json:"ride_id"`
	Status                 models.RideStatus    `json:"status"`
	Phase                  Phase                `json:"phase"`
	Headline               string               `json:"headline"`
	Step                   int                  `json:"step"`
	CanCancel              bool                 `json:"can_cancel"`
	CancellationFeeWarning bool                 `json:"cancellation_fee_warning"`
	VehicleClass           string               `json:"vehicle_class"`
	Pickup                 models.Place         `json:"pickup"`
	Destination            models.Place         `json:"destination"`
	Driver                 *models.DriverCard   `json:"driver,omitempty"`
	Fare                   models.FareBreakdown `json:"fare"`
}

// Rider projects ride for its passenger
func Rider(ride models.Ride) RiderView {
	v := RiderView{
		RideID:       ride.ID,
		Status:       ride.Status,
		Phase:        PhaseOf(ride.Status),
		Step:         lifecycle.Order(ride.Status),
		CanCancel:    lifecycle.CanCancel(ride.Status),
		VehicleClass: ride.VehicleClass,
		Pickup:       ride.Pickup,
		Destination:  ride.Destination,
		Fare:         ride.Fare,
	}
	v.Headline = riderHeadline(v.Phase, ride.Driver)

	// the driver card is only revealed once someone accepted the ride
	if ride.Status != models.RideStatusSearching && ride.Driver != nil {
		card := *ride.Driver
		v.Driver = &card
	}

	// the fee warning shows while cancelling would still incur it, and on the cancelled ride
	switch {
	case v.CanCancel:
		v.CancellationFeeWarning = ride.DriverID != nil
	case ride.Status == models.RideStatusCancelled:
		v.CancellationFeeWarning = ride.CancellationFeeWarning
	}
	return v
}

func riderHeadline(phase Phase, driver *models.DriverCard) string {
	name := "Your driver"
	if driver != nil && driver.Name != "" {
		name = driver.Name
	}
	switch phase {
	case PhaseSearching:
		return "Finding your driver"
	case PhaseDriverEnRoute:
		return name + " is on the way"
	case PhaseDriverArrived:
		return name + " has arrived"
	case PhaseOnTrip:
		return "On the way to your destination"
	case PhaseCompleted:
		return "You have arrived"
	}
	return "Ride cancelled"
}
