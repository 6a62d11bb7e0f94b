package projection

import (
	"github.com/google/uuid"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/services/rides/fare"
)

// DriverAction is the next button a driver can press on a ride
type DriverAction string

const (
	ActionNone         DriverAction = ""
	ActionArrived      DriverAction = "arrived"
	ActionStartTrip    DriverAction = "start_trip"
	ActionCompleteTrip DriverAction = "complete_trip"
)

// NextAction returns the driver action allowed in status
func NextAction(status models.RideStatus) DriverAction {
	switch status {
	case models.RideStatusDriverAssigned:
		return ActionArrived
	case models.RideStatusArrived:
		return ActionStartTrip
	case models.RideStatusInProgress:
		return ActionCompleteTrip
	}
	return ActionNone
}

var actionLabels = map[DriverAction]string{
	ActionArrived:      "Arrived at Pickup",
	ActionStartTrip:    "Start Trip",
	ActionCompleteTrip: "Complete Trip",
}

// DriverView is what the assigned driver sees of a ride
type DriverView struct {
	RideID          uuid.UUID            `json:"ride_id"`
	Status          models.RideStatus    `json:"status"`
	NextAction      DriverAction         `json:"next_action,omitempty"`
	NextActionLabel string               `json:"next_action_label,omitempty"`
	Passenger       models.PassengerCard `json:"passenger"`
	Pickup          models.Place         `json:"pickup"`
	Destination     models.Place         `json:"destination"`
	Fare            models.FareBreakdown `json:"fare"`
	Earnings        float64              `json:"earnings"`
}

// Driver projects ride for its driver. commissionRate is the platform share of the fare.
func Driver(ride models.Ride, commissionRate float64) DriverView {
	action := NextAction(ride.Status)
	return DriverView{
		RideID:          ride.ID,
		Status:          ride.Status,
		NextAction:      action,
		NextActionLabel: actionLabels[action],
		Passenger:       ride.Passenger,
		Pickup:          ride.Pickup,
		Destination:     ride.Destination,
		Fare:            ride.Fare,
		Earnings:        fare.DriverEarnings(ride.Fare.Total, commissionRate),
	}
}
