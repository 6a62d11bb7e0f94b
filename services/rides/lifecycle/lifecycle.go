// Package lifecycle holds the ride status machine. Every status change of a
// ride goes through Apply, so no caller can skip a state.
package lifecycle

import (
	"fmt"
	"time"

	"github.com/piresc/pullup/internal/pkg/models"
)

// Event is something that happens to a ride
type Event string

const (
	AssignDriver   Event = "assign_driver"
	ArriveAtPickup Event = "arrive_at_pickup"
	StartTrip      Event = "start_trip"
	CompleteTrip   Event = "complete_trip"
	Cancel         Event = "cancel"
)

var (
	ErrInvalidTransition     = models.ErrInvalidTransition
	ErrUnsupportedTransition = models.ErrUnsupportedTransition
)

// TransitionError reports a rejected event
type TransitionError struct {
	From  models.RideStatus
	Event Event
	err   error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s a ride that is %s", e.err, e.Event, e.From)
}

func (e *TransitionError) Unwrap() error {
	return e.err
}

var edges = map[models.RideStatus]map[Event]models.RideStatus{
	models.RideStatusSearching: {
		AssignDriver: models.RideStatusDriverAssigned,
		Cancel:       models.RideStatusCancelled,
	},
	models.RideStatusDriverAssigned: {
		ArriveAtPickup: models.RideStatusArrived,
		Cancel:         models.RideStatusCancelled,
	},
	models.RideStatusArrived: {
		StartTrip: models.RideStatusInProgress,
		Cancel:    models.RideStatusCancelled,
	},
	models.RideStatusInProgress: {
		CompleteTrip: models.RideStatusCompleted,
	},
}

// Next returns the status reached from from on ev.
// Cancelling once the trip started is unsupported rather than merely invalid.
func Next(from models.RideStatus, ev Event) (models.RideStatus, error) {
	if to, ok := edges[from][ev]; ok {
		return to, nil
	}
	if ev == Cancel {
		return from, &TransitionError{From: from, Event: ev, err: ErrUnsupportedTransition}
	}
	return from, &TransitionError{From: from, Event: ev, err: ErrInvalidTransition}
}

// Apply moves ride along ev and stamps the matching timestamp
func Apply(ride *models.Ride, ev Event, at time.Time) error {
	to, err := Next(ride.Status, ev)
	if err != nil {
		return err
	}

	stamp := at
	switch to {
	case models.RideStatusDriverAssigned:
		ride.AssignedAt = &stamp
	case models.RideStatusArrived:
		ride.ArrivedAt = &stamp
	case models.RideStatusInProgress:
		ride.StartedAt = &stamp
	case models.RideStatusCompleted:
		ride.CompletedAt = &stamp
	case models.RideStatusCancelled:
		ride.CancelledAt = &stamp
		// a fee may apply once a driver was on the way; it is only ever warned about
		ride.CancellationFeeWarning = ride.DriverID != nil
	}
	ride.Status = to
	ride.UpdatedAt = at
	return nil
}

// CanCancel reports whether status still allows cancellation
func CanCancel(status models.RideStatus) bool {
	_, ok := edges[status][Cancel]
	return ok
}

// IsTerminal reports whether no event is accepted from status
func IsTerminal(status models.RideStatus) bool {
	return status == models.RideStatusCompleted || status == models.RideStatusCancelled
}

// IsActive reports whether the ride still occupies its rider and driver
func IsActive(status models.RideStatus) bool {
	_, known := edges[status]
	return known
}

// Order returns the position of status in the forward sequence, -1 for cancelled
func Order(status models.RideStatus) int {
	switch status {
	case models.RideStatusSearching:
		return 0
	case models.RideStatusDriverAssigned:
		return 1
	case models.RideStatusArrived:
		return 2
	case models.RideStatusInProgress:
		return 3
	case models.RideStatusCompleted:
		return 4
	}
	return -1
}
