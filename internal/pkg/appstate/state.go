package appstate

import (
	"time"

	"github.com/google/uuid"
	"github.com/piresc/pullup/internal/pkg/models"
)

// ActionType names a state change
type ActionType string

const (
	ModeSwitched  ActionType = "mode_switched"
	RideActivated ActionType = "ride_activated"
	RideCleared   ActionType = "ride_cleared"
)

// State is the per-user application state shared by every service
type State struct {
	UserID       uuid.UUID   `json:"user_id"`
	Mode         models.Mode `json:"mode"`
	ActiveRideID *uuid.UUID  `json:"active_ride_id,omitempty"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// Default returns the state of a user that never changed anything
func Default(userID uuid.UUID) State {
	return State{UserID: userID, Mode: models.ModeRider}
}

// Action is a typed request to change State
type Action struct {
	Type   ActionType
	Mode   models.Mode
	RideID uuid.UUID
}

func SwitchMode(mode models.Mode) Action {
	return Action{Type: ModeSwitched, Mode: mode}
}

func ActivateRide(rideID uuid.UUID) Action {
	return Action{Type: RideActivated, RideID: rideID}
}

// ClearRide clears the active ride only when it is still rideID
func ClearRide(rideID uuid.UUID) Action {
	return Action{Type: RideCleared, RideID: rideID}
}

// Checkpoint reports whether the store persists after the action
func (a Action) Checkpoint() bool {
	switch a.Type {
	case ModeSwitched, RideActivated, RideCleared:
		return true
	}
	return false
}

// Reduce applies action to s. It never mutates s.
func Reduce(s State, action Action, at time.Time) (State, error) {
	next := s
	switch action.Type {
	case ModeSwitched:
		if !action.Mode.Valid() {
			return s, models.NewValidationError("mode", "must be rider or driver")
		}
		next.Mode = action.Mode
	case RideActivated:
		if action.RideID == uuid.Nil {
			return s, models.NewValidationError("ride_id", "is required")
		}
		id := action.RideID
		next.ActiveRideID = &id
	case RideCleared:
		if s.ActiveRideID == nil || *s.ActiveRideID != action.RideID {
			return s, nil
		}
		next.ActiveRideID = nil
	default:
		return s, models.NewValidationError("action", "unknown action "+string(action.Type))
	}
	next.UpdatedAt = at
	return next, nil
}
