package models

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict")

	// ErrActiveRideExists is returned when a passenger already has an unfinished ride
	ErrActiveRideExists = fmt.Errorf("%w: passenger already has an active ride", ErrConflict)
	// ErrDriverBusy is returned when a driver is already assigned to an unfinished ride
	ErrDriverBusy = fmt.Errorf("%w: driver already has an active ride", ErrConflict)

	// ErrInvalidTransition is returned when a ride event is not allowed in the current status
	ErrInvalidTransition = errors.New("invalid ride transition")
	// ErrUnsupportedTransition is returned for events the product never supports, such as cancelling a started trip
	ErrUnsupportedTransition = errors.New("unsupported ride transition")

	// ErrPaymentFailed is returned when the funding provider declines or does not answer
	ErrPaymentFailed = errors.New("payment failed")
)

// ValidationError describes a rejected input field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError builds a ValidationError for field
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
