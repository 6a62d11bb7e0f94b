package models

import (
	"time"

	"github.com/google/uuid"
)

// RideStatus is the stored lifecycle status of a ride
type RideStatus string

const (
	RideStatusSearching      RideStatus = "searching"
	RideStatusDriverAssigned RideStatus = "driver_assigned"
	RideStatusArrived        RideStatus = "arrived"
	RideStatusInProgress     RideStatus = "in_progress"
	RideStatusCompleted      RideStatus = "completed"
	RideStatusCancelled      RideStatus = "cancelled"
)

// Place is an address with coordinates
type Place struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// FareBreakdown is the estimated fare of a ride
type FareBreakdown struct {
	BaseFare     float64 `json:"base_fare"`
	DistanceFare float64 `json:"distance_fare"`
	TimeFare     float64 `json:"time_fare"`
	ServiceFee   float64 `json:"service_fee"`
	Total        float64 `json:"total"`
	Currency     string  `json:"currency"`
	DistanceKm   float64 `json:"distance_km"`
	DurationMin  int     `json:"duration_min"`
}

// PassengerCard is the passenger snapshot a driver sees
type PassengerCard struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Phone  string    `json:"phone,omitempty"`
	Rating float64   `json:"rating,omitempty"`
}

// Ride is one trip from request to completion or cancellation
type Ride struct {
	ID           uuid.UUID     `json:"id"`
	PassengerID  uuid.UUID     `json:"passenger_id"`
	DriverID     *uuid.UUID    `json:"driver_id,omitempty"`
	VehicleClass string        `json:"vehicle_class"`
	Status       RideStatus    `json:"status"`
	Pickup       Place         `json:"pickup"`
	Destination  Place         `json:"destination"`
	Fare         FareBreakdown `json:"fare"`
	Driver       *DriverCard   `json:"driver,omitempty"`
	Passenger    PassengerCard `json:"passenger"`
	// DemoDriver marks a driver from the demo roster rather than a real account
	DemoDriver bool `json:"demo_driver,omitempty"`

	CancellationFeeWarning bool `json:"cancellation_fee_warning"`

	RequestedAt time.Time  `json:"requested_at"`
	AssignedAt  *time.Time `json:"assigned_at,omitempty"`
	ArrivedAt   *time.Time `json:"arrived_at,omitempty"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// RideRequest is the rider input for a new ride
type RideRequest struct {
	Pickup       *Place `json:"pickup"`
	Destination  *Place `json:"destination"`
	VehicleClass string `json:"vehicle_class"`
}

// RideEvent is published on every ride change
type RideEvent struct {
	Ride      Ride       `json:"ride"`
	Previous  RideStatus `json:"previous_status,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}

// RideCompletedEvent is published when a trip completes and settles the wallet
type RideCompletedEvent struct {
	RideID         uuid.UUID     `json:"ride_id"`
	PassengerID    uuid.UUID     `json:"passenger_id"`
	DriverID       uuid.UUID     `json:"driver_id"`
	Destination    string        `json:"destination"`
	Fare           FareBreakdown `json:"fare"`
	DriverEarnings float64       `json:"driver_earnings"`
	CompletedAt    time.Time     `json:"completed_at"`
}
