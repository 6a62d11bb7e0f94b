package models

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle is a car registered by a driver
type Vehicle struct {
	ID           uuid.UUID `json:"id" db:"id"`
	DriverID     uuid.UUID `json:"driver_id" db:"driver_id"`
	Make         string    `json:"make" db:"make"`
	Model        string    `json:"model" db:"model"`
	Year         int       `json:"year" db:"year"`
	Color        string    `json:"color" db:"color"`
	LicensePlate string    `json:"license_plate" db:"license_plate"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// VehicleUpdate carries optional vehicle changes
type VehicleUpdate struct {
	Make         *string `json:"make"`
	Model        *string `json:"model"`
	Year         *int    `json:"year"`
	Color        *string `json:"color"`
	LicensePlate *string `json:"license_plate"`
	IsActive     *bool   `json:"is_active"`
}

// DriverProfile is the driver extension of a user profile
type DriverProfile struct {
	UserID        uuid.UUID `json:"user_id" db:"user_id"`
	LicenseNumber string    `json:"license_number" db:"license_number"`
	Rating        float64   `json:"rating" db:"rating"`
	TotalTrips    int       `json:"total_trips" db:"total_trips"`
	IsOnline      bool      `json:"is_online" db:"is_online"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
	Vehicles      []Vehicle `json:"vehicles"`
}

// DriverProfileInput creates a driver profile
type DriverProfileInput struct {
	LicenseNumber string   `json:"license_number"`
	Vehicle       *Vehicle `json:"vehicle,omitempty"`
}

// DriverProfileUpdate carries optional driver profile changes
type DriverProfileUpdate struct {
	LicenseNumber *string `json:"license_number"`
}

// DriverCard is the driver snapshot a rider sees
type DriverCard struct {
	ID         uuid.UUID `json:"id" yaml:"id"`
	Name       string    `json:"name" yaml:"name"`
	Phone      string    `json:"phone,omitempty" yaml:"phone"`
	Rating     float64   `json:"rating" yaml:"rating"`
	TotalTrips int       `json:"total_trips" yaml:"total_trips"`
	Vehicle    Vehicle   `json:"vehicle" yaml:"-"`
	IsOnline   bool      `json:"is_online" yaml:"-"`
	Location   *Place    `json:"location,omitempty" yaml:"-"`
}

// NearbyDriver is a driver returned by a proximity query
type NearbyDriver struct {
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	FullName   string    `json:"full_name" db:"full_name"`
	Rating     float64   `json:"rating" db:"rating"`
	Latitude   float64   `json:"latitude" db:"latitude"`
	Longitude  float64   `json:"longitude" db:"longitude"`
	DistanceKm float64   `json:"distance_km" db:"distance_km"`
}

// OnlineStatus is the result of toggling driver availability
type OnlineStatus struct {
	UserID   uuid.UUID `json:"user_id"`
	IsOnline bool      `json:"is_online"`
}
