package models

import (
	"time"

	"github.com/google/uuid"
)

// UserRole is the account type of a profile
type UserRole string

const (
	RoleRider  UserRole = "rider"
	RoleDriver UserRole = "driver"
)

// Mode is the active side of the app for a user
type Mode string

const (
	ModeRider  Mode = "rider"
	ModeDriver Mode = "driver"
)

// Valid reports whether m is a known mode
func (m Mode) Valid() bool {
	return m == ModeRider || m == ModeDriver
}

// UserProfile is a registered account
type UserProfile struct {
	ID            uuid.UUID      `json:"id" db:"id"`
	FullName      string         `json:"full_name" db:"full_name"`
	Email         string         `json:"email" db:"email"`
	Phone         string         `json:"phone" db:"phone"`
	Role          UserRole       `json:"role" db:"role"`
	Status        string         `json:"status" db:"status"`
	AvatarURL     string         `json:"avatar_url" db:"avatar_url"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at" db:"updated_at"`
	DriverProfile *DriverProfile `json:"driver_profile,omitempty" db:"-"`
}

// UserProfileUpdate carries optional profile changes
type UserProfileUpdate struct {
	FullName  *string `json:"full_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	AvatarURL *string `json:"avatar_url"`
	Status    *string `json:"status"`
}

// UserProfileFilter narrows a profile listing
type UserProfileFilter struct {
	Roles  []string
	Status string
	Search string
}

// UserLocation is the last reported position of a user
type UserLocation struct {
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	UserType    UserRole  `json:"user_type" db:"user_type"`
	Latitude    float64   `json:"latitude" db:"latitude"`
	Longitude   float64   `json:"longitude" db:"longitude"`
	Address     string    `json:"address" db:"address"`
	Heading     float64   `json:"heading" db:"heading"`
	Geohash     string    `json:"geohash" db:"geohash"`
	IsOnline    bool      `json:"is_online" db:"is_online"`
	LastUpdated time.Time `json:"last_updated" db:"last_updated"`
}

// LocationInput is a location report
type LocationInput struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Address   string   `json:"address"`
	Heading   float64  `json:"heading"`
	UserType  UserRole `json:"user_type"`
}

// Caller identifies the authenticated user of a request
type Caller struct {
	ID    uuid.UUID
	Role  UserRole
	Name  string
	Phone string
}

// SettingsSection is one entry of the profile settings navigation
type SettingsSection struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	DriverOnly  bool   `json:"driver_only"`
}

// SettingsView is the read model of the profile settings page
type SettingsView struct {
	Profile  UserProfile       `json:"profile"`
	Mode     Mode              `json:"mode"`
	Sections []SettingsSection `json:"sections"`
	Vehicles []Vehicle         `json:"vehicles,omitempty"`
	IsOnline bool              `json:"is_online"`
}
