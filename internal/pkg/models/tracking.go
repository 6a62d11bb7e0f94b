package models

import (
	"time"

	"github.com/google/uuid"
)

// VehiclePosition is the last reported position of the vehicle on a ride
type VehiclePosition struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Heading   float64   `json:"heading"`
	Timestamp time.Time `json:"timestamp"`
}

// MessageSender identifies the side that wrote a chat message
type MessageSender string

const (
	SenderRider  MessageSender = "rider"
	SenderDriver MessageSender = "driver"
	SenderSystem MessageSender = "system"
)

// ChatMessage is one message between rider and driver
type ChatMessage struct {
	ID        uuid.UUID     `json:"id"`
	RideID    uuid.UUID     `json:"ride_id"`
	Sender    MessageSender `json:"sender"`
	SenderID  *uuid.UUID    `json:"sender_id,omitempty"`
	Text      string        `json:"text"`
	Timestamp time.Time     `json:"timestamp"`
	AutoReply bool          `json:"auto_reply,omitempty"`
}

// CallSession is a simulated voice call between rider and driver
type CallSession struct {
	RideID    uuid.UUID  `json:"ride_id"`
	StartedBy uuid.UUID  `json:"started_by"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
	Active    bool       `json:"active"`
	Seconds   int        `json:"seconds"`
	Display   string     `json:"display"`
}

// ShareLink grants read-only access to a ride's tracking view
type ShareLink struct {
	Token      string    `json:"token"`
	RideID     uuid.UUID `json:"ride_id"`
	SharedBy   uuid.UUID `json:"shared_by"`
	URL        string    `json:"url"`
	Recipients []string  `json:"recipients,omitempty"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// EmergencyAlert is raised from an active ride
type EmergencyAlert struct {
	ID       uuid.UUID        `json:"id"`
	RideID   uuid.UUID        `json:"ride_id"`
	RaisedBy uuid.UUID        `json:"raised_by"`
	Note     string           `json:"note,omitempty"`
	Position *VehiclePosition `json:"position,omitempty"`
	RaisedAt time.Time        `json:"raised_at"`
}

// MessageEvent delivers a chat message to the ride participants
type MessageEvent struct {
	Message    ChatMessage `json:"message"`
	Recipients []uuid.UUID `json:"recipients"`
}
