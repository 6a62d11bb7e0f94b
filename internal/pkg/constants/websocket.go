package constants

// WebSocket event types
const (
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	EventRideSnapshot = "ride_snapshot"
	EventRideUpdated  = "ride_updated"
	EventRideMessage  = "ride_message"

	EventRealtimeSubscribed = "realtime_subscribed"
	EventRealtimeChange     = "realtime_change"
)

// Realtime channels exposed over /ws/realtime
const (
	ChannelUserProfile     = "user_profile"
	ChannelDriverLocations = "driver_locations"
)
