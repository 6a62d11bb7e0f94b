package constants

// NATS subjects
const (
	SubjectRideUpdated   = "ride.updated"
	SubjectRideCompleted = "ride.completed"
	SubjectRideMessage   = "ride.message"

	// Format: realtime.{table}.{column}.{value}
	SubjectRealtimeFormat = "realtime.%s.%s.%s"
	SubjectRealtimePrefix = "realtime"
)

// NSQ topics
const (
	TopicTripShared    = "trip.shared"
	TopicRideEmergency = "ride.emergency"
)

// Queue groups
const (
	QueueWalletSettlement = "wallet-settlement"
)
