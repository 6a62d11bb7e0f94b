package constants

// Redis key formats
const (
	KeyAppState = "appstate:%s" // Format: appstate:{user_id}

	KeyDriverGeo = "drivers:geo" // GEO set of online driver locations

	KeyRideLocation = "rides:location:%s" // Format: rides:location:{ride_id}
	KeyRideMessages = "rides:messages:%s" // Format: rides:messages:{ride_id}
	KeyRideShare    = "rides:share:%s"    // Format: rides:share:{token}
	KeyRideShareRef = "rides:shared:%s"   // Format: rides:shared:{ride_id} -> token
)

// Redis hash fields
const (
	FieldLatitude     = "lat"
	FieldLongitude    = "lng"
	FieldHeading      = "heading"
	FieldTimestamp    = "ts"
	FieldMode         = "mode"
	FieldActiveRideID = "active_ride_id"
	FieldUpdatedAt    = "updated_at"
)
