package projection

import (
	"github.com/google/uuid"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/internal/utils"
	"github.com/piresc/pullup/services/rides/lifecycle"
)

// Tracking targets
const (
	TargetPickup      = "pickup"
	TargetDestination = "destination"
)

// Counterpart is the other party of a ride as shown on the tracking screen
type Counterpart struct {
	ID      uuid.UUID       `json:"id"`
	Name    string          `json:"name"`
	Phone   string          `json:"phone,omitempty"`
	Rating  float64         `json:"rating,omitempty"`
	Vehicle *models.Vehicle `json:"vehicle,omitempty"`
}

// TrackingView is the live view of an active ride
type TrackingView struct {
	RideID      uuid.UUID               `json:"ride_id"`
	Status      models.RideStatus       `json:"status"`
	Phase       Phase                   `json:"phase"`
	Headline    string                  `json:"headline"`
	Target      string                  `json:"target,omitempty"`
	ETAMinutes  int                     `json:"eta_minutes"`
	DistanceKm  float64                 `json:"distance_km"`
	Position    *models.VehiclePosition `json:"position,omitempty"`
	Pickup      models.Place            `json:"pickup"`
	Destination models.Place            `json:"destination"`
	Fare        models.FareBreakdown    `json:"fare"`
	CanCancel   bool                    `json:"can_cancel"`
	Counterpart *Counterpart            `json:"counterpart,omitempty"`
	Share       *models.ShareLink       `json:"share,omitempty"`
}

// Tracking projects ride for role. pos is the last reported vehicle position, if any;
// speedKmh converts the remaining straight-line distance into minutes.
func Tracking(ride models.Ride, role models.UserRole, pos *models.VehiclePosition, share *models.ShareLink, speedKmh float64) TrackingView {
	v := base(ride, pos, speedKmh)
	v.CanCancel = lifecycle.CanCancel(ride.Status)
	v.Share = share

	if role == models.RoleDriver {
		p := ride.Passenger
		v.Counterpart = &Counterpart{ID: p.ID, Name: p.Name, Phone: p.Phone, Rating: p.Rating}
	} else if ride.Driver != nil && ride.Status != models.RideStatusSearching {
		v.Counterpart = driverCounterpart(ride.Driver, true)
	}
	return v
}

// Public projects ride for someone holding a share link: no contact details, no actions
func Public(ride models.Ride, pos *models.VehiclePosition, speedKmh float64) TrackingView {
	v := base(ride, pos, speedKmh)
	if ride.Driver != nil && ride.Status != models.RideStatusSearching {
		v.Counterpart = driverCounterpart(ride.Driver, false)
	}
	return v
}

func base(ride models.Ride, pos *models.VehiclePosition, speedKmh float64) TrackingView {
	phase := PhaseOf(ride.Status)
	v := TrackingView{
		RideID:      ride.ID,
		Status:      ride.Status,
		Phase:       phase,
		Headline:    riderHeadline(phase, ride.Driver),
		Position:    pos,
		Pickup:      ride.Pickup,
		Destination: ride.Destination,
		Fare:        ride.Fare,
	}

	var target models.Place
	switch ride.Status {
	case models.RideStatusDriverAssigned:
		v.Target, target = TargetPickup, ride.Pickup
	case models.RideStatusArrived, models.RideStatusInProgress:
		v.Target, target = TargetDestination, ride.Destination
	default:
		return v
	}

	from, ok := origin(ride, pos)
	if !ok {
		return v
	}
	v.DistanceKm = utils.RoundMoney(utils.CalculateDistance(from, utils.GeoPointFromPlace(target)))
	v.ETAMinutes = utils.EstimateMinutes(v.DistanceKm, speedKmh)
	return v
}

// origin is the best known vehicle position: the reported one, then the driver
// card location, then the pickup once the driver is there
func origin(ride models.Ride, pos *models.VehiclePosition) (utils.GeoPoint, bool) {
	if pos != nil {
		return utils.GeoPoint{Latitude: pos.Latitude, Longitude: pos.Longitude}, true
	}
	if ride.Status != models.RideStatusDriverAssigned {
		return utils.GeoPointFromPlace(ride.Pickup), true
	}
	if ride.Driver != nil && ride.Driver.Location != nil {
		return utils.GeoPointFromPlace(*ride.Driver.Location), true
	}
	return utils.GeoPoint{}, false
}

func driverCounterpart(d *models.DriverCard, withContact bool) *Counterpart {
	vehicle := d.Vehicle
	c := &Counterpart{ID: d.ID, Name: d.Name, Rating: d.Rating, Vehicle: &vehicle}
	if withContact {
		c.Phone = d.Phone
	}
	return c
}
