package fare

import (
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/internal/utils"
)

// Route returns the road distance estimate in km and the drive time in minutes.
// Straight-line distance is scaled by the road factor; no routing is done.
func (c *Catalog) Route(pickup, destination models.Place) (float64, int) {
	km := utils.CalculateDistance(utils.GeoPointFromPlace(pickup), utils.GeoPointFromPlace(destination)) * c.RoadFactor
	km = utils.RoundMoney(km)
	return km, utils.EstimateMinutes(km, c.AverageSpeedKmh)
}

// Estimate prices a ride of vehicle class classID
func (c *Catalog) Estimate(classID string, pickup, destination models.Place) (models.FareBreakdown, error) {
	vc, ok := c.Class(classID)
	if !ok {
		return models.FareBreakdown{}, models.NewValidationError("vehicle_class", "unknown vehicle class "+classID)
	}
	return c.price(vc, pickup, destination), nil
}

// Quotes prices the route for every vehicle class, in catalog order
func (c *Catalog) Quotes(pickup, destination models.Place) []models.FareQuote {
	quotes := make([]models.FareQuote, 0, len(c.VehicleClasses))
	for _, vc := range c.VehicleClasses {
		quotes = append(quotes, models.FareQuote{VehicleClass: vc, Fare: c.price(vc, pickup, destination)})
	}
	return quotes
}

func (c *Catalog) price(vc models.VehicleClass, pickup, destination models.Place) models.FareBreakdown {
	km, minutes := c.Route(pickup, destination)

	f := models.FareBreakdown{
		BaseFare:     vc.BaseFare,
		DistanceFare: utils.RoundMoney(vc.PerKm * km),
		TimeFare:     utils.RoundMoney(vc.PerMinute * float64(minutes)),
		ServiceFee:   vc.ServiceFee,
		Currency:     c.Currency,
		DistanceKm:   km,
		DurationMin:  minutes,
	}
	f.Total = utils.RoundMoney(f.BaseFare + f.DistanceFare + f.TimeFare + f.ServiceFee)

	// the minimum fare tops up the base so the breakdown still adds up
	if f.Total < vc.MinimumFare {
		f.BaseFare = utils.RoundMoney(f.BaseFare + vc.MinimumFare - f.Total)
		f.Total = vc.MinimumFare
	}
	return f
}

// DriverEarnings is the part of total left to the driver after commission
func DriverEarnings(total, commissionRate float64) float64 {
	if commissionRate < 0 || commissionRate > 1 {
		commissionRate = 0
	}
	return utils.RoundMoney(total * (1 - commissionRate))
}
