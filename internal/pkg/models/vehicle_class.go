package models

// VehicleClass is a bookable ride category
type VehicleClass struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Capacity    int     `json:"capacity" yaml:"capacity"`
	ETAMinMin   int     `json:"eta_min_minutes" yaml:"eta_min_minutes"`
	ETAMaxMin   int     `json:"eta_max_minutes" yaml:"eta_max_minutes"`
	BaseFare    float64 `json:"base_fare" yaml:"base_fare"`
	PerKm       float64 `json:"per_km" yaml:"per_km"`
	PerMinute   float64 `json:"per_minute" yaml:"per_minute"`
	ServiceFee  float64 `json:"service_fee" yaml:"service_fee"`
	MinimumFare float64 `json:"minimum_fare" yaml:"minimum_fare"`
}

// FareQuote is a vehicle class with the fare estimated for one route
type FareQuote struct {
	VehicleClass
	Fare FareBreakdown `json:"fare"`
}
