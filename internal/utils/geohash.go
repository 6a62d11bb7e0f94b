package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/pullup/internal/pkg/models"
)

// GeohashPrecision is the cell size stored with user locations (about 1.2 km)
const GeohashPrecision = 6

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// EncodeLocation converts coordinates to a geohash string
func EncodeLocation(latitude, longitude float64, precision uint) string {
	return geohash.EncodeWithPrecision(latitude, longitude, precision)
}

// GetNeighbors returns the neighboring geohashes of a given geohash
func GetNeighbors(hash string) []string {
	return geohash.Neighbors(hash)
}

// CalculateDistance calculates the distance between two points in kilometers using the Haversine formula
func CalculateDistance(point1, point2 GeoPoint) float64 {
	const earthRadius = 6371.0

	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// GeoPointFromPlace converts a place to a GeoPoint
func GeoPointFromPlace(p models.Place) GeoPoint {
	return GeoPoint{Latitude: p.Latitude, Longitude: p.Longitude}
}

// ValidCoordinates reports whether latitude and longitude are within range
func ValidCoordinates(latitude, longitude float64) bool {
	return latitude >= -90 && latitude <= 90 && longitude >= -180 && longitude <= 180 &&
		!math.IsNaN(latitude) && !math.IsNaN(longitude)
}

// EstimateMinutes returns the travel time for distanceKm at speedKmh, rounded up to whole minutes
func EstimateMinutes(distanceKm, speedKmh float64) int {
	if distanceKm <= 0 || speedKmh <= 0 {
		return 0
	}
	return int(math.Ceil(distanceKm / speedKmh * 60))
}
