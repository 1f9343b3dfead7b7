package geo

import (
	"math"
)

const earthRadiusMeters = 6371000.0 // Earth's radius in meters

// Point is a coordinate pair in decimal degrees.
type Point struct {
	Lat float64
	Lon float64
}

// HaversineDistance calculates the distance between two points on Earth in meters
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	// Convert to radians
	lat1Rad := ToRadians(lat1)
	lat2Rad := ToRadians(lat2)
	deltaLat := ToRadians(lat2 - lat1)
	deltaLon := ToRadians(lon2 - lon1)

	// Haversine formula
	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

func ToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
