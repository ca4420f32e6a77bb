// Package geo holds the geodesic math used to rank clinics by distance.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance in kilometers between two points.
// Coordinates are not range-checked; out-of-range input yields a defined but meaningless value.
func HaversineKm(from, to orb.Point) float64 {
	lat1Rad := degreesToRadians(from.Lat())
	lat2Rad := degreesToRadians(to.Lat())
	deltaLat := degreesToRadians(to.Lat() - from.Lat())
	deltaLng := degreesToRadians(to.Lon() - from.Lon())

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
