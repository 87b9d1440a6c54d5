// Package geo provides the distance and travel-time estimates used by the
// itinerary optimizer. Travel times assume a constant average road speed;
// no live traffic data is consulted. This is a modeling simplification:
// day plans need stable, reproducible estimates more than precise ETAs.
package geo

import (
	"math"

	"meeting-itinerary-service/internal/domain"
)

const (
	// Mean Earth radius in miles, used for great-circle distances.
	earthRadiusMiles = 3959.0

	// Assumed average travel speed in miles per hour.
	averageSpeedMph = 30.0
)

// Great-circle (haversine) distance in miles between two coordinates.
// Inputs are plain decimal degrees; out-of-range values produce a
// possibly meaningless but finite, non-panicking result.
func DistanceMiles(a, b domain.Location) float64 {
	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMiles * c
}

// Estimated door-to-door travel time in whole minutes for the given
// distance, at the assumed average speed.
func TravelMinutes(miles float64) int64 {
	return int64(math.Round(miles / averageSpeedMph * 60))
}
