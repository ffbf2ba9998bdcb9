// Package geo holds the campus distance and coordinate helpers.
package geo

import (
	"math"
	"math/rand"
	"strconv"

	"github.com/zakiyahfaroo/HuskySync/internal/models/domain"
)

// earthRadiusMiles is the Earth radius used by the haversine formula.
const earthRadiusMiles = 3959

// jitterDegrees is the spread applied around a landmark when a new event
// carries no coordinates, keeping default markers from stacking exactly.
const jitterDegrees = 0.005

// RedSquare is the campus landmark used as the fallback viewer position
// and as the anchor for defaulted event coordinates.
var RedSquare = domain.Coordinates{Lat: 47.6559, Lng: -122.3092}

// DistanceMiles returns the great-circle distance between two points in
// statute miles, rounded to one decimal place for display. Identical
// points yield 0.0. Out-of-range coordinates are not validated.
func DistanceMiles(a, b domain.Coordinates) float64 {
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return math.Round(earthRadiusMiles*c*10) / 10
}

// Jitter offsets c by up to ±jitterDegrees/2 on both axes.
func Jitter(c domain.Coordinates) domain.Coordinates {
	return domain.Coordinates{
		Lat: c.Lat + (rand.Float64()-0.5)*jitterDegrees,
		Lng: c.Lng + (rand.Float64()-0.5)*jitterDegrees,
	}
}

// ResolveViewer parses the lat/lng strings a client reported for its own
// position. Missing or malformed values fall back to Red Square, so a
// denied geolocation prompt never blocks rendering.
func ResolveViewer(latStr, lngStr string) domain.Coordinates {
	lat, errLat := strconv.ParseFloat(latStr, 64)
	lng, errLng := strconv.ParseFloat(lngStr, 64)
	if errLat != nil || errLng != nil {
		return RedSquare
	}
	return domain.Coordinates{Lat: lat, Lng: lng}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
