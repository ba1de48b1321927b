package geo

import (
	"fmt"
	"math"
)

// EarthRadiusKm is the Earth radius in kilometers for Haversine.
const EarthRadiusKm = 6371.0

// HaversineKm returns distance in km between two points (lat/lng in degrees).
// Inputs are trusted to be in range; validate upstream with ValidateCoordinates.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	rad := func(d float64) float64 { return d * math.Pi / 180 }
	φ1, φ2 := rad(lat1), rad(lat2)
	Δφ := rad(lat2 - lat1)
	Δλ := rad(lng2 - lng1)
	a := math.Sin(Δφ/2)*math.Sin(Δφ/2) +
		math.Cos(φ1)*math.Cos(φ2)*math.Sin(Δλ/2)*math.Sin(Δλ/2)
	c := 2 * math.Asin(math.Sqrt(a))
	return EarthRadiusKm * c
}

// DistanceKm returns the Haversine distance between two nullable coordinate
// pairs, or nil when either pair is incomplete.
func DistanceKm(lat1, lng1, lat2, lng2 *float64) *float64 {
	if lat1 == nil || lng1 == nil || lat2 == nil || lng2 == nil {
		return nil
	}
	d := HaversineKm(*lat1, *lng1, *lat2, *lng2)
	return &d
}

// ValidateCoordinates checks latitude ∈ [-90,90] and longitude ∈ [-180,180].
func ValidateCoordinates(lat, lng float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("latitude %v out of range [-90,90]", lat)
	}
	if lng < -180 || lng > 180 {
		return fmt.Errorf("longitude %v out of range [-180,180]", lng)
	}
	return nil
}

// BoundingBoxDeltas returns the approximate degree deltas covering radiusKm
// around a point at the given latitude; used as a coarse SQL pre-filter
// before Haversine. 1 degree of latitude ~ 111km. Longitude degrees shrink
// by cos(lat), so that delta widens away from the equator, clamped so the
// box stays finite near the poles.
func BoundingBoxDeltas(lat, radiusKm float64) (latDelta, lngDelta float64) {
	latDelta = radiusKm / 111.0
	cosLat := math.Cos(lat * math.Pi / 180)
	if cosLat < 0.01 {
		cosLat = 0.01
	}
	lngDelta = latDelta / cosLat
	return latDelta, lngDelta
}
