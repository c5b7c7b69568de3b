// Package geo implements great-circle distance and bounding boxes used to match
// broadcast requests with nearby candidates.
package geo

import (
	"math"

	"pulse/internal/domain/entity"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

const (
	// EarthRadiusKm is the mean Earth radius used by the haversine formula.
	EarthRadiusKm = 6371.0

	// DefaultRadiusKm is the notification radius around a request.
	DefaultRadiusKm = 50.0

	// boundMargin widens prefilter boxes so that stores using a different
	// Earth model never drop a candidate the haversine check would keep.
	boundMargin = 1.01
)

// DistanceKm returns the haversine distance in kilometres between two coordinates.
func DistanceKm(from, to entity.Coordinate) float64 {
	lat1 := degreesToRadians(from.Latitude)
	lat2 := degreesToRadians(to.Latitude)
	deltaLat := degreesToRadians(to.Latitude - from.Latitude)
	deltaLng := degreesToRadians(to.Longitude - from.Longitude)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLng/2)*math.Sin(deltaLng/2)

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// WithinRadius reports whether distanceKm lies inside the radius. The boundary is inclusive.
func WithinRadius(distanceKm, radiusKm float64) bool {
	return distanceKm <= radiusKm
}

// ToPoint converts a coordinate to an orb point (longitude first).
func ToPoint(c entity.Coordinate) orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// FromPoint converts an orb point back to a coordinate.
func FromPoint(p orb.Point) entity.Coordinate {
	return entity.Coordinate{Latitude: p.Lat(), Longitude: p.Lon()}
}

// BoundAround returns a box that contains every point within radiusKm of center,
// measured on the same sphere as DistanceKm, plus a small safety margin.
func BoundAround(center entity.Coordinate, radiusKm float64) orb.Bound {
	// orb works in metres on its own Earth radius; scale so the angular
	// distance matches radiusKm on a 6371 km sphere.
	meters := radiusKm * boundMargin / EarthRadiusKm * orb.EarthRadius

	return orbgeo.NewBoundAroundPoint(ToPoint(center), meters)
}

// SearchRadiusKm widens radiusKm by the prefilter margin for stores that
// search by radius on their own Earth model.
func SearchRadiusKm(radiusKm float64) float64 {
	return radiusKm * boundMargin
}

// WrapsAntimeridian reports whether the bound crosses the ±180° meridian,
// in which case Min.Lon is greater than Max.Lon.
func WrapsAntimeridian(b orb.Bound) bool {
	return b.Min.Lon() > b.Max.Lon()
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
