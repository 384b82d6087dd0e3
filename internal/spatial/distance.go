package spatial

import (
	"math"

	"github.com/golang/geo/s2"
)

// Constants
const (
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters
)

// HaversineDistance calculates the great-circle distance between two points in meters
func HaversineDistance(lat1, lng1, lat2, lng2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lng1)
	p2 := s2.LatLngFromDegrees(lat2, lng2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// RectWithin reports whether (lat2, lng2) falls inside the rectangle of
// half-extents (radiusLat, radiusLng) centered on (lat1, lng1). Clustering
// uses rectangular, not radial, distance.
func RectWithin(lat1, lng1, lat2, lng2, radiusLat, radiusLng float64) bool {
	return math.Abs(lat2-lat1) <= radiusLat && math.Abs(lng2-lng1) <= radiusLng
}

// IsFinite reports whether a coordinate pair is usable. Non-finite values
// must not reach radius math, where they would corrupt a whole cluster.
func IsFinite(lat, lng float64) bool {
	return !math.IsNaN(lat) && !math.IsInf(lat, 0) &&
		!math.IsNaN(lng) && !math.IsInf(lng, 0)
}
