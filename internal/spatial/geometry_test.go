package spatial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	// Madrid to Barcelona, roughly 505 km.
	d := HaversineDistance(40.4168, -3.7038, 41.3874, 2.1686)
	assert.InDelta(t, 505000, d, 5000)

	assert.InDelta(t, 0, HaversineDistance(41.0, 29.0, 41.0, 29.0), 1e-6)
}

func TestRectWithin(t *testing.T) {
	assert.True(t, RectWithin(41.0, 29.0, 41.004, 29.008, 0.005, 0.009))
	// Inside the circle's bounding square but outside a radial check.
	assert.True(t, RectWithin(41.0, 29.0, 41.0049, 29.0089, 0.005, 0.009))
	assert.False(t, RectWithin(41.0, 29.0, 41.006, 29.0, 0.005, 0.009))
	assert.False(t, RectWithin(41.0, 29.0, 41.0, 29.01, 0.005, 0.009))
	// Boundary is inclusive.
	assert.True(t, RectWithin(41.0, 29.0, 41.005, 29.009, 0.005, 0.009))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(41.0, 29.0))
	assert.True(t, IsFinite(0, 0))
	assert.False(t, IsFinite(math.NaN(), 29.0))
	assert.False(t, IsFinite(41.0, math.NaN()))
	assert.False(t, IsFinite(math.Inf(1), 29.0))
	assert.False(t, IsFinite(41.0, math.Inf(-1)))
}

func TestCentroid(t *testing.T) {
	pts := []Point{{Lat: 40.0, Lng: 28.0}, {Lat: 42.0, Lng: 30.0}, {Lat: 41.0, Lng: 29.0}}
	c := Centroid(pts)
	assert.InDelta(t, 41.0, c.Lat, 1e-9)
	assert.InDelta(t, 29.0, c.Lng, 1e-9)

	assert.Equal(t, Point{}, Centroid(nil))
}

func TestBoundingBox(t *testing.T) {
	pts := []Point{{Lat: 41.0, Lng: 29.0}, {Lat: 40.5, Lng: 29.5}, {Lat: 41.5, Lng: 28.5}}
	minLat, minLng, maxLat, maxLng := BoundingBox(pts)
	assert.Equal(t, 40.5, minLat)
	assert.Equal(t, 28.5, minLng)
	assert.Equal(t, 41.5, maxLat)
	assert.Equal(t, 29.5, maxLng)
}
