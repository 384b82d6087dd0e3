package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geogram/map-backend-go/internal/models"
	"github.com/geogram/map-backend-go/internal/spatial"
)

func softRepellor(lat, lng, radius, strength float64) Repellor {
	return Repellor{
		Lat: lat, Lng: lng,
		RadiusLat: radius, RadiusLng: radius,
		Strength: strength,
		SourceID: "soft",
	}
}

func TestRepulsionNoOpBelowInteractiveZoom(t *testing.T) {
	rep := bubbleRepellor(models.Post{ID: "b", Lat: 40.0, Lng: 29.0}, 7)
	lat, lng := applyRepulsion(40.0001, 29.0001, []Repellor{rep}, 7)
	assert.Equal(t, 40.0001, lat)
	assert.Equal(t, 29.0001, lng)
}

func TestHardRepellorForcesPointOutside(t *testing.T) {
	leader := models.Post{ID: "b", Lat: 41.0, Lng: 29.0}
	rep := bubbleRepellor(leader, 16)

	// Inside the exclusion disk, north of the (shifted) center.
	origLat := 41.0 + 0.9*rep.RadiusLat
	lat, lng := applyRepulsion(origLat, 29.0, []Repellor{rep}, 16)

	d := rep.normalizedDistance(lat, lng)
	assert.InDelta(t, hardPushDistance, d, 1e-9)
	assert.Equal(t, 29.0, lng)
}

func TestSoftRepellorPushesProportionally(t *testing.T) {
	rep := softRepellor(40.0, 29.0, 0.001, 0.4)

	// d = 0.5, so factor = (1.1-0.5)*0.4*0.4 = 0.096.
	lat, lng := applyRepulsion(40.0005, 29.0, []Repellor{rep}, 14)

	wantLat := 40.0005 + 0.0005*(0.096/0.5)
	assert.InDelta(t, wantLat, lat, 1e-9)
	assert.Equal(t, 29.0, lng)
}

func TestSoftRepellorLeavesOutsidePointsAlone(t *testing.T) {
	rep := softRepellor(40.0, 29.0, 0.001, 0.4)
	lat, lng := applyRepulsion(40.002, 29.0, []Repellor{rep}, 14)
	assert.Equal(t, 40.002, lat)
	assert.Equal(t, 29.0, lng)
}

func TestZeroRadiusRepellorIsIgnored(t *testing.T) {
	rep := softRepellor(40.0, 29.0, 0, 0.9)
	lat, lng := applyRepulsion(40.0, 29.00000001, []Repellor{rep}, 14)
	assert.Equal(t, 40.0, lat)
	assert.Equal(t, 29.00000001, lng)
}

func TestCoincidentPointKeepsItsPosition(t *testing.T) {
	// The repellor's own source sits exactly on the anchor and must not
	// be pushed away from itself.
	leader := models.Post{ID: "b", Lat: 41.0, Lng: 29.0}
	rep := bubbleRepellor(leader, 16)

	lat, lng := applyRepulsion(41.0, 29.0, []Repellor{rep}, 16)
	assert.Equal(t, 41.0, lat)
	assert.Equal(t, 29.0, lng)
}

func TestAnchorClampLimitsDisplacement(t *testing.T) {
	const zoom = 14.0
	maxShift := spatial.MaxShiftDegrees(zoom)

	// A displacement well beyond the budget scales straight back.
	lat, lng := clampToAnchor(40.0+10*maxShift, 29.0, 40.0, 29.0, zoom)
	assert.InDelta(t, 40.0+maxShift, lat, 1e-12)
	assert.Equal(t, 29.0, lng)

	// Inside the budget nothing changes.
	lat, lng = clampToAnchor(40.0+maxShift/2, 29.0, 40.0, 29.0, zoom)
	assert.Equal(t, 40.0+maxShift/2, lat)
	assert.Equal(t, 29.0, lng)
}

func TestHardExclusionSurvivesAnchorClamp(t *testing.T) {
	leader := models.Post{ID: "b", Lat: 41.0, Lng: 29.0}
	rep := bubbleRepellor(leader, 16)

	// Sweep origins through the exclusion disk; wherever the point ends
	// up, it must be outside the bubble even if the anchor clamp pulled
	// it back first.
	// 0.7 is skipped: that origin sits exactly on the shifted center,
	// where the push direction is undefined and the point stays put.
	for _, f := range []float64{0.1, 0.3, 0.5, 0.9, 1.2} {
		origLat := 41.0 + f*rep.RadiusLat
		lat, lng := applyRepulsion(origLat, 29.0, []Repellor{rep}, 16)
		d := rep.normalizedDistance(lat, lng)
		assert.GreaterOrEqual(t, d, 1.0-1e-9, "origin factor %f", f)
		assert.Equal(t, 29.0, lng)
	}
}

func TestRepulsionClampsLatitudeAndNormalizesLongitude(t *testing.T) {
	lat, lng := applyRepulsion(89.99999, 180.5, nil, 14)
	assert.LessOrEqual(t, lat, spatial.MaxLat)
	assert.Greater(t, lng, -180.0)
	assert.LessOrEqual(t, lng, 180.0)
}
