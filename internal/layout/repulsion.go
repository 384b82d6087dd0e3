package layout

import (
	"math"

	"github.com/geogram/map-backend-go/internal/models"
	"github.com/geogram/map-backend-go/internal/spatial"
)

const (
	// hardStrengthThreshold separates zero-tolerance exclusion zones
	// (bubbles) from proportional soft pushes (secondary clusters)
	hardStrengthThreshold = 0.8

	// hardPushDistance is the normalized distance a point lands at when
	// forced out of a hard repellor: just outside the exclusion disk
	hardPushDistance = 1.05

	// bubbleAnchorShift moves a bubble's effective repulsion center
	// toward its top, because the visual anchor is bottom-aligned
	bubbleAnchorShift = 0.7

	// soft push: factor = min(softPushCap, (softPushBase - d) * strength * softPushScale)
	softPushCap   = 1.2
	softPushBase  = 1.1
	softPushScale = 0.4

	// bubbleRadiusPx is the on-screen exclusion radius of a bubble visual
	bubbleRadiusPx = 36.0

	// secondary clusters repel at 40% strength with a collision radius of
	// 60% of the dot cluster radius
	clusterStrength    = 0.4
	clusterRadiusScale = 0.6

	// coincidentEpsilon treats a point sitting exactly on a repellor's
	// anchor as that repellor's own source, which is never pushed
	coincidentEpsilon = 1e-9
)

// Repellor is an exclusion or soft-push zone derived for a single layout
// pass. Strength above hardStrengthThreshold marks a hard repellor.
type Repellor struct {
	Lat       float64
	Lng       float64
	RadiusLat float64
	RadiusLng float64
	Strength  float64
	SourceID  string
}

func (r Repellor) hard() bool {
	return r.Strength > hardStrengthThreshold
}

// effectiveCenter returns the center repulsion is measured from. Bubbles
// shift it toward their visual top; soft repellors use the anchor as-is.
func (r Repellor) effectiveCenter() (float64, float64) {
	if r.hard() {
		return r.Lat + bubbleAnchorShift*r.RadiusLat, r.Lng
	}
	return r.Lat, r.Lng
}

// normalizedDistance returns d in repellor-radius units, or -1 when the
// repellor is degenerate (zero radius) and must act as a no-op
func (r Repellor) normalizedDistance(lat, lng float64) float64 {
	if r.RadiusLat == 0 || r.RadiusLng == 0 {
		return -1
	}
	effLat, effLng := r.effectiveCenter()
	dLat := (lat - effLat) / r.RadiusLat
	dLng := (lng - effLng) / r.RadiusLng
	return math.Sqrt(dLat*dLat + dLng*dLng)
}

// bubbleRepellor builds the hard exclusion zone for a bubble leader
func bubbleRepellor(leader models.Post, zoom float64) Repellor {
	radLat := bubbleRadiusPx / spatial.PixelsPerDegree(zoom)
	return Repellor{
		Lat:       leader.Lat,
		Lng:       leader.Lng,
		RadiusLat: radLat,
		RadiusLng: lngRadius(radLat, leader.Lat),
		Strength:  1.0,
		SourceID:  leader.ID,
	}
}

// clusterRepellor builds the soft push zone a placed cluster contributes
// to every later placement
func clusterRepellor(id string, lat, lng float64, r radii) Repellor {
	radLat := r.dot * clusterRadiusScale
	return Repellor{
		Lat:       lat,
		Lng:       lng,
		RadiusLat: radLat,
		RadiusLng: lngRadius(radLat, lat),
		Strength:  clusterStrength,
		SourceID:  id,
	}
}

// applyRepulsion displaces a point away from every overlapping repellor,
// then clamps the total displacement to the zoom's pixel budget, then
// re-applies hard exclusion once more: anchoring can drag a point back
// inside a bubble, and non-overlap wins over staying near the truth.
// Below the interactive zoom the whole function is a no-op.
func applyRepulsion(origLat, origLng float64, repellors []Repellor, zoom float64) (float64, float64) {
	if zoom < minInteractiveZoom {
		return origLat, origLng
	}

	lat, lng := origLat, origLng
	for _, rep := range repellors {
		lat, lng = rep.push(lat, lng, origLat, origLng)
	}

	lat, lng = clampToAnchor(lat, lng, origLat, origLng, zoom)

	// The anchor clamp can reintroduce overlap with a hard repellor.
	for _, rep := range repellors {
		if rep.hard() {
			lat, lng = rep.push(lat, lng, origLat, origLng)
		}
	}

	return spatial.ClampLat(lat), spatial.NormalizeLng(lng)
}

// push applies one repellor to the point's current position. The point's
// original coordinate identifies the repellor's own source, which keeps
// its exact-overlap position.
func (r Repellor) push(lat, lng, origLat, origLng float64) (float64, float64) {
	if math.Abs(origLat-r.Lat) < coincidentEpsilon && math.Abs(origLng-r.Lng) < coincidentEpsilon {
		return lat, lng
	}

	d := r.normalizedDistance(lat, lng)
	if d <= 0 || d >= 1 {
		return lat, lng
	}

	effLat, effLng := r.effectiveCenter()
	dLat := lat - effLat
	dLng := lng - effLng

	if r.hard() {
		// Force the point to exactly hardPushDistance from center.
		scale := hardPushDistance / d
		return effLat + dLat*scale, effLng + dLng*scale
	}

	factor := (softPushBase - d) * r.Strength * softPushScale
	if factor > softPushCap {
		factor = softPushCap
	}
	return lat + dLat*(factor/d), lng + dLng*(factor/d)
}

// clampToAnchor scales the displacement vector back so the point never
// drifts more than roughly 40 screen pixels from its true coordinate
func clampToAnchor(lat, lng, origLat, origLng, zoom float64) (float64, float64) {
	dLat := lat - origLat
	dLng := lng - origLng

	// Degrees-equivalent magnitude, longitude scaled to latitude degrees.
	dx := dLng * math.Cos(origLat*math.Pi/180)
	mag := math.Sqrt(dLat*dLat + dx*dx)
	maxShift := spatial.MaxShiftDegrees(zoom)
	if mag <= maxShift || mag == 0 {
		return lat, lng
	}

	scale := maxShift / mag
	return origLat + dLat*scale, origLng + dLng*scale
}
