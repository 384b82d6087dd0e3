package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geogram/map-backend-go/internal/models"
)

func TestFlockSelfAlwaysLeadsItsStack(t *testing.T) {
	r := newRadii(0.009, 13)

	// "zz-self" sorts last by id but must still lead the stack.
	people := []models.Person{
		{ID: "aa-friend", Lat: 40.0, Lng: 29.0},
		{ID: "bb-friend", Lat: 40.0001, Lng: 29.0001},
		{ID: "zz-self", Lat: 40.0002, Lng: 29.0, IsSelf: true},
	}
	points := flock(people, r)

	var stack *models.RenderPoint
	indexes := make(map[string]int)
	for i := range points {
		p := points[i]
		if p.Tier == models.TierPersonCluster {
			stack = &points[i]
		}
		if p.Tier == models.TierPerson {
			indexes[p.ID] = p.StackIndex
		}
	}

	require.NotNil(t, stack)
	assert.Equal(t, 3, stack.Count)
	assert.Equal(t, "zz-self", stack.MemberIDs[0])
	assert.Equal(t, 0, indexes["zz-self"])
	assert.Equal(t, 1, indexes["aa-friend"])
	assert.Equal(t, 2, indexes["bb-friend"])
}

func TestFlockStackDisplaysAtCentroid(t *testing.T) {
	r := newRadii(0.009, 13)

	people := []models.Person{
		{ID: "a", Lat: 40.0, Lng: 29.0},
		{ID: "b", Lat: 40.002, Lng: 29.002},
	}
	points := flock(people, r)

	for _, p := range points {
		if p.Tier == models.TierPersonCluster {
			assert.InDelta(t, 40.001, p.DisplayLat, 1e-9)
			assert.InDelta(t, 29.001, p.DisplayLng, 1e-9)
		}
		if p.Tier == models.TierPerson {
			// Members ride the centroid; true coordinates survive.
			assert.InDelta(t, 40.001, p.DisplayLat, 1e-9)
			assert.NotEqual(t, p.OriginalLat, p.DisplayLat)
		}
	}
}

func TestFlockUngroupedPersonKeepsOwnPosition(t *testing.T) {
	r := newRadii(0.009, 13)

	points := flock([]models.Person{{ID: "solo", Lat: 40.0, Lng: 29.0}}, r)
	require.Len(t, points, 1)
	p := points[0]
	assert.Equal(t, models.TierPerson, p.Tier)
	assert.Equal(t, -1, p.StackIndex)
	assert.Equal(t, 40.0, p.DisplayLat)
}

func TestFlockSkipsNonFinitePositions(t *testing.T) {
	r := newRadii(0.009, 13)

	points := flock([]models.Person{
		{ID: "bad", Lat: math.NaN(), Lng: 29.0},
		{ID: "good", Lat: 40.0, Lng: 29.0},
	}, r)
	require.Len(t, points, 1)
	assert.Equal(t, "good", points[0].ID)
}

func TestOrbitOffsetGeometry(t *testing.T) {
	// Leader stays on the centroid.
	dx, dy := OrbitOffset(0, 3, 14)
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	// First of two followers starts at the top (-90 degrees).
	dx, dy = OrbitOffset(1, 3, 14)
	assert.InDelta(t, 0, dx, 1e-9)
	assert.InDelta(t, -OrbitalRadiusPx, dy, 1e-9)

	// Second of two followers lands at +90 degrees.
	dx, dy = OrbitOffset(2, 3, 14)
	assert.InDelta(t, 0, dx, 1e-9)
	assert.InDelta(t, OrbitalRadiusPx, dy, 1e-9)
}

func TestOrbitOffsetExpandsPastDeclutterZoom(t *testing.T) {
	_, dyNear := OrbitOffset(2, 3, declutterZoom)
	_, dyFar := OrbitOffset(2, 3, declutterZoom+1)
	assert.InDelta(t, 2*dyNear, dyFar, 1e-9)
}
