package layout

import (
	"math"
	"sort"

	"github.com/geogram/map-backend-go/internal/models"
	"github.com/geogram/map-backend-go/internal/spatial"
)

const (
	// OrbitalRadiusPx is the fixed on-screen radius followers orbit at
	OrbitalRadiusPx = 28.0

	// declutterZoom is where orbit stacks start expanding so individual
	// person markers fully separate
	declutterZoom = 17.0
)

// flock runs the people clustering pass. It is independent of the post
// pipeline: people group with a widened radius, stacks display at their
// member centroid, and "self" always leads a stack it belongs to.
func flock(people []models.Person, r radii) []models.RenderPoint {
	usable := make([]models.Person, 0, len(people))
	for _, p := range people {
		if spatial.IsFinite(p.Lat, p.Lng) {
			usable = append(usable, p)
		}
	}
	// Fixed scan order keeps group membership deterministic.
	sort.Slice(usable, func(i, j int) bool { return usable[i].ID < usable[j].ID })

	var points []models.RenderPoint
	processed := make(map[string]bool, len(usable))

	for i, seed := range usable {
		if processed[seed.ID] {
			continue
		}
		processed[seed.ID] = true

		group := []models.Person{seed}
		radLng := lngRadius(r.flock, seed.Lat)
		for _, other := range usable[i+1:] {
			if processed[other.ID] {
				continue
			}
			if spatial.RectWithin(seed.Lat, seed.Lng, other.Lat, other.Lng, r.flock, radLng) {
				processed[other.ID] = true
				group = append(group, other)
			}
		}

		if len(group) == 1 {
			points = append(points, personPoint(group[0], group[0].Lat, group[0].Lng, -1))
			continue
		}

		promoteSelf(group)

		pts := make([]spatial.Point, len(group))
		ids := make([]string, len(group))
		for j, m := range group {
			pts[j] = spatial.Point{Lat: m.Lat, Lng: m.Lng}
			ids[j] = m.ID
		}
		center := spatial.Centroid(pts)

		points = append(points, models.RenderPoint{
			ID:          "flock-" + group[0].ID,
			Tier:        models.TierPersonCluster,
			DisplayLat:  center.Lat,
			DisplayLng:  center.Lng,
			OriginalLat: center.Lat,
			OriginalLng: center.Lng,
			Count:       len(group),
			StackIndex:  -1,
			MemberIDs:   ids,
		})
		for j, m := range group {
			points = append(points, personPoint(m, center.Lat, center.Lng, j))
		}
	}
	return points
}

// promoteSelf reorders the group so self sits at index 0, keeping the
// relative order of everyone else. Identity, not score, picks the leader
// of a people stack.
func promoteSelf(group []models.Person) {
	for i, p := range group {
		if p.IsSelf && i > 0 {
			self := group[i]
			copy(group[1:i+1], group[:i])
			group[0] = self
			return
		}
	}
}

func personPoint(p models.Person, lat, lng float64, stackIndex int) models.RenderPoint {
	person := p
	return models.RenderPoint{
		ID:          p.ID,
		Tier:        models.TierPerson,
		DisplayLat:  lat,
		DisplayLng:  lng,
		OriginalLat: p.Lat,
		OriginalLng: p.Lng,
		StackIndex:  stackIndex,
		Person:      &person,
	}
}

// OrbitOffset returns the screen-space offset in pixels for a stacked
// person marker. The leader sits on the centroid; followers spread
// evenly on a circle starting from the top, and past the declutter zoom
// the circle expands until markers fully separate. This is presentation
// geometry kept out of the clustering math.
func OrbitOffset(stackIndex, totalCount int, zoom float64) (float64, float64) {
	if stackIndex <= 0 || totalCount < 2 {
		return 0, 0
	}

	followers := totalCount - 1
	angle := (float64(stackIndex-1)*360.0/float64(followers) - 90.0) * math.Pi / 180

	radius := OrbitalRadiusPx
	if zoom > declutterZoom {
		radius *= pow2(zoom - declutterZoom)
	}
	return radius * math.Cos(angle), radius * math.Sin(angle)
}
