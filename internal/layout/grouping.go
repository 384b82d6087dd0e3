package layout

import (
	"github.com/geogram/map-backend-go/internal/models"
	"github.com/geogram/map-backend-go/internal/spatial"
)

// primaryGroup is one bubble group formed in the primary pass. It exists
// only for the duration of a single layout computation.
type primaryGroup struct {
	Leader   models.Post
	Carousel []models.Post // near-exact duplicates, swipe-navigable under the leader
	Hidden   []models.Post // grouped but too far for the carousel; fall through to dots
}

// groupPrimary walks the score-sorted posts and forms bubble groups with
// rectangular zoom-scaled radii. The first (highest-scored) unprocessed
// post leads each group. Members inside the strict-overlap threshold
// join the leader's carousel; the rest are hidden from the bubble tier
// but intentionally stay eligible for secondary clustering at their
// original coordinates.
func groupPrimary(sorted []models.Post, r radii) []primaryGroup {
	groups := make([]primaryGroup, 0, len(sorted))
	processed := make(map[string]bool, len(sorted))

	for i, leader := range sorted {
		if processed[leader.ID] {
			continue
		}
		processed[leader.ID] = true

		g := primaryGroup{Leader: leader}
		radLng := lngRadius(r.primary, leader.Lat)

		for _, other := range sorted[i+1:] {
			if processed[other.ID] {
				continue
			}
			if !spatial.RectWithin(leader.Lat, leader.Lng, other.Lat, other.Lng, r.primary, radLng) {
				continue
			}
			processed[other.ID] = true
			if spatial.RectWithin(leader.Lat, leader.Lng, other.Lat, other.Lng, strictOverlapDegrees, strictOverlapDegrees) {
				g.Carousel = append(g.Carousel, other)
			} else {
				g.Hidden = append(g.Hidden, other)
			}
		}
		groups = append(groups, g)
	}
	return groups
}

// hiddenPosts collects every grouped post that neither leads a bubble
// nor rides its carousel, preserving score order
func hiddenPosts(groups []primaryGroup) []models.Post {
	var out []models.Post
	for _, g := range groups {
		out = append(out, g.Hidden...)
	}
	return out
}

// size returns the total member count including the leader
func (g primaryGroup) size() int {
	return 1 + len(g.Carousel) + len(g.Hidden)
}

// carouselIDs returns the swipe-navigable post ids, leader first
func (g primaryGroup) carouselIDs() []string {
	ids := make([]string, 0, 1+len(g.Carousel))
	ids = append(ids, g.Leader.ID)
	for _, p := range g.Carousel {
		ids = append(ids, p.ID)
	}
	return ids
}

// renderPoint emits the bubble draw instruction for this group. Bubbles
// anchor at the leader's true coordinate; they displace others, never
// themselves.
func (g primaryGroup) renderPoint() models.RenderPoint {
	leader := g.Leader
	return models.RenderPoint{
		ID:          leader.ID,
		Tier:        models.TierBubble,
		DisplayLat:  leader.Lat,
		DisplayLng:  leader.Lng,
		OriginalLat: leader.Lat,
		OriginalLng: leader.Lng,
		Count:       g.size(),
		StackIndex:  -1,
		MemberIDs:   g.carouselIDs(),
		Post:        &leader,
	}
}
