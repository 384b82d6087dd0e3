package layout

import (
	"math"
	"sort"

	"github.com/geogram/map-backend-go/internal/models"
	"github.com/geogram/map-backend-go/internal/spatial"
)

// dotCluster is a secondary group of posts that fell through the bubble
// tier, rendered as one numbered badge
type dotCluster struct {
	ID      string
	Lat     float64 // member centroid
	Lng     float64
	Members []models.Post
}

// groupSecondary clusters the dot-tier posts with the tightened radius.
// Groups of one stay individual dots; larger groups become numbered
// cluster badges anchored at their member centroid.
func groupSecondary(posts []models.Post, r radii) ([]dotCluster, []models.Post) {
	var clusters []dotCluster
	var dots []models.Post
	processed := make(map[string]bool, len(posts))

	for i, seed := range posts {
		if processed[seed.ID] {
			continue
		}
		processed[seed.ID] = true

		members := []models.Post{seed}
		radLng := lngRadius(r.dot, seed.Lat)
		for _, other := range posts[i+1:] {
			if processed[other.ID] {
				continue
			}
			if spatial.RectWithin(seed.Lat, seed.Lng, other.Lat, other.Lng, r.dot, radLng) {
				processed[other.ID] = true
				members = append(members, other)
			}
		}

		if len(members) == 1 {
			dots = append(dots, seed)
			continue
		}

		pts := make([]spatial.Point, len(members))
		for j, m := range members {
			pts[j] = spatial.Point{Lat: m.Lat, Lng: m.Lng}
		}
		center := spatial.Centroid(pts)
		clusters = append(clusters, dotCluster{
			ID:      "cluster-" + seed.ID,
			Lat:     center.Lat,
			Lng:     center.Lng,
			Members: members,
		})
	}
	return clusters, dots
}

// placeClusters positions each cluster badge: repulsion-adjusted against
// bubbles and every previously placed cluster, then registered as a new
// soft repellor for whatever comes after it. Clusters are processed in
// id-sorted order so the chain of placements is deterministic.
func placeClusters(clusters []dotCluster, repellors []Repellor, r radii) ([]models.RenderPoint, []Repellor) {
	sort.Slice(clusters, func(i, j int) bool { return clusters[i].ID < clusters[j].ID })

	points := make([]models.RenderPoint, 0, len(clusters))
	for _, c := range clusters {
		lat, lng := applyRepulsion(c.Lat, c.Lng, repellors, r.zoom)

		ids := make([]string, len(c.Members))
		for i, m := range c.Members {
			ids[i] = m.ID
		}
		points = append(points, models.RenderPoint{
			ID:          c.ID,
			Tier:        models.TierCluster,
			DisplayLat:  lat,
			DisplayLng:  lng,
			OriginalLat: c.Lat,
			OriginalLng: c.Lng,
			Count:       len(c.Members),
			StackIndex:  -1,
			MemberIDs:   ids,
		})

		// Register at the final position so later placements avoid where
		// the badge actually renders, not where it would have been.
		repellors = append(repellors, clusterRepellor(c.ID, lat, lng, r))
	}
	return points, repellors
}

// splitDots classifies every unclustered dot by how far repulsion moved
// it on screen: past the threshold it renders individually with a notch
// pointing back to the truth, otherwise it joins the cheap batched tier
// at its exact original coordinate.
func splitDots(dots []models.Post, repellors []Repellor, zoom float64) []models.RenderPoint {
	points := make([]models.RenderPoint, 0, len(dots))
	for i := range dots {
		d := dots[i]
		lat, lng := applyRepulsion(d.Lat, d.Lng, repellors, zoom)
		px := spatial.PixelDistance(d.Lat, d.Lng, lat, lng, zoom)

		rp := models.RenderPoint{
			ID:          d.ID,
			OriginalLat: d.Lat,
			OriginalLng: d.Lng,
			StackIndex:  -1,
			Post:        &dots[i],
		}
		if px > stablePixelThreshold {
			rp.Tier = models.TierDotDisplaced
			rp.DisplayLat = lat
			rp.DisplayLng = lng
			rp.NotchAngle = math.Atan2(d.Lat-lat, d.Lng-lng) * 180 / math.Pi
		} else {
			// Sub-threshold displacement is dropped entirely: the stable
			// tier draws in one batched call with no per-marker state.
			rp.Tier = models.TierDotStable
			rp.DisplayLat = d.Lat
			rp.DisplayLng = d.Lng
		}
		points = append(points, rp)
	}
	return points
}
