package layout

import (
	"math"
	"sort"
	"time"

	"github.com/geogram/map-backend-go/internal/models"
	"github.com/geogram/map-backend-go/internal/spatial"
)

// filterPosts drops expired, degenerate, unpopular, and off-viewport
// posts before any grouping runs. Below the interactive zoom the
// viewport check is skipped so world-scale views stay complete.
func (e *Engine) filterPosts(posts []models.Post, vp models.Viewport, now time.Time) []models.Post {
	nowMillis := now.UnixMilli()
	expiration := int64(e.cfg.ExpirationHours) * int64(time.Hour/time.Millisecond)

	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if !spatial.IsFinite(p.Lat, p.Lng) {
			continue
		}
		if expiration > 0 && p.AgeMillis(nowMillis) >= expiration {
			continue
		}
		if !e.popularEnough(p, vp.Zoom) {
			continue
		}
		if vp.Zoom >= minInteractiveZoom && !vp.Contains(p.Lat, p.Lng, viewportBufferFraction) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// popularEnough applies the zoom-tiered like threshold: everything shows
// at high zoom, anything with likes at medium zoom, and only popular
// posts at low zoom. Disabled when the configured minimum is zero.
func (e *Engine) popularEnough(p models.Post, zoom float64) bool {
	if e.cfg.MinLikesForZoom <= 0 {
		return true
	}
	switch {
	case zoom >= 14:
		return true
	case zoom >= 12:
		return p.Likes > 0
	default:
		return p.Likes > e.cfg.MinLikesForZoom
	}
}

// score ranks a post for cluster leadership: raw likes, a flat bonus for
// friends-only visibility, and a freshness bonus inside the first hour.
func score(p models.Post, nowMillis int64) int {
	s := p.Likes
	if p.Visibility == models.VisibilityFriends {
		s += friendsScoreBonus
	}
	if p.AgeMillis(nowMillis) < freshWindowMillis {
		s += freshScoreBonus
	}
	return s
}

// sortByScore orders posts descending by priority score. Ties break on
// newer timestamp, then on the lexicographically larger id, so the order
// is fully deterministic and the layout never flickers from unstable
// sorting.
func sortByScore(posts []models.Post, nowMillis int64) {
	sort.SliceStable(posts, func(i, j int) bool {
		si, sj := score(posts[i], nowMillis), score(posts[j], nowMillis)
		if si != sj {
			return si > sj
		}
		if posts[i].Timestamp != posts[j].Timestamp {
			return posts[i].Timestamp > posts[j].Timestamp
		}
		return posts[i].ID > posts[j].ID
	})
}

// pow2 is shorthand for 2^x
func pow2(x float64) float64 {
	return math.Pow(2, x)
}

// lngRadius widens a latitude-degree radius into longitude degrees at
// the given latitude
func lngRadius(radiusLat, lat float64) float64 {
	c := math.Cos(lat * math.Pi / 180)
	if c < 1e-6 {
		c = 1e-6
	}
	return radiusLat / c
}
