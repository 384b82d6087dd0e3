package layout

import (
	"time"

	"github.com/geogram/map-backend-go/internal/models"
)

// Tuning constants for the layout pipeline. Zoom-dependent radii are all
// derived from the base cluster radius scaled by 2^(zoomPivot - zoom).
const (
	// zoomPivot is the zoom level at which the base cluster radius applies as-is
	zoomPivot = 13.0

	// minInteractiveZoom is the zoom below which viewport filtering and
	// repulsion are skipped entirely to preserve geographic accuracy
	minInteractiveZoom = 8.0

	// viewportBufferFraction expands the visible bounds by half a span in
	// each direction so markers do not pop in and out during small pans
	viewportBufferFraction = 0.5

	// strictOverlapDegrees (~2m) is the tighter threshold for carousel
	// membership within a bubble group
	strictOverlapDegrees = 0.00002

	// dotRadiusScale shrinks the primary radius for secondary (dot) clustering
	dotRadiusScale = 0.8

	// flockRadiusScale widens the primary radius for people clustering
	flockRadiusScale = 1.5

	// freshScoreBonus and friendsScoreBonus feed the priority score
	friendsScoreBonus   = 50
	freshScoreBonus     = 5
	freshWindowMillis   = int64(time.Hour / time.Millisecond)

	// stablePixelThreshold splits dots into batched vs individually
	// displaced rendering
	stablePixelThreshold = 2.0
)

// Config holds the externally adjustable layout parameters. The engine
// treats them as pass-time values, not owned state.
type Config struct {
	ExpirationHours int     // posts older than this are dropped
	ClusterRadius   float64 // base grouping radius in degrees
	MinLikesForZoom int     // zoom-tiered popularity gate; 0 disables
	FocusBandX      float64 // horizontal focus band fraction of the viewport
	FocusBandY      float64 // vertical focus band fraction of the viewport
}

// DefaultConfig mirrors the product defaults
func DefaultConfig() Config {
	return Config{
		ExpirationHours: 24,
		ClusterRadius:   0.009, // ~900m at the pivot zoom
		MinLikesForZoom: 5,
		FocusBandX:      0.45,
		FocusBandY:      0.45,
	}
}

// Input is one complete snapshot consumed by a layout pass
type Input struct {
	Posts    []models.Post
	People   []models.Person
	Viewport models.Viewport
	Now      time.Time
}

// Engine runs the layout pipeline. It is pure and stateless: the same
// Input always produces the same Layout, and nothing is retained between
// passes, so concurrent Compute calls are safe by construction.
type Engine struct {
	cfg Config
}

// New creates a layout engine with the given configuration
func New(cfg Config) *Engine {
	if cfg.ClusterRadius <= 0 {
		cfg.ClusterRadius = DefaultConfig().ClusterRadius
	}
	if cfg.FocusBandX <= 0 {
		cfg.FocusBandX = DefaultConfig().FocusBandX
	}
	if cfg.FocusBandY <= 0 {
		cfg.FocusBandY = DefaultConfig().FocusBandY
	}
	return &Engine{cfg: cfg}
}

// Compute runs one full layout pass: filter, score, cluster, repulse,
// re-cluster, stability-classify, flock, and select actionable bubbles.
func (e *Engine) Compute(in Input) models.Layout {
	vp := in.Viewport
	r := newRadii(e.cfg.ClusterRadius, vp.Zoom)

	candidates := e.filterPosts(in.Posts, vp, in.Now)
	sortByScore(candidates, in.Now.UnixMilli())

	groups := groupPrimary(candidates, r)

	repellors := make([]Repellor, 0, len(groups))
	for _, g := range groups {
		repellors = append(repellors, bubbleRepellor(g.Leader, vp.Zoom))
	}

	hidden := hiddenPosts(groups)
	clusters, dots := groupSecondary(hidden, r)
	clusterPoints, repellors := placeClusters(clusters, repellors, r)
	dotPoints := splitDots(dots, repellors, vp.Zoom)

	points := make([]models.RenderPoint, 0, len(groups)+len(clusterPoints)+len(dotPoints)+len(in.People))
	carousels := make(map[string][]string, len(groups))
	for _, g := range groups {
		points = append(points, g.renderPoint())
		carousels[g.Leader.ID] = g.carouselIDs()
	}
	points = append(points, clusterPoints...)
	points = append(points, dotPoints...)
	points = append(points, flock(in.People, r)...)

	for i := range points {
		points[i].Style = models.StyleFor(points[i])
	}

	return models.Layout{
		Points:        points,
		ActionableIDs: e.actionableBubbles(points, vp),
		Carousels:     carousels,
	}
}

// radii bundles the zoom-scaled clustering radii for one pass. Longitude
// radii depend on latitude and are derived per seed point.
type radii struct {
	zoom    float64
	primary float64 // bubble grouping radius, degrees of latitude
	dot     float64 // secondary grouping radius
	flock   float64 // people grouping radius
}

func newRadii(base, zoom float64) radii {
	factor := zoomFactor(zoom)
	return radii{
		zoom:    zoom,
		primary: base * factor,
		dot:     base * dotRadiusScale * factor,
		flock:   base * flockRadiusScale * factor,
	}
}

// zoomFactor scales degree-space radii so clusters cover a roughly
// constant screen area across zoom levels
func zoomFactor(zoom float64) float64 {
	return pow2(zoomPivot - zoom)
}
