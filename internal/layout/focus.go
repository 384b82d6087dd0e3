package layout

import (
	"math"

	"github.com/geogram/map-backend-go/internal/models"
)

// actionableBubbles returns the ids of bubbles whose true coordinate
// falls inside the screen-relative focus band: a rectangle centered on
// the viewport covering the configured fractions of its span. Those
// bubbles expose interactive controls; every other visible bubble
// renders reduced. A pure membership test, recomputed every pass.
func (e *Engine) actionableBubbles(points []models.RenderPoint, vp models.Viewport) []string {
	latHalf := math.Abs(vp.LatSpan()) * e.cfg.FocusBandY / 2
	lngHalf := math.Abs(vp.LngSpan()) * e.cfg.FocusBandX / 2

	ids := make([]string, 0)
	for _, p := range points {
		if p.Tier != models.TierBubble {
			continue
		}
		if math.Abs(p.OriginalLat-vp.Center.Lat) <= latHalf &&
			math.Abs(p.OriginalLng-vp.Center.Lng) <= lngHalf {
			ids = append(ids, p.ID)
		}
	}
	return ids
}
