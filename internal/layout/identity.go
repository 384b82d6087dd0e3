package layout

import (
	"github.com/geogram/map-backend-go/internal/models"
	"github.com/geogram/map-backend-go/internal/spatial"
)

// ResolveIdentity maps a freshly ingested post onto an already known one
// when both describe the same physical post: same author, same text,
// posted within the coordinate tolerance. This replaces optimistic ids
// with canonical ones once before the pipeline runs, so a re-sent post
// never animates as a duplicate. Returns the canonical id.
func ResolveIdentity(incoming models.Post, recent []models.Post, toleranceMeters float64) string {
	for _, r := range recent {
		if r.UserID != incoming.UserID || r.Text != incoming.Text {
			continue
		}
		if spatial.HaversineDistance(incoming.Lat, incoming.Lng, r.Lat, r.Lng) <= toleranceMeters {
			return r.ID
		}
	}
	return incoming.ID
}
