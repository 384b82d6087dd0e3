package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geogram/map-backend-go/internal/models"
)

func rp(id string) models.RenderPoint {
	return models.RenderPoint{ID: id, Tier: models.TierDotStable}
}

func TestDiffPartitionsByID(t *testing.T) {
	prev := []models.RenderPoint{rp("a"), rp("b"), rp("c")}
	next := []models.RenderPoint{rp("b"), rp("c"), rp("d"), rp("e")}

	d := Diff(prev, next)
	assert.Equal(t, []string{"d", "e"}, d.Entering)
	assert.Equal(t, []string{"a"}, d.Exiting)
	assert.Equal(t, []string{"b", "c"}, d.Persisting)
}

func TestDiffEmptySides(t *testing.T) {
	d := Diff(nil, []models.RenderPoint{rp("a")})
	assert.Equal(t, []string{"a"}, d.Entering)
	assert.Empty(t, d.Exiting)
	assert.Empty(t, d.Persisting)

	d = Diff([]models.RenderPoint{rp("a")}, nil)
	assert.Equal(t, []string{"a"}, d.Exiting)
	assert.Empty(t, d.Entering)
}
