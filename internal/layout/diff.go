package layout

import (
	"sort"

	"github.com/geogram/map-backend-go/internal/models"
)

// RenderDiff describes how one layout pass differs from the previous
// one, for the presentation layer's enter/exit animations. The engine
// itself stays stateless; callers keep the previous output and feed it
// back here.
type RenderDiff struct {
	Entering   []string `json:"entering"`
	Exiting    []string `json:"exiting"`
	Persisting []string `json:"persisting"`
}

// Diff compares two render sets by id. All three result slices are
// sorted ascending.
func Diff(prev, next []models.RenderPoint) RenderDiff {
	prevIDs := make(map[string]bool, len(prev))
	for _, p := range prev {
		prevIDs[p.ID] = true
	}
	nextIDs := make(map[string]bool, len(next))
	for _, p := range next {
		nextIDs[p.ID] = true
	}

	d := RenderDiff{
		Entering:   []string{},
		Exiting:    []string{},
		Persisting: []string{},
	}
	for id := range nextIDs {
		if prevIDs[id] {
			d.Persisting = append(d.Persisting, id)
		} else {
			d.Entering = append(d.Entering, id)
		}
	}
	for id := range prevIDs {
		if !nextIDs[id] {
			d.Exiting = append(d.Exiting, id)
		}
	}

	sort.Strings(d.Entering)
	sort.Strings(d.Exiting)
	sort.Strings(d.Persisting)
	return d
}
