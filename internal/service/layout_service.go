package service

import (
	"fmt"
	"time"

	"github.com/geogram/map-backend-go/internal/layout"
	"github.com/geogram/map-backend-go/internal/models"
)

// LayoutRequest carries one layout invocation: the viewport plus
// optional inline feeds that override the stored ones (used by the
// simulation mode and by tests)
type LayoutRequest struct {
	Viewport models.Viewport `json:"viewport" binding:"required"`
	Posts    []models.Post   `json:"posts,omitempty"`
	People   []models.Person `json:"people,omitempty"`
}

// LayoutService wires the stored feeds into the pure layout engine.
// Every call takes a fresh snapshot and produces a fresh output; nothing
// is shared between calls, so concurrent invocations are safe.
type LayoutService struct {
	engine *layout.Engine
	posts  *PostService
	people *PersonService
}

// NewLayoutService creates a new layout service
func NewLayoutService(engine *layout.Engine, posts *PostService, people *PersonService) *LayoutService {
	return &LayoutService{engine: engine, posts: posts, people: people}
}

// Compute runs one layout pass for the given request
func (s *LayoutService) Compute(req LayoutRequest, now time.Time) (models.Layout, error) {
	posts := req.Posts
	if posts == nil {
		var err error
		posts, err = s.posts.ListActive(now)
		if err != nil {
			return models.Layout{}, fmt.Errorf("failed to load post feed: %w", err)
		}
	}

	people := req.People
	if people == nil {
		var err error
		people, err = s.people.List()
		if err != nil {
			return models.Layout{}, fmt.Errorf("failed to load person feed: %w", err)
		}
	}

	return s.engine.Compute(layout.Input{
		Posts:    posts,
		People:   people,
		Viewport: req.Viewport,
		Now:      now,
	}), nil
}
