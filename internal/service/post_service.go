package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/geogram/map-backend-go/internal/layout"
	"github.com/geogram/map-backend-go/internal/models"
	"github.com/geogram/map-backend-go/internal/repository"
)

// identityToleranceMeters is how close a re-sent post must be to an
// existing one to resolve to the same canonical id
const identityToleranceMeters = 1.0

// PostService handles business logic for the post feed
type PostService struct {
	repo            *repository.PostRepository
	expirationHours int
}

// NewPostService creates a new post service
func NewPostService(repo *repository.PostRepository, expirationHours int) *PostService {
	return &PostService{repo: repo, expirationHours: expirationHours}
}

// ListActive returns all posts inside the expiration window, newest first
func (s *PostService) ListActive(now time.Time) ([]models.Post, error) {
	cutoff := now.Add(-time.Duration(s.expirationHours) * time.Hour).UnixMilli()
	return s.repo.ListSince(cutoff)
}

// Ingest stores a new post. Missing ids are assigned, and posts that
// resolve to an already known identity (same author, text, and location)
// keep the canonical id instead of creating a duplicate.
func (s *PostService) Ingest(p models.Post, now time.Time) (models.Post, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Timestamp == 0 {
		p.Timestamp = now.UnixMilli()
	}
	if p.Visibility == "" {
		p.Visibility = models.VisibilityPublic
	}

	recent, err := s.ListActive(now)
	if err != nil {
		return models.Post{}, fmt.Errorf("failed to load recent posts: %w", err)
	}
	p.ID = layout.ResolveIdentity(p, recent, identityToleranceMeters)

	if err := s.repo.Upsert(p); err != nil {
		return models.Post{}, err
	}
	return p, nil
}

// Sweep removes posts that fell out of the expiration window
func (s *PostService) Sweep(now time.Time) (int64, error) {
	cutoff := now.Add(-time.Duration(s.expirationHours) * time.Hour).UnixMilli()
	return s.repo.DeleteExpired(cutoff)
}
