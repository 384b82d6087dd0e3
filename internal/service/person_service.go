package service

import (
	"time"

	"github.com/geogram/map-backend-go/internal/models"
	"github.com/geogram/map-backend-go/internal/repository"
)

// PersonService handles business logic for live positions
type PersonService struct {
	repo *repository.PersonRepository
}

// NewPersonService creates a new person service
func NewPersonService(repo *repository.PersonRepository) *PersonService {
	return &PersonService{repo: repo}
}

// List returns every known live position
func (s *PersonService) List() ([]models.Person, error) {
	return s.repo.List()
}

// UpdateLocation refreshes a person's position and last-seen time
func (s *PersonService) UpdateLocation(p models.Person, now time.Time) error {
	if p.LastSeen == 0 {
		p.LastSeen = now.UnixMilli()
	}
	return s.repo.Upsert(p)
}

// Remove drops a person from the live position feed
func (s *PersonService) Remove(id string) error {
	return s.repo.Delete(id)
}
