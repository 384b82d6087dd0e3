package repository

import (
	"database/sql"
	"fmt"

	"github.com/geogram/map-backend-go/internal/models"
)

// PersonRepository handles database operations for live positions
type PersonRepository struct {
	db *sql.DB
}

// NewPersonRepository creates a new person repository
func NewPersonRepository(db *sql.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

// List retrieves every known live position, ordered by id
func (r *PersonRepository) List() ([]models.Person, error) {
	query := `
		SELECT id, lat, lng, last_seen, is_self, name, image
		FROM people
		ORDER BY id
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query people: %w", err)
	}
	defer rows.Close()

	var people []models.Person
	for rows.Next() {
		var p models.Person
		var name, image sql.NullString
		if err := rows.Scan(&p.ID, &p.Lat, &p.Lng, &p.LastSeen, &p.IsSelf, &name, &image); err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		p.Name = name.String
		p.Image = image.String
		people = append(people, p)
	}
	return people, rows.Err()
}

// Upsert inserts or refreshes a live position
func (r *PersonRepository) Upsert(p models.Person) error {
	query := `
		INSERT INTO people (id, lat, lng, last_seen, is_self, name, image, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			lat = excluded.lat,
			lng = excluded.lng,
			last_seen = excluded.last_seen,
			is_self = excluded.is_self,
			name = excluded.name,
			image = excluded.image,
			updated_at = CURRENT_TIMESTAMP
	`
	_, err := r.db.Exec(query, p.ID, p.Lat, p.Lng, p.LastSeen, p.IsSelf, p.Name, p.Image)
	if err != nil {
		return fmt.Errorf("failed to upsert person: %w", err)
	}
	return nil
}

// Delete removes a live position (e.g. on ghost mode)
func (r *PersonRepository) Delete(id string) error {
	if _, err := r.db.Exec("DELETE FROM people WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}
	return nil
}
