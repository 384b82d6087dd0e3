package repository

import (
	"database/sql"
	"fmt"

	"github.com/geogram/map-backend-go/internal/models"
)

// PostRepository handles database operations for posts
type PostRepository struct {
	db *sql.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

// ListSince retrieves all posts newer than the given timestamp (ms),
// newest first
func (r *PostRepository) ListSince(sinceMillis int64) ([]models.Post, error) {
	query := `
		SELECT id, lat, lng, timestamp, user_id, likes, dislikes, visibility,
		       text, user_name, user_image, is_anonymous, user_is_premium, active_badge_id
		FROM posts
		WHERE timestamp > ?
		ORDER BY timestamp DESC
	`
	rows, err := r.db.Query(query, sinceMillis)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		var p models.Post
		var text, userName, userImage, badgeID sql.NullString
		err := rows.Scan(
			&p.ID, &p.Lat, &p.Lng, &p.Timestamp, &p.UserID,
			&p.Likes, &p.Dislikes, &p.Visibility,
			&text, &userName, &userImage, &p.IsAnonymous, &p.UserIsPremium, &badgeID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		p.Text = text.String
		p.UserName = userName.String
		p.UserImage = userImage.String
		p.ActiveBadgeID = badgeID.String
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// Upsert inserts or replaces a post
func (r *PostRepository) Upsert(p models.Post) error {
	query := `
		INSERT INTO posts (id, lat, lng, timestamp, user_id, likes, dislikes, visibility,
		                   text, user_name, user_image, is_anonymous, user_is_premium, active_badge_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			lat = excluded.lat,
			lng = excluded.lng,
			timestamp = excluded.timestamp,
			likes = excluded.likes,
			dislikes = excluded.dislikes,
			visibility = excluded.visibility,
			text = excluded.text,
			user_name = excluded.user_name,
			user_image = excluded.user_image,
			is_anonymous = excluded.is_anonymous,
			user_is_premium = excluded.user_is_premium,
			active_badge_id = excluded.active_badge_id
	`
	_, err := r.db.Exec(query,
		p.ID, p.Lat, p.Lng, p.Timestamp, p.UserID, p.Likes, p.Dislikes, p.Visibility,
		p.Text, p.UserName, p.UserImage, p.IsAnonymous, p.UserIsPremium, p.ActiveBadgeID,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert post: %w", err)
	}
	return nil
}

// DeleteExpired removes posts with a timestamp at or before the cutoff
// and returns how many were removed
func (r *PostRepository) DeleteExpired(cutoffMillis int64) (int64, error) {
	res, err := r.db.Exec("DELETE FROM posts WHERE timestamp <= ?", cutoffMillis)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired posts: %w", err)
	}
	return res.RowsAffected()
}
