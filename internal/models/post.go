package models

// Visibility controls who can see a post
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityFriends Visibility = "friends"
)

// Post represents a location-tagged message on the map
type Post struct {
	ID         string     `json:"id" db:"id"`
	Lat        float64    `json:"lat" db:"lat"`
	Lng        float64    `json:"lng" db:"lng"`
	Timestamp  int64      `json:"timestamp" db:"timestamp"` // Unix timestamp (milliseconds)
	UserID     string     `json:"userId" db:"user_id"`
	Likes      int        `json:"likes" db:"likes"`
	Dislikes   int        `json:"dislikes" db:"dislikes"`
	Visibility Visibility `json:"visibility" db:"visibility"`

	// Opaque payload. The layout engine never inspects these beyond the
	// scoring fields above; they pass through to render output unmodified.
	Text          string `json:"text,omitempty" db:"text"`
	UserName      string `json:"userName,omitempty" db:"user_name"`
	UserImage     string `json:"userImage,omitempty" db:"user_image"`
	IsAnonymous   bool   `json:"isAnonymous,omitempty" db:"is_anonymous"`
	UserIsPremium bool   `json:"userIsPremium,omitempty" db:"user_is_premium"`
	ActiveBadgeID string `json:"activeBadgeId,omitempty" db:"active_badge_id"`
}

// AgeMillis returns the post age relative to now (both in ms epoch)
func (p *Post) AgeMillis(nowMillis int64) int64 {
	return nowMillis - p.Timestamp
}
