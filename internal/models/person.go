package models

// Person represents a live position on the map (self or a friend)
type Person struct {
	ID       string  `json:"id" db:"id"`
	Lat      float64 `json:"lat" db:"lat"`
	Lng      float64 `json:"lng" db:"lng"`
	LastSeen int64   `json:"lastSeen,omitempty" db:"last_seen"` // Unix timestamp (milliseconds), 0 if unknown
	IsSelf   bool    `json:"isSelf" db:"is_self"`

	// Opaque payload, passed through to render output
	Name  string `json:"name,omitempty" db:"name"`
	Image string `json:"image,omitempty" db:"image"`
}
