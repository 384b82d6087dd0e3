package models

// Center represents the viewport center coordinate
type Center struct {
	Lat float64 `json:"lat" form:"centerLat"`
	Lng float64 `json:"lng" form:"centerLng"`
}

// Viewport represents the visible map region supplied by the renderer
// on every move/zoom event
type Viewport struct {
	North  float64 `json:"north" form:"north"`
	South  float64 `json:"south" form:"south"`
	East   float64 `json:"east" form:"east"`
	West   float64 `json:"west" form:"west"`
	Zoom   float64 `json:"zoom" form:"zoom"`
	Center Center  `json:"center"`
}

// LatSpan returns the latitude span of the viewport in degrees
func (v Viewport) LatSpan() float64 {
	return v.North - v.South
}

// LngSpan returns the longitude span of the viewport in degrees
func (v Viewport) LngSpan() float64 {
	return v.East - v.West
}

// Contains reports whether the coordinate falls inside the viewport,
// expanded by the given buffer fraction of its span in each direction
func (v Viewport) Contains(lat, lng, bufferFraction float64) bool {
	latBuffer := v.LatSpan() * bufferFraction
	lngBuffer := v.LngSpan() * bufferFraction
	return lat >= v.South-latBuffer && lat <= v.North+latBuffer &&
		lng >= v.West-lngBuffer && lng <= v.East+lngBuffer
}
