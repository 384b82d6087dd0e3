package spatial

import "math"

const (
	// MaxLat is the furthest latitude a displaced point may reach; beyond
	// this, map projections downstream become invalid.
	MaxLat = 89.9999

	tileSize = 512.0
)

// PixelsPerDegree returns the screen pixels per degree of latitude at the
// given zoom level
func PixelsPerDegree(zoom float64) float64 {
	return tileSize * math.Pow(2, zoom) / 360.0
}

// PixelDistance returns the on-screen distance in pixels between two
// coordinates at the given zoom. Longitude is scaled by cos(latitude).
func PixelDistance(lat1, lng1, lat2, lng2, zoom float64) float64 {
	ppd := PixelsPerDegree(zoom)
	dy := (lat2 - lat1) * ppd
	dx := (lng2 - lng1) * ppd * math.Cos(lat1*math.Pi/180)
	return math.Sqrt(dx*dx + dy*dy)
}

// MaxShiftDegrees returns the maximum repulsion displacement at the given
// zoom, expressed in degrees-equivalent. Works out to roughly 40 screen
// pixels at any zoom.
func MaxShiftDegrees(zoom float64) float64 {
	return 28.125 / math.Pow(2, zoom)
}

// ClampLat restricts a latitude to the valid projection range
func ClampLat(lat float64) float64 {
	if lat > MaxLat {
		return MaxLat
	}
	if lat < -MaxLat {
		return -MaxLat
	}
	return lat
}

// NormalizeLng wraps a longitude into (-180, 180]
func NormalizeLng(lng float64) float64 {
	lng = math.Mod(lng, 360)
	if lng > 180 {
		lng -= 360
	} else if lng <= -180 {
		lng += 360
	}
	return lng
}
