package geo

import "math"

// Equirectangular converts WGS84 Lon/Lat into pixel coordinates on a
// width x height plate carrée canvas.
//
// Longitude [-180, 180] maps to x [0, width], latitude [90, -90] maps to
// y [0, height]. Out of range input is clamped to the canvas edge.
func Equirectangular(lon, lat float64, width, height int) (x, y float64) {
	lon = clamp(lon, -180, 180)
	lat = clamp(lat, -90, 90)

	x = (lon + 180.0) / 360.0 * float64(width)
	y = (90.0 - lat) / 180.0 * float64(height)

	return x, y
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
