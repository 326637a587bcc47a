// Package grid provides grid alignment for slot positions on the floor map.
package grid

import "math"

// DefaultSize is the grid pitch in pixels used when no size is configured.
const DefaultSize = 20.0

// Point is a position or a movement delta on the floor map, in pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Snap rounds value to the nearest multiple of gridSize.
// Halfway values round away from zero, so Snap(30, 20) == 40 and
// Snap(-30, 20) == -40. gridSize must be positive; a non-positive
// gridSize returns value unchanged.
func Snap(value, gridSize float64) float64 {
	if gridSize <= 0 {
		return value
	}
	return math.Round(value/gridSize) * gridSize
}

// SnapPosition applies a drag delta to a position and snaps the result
// to the grid. Each axis snaps independently.
func SnapPosition(pos, delta Point, gridSize float64) Point {
	return Point{
		X: Snap(pos.X+delta.X, gridSize),
		Y: Snap(pos.Y+delta.Y, gridSize),
	}
}
