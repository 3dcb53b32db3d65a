// Package face rasterizes an analog clock face into a fixed-size rune grid.
// Everything here is pure: a frame is computed from a ClockTime and a Layout
// and never depends on a previous frame.
package face

import (
	"math"

	"github.com/tartampluch/go-analogclock/internal/config"
)

// Point is an integer cell coordinate. X grows rightwards, Y downwards.
type Point struct {
	X int
	Y int
}

// MapPoint converts a polar coordinate around (centerX, centerY) into a cell.
// Angle is in radians, 0 at 12 o'clock and increasing clockwise. The
// horizontal distance is doubled so that the face looks round on a grid of
// cells that are about twice as tall as they are wide.
func MapPoint(centerX, centerY int, angle, radius float64) Point {
	return Point{
		X: centerX + int(math.Round(radius*config.HorizontalScale*math.Sin(angle))),
		Y: centerY - int(math.Round(radius*math.Cos(angle))),
	}
}

// normalizeAngle folds angle into [0, 2π).
func normalizeAngle(angle float64) float64 {
	a := math.Mod(angle, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}
