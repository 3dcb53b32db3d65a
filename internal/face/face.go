package face

import (
	"fmt"
	"math"

	"github.com/tartampluch/go-analogclock/internal/config"
	"github.com/tartampluch/go-analogclock/internal/engine"
)

// Layout fixes the grid size and the position of the face inside it.
type Layout struct {
	Width   int
	Height  int
	CenterX int
	CenterY int
	Radius  int
}

// DefaultLayout is the 80 × 24 face drawn by the terminal.
func DefaultLayout() Layout {
	return Layout{
		Width:   config.FaceWidth,
		Height:  config.FaceHeight,
		CenterX: config.FaceCenterX,
		CenterY: config.FaceCenterY,
		Radius:  config.FaceRadius,
	}
}

// Center returns the pivot cell.
func (l Layout) Center() Point {
	return Point{X: l.CenterX, Y: l.CenterY}
}

// Rasterize draws the full face for t into a fresh grid: rim, hour labels,
// hour/minute/second hands and the pivot, in that order.
func Rasterize(t engine.ClockTime, l Layout) Grid {
	g := NewGrid(l.Width, l.Height)

	drawRim(g, l)
	for hour := 1; hour <= config.HoursOnFace; hour++ {
		drawHourLabel(g, l, hour)
	}
	for _, kind := range Hands() {
		drawHand(g, l, kind, kind.Angle(t))
	}
	g.SetPoint(l.Center(), config.GlyphPivot)

	return g
}

// drawRim samples the circle every config.RimStep radians. Small radii leave
// visible gaps between samples; that is how the face is meant to look.
func drawRim(g Grid, l Layout) {
	for i := 0; i < config.RimSamples; i++ {
		angle := float64(i) * config.RimStep
		g.SetPoint(MapPoint(l.CenterX, l.CenterY, angle, float64(l.Radius)), config.GlyphRim)
	}
}

// drawHourLabel writes the right-justified two-character numeral for hour
// just outside the rim, starting at the mapped cell.
func drawHourLabel(g Grid, l Layout, hour int) {
	angle := float64(hour%config.HoursOnFace) * config.DegreesPerHour * math.Pi / 180
	p := MapPoint(l.CenterX, l.CenterY, angle, float64(l.Radius+config.LabelOffset))

	label := []rune(fmt.Sprintf(config.LabelFormat, hour))
	for i, r := range label {
		g.Set(p.X+i, p.Y, r)
	}
}

// drawHand walks from the centre to the hand tip and stamps the hand glyph
// on every visited cell.
func drawHand(g Grid, l Layout, kind HandKind, angle float64) {
	radius := float64(l.Radius) * kind.RadiusFraction()
	end := MapPoint(l.CenterX, l.CenterY, angle, radius)
	glyph := kind.Glyph(angle)

	for _, p := range linePoints(l.Center(), end) {
		g.SetPoint(p, glyph)
	}
}

// linePoints returns round(|to-from|)+1 cells from 'from' to 'to'.
// Intermediate coordinates use integer division, truncating toward zero.
// A zero-length line yields only 'from'.
func linePoints(from, to Point) []Point {
	dx := to.X - from.X
	dy := to.Y - from.Y
	steps := int(math.Round(math.Hypot(float64(dx), float64(dy))))
	if steps == 0 {
		return []Point{from}
	}

	points := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		points = append(points, Point{
			X: from.X + dx*i/steps,
			Y: from.Y + dy*i/steps,
		})
	}
	return points
}
