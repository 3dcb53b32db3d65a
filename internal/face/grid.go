package face

import (
	"strings"

	"github.com/tartampluch/go-analogclock/internal/config"
)

// Grid is a fixed-size, row-major rune buffer.
// Writes outside the grid are discarded, so callers never need bounds checks.
// Copies of a Grid value share the same cells.
type Grid struct {
	width  int
	height int
	cells  []rune
}

// NewGrid returns a width × height grid filled with blanks.
// Negative dimensions are treated as zero.
func NewGrid(width, height int) Grid {
	width = max(width, 0)
	height = max(height, 0)

	cells := make([]rune, width*height)
	for i := range cells {
		cells[i] = config.GlyphBlank
	}
	return Grid{width: width, height: height, cells: cells}
}

// Width returns the number of columns.
func (g Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g Grid) Height() int { return g.height }

// Contains reports whether (x, y) lies inside the grid.
func (g Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Set writes r at (x, y). It reports false, and writes nothing, when the
// cell is out of bounds.
func (g Grid) Set(x, y int, r rune) bool {
	if !g.Contains(x, y) {
		return false
	}
	g.cells[y*g.width+x] = r
	return true
}

// SetPoint is Set for a Point.
func (g Grid) SetPoint(p Point, r rune) bool {
	return g.Set(p.X, p.Y, r)
}

// At returns the rune at (x, y). ok is false for out-of-bounds cells.
func (g Grid) At(x, y int) (r rune, ok bool) {
	if !g.Contains(x, y) {
		return 0, false
	}
	return g.cells[y*g.width+x], true
}

// Row returns row y as a string, or "" when y is out of range.
func (g Grid) Row(y int) string {
	if y < 0 || y >= g.height {
		return ""
	}
	return string(g.cells[y*g.width : (y+1)*g.width])
}

// Lines returns every row, top to bottom.
func (g Grid) Lines() []string {
	lines := make([]string, g.height)
	for y := range lines {
		lines[y] = g.Row(y)
	}
	return lines
}

// String joins the rows with newlines.
func (g Grid) String() string {
	return strings.Join(g.Lines(), config.NewLine)
}
