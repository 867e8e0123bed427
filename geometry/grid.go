package geometry

import "math"

// Grid describes the snapping grid. Enabled means coordinates are snapped.
type Grid struct {
	Enabled  bool
	CellSize int
}

// Snap rounds each coordinate of p to the nearest multiple of the cell size
// when the grid is enabled. Halves round towards +Inf on both axes, so
// -25 on a 10 grid snaps to -20 and 25 snaps to 30.
func Snap(p Point, g Grid) Point {
	if !g.Enabled || g.CellSize <= 0 {
		return p
	}
	size := float64(g.CellSize)
	return Point{
		X: math.Floor(p.X/size+0.5) * size,
		Y: math.Floor(p.Y/size+0.5) * size,
	}
}

// GridLines returns the overlay lines for a grid of the given cell size
// across bounds. Lines start one cell in from the origin and stop short of
// the far edge, matching the overlay the editor has always drawn.
func GridLines(cellSize int, bounds Rect) (vertical, horizontal []float64) {
	if cellSize <= 0 {
		return nil, nil
	}
	step := float64(cellSize)
	for x := bounds.X + step; x < bounds.X+bounds.Width; x += step {
		vertical = append(vertical, x)
	}
	for y := bounds.Y + step; y < bounds.Y+bounds.Height; y += step {
		horizontal = append(horizontal, y)
	}
	return vertical, horizontal
}
