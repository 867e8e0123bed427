// Package canvas rasterizes vector scenes onto a grid of terminal cells.
package canvas

import (
	"errors"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"vecsketch/geometry"
)

// Common errors
var (
	ErrOutOfBounds = errors.New("position out of bounds")
	ErrInvalidSize = errors.New("invalid canvas size")
)

// cellEpsilon absorbs float error when mapping logical positions that sit
// exactly on a cell boundary.
const cellEpsilon = 1e-9

// Cell is one character cell: the glyph and its #rrggbb color. An empty
// Color means the terminal default.
type Cell struct {
	Rune  rune
	Color string
}

// blank is an empty cell.
var blank = Cell{Rune: ' '}

// Raster is a matrix of colored cells with vector drawing primitives.
// Drawing takes logical canvas coordinates and scales them onto cells, so a
// view of any logical size fits the terminal.
//
// Raster is NOT thread-safe; it is painted from the event loop only.
//
// Coordinate System:
//   - Origin (0,0) is top-left
//   - X increases rightward
//   - Y increases downward
//   - Cell (i, j) covers logical [i*sx, (i+1)*sx) x [j*sy, (j+1)*sy)
type Raster struct {
	cells  [][]Cell
	width  int
	height int
	sx, sy float64
	glyphs Glyphs
}

// NewRaster creates a raster of the given size in cells. Until SetView is
// called one logical unit maps to one cell.
func NewRaster(width, height int, glyphs Glyphs) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}

	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
		for x := range cells[y] {
			cells[y][x] = blank
		}
	}

	return &Raster{
		cells:  cells,
		width:  width,
		height: height,
		sx:     1,
		sy:     1,
		glyphs: glyphs,
	}, nil
}

// SetView maps a logical canvas of the given size onto the whole raster.
func (r *Raster) SetView(logicalWidth, logicalHeight float64) {
	r.sx, r.sy = 1, 1
	if logicalWidth > 0 {
		r.sx = logicalWidth / float64(r.width)
	}
	if logicalHeight > 0 {
		r.sy = logicalHeight / float64(r.height)
	}
}

// Size returns the width and height in cells.
func (r *Raster) Size() (width, height int) {
	return r.width, r.height
}

// Glyphs returns the glyph set in use.
func (r *Raster) Glyphs() Glyphs {
	return r.glyphs
}

// ToCell maps a logical point to the cell containing it.
func (r *Raster) ToCell(p geometry.Point) (x, y int) {
	return int(math.Floor(p.X/r.sx + cellEpsilon)), int(math.Floor(p.Y/r.sy + cellEpsilon))
}

// Get returns the cell at the given position.
// Returns a blank cell if position is out of bounds.
func (r *Raster) Get(x, y int) Cell {
	if !r.inside(x, y) {
		return blank
	}
	return r.cells[y][x]
}

// Set places a cell at the given position.
// Returns error if position is out of bounds.
func (r *Raster) Set(x, y int, c Cell) error {
	if !r.inside(x, y) {
		return ErrOutOfBounds
	}
	r.cells[y][x] = c
	return nil
}

// Clear resets the raster to blank cells.
func (r *Raster) Clear() {
	for y := range r.cells {
		for x := range r.cells[y] {
			r.cells[y][x] = blank
		}
	}
}

// String returns the glyphs as text, one line per row.
func (r *Raster) String() string {
	var sb strings.Builder
	sb.Grow(r.height * (r.width + 1))

	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			ch := r.cells[y][x].Rune
			if ch == 0 {
				// Wide character continuation
				continue
			}
			sb.WriteRune(ch)
		}
		if y < r.height-1 {
			sb.WriteRune('\n')
		}
	}

	return sb.String()
}

// DrawLine draws a straight segment between two logical points.
func (r *Raster) DrawLine(a, b geometry.Point, color string) {
	x1, y1 := r.ToCell(a)
	x2, y2 := r.ToCell(b)
	r.line(x1, y1, x2, y2, Cell{Rune: r.glyphs.lineGlyph(x2-x1, y2-y1), Color: color})
}

// DrawPolyline draws connected segments through points.
func (r *Raster) DrawPolyline(points []geometry.Point, color string) {
	for i := 1; i < len(points); i++ {
		r.DrawLine(points[i-1], points[i], color)
	}
}

// DrawRect draws the outline of a rectangle.
func (r *Raster) DrawRect(rect geometry.Rect, color string) {
	x1, y1 := r.ToCell(rect.Min())
	x2, y2 := r.ToCell(rect.Max())
	g := r.glyphs

	if x1 == x2 || y1 == y2 {
		r.DrawLine(rect.Min(), rect.Max(), color)
		return
	}

	r.line(x1, y1, x2, y1, Cell{Rune: g.Horizontal, Color: color})
	r.line(x1, y2, x2, y2, Cell{Rune: g.Horizontal, Color: color})
	r.line(x1, y1, x1, y2, Cell{Rune: g.Vertical, Color: color})
	r.line(x2, y1, x2, y2, Cell{Rune: g.Vertical, Color: color})

	r.setClipped(x1, y1, Cell{Rune: g.TopLeft, Color: color})
	r.setClipped(x2, y1, Cell{Rune: g.TopRight, Color: color})
	r.setClipped(x1, y2, Cell{Rune: g.BottomLeft, Color: color})
	r.setClipped(x2, y2, Cell{Rune: g.BottomRight, Color: color})
}

// FillRect shades the interior of a rectangle.
func (r *Raster) FillRect(rect geometry.Rect, color string) {
	x1, y1 := r.ToCell(rect.Min())
	x2, y2 := r.ToCell(rect.Max())
	for y := max(y1+1, 0); y < min(y2, r.height); y++ {
		for x := max(x1+1, 0); x < min(x2, r.width); x++ {
			r.cells[y][x] = Cell{Rune: r.glyphs.Fill, Color: color}
		}
	}
}

// DrawCircle draws a circle outline by sampling it into a closed polyline.
func (r *Raster) DrawCircle(center geometry.Point, radius float64, color string) {
	if radius <= 0 {
		x, y := r.ToCell(center)
		r.setClipped(x, y, Cell{Rune: r.glyphs.Point, Color: color})
		return
	}
	r.DrawPolyline(r.circlePoints(center, radius), color)
}

// FillCircle shades the cells whose centers fall inside the circle.
func (r *Raster) FillCircle(center geometry.Point, radius float64, color string) {
	x1, y1 := r.ToCell(geometry.Pt(center.X-radius, center.Y-radius))
	x2, y2 := r.ToCell(geometry.Pt(center.X+radius, center.Y+radius))
	for y := max(y1, 0); y <= min(y2, r.height-1); y++ {
		for x := max(x1, 0); x <= min(x2, r.width-1); x++ {
			mid := geometry.Pt((float64(x)+0.5)*r.sx, (float64(y)+0.5)*r.sy)
			if geometry.Distance(mid, center) < radius {
				r.cells[y][x] = Cell{Rune: r.glyphs.Fill, Color: color}
			}
		}
	}
}

func (r *Raster) circlePoints(center geometry.Point, radius float64) []geometry.Point {
	cells := radius / min(r.sx, r.sy)
	n := max(16, int(math.Ceil(2*math.Pi*cells)))
	points := make([]geometry.Point, n+1)
	for i := 0; i <= n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		points[i] = geometry.Pt(center.X+radius*math.Cos(a), center.Y+radius*math.Sin(a))
	}
	return points
}

// DrawCubic draws a cubic Bezier curve from p0 to p3 with controls p1, p2.
func (r *Raster) DrawCubic(p0, p1, p2, p3 geometry.Point, color string) {
	tolerance := min(r.sx, r.sy)
	segments := geometry.CubicSegments(p0, p1, p2, p3, tolerance)
	r.DrawPolyline(geometry.FlattenCubic(p0, p1, p2, p3, segments), color)
}

// Plot sets a single glyph at the cell containing p.
func (r *Raster) Plot(p geometry.Point, ch rune, color string) {
	x, y := r.ToCell(p)
	r.setClipped(x, y, Cell{Rune: ch, Color: color})
}

// DrawText renders text at the specified cell. Wide characters take two
// cells; text past the right edge is cut.
func (r *Raster) DrawText(x, y int, text, color string) error {
	if y < 0 || y >= r.height {
		return ErrOutOfBounds
	}

	currentX := x
	for _, ch := range text {
		width := runewidth.RuneWidth(ch)
		if width == 0 {
			continue
		}
		if width == 2 && currentX >= 0 && currentX+1 >= r.width {
			break
		}

		if currentX >= 0 && currentX < r.width {
			r.cells[y][currentX] = Cell{Rune: ch, Color: color}
			if width == 2 {
				r.cells[y][currentX+1] = Cell{Rune: 0, Color: color}
			}
		}

		currentX += width
		if currentX >= r.width {
			break
		}
	}

	return nil
}

// line draws between two cells using Bresenham's algorithm.
func (r *Raster) line(x1, y1, x2, y2 int, c Cell) {
	dx := geometry.Abs(x2 - x1)
	dy := geometry.Abs(y2 - y1)

	x, y := x1, y1

	xInc := 1
	if x1 > x2 {
		xInc = -1
	}

	yInc := 1
	if y1 > y2 {
		yInc = -1
	}

	if dx > dy {
		err := dx / 2
		for x != x2 {
			r.setClipped(x, y, c)
			err -= dy
			if err < 0 {
				y += yInc
				err += dx
			}
			x += xInc
		}
	} else {
		err := dy / 2
		for y != y2 {
			r.setClipped(x, y, c)
			err -= dx
			if err < 0 {
				x += xInc
				err += dy
			}
			y += yInc
		}
	}

	r.setClipped(x2, y2, c)
}

func (r *Raster) inside(x, y int) bool {
	return x >= 0 && x < r.width && y >= 0 && y < r.height
}

// setClipped sets a cell with bounds checking (no error).
func (r *Raster) setClipped(x, y int, c Cell) {
	if r.inside(x, y) {
		r.cells[y][x] = c
	}
}
