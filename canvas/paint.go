package canvas

import (
	"vecsketch/core"
	"vecsketch/geometry"
	"vecsketch/render"
)

// Paint redraws the whole scene: grid, committed shapes in order, then the
// draft with its control lines and markers on top.
func (r *Raster) Paint(scene *render.Scene) {
	r.Clear()

	if grid := scene.Grid(); grid.Visible {
		r.drawGrid(grid)
	}

	for _, e := range scene.Shapes() {
		r.DrawElement(e)
	}

	if draft, ok := scene.Draft(); ok {
		r.DrawElement(draft)
	}

	for _, seg := range scene.ControlLines() {
		r.drawControlLine(seg)
	}

	for _, m := range scene.Markers() {
		glyph := r.glyphs.ControlPoint
		if m.Color == render.EndpointColor {
			glyph = r.glyphs.Endpoint
		}
		r.Plot(m.Center, glyph, m.Color)
	}
}

// DrawElement draws one shape with its stroke and, for closed shapes, fill.
// Elements with the wrong number of points are skipped.
func (r *Raster) DrawElement(e render.Element) {
	if len(e.Points) != e.Kind.PointCount() {
		return
	}

	fill := e.Style.Fill(e.Kind)
	p := e.Points

	switch e.Kind {
	case core.Bezier:
		r.DrawCubic(p[0], p[1], p[2], p[3], e.Style.StrokeColor)
	case core.Line:
		r.DrawLine(p[0], p[1], e.Style.StrokeColor)
	case core.Rectangle:
		rect := geometry.NormalizeRect(p[0], p[1])
		if fill != "none" {
			r.FillRect(rect, fill)
		}
		r.DrawRect(rect, e.Style.StrokeColor)
	case core.Circle:
		radius := geometry.Distance(p[0], p[1])
		if fill != "none" {
			r.FillCircle(p[0], radius, fill)
		}
		r.DrawCircle(p[0], radius, e.Style.StrokeColor)
	}
}

// drawGrid marks grid intersections. Lines would drown the shapes at
// terminal resolution.
func (r *Raster) drawGrid(grid render.GridOverlay) {
	var xs, ys []float64
	for _, seg := range grid.Lines {
		if seg.A.X == seg.B.X {
			xs = append(xs, seg.A.X)
		} else {
			ys = append(ys, seg.A.Y)
		}
	}
	for _, y := range ys {
		for _, x := range xs {
			r.Plot(geometry.Pt(x, y), r.glyphs.GridDot, render.ControlLineColor)
		}
	}
}

func (r *Raster) drawControlLine(seg render.Segment) {
	x1, y1 := r.ToCell(seg.A)
	x2, y2 := r.ToCell(seg.B)
	r.line(x1, y1, x2, y2, Cell{Rune: r.glyphs.ControlLine, Color: render.ControlLineColor})
}
