package render

import (
	"slices"

	"github.com/google/uuid"

	"vecsketch/core"
	"vecsketch/geometry"
)

// Element is one drawable shape held by a Scene.
type Element struct {
	Handle Handle
	Kind   core.ShapeKind
	Points []geometry.Point
	Style  core.Style
}

// GridOverlay is the visual grid state.
type GridOverlay struct {
	Visible  bool
	CellSize int
	Bounds   geometry.Rect
	Lines    []Segment
}

// Scene is a retained Renderer: it keeps the element set in memory so a front
// end can paint it and tests can inspect it. Committed elements are kept in
// drawing order.
//
// Scene is not safe for concurrent use; all calls happen on the event loop.
type Scene struct {
	draft    *Element
	shapes   []Element
	grid     GridOverlay
	touch    bool
	revision uint64

	newHandle func() Handle
}

var _ Renderer = (*Scene)(nil)

// NewScene creates an empty scene with a visible grid and no cells built yet.
func NewScene() *Scene {
	return &Scene{
		grid:      GridOverlay{Visible: true},
		newHandle: func() Handle { return Handle(uuid.NewString()) },
	}
}

// DrawDraft replaces the draft element.
func (s *Scene) DrawDraft(kind core.ShapeKind, points []geometry.Point, style core.Style) {
	s.draft = &Element{Kind: kind, Points: slices.Clone(points), Style: style}
	s.touched()
}

// ClearDraft removes the draft element and its markers.
func (s *Scene) ClearDraft() {
	if s.draft == nil {
		return
	}
	s.draft = nil
	s.touched()
}

// CommitShape appends a permanent element.
func (s *Scene) CommitShape(kind core.ShapeKind, points []geometry.Point, style core.Style) Handle {
	h := s.newHandle()
	s.shapes = append(s.shapes, Element{Handle: h, Kind: kind, Points: slices.Clone(points), Style: style})
	s.touched()
	return h
}

// RemoveShape deletes the element with the given handle. Unknown handles are ignored.
func (s *Scene) RemoveShape(h Handle) {
	i := slices.IndexFunc(s.shapes, func(e Element) bool { return e.Handle == h })
	if i < 0 {
		return
	}
	s.shapes = slices.Delete(s.shapes, i, i+1)
	s.touched()
}

// SetGridVisible toggles the overlay without rebuilding it.
func (s *Scene) SetGridVisible(visible bool) {
	if s.grid.Visible == visible {
		return
	}
	s.grid.Visible = visible
	s.touched()
}

// RebuildGrid regenerates the overlay lines for the cell size across bounds.
func (s *Scene) RebuildGrid(cellSize int, bounds geometry.Rect) {
	vertical, horizontal := geometry.GridLines(cellSize, bounds)
	lines := make([]Segment, 0, len(vertical)+len(horizontal))
	for _, x := range vertical {
		lines = append(lines, Segment{A: geometry.Pt(x, bounds.Y), B: geometry.Pt(x, bounds.Y+bounds.Height)})
	}
	for _, y := range horizontal {
		lines = append(lines, Segment{A: geometry.Pt(bounds.X, y), B: geometry.Pt(bounds.X+bounds.Width, y)})
	}
	s.grid.CellSize = cellSize
	s.grid.Bounds = bounds
	s.grid.Lines = lines
	s.touched()
}

// SetTouch switches control markers to the larger touch size.
func (s *Scene) SetTouch(touch bool) {
	if s.touch == touch {
		return
	}
	s.touch = touch
	s.touched()
}

// Draft returns the draft element, if one is shown.
func (s *Scene) Draft() (Element, bool) {
	if s.draft == nil {
		return Element{}, false
	}
	return *s.draft, true
}

// Markers returns the control point markers of the current draft.
func (s *Scene) Markers() []Marker {
	if s.draft == nil {
		return nil
	}
	return ControlMarkers(s.draft.Kind, s.draft.Points, s.touch)
}

// ControlLines returns the control lines of the current draft.
func (s *Scene) ControlLines() []Segment {
	if s.draft == nil {
		return nil
	}
	return ControlLines(s.draft.Kind, s.draft.Points)
}

// Shapes returns the committed elements in drawing order.
func (s *Scene) Shapes() []Element {
	return slices.Clone(s.shapes)
}

// Grid returns the overlay state.
func (s *Scene) Grid() GridOverlay {
	return s.grid
}

// Revision increases every time the scene changes. Front ends compare it to
// skip repaints.
func (s *Scene) Revision() uint64 {
	return s.revision
}

func (s *Scene) touched() {
	s.revision++
}
