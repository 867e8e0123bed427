// Package render defines the contract between the editor core and whatever
// draws shapes, plus a retained in-memory Scene that satisfies it.
package render

import (
	"vecsketch/core"
	"vecsketch/geometry"
)

// Handle identifies a committed shape inside a renderer. Callers treat it as
// opaque and only hand it back to RemoveShape.
type Handle string

// Renderer is the interface the editor core needs for drawing. The core never
// inspects visual elements; it only creates and destroys them through these calls.
type Renderer interface {
	// DrawDraft shows the in-progress shape and its control markers. It may be
	// called on every pointer move and must replace whatever draft was shown.
	DrawDraft(kind core.ShapeKind, points []geometry.Point, style core.Style)
	// ClearDraft removes the draft shape and its markers.
	ClearDraft()
	// CommitShape materializes a permanent shape and returns its handle.
	CommitShape(kind core.ShapeKind, points []geometry.Point, style core.Style) Handle
	// RemoveShape destroys a shape created by CommitShape.
	RemoveShape(h Handle)
	// SetGridVisible toggles the grid overlay.
	SetGridVisible(visible bool)
	// RebuildGrid regenerates the overlay for a new cell size or canvas size.
	RebuildGrid(cellSize int, bounds geometry.Rect)
}
