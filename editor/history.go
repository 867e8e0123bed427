package editor

import (
	"vecsketch/core"
	"vecsketch/render"
)

// History is the ordered log of committed shapes. Drawing order is append
// order. Each entry keeps the renderer handle of its permanent element so
// undo and clear can take it off the canvas.
type History struct {
	entries  []historyEntry
	renderer render.Renderer
}

type historyEntry struct {
	shape  core.Shape
	handle render.Handle
}

// NewHistory creates an empty history that commits shapes to r
func NewHistory(r render.Renderer) *History {
	return &History{renderer: r}
}

// Append commits a shape: the renderer draws it permanently and the history
// records it. Append always succeeds.
func (h *History) Append(shape core.Shape) {
	shape = shape.Clone()
	handle := h.renderer.CommitShape(shape.Kind, shape.Points, shape.Style)
	h.entries = append(h.entries, historyEntry{shape: shape, handle: handle})
}

// Undo removes the most recent shape. It reports false when the history is
// empty.
func (h *History) Undo() (core.Shape, bool) {
	if len(h.entries) == 0 {
		return core.Shape{}, false
	}
	last := h.entries[len(h.entries)-1]
	h.entries[len(h.entries)-1] = historyEntry{}
	h.entries = h.entries[:len(h.entries)-1]
	h.renderer.RemoveShape(last.handle)
	return last.shape, true
}

// Clear removes every shape
func (h *History) Clear() {
	for _, e := range h.entries {
		h.renderer.RemoveShape(e.handle)
	}
	h.entries = nil
}

// Len returns the number of committed shapes
func (h *History) Len() int {
	return len(h.entries)
}

// Snapshot returns a copy of the committed shapes in drawing order.
func (h *History) Snapshot() []core.Shape {
	shapes := make([]core.Shape, len(h.entries))
	for i, e := range h.entries {
		shapes[i] = e.shape.Clone()
	}
	return shapes
}
