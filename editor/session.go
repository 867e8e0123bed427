package editor

import (
	"log/slog"

	"vecsketch/core"
	"vecsketch/geometry"
	"vecsketch/input"
	"vecsketch/render"
)

// Settings is the live style panel. Values are read on every event, so
// changes apply to the next gesture without notifying the session.
type Settings interface {
	Style() core.Style
	// SnapGrid returns the snapping grid; Enabled is the snap toggle.
	SnapGrid() geometry.Grid
}

// touchAware is implemented by renderers that size markers for touch input.
type touchAware interface {
	SetTouch(touch bool)
}

// Session ties the draft state machine, the history and a renderer together
// for a front end. It is not safe for concurrent use: every call must come
// from the single event loop.
type Session struct {
	state    State
	history  *History
	renderer render.Renderer
	settings Settings
	viewport input.Viewport
	taps     *input.TapDetector
	pressed  bool
	logger   *slog.Logger
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *slog.Logger) SessionOption {
	return func(s *Session) { s.logger = l }
}

// WithViewport sets the initial viewport used for raw pointer events.
func WithViewport(vp input.Viewport) SessionOption {
	return func(s *Session) { s.viewport = vp }
}

// NewSession creates an idle session drawing the given kind.
func NewSession(r render.Renderer, settings Settings, kind core.ShapeKind, opts ...SessionOption) *Session {
	s := &Session{
		state:    NewState(kind),
		history:  NewHistory(r),
		renderer: r,
		settings: settings,
		taps:     input.NewTapDetector(),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a copy of the current draft state.
func (s *Session) State() State {
	return s.state.Clone()
}

// Kind returns the current tool.
func (s *Session) Kind() core.ShapeKind {
	return s.state.Kind
}

// History returns the committed shape log.
func (s *Session) History() *History {
	return s.history
}

// Pressed reports whether a pointer gesture is in progress.
func (s *Session) Pressed() bool {
	return s.pressed
}

// SetViewport replaces the mapping from client to canvas coordinates.
func (s *Session) SetViewport(vp input.Viewport) {
	s.viewport = vp
}

func (s *Session) env() Env {
	return Env{Style: s.settings.Style(), Grid: s.settings.SnapGrid()}
}

// Dispatch runs one event through the state machine, applies its renderer
// commands and commits any completed shape. It returns the committed shape.
func (s *Session) Dispatch(ev Event) *core.Shape {
	res := Step(s.state, ev, s.env())
	s.state = res.State
	render.Apply(s.renderer, res.Commands...)

	if res.Completed != nil {
		s.history.Append(*res.Completed)
		s.logger.Debug("shape committed",
			"kind", res.Completed.Kind.String(),
			"points", len(res.Completed.Points),
			"history", s.history.Len())
	}
	return res.Completed
}

// HandleRaw feeds a host pointer event into the editor. Pointer releases
// also drive double-tap detection, which finalizes an open curve.
func (s *Session) HandleRaw(ev input.RawEvent) {
	switch ev.Phase {
	case input.PhaseDown, input.PhaseMove:
		p, ok := s.viewport.Normalize(ev)
		if !ok {
			return
		}
		if ev.Phase == input.PhaseDown {
			s.pressed = true
			if t, ok := s.renderer.(touchAware); ok {
				t.SetTouch(ev.Source == input.Touch)
			}
			s.Dispatch(PointerDown(p.X, p.Y))
			return
		}
		s.Dispatch(PointerMove(p.X, p.Y))
	default:
		s.pressed = false
		s.Dispatch(PointerUp())
		if ev.Phase == input.PhaseUp && s.taps.Release(ev.Time) {
			s.Dispatch(Finalize())
		}
	}
}

// SelectKind switches the tool, discarding any draft.
func (s *Session) SelectKind(kind core.ShapeKind) {
	if kind == s.state.Kind && s.state.Idle() {
		return
	}
	s.Dispatch(SelectKind(kind))
	s.logger.Debug("tool selected", "kind", kind.String())
}

// Cancel discards the draft.
func (s *Session) Cancel() {
	s.Dispatch(Cancel())
}

// Restyle redraws an open draft with the current panel style.
func (s *Session) Restyle() {
	s.Dispatch(Restyle())
}

// Undo discards any draft and removes the most recent committed shape.
func (s *Session) Undo() (core.Shape, bool) {
	s.Cancel()
	shape, ok := s.history.Undo()
	if ok {
		s.logger.Info("undo", "kind", shape.Kind.String(), "history", s.history.Len())
	}
	return shape, ok
}

// Clear empties the canvas: the draft is discarded and every committed
// shape removed.
func (s *Session) Clear() {
	s.Cancel()
	n := s.history.Len()
	s.history.Clear()
	s.logger.Info("canvas cleared", "removed", n)
}

// HandleKey resolves and performs a key binding. textFocused suppresses
// keys that would otherwise edit the canvas while the user types.
func (s *Session) HandleKey(k Key, textFocused bool) Action {
	action := ResolveKey(k, textFocused)
	switch action {
	case ActionUndo:
		s.Undo()
	case ActionClear:
		s.Clear()
	case ActionCancel:
		s.Cancel()
	case ActionFinalize:
		s.Dispatch(Finalize())
	}
	return action
}

// ShowGrid rebuilds the grid overlay for the cell size across bounds.
func (s *Session) ShowGrid(cellSize int, visible bool, bounds geometry.Rect) {
	s.renderer.RebuildGrid(cellSize, bounds)
	s.renderer.SetGridVisible(visible)
}

// Document returns the committed shapes as an exportable document. Drafts
// are never part of it.
func (s *Session) Document(width, height float64) *core.Document {
	return &core.Document{Width: width, Height: height, Shapes: s.history.Snapshot()}
}
