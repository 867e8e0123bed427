package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// MouseTracker converts tcell mouse events into RawEvents. Terminals report
// which buttons are held rather than press and release edges, so the tracker
// remembers the previous primary button state. Other buttons are ignored.
type MouseTracker struct {
	pressed bool
}

// Pressed reports whether the primary button is currently held.
func (m *MouseTracker) Pressed() bool {
	return m.pressed
}

// Translate returns the RawEvent for ev. Motion with no button held is
// reported as PhaseMove so hover still reaches the editor.
func (m *MouseTracker) Translate(ev *tcell.EventMouse) RawEvent {
	x, y := ev.Position()
	down := ev.Buttons()&tcell.ButtonPrimary != 0

	phase := PhaseMove
	switch {
	case down && !m.pressed:
		phase = PhaseDown
	case !down && m.pressed:
		phase = PhaseUp
	}
	m.pressed = down

	when := ev.When()
	if when.IsZero() {
		when = time.Now()
	}
	return RawEvent{
		Source:  Mouse,
		Phase:   phase,
		ClientX: float64(x),
		ClientY: float64(y),
		Time:    when,
	}
}

// Leave releases a held button, for example when the terminal loses focus
// or the pointer moves off the canvas. ok is false when nothing was held.
func (m *MouseTracker) Leave(at time.Time) (ev RawEvent, ok bool) {
	if !m.pressed {
		return RawEvent{}, false
	}
	m.pressed = false
	return RawEvent{Source: Mouse, Phase: PhaseLeave, Time: at}, true
}
