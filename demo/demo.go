// Package demo replays scripted gestures into an editor session. Scripts
// drive headless exports and serve as end-to-end fixtures in tests.
package demo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"vecsketch/config"
	"vecsketch/core"
	"vecsketch/editor"
	"vecsketch/geometry"
	"vecsketch/input"
)

// Step types
const (
	StepDown     = "down"
	StepMove     = "move"
	StepUp       = "up"
	StepDblClick = "dblclick"
	StepKey      = "key"
	StepShape    = "shape"
	StepStyle    = "style"
	StepPause    = "pause"
)

// DefaultBaseDelay separates steps that carry no delay of their own. It is
// long enough that consecutive releases never read as a double tap.
const DefaultBaseDelay = 600

var (
	ErrUnknownStep = errors.New("unknown step type")
	ErrNoScript    = errors.New("no script loaded")
)

// StyleChange edits the live settings. Zero fields are left alone.
type StyleChange struct {
	Stroke   string  `json:"stroke,omitempty"`
	Width    float64 `json:"width,omitempty"`
	Fill     string  `json:"fill,omitempty"`
	NoFill   bool    `json:"no_fill,omitempty"`
	GridSize int     `json:"grid_size,omitempty"`
	Snap     *bool   `json:"snap,omitempty"`
}

// Step is a single scripted gesture.
type Step struct {
	Type  string       `json:"type"`
	X     float64      `json:"x,omitempty"`
	Y     float64      `json:"y,omitempty"`
	Touch bool         `json:"touch,omitempty"` // deliver pointer steps as touch
	Value string       `json:"value,omitempty"` // key name or shape kind
	Style *StyleChange `json:"style,omitempty"`
	Delay int          `json:"delay,omitempty"` // milliseconds since the previous step
}

// Script is a named list of steps.
type Script struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	BaseDelay   int    `json:"base_delay,omitempty"`
	Steps       []Step `json:"steps"`
}

// Validate checks every step type.
func (s *Script) Validate() error {
	for i, step := range s.Steps {
		switch step.Type {
		case StepDown, StepMove, StepUp, StepDblClick, StepPause:
		case StepKey:
			if _, err := ParseKey(step.Value); err != nil {
				return fmt.Errorf("step %d: %w", i, err)
			}
		case StepShape:
			if _, err := core.ParseShapeKind(step.Value); err != nil {
				return fmt.Errorf("step %d: %w", i, err)
			}
		case StepStyle:
			if step.Style == nil {
				return fmt.Errorf("step %d: style step without style", i)
			}
		default:
			return fmt.Errorf("step %d: %w: %q", i, ErrUnknownStep, step.Type)
		}
	}
	return nil
}

// ParseScript decodes and validates a JSON script.
func ParseScript(data []byte) (*Script, error) {
	var script Script
	if err := json.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("failed to parse demo script: %w", err)
	}
	if script.BaseDelay <= 0 {
		script.BaseDelay = DefaultBaseDelay
	}
	if err := script.Validate(); err != nil {
		return nil, err
	}
	return &script, nil
}

// LoadScript reads a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read demo script: %w", err)
	}
	return ParseScript(data)
}

// ParseKey converts names like "ctrl+z", "escape" or "q" into a key.
func ParseKey(name string) (editor.Key, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(name)), "+")
	var k editor.Key
	for _, mod := range parts[:len(parts)-1] {
		switch mod {
		case "ctrl":
			k.Ctrl = true
		case "cmd", "meta", "alt":
			k.Meta = true
		default:
			return editor.Key{}, fmt.Errorf("unknown modifier %q in key %q", mod, name)
		}
	}

	switch last := parts[len(parts)-1]; last {
	case "escape", "esc":
		k.Code = editor.KeyEscape
	case "delete", "del":
		k.Code = editor.KeyDelete
	case "backspace":
		k.Code = editor.KeyBackspace
	case "enter", "return":
		k.Code = editor.KeyEnter
	default:
		r := []rune(last)
		if len(r) != 1 {
			return editor.Key{}, fmt.Errorf("unknown key %q", name)
		}
		k.Code = editor.KeyRune
		k.Rune = r[0]
	}
	return k, nil
}

// Player replays scripts into a session. Event timestamps come from a
// virtual clock advanced by each step's delay, so double-tap detection sees
// the scripted timing without the player sleeping.
type Player struct {
	session  *editor.Session
	panel    *config.Panel
	bounds   geometry.Rect
	clock    time.Time
	realtime bool
	logger   *slog.Logger
}

// Option configures a Player.
type Option func(*Player)

// WithRealtime makes the player sleep for each step's delay.
func WithRealtime() Option {
	return func(p *Player) { p.realtime = true }
}

// WithLogger sets the player logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Player) { p.logger = l }
}

// NewPlayer creates a player for session. Style steps edit panel, and grid
// changes rebuild the overlay across bounds.
func NewPlayer(session *editor.Session, panel *config.Panel, bounds geometry.Rect, opts ...Option) *Player {
	p := &Player{
		session: session,
		panel:   panel,
		bounds:  bounds,
		clock:   time.Unix(0, 0),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Play runs every step in order. It stops early when ctx is done.
func (p *Player) Play(ctx context.Context, script *Script) error {
	if script == nil {
		return ErrNoScript
	}
	p.logger.Info("replaying script", "name", script.Name, "steps", len(script.Steps))

	for i, step := range script.Steps {
		delay := step.Delay
		if delay <= 0 {
			delay = script.BaseDelay
		}
		if err := p.wait(ctx, time.Duration(delay)*time.Millisecond); err != nil {
			return err
		}
		if err := p.Step(step); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, step.Type, err)
		}
	}
	return nil
}

func (p *Player) wait(ctx context.Context, d time.Duration) error {
	p.clock = p.clock.Add(d)
	if !p.realtime {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// Step applies one step at the current clock time.
func (p *Player) Step(step Step) error {
	switch step.Type {
	case StepDown:
		p.session.HandleRaw(p.pointer(input.PhaseDown, step))
	case StepMove:
		p.session.HandleRaw(p.pointer(input.PhaseMove, step))
	case StepUp:
		p.session.HandleRaw(p.pointer(input.PhaseUp, step))
	case StepDblClick:
		p.session.Dispatch(editor.Finalize())
	case StepKey:
		k, err := ParseKey(step.Value)
		if err != nil {
			return err
		}
		p.session.HandleKey(k, false)
	case StepShape:
		kind, err := core.ParseShapeKind(step.Value)
		if err != nil {
			return err
		}
		p.session.SelectKind(kind)
	case StepStyle:
		if step.Style == nil {
			return fmt.Errorf("style step without style")
		}
		return p.applyStyle(*step.Style)
	case StepPause:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStep, step.Type)
	}
	return nil
}

// pointer builds the raw event for a pointer step. Touch releases carry no
// contacts, as on a real touch screen.
func (p *Player) pointer(phase input.Phase, step Step) input.RawEvent {
	ev := input.RawEvent{Source: input.Mouse, Phase: phase, ClientX: step.X, ClientY: step.Y, Time: p.clock}
	if step.Touch {
		ev.Source = input.Touch
		if !phase.Ends() {
			ev.Touches = []input.TouchPoint{{ClientX: step.X, ClientY: step.Y}}
		}
	}
	return ev
}

func (p *Player) applyStyle(c StyleChange) error {
	if c.Stroke != "" {
		if err := p.panel.SetStrokeColor(c.Stroke); err != nil {
			return err
		}
	}
	if c.Width != 0 {
		if err := p.panel.SetStrokeWidth(c.Width); err != nil {
			return err
		}
	}
	if c.Fill != "" {
		if err := p.panel.SetFillColor(c.Fill); err != nil {
			return err
		}
	}
	if c.NoFill && p.panel.Style().FillEnabled {
		p.panel.ToggleFill()
	}
	if c.Snap != nil && *c.Snap != p.panel.Snap() {
		p.panel.ToggleSnap()
	}
	if c.GridSize != 0 {
		if err := p.panel.SetGridSize(c.GridSize); err != nil {
			return err
		}
		p.session.ShowGrid(p.panel.GridSize(), p.panel.GridVisible(), p.bounds)
	}
	p.session.Restyle()
	return nil
}

// GenerateExample returns an example script drawing one of each shape.
func GenerateExample() string {
	snap := true
	script := Script{
		Name:        "Shapes",
		Description: "A curve, a line, a filled rectangle and a circle",
		BaseDelay:   DefaultBaseDelay,
		Steps: []Step{
			{Type: StepDown, X: 100, Y: 300},
			{Type: StepUp, X: 100, Y: 300},
			{Type: StepDown, X: 200, Y: 250},
			{Type: StepMove, X: 220, Y: 120},
			{Type: StepUp, X: 220, Y: 120},
			{Type: StepDblClick},

			{Type: StepShape, Value: "line"},
			{Type: StepStyle, Style: &StyleChange{Stroke: "#1f77b4", Width: 3, Snap: &snap}},
			{Type: StepDown, X: 98, Y: 402},
			{Type: StepMove, X: 701, Y: 399},
			{Type: StepUp, X: 701, Y: 399},

			{Type: StepShape, Value: "rectangle"},
			{Type: StepStyle, Style: &StyleChange{Fill: "#ffdd57"}},
			{Type: StepDown, X: 400, Y: 100},
			{Type: StepMove, X: 560, Y: 220},
			{Type: StepUp, X: 560, Y: 220},

			{Type: StepShape, Value: "circle"},
			{Type: StepStyle, Style: &StyleChange{NoFill: true, Stroke: "#d62728"}},
			{Type: StepDown, X: 640, Y: 500},
			{Type: StepMove, X: 700, Y: 500},
			{Type: StepUp, X: 700, Y: 500},

			{Type: StepPause, Delay: 1000},
		},
	}

	data, _ := json.MarshalIndent(script, "", "  ")
	return string(data)
}
