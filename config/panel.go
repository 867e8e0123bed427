package config

import (
	"fmt"

	"vecsketch/core"
	"vecsketch/geometry"
)

// GridStep is how much AdjustGridSize changes the cell size per step.
const GridStep = 5

// Panel holds the live drawing settings: the values a style panel shows and
// the editor reads on every event. It is owned by the front end's event
// loop and is not safe for concurrent use.
type Panel struct {
	style       core.Style
	gridSize    int
	gridVisible bool
	snap        bool
}

// NewPanel creates a panel initialized from cfg.
func NewPanel(cfg *Config) *Panel {
	p := &Panel{}
	p.Apply(cfg)
	return p
}

// Apply replaces every setting with the values in cfg, as after a reload.
func (p *Panel) Apply(cfg *Config) {
	p.style = core.Style{
		StrokeColor: normalizedOr(cfg.Style.StrokeColor),
		StrokeWidth: cfg.Style.StrokeWidth,
		FillColor:   normalizedOr(cfg.Style.FillColor),
		FillEnabled: cfg.Style.FillEnabled,
	}
	p.gridSize = cfg.Grid.Size
	p.gridVisible = cfg.Grid.Visible
	p.snap = cfg.Grid.Snap
}

// Style returns the paint for new shapes.
func (p *Panel) Style() core.Style {
	return p.style
}

// SnapGrid returns the snapping grid. Enabled reflects the snap toggle, not
// the overlay visibility.
func (p *Panel) SnapGrid() geometry.Grid {
	return geometry.Grid{Enabled: p.snap, CellSize: p.gridSize}
}

// GridSize returns the cell size.
func (p *Panel) GridSize() int { return p.gridSize }

// GridVisible reports whether the overlay is shown.
func (p *Panel) GridVisible() bool { return p.gridVisible }

// Snap reports whether positions snap to the grid.
func (p *Panel) Snap() bool { return p.snap }

// SetStrokeColor sets the outline color.
func (p *Panel) SetStrokeColor(color string) error {
	c, err := NormalizeColor(color)
	if err != nil {
		return err
	}
	p.style.StrokeColor = c
	return nil
}

// SetFillColor sets the fill color and turns filling on.
func (p *Panel) SetFillColor(color string) error {
	c, err := NormalizeColor(color)
	if err != nil {
		return err
	}
	p.style.FillColor = c
	p.style.FillEnabled = true
	return nil
}

// SetStrokeWidth sets the outline width.
func (p *Panel) SetStrokeWidth(width float64) error {
	if width <= 0 || width > MaxStrokeWidth {
		return fmt.Errorf("stroke width must be in (0, %d], got %g", MaxStrokeWidth, width)
	}
	p.style.StrokeWidth = width
	return nil
}

// AdjustStrokeWidth changes the width by delta, clamped to [1, MaxStrokeWidth].
func (p *Panel) AdjustStrokeWidth(delta float64) float64 {
	w := min(max(p.style.StrokeWidth+delta, 1), MaxStrokeWidth)
	p.style.StrokeWidth = w
	return w
}

// ToggleFill flips filling and returns the new state.
func (p *Panel) ToggleFill() bool {
	p.style.FillEnabled = !p.style.FillEnabled
	return p.style.FillEnabled
}

// SetGridSize sets the cell size.
func (p *Panel) SetGridSize(size int) error {
	if size < MinGridSize || size > MaxGridSize {
		return fmt.Errorf("grid size must be between %d and %d, got %d", MinGridSize, MaxGridSize, size)
	}
	p.gridSize = size
	return nil
}

// AdjustGridSize moves the cell size by steps of GridStep, clamped to the
// allowed range, and returns the new size.
func (p *Panel) AdjustGridSize(steps int) int {
	p.gridSize = min(max(p.gridSize+steps*GridStep, MinGridSize), MaxGridSize)
	return p.gridSize
}

// ToggleGrid flips the overlay and returns the new state.
func (p *Panel) ToggleGrid() bool {
	p.gridVisible = !p.gridVisible
	return p.gridVisible
}

// ToggleSnap flips snapping and returns the new state.
func (p *Panel) ToggleSnap() bool {
	p.snap = !p.snap
	return p.snap
}

// normalizedOr normalizes color, keeping the raw value when it does not
// parse. Configs reach Apply already validated.
func normalizedOr(color string) string {
	if c, err := NormalizeColor(color); err == nil {
		return c
	}
	return color
}
