package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// palette caches terminal colors for #rrggbb strings.
type palette map[string]tcell.Color

// color returns the terminal color for hex, or ColorDefault when hex is
// empty or malformed.
func (p palette) color(hex string) tcell.Color {
	if hex == "" {
		return tcell.ColorDefault
	}
	if c, ok := p[hex]; ok {
		return c
	}
	c := tcell.ColorDefault
	if parsed, err := colorful.Hex(hex); err == nil {
		r, g, b := parsed.RGB255()
		c = tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	p[hex] = c
	return c
}

// Draw paints the canvas and the panel line and shows the result.
func (a *App) Draw() {
	a.screen.Clear()

	if a.raster != nil {
		a.raster.Paint(a.scene)
		w, h := a.raster.Size()
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				cell := a.raster.Get(x, y)
				if cell.Rune == 0 || cell.Rune == ' ' {
					continue
				}
				style := tcell.StyleDefault.Foreground(a.colors.color(cell.Color))
				a.screen.SetContent(x, y, cell.Rune, nil, style)
			}
		}
	}

	a.drawPanel()
	a.screen.Show()
}

// drawPanel renders the bottom line: the command being typed, or the tool,
// style and grid settings followed by the last status message.
func (a *App) drawPanel() {
	w, h := a.screen.Size()
	if h <= 0 {
		return
	}
	y := h - 1
	base := tcell.StyleDefault.Reverse(true)

	for x := 0; x < w; x++ {
		a.screen.SetContent(x, y, ' ', nil, base)
	}

	if a.mode == ModeCommand {
		text := ":" + string(a.command)
		end := a.drawText(0, y, w, text, base)
		a.screen.ShowCursor(end, y)
		return
	}
	a.screen.HideCursor()

	st := a.panel.Style()
	x := a.drawText(0, y, w, fmt.Sprintf(" %s ", strings.ToUpper(a.session.Kind().String())), base.Bold(true))
	x = a.drawText(x, y, w, " stroke ", base)
	a.screen.SetContent(x, y, '■', nil, base.Foreground(a.colors.color(st.StrokeColor)))
	x++

	fill := "off"
	if st.FillEnabled {
		fill = st.FillColor
	}
	info := fmt.Sprintf(" w%g | fill %s | grid %d %s | snap %s | shapes %d",
		st.StrokeWidth, fill, a.panel.GridSize(), onOff(a.panel.GridVisible()), onOff(a.panel.Snap()),
		a.session.History().Len())
	if a.status != "" {
		info += " | " + a.status
	}
	a.drawText(x, y, w, info, base)
}

// drawText writes text from x, cutting it at maxX, and returns the column
// after the last cell written.
func (a *App) drawText(x, y, maxX int, text string, style tcell.Style) int {
	if x >= maxX {
		return x
	}
	text = runewidth.Truncate(text, maxX-x, "…")
	for _, r := range text {
		a.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
