package canvas

import (
	"os"
	"strings"
)

// Glyphs is the character set used to draw onto cells.
type Glyphs struct {
	Name string

	Horizontal rune
	Vertical   rune
	Slash      rune // rising diagonal
	Backslash  rune // falling diagonal

	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune

	Point        rune
	Fill         rune
	GridDot      rune
	ControlLine  rune
	Endpoint     rune
	ControlPoint rune
}

// UnicodeGlyphs draws with box-drawing and block characters.
var UnicodeGlyphs = Glyphs{
	Name:         "unicode",
	Horizontal:   '─',
	Vertical:     '│',
	Slash:        '╱',
	Backslash:    '╲',
	TopLeft:      '┌',
	TopRight:     '┐',
	BottomLeft:   '└',
	BottomRight:  '┘',
	Point:        '•',
	Fill:         '░',
	GridDot:      '·',
	ControlLine:  '┄',
	Endpoint:     '●',
	ControlPoint: '◆',
}

// ASCIIGlyphs is the fallback for terminals without UTF-8.
var ASCIIGlyphs = Glyphs{
	Name:         "ascii",
	Horizontal:   '-',
	Vertical:     '|',
	Slash:        '/',
	Backslash:    '\\',
	TopLeft:      '+',
	TopRight:     '+',
	BottomLeft:   '+',
	BottomRight:  '+',
	Point:        '*',
	Fill:         ':',
	GridDot:      '.',
	ControlLine:  '.',
	Endpoint:     'O',
	ControlPoint: 'o',
}

// lineGlyph picks the character that best follows a segment with the given
// cell delta. Y grows downward, so a rising segment has dy < 0.
func (g Glyphs) lineGlyph(dx, dy int) rune {
	adx, ady := dx, dy
	if adx < 0 {
		adx = -adx
	}
	if ady < 0 {
		ady = -ady
	}
	switch {
	case adx == 0 && ady == 0:
		return g.Point
	case ady*2 < adx:
		return g.Horizontal
	case adx*2 < ady:
		return g.Vertical
	case (dx > 0) == (dy > 0):
		return g.Backslash
	default:
		return g.Slash
	}
}

// DetectGlyphs chooses a glyph set for the current terminal.
// VECSKETCH_TERMINAL_MODE=ascii|unicode overrides detection.
func DetectGlyphs() Glyphs {
	switch os.Getenv("VECSKETCH_TERMINAL_MODE") {
	case "ascii":
		return ASCIIGlyphs
	case "unicode":
		return UnicodeGlyphs
	}

	term := os.Getenv("TERM")
	if term == "linux" || term == "dumb" || !detectUTF8Locale() {
		return ASCIIGlyphs
	}

	// Many CI environments have limited Unicode support
	if (os.Getenv("CI") != "" || os.Getenv("CONTINUOUS_INTEGRATION") != "") && term == "" {
		return ASCIIGlyphs
	}

	return UnicodeGlyphs
}

// detectUTF8Locale checks if the locale supports UTF-8.
func detectUTF8Locale() bool {
	for _, env := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		value := os.Getenv(env)
		if value == "" {
			continue
		}

		// Handles C.UTF-8, en_US.UTF-8@euro and friends
		upper := strings.ToUpper(value)
		return strings.Contains(upper, "UTF-8") || strings.Contains(upper, "UTF8")
	}

	return false
}
