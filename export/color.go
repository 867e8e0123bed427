package export

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// parseColor reads a #rrggbb or #rgb paint.
func parseColor(hex string) (colorful.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("color %q: %w", hex, err)
	}
	return c, nil
}
