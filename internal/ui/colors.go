package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts a hex color string (e.g. "#E03C31" or "E03C31")
// to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	trimmed := strings.TrimPrefix(hex, "#")
	if len(trimmed) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: want 6 hex digits", hex)
	}

	var rgb [3]int32
	for i := range rgb {
		component, err := strconv.ParseUint(trimmed[i*2:i*2+2], 16, 8)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: %w", hex, err)
		}
		rgb[i] = int32(component)
	}

	return tcell.NewRGBColor(rgb[0], rgb[1], rgb[2]), nil
}
