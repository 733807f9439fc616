package imgfile

import (
	"fmt"
	"image/color"
	"strconv"
)

// ParseHexColor reads a #RGB, #RGBA, #RRGGBB or #RRGGBBAA color. Alpha defaults to opaque.
func ParseHexColor(s string) (color.NRGBA, error) {
	c := color.NRGBA{A: 0xFF}
	var format string
	var fields []any
	switch len(s) {
	case 4:
		format, fields = "#%1x%1x%1x", []any{&c.R, &c.G, &c.B}
	case 5:
		format, fields = "#%1x%1x%1x%1x", []any{&c.R, &c.G, &c.B, &c.A}
	case 7:
		format, fields = "#%2x%2x%2x", []any{&c.R, &c.G, &c.B}
	case 9:
		format, fields = "#%2x%2x%2x%2x", []any{&c.R, &c.G, &c.B, &c.A}
	default:
		return color.NRGBA{}, fmt.Errorf("invalid color %q, should be #RGB, #RGBA, #RRGGBB or #RRGGBBAA", s)
	}

	if _, err := strconv.ParseUint(s[1:], 16, 64); s[0] != '#' || err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q, not a hexadecimal value", s)
	}

	n, err := fmt.Sscanf(s, format, fields...)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("could not read color %q: %w", s, err)
	} else if n < len(fields) {
		return color.NRGBA{}, fmt.Errorf("insufficient color fields in %q: %d", s, n)
	}

	// short forms repeat each nibble: #F0A is #FF00AA
	if len(s) < 7 {
		c.R |= c.R << 4
		c.G |= c.G << 4
		c.B |= c.B << 4
		if len(s) == 5 {
			c.A |= c.A << 4
		}
	}
	return c, nil
}
