package ggterm

import (
	"fmt"
	"image/color"
)

// RGB is an opaque 8-bit color as produced by the terminal color resolver.
// Transparency travels separately on Quad.Alpha.
type RGB struct {
	R, G, B uint8
}

// Color converts RGB to the standard color.Color interface.
func (c RGB) Color() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// String returns the color as "#rrggbb".
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// FromColor converts a standard color.Color to RGB, dropping alpha.
// Premultiplied inputs are unpremultiplied first.
func FromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// Hex parses a color from a hex string.
// Supports formats: "RGB" and "RRGGBB", with or without a leading '#'.
func Hex(hex string) (RGB, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b uint32
	var ok bool
	switch len(s) {
	case 3:
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 6:
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b)
	}
	if !ok {
		return RGB{}, fmt.Errorf("ggterm: invalid hex color %q", hex)
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil //nolint:gosec // at most two hex digits
}

// MustHex is like Hex but panics on malformed input.
// Intended for package-level color constants.
func MustHex(hex string) RGB {
	c, err := Hex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// parseHex accumulates hex digits into val. Reports false on a non-hex digit.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}
