package params

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseAxis maps a mode flag value to an Axis.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(s) {
	case "", "vertical", "v":
		return Vertical, nil
	case "horizontal", "h":
		return Horizontal, nil
	}
	return Vertical, fmt.Errorf("%w: mode %q (want vertical or horizontal)", ErrInvalidParameter, s)
}

// ParseColor accepts "none", a named color, or "#rgb"/"#rrggbb"/"#rrggbbaa".
func ParseColor(s string) (color.NRGBA, error) {
	switch strings.ToLower(s) {
	case "", "none", "transparent":
		return color.NRGBA{}, nil
	case "black":
		return color.NRGBA{0, 0, 0, 255}, nil
	case "white":
		return color.NRGBA{255, 255, 255, 255}, nil
	case "gray", "grey":
		return color.NRGBA{128, 128, 128, 255}, nil
	case "red":
		return color.NRGBA{255, 0, 0, 255}, nil
	case "green":
		return color.NRGBA{0, 255, 0, 255}, nil
	case "blue":
		return color.NRGBA{0, 0, 255, 255}, nil
	}
	if !strings.HasPrefix(s, "#") {
		return color.NRGBA{}, fmt.Errorf("%w: color %q", ErrInvalidParameter, s)
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("%w: color %q", ErrInvalidParameter, s)
	}
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: color %q", ErrInvalidParameter, s)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// ParseBoundary maps a virtual-pixel flag to a Fill. The background color is
// only consulted by the "background" policy.
func ParseBoundary(s string, background color.NRGBA) (Fill, error) {
	switch strings.ToLower(s) {
	case "", "none", "transparent":
		return Fill{Policy: FillTransparent}, nil
	case "black":
		return Fill{Policy: FillBlack}, nil
	case "white":
		return Fill{Policy: FillWhite}, nil
	case "gray", "grey":
		return Fill{Policy: FillGray}, nil
	case "background":
		return Fill{Policy: FillBackground, Background: background}, nil
	}
	return Fill{}, fmt.Errorf("%w: boundary %q", ErrInvalidParameter, s)
}

// ParseOffset reads a signed pixel pair like "+24+10" or "-5+3".
func ParseOffset(s string) (x, y int, err error) {
	if s == "" {
		return 0, 0, nil
	}
	if _, err := fmt.Sscanf(s, "%d%d", &x, &y); err != nil {
		return 0, 0, fmt.Errorf("%w: offset %q (want e.g. +24+10)", ErrInvalidParameter, s)
	}
	return x, y, nil
}
