package core

import "strings"

// Color represents a foreground color for a screen cell.
// The platform layer maps it to a terminal style or an RGB value.
type Color uint8

// Colors used by the maze renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)

var colorNames = map[string]Color{
	"default": ColorDefault,
	"red":     ColorRed,
	"green":   ColorGreen,
	"yellow":  ColorYellow,
	"blue":    ColorBlue,
	"magenta": ColorMagenta,
	"pink":    ColorMagenta,
	"cyan":    ColorCyan,
	"white":   ColorWhite,
	"orange":  ColorOrange,
	"gray":    ColorGray,
}

// ColorByName resolves a color name such as an enemy label.
// Unknown names fall back to ColorDefault and report false.
func ColorByName(name string) (Color, bool) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// RGB returns the 24-bit value used by image renderers.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorRed:
		return 0xff, 0x00, 0x00
	case ColorGreen:
		return 0x00, 0xc0, 0x00
	case ColorYellow:
		return 0xff, 0xff, 0x00
	case ColorBlue:
		return 0x21, 0x21, 0xff
	case ColorMagenta:
		return 0xff, 0xb8, 0xff
	case ColorCyan:
		return 0x00, 0xff, 0xff
	case ColorOrange:
		return 0xff, 0xb8, 0x52
	case ColorGray:
		return 0x80, 0x80, 0x80
	default:
		return 0xff, 0xff, 0xff
	}
}
