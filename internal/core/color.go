package core

import (
	"errors"
	"fmt"
	"strings"
)

// Color represents a foreground color for a screen cell or a locked block.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// ErrUnknownColor is returned by ParseColor for names it does not know.
var ErrUnknownColor = errors.New("core: unknown color")

var colorNames = map[Color]string{
	ColorDefault:       "default",
	ColorRed:           "red",
	ColorGreen:         "green",
	ColorYellow:        "yellow",
	ColorBlue:          "blue",
	ColorMagenta:       "magenta",
	ColorCyan:          "cyan",
	ColorWhite:         "white",
	ColorBrightRed:     "bright-red",
	ColorBrightGreen:   "bright-green",
	ColorBrightYellow:  "bright-yellow",
	ColorBrightBlue:    "bright-blue",
	ColorBrightMagenta: "bright-magenta",
	ColorBrightCyan:    "bright-cyan",
	ColorBrightWhite:   "bright-white",
	ColorOrange:        "orange",
	ColorGray:          "gray",
}

// String returns the config name of the color.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseColor converts a config name to a Color. Matching is case-insensitive,
// and "purple" and "grey" are accepted as aliases.
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "purple":
		return ColorMagenta, nil
	case "grey":
		return ColorGray, nil
	}
	for c, n := range colorNames {
		if n == name {
			return c, nil
		}
	}
	return ColorDefault, fmt.Errorf("%w %q", ErrUnknownColor, s)
}
