package css

import (
	"strconv"
	"strings"
)

// Color is an RGBA quadruple with 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

var (
	Black       = Color{0, 0, 0, 255}
	White       = Color{255, 255, 255, 255}
	Transparent = Color{0, 0, 0, 0}
)

// Display is the closed set of display modes the engine understands.
type Display int

const (
	DisplayBlock Display = iota
	DisplayInline
	DisplayInlineBlock
	DisplayFlex
	DisplayNone
)

func (d Display) String() string {
	switch d {
	case DisplayInline:
		return "inline"
	case DisplayInlineBlock:
		return "inline-block"
	case DisplayFlex:
		return "flex"
	case DisplayNone:
		return "none"
	}
	return "block"
}

// ComputedStyle is the resolved presentation for one element. Width and
// Height are nil when unset, meaning auto.
type ComputedStyle struct {
	Display         Display
	Width           *float64
	Height          *float64
	BackgroundColor Color
	Color           Color
}

// DefaultStyle returns the style every element starts from: block
// display, auto width and height, transparent background, opaque black
// text.
func DefaultStyle() ComputedStyle {
	return ComputedStyle{
		Display:         DisplayBlock,
		BackgroundColor: Transparent,
		Color:           Black,
	}
}

// apply folds one declaration into the style. Unknown properties and
// unparseable values leave the style untouched.
func (cs *ComputedStyle) apply(property, value string) {
	switch property {
	case "display":
		if d, ok := ParseDisplay(value); ok {
			cs.Display = d
		}
	case "width":
		if px, ok := ParseLength(value); ok {
			cs.Width = &px
		}
	case "height":
		if px, ok := ParseLength(value); ok {
			cs.Height = &px
		}
	case "background-color", "background":
		if c, ok := ParseColor(value); ok {
			cs.BackgroundColor = c
		}
	case "color":
		if c, ok := ParseColor(value); ok {
			cs.Color = c
		}
	}
}

// ParseDisplay parses a display keyword.
func ParseDisplay(value string) (Display, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "block":
		return DisplayBlock, true
	case "inline":
		return DisplayInline, true
	case "inline-block":
		return DisplayInlineBlock, true
	case "flex":
		return DisplayFlex, true
	case "none":
		return DisplayNone, true
	}
	return DisplayBlock, false
}

// ParseLength parses a pixel length ("100px" or "100").
func ParseLength(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	value = strings.TrimSuffix(value, "px")
	num, err := strconv.ParseFloat(value, 64)
	if err != nil || num < 0 {
		return 0, false
	}
	return num, true
}

var namedColors = map[string]Color{
	"red":         {255, 0, 0, 255},
	"green":       {0, 128, 0, 255},
	"blue":        {0, 0, 255, 255},
	"yellow":      {255, 255, 0, 255},
	"cyan":        {0, 255, 255, 255},
	"magenta":     {255, 0, 255, 255},
	"white":       White,
	"black":       Black,
	"gray":        {128, 128, 128, 255},
	"orange":      {255, 165, 0, 255},
	"purple":      {128, 0, 128, 255},
	"pink":        {255, 192, 203, 255},
	"brown":       {165, 42, 42, 255},
	"lime":        {0, 255, 0, 255},
	"navy":        {0, 0, 128, 255},
	"teal":        {0, 128, 128, 255},
	"silver":      {192, 192, 192, 255},
	"transparent": Transparent,
}

// ParseColor parses a named color or a #rgb/#rrggbb/#rrggbbaa hex value.
func ParseColor(value string) (Color, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	if c, ok := namedColors[value]; ok {
		return c, true
	}
	if strings.HasPrefix(value, "#") {
		return parseHexColor(value[1:])
	}
	return Color{}, false
}

func parseHexColor(hex string) (Color, bool) {
	switch len(hex) {
	case 3:
		r, okR := hexNibble(hex[0])
		g, okG := hexNibble(hex[1])
		b, okB := hexNibble(hex[2])
		if !okR || !okG || !okB {
			return Color{}, false
		}
		return Color{r * 17, g * 17, b * 17, 255}, true
	case 6, 8:
		val, err := strconv.ParseUint(hex, 16, 64)
		if err != nil {
			return Color{}, false
		}
		if len(hex) == 6 {
			return Color{uint8(val >> 16), uint8(val >> 8), uint8(val), 255}, true
		}
		return Color{uint8(val >> 24), uint8(val >> 16), uint8(val >> 8), uint8(val)}, true
	}
	return Color{}, false
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}
