package core

import "strconv"

// Color is a foreground or background color for a screen cell, written as
// "#rgb" or "#rrggbb". The zero value means the terminal default.
type Color string

// Colors used by the HUD and entity glyphs.
const (
	ColorDefault Color = ""
	ColorText    Color = "#ddd"
	ColorDim     Color = "#777"
	ColorPlayer  Color = "#0f0"
	ColorGoal    Color = "#ff0"
	ColorItem    Color = "#fc6"
	ColorBanner  Color = "#fff"
)

// RGB decodes the color into 8-bit channels.
// Returns ok=false for the default color and malformed values.
func (c Color) RGB() (r, g, b uint8, ok bool) {
	s := string(c)
	if len(s) == 0 || s[0] != '#' {
		return 0, 0, 0, false
	}
	s = s[1:]

	switch len(s) {
	case 3:
		v, err := strconv.ParseUint(s, 16, 16)
		if err != nil {
			return 0, 0, 0, false
		}
		// Expand each nibble: 0xa -> 0xaa
		r = uint8(v>>8&0xf) * 0x11
		g = uint8(v>>4&0xf) * 0x11
		b = uint8(v&0xf) * 0x11
		return r, g, b, true
	case 6:
		v, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return 0, 0, 0, false
		}
		return uint8(v >> 16), uint8(v >> 8), uint8(v), true
	default:
		return 0, 0, 0, false
	}
}
