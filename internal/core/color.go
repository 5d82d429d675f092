package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is the foreground or background color of a cell.
// The zero value is ColorNone, meaning "unset, inherit from the terminal".
// Named colors are small constants; indexed and RGB colors carry their
// payload in the low 24 bits with a tag bit above it.
type Color uint32

// Named colors. The Dark* variants are the low-intensity ones; the terminal
// translator maps the plain names to the terminal's bright palette.
const (
	ColorNone Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorLightGray
	ColorDarkGray
	ColorDarkRed
	ColorDarkGreen
	ColorDarkYellow
	ColorDarkBlue
	ColorDarkMagenta
	ColorDarkCyan
	ColorWhite
)

const (
	colorIndexed Color = 1 << 24
	colorRGB     Color = 1 << 25

	colorPayload Color = 1<<24 - 1
)

var colorNames = [...]string{
	ColorNone:        "none",
	ColorBlack:       "black",
	ColorRed:         "red",
	ColorGreen:       "green",
	ColorYellow:      "yellow",
	ColorBlue:        "blue",
	ColorMagenta:     "magenta",
	ColorCyan:        "cyan",
	ColorLightGray:   "light_gray",
	ColorDarkGray:    "dark_gray",
	ColorDarkRed:     "dark_red",
	ColorDarkGreen:   "dark_green",
	ColorDarkYellow:  "dark_yellow",
	ColorDarkBlue:    "dark_blue",
	ColorDarkMagenta: "dark_magenta",
	ColorDarkCyan:    "dark_cyan",
	ColorWhite:       "white",
}

// IndexedColor returns a color from the terminal's 256-color palette.
func IndexedColor(index uint8) Color {
	return Color(index) | colorIndexed
}

// RGBColor returns a direct 24-bit color.
func RGBColor(r, g, b uint8) Color {
	return Color(uint32(r)<<16|uint32(g)<<8|uint32(b)) | colorRGB
}

// IsNamed reports whether c is ColorNone or one of the named colors.
func (c Color) IsNamed() bool {
	return c <= ColorWhite
}

// Index returns the palette index of an indexed color.
func (c Color) Index() (uint8, bool) {
	if c&^colorPayload != colorIndexed || c&colorPayload > 0xff {
		return 0, false
	}
	return uint8(c), true
}

// RGB returns the components of a direct color.
func (c Color) RGB() (r, g, b uint8, ok bool) {
	if c&^colorPayload != colorRGB {
		return 0, 0, 0, false
	}
	return uint8(c >> 16), uint8(c >> 8), uint8(c), true
}

// Valid reports whether c is one of the representable variants.
// Arbitrary uint32 values (e.g. from decoded data) may not be.
func (c Color) Valid() bool {
	if c.IsNamed() {
		return true
	}
	if _, ok := c.Index(); ok {
		return true
	}
	_, _, _, ok := c.RGB()
	return ok
}

// String returns the color in the form accepted by ParseColor.
func (c Color) String() string {
	if c.IsNamed() {
		return colorNames[c]
	}
	if i, ok := c.Index(); ok {
		return "index:" + strconv.Itoa(int(i))
	}
	if r, g, b, ok := c.RGB(); ok {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("invalid(%#x)", uint32(c))
}

// ParseColor parses a color name ("red", "dark_blue", "none"),
// a palette index ("index:42") or a hex triple ("#ff8800").
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ColorNone, nil
	}

	for i, name := range colorNames {
		if name == s {
			return Color(i), nil
		}
	}

	if rest, ok := strings.CutPrefix(s, "index:"); ok {
		n, err := strconv.ParseUint(rest, 10, 8)
		if err != nil {
			return ColorNone, fmt.Errorf("core: invalid palette index %q: %w", rest, err)
		}
		return IndexedColor(uint8(n)), nil
	}

	if rest, ok := strings.CutPrefix(s, "#"); ok && len(rest) == 6 {
		n, err := strconv.ParseUint(rest, 16, 32)
		if err != nil {
			return ColorNone, fmt.Errorf("core: invalid hex color %q: %w", s, err)
		}
		return RGBColor(uint8(n>>16), uint8(n>>8), uint8(n)), nil
	}

	return ColorNone, fmt.Errorf("core: unknown color %q", s)
}

// MarshalText implements encoding.TextMarshaler so colors read naturally in YAML.
func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("core: cannot marshal invalid color %#x", uint32(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
