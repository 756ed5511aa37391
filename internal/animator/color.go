package animator

import (
	"fmt"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is an opaque colour. Transparency is approximated by darker values,
// never by alpha.
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex formats the colour as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex decodes a #rrggbb string.
func ParseHex(s string) (RGB, error) {
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, fmt.Errorf("invalid colour %q: want #rrggbb", s)
	}
	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(s[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("invalid colour %q: %w", s, err)
		}
		ch[i] = uint8(v)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// HSV converts hue (0-1), saturation and value (0-1) to RGB, truncating each
// channel to a byte.
func HSV(h, s, v float64) RGB {
	c := colorful.Hsv(h*360, s, v)
	return RGB{R: unitToByte(c.R), G: unitToByte(c.G), B: unitToByte(c.B)}
}

func unitToByte(v float64) uint8 {
	return ClampByte(int(255 * v))
}

// ClampByte clamps v into [0, 255].
func ClampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

var (
	White    = RGB{R: 0xff, G: 0xff, B: 0xff}
	EyeColor = RGB{R: 0xff, G: 0x33, B: 0x33}
)
