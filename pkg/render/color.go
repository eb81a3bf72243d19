package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseHex parses "#RGB" or "#RRGGBB" into an opaque colour.
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("colour %q: want #RGB or #RRGGBB", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// MustParseHex is ParseHex for compile-time constants.
func MustParseHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ToRGBA converts any colour to its premultiplied 8-bit form.
func ToRGBA(c color.Color) color.RGBA {
	if rgba, ok := c.(color.RGBA); ok {
		return rgba
	}
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// WithAlpha scales a colour by a global alpha in [0, 1].
func WithAlpha(c color.Color, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	rgba := ToRGBA(c)
	return color.RGBA{
		R: uint8(float64(rgba.R) * alpha),
		G: uint8(float64(rgba.G) * alpha),
		B: uint8(float64(rgba.B) * alpha),
		A: uint8(float64(rgba.A) * alpha),
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
