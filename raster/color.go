package raster

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"
)

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA" (the leading '#' is
// optional, case-insensitive). A missing alpha channel means opaque.
func ParseHexColor(s string) (color.NRGBA, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(raw) != 6 && len(raw) != 8 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	c := color.NRGBA{R: b[0], G: b[1], B: b[2], A: 0xff}
	if len(b) == 4 {
		c.A = b[3]
	}

	return c, nil
}

// HexColor formats c as "#RRGGBBAA" with lower-case digits.
func HexColor(c color.NRGBA) string {
	return "#" + hex.EncodeToString([]byte{c.R, c.G, c.B, c.A})
}

// IsWall reports whether c equals wall exactly once both are expressed as
// 8-bit non-premultiplied RGBA. Near-black or translucent pixels are open.
func IsWall(c color.Color, wall color.NRGBA) bool {
	return color.NRGBAModel.Convert(c).(color.NRGBA) == wall
}
