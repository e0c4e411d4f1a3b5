package theme

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/matzehuels/plotlib/pkg/errors"
)

// NamedColors are the color names accepted by [ParseColor].
var NamedColors = map[string]color.NRGBA{
	"black":   rgb(0x00, 0x00, 0x00),
	"white":   rgb(0xff, 0xff, 0xff),
	"red":     rgb(0xff, 0x00, 0x00),
	"green":   rgb(0x00, 0x80, 0x00),
	"blue":    rgb(0x00, 0x00, 0xff),
	"cyan":    rgb(0x00, 0xff, 0xff),
	"magenta": rgb(0xff, 0x00, 0xff),
	"yellow":  rgb(0xff, 0xff, 0x00),
	"orange":  rgb(0xff, 0xa5, 0x00),
	"purple":  rgb(0x80, 0x00, 0x80),
	"brown":   rgb(0xa5, 0x2a, 0x2a),
	"pink":    rgb(0xff, 0xc0, 0xcb),
	"gray":    rgb(0x80, 0x80, 0x80),
	"grey":    rgb(0x80, 0x80, 0x80),
}

// ParseColor parses "#rgb", "#rrggbb", "#rrggbbaa" or a name from
// [NamedColors].
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if c, ok := NamedColors[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return color.NRGBA{}, errors.New(errors.ErrCodeInvalidInput, "unknown color %q", s)
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, errors.New(errors.ErrCodeInvalidInput, "malformed color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "malformed color %q", s)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// FormatColor renders c as "#rrggbb", or "#rrggbbaa" when translucent.
func FormatColor(c color.NRGBA) string {
	const digits = "0123456789abcdef"
	b := []byte{'#'}
	comps := []uint8{c.R, c.G, c.B}
	if c.A != 0xff {
		comps = append(comps, c.A)
	}
	for _, v := range comps {
		b = append(b, digits[v>>4], digits[v&0x0f])
	}
	return string(b)
}
