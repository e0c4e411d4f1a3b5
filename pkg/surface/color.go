package surface

import (
	"fmt"
	"image/color"
)

// RGBA converts any color to non-premultiplied 8-bit components.
func RGBA(c color.Color) (r, g, b, a uint8) {
	if c == nil {
		return 0, 0, 0, 0
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return n.R, n.G, n.B, n.A
}

// CSS formats c as an rgb() color and an opacity in [0, 1].
func CSS(c color.Color) (rgb string, opacity float64) {
	r, g, b, a := RGBA(c)
	return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b), float64(a) / 255
}

// WithAlpha returns c with its alpha replaced by a.
func WithAlpha(c color.Color, a uint8) color.NRGBA {
	r, g, b, _ := RGBA(c)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
