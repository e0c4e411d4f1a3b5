package theme

import (
	"image/color"
	"slices"

	"github.com/matzehuels/plotlib/pkg/errors"
	"github.com/matzehuels/plotlib/pkg/surface"
	"github.com/matzehuels/plotlib/pkg/ticks"
)

// FontTheme sets the typeface and pixel sizes of each text role.
type FontTheme struct {
	Family     string
	TitleSize  float64
	LabelSize  float64
	TickSize   float64
	LegendSize float64
	TitleBold  bool
	LabelBold  bool
	TickBold   bool
	LegendBold bool
}

// With returns a copy of f edited by fn.
func (f FontTheme) With(fn func(*FontTheme)) FontTheme {
	fn(&f)
	return f
}

// TitleFont returns the font of the plot title.
func (f FontTheme) TitleFont() surface.Font {
	return surface.Font{Family: f.Family, Size: f.TitleSize, Bold: f.TitleBold}
}

// LabelFont returns the font of axis titles.
func (f FontTheme) LabelFont() surface.Font {
	return surface.Font{Family: f.Family, Size: f.LabelSize, Bold: f.LabelBold}
}

// TickFont returns the font of tick labels.
func (f FontTheme) TickFont() surface.Font {
	return surface.Font{Family: f.Family, Size: f.TickSize, Bold: f.TickBold}
}

// LegendFont returns the font of legend entries.
func (f FontTheme) LegendFont() surface.Font {
	return surface.Font{Family: f.Family, Size: f.LegendSize, Bold: f.LegendBold}
}

func (f FontTheme) validate() error {
	sizes := []struct {
		role string
		v    float64
	}{
		{"title", f.TitleSize}, {"label", f.LabelSize}, {"tick", f.TickSize}, {"legend", f.LegendSize},
	}
	for _, s := range sizes {
		if !(s.v > 0) {
			return errors.New(errors.ErrCodeInvalidTheme, "%s font size must be positive, got %v", s.role, s.v)
		}
	}
	return nil
}

// ColorTheme holds the fixed colors of a plot and the series palette.
type ColorTheme struct {
	Background color.NRGBA
	Foreground color.NRGBA
	GridMajor  color.NRGBA
	GridMinor  color.NRGBA
	AxisBorder color.NRGBA
	Palette    []color.NRGBA
}

// With returns a copy of c edited by fn. The palette is copied first, so fn
// may modify it in place.
func (c ColorTheme) With(fn func(*ColorTheme)) ColorTheme {
	c.Palette = slices.Clone(c.Palette)
	fn(&c)
	c.Palette = slices.Clone(c.Palette)
	return c
}

// SeriesColor returns the palette color for the series at index.
func (c ColorTheme) SeriesColor(index int) color.NRGBA {
	return PaletteColor(c.Palette, index)
}

func (c ColorTheme) clone() ColorTheme {
	c.Palette = slices.Clone(c.Palette)
	return c
}

func (c ColorTheme) validate() error {
	if len(c.Palette) == 0 {
		return errors.New(errors.ErrCodeInvalidTheme, "palette must contain at least one color")
	}
	return nil
}

// PaletteColor returns palette[index mod len(palette)]. Negative indexes
// wrap the same way. An empty palette yields opaque black.
func PaletteColor(palette []color.NRGBA, index int) color.NRGBA {
	n := len(palette)
	if n == 0 {
		return color.NRGBA{A: 0xff}
	}
	return palette[((index%n)+n)%n]
}

// MarginTheme holds pixel insets between the canvas edge and the plot area.
// The right inset is measured from the legend, which the layout places
// between the plot area and the right margin.
type MarginTheme struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// With returns a copy of m edited by fn.
func (m MarginTheme) With(fn func(*MarginTheme)) MarginTheme {
	fn(&m)
	return m
}

func (m MarginTheme) validate() error {
	if m.Left < 0 || m.Right < 0 || m.Top < 0 || m.Bottom < 0 {
		return errors.New(errors.ErrCodeInvalidTheme, "margins must be non-negative, got %+v", m)
	}
	return nil
}

// GridTheme controls grid lines.
type GridTheme struct {
	ShowMajor      bool
	ShowMinor      bool
	MajorLineWidth float64
	MinorLineWidth float64
}

// With returns a copy of g edited by fn.
func (g GridTheme) With(fn func(*GridTheme)) GridTheme {
	fn(&g)
	return g
}

func (g GridTheme) validate() error {
	if g.MajorLineWidth < 0 || g.MinorLineWidth < 0 {
		return errors.New(errors.ErrCodeInvalidTheme, "grid line widths must be non-negative")
	}
	return nil
}

// AxisFormatTheme controls tick density and tick label formatting.
type AxisFormatTheme struct {
	// AutoCleanNumbers derives label precision from the tick step.
	AutoCleanNumbers bool
	// MaxDecimalPlaces is the fixed precision when AutoCleanNumbers is off.
	MaxDecimalPlaces int
	// ScientificThreshold switches labels to scientific notation at this
	// magnitude. Zero disables scientific notation.
	ScientificThreshold float64
	ShowTrailingZeros   bool
	// MinTickSpacing is the smallest pixel distance between adjacent ticks.
	MinTickSpacing float64
	// TickLength is the length of tick marks in pixels.
	TickLength float64
}

// With returns a copy of a edited by fn.
func (a AxisFormatTheme) With(fn func(*AxisFormatTheme)) AxisFormatTheme {
	fn(&a)
	return a
}

// TickFormat converts a to the formatter used by the tick generator.
func (a AxisFormatTheme) TickFormat() ticks.Format {
	return ticks.Format{
		AutoClean:           a.AutoCleanNumbers,
		MaxDecimals:         a.MaxDecimalPlaces,
		ScientificThreshold: a.ScientificThreshold,
		TrailingZeros:       a.ShowTrailingZeros,
	}
}

func (a AxisFormatTheme) validate() error {
	if !(a.MinTickSpacing > 0) {
		return errors.New(errors.ErrCodeInvalidTheme, "minimum tick spacing must be positive, got %v", a.MinTickSpacing)
	}
	if a.MaxDecimalPlaces < 0 || a.TickLength < 0 || a.ScientificThreshold < 0 {
		return errors.New(errors.ErrCodeInvalidTheme, "axis format values must be non-negative")
	}
	return nil
}
