package theme

import (
	"image/color"
	"sort"
	"strings"

	"github.com/matzehuels/plotlib/pkg/fonts"
)

// Preset names.
const (
	NameDefault      = "default"
	NamePresentation = "presentation"
	NamePaper        = "paper"
	NameDark         = "dark"
	NameMinimal      = "minimal"
)

func rgb(r, g, b uint8) color.NRGBA { return color.NRGBA{R: r, G: g, B: b, A: 0xff} }

// tab10 is the default categorical palette.
var tab10 = []color.NRGBA{
	rgb(31, 119, 180),
	rgb(255, 127, 14),
	rgb(44, 160, 44),
	rgb(214, 39, 40),
	rgb(148, 103, 189),
	rgb(140, 86, 75),
	rgb(227, 119, 194),
	rgb(127, 127, 127),
}

// DefaultFonts returns the font theme of the default preset.
func DefaultFonts() FontTheme {
	return FontTheme{
		Family:     fonts.SansSerif,
		TitleSize:  16,
		LabelSize:  14,
		TickSize:   12,
		LegendSize: 12,
		TitleBold:  true,
		LabelBold:  true,
	}
}

// DefaultColors returns the color theme of the default preset.
func DefaultColors() ColorTheme {
	return ColorTheme{
		Background: rgb(255, 255, 255),
		Foreground: rgb(0, 0, 0),
		GridMajor:  rgb(200, 200, 200),
		GridMinor:  rgb(230, 230, 230),
		AxisBorder: rgb(0, 0, 0),
		Palette:    append([]color.NRGBA(nil), tab10...),
	}
}

// DefaultMargins returns the margin theme of the default preset.
func DefaultMargins() MarginTheme {
	return MarginTheme{Left: 80, Right: 20, Top: 60, Bottom: 60}
}

// DefaultGrid returns the grid theme of the default preset.
func DefaultGrid() GridTheme {
	return GridTheme{ShowMajor: true, MajorLineWidth: 1, MinorLineWidth: 0.5}
}

// DefaultAxisFormat returns the axis format theme of the default preset.
func DefaultAxisFormat() AxisFormatTheme {
	return AxisFormatTheme{
		AutoCleanNumbers:    true,
		MaxDecimalPlaces:    2,
		ScientificThreshold: 1e6,
		MinTickSpacing:      60,
		TickLength:          5,
	}
}

// Default is a white-background theme with the tab10 palette.
func Default() Theme {
	return Theme{
		name:    NameDefault,
		fonts:   DefaultFonts(),
		colors:  DefaultColors(),
		margins: DefaultMargins(),
		grid:    DefaultGrid(),
		axis:    DefaultAxisFormat(),
	}
}

// Presentation enlarges fonts and margins for slides.
func Presentation() Theme {
	return Default().With(
		WithName(NamePresentation),
		WithFonts(DefaultFonts().With(func(f *FontTheme) {
			f.TitleSize, f.LabelSize, f.TickSize, f.LegendSize = 20, 18, 14, 14
		})),
		WithMargins(MarginTheme{Left: 100, Right: 30, Top: 80, Bottom: 80}),
		WithAxisFormat(DefaultAxisFormat().With(func(a *AxisFormatTheme) {
			a.MinTickSpacing = 80
		})),
	)
}

// Paper uses a serif family, small fonts and a grayscale palette for print.
func Paper() Theme {
	return Default().With(
		WithName(NamePaper),
		WithFonts(DefaultFonts().With(func(f *FontTheme) {
			f.Family = fonts.Serif
			f.TitleSize, f.LabelSize, f.TickSize, f.LegendSize = 14, 12, 10, 10
		})),
		WithColors(DefaultColors().With(func(c *ColorTheme) {
			c.Palette = []color.NRGBA{rgb(0, 0, 0), rgb(100, 100, 100), rgb(150, 150, 150)}
		})),
		WithMargins(MarginTheme{Left: 70, Right: 15, Top: 50, Bottom: 50}),
	)
}

// Dark is a dark-background theme with a lightened palette.
func Dark() Theme {
	return Default().With(
		WithName(NameDark),
		WithColors(ColorTheme{
			Background: rgb(30, 30, 30),
			Foreground: rgb(224, 224, 224),
			GridMajor:  rgb(80, 80, 80),
			GridMinor:  rgb(50, 50, 50),
			AxisBorder: rgb(150, 150, 150),
			Palette: []color.NRGBA{
				rgb(102, 194, 255),
				rgb(255, 170, 102),
				rgb(102, 255, 153),
				rgb(255, 102, 102),
				rgb(186, 153, 255),
				rgb(255, 204, 153),
				rgb(255, 153, 204),
				rgb(170, 170, 170),
			},
		}),
	)
}

// Minimal drops the grid and tightens margins.
func Minimal() Theme {
	return Default().With(
		WithName(NameMinimal),
		WithMargins(MarginTheme{Left: 60, Right: 10, Top: 40, Bottom: 50}),
		WithGrid(DefaultGrid().With(func(g *GridTheme) {
			g.ShowMajor = false
			g.ShowMinor = false
		})),
	)
}

var presets = map[string]func() Theme{
	NameDefault:      Default,
	NamePresentation: Presentation,
	NamePaper:        Paper,
	NameDark:         Dark,
	NameMinimal:      Minimal,
}

// ByName returns the preset called name, ignoring case.
func ByName(name string) (Theme, bool) {
	fn, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Theme{}, false
	}
	return fn(), true
}

// Names returns the preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
