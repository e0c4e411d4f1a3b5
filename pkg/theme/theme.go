package theme

import (
	"image/color"
	"strings"

	"github.com/matzehuels/plotlib/pkg/errors"
)

// Theme is an immutable named bundle of sub-themes.
type Theme struct {
	name    string
	fonts   FontTheme
	colors  ColorTheme
	margins MarginTheme
	grid    GridTheme
	axis    AxisFormatTheme
}

// Option overrides part of a Theme.
type Option func(*Theme)

// WithName sets the theme name.
func WithName(name string) Option {
	return func(t *Theme) { t.name = name }
}

// WithFonts replaces the font theme.
func WithFonts(f FontTheme) Option {
	return func(t *Theme) { t.fonts = f }
}

// WithColors replaces the color theme.
func WithColors(c ColorTheme) Option {
	return func(t *Theme) { t.colors = c.clone() }
}

// WithMargins replaces the margin theme.
func WithMargins(m MarginTheme) Option {
	return func(t *Theme) { t.margins = m }
}

// WithGrid replaces the grid theme.
func WithGrid(g GridTheme) Option {
	return func(t *Theme) { t.grid = g }
}

// WithAxisFormat replaces the axis format theme.
func WithAxisFormat(a AxisFormatTheme) Option {
	return func(t *Theme) { t.axis = a }
}

// New builds a theme named name from the default sub-themes and opts.
func New(name string, opts ...Option) Theme {
	return Default().With(append([]Option{WithName(name)}, opts...)...)
}

// With returns a copy of t with opts applied. t itself is unchanged.
func (t Theme) With(opts ...Option) Theme {
	t.colors = t.colors.clone()
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// Name returns the registry name, or "" for an unregistered theme.
func (t Theme) Name() string { return t.name }

// Fonts returns the title, label, tick and legend fonts.
func (t Theme) Fonts() FontTheme { return t.fonts }

// Colors returns the color theme. The palette is a copy.
func (t Theme) Colors() ColorTheme { return t.colors.clone() }

// Margins returns the space reserved around the plot area.
func (t Theme) Margins() MarginTheme { return t.margins }

// Grid returns the grid line style.
func (t Theme) Grid() GridTheme { return t.grid }

// AxisFormat returns the tick density and label formatting.
func (t Theme) AxisFormat() AxisFormatTheme { return t.axis }

// SeriesColor returns the palette color for the series at index.
func (t Theme) SeriesColor(index int) color.NRGBA {
	return PaletteColor(t.colors.Palette, index)
}

// PaletteLen returns the number of palette colors.
func (t Theme) PaletteLen() int { return len(t.colors.Palette) }

// Validate reports the first invariant t violates.
func (t Theme) Validate() error {
	if strings.TrimSpace(t.name) == "" {
		return errors.New(errors.ErrCodeInvalidTheme, "theme name cannot be empty")
	}
	for _, check := range []func() error{
		t.fonts.validate,
		t.colors.validate,
		t.margins.validate,
		t.grid.validate,
		t.axis.validate,
	} {
		if err := check(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidTheme, err, "theme %q", t.name)
		}
	}
	return nil
}
