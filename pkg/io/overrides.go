package io

import (
	"image/color"

	"github.com/matzehuels/plotlib/pkg/errors"
	"github.com/matzehuels/plotlib/pkg/theme"
)

// ThemeOverrides adjusts individual fields of a preset. Only set fields
// are applied.
type ThemeOverrides struct {
	Fonts   *FontOverrides   `toml:"fonts,omitempty" json:"fonts,omitempty"`
	Colors  *ColorOverrides  `toml:"colors,omitempty" json:"colors,omitempty"`
	Margins *MarginOverrides `toml:"margins,omitempty" json:"margins,omitempty"`
	Grid    *GridOverrides   `toml:"grid,omitempty" json:"grid,omitempty"`
	Axis    *AxisOverrides   `toml:"axis,omitempty" json:"axis,omitempty"`
}

type FontOverrides struct {
	Family     *string  `toml:"family,omitempty" json:"family,omitempty"`
	TitleSize  *float64 `toml:"title_size,omitempty" json:"title_size,omitempty"`
	LabelSize  *float64 `toml:"label_size,omitempty" json:"label_size,omitempty"`
	TickSize   *float64 `toml:"tick_size,omitempty" json:"tick_size,omitempty"`
	LegendSize *float64 `toml:"legend_size,omitempty" json:"legend_size,omitempty"`
}

// ColorOverrides holds colors as strings accepted by theme.ParseColor.
type ColorOverrides struct {
	Background *string  `toml:"background,omitempty" json:"background,omitempty"`
	Foreground *string  `toml:"foreground,omitempty" json:"foreground,omitempty"`
	GridMajor  *string  `toml:"grid_major,omitempty" json:"grid_major,omitempty"`
	GridMinor  *string  `toml:"grid_minor,omitempty" json:"grid_minor,omitempty"`
	AxisBorder *string  `toml:"axis_border,omitempty" json:"axis_border,omitempty"`
	Palette    []string `toml:"palette,omitempty" json:"palette,omitempty"`
}

type MarginOverrides struct {
	Left   *float64 `toml:"left,omitempty" json:"left,omitempty"`
	Right  *float64 `toml:"right,omitempty" json:"right,omitempty"`
	Top    *float64 `toml:"top,omitempty" json:"top,omitempty"`
	Bottom *float64 `toml:"bottom,omitempty" json:"bottom,omitempty"`
}

type GridOverrides struct {
	ShowMajor      *bool    `toml:"show_major,omitempty" json:"show_major,omitempty"`
	ShowMinor      *bool    `toml:"show_minor,omitempty" json:"show_minor,omitempty"`
	MajorLineWidth *float64 `toml:"major_line_width,omitempty" json:"major_line_width,omitempty"`
	MinorLineWidth *float64 `toml:"minor_line_width,omitempty" json:"minor_line_width,omitempty"`
}

type AxisOverrides struct {
	AutoCleanNumbers    *bool    `toml:"auto_clean_numbers,omitempty" json:"auto_clean_numbers,omitempty"`
	MaxDecimalPlaces    *int     `toml:"max_decimal_places,omitempty" json:"max_decimal_places,omitempty"`
	ScientificThreshold *float64 `toml:"scientific_threshold,omitempty" json:"scientific_threshold,omitempty"`
	ShowTrailingZeros   *bool    `toml:"show_trailing_zeros,omitempty" json:"show_trailing_zeros,omitempty"`
	MinTickSpacing      *float64 `toml:"min_tick_spacing,omitempty" json:"min_tick_spacing,omitempty"`
	TickLength          *float64 `toml:"tick_length,omitempty" json:"tick_length,omitempty"`
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func (o *ThemeOverrides) apply(t theme.Theme) (theme.Theme, error) {
	var opts []theme.Option
	if f := o.Fonts; f != nil {
		opts = append(opts, theme.WithFonts(t.Fonts().With(func(ft *theme.FontTheme) {
			set(&ft.Family, f.Family)
			set(&ft.TitleSize, f.TitleSize)
			set(&ft.LabelSize, f.LabelSize)
			set(&ft.TickSize, f.TickSize)
			set(&ft.LegendSize, f.LegendSize)
		})))
	}
	if c := o.Colors; c != nil {
		ct, err := c.apply(t.Colors())
		if err != nil {
			return theme.Theme{}, err
		}
		opts = append(opts, theme.WithColors(ct))
	}
	if m := o.Margins; m != nil {
		opts = append(opts, theme.WithMargins(t.Margins().With(func(mt *theme.MarginTheme) {
			set(&mt.Left, m.Left)
			set(&mt.Right, m.Right)
			set(&mt.Top, m.Top)
			set(&mt.Bottom, m.Bottom)
		})))
	}
	if g := o.Grid; g != nil {
		opts = append(opts, theme.WithGrid(t.Grid().With(func(gt *theme.GridTheme) {
			set(&gt.ShowMajor, g.ShowMajor)
			set(&gt.ShowMinor, g.ShowMinor)
			set(&gt.MajorLineWidth, g.MajorLineWidth)
			set(&gt.MinorLineWidth, g.MinorLineWidth)
		})))
	}
	if a := o.Axis; a != nil {
		opts = append(opts, theme.WithAxisFormat(t.AxisFormat().With(func(at *theme.AxisFormatTheme) {
			set(&at.AutoCleanNumbers, a.AutoCleanNumbers)
			set(&at.MaxDecimalPlaces, a.MaxDecimalPlaces)
			set(&at.ScientificThreshold, a.ScientificThreshold)
			set(&at.ShowTrailingZeros, a.ShowTrailingZeros)
			set(&at.MinTickSpacing, a.MinTickSpacing)
			set(&at.TickLength, a.TickLength)
		})))
	}
	return t.With(opts...), nil
}

func (c *ColorOverrides) apply(ct theme.ColorTheme) (theme.ColorTheme, error) {
	fields := []struct {
		name string
		src  *string
		dst  *color.NRGBA
	}{
		{"background", c.Background, &ct.Background},
		{"foreground", c.Foreground, &ct.Foreground},
		{"grid_major", c.GridMajor, &ct.GridMajor},
		{"grid_minor", c.GridMinor, &ct.GridMinor},
		{"axis_border", c.AxisBorder, &ct.AxisBorder},
	}
	for _, f := range fields {
		if f.src == nil {
			continue
		}
		v, err := theme.ParseColor(*f.src)
		if err != nil {
			return ct, errors.Wrap(errors.ErrCodeInvalidTheme, err, "theme_overrides.colors.%s", f.name)
		}
		*f.dst = v
	}
	if c.Palette != nil {
		palette := make([]color.NRGBA, len(c.Palette))
		for i, s := range c.Palette {
			v, err := theme.ParseColor(s)
			if err != nil {
				return ct, errors.Wrap(errors.ErrCodeInvalidTheme, err, "theme_overrides.colors.palette[%d]", i)
			}
			palette[i] = v
		}
		ct.Palette = palette
	}
	return ct, nil
}
