package io

import (
	"strings"

	"github.com/matzehuels/plotlib/pkg/errors"
	"github.com/matzehuels/plotlib/pkg/plot"
	"github.com/matzehuels/plotlib/pkg/series"
	"github.com/matzehuels/plotlib/pkg/theme"
)

// Series kinds.
const (
	KindLine    = "line"
	KindScatter = "scatter"
)

// Document is the serialized form of a plot.
type Document struct {
	Title          string          `toml:"title" json:"title"`
	XLabel         string          `toml:"x_label" json:"x_label"`
	YLabel         string          `toml:"y_label" json:"y_label"`
	Theme          string          `toml:"theme,omitempty" json:"theme,omitempty"`
	ThemeOverrides *ThemeOverrides `toml:"theme_overrides,omitempty" json:"theme_overrides,omitempty"`
	Width          int             `toml:"width,omitempty" json:"width,omitempty"`
	Height         int             `toml:"height,omitempty" json:"height,omitempty"`
	Series         []Series        `toml:"series" json:"series"`
}

// Series is one data series in a Document. Unset style fields take the
// defaults of the series kind.
type Series struct {
	Name        string    `toml:"name" json:"name"`
	Kind        string    `toml:"kind,omitempty" json:"kind,omitempty"`
	X           []float64 `toml:"x" json:"x"`
	Y           []float64 `toml:"y" json:"y"`
	Color       string    `toml:"color,omitempty" json:"color,omitempty"`
	LineWidth   *float64  `toml:"line_width,omitempty" json:"line_width,omitempty"`
	ShowPoints  *bool     `toml:"show_points,omitempty" json:"show_points,omitempty"`
	PointRadius *float64  `toml:"point_radius,omitempty" json:"point_radius,omitempty"`
	HideLine    *bool     `toml:"hide_line,omitempty" json:"hide_line,omitempty"`
	YLower      []float64 `toml:"y_lower,omitempty" json:"y_lower,omitempty"`
	YUpper      []float64 `toml:"y_upper,omitempty" json:"y_upper,omitempty"`
}

// Size returns the document's canvas size, substituting defW and defH for
// unset dimensions.
func (d *Document) Size(defW, defH int) (int, int) {
	w, h := d.Width, d.Height
	if w <= 0 {
		w = defW
	}
	if h <= 0 {
		h = defH
	}
	return w, h
}

// ResolveTheme returns the preset named by the document (default when
// empty) with the overrides applied.
func (d *Document) ResolveTheme() (theme.Theme, error) {
	name := d.Theme
	if strings.TrimSpace(name) == "" {
		name = theme.NameDefault
	}
	t, ok := theme.ByName(name)
	if !ok {
		return theme.Theme{}, errors.New(errors.ErrCodeInvalidTheme,
			"unknown theme %q (available: %s)", name, strings.Join(theme.Names(), ", "))
	}
	if d.ThemeOverrides != nil {
		var err error
		if t, err = d.ThemeOverrides.apply(t); err != nil {
			return theme.Theme{}, err
		}
	}
	if err := t.Validate(); err != nil {
		return theme.Theme{}, err
	}
	return t, nil
}

// Validate checks the document without building it.
func (d *Document) Validate() error {
	_, err := d.Build()
	return err
}

// Build converts the document into a plot. Errors name the offending
// series.
func (d *Document) Build() (*plot.Plot, error) {
	if d.Width < 0 || d.Height < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "size must not be negative, got %dx%d", d.Width, d.Height)
	}
	t, err := d.ResolveTheme()
	if err != nil {
		return nil, err
	}
	p, err := plot.New(d.Title, d.XLabel, d.YLabel, plot.WithTheme(t))
	if err != nil {
		return nil, err
	}
	for i, sd := range d.Series {
		s, err := sd.build()
		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "series[%d]", i)
		}
		if err := p.AddSeries(s); err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "series[%d]", i)
		}
	}
	return p, nil
}

func (sd Series) build() (*series.Series, error) {
	var st series.Style
	switch strings.ToLower(sd.Kind) {
	case "", KindLine:
		st = series.DefaultStyle()
	case KindScatter:
		st = series.ScatterStyle()
	default:
		return nil, errors.New(errors.ErrCodeInvalidSeries, "unknown kind %q", sd.Kind)
	}
	custom := strings.EqualFold(sd.Kind, KindScatter)

	if sd.Color != "" {
		c, err := theme.ParseColor(sd.Color)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSeries, err, "series %q color", sd.Name)
		}
		st.Color = c
		custom = true
	}
	if sd.LineWidth != nil {
		st.LineWidth, custom = *sd.LineWidth, true
	}
	if sd.ShowPoints != nil {
		st.ShowPoints, custom = *sd.ShowPoints, true
	}
	if sd.PointRadius != nil {
		st.PointRadius, custom = *sd.PointRadius, true
	}
	if sd.HideLine != nil {
		st.HideLine, custom = *sd.HideLine, true
	}

	var opts []series.Option
	if custom {
		opts = append(opts, series.WithStyle(st))
	}
	if sd.YLower != nil || sd.YUpper != nil {
		opts = append(opts, series.WithErrorBand(sd.YLower, sd.YUpper))
	}
	return series.New(sd.Name, sd.X, sd.Y, opts...)
}
