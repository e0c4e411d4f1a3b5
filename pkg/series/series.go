// Package series holds the data model for plotted series.
//
// A [Series] is an immutable, validated set of (x, y) pairs with a name and
// an optional [Style]. Construction filters out non-finite pairs and rejects
// anything that cannot be drawn, so the layout and renderer never see bad
// data.
package series

import (
	"image/color"
	"math"

	"github.com/matzehuels/plotlib/pkg/errors"
)

// Series is a named sequence of points. It is immutable after New.
type Series struct {
	name  string
	x, y  []float64
	lower []float64
	upper []float64
	style *Style
}

type config struct {
	style        *Style
	color        color.Color
	lower, upper []float64
	band         bool
}

// Option configures a Series under construction.
type Option func(*config)

// WithStyle attaches an explicit style.
func WithStyle(s Style) Option {
	return func(c *config) { c.style = &s }
}

// WithColor sets the series color, keeping the rest of the style.
func WithColor(col color.Color) Option {
	return func(c *config) { c.color = col }
}

// WithErrorBand attaches a lower and upper bound for every point. The band
// is drawn as a translucent region between the bounds.
func WithErrorBand(lower, upper []float64) Option {
	return func(c *config) {
		c.lower, c.upper = lower, upper
		c.band = true
	}
}

// New validates and builds a series.
//
// x and y must have equal, non-zero length. Pairs where any coordinate (or
// band bound) is NaN or infinite are dropped; if nothing remains the series
// is rejected. All failures carry [errors.ErrCodeInvalidSeries].
func New(name string, x, y []float64, opts ...Option) (*Series, error) {
	if err := errors.ValidateSeriesName(name); err != nil {
		return nil, err
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(x) != len(y) {
		return nil, errors.New(errors.ErrCodeInvalidSeries,
			"series %q: x has %d values but y has %d", name, len(x), len(y))
	}
	if len(x) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidSeries, "series %q has no points", name)
	}
	if cfg.band && (len(cfg.lower) != len(x) || len(cfg.upper) != len(x)) {
		return nil, errors.New(errors.ErrCodeInvalidSeries,
			"series %q: error band has %d/%d bounds for %d points", name, len(cfg.lower), len(cfg.upper), len(x))
	}

	s := &Series{name: name}
	for i := range x {
		if !finite(x[i]) || !finite(y[i]) {
			continue
		}
		if cfg.band && (!finite(cfg.lower[i]) || !finite(cfg.upper[i])) {
			continue
		}
		s.x = append(s.x, x[i])
		s.y = append(s.y, y[i])
		if cfg.band {
			s.lower = append(s.lower, cfg.lower[i])
			s.upper = append(s.upper, cfg.upper[i])
		}
	}
	if len(s.x) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidSeries, "series %q has no finite points", name)
	}

	if cfg.style != nil || cfg.color != nil {
		st := DefaultStyle()
		if cfg.style != nil {
			st = *cfg.style
		}
		if cfg.color != nil {
			st.Color = cfg.color
		}
		if err := st.Validate(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSeries, err, "series %q", name)
		}
		s.style = &st
	}
	return s, nil
}

// Line builds a series drawn as connected segments.
func Line(name string, x, y []float64, opts ...Option) (*Series, error) {
	return New(name, x, y, opts...)
}

// Scatter builds a series drawn as markers only. Options may still
// override the style.
func Scatter(name string, x, y []float64, opts ...Option) (*Series, error) {
	return New(name, x, y, append([]Option{WithStyle(ScatterStyle())}, opts...)...)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Name returns the legend label.
func (s *Series) Name() string { return s.name }

// Len returns the number of points.
func (s *Series) Len() int { return len(s.x) }

// At returns the i-th point.
func (s *Series) At(i int) (x, y float64) { return s.x[i], s.y[i] }

// X returns a copy of the x values.
func (s *Series) X() []float64 { return append([]float64(nil), s.x...) }

// Y returns a copy of the y values.
func (s *Series) Y() []float64 { return append([]float64(nil), s.y...) }

// HasBand reports whether the series carries an error band.
func (s *Series) HasBand() bool { return s.lower != nil }

// Band returns the i-th lower and upper bound. It panics without a band.
func (s *Series) Band(i int) (lower, upper float64) { return s.lower[i], s.upper[i] }

// Style returns the explicit style, if one was set.
func (s *Series) Style() (Style, bool) {
	if s.style == nil {
		return Style{}, false
	}
	return *s.style, true
}

// Resolve returns the style to draw with when the series is at position
// index in a plot using palette. A missing style or color is filled from
// the defaults and the palette.
func (s *Series) Resolve(index int, palette func(int) color.NRGBA) Style {
	st := DefaultStyle()
	if s.style != nil {
		st = *s.style
	}
	if st.Color == nil {
		st.Color = palette(index)
	}
	return st
}

// Bounds returns the data extent of s, including its error band.
func (s *Series) Bounds() Bounds {
	b := EmptyBounds()
	for i := range s.x {
		b = b.Extend(s.x[i], s.y[i])
		if s.lower != nil {
			b = b.Extend(s.x[i], s.lower[i]).Extend(s.x[i], s.upper[i])
		}
	}
	return b
}
