// Package plot is the entry point for building and outputting charts.
//
// A [Plot] collects labels, a theme and an ordered list of series, then
// renders them to a file, to bytes, or to an interactive window:
//
//	p, err := plot.New("Revenue", "Month", "USD", plot.WithTheme(theme.Paper()))
//	if err != nil {
//	    return err
//	}
//	if err := p.Add("2024", months, revenue); err != nil {
//	    return err
//	}
//	if err := p.Save("revenue.svg"); err != nil {
//	    return err
//	}
//
// Series are validated when added; rendering never mutates the plot, so
// repeated saves produce identical bytes.
package plot

import (
	"context"
	"image"
	"io"
	"os"

	"github.com/matzehuels/plotlib/pkg/errors"
	"github.com/matzehuels/plotlib/pkg/layout"
	"github.com/matzehuels/plotlib/pkg/render"
	"github.com/matzehuels/plotlib/pkg/series"
	"github.com/matzehuels/plotlib/pkg/sink"
	"github.com/matzehuels/plotlib/pkg/surface"
	"github.com/matzehuels/plotlib/pkg/surface/raster"
	"github.com/matzehuels/plotlib/pkg/theme"
	"github.com/matzehuels/plotlib/pkg/window"
)

// Default canvas size in pixels.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Plot is a titled collection of series rendered with a theme.
// It is not safe for concurrent mutation; rendering only reads it.
type Plot struct {
	title  string
	xLabel string
	yLabel string
	theme  theme.Theme
	series []*series.Series
	names  map[string]struct{}
}

// Option configures a Plot at construction.
type Option func(*Plot)

// WithTheme selects the theme. The default is theme.Default().
func WithTheme(t theme.Theme) Option {
	return func(p *Plot) { p.theme = t }
}

// New creates an empty plot. The theme is validated here so rendering
// never sees an unusable theme.
func New(title, xLabel, yLabel string, opts ...Option) (*Plot, error) {
	p := &Plot{
		title:  title,
		xLabel: xLabel,
		yLabel: yLabel,
		theme:  theme.Default(),
		names:  make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.theme.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Title returns the chart title drawn above the plot area.
func (p *Plot) Title() string { return p.title }

// XLabel returns the horizontal axis label.
func (p *Plot) XLabel() string { return p.xLabel }

// YLabel returns the vertical axis label.
func (p *Plot) YLabel() string { return p.yLabel }

// Theme returns the theme the plot renders with.
func (p *Plot) Theme() theme.Theme { return p.theme }

// Series returns the series in insertion order. The slice is a copy.
func (p *Plot) Series() []*series.Series {
	return append([]*series.Series(nil), p.series...)
}

// Len returns the number of series.
func (p *Plot) Len() int { return len(p.series) }

// AddSeries appends s. Names must be unique within a plot.
func (p *Plot) AddSeries(s *series.Series) error {
	if s == nil {
		return errors.New(errors.ErrCodeInvalidSeries, "series cannot be nil")
	}
	if _, dup := p.names[s.Name()]; dup {
		return errors.New(errors.ErrCodeInvalidSeries, "duplicate series name %q", s.Name())
	}
	p.names[s.Name()] = struct{}{}
	p.series = append(p.series, s)
	return nil
}

// Add builds a series from x and y and appends it.
func (p *Plot) Add(name string, x, y []float64, opts ...series.Option) error {
	s, err := series.New(name, x, y, opts...)
	if err != nil {
		return err
	}
	return p.AddSeries(s)
}

// Line appends a series drawn as connected segments.
func (p *Plot) Line(name string, x, y []float64, opts ...series.Option) error {
	s, err := series.Line(name, x, y, opts...)
	if err != nil {
		return err
	}
	return p.AddSeries(s)
}

// Scatter appends a series drawn as markers only.
func (p *Plot) Scatter(name string, x, y []float64, opts ...series.Option) error {
	s, err := series.Scatter(name, x, y, opts...)
	if err != nil {
		return err
	}
	return p.AddSeries(s)
}

// Draw lays out p for s's size and renders it onto s.
func (p *Plot) Draw(s surface.Surface) {
	sz := s.Size()
	l := layout.Compute(s, int(sz.W), int(sz.H), p)
	render.Render(s, p, l)
}

// Render encodes p as format ("png", "jpeg", "svg" or "pdf").
func (p *Plot) Render(ctx context.Context, format string, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "canvas size must be positive, got %dx%d", width, height)
	}
	sk, err := sink.ForFormat(format)
	if err != nil {
		return nil, err
	}
	return sk.Render(ctx, width, height, p.Draw)
}

// Encode renders p as format and writes it to w.
func (p *Plot) Encode(ctx context.Context, w io.Writer, format string, width, height int) error {
	data, err := p.Render(ctx, format, width, height)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", format)
	}
	return nil
}

// Image renders p into an in-memory RGBA image.
func (p *Plot) Image(width, height int) *image.RGBA {
	s := raster.New(width, height)
	defer s.Close()
	p.Draw(s)
	return s.Image()
}

type saveConfig struct {
	width, height int
	ctx           context.Context
}

// SaveOption configures Save.
type SaveOption func(*saveConfig)

// WithSize sets the canvas size. The default is 800×600.
func WithSize(width, height int) SaveOption {
	return func(c *saveConfig) { c.width, c.height = width, height }
}

// WithContext bounds external conversions (PDF) by ctx.
func WithContext(ctx context.Context) SaveOption {
	return func(c *saveConfig) { c.ctx = ctx }
}

// Save renders p and writes it to path. The format follows the extension:
// .png, .jpg/.jpeg, .svg or .pdf. Other extensions fail with
// errors.ErrCodeUnsupportedFormat before anything is written.
func (p *Plot) Save(path string, opts ...SaveOption) error {
	cfg := saveConfig{width: DefaultWidth, height: DefaultHeight, ctx: context.Background()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	sk, err := sink.ForPath(path)
	if err != nil {
		return err
	}
	if cfg.width <= 0 || cfg.height <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "canvas size must be positive, got %dx%d", cfg.width, cfg.height)
	}

	data, err := sk.Render(cfg.ctx, cfg.width, cfg.height, p.Draw)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	return nil
}

// Show opens an interactive window sized width×height (default 800×600)
// and blocks until it is closed.
func (p *Plot) Show(opts ...SaveOption) error {
	cfg := saveConfig{width: DefaultWidth, height: DefaultHeight}
	for _, opt := range opts {
		opt(&cfg)
	}
	title := p.title
	if title == "" {
		title = "plot"
	}
	return window.Run(title, cfg.width, cfg.height, func(w, h int) image.Image {
		return p.Image(w, h)
	})
}
