// Package layout computes where everything on a plot goes.
//
// [Compute] turns a canvas size, a theme and a list of series into a
// [Layout]: the plot area rectangle, the legend box, and one [Axis] per
// dimension holding the chosen ticks and the affine map from data values to
// pixels. The result is a pure function of its inputs and is recomputed on
// every render, so a resized window simply calls Compute again.
package layout

import (
	"math"

	"github.com/matzehuels/plotlib/pkg/series"
	"github.com/matzehuels/plotlib/pkg/surface"
	"github.com/matzehuels/plotlib/pkg/theme"
	"github.com/matzehuels/plotlib/pkg/ticks"
)

// Legend geometry in pixels.
const (
	LegendGap         = 16 // between plot area and legend box
	LegendPadding     = 8  // inside the legend box
	LegendSample      = 30 // length of the sample line
	LegendSampleGap   = 10 // between sample and name
	LegendEntryHeight = 20
)

// MaxTicks bounds the tick target on very large canvases.
const MaxTicks = 12

// degeneratePad is the relative padding applied to zero-width ranges.
const degeneratePad = 0.05

// Source is what the layout needs to know about a plot.
type Source interface {
	Theme() theme.Theme
	Series() []*series.Series
}

// Affine maps a data value to a pixel coordinate: p = A·v + B.
type Affine struct {
	A, B float64
}

// Apply maps v to pixel space.
func (t Affine) Apply(v float64) float64 { return t.A*v + t.B }

// Invert maps pixel p back to data space.
func (t Affine) Invert(p float64) float64 { return (p - t.B) / t.A }

// Axis is one dimension of the plot: its snapped tick scale and the
// transform from data to pixels.
type Axis struct {
	ticks.Scale
	Transform Affine
}

// Pixel returns the pixel coordinate of data value v.
func (a Axis) Pixel(v float64) float64 { return a.Transform.Apply(v) }

// Layout is the resolved geometry of a plot on a canvas.
type Layout struct {
	Canvas surface.Rect
	Plot   surface.Rect
	// Legend is the zero Rect when the plot has no series.
	Legend surface.Rect
	X, Y   Axis
}

// Empty reports whether the canvas leaves no room for a plot area, in which
// case only the background is drawn.
func (l Layout) Empty() bool { return l.Plot.Empty() }

// HasLegend reports whether a legend box was reserved.
func (l Layout) HasLegend() bool { return !l.Legend.Empty() }

// ToPixel maps a data point to pixel space.
func (l Layout) ToPixel(x, y float64) surface.Point {
	return surface.Point{X: l.X.Pixel(x), Y: l.Y.Pixel(y)}
}

// LegendEntry returns the row rectangle of the i-th legend entry.
func (l Layout) LegendEntry(i int) surface.Rect {
	return surface.Rect{
		X: l.Legend.X + LegendPadding,
		Y: l.Legend.Y + LegendPadding + float64(i)*LegendEntryHeight,
		W: l.Legend.W - 2*LegendPadding,
		H: LegendEntryHeight,
	}
}

// Compute lays out src on a width×height canvas, measuring legend text
// with m.
func Compute(m surface.Measurer, width, height int, src Source) Layout {
	th := src.Theme()
	ss := src.Series()
	w, h := math.Max(float64(width), 0), math.Max(float64(height), 0)

	l := Layout{Canvas: surface.Rect{W: w, H: h}}

	legendW := LegendWidth(m, th.Fonts().LegendFont(), ss)
	mg := th.Margins()
	right := mg.Right
	if legendW > 0 {
		right += LegendGap + legendW
	}
	l.Plot = surface.Rect{
		X: mg.Left,
		Y: mg.Top,
		W: math.Max(w-mg.Left-right, 0),
		H: math.Max(h-mg.Top-mg.Bottom, 0),
	}
	if legendW > 0 {
		l.Legend = surface.Rect{
			X: l.Plot.Right() + LegendGap,
			Y: l.Plot.Top(),
			W: legendW,
			H: 2*LegendPadding + float64(len(ss))*LegendEntryHeight,
		}
	}

	b := dataBounds(ss)
	xlo, xhi := padRange(b.XMin, b.XMax)
	ylo, yhi := padRange(b.YMin, b.YMax)

	af := th.AxisFormat()
	l.X = fitAxis(xlo, xhi, l.Plot.W, af)
	l.Y = fitAxis(ylo, yhi, l.Plot.H, af)

	if !l.Plot.Empty() {
		ax := l.Plot.W / (l.X.Hi - l.X.Lo)
		l.X.Transform = Affine{A: ax, B: l.Plot.Left() - ax*l.X.Lo}
		ay := -l.Plot.H / (l.Y.Hi - l.Y.Lo)
		l.Y.Transform = Affine{A: ay, B: l.Plot.Bottom() - ay*l.Y.Lo}
	}
	return l
}

// LegendWidth returns the width of the legend box for ss, or 0 when ss is
// empty. It grows with the widest series name.
func LegendWidth(m surface.Measurer, f surface.Font, ss []*series.Series) float64 {
	if len(ss) == 0 {
		return 0
	}
	var widest float64
	for _, s := range ss {
		widest = math.Max(widest, m.MeasureText(s.Name(), f).Width)
	}
	return math.Ceil(widest) + LegendSample + LegendSampleGap + 2*LegendPadding
}

func dataBounds(ss []*series.Series) series.Bounds {
	b := series.EmptyBounds()
	for _, s := range ss {
		b = b.Union(s.Bounds())
	}
	if b.IsEmpty() {
		return series.Bounds{XMin: 0, XMax: 1, YMin: 0, YMax: 1}
	}
	return b
}

// padRange widens a degenerate range symmetrically so it can be scaled.
func padRange(lo, hi float64) (float64, float64) {
	if hi-lo != 0 {
		return lo, hi
	}
	pad := math.Abs(lo) * degeneratePad
	if pad == 0 {
		pad = 1
	}
	return lo - pad, hi + pad
}

// fitAxis picks the densest tick set whose ticks are at least
// af.MinTickSpacing pixels apart, starting from extent/spacing intervals.
func fitAxis(lo, hi, extent float64, af theme.AxisFormatTheme) Axis {
	target := ticks.MinTarget
	if extent > 0 {
		target = int(extent / af.MinTickSpacing)
	}
	target = max(ticks.MinTarget, min(target, MaxTicks))

	f := af.TickFormat()
	for {
		s := ticks.Nice(lo, hi, target, f)
		if target <= ticks.MinTarget || extent <= 0 || tickSpacing(s, extent) >= af.MinTickSpacing {
			return Axis{Scale: s}
		}
		target--
	}
}

func tickSpacing(s ticks.Scale, extent float64) float64 {
	if s.Hi == s.Lo {
		return extent
	}
	return extent * s.Step / (s.Hi - s.Lo)
}
