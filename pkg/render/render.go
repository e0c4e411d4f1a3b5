package render

import (
	"image/color"
	"math"

	"github.com/matzehuels/plotlib/pkg/layout"
	"github.com/matzehuels/plotlib/pkg/series"
	"github.com/matzehuels/plotlib/pkg/surface"
	"github.com/matzehuels/plotlib/pkg/theme"
)

// BandAlpha is the opacity of error bands.
const BandAlpha = 60

// Spacing between ticks, tick labels and axis titles, in pixels.
const (
	labelPad = 4
	titlePad = 8
)

// Plot is the read-only view of a plot the renderer needs.
type Plot interface {
	layout.Source
	Title() string
	XLabel() string
	YLabel() string
}

// Styles returns the resolved style of every series in p, with palette
// colors assigned by position.
func Styles(p Plot) []series.Style {
	th := p.Theme()
	ss := p.Series()
	out := make([]series.Style, len(ss))
	for i, s := range ss {
		out[i] = s.Resolve(i, th.SeriesColor)
	}
	return out
}

// Render draws p onto s using the geometry in l.
func Render(s surface.Surface, p Plot, l layout.Layout) {
	r := &renderer{s: s, p: p, l: l, th: p.Theme()}
	r.background()
	if l.Empty() {
		return
	}
	styles := Styles(p)

	r.grid()
	r.axes()
	r.bands(styles)
	r.lines(styles)
	r.markers(styles)
	r.tickLabels()
	r.titles()
	r.legend(styles)
}

type renderer struct {
	s  surface.Surface
	p  Plot
	l  layout.Layout
	th theme.Theme
}

func (r *renderer) background() {
	r.s.FillRect(r.l.Canvas, r.th.Colors().Background)
}

func (r *renderer) grid() {
	g := r.th.Grid()
	c := r.th.Colors()
	if g.ShowMinor && g.MinorLineWidth > 0 {
		r.gridLines(r.l.X.Midpoints(), r.l.Y.Midpoints(), c.GridMinor, g.MinorLineWidth)
	}
	if g.ShowMajor && g.MajorLineWidth > 0 {
		r.gridLines(r.l.X.Values(), r.l.Y.Values(), c.GridMajor, g.MajorLineWidth)
	}
}

func (r *renderer) gridLines(xs, ys []float64, c color.NRGBA, width float64) {
	area := r.l.Plot
	for _, v := range xs {
		x := r.l.X.Pixel(v)
		r.s.DrawLine(surface.Pt(x, area.Top()), surface.Pt(x, area.Bottom()), c, width)
	}
	for _, v := range ys {
		y := r.l.Y.Pixel(v)
		r.s.DrawLine(surface.Pt(area.Left(), y), surface.Pt(area.Right(), y), c, width)
	}
}

func (r *renderer) axes() {
	area := r.l.Plot
	c := r.th.Colors().AxisBorder
	surface.StrokeRect(r.s, area, c, 1)

	tl := r.th.AxisFormat().TickLength
	if tl <= 0 {
		return
	}
	for _, t := range r.l.X.Ticks {
		x := r.l.X.Pixel(t.Value)
		r.s.DrawLine(surface.Pt(x, area.Bottom()), surface.Pt(x, area.Bottom()+tl), c, 1)
	}
	for _, t := range r.l.Y.Ticks {
		y := r.l.Y.Pixel(t.Value)
		r.s.DrawLine(surface.Pt(area.Left()-tl, y), surface.Pt(area.Left(), y), c, 1)
	}
}

// bands fills the region between each series' lower and upper bounds,
// clipped to the plot area.
func (r *renderer) bands(styles []series.Style) {
	for i, s := range r.p.Series() {
		if !s.HasBand() || s.Len() < 2 {
			continue
		}
		n := s.Len()
		pts := make([]surface.Point, 0, 2*n)
		for j := 0; j < n; j++ {
			x, _ := s.At(j)
			_, hi := s.Band(j)
			pts = append(pts, r.clip(r.l.ToPixel(x, hi)))
		}
		for j := n - 1; j >= 0; j-- {
			x, _ := s.At(j)
			lo, _ := s.Band(j)
			pts = append(pts, r.clip(r.l.ToPixel(x, lo)))
		}
		r.s.FillPolygon(pts, surface.WithAlpha(styles[i].Color, BandAlpha))
	}
}

func (r *renderer) lines(styles []series.Style) {
	for i, s := range r.p.Series() {
		st := styles[i]
		if st.HideLine || s.Len() < 2 {
			continue
		}
		prev := r.l.ToPixel(s.At(0))
		for j := 1; j < s.Len(); j++ {
			cur := r.l.ToPixel(s.At(j))
			r.s.DrawLine(prev, cur, st.Color, st.LineWidth)
			prev = cur
		}
	}
}

func (r *renderer) markers(styles []series.Style) {
	for i, s := range r.p.Series() {
		st := styles[i]
		if !st.ShowPoints || st.PointRadius <= 0 {
			continue
		}
		for j := 0; j < s.Len(); j++ {
			r.s.DrawCircle(r.l.ToPixel(s.At(j)), st.PointRadius, st.Color, true)
		}
	}
}

func (r *renderer) tickLabels() {
	area := r.l.Plot
	f := r.th.Fonts().TickFont()
	fg := r.th.Colors().Foreground
	tl := r.th.AxisFormat().TickLength

	for _, t := range r.l.X.Ticks {
		m := r.s.MeasureText(t.Label, f)
		x := r.l.X.Pixel(t.Value) - m.Width/2
		y := area.Bottom() + tl + labelPad + m.Ascent
		r.s.DrawText(surface.Pt(x, y), t.Label, f, fg, surface.Horizontal)
	}
	for _, t := range r.l.Y.Ticks {
		m := r.s.MeasureText(t.Label, f)
		x := area.Left() - tl - labelPad - m.Width
		y := r.l.Y.Pixel(t.Value) + (m.Ascent-m.Descent)/2
		r.s.DrawText(surface.Pt(x, y), t.Label, f, fg, surface.Horizontal)
	}
}

func (r *renderer) titles() {
	area := r.l.Plot
	fonts := r.th.Fonts()
	fg := r.th.Colors().Foreground
	tl := r.th.AxisFormat().TickLength
	tick := fonts.TickFont()

	if label := r.p.XLabel(); label != "" {
		f := fonts.LabelFont()
		m := r.s.MeasureText(label, f)
		tm := r.s.MeasureText("0", tick)
		x := area.Center().X - m.Width/2
		y := area.Bottom() + tl + labelPad + tm.Height() + titlePad + m.Ascent
		r.s.DrawText(surface.Pt(x, y), label, f, fg, surface.Horizontal)
	}

	if label := r.p.YLabel(); label != "" {
		f := fonts.LabelFont()
		m := r.s.MeasureText(label, f)
		widest := 0.0
		for _, t := range r.l.Y.Ticks {
			widest = math.Max(widest, r.s.MeasureText(t.Label, tick).Width)
		}
		x := area.Left() - tl - labelPad - widest - titlePad - m.Descent
		x = math.Max(x, m.Ascent+2)
		y := area.Center().Y + m.Width/2
		r.s.DrawText(surface.Pt(x, y), label, f, fg, surface.Vertical)
	}

	if title := r.p.Title(); title != "" {
		f := fonts.TitleFont()
		m := r.s.MeasureText(title, f)
		x := area.Center().X - m.Width/2
		y := math.Max(area.Top()/2+(m.Ascent-m.Descent)/2, m.Ascent)
		r.s.DrawText(surface.Pt(x, y), title, f, fg, surface.Horizontal)
	}
}

func (r *renderer) legend(styles []series.Style) {
	if !r.l.HasLegend() {
		return
	}
	c := r.th.Colors()
	r.s.FillRect(r.l.Legend, c.Background)
	surface.StrokeRect(r.s, r.l.Legend, c.AxisBorder, 1)

	f := r.th.Fonts().LegendFont()
	for i, s := range r.p.Series() {
		st := styles[i]
		row := r.l.LegendEntry(i)
		cy := row.Center().Y

		if !st.HideLine {
			r.s.DrawLine(surface.Pt(row.X, cy), surface.Pt(row.X+layout.LegendSample, cy), st.Color, st.LineWidth)
		}
		if st.ShowPoints && st.PointRadius > 0 {
			r.s.DrawCircle(surface.Pt(row.X+layout.LegendSample/2, cy), st.PointRadius, st.Color, true)
		}

		m := r.s.MeasureText(s.Name(), f)
		x := row.X + layout.LegendSample + layout.LegendSampleGap
		r.s.DrawText(surface.Pt(x, cy+(m.Ascent-m.Descent)/2), s.Name(), f, c.Foreground, surface.Horizontal)
	}
}

func (r *renderer) clip(p surface.Point) surface.Point {
	a := r.l.Plot
	return surface.Point{
		X: math.Min(math.Max(p.X, a.Left()), a.Right()),
		Y: math.Min(math.Max(p.Y, a.Top()), a.Bottom()),
	}
}
