package layout

import (
	"math"
	"testing"

	"github.com/matzehuels/plotlib/pkg/series"
	"github.com/matzehuels/plotlib/pkg/surface"
	"github.com/matzehuels/plotlib/pkg/surface/surfacetest"
	"github.com/matzehuels/plotlib/pkg/theme"
)

type fakePlot struct {
	th theme.Theme
	ss []*series.Series
}

func (p fakePlot) Theme() theme.Theme        { return p.th }
func (p fakePlot) Series() []*series.Series { return p.ss }

func mustSeries(t *testing.T, name string, x, y []float64) *series.Series {
	t.Helper()
	s, err := series.New(name, x, y)
	if err != nil {
		t.Fatalf("series.New(%q): %v", name, err)
	}
	return s
}

func TestComputeGeometry(t *testing.T) {
	m := surfacetest.NewRecorder(800, 600)
	th := theme.Default()
	src := fakePlot{th: th, ss: []*series.Series{
		mustSeries(t, "sales", []float64{0, 1000, 2000}, []float64{3, 97, 50}),
	}}

	l := Compute(m, 800, 600, src)
	mg := th.Margins()

	if l.Plot.Left() != mg.Left || l.Plot.Top() != mg.Top {
		t.Errorf("plot origin = (%v, %v), want (%v, %v)", l.Plot.Left(), l.Plot.Top(), mg.Left, mg.Top)
	}
	if l.Plot.Bottom() != 600-mg.Bottom {
		t.Errorf("plot bottom = %v, want %v", l.Plot.Bottom(), 600-mg.Bottom)
	}
	if !l.HasLegend() {
		t.Fatal("legend not reserved")
	}
	if got := l.Legend.Left() - l.Plot.Right(); got != LegendGap {
		t.Errorf("legend gap = %v, want %v", got, LegendGap)
	}
	if got := 800 - l.Legend.Right(); math.Abs(got-mg.Right) > 1e-9 {
		t.Errorf("right margin = %v, want %v", got, mg.Right)
	}
	if l.Legend.H != 2*LegendPadding+LegendEntryHeight {
		t.Errorf("legend height = %v", l.Legend.H)
	}
}

func TestComputeTransforms(t *testing.T) {
	m := surfacetest.NewRecorder(800, 600)
	src := fakePlot{th: theme.Default(), ss: []*series.Series{
		mustSeries(t, "a", []float64{0, 2000}, []float64{0, 100}),
	}}
	l := Compute(m, 800, 600, src)

	tests := []struct {
		name      string
		got, want float64
	}{
		{"x lo maps to left", l.X.Pixel(l.X.Lo), l.Plot.Left()},
		{"x hi maps to right", l.X.Pixel(l.X.Hi), l.Plot.Right()},
		{"y lo maps to bottom", l.Y.Pixel(l.Y.Lo), l.Plot.Bottom()},
		{"y hi maps to top", l.Y.Pixel(l.Y.Hi), l.Plot.Top()},
		{"invert", l.X.Transform.Invert(l.X.Pixel(1234)), 1234},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.want) > 1e-9 {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if l.Y.Transform.A >= 0 {
		t.Errorf("y transform slope = %v, want negative", l.Y.Transform.A)
	}
	if l.X.Lo > 0 || l.X.Hi < 2000 || l.Y.Lo > 0 || l.Y.Hi < 100 {
		t.Errorf("axes [%v,%v]x[%v,%v] do not cover the data", l.X.Lo, l.X.Hi, l.Y.Lo, l.Y.Hi)
	}
}

func TestLegendWidthGrowsWithName(t *testing.T) {
	m := surfacetest.NewRecorder(800, 600)
	th := theme.Default()

	short := Compute(m, 800, 600, fakePlot{th: th, ss: []*series.Series{
		mustSeries(t, "A", []float64{1, 2}, []float64{1, 2}),
	}})
	long := Compute(m, 800, 600, fakePlot{th: th, ss: []*series.Series{
		mustSeries(t, "A", []float64{1, 2}, []float64{1, 2}),
		mustSeries(t, "A considerably longer series name", []float64{1, 2}, []float64{1, 2}),
	}})

	if long.Legend.W <= short.Legend.W {
		t.Errorf("legend width %v with long name <= %v with short name", long.Legend.W, short.Legend.W)
	}
	if long.Plot.W >= short.Plot.W {
		t.Errorf("plot width %v with long name >= %v with short name", long.Plot.W, short.Plot.W)
	}
}

func TestComputeNoSeries(t *testing.T) {
	m := surfacetest.NewRecorder(800, 600)
	l := Compute(m, 800, 600, fakePlot{th: theme.Default()})

	if l.HasLegend() {
		t.Error("legend reserved without series")
	}
	if l.X.Lo != 0 || l.X.Hi != 1 || l.Y.Lo != 0 || l.Y.Hi != 1 {
		t.Errorf("empty plot axes = [%v,%v]x[%v,%v], want unit square", l.X.Lo, l.X.Hi, l.Y.Lo, l.Y.Hi)
	}
}

func TestComputeDegenerateRanges(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
	}{
		{"single point", []float64{5}, []float64{7}},
		{"constant y", []float64{0, 1, 2}, []float64{3, 3, 3}},
		{"all zero", []float64{0, 0}, []float64{0, 0}},
		{"negative constant", []float64{-4, -4}, []float64{1, 2}},
	}

	m := surfacetest.NewRecorder(800, 600)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Compute(m, 800, 600, fakePlot{th: theme.Default(), ss: []*series.Series{
				mustSeries(t, "s", tt.x, tt.y),
			}})
			for _, a := range []Axis{l.X, l.Y} {
				if !(a.Hi > a.Lo) {
					t.Errorf("axis [%v, %v] is degenerate", a.Lo, a.Hi)
				}
				if math.IsNaN(a.Transform.A) || math.IsInf(a.Transform.A, 0) {
					t.Errorf("transform %+v is not finite", a.Transform)
				}
			}
			p := l.ToPixel(tt.x[0], tt.y[0])
			if !l.Plot.Contains(p) {
				t.Errorf("point %v maps outside plot area %+v", p, l.Plot)
			}
		})
	}
}

func TestComputeMinTickSpacing(t *testing.T) {
	m := surfacetest.NewRecorder(0, 0)
	th := theme.Default()
	spacing := th.AxisFormat().MinTickSpacing

	for _, size := range [][2]int{{400, 300}, {800, 600}, {1920, 1080}, {3000, 2000}} {
		l := Compute(m, size[0], size[1], fakePlot{th: th, ss: []*series.Series{
			mustSeries(t, "s", []float64{-13.7, 4821}, []float64{0.02, 0.97}),
		}})
		for name, a := range map[string]Axis{"x": l.X, "y": l.Y} {
			if len(a.Ticks) <= 3 {
				continue
			}
			for i := 1; i < len(a.Ticks); i++ {
				d := math.Abs(a.Pixel(a.Ticks[i].Value) - a.Pixel(a.Ticks[i-1].Value))
				if d < spacing-1e-9 {
					t.Errorf("%dx%d %s: ticks %d and %d are %vpx apart, want >= %v", size[0], size[1], name, i-1, i, d, spacing)
				}
			}
		}
	}
}

func TestComputeDenserOnLargerCanvas(t *testing.T) {
	m := surfacetest.NewRecorder(0, 0)
	src := fakePlot{th: theme.Default(), ss: []*series.Series{
		mustSeries(t, "s", []float64{0, 1000}, []float64{0, 1000}),
	}}
	small := Compute(m, 400, 300, src)
	large := Compute(m, 2400, 1800, src)
	if len(large.X.Ticks) <= len(small.X.Ticks) {
		t.Errorf("large canvas has %d x ticks, small has %d", len(large.X.Ticks), len(small.X.Ticks))
	}
}

func TestComputeTinyCanvas(t *testing.T) {
	m := surfacetest.NewRecorder(0, 0)
	l := Compute(m, 50, 40, fakePlot{th: theme.Default(), ss: []*series.Series{
		mustSeries(t, "s", []float64{1, 2}, []float64{1, 2}),
	}})
	if !l.Empty() {
		t.Errorf("plot area %+v should be empty on a 50x40 canvas", l.Plot)
	}
}

func TestLegendEntry(t *testing.T) {
	l := Layout{Legend: surface.Rect{X: 600, Y: 60, W: 120, H: 56}}
	r := l.LegendEntry(1)
	if r.Y != 60+LegendPadding+LegendEntryHeight || r.X != 600+LegendPadding {
		t.Errorf("LegendEntry(1) = %+v", r)
	}
}

func TestPadRange(t *testing.T) {
	tests := []struct {
		lo, hi         float64
		wantLo, wantHi float64
	}{
		{0, 1, 0, 1},
		{-2, 3, -2, 3},
		{10, 10, 9.5, 10.5},
		{-10, -10, -10.5, -9.5},
		{0, 0, -1, 1},
	}

	for _, tt := range tests {
		lo, hi := padRange(tt.lo, tt.hi)
		if math.Abs(lo-tt.wantLo) > 1e-12 || math.Abs(hi-tt.wantHi) > 1e-12 {
			t.Errorf("padRange(%v, %v) = (%v, %v), want (%v, %v)", tt.lo, tt.hi, lo, hi, tt.wantLo, tt.wantHi)
		}
	}
}
