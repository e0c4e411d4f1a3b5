// Package surfacetest provides a recording Surface for tests.
package surfacetest

import (
	"image/color"
	"unicode/utf8"

	"github.com/matzehuels/plotlib/pkg/surface"
)

// Op identifies a recorded drawing primitive.
type Op string

const (
	OpLine    Op = "line"
	OpRect    Op = "rect"
	OpText    Op = "text"
	OpCircle  Op = "circle"
	OpPolygon Op = "polygon"
)

// Call is one primitive recorded by a [Recorder].
type Call struct {
	Op     Op
	Points []surface.Point
	Rect   surface.Rect
	Text   string
	Font   surface.Font
	Color  color.Color
	Width  float64
	Radius float64
	Fill   bool
	Orient surface.Orientation
}

// Recorder is a surface.Surface that records primitives instead of drawing them.
//
// Text is measured with a fixed advance of 0.6 × font size per rune, which
// is close enough to the embedded sans face for layout purposes and keeps
// tests independent of font rasterization.
type Recorder struct {
	W, H  float64
	Calls []Call
}

var _ surface.Surface = (*Recorder)(nil)

// NewRecorder returns a recorder for a w×h canvas.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Size() surface.Size { return surface.Size{W: r.W, H: r.H} }

func (r *Recorder) MeasureText(s string, f surface.Font) surface.Metrics {
	return surface.Metrics{
		Width:   0.6 * f.Size * float64(utf8.RuneCountInString(s)),
		Ascent:  0.8 * f.Size,
		Descent: 0.2 * f.Size,
	}
}

func (r *Recorder) DrawLine(p1, p2 surface.Point, c color.Color, width float64) {
	r.Calls = append(r.Calls, Call{Op: OpLine, Points: []surface.Point{p1, p2}, Color: c, Width: width})
}

func (r *Recorder) FillRect(rect surface.Rect, c color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpRect, Rect: rect, Color: c, Fill: true})
}

func (r *Recorder) DrawText(anchor surface.Point, s string, f surface.Font, c color.Color, o surface.Orientation) {
	r.Calls = append(r.Calls, Call{Op: OpText, Points: []surface.Point{anchor}, Text: s, Font: f, Color: c, Orient: o})
}

func (r *Recorder) DrawCircle(center surface.Point, radius float64, c color.Color, fill bool) {
	r.Calls = append(r.Calls, Call{Op: OpCircle, Points: []surface.Point{center}, Radius: radius, Color: c, Fill: fill})
}

func (r *Recorder) FillPolygon(pts []surface.Point, c color.Color) {
	cp := make([]surface.Point, len(pts))
	copy(cp, pts)
	r.Calls = append(r.Calls, Call{Op: OpPolygon, Points: cp, Color: c, Fill: true})
}

// Count returns how many calls of op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Filter returns the recorded calls of op in draw order.
func (r *Recorder) Filter(op Op) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Reset discards all recorded calls.
func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }
