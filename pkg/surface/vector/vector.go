// Package vector implements surface.Surface as an SVG document.
//
// Drawing calls are streamed into an in-memory buffer through
// github.com/ajstarks/svgo. Coordinates are rounded to whole pixels, which
// keeps output compact and byte-stable across runs. Text is measured with
// the same embedded fonts as the raster surface so both formats share one
// layout.
package vector

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo"

	"github.com/matzehuels/plotlib/pkg/fonts"
	"github.com/matzehuels/plotlib/pkg/surface"
)

// Surface records drawing calls as SVG elements.
type Surface struct {
	buf    bytes.Buffer
	canvas *svg.SVG
	w, h   int
	faces  *fonts.Faces
	done   bool
}

var _ surface.Surface = (*Surface)(nil)

// New starts a w×h SVG document.
func New(w, h int) *Surface {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	s := &Surface{w: w, h: h, faces: fonts.NewFaces()}
	s.canvas = svg.New(&s.buf)
	s.canvas.Start(w, h, fmt.Sprintf(`viewBox="0 0 %d %d"`, w, h))
	return s
}

// Bytes closes the document and returns the SVG source. Drawing after
// Bytes has been called is ignored.
func (s *Surface) Bytes() []byte {
	if !s.done {
		s.canvas.End()
		s.done = true
		s.faces.Close()
	}
	return s.buf.Bytes()
}

// Size returns the canvas size given to New.
func (s *Surface) Size() surface.Size {
	return surface.Size{W: float64(s.w), H: float64(s.h)}
}

// MeasureText measures with the embedded faces, as the raster surface does.
func (s *Surface) MeasureText(str string, f surface.Font) surface.Metrics {
	return s.faces.Measure(str, f)
}

func (s *Surface) DrawLine(p1, p2 surface.Point, c color.Color, width float64) {
	if s.done || width <= 0 {
		return
	}
	s.canvas.Line(px(p1.X), px(p1.Y), px(p2.X), px(p2.Y),
		stroke(c, width)+";stroke-linecap:round")
}

func (s *Surface) FillRect(r surface.Rect, c color.Color) {
	if s.done || r.Empty() {
		return
	}
	x, y := px(r.Left()), px(r.Top())
	s.canvas.Rect(x, y, px(r.Right())-x, px(r.Bottom())-y, fill(c))
}

func (s *Surface) FillPolygon(pts []surface.Point, c color.Color) {
	if s.done || len(pts) < 3 {
		return
	}
	xs := make([]int, len(pts))
	ys := make([]int, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = px(p.X), px(p.Y)
	}
	s.canvas.Polygon(xs, ys, fill(c))
}

func (s *Surface) DrawCircle(center surface.Point, r float64, c color.Color, filled bool) {
	if s.done || r <= 0 {
		return
	}
	style := fill(c)
	if !filled {
		style = "fill:none;" + stroke(c, 1)
	}
	s.canvas.Circle(px(center.X), px(center.Y), int(math.Max(1, math.Round(r))), style)
}

func (s *Surface) DrawText(anchor surface.Point, str string, f surface.Font, c color.Color, o surface.Orientation) {
	if s.done || str == "" || f.Size <= 0 {
		return
	}
	x, y := px(anchor.X), px(anchor.Y)
	weight := "normal"
	if f.Bold {
		weight = "bold"
	}
	style := fmt.Sprintf("font-family:%s;font-size:%spx;font-weight:%s;%s",
		fonts.CSSFamily(f.Family), num(f.Size), weight, fill(c))
	if o == surface.Vertical {
		s.canvas.Text(x, y, str, fmt.Sprintf(`transform="rotate(-90 %d %d)"`, x, y), style)
		return
	}
	s.canvas.Text(x, y, str, style)
}

func px(v float64) int { return int(math.Round(v)) }

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func fill(c color.Color) string {
	rgb, a := surface.CSS(c)
	if a >= 1 {
		return "fill:" + rgb
	}
	return fmt.Sprintf("fill:%s;fill-opacity:%s", rgb, num(math.Round(a*1000)/1000))
}

func stroke(c color.Color, width float64) string {
	rgb, a := surface.CSS(c)
	st := fmt.Sprintf("stroke:%s;stroke-width:%s", rgb, num(width))
	if a < 1 {
		st += ";stroke-opacity:" + num(math.Round(a*1000)/1000)
	}
	return st
}
