// Package raster implements surface.Surface on an in-memory RGBA image.
//
// Shapes are antialiased with golang.org/x/image/vector and text is drawn
// with the embedded Go fonts through golang.org/x/image/font. A Surface is
// not safe for concurrent use; create one per render.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/matzehuels/plotlib/pkg/fonts"
	"github.com/matzehuels/plotlib/pkg/surface"
)

// Surface draws onto an *image.RGBA.
type Surface struct {
	img   *image.RGBA
	z     *vector.Rasterizer
	faces *fonts.Faces
}

var _ surface.Surface = (*Surface)(nil)

// New returns a transparent w×h surface.
func New(w, h int) *Surface {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Surface{
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		z:     vector.NewRasterizer(0, 0),
		faces: fonts.NewFaces(),
	}
}

// Image returns the backing image.
func (s *Surface) Image() *image.RGBA { return s.img }

// Close releases the cached font faces.
func (s *Surface) Close() error {
	return s.faces.Close()
}

// Size returns the image bounds in pixels.
func (s *Surface) Size() surface.Size {
	b := s.img.Bounds()
	return surface.Size{W: float64(b.Dx()), H: float64(b.Dy())}
}

// FillRect fills r, antialiasing fractional edges.
func (s *Surface) FillRect(r surface.Rect, c color.Color) {
	s.fill(c, []surface.Point{
		{X: r.Left(), Y: r.Top()},
		{X: r.Right(), Y: r.Top()},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.Left(), Y: r.Bottom()},
	})
}

// FillPolygon fills the closed polygon through pts. Fewer than three
// points draw nothing.
func (s *Surface) FillPolygon(pts []surface.Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	s.fill(c, pts)
}

// DrawLine strokes p1 to p2. Lines wider than 1.5px get round caps.
func (s *Surface) DrawLine(p1, p2 surface.Point, c color.Color, width float64) {
	if width <= 0 {
		return
	}
	half := width / 2
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		s.fill(c, circle(p1, half))
		return
	}
	nx, ny := -dy/length*half, dx/length*half
	body := []surface.Point{
		{X: p1.X + nx, Y: p1.Y + ny},
		{X: p2.X + nx, Y: p2.Y + ny},
		{X: p2.X - nx, Y: p2.Y - ny},
		{X: p1.X - nx, Y: p1.Y - ny},
	}
	if width <= 1.5 {
		s.fill(c, body)
		return
	}
	s.fill(c, body, circle(p1, half), circle(p2, half))
}

// DrawCircle draws a disc, or a 1px ring when fill is false.
func (s *Surface) DrawCircle(center surface.Point, r float64, c color.Color, fill bool) {
	if r <= 0 {
		return
	}
	if fill {
		s.fill(c, circle(center, r))
		return
	}
	outer := circle(center, r+0.5)
	inner := reverse(circle(center, math.Max(r-0.5, 0)))
	s.fillRaw(c, outer, inner)
}

// MeasureText measures str with the face cached for f.
func (s *Surface) MeasureText(str string, f surface.Font) surface.Metrics {
	return s.faces.Measure(str, f)
}

// DrawText draws str with its baseline starting at anchor. Vertical text
// runs bottom to top.
func (s *Surface) DrawText(anchor surface.Point, str string, f surface.Font, c color.Color, o surface.Orientation) {
	face := s.faces.Face(f)
	if face == nil || str == "" {
		return
	}
	if o == surface.Vertical {
		s.drawVertical(anchor, str, face, c)
		return
	}
	d := font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: toFixed(anchor.X), Y: toFixed(anchor.Y)},
	}
	d.DrawString(str)
}

// drawVertical renders str horizontally into a scratch image and copies it
// rotated 90° counter-clockwise so the baseline runs upward from anchor.
func (s *Surface) drawVertical(anchor surface.Point, str string, face font.Face, c color.Color) {
	m := face.Metrics()
	asc := m.Ascent.Ceil()
	w := font.MeasureString(face, str).Ceil()
	h := asc + m.Descent.Ceil()
	if w <= 0 || h <= 0 {
		return
	}

	tmp := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  tmp,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(0, asc),
	}
	d.DrawString(str)

	rot := image.NewRGBA(image.Rect(0, 0, h, w))
	for ty := 0; ty < h; ty++ {
		for tx := 0; tx < w; tx++ {
			rot.SetRGBA(ty, w-1-tx, tmp.RGBAAt(tx, ty))
		}
	}

	ox := int(math.Round(anchor.X)) - asc
	oy := int(math.Round(anchor.Y)) - w
	draw.Draw(s.img, image.Rect(ox, oy, ox+h, oy+w), rot, image.Point{}, draw.Over)
}

// fill rasterizes polygons with a consistent winding so overlapping parts
// do not cancel out.
func (s *Surface) fill(c color.Color, polys ...[]surface.Point) {
	for i, p := range polys {
		if signedArea(p) < 0 {
			polys[i] = reverse(p)
		}
	}
	s.fillRaw(c, polys...)
}

// fillRaw rasterizes polygons as given. Opposite windings subtract.
func (s *Surface) fillRaw(c color.Color, polys ...[]surface.Point) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range polys {
		for _, pt := range p {
			minX, maxX = math.Min(minX, pt.X), math.Max(maxX, pt.X)
			minY, maxY = math.Min(minY, pt.Y), math.Max(maxY, pt.Y)
		}
	}
	box := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(s.img.Bounds())
	if box.Empty() {
		return
	}

	// Clamping vertices to the box clips without changing coverage inside it.
	clampX := func(x float64) float32 {
		return float32(math.Min(math.Max(x, float64(box.Min.X)), float64(box.Max.X)) - float64(box.Min.X))
	}
	clampY := func(y float64) float32 {
		return float32(math.Min(math.Max(y, float64(box.Min.Y)), float64(box.Max.Y)) - float64(box.Min.Y))
	}

	s.z.Reset(box.Dx(), box.Dy())
	s.z.DrawOp = draw.Over
	for _, p := range polys {
		if len(p) < 3 {
			continue
		}
		s.z.MoveTo(clampX(p[0].X), clampY(p[0].Y))
		for _, pt := range p[1:] {
			s.z.LineTo(clampX(pt.X), clampY(pt.Y))
		}
		s.z.ClosePath()
	}
	s.z.Draw(s.img, box, image.NewUniform(c), image.Point{})
}

func circle(c surface.Point, r float64) []surface.Point {
	n := int(math.Max(12, math.Ceil(r*4)))
	if n > 96 {
		n = 96
	}
	pts := make([]surface.Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = surface.Point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
	}
	return pts
}

func signedArea(pts []surface.Point) float64 {
	var a float64
	for i := range pts {
		j := (i + 1) % len(pts)
		a += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return a / 2
}

func reverse(pts []surface.Point) []surface.Point {
	out := make([]surface.Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

func toFixed(v float64) fixed.Int26_6 { return fixed.Int26_6(math.Round(v * 64)) }
