// Package surface defines the drawing capability the renderer targets.
//
// A [Surface] is an abstract 2D canvas addressed in pixel coordinates with
// the origin at the top-left corner and y growing downward. The renderer
// only ever talks to this interface; concrete adapters live in the raster
// (in-memory RGBA image) and vector (SVG document) subpackages.
package surface

import (
	"image/color"
)

// Point is a position in pixel space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Size is a pixel extent.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned pixel rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Left returns the minimum x of r.
func (r Rect) Left() float64 { return r.X }

// Right returns the maximum x of r.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the minimum y of r.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the maximum y of r.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the midpoint of r.
func (r Rect) Center() Point { return Point{r.X + r.W/2, r.Y + r.H/2} }

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}

// Orientation is the direction a text run flows.
type Orientation int

const (
	// Horizontal text reads left to right.
	Horizontal Orientation = iota
	// Vertical text is rotated 90° counter-clockwise and reads bottom to top.
	Vertical
)

// Font describes a text face by family, pixel size and weight.
type Font struct {
	Family string
	Size   float64
	Bold   bool
}

// Metrics are the measured extents of a text run.
//
// Width is the advance along the baseline, Ascent the distance from the
// baseline to the top of the tallest glyph and Descent the distance below
// the baseline.
type Metrics struct {
	Width   float64
	Ascent  float64
	Descent float64
}

// Height returns Ascent + Descent.
func (m Metrics) Height() float64 { return m.Ascent + m.Descent }

// Measurer measures text in a given font.
type Measurer interface {
	MeasureText(s string, f Font) Metrics
}

// Surface is the drawing capability consumed by the renderer.
//
// All coordinates are in pixels. Text anchors name the left end of the
// baseline; for [Vertical] text the anchor is the start of the baseline
// after rotation, so the run extends upward from it.
type Surface interface {
	Measurer

	// Size returns the canvas dimensions.
	Size() Size

	// DrawLine strokes a straight segment with round caps.
	DrawLine(p1, p2 Point, c color.Color, width float64)

	// FillRect fills r with c.
	FillRect(r Rect, c color.Color)

	// DrawText draws s with its baseline starting at anchor.
	DrawText(anchor Point, s string, f Font, c color.Color, o Orientation)

	// DrawCircle draws a circle of radius r at center, filled when fill is
	// true and stroked with a 1px outline otherwise.
	DrawCircle(center Point, r float64, c color.Color, fill bool)

	// FillPolygon fills the closed polygon through pts.
	FillPolygon(pts []Point, c color.Color)
}

// StrokeRect outlines r on s with four lines of the given width.
func StrokeRect(s Surface, r Rect, c color.Color, width float64) {
	tl := Point{r.Left(), r.Top()}
	tr := Point{r.Right(), r.Top()}
	br := Point{r.Right(), r.Bottom()}
	bl := Point{r.Left(), r.Bottom()}
	s.DrawLine(tl, tr, c, width)
	s.DrawLine(tr, br, c, width)
	s.DrawLine(br, bl, c, width)
	s.DrawLine(bl, tl, c, width)
}
