package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/matzehuels/plotlib/pkg/surface"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	red   = color.RGBA{255, 0, 0, 255}
	black = color.RGBA{0, 0, 0, 255}
)

func TestFillRect(t *testing.T) {
	s := New(40, 30)
	s.FillRect(surface.Rect{X: 0, Y: 0, W: 40, H: 30}, white)
	s.FillRect(surface.Rect{X: 10, Y: 10, W: 10, H: 10}, red)

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"inside", 15, 15, red},
		{"outside", 5, 5, white},
		{"corner", 39, 29, white},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Image().RGBAAt(tt.x, tt.y); !near(got, tt.want) {
				t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestFillRectClipsToCanvas(t *testing.T) {
	s := New(20, 20)
	s.FillRect(surface.Rect{X: -50, Y: -50, W: 200, H: 200}, red)
	for _, p := range []image.Point{{0, 0}, {19, 19}, {10, 3}} {
		if got := s.Image().RGBAAt(p.X, p.Y); !near(got, red) {
			t.Errorf("pixel %v = %v, want %v", p, got, red)
		}
	}
}

func TestDrawLine(t *testing.T) {
	s := New(50, 50)
	s.DrawLine(surface.Pt(5, 25), surface.Pt(45, 25), black, 4)

	if got := s.Image().RGBAAt(25, 25); got.A < 250 {
		t.Errorf("pixel on line alpha = %d, want opaque", got.A)
	}
	if got := s.Image().RGBAAt(25, 10); got.A != 0 {
		t.Errorf("pixel off line alpha = %d, want 0", got.A)
	}
}

func TestDrawLineZeroWidth(t *testing.T) {
	s := New(10, 10)
	s.DrawLine(surface.Pt(0, 5), surface.Pt(10, 5), black, 0)
	for x := 0; x < 10; x++ {
		if got := s.Image().RGBAAt(x, 5); got.A != 0 {
			t.Fatalf("zero-width line painted pixel (%d,5)", x)
		}
	}
}

func TestDrawCircle(t *testing.T) {
	s := New(40, 40)
	s.DrawCircle(surface.Pt(20, 20), 8, red, true)
	if got := s.Image().RGBAAt(20, 20); !near(got, red) {
		t.Errorf("filled center = %v, want %v", got, red)
	}

	s = New(40, 40)
	s.DrawCircle(surface.Pt(20, 20), 8, red, false)
	if got := s.Image().RGBAAt(20, 20); got.A != 0 {
		t.Errorf("outlined center alpha = %d, want 0", got.A)
	}
	if got := s.Image().RGBAAt(28, 20); got.A == 0 {
		t.Error("outline pixel at radius is transparent")
	}
}

func TestFillPolygon(t *testing.T) {
	s := New(30, 30)
	s.FillPolygon([]surface.Point{{X: 0, Y: 0}, {X: 30, Y: 0}, {X: 0, Y: 30}}, red)
	if got := s.Image().RGBAAt(5, 5); !near(got, red) {
		t.Errorf("inside triangle = %v, want %v", got, red)
	}
	if got := s.Image().RGBAAt(25, 25); got.A != 0 {
		t.Errorf("outside triangle alpha = %d, want 0", got.A)
	}
}

func TestMeasureText(t *testing.T) {
	s := New(10, 10)
	defer s.Close()

	f := surface.Font{Family: "SansSerif", Size: 12}
	short := s.MeasureText("A", f)
	long := s.MeasureText("A much longer series name", f)

	if short.Width <= 0 || short.Ascent <= 0 || short.Descent < 0 {
		t.Fatalf("MeasureText(A) = %+v, want positive extents", short)
	}
	if long.Width <= short.Width {
		t.Errorf("longer text width %v <= %v", long.Width, short.Width)
	}

	bold := s.MeasureText("A much longer series name", surface.Font{Family: "SansSerif", Size: 12, Bold: true})
	if bold.Width <= long.Width {
		t.Errorf("bold width %v <= regular width %v", bold.Width, long.Width)
	}
}

func TestDrawText(t *testing.T) {
	f := surface.Font{Family: "SansSerif", Size: 16, Bold: true}

	t.Run("horizontal", func(t *testing.T) {
		s := New(100, 40)
		s.DrawText(surface.Pt(5, 30), "HHHH", f, black, surface.Horizontal)
		if countOpaque(s.Image(), image.Rect(0, 0, 100, 40)) == 0 {
			t.Error("no pixels drawn")
		}
	})

	t.Run("vertical", func(t *testing.T) {
		s := New(40, 100)
		s.DrawText(surface.Pt(25, 95), "HHHH", f, black, surface.Vertical)
		inside := countOpaque(s.Image(), image.Rect(0, 20, 40, 100))
		if inside == 0 {
			t.Fatal("no pixels drawn")
		}
		if below := countOpaque(s.Image(), image.Rect(0, 96, 40, 100)); below != 0 {
			t.Errorf("%d pixels drawn below the anchor", below)
		}
	})
}

func countOpaque(img *image.RGBA, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y).A > 128 {
				n++
			}
		}
	}
	return n
}

func near(a, b color.RGBA) bool {
	d := func(x, y uint8) bool {
		diff := int(x) - int(y)
		return diff >= -2 && diff <= 2
	}
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}
