package sink

import (
	"bytes"
	"context"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/matzehuels/plotlib/pkg/errors"
	"github.com/matzehuels/plotlib/pkg/surface"
)

func TestForPath(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"plot.png", FormatPNG, false},
		{"out/plot.PNG", FormatPNG, false},
		{"photo.jpg", FormatJPEG, false},
		{"photo.jpeg", FormatJPEG, false},
		{"chart.svg", FormatSVG, false},
		{"paper.pdf", FormatPDF, false},
		{"notes.txt", "", true},
		{"archive.tar.gz", "", true},
		{"noext", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			s, err := ForPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ForPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeUnsupportedFormat) {
					t.Errorf("ForPath(%q) code = %v, want %v", tt.path, errors.GetCode(err), errors.ErrCodeUnsupportedFormat)
				}
				return
			}
			if s.Format() != tt.want {
				t.Errorf("ForPath(%q).Format() = %q, want %q", tt.path, s.Format(), tt.want)
			}
		})
	}
}

func TestFormats(t *testing.T) {
	got := strings.Join(Formats(), ",")
	if got != "jpeg,pdf,png,svg" {
		t.Errorf("Formats() = %q", got)
	}
	if !IsValid("jpg") || !IsValid(".SVG") || IsValid("gif") {
		t.Error("IsValid() mismatch")
	}
}

func paint(s surface.Surface) {
	sz := s.Size()
	s.FillRect(surface.Rect{W: sz.W, H: sz.H}, color.White)
	s.DrawLine(surface.Pt(0, 0), surface.Pt(sz.W, sz.H), color.Black, 2)
}

func TestRasterSinks(t *testing.T) {
	ctx := context.Background()

	data, err := NewPNG().Render(ctx, 64, 48, paint)
	if err != nil {
		t.Fatalf("PNG Render: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("PNG size = %v, want 64x48", b)
	}

	data, err = NewJPEG(WithQuality(80)).Render(ctx, 64, 48, paint)
	if err != nil {
		t.Fatalf("JPEG Render: %v", err)
	}
	if _, err := jpeg.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("jpeg.Decode: %v", err)
	}
}

func TestRenderDeterministic(t *testing.T) {
	for _, s := range []Sink{NewPNG(), NewSVG()} {
		t.Run(s.Format(), func(t *testing.T) {
			a, err := s.Render(context.Background(), 80, 60, paint)
			if err != nil {
				t.Fatal(err)
			}
			b, err := s.Render(context.Background(), 80, 60, paint)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(a, b) {
				t.Error("repeated renders differ")
			}
		})
	}
}

func TestSVGSink(t *testing.T) {
	s := NewSVG()
	if s.ContentType() != "image/svg+xml" {
		t.Errorf("ContentType() = %q", s.ContentType())
	}
	data, err := s.Render(context.Background(), 80, 60, paint)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("<svg")) || !bytes.HasSuffix(bytes.TrimSpace(data), []byte("</svg>")) {
		t.Errorf("not an SVG document:\n%s", data)
	}
}

func TestRenderCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewPNG().Render(ctx, 10, 10, paint); err == nil {
		t.Error("Render with canceled context succeeded")
	}
}
