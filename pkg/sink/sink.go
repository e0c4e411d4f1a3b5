// Package sink maps output formats to drawing surfaces and encoders.
//
// A [Sink] owns one format end to end: it creates the surface the renderer
// draws on and encodes the finished drawing to bytes. Callers pick a sink by
// file extension ([ForPath]) or by format name ([ForFormat]):
//
//	s, err := sink.ForPath("chart.svg")
//	data, err := s.Render(ctx, 800, 600, func(surf surface.Surface) {
//	    render.Render(surf, p, layout.Compute(surf, 800, 600, p))
//	})
//
// Supported formats are png, jpeg (raster) and svg, pdf (vector). PDF
// needs the external rsvg-convert tool.
package sink

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/matzehuels/plotlib/pkg/errors"
	"github.com/matzehuels/plotlib/pkg/surface"
)

// Format names.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
	FormatSVG  = "svg"
	FormatPDF  = "pdf"
)

// DrawFunc paints a complete plot onto a surface.
type DrawFunc func(surface.Surface)

// Sink renders a drawing into one output format.
type Sink interface {
	// Format returns the canonical format name.
	Format() string
	// ContentType returns the MIME type of the encoded output.
	ContentType() string
	// Render creates a width×height surface, runs draw on it and encodes
	// the result.
	Render(ctx context.Context, width, height int, draw DrawFunc) ([]byte, error)
}

var byFormat = map[string]func() Sink{
	FormatPNG:  func() Sink { return NewPNG() },
	FormatJPEG: func() Sink { return NewJPEG() },
	FormatSVG:  func() Sink { return NewSVG() },
	FormatPDF:  func() Sink { return NewPDF() },
}

var aliases = map[string]string{
	"jpg": FormatJPEG,
}

// ForFormat returns the sink for a format name such as "png" or "svg".
// Names are case-insensitive and may carry a leading dot.
func ForFormat(name string) (Sink, error) {
	key := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "."))
	if a, ok := aliases[key]; ok {
		key = a
	}
	mk, ok := byFormat[key]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnsupportedFormat,
			"unsupported format %q (supported: %s)", name, strings.Join(Formats(), ", "))
	}
	return mk(), nil
}

// ForPath returns the sink for the extension of path.
func ForPath(path string) (Sink, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return nil, errors.New(errors.ErrCodeUnsupportedFormat,
			"%q has no file extension (supported: %s)", path, strings.Join(Formats(), ", "))
	}
	return ForFormat(ext)
}

// Formats returns the supported format names in sorted order.
func Formats() []string {
	out := make([]string, 0, len(byFormat))
	for f := range byFormat {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// IsValid reports whether name is a supported format or alias.
func IsValid(name string) bool {
	_, err := ForFormat(name)
	return err == nil
}
