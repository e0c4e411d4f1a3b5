package sink

import (
	"context"

	"github.com/matzehuels/plotlib/pkg/render"
	"github.com/matzehuels/plotlib/pkg/surface/vector"
)

type svgSink struct{}

// NewSVG returns a sink producing standalone SVG documents.
func NewSVG() Sink { return svgSink{} }

func (svgSink) Format() string      { return FormatSVG }
func (svgSink) ContentType() string { return "image/svg+xml" }

func (svgSink) Render(ctx context.Context, width, height int, draw DrawFunc) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	surf := vector.New(width, height)
	draw(surf)
	return surf.Bytes(), nil
}

type pdfSink struct{}

// NewPDF returns a sink that renders SVG and converts it with rsvg-convert.
func NewPDF() Sink { return pdfSink{} }

func (pdfSink) Format() string      { return FormatPDF }
func (pdfSink) ContentType() string { return "application/pdf" }

func (pdfSink) Render(ctx context.Context, width, height int, draw DrawFunc) ([]byte, error) {
	svg, err := svgSink{}.Render(ctx, width, height, draw)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}
