package sink

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/matzehuels/plotlib/pkg/errors"
	"github.com/matzehuels/plotlib/pkg/surface/raster"
)

// DefaultJPEGQuality is used when no quality option is given.
const DefaultJPEGQuality = 92

type rasterSink struct {
	format      string
	contentType string
	encode      func(io.Writer, image.Image) error
}

// NewPNG returns a lossless raster sink.
func NewPNG() Sink {
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	return &rasterSink{format: FormatPNG, contentType: "image/png", encode: enc.Encode}
}

// JPEGOption configures JPEG encoding.
type JPEGOption func(*jpeg.Options)

// WithQuality sets the JPEG quality, 1 to 100.
func WithQuality(q int) JPEGOption {
	return func(o *jpeg.Options) { o.Quality = q }
}

// NewJPEG returns a lossy raster sink.
func NewJPEG(opts ...JPEGOption) Sink {
	o := jpeg.Options{Quality: DefaultJPEGQuality}
	for _, opt := range opts {
		opt(&o)
	}
	return &rasterSink{
		format:      FormatJPEG,
		contentType: "image/jpeg",
		encode:      func(w io.Writer, img image.Image) error { return jpeg.Encode(w, img, &o) },
	}
}

func (s *rasterSink) Format() string      { return s.format }
func (s *rasterSink) ContentType() string { return s.contentType }

func (s *rasterSink) Render(ctx context.Context, width, height int, draw DrawFunc) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	surf := raster.New(width, height)
	defer surf.Close()
	draw(surf)

	var buf bytes.Buffer
	if err := s.encode(&buf, surf.Image()); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "encode %s", s.format)
	}
	return buf.Bytes(), nil
}
