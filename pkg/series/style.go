package series

import (
	"image/color"
	"math"

	"github.com/matzehuels/plotlib/pkg/errors"
)

// Default style values.
const (
	DefaultLineWidth   = 2.0
	DefaultPointRadius = 3.0
)

// Style controls how a series is drawn.
type Style struct {
	// Color of lines, markers and the error band. Nil selects the palette
	// color for the series position.
	Color color.Color
	// LineWidth is the stroke width of connecting segments in pixels.
	LineWidth float64
	// ShowPoints draws a filled marker at every point.
	ShowPoints bool
	// PointRadius is the marker radius in pixels.
	PointRadius float64
	// HideLine suppresses connecting segments, leaving only markers.
	HideLine bool
}

// DefaultStyle returns a 2px line without markers.
func DefaultStyle() Style {
	return Style{LineWidth: DefaultLineWidth, PointRadius: DefaultPointRadius}
}

// ScatterStyle returns a markers-only style.
func ScatterStyle() Style {
	s := DefaultStyle()
	s.ShowPoints = true
	s.HideLine = true
	return s
}

// Validate checks the numeric fields.
func (s Style) Validate() error {
	if !(s.LineWidth > 0) || math.IsInf(s.LineWidth, 0) {
		return errors.New(errors.ErrCodeInvalidSeries, "line width must be positive, got %v", s.LineWidth)
	}
	if !(s.PointRadius >= 0) || math.IsInf(s.PointRadius, 0) {
		return errors.New(errors.ErrCodeInvalidSeries, "point radius must be non-negative, got %v", s.PointRadius)
	}
	return nil
}
