package fonts

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/matzehuels/plotlib/pkg/surface"
)

type faceKey struct {
	family string
	bold   bool
	size   float64
}

// Faces caches font faces for a single owner, typically one surface.
// It is not safe for concurrent use.
type Faces struct {
	m map[faceKey]font.Face
}

// NewFaces returns an empty face cache.
func NewFaces() *Faces {
	return &Faces{m: make(map[faceKey]font.Face)}
}

// Face returns the face for f, or nil when f has no size or the font
// cannot be loaded.
func (c *Faces) Face(f surface.Font) font.Face {
	if f.Size <= 0 {
		return nil
	}
	k := faceKey{Canonical(f.Family), f.Bold, f.Size}
	if face, ok := c.m[k]; ok {
		return face
	}
	face, err := NewFace(f.Family, f.Bold, f.Size)
	if err != nil {
		return nil
	}
	c.m[k] = face
	return face
}

// Measure returns the extents of s set in f.
func (c *Faces) Measure(s string, f surface.Font) surface.Metrics {
	face := c.Face(f)
	if face == nil {
		return surface.Metrics{}
	}
	m := face.Metrics()
	return surface.Metrics{
		Width:   FromFixed(font.MeasureString(face, s)),
		Ascent:  FromFixed(m.Ascent),
		Descent: FromFixed(m.Descent),
	}
}

// Close releases every cached face.
func (c *Faces) Close() error {
	for k, f := range c.m {
		f.Close()
		delete(c.m, k)
	}
	return nil
}

// FromFixed converts a 26.6 fixed-point value to float pixels.
func FromFixed(v fixed.Int26_6) float64 { return float64(v) / 64 }
