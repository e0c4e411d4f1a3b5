package series

import "math"

// Bounds is an axis-aligned data-space box.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

// EmptyBounds returns a box that any point extends.
func EmptyBounds() Bounds {
	return Bounds{
		XMin: math.Inf(1), XMax: math.Inf(-1),
		YMin: math.Inf(1), YMax: math.Inf(-1),
	}
}

// IsEmpty reports whether no point has been added.
func (b Bounds) IsEmpty() bool { return b.XMin > b.XMax || b.YMin > b.YMax }

// Extend returns b grown to include (x, y).
func (b Bounds) Extend(x, y float64) Bounds {
	b.XMin, b.XMax = math.Min(b.XMin, x), math.Max(b.XMax, x)
	b.YMin, b.YMax = math.Min(b.YMin, y), math.Max(b.YMax, y)
	return b
}

// Union returns the smallest box containing b and o.
func (b Bounds) Union(o Bounds) Bounds {
	if o.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return o
	}
	return Bounds{
		XMin: math.Min(b.XMin, o.XMin), XMax: math.Max(b.XMax, o.XMax),
		YMin: math.Min(b.YMin, o.YMin), YMax: math.Max(b.YMax, o.YMax),
	}
}
