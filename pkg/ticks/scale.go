package ticks

// Tick is a single labelled axis position in data space.
type Tick struct {
	Value float64
	Label string
}

// Scale is a snapped axis: tick bounds, step and labelled ticks.
type Scale struct {
	Lo, Hi float64
	Step   float64
	Ticks  []Tick
}

// Nice generates ticks for [min, max] and labels them with f.
func Nice(min, max float64, target int, f Format) Scale {
	step, vals := Generate(min, max, target)
	s := Scale{
		Lo:    vals[0],
		Hi:    vals[len(vals)-1],
		Step:  step,
		Ticks: make([]Tick, len(vals)),
	}
	for i, label := range Labels(vals, step, f) {
		s.Ticks[i] = Tick{Value: vals[i], Label: label}
	}
	return s
}

// Values returns the tick values of s.
func (s Scale) Values() []float64 {
	out := make([]float64, len(s.Ticks))
	for i, t := range s.Ticks {
		out[i] = t.Value
	}
	return out
}

// Midpoints returns the values halfway between consecutive ticks, used for
// minor grid lines.
func (s Scale) Midpoints() []float64 {
	if len(s.Ticks) < 2 {
		return nil
	}
	out := make([]float64, 0, len(s.Ticks)-1)
	for i := 1; i < len(s.Ticks); i++ {
		out = append(out, (s.Ticks[i-1].Value+s.Ticks[i].Value)/2)
	}
	return out
}
