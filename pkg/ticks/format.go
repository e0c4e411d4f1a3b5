package ticks

import (
	"math"
	"strconv"
	"strings"
)

// maxDecimals caps the precision search in [Decimals] and [Labels].
const maxDecimals = 20

// Format controls how tick values become label strings.
type Format struct {
	// AutoClean derives the decimal count from the tick step, widening it
	// when consecutive labels would otherwise collide. When false every
	// label uses MaxDecimals places.
	AutoClean bool
	// MaxDecimals is the fixed precision used when AutoClean is off.
	MaxDecimals int
	// ScientificThreshold switches labels with |v| ≥ threshold to
	// scientific notation. Zero disables it.
	ScientificThreshold float64
	// TrailingZeros keeps "1.0" instead of trimming it to "1".
	TrailingZeros bool
}

// DefaultFormat returns the formatting used by the default theme.
func DefaultFormat() Format {
	return Format{
		AutoClean:           true,
		MaxDecimals:         2,
		ScientificThreshold: 1e6,
	}
}

// Decimals returns the fewest decimal places that represent step exactly.
//
//	Decimals(500)  == 0
//	Decimals(0.25) == 2
//	Decimals(0.1)  == 1
func Decimals(step float64) int {
	step = math.Abs(step)
	if step == 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		return 0
	}
	for d := 0; d <= maxDecimals; d++ {
		v := step * math.Pow10(d)
		r := math.Round(v)
		// r == 0 means step is still below the last place shown.
		if r != 0 && math.Abs(v-r) <= tolerance*math.Max(1, v) {
			return d
		}
	}
	return maxDecimals
}

// FormatValue renders v as a tick label for an axis stepping by step.
func FormatValue(v, step float64, f Format) string {
	decimals := f.MaxDecimals
	if f.AutoClean {
		decimals = Decimals(step)
	}
	return formatFixed(v, decimals, f)
}

func formatFixed(v float64, decimals int, f Format) string {
	if v == 0 {
		v = 0 // normalize -0
	}

	if f.ScientificThreshold > 0 && math.Abs(v) >= f.ScientificThreshold {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	if decimals < 0 {
		decimals = 0
	}

	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if !f.TrailingZeros && strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// Labels formats every value in vals. With AutoClean, distinct values get
// distinct labels: precision grows past [Decimals] of step until they
// differ, and the shortest round-trip form is used beyond [maxDecimals].
func Labels(vals []float64, step float64, f Format) []string {
	if !f.AutoClean {
		out := make([]string, len(vals))
		for i, v := range vals {
			out[i] = formatFixed(v, f.MaxDecimals, f)
		}
		return out
	}

	out := make([]string, len(vals))
	for d := Decimals(step); d <= maxDecimals; d++ {
		for i, v := range vals {
			out[i] = formatFixed(v, d, f)
		}
		if distinct(vals, out) {
			return out
		}
	}
	for i, v := range vals {
		out[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return out
}

// distinct reports whether labels differ wherever consecutive values do.
func distinct(vals []float64, labels []string) bool {
	for i := 1; i < len(labels); i++ {
		if labels[i] == labels[i-1] && vals[i] != vals[i-1] {
			return false
		}
	}
	return true
}
