package ticks

import (
	"math"
)

// MinTarget is the smallest interval count [Generate] honors.
const MinTarget = 2

// tolerance absorbs float error when snapping bounds to step multiples.
const tolerance = 1e-9

// maxExact is the largest step count that stays exact in a float64.
const maxExact = 1 << 52

// mantissas are the allowed leading digits of a nice step.
var mantissas = [...]int64{1, 2, 5}

// Generate returns a nice step and the tick values covering [min, max].
//
// The first tick is the largest multiple of step not above min, the last the
// smallest multiple not below max. A target below [MinTarget] is raised to it,
// and a reversed range is swapped. A zero-width range at v is widened by
// 10% of |v| on each side; the all-zero range yields the single tick 0.
func Generate(min, max float64, target int) (step float64, ticks []float64) {
	if target < MinTarget {
		target = MinTarget
	}
	if min > max {
		min, max = max, min
	}
	if min == max {
		if min == 0 {
			return 1, []float64{0}
		}
		pad := math.Abs(min) * 0.1
		min, max = min-pad, max+pad
	}

	m, k := niceStep((max - min) / float64(target))
	step = scale(m, k)

	lof := math.Floor(min/step + tolerance)
	hif := math.Ceil(max/step - tolerance)
	if math.Abs(lof) > maxExact || math.Abs(hif) > maxExact {
		// The range is too narrow for its magnitude to count steps in int64.
		return step, []float64{lof * step, hif * step}
	}

	lo, hi := int64(lof), int64(hif)
	if hi < lo {
		hi = lo
	}

	ticks = make([]float64, 0, hi-lo+1)
	for n := lo; n <= hi; n++ {
		ticks = append(ticks, scale(n*m, k))
	}
	return step, ticks
}

// IsNiceStep reports whether step has the form {1,2,5} × 10^k.
func IsNiceStep(step float64) bool {
	if step <= 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		return false
	}
	k := int(math.Floor(math.Log10(step)))
	for _, kk := range []int{k - 1, k, k + 1} {
		for _, m := range mantissas {
			if v := scale(m, kk); math.Abs(v-step) <= tolerance*step {
				return true
			}
		}
	}
	return false
}

// niceStep returns the smallest m × 10^k ≥ raw with m in {1, 2, 5}.
func niceStep(raw float64) (m int64, k int) {
	if raw <= 0 || math.IsInf(raw, 0) || math.IsNaN(raw) {
		return 1, 0
	}
	k = int(math.Floor(math.Log10(raw)))
	for {
		for _, m := range mantissas {
			if scale(m, k) >= raw*(1-tolerance) {
				return m, k
			}
		}
		k++
	}
}

// scale computes n × 10^k so that the result is the double nearest to the
// exact decimal. Dividing by 10^-k keeps 3 × 10^-1 at 0.3 rather than
// 0.30000000000000004.
func scale(n int64, k int) float64 {
	if k >= 0 {
		return float64(n) * math.Pow10(k)
	}
	return float64(n) / math.Pow10(-k)
}
