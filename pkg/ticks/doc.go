// Package ticks chooses "nice" axis tick values and formats their labels.
//
// # Algorithm
//
// [Generate] divides a data range into roughly target intervals and rounds
// the raw interval up to the next value of the form m × 10^k with m in
// {1, 2, 5}. The range is then snapped outward to multiples of that step:
//
//	step, vals := ticks.Generate(0, 2000, 5)
//	// step == 500, vals == [0 500 1000 1500 2000]
//
// Tick values are computed from integers (n·m scaled by a power of ten)
// rather than by repeated addition, so 0.1 + 0.2 style drift never shows up
// in labels.
//
// # Formatting
//
// [Format] renders a tick with exactly as many decimals as the step needs
// ([Decimals]): a 500 step prints "1500", a 0.25 step prints "0.75". Very
// large magnitudes switch to scientific notation.
//
// Everything in this package is pure and safe for concurrent use.
package ticks
