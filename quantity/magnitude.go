package quantity

import (
	"cmp"
	"math"
)

// The helpers below implement the magnitude rules once for Scalar, Unhandled and the
// generated quantities.

// IsNaN reports whether the magnitude of m is NaN.
func IsNaN(m Measure) bool { return math.IsNaN(m.Magnitude()) }

// IsZero reports whether the magnitude of m is zero (either sign).
func IsZero(m Measure) bool { return m.Magnitude() == 0 }

// IsPositive reports whether the magnitude of m is strictly positive.
func IsPositive(m Measure) bool { return m.Magnitude() > 0 }

// IsNegative reports whether the sign bit of the magnitude of m is set, which includes
// negative zero and negative NaN.
func IsNegative(m Measure) bool { return math.Signbit(m.Magnitude()) }

// IsFinite reports whether the magnitude of m is neither infinite nor NaN.
func IsFinite(m Measure) bool {
	v := m.Magnitude()
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// IsInfinite reports whether the magnitude of m is an infinity of either sign.
func IsInfinite(m Measure) bool { return math.IsInf(m.Magnitude(), 0) }

// IsPositiveInfinity reports whether the magnitude of m is +Inf.
func IsPositiveInfinity(m Measure) bool { return math.IsInf(m.Magnitude(), 1) }

// IsNegativeInfinity reports whether the magnitude of m is -Inf.
func IsNegativeInfinity(m Measure) bool { return math.IsInf(m.Magnitude(), -1) }

// CompareMagnitudes orders a and b by magnitude. NaN is ordered before every other value
// and equal to itself.
func CompareMagnitudes(a, b Measure) int {
	return cmp.Compare(a.Magnitude(), b.Magnitude())
}

// Round rounds x to the nearest integer, rounding half to even.
func Round(x float64) float64 { return math.RoundToEven(x) }
