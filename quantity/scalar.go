package quantity

import (
	"math"
	"strconv"
)

// Scalar is a dimensionless magnitude. It is the factor type for scaling quantities, the
// result of dividing a quantity by another of the same type and the result of expressing a
// quantity in a named unit.
type Scalar struct {
	magnitude float64
}

var (
	_ Scalable[Scalar]         = Scalar{}
	_ Additive[Scalar]         = Scalar{}
	_ Ordered[Scalar]          = Scalar{}
	_ Invertible[Scalar]       = Scalar{}
	_ Squarable[Scalar]        = Scalar{}
	_ SquareRootable[Scalar]   = Scalar{}
	_ Cubable[Scalar]          = Scalar{}
	_ CubeRootable[Scalar]     = Scalar{}
	_ Vector3Liftable[Vector3] = Scalar{}
	_ GenericallyMultiplicable = Scalar{}
)

// ZeroScalar is the zero-valued Scalar.
var ZeroScalar = Scalar{}

// OneScalar is the Scalar of magnitude 1.
var OneScalar = Scalar{magnitude: 1}

// NewScalar returns the Scalar of the given magnitude.
func NewScalar(magnitude float64) Scalar {
	return Scalar{magnitude: magnitude}
}

// Magnitude returns the value of s.
func (s Scalar) Magnitude() float64 { return s.magnitude }

// ToFloat64 returns the value of s.
func (s Scalar) ToFloat64() float64 { return s.magnitude }

func (s Scalar) IsNaN() bool              { return IsNaN(s) }
func (s Scalar) IsZero() bool             { return IsZero(s) }
func (s Scalar) IsPositive() bool         { return IsPositive(s) }
func (s Scalar) IsNegative() bool         { return IsNegative(s) }
func (s Scalar) IsFinite() bool           { return IsFinite(s) }
func (s Scalar) IsInfinite() bool         { return IsInfinite(s) }
func (s Scalar) IsPositiveInfinity() bool { return IsPositiveInfinity(s) }
func (s Scalar) IsNegativeInfinity() bool { return IsNegativeInfinity(s) }

func (s Scalar) Abs() Scalar   { return Scalar{math.Abs(s.magnitude)} }
func (s Scalar) Floor() Scalar { return Scalar{math.Floor(s.magnitude)} }
func (s Scalar) Ceil() Scalar  { return Scalar{math.Ceil(s.magnitude)} }

// Round rounds s to the nearest integer, rounding half to even.
func (s Scalar) Round() Scalar { return Scalar{Round(s.magnitude)} }

func (s Scalar) Plus() Scalar   { return s }
func (s Scalar) Negate() Scalar { return Scalar{-s.magnitude} }

func (s Scalar) Add(term Scalar) Scalar      { return Scalar{s.magnitude + term.magnitude} }
func (s Scalar) Subtract(term Scalar) Scalar { return Scalar{s.magnitude - term.magnitude} }

func (s Scalar) Multiply(factor float64) Scalar   { return Scalar{s.magnitude * factor} }
func (s Scalar) Divide(divisor float64) Scalar    { return Scalar{s.magnitude / divisor} }
func (s Scalar) Remainder(divisor float64) Scalar { return Scalar{math.Mod(s.magnitude, divisor)} }

func (s Scalar) MultiplyScalar(factor Scalar) Scalar   { return s.Multiply(factor.magnitude) }
func (s Scalar) DivideScalar(divisor Scalar) Scalar    { return s.Divide(divisor.magnitude) }
func (s Scalar) RemainderScalar(divisor Scalar) Scalar { return s.Remainder(divisor.magnitude) }

// MultiplyUnhandled returns the product of s and factor.
func (s Scalar) MultiplyUnhandled(factor Unhandled) Unhandled {
	return NewUnhandled(s.magnitude * factor.magnitude)
}

// DivideUnhandled returns the quotient of s and divisor.
func (s Scalar) DivideUnhandled(divisor Unhandled) Unhandled {
	return NewUnhandled(s.magnitude / divisor.magnitude)
}

// MultiplyQuantity returns the product of s and an arbitrary quantity.
func (s Scalar) MultiplyQuantity(factor Measure) (Unhandled, error) { return Product(s, factor) }

// DivideQuantity returns the quotient of s and an arbitrary quantity.
func (s Scalar) DivideQuantity(divisor Measure) (Unhandled, error) { return Quotient(s, divisor) }

// MultiplyVector3 scales each component of factor by s.
func (s Scalar) MultiplyVector3(factor Vector3) Vector3 { return factor.Multiply(s.magnitude) }

func (s Scalar) Invert() Scalar     { return Scalar{1 / s.magnitude} }
func (s Scalar) Square() Scalar     { return Scalar{s.magnitude * s.magnitude} }
func (s Scalar) Cube() Scalar       { return Scalar{s.magnitude * s.magnitude * s.magnitude} }
func (s Scalar) SquareRoot() Scalar { return Scalar{math.Sqrt(s.magnitude)} }
func (s Scalar) CubeRoot() Scalar   { return Scalar{math.Cbrt(s.magnitude)} }

// Power raises s to exponent.
func (s Scalar) Power(exponent float64) Scalar { return Scalar{math.Pow(s.magnitude, exponent)} }

// Compare orders s and other by magnitude, see [CompareMagnitudes].
func (s Scalar) Compare(other Scalar) int { return CompareMagnitudes(s, other) }

func (s Scalar) Less(other Scalar) bool           { return s.magnitude < other.magnitude }
func (s Scalar) Greater(other Scalar) bool        { return s.magnitude > other.magnitude }
func (s Scalar) LessOrEqual(other Scalar) bool    { return s.magnitude <= other.magnitude }
func (s Scalar) GreaterOrEqual(other Scalar) bool { return s.magnitude >= other.magnitude }

// String returns the shortest representation of the magnitude of s.
//
// Implements the fmt.Stringer interface.
func (s Scalar) String() string {
	return strconv.FormatFloat(s.magnitude, 'g', -1, 64)
}
