package quantity

import (
	"math"
	"strconv"
)

// Unhandled is the result of combining quantities whose product or quotient has no declared
// type. It carries a magnitude and no dimension, so every operation on it is magnitude-only.
type Unhandled struct {
	magnitude float64
}

var (
	_ Scalable[Unhandled]         = Unhandled{}
	_ Additive[Unhandled]         = Unhandled{}
	_ Ordered[Unhandled]          = Unhandled{}
	_ Invertible[Unhandled]       = Unhandled{}
	_ Squarable[Unhandled]        = Unhandled{}
	_ SquareRootable[Unhandled]   = Unhandled{}
	_ Vector3Liftable[Unhandled3] = Unhandled{}
	_ GenericallyMultiplicable    = Unhandled{}
)

// ZeroUnhandled is the zero-valued Unhandled.
var ZeroUnhandled = Unhandled{}

// NewUnhandled returns the Unhandled of the given magnitude.
func NewUnhandled(magnitude float64) Unhandled {
	return Unhandled{magnitude: magnitude}
}

// UnhandledFrom reinterprets any quantity as an Unhandled of the same magnitude.
func UnhandledFrom(m Measure) Unhandled {
	return Unhandled{magnitude: m.Magnitude()}
}

func (u Unhandled) Magnitude() float64 { return u.magnitude }
func (u Unhandled) ToFloat64() float64 { return u.magnitude }
func (u Unhandled) ToScalar() Scalar   { return Scalar{u.magnitude} }

func (u Unhandled) IsNaN() bool              { return IsNaN(u) }
func (u Unhandled) IsZero() bool             { return IsZero(u) }
func (u Unhandled) IsPositive() bool         { return IsPositive(u) }
func (u Unhandled) IsNegative() bool         { return IsNegative(u) }
func (u Unhandled) IsFinite() bool           { return IsFinite(u) }
func (u Unhandled) IsInfinite() bool         { return IsInfinite(u) }
func (u Unhandled) IsPositiveInfinity() bool { return IsPositiveInfinity(u) }
func (u Unhandled) IsNegativeInfinity() bool { return IsNegativeInfinity(u) }

func (u Unhandled) Abs() Unhandled   { return Unhandled{math.Abs(u.magnitude)} }
func (u Unhandled) Floor() Unhandled { return Unhandled{math.Floor(u.magnitude)} }
func (u Unhandled) Ceil() Unhandled  { return Unhandled{math.Ceil(u.magnitude)} }
func (u Unhandled) Round() Unhandled { return Unhandled{Round(u.magnitude)} }

func (u Unhandled) Plus() Unhandled   { return u }
func (u Unhandled) Negate() Unhandled { return Unhandled{-u.magnitude} }

func (u Unhandled) Add(term Unhandled) Unhandled      { return Unhandled{u.magnitude + term.magnitude} }
func (u Unhandled) Subtract(term Unhandled) Unhandled { return Unhandled{u.magnitude - term.magnitude} }

func (u Unhandled) Multiply(factor float64) Unhandled   { return Unhandled{u.magnitude * factor} }
func (u Unhandled) Divide(divisor float64) Unhandled    { return Unhandled{u.magnitude / divisor} }
func (u Unhandled) Remainder(divisor float64) Unhandled { return Unhandled{math.Mod(u.magnitude, divisor)} }

func (u Unhandled) MultiplyScalar(factor Scalar) Unhandled   { return u.Multiply(factor.magnitude) }
func (u Unhandled) DivideScalar(divisor Scalar) Unhandled    { return u.Divide(divisor.magnitude) }
func (u Unhandled) RemainderScalar(divisor Scalar) Unhandled { return u.Remainder(divisor.magnitude) }

func (u Unhandled) MultiplyUnhandled(factor Unhandled) Unhandled {
	return Unhandled{u.magnitude * factor.magnitude}
}

func (u Unhandled) DivideUnhandled(divisor Unhandled) Unhandled {
	return Unhandled{u.magnitude / divisor.magnitude}
}

func (u Unhandled) MultiplyQuantity(factor Measure) (Unhandled, error) { return Product(u, factor) }
func (u Unhandled) DivideQuantity(divisor Measure) (Unhandled, error)  { return Quotient(u, divisor) }

// MultiplyVector3 scales each component of factor by u.
func (u Unhandled) MultiplyVector3(factor Vector3) Unhandled3 {
	return NewUnhandled3(factor.X*u.magnitude, factor.Y*u.magnitude, factor.Z*u.magnitude)
}

func (u Unhandled) Invert() Unhandled     { return Unhandled{1 / u.magnitude} }
func (u Unhandled) Square() Unhandled     { return Unhandled{u.magnitude * u.magnitude} }
func (u Unhandled) SquareRoot() Unhandled { return Unhandled{math.Sqrt(u.magnitude)} }

// Power raises u to exponent.
func (u Unhandled) Power(exponent float64) Unhandled {
	return Unhandled{math.Pow(u.magnitude, exponent)}
}

func (u Unhandled) Compare(other Unhandled) int         { return CompareMagnitudes(u, other) }
func (u Unhandled) Less(other Unhandled) bool           { return u.magnitude < other.magnitude }
func (u Unhandled) Greater(other Unhandled) bool        { return u.magnitude > other.magnitude }
func (u Unhandled) LessOrEqual(other Unhandled) bool    { return u.magnitude <= other.magnitude }
func (u Unhandled) GreaterOrEqual(other Unhandled) bool { return u.magnitude >= other.magnitude }

// String returns the shortest representation of the magnitude of u.
func (u Unhandled) String() string {
	return strconv.FormatFloat(u.magnitude, 'g', -1, 64)
}
