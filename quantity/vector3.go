package quantity

import "math"

// Vector3 is a dimensionless three-component vector. Scalar quantities lift it into their
// vector counterpart with MultiplyVector3.
type Vector3 struct {
	X, Y, Z float64
}

var _ Vector3Measure = Vector3{}

// ZeroVector3 is the vector with all components zero.
var ZeroVector3 = Vector3{}

// NewVector3 returns the vector (x, y, z).
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Vector3FromScalars returns the vector of the magnitudes of x, y and z.
func Vector3FromScalars(x, y, z Scalar) Vector3 {
	return Vector3{X: x.magnitude, Y: y.magnitude, Z: z.magnitude}
}

// Components returns the components of v.
func (v Vector3) Components() (x, y, z float64) { return v.X, v.Y, v.Z }

// IsNaN reports whether any component is NaN.
func (v Vector3) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

// IsZero reports whether every component is zero.
func (v Vector3) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }

// IsFinite reports whether every component is finite.
func (v Vector3) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

// IsInfinite reports whether any component is infinite.
func (v Vector3) IsInfinite() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) || math.IsInf(v.Z, 0)
}

// Magnitude returns the Euclidean norm of v.
func (v Vector3) Magnitude() float64 { return math.Sqrt(v.SquaredMagnitude()) }

// SquaredMagnitude returns the dot product of v with itself.
func (v Vector3) SquaredMagnitude() float64 { return v.Dot(v) }

// Normalize returns v scaled to unit length. The zero vector normalizes to NaN components.
func (v Vector3) Normalize() Vector3 { return v.Divide(v.Magnitude()) }

// Plus returns v.
func (v Vector3) Plus() Vector3 { return v }

// Negate returns v with every component's sign flipped.
func (v Vector3) Negate() Vector3 { return Vector3{-v.X, -v.Y, -v.Z} }

// Add returns the component-wise sum of v and term.
func (v Vector3) Add(term Vector3) Vector3 {
	return Vector3{v.X + term.X, v.Y + term.Y, v.Z + term.Z}
}

// Subtract returns the component-wise difference of v and term.
func (v Vector3) Subtract(term Vector3) Vector3 {
	return Vector3{v.X - term.X, v.Y - term.Y, v.Z - term.Z}
}

// Multiply scales every component of v by factor.
func (v Vector3) Multiply(factor float64) Vector3 {
	return Vector3{v.X * factor, v.Y * factor, v.Z * factor}
}

// Divide scales every component of v by the reciprocal of divisor.
func (v Vector3) Divide(divisor float64) Vector3 {
	return Vector3{v.X / divisor, v.Y / divisor, v.Z / divisor}
}

// Remainder returns the component-wise remainder of v divided by divisor.
func (v Vector3) Remainder(divisor float64) Vector3 {
	return Vector3{math.Mod(v.X, divisor), math.Mod(v.Y, divisor), math.Mod(v.Z, divisor)}
}

// MultiplyScalar scales every component of v by factor.
func (v Vector3) MultiplyScalar(factor Scalar) Vector3 { return v.Multiply(factor.magnitude) }

// DivideScalar scales every component of v by the reciprocal of divisor.
func (v Vector3) DivideScalar(divisor Scalar) Vector3 { return v.Divide(divisor.magnitude) }

// RemainderScalar returns the component-wise remainder of v divided by divisor.
func (v Vector3) RemainderScalar(divisor Scalar) Vector3 { return v.Remainder(divisor.magnitude) }

// Dot returns the dot product of v and other.
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product v × other.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// String renders v as "(x, y, z)".
func (v Vector3) String() string {
	return formatComponents(v.X, v.Y, v.Z)
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
