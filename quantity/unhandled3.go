package quantity

import "math"

// Unhandled3 is the vector counterpart of [Unhandled]: three magnitudes with no dimension.
type Unhandled3 struct {
	x, y, z float64
}

var _ Vector3Measure = Unhandled3{}

// NewUnhandled3 returns the Unhandled3 with the given components.
func NewUnhandled3(x, y, z float64) Unhandled3 {
	return Unhandled3{x: x, y: y, z: z}
}

// Unhandled3From reinterprets any vector quantity as an Unhandled3 with the same components.
func Unhandled3From(v Vector3Measure) Unhandled3 {
	x, y, z := v.Components()
	return Unhandled3{x: x, y: y, z: z}
}

// X returns the x component of u.
func (u Unhandled3) X() Unhandled { return Unhandled{u.x} }

// Y returns the y component of u.
func (u Unhandled3) Y() Unhandled { return Unhandled{u.y} }

// Z returns the z component of u.
func (u Unhandled3) Z() Unhandled { return Unhandled{u.z} }

// Components returns the components of u.
func (u Unhandled3) Components() (x, y, z float64) { return u.x, u.y, u.z }

// ToVector3 strips u to a plain vector.
func (u Unhandled3) ToVector3() Vector3 { return Vector3{u.x, u.y, u.z} }

// Magnitude returns the Euclidean norm of u.
func (u Unhandled3) Magnitude() Unhandled {
	return Unhandled{math.Sqrt(u.x*u.x + u.y*u.y + u.z*u.z)}
}

// IsNaN reports whether any component of u is NaN.
func (u Unhandled3) IsNaN() bool { return u.ToVector3().IsNaN() }

// IsZero reports whether every component of u is zero.
func (u Unhandled3) IsZero() bool { return u.ToVector3().IsZero() }

// Negate returns u with every component's sign flipped.
func (u Unhandled3) Negate() Unhandled3 { return Unhandled3{-u.x, -u.y, -u.z} }

// Add returns the component-wise sum of u and term.
func (u Unhandled3) Add(term Unhandled3) Unhandled3 {
	return Unhandled3{u.x + term.x, u.y + term.y, u.z + term.z}
}

// Subtract returns the component-wise difference of u and term.
func (u Unhandled3) Subtract(term Unhandled3) Unhandled3 {
	return Unhandled3{u.x - term.x, u.y - term.y, u.z - term.z}
}

// Multiply scales every component of u by factor.
func (u Unhandled3) Multiply(factor float64) Unhandled3 {
	return Unhandled3{u.x * factor, u.y * factor, u.z * factor}
}

// Divide scales every component of u by the reciprocal of divisor.
func (u Unhandled3) Divide(divisor float64) Unhandled3 {
	return Unhandled3{u.x / divisor, u.y / divisor, u.z / divisor}
}

// Dot returns the dot product of u and any vector quantity.
func (u Unhandled3) Dot(other Vector3Measure) Unhandled { return Dot(u, other) }

// Cross returns the cross product of u and any vector quantity.
func (u Unhandled3) Cross(other Vector3Measure) Unhandled3 { return Cross(u, other) }

// String renders u as "(x, y, z)".
func (u Unhandled3) String() string {
	return formatComponents(u.x, u.y, u.z)
}
