package quantity

// Measure is implemented by every scalar quantity. Magnitude returns the value expressed in
// the SI unit of the quantity.
type Measure interface {
	Magnitude() float64
}

// Vector3Measure is implemented by every three-dimensional vector quantity. Components
// returns the SI-scaled components.
type Vector3Measure interface {
	Components() (x, y, z float64)
}

// Scalable is implemented by quantities that can be scaled by a dimensionless factor,
// producing a quantity of the same type.
type Scalable[Q any] interface {
	Measure
	Multiply(factor float64) Q
	Divide(divisor float64) Q
}

// Additive is implemented by quantities that expose an additive group structure.
type Additive[Q any] interface {
	Add(term Q) Q
	Subtract(term Q) Q
}

// Ordered is implemented by quantities with a total order by magnitude.
type Ordered[Q any] interface {
	Compare(other Q) int
}

// Invertible is implemented by quantities whose reciprocal is the quantity R.
type Invertible[R any] interface {
	Invert() R
}

// Squarable is implemented by quantities whose square is the quantity R.
type Squarable[R any] interface {
	Square() R
}

// SquareRootable is implemented by quantities whose square root is the quantity R.
type SquareRootable[R any] interface {
	SquareRoot() R
}

// Cubable is implemented by quantities whose cube is the quantity R.
type Cubable[R any] interface {
	Cube() R
}

// CubeRootable is implemented by quantities whose cube root is the quantity R.
type CubeRootable[R any] interface {
	CubeRoot() R
}

// Vector3Liftable is implemented by scalar quantities that scale a [Vector3] into the
// vector quantity R.
type Vector3Liftable[R any] interface {
	MultiplyVector3(factor Vector3) R
}

// GenericallyMultiplicable is implemented by quantities that can be multiplied or divided by
// a quantity whose type is not known statically, producing an [Unhandled].
type GenericallyMultiplicable interface {
	Measure
	MultiplyQuantity(factor Measure) (Unhandled, error)
	DivideQuantity(divisor Measure) (Unhandled, error)
}
