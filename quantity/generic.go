package quantity

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a required argument of the generic arithmetic is nil.
var ErrInvalidArgument = errors.New("invalid argument")

// Multiply returns factory(q.Magnitude() * factor.Magnitude()). It lets callers multiply
// quantities whose product has no declared type while still naming the result type.
func Multiply[R any](q, factor Measure, factory func(magnitude float64) R) (R, error) {
	var zero R
	if err := checkOperands(q, factor, factory); err != nil {
		return zero, fmt.Errorf("multiply: %w", err)
	}

	return factory(q.Magnitude() * factor.Magnitude()), nil
}

// Divide returns factory(q.Magnitude() / divisor.Magnitude()).
func Divide[R any](q, divisor Measure, factory func(magnitude float64) R) (R, error) {
	var zero R
	if err := checkOperands(q, divisor, factory); err != nil {
		return zero, fmt.Errorf("divide: %w", err)
	}

	return factory(q.Magnitude() / divisor.Magnitude()), nil
}

func checkOperands[R any](q, other Measure, factory func(float64) R) error {
	switch {
	case factory == nil:
		return fmt.Errorf("nil result factory: %w", ErrInvalidArgument)
	case q == nil:
		return fmt.Errorf("nil quantity: %w", ErrInvalidArgument)
	case other == nil:
		return fmt.Errorf("nil operand: %w", ErrInvalidArgument)
	}

	return nil
}

// Product returns the magnitude-only product of a and b. It fails with [ErrInvalidArgument]
// if either is nil.
func Product(a, b Measure) (Unhandled, error) {
	return Multiply(a, b, NewUnhandled)
}

// Quotient returns the magnitude-only quotient of a and b. It fails with [ErrInvalidArgument]
// if either is nil.
func Quotient(a, b Measure) (Unhandled, error) {
	return Divide(a, b, NewUnhandled)
}

// Dot returns the magnitude-only dot product of two vector quantities.
func Dot(a, b Vector3Measure) Unhandled {
	ax, ay, az := a.Components()
	bx, by, bz := b.Components()

	return Unhandled{ax*bx + ay*by + az*bz}
}

// Cross returns the magnitude-only cross product a × b of two vector quantities.
func Cross(a, b Vector3Measure) Unhandled3 {
	ax, ay, az := a.Components()
	bx, by, bz := b.Components()
	c := Vector3{ax, ay, az}.Cross(Vector3{bx, by, bz})

	return Unhandled3{c.X, c.Y, c.Z}
}
