package quantity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Vector3(t *testing.T) {
	t.Parallel()

	v := NewVector3(3, 4, 12)

	assert.InDelta(t, 13.0, v.Magnitude(), 0)
	assert.InDelta(t, 169.0, v.SquaredMagnitude(), 0)
	assert.InDelta(t, 1.0, v.Normalize().Magnitude(), 1e-15)
	assert.Equal(t, NewVector3(-3, -4, -12), v.Negate())
	assert.Equal(t, NewVector3(4, 6, 15), v.Add(NewVector3(1, 2, 3)))
	assert.Equal(t, NewVector3(2, 2, 9), v.Subtract(NewVector3(1, 2, 3)))
	assert.Equal(t, NewVector3(6, 8, 24), v.MultiplyScalar(NewScalar(2)))
	assert.Equal(t, NewVector3(1.5, 2, 6), v.DivideScalar(NewScalar(2)))
	assert.Equal(t, NewVector3(1, 0, 0), v.RemainderScalar(NewScalar(2)))
	assert.Equal(t, v, Vector3FromScalars(NewScalar(3), NewScalar(4), NewScalar(12)))
	assert.Equal(t, "(3, 4, 12)", v.String())
}

func Test_Vector3_Predicates(t *testing.T) {
	t.Parallel()

	assert.True(t, ZeroVector3.IsZero())
	assert.True(t, ZeroVector3.Normalize().IsNaN())
	assert.True(t, NewVector3(1, math.Inf(1), 0).IsInfinite())
	assert.False(t, NewVector3(1, math.Inf(1), 0).IsFinite())
	assert.True(t, NewVector3(1, 2, 3).IsFinite())
}

func Test_Unhandled3(t *testing.T) {
	t.Parallel()

	u := Unhandled3From(NewVector3(2, 3, 6))

	assert.Equal(t, NewUnhandled(7), u.Magnitude())
	assert.Equal(t, NewUnhandled(3), u.Y())
	assert.Equal(t, NewUnhandled3(4, 6, 12), u.Multiply(2))
	assert.Equal(t, NewUnhandled3(1, 1.5, 3), u.Divide(2))
	assert.Equal(t, NewUnhandled3(0, 0, 0), u.Subtract(u))
	assert.Equal(t, NewUnhandled3(-2, -3, -6), u.Negate())
	assert.Equal(t, NewVector3(2, 3, 6), u.ToVector3())
	assert.Equal(t, "(2, 3, 6)", u.String())
}

func Test_Format(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "5 [N]", Format(NewScalar(5), "N"))
	assert.Equal(t, "3.2 [m²]", Format(NewScalar(3.2), "m²"))
	assert.Equal(t, "+Inf [s]", Format(NewScalar(math.Inf(1)), "s"))
	assert.Equal(t, "(1, 2, 3) [N]", FormatVector(NewVector3(1, 2, 3), "N"))
}
