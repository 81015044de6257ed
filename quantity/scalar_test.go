package quantity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Scalar_Arithmetic(t *testing.T) {
	t.Parallel()

	a := NewScalar(7)
	b := NewScalar(2)

	assert.Equal(t, NewScalar(9), a.Add(b))
	assert.Equal(t, NewScalar(5), a.Subtract(b))
	assert.Equal(t, NewScalar(14), a.MultiplyScalar(b))
	assert.Equal(t, NewScalar(3.5), a.DivideScalar(b))
	assert.Equal(t, NewScalar(1), a.RemainderScalar(b))
	assert.Equal(t, NewScalar(-1), NewScalar(-7).Remainder(3))
	assert.Equal(t, NewScalar(-7), a.Negate())
	assert.Equal(t, a, a.Plus())
	assert.Equal(t, NewScalar(14), a.MultiplyUnhandled(NewUnhandled(2)).ToScalar())

	product, err := a.MultiplyQuantity(NewUnhandled(2))
	require.NoError(t, err)
	assert.Equal(t, NewUnhandled(14), product)

	quotient, err := a.DivideQuantity(b)
	require.NoError(t, err)
	assert.Equal(t, NewUnhandled(3.5), quotient)
}

func Test_Scalar_Powers(t *testing.T) {
	t.Parallel()

	s := NewScalar(4)

	assert.Equal(t, NewScalar(0.25), s.Invert())
	assert.Equal(t, NewScalar(16), s.Square())
	assert.Equal(t, NewScalar(64), s.Cube())
	assert.Equal(t, NewScalar(2), s.SquareRoot())
	assert.InDelta(t, 4, s.Cube().CubeRoot().Magnitude(), 1e-12)
	assert.InDelta(t, 8.0, s.Power(1.5).Magnitude(), 1e-12)
	assert.True(t, NewScalar(-1).SquareRoot().IsNaN())
	assert.True(t, ZeroScalar.Invert().IsPositiveInfinity())
}

func Test_Scalar_Rounding(t *testing.T) {
	t.Parallel()

	assert.Equal(t, NewScalar(2), NewScalar(2.5).Round())
	assert.Equal(t, NewScalar(2), NewScalar(2.7).Floor())
	assert.Equal(t, NewScalar(3), NewScalar(2.1).Ceil())
	assert.Equal(t, NewScalar(2.1), NewScalar(-2.1).Abs())
}

func Test_Scalar_Ordering(t *testing.T) {
	t.Parallel()

	small, large := NewScalar(1), NewScalar(2)

	assert.True(t, small.Less(large))
	assert.True(t, large.Greater(small))
	assert.True(t, small.LessOrEqual(small))
	assert.True(t, large.GreaterOrEqual(small))
	assert.Equal(t, -1, small.Compare(large))
	assert.Equal(t, 0, small.Compare(small))
	assert.Equal(t, 1, large.Compare(small))

	nan := NewScalar(math.NaN())
	assert.False(t, nan.Less(small))
	assert.False(t, nan.Greater(small))
	assert.Equal(t, -1, nan.Compare(small))
}

func Test_Scalar_MultiplyVector3(t *testing.T) {
	t.Parallel()

	got := NewScalar(2).MultiplyVector3(NewVector3(1, 2, 3))

	assert.Equal(t, NewVector3(2, 4, 6), got)
}

func Test_Scalar_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0.1", NewScalar(0.1).String())
	assert.Equal(t, "-3", NewScalar(-3).String())
	assert.Equal(t, "NaN", NewScalar(math.NaN()).String())
}

func Test_Unhandled(t *testing.T) {
	t.Parallel()

	u := NewUnhandled(6)

	assert.Equal(t, NewUnhandled(8), u.Add(NewUnhandled(2)))
	assert.Equal(t, NewUnhandled(4), u.Subtract(NewUnhandled(2)))
	assert.Equal(t, NewUnhandled(12), u.MultiplyScalar(NewScalar(2)))
	assert.Equal(t, NewUnhandled(3), u.DivideUnhandled(NewUnhandled(2)))
	assert.Equal(t, NewUnhandled(36), u.Square())
	assert.Equal(t, NewUnhandled(6), u.Square().SquareRoot())
	assert.Equal(t, NewUnhandled(0.5), NewUnhandled(2).Invert())
	assert.Equal(t, NewUnhandled3(6, 12, 18), u.MultiplyVector3(NewVector3(1, 2, 3)))
	assert.Equal(t, u, UnhandledFrom(NewScalar(6)))
	assert.Equal(t, "6", u.String())
}
