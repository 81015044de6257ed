package quantity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Sum(t *testing.T) {
	t.Parallel()

	assert.Equal(t, NewScalar(6), Sum(NewScalar(1), NewScalar(2), NewScalar(3)))
	assert.Equal(t, ZeroScalar, Sum[Scalar]())
}

func Test_Average(t *testing.T) {
	t.Parallel()

	assert.Equal(t, NewScalar(2), Average(NewScalar(1), NewScalar(2), NewScalar(3)))
	assert.True(t, Average[Scalar]().IsNaN())
}

func Test_MinMax(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    []float64
		wantMin float64
		wantMax float64
	}{
		{
			name:    "single",
			give:    []float64{4},
			wantMin: 4,
			wantMax: 4,
		},
		{
			name:    "several",
			give:    []float64{3, -1, 7, 2},
			wantMin: -1,
			wantMax: 7,
		},
		{
			name:    "infinities",
			give:    []float64{math.Inf(1), 0, math.Inf(-1)},
			wantMin: math.Inf(-1),
			wantMax: math.Inf(1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			scalars := make([]Scalar, len(tt.give))
			for i, v := range tt.give {
				scalars[i] = NewScalar(v)
			}

			assert.Equal(t, NewScalar(tt.wantMin), Min(scalars[0], scalars[1:]...))
			assert.Equal(t, NewScalar(tt.wantMax), Max(scalars[0], scalars[1:]...))
		})
	}
}

func Test_MinMax_NaN(t *testing.T) {
	t.Parallel()

	nan := NewScalar(math.NaN())

	assert.True(t, Min(NewScalar(1), nan, NewScalar(-1)).IsNaN())
	assert.True(t, Max(NewScalar(1), nan, NewScalar(5)).IsNaN())
	assert.True(t, Max(nan, NewScalar(5)).IsNaN())
}
