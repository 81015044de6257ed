package quantity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_MagnitudePredicates(t *testing.T) {
	t.Parallel()

	type predicates struct {
		nan, zero, positive, negative, finite, infinite, posInf, negInf bool
	}

	tests := []struct {
		name string
		give float64
		want predicates
	}{
		{
			name: "positive",
			give: 2.5,
			want: predicates{positive: true, finite: true},
		},
		{
			name: "negative",
			give: -2.5,
			want: predicates{negative: true, finite: true},
		},
		{
			name: "zero",
			give: 0,
			want: predicates{zero: true, finite: true},
		},
		{
			name: "negative zero",
			give: math.Copysign(0, -1),
			want: predicates{zero: true, negative: true, finite: true},
		},
		{
			name: "NaN",
			give: math.NaN(),
			want: predicates{nan: true},
		},
		{
			name: "positive infinity",
			give: math.Inf(1),
			want: predicates{positive: true, infinite: true, posInf: true},
		},
		{
			name: "negative infinity",
			give: math.Inf(-1),
			want: predicates{negative: true, infinite: true, negInf: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := NewScalar(tt.give)
			got := predicates{
				nan:      IsNaN(m),
				zero:     IsZero(m),
				positive: IsPositive(m),
				negative: IsNegative(m),
				finite:   IsFinite(m),
				infinite: IsInfinite(m),
				posInf:   IsPositiveInfinity(m),
				negInf:   IsNegativeInfinity(m),
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_CompareMagnitudes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b float64
		want int
	}{
		{name: "less", a: 1, b: 2, want: -1},
		{name: "equal", a: 2, b: 2, want: 0},
		{name: "greater", a: 3, b: 2, want: 1},
		{name: "NaN orders first", a: math.NaN(), b: math.Inf(-1), want: -1},
		{name: "NaN equals NaN", a: math.NaN(), b: math.NaN(), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, CompareMagnitudes(NewScalar(tt.a), NewScalar(tt.b)))
		})
	}
}

func Test_Round(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give float64
		want float64
	}{
		{give: 2.5, want: 2},
		{give: 3.5, want: 4},
		{give: -2.5, want: -2},
		{give: 2.4, want: 2},
		{give: 2.6, want: 3},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, Round(tt.give), 0, "Round(%v)", tt.give)
	}
}
