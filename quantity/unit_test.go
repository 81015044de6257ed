package quantity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Unit_Conversion(t *testing.T) {
	t.Parallel()

	second := NewUnit[Scalar]("Second", "s", 1)
	minute := NewUnit[Scalar]("Minute", "min", 60)

	assert.True(t, second.IsSI())
	assert.False(t, minute.IsSI())
	assert.InDelta(t, 120.0, minute.ToSI(2), 0)
	assert.Equal(t, NewScalar(2), minute.FromSI(120))
	assert.Equal(t, "min", minute.String())
	assert.Equal(t, "Minute", minute.Name())
	assert.InDelta(t, 60.0, minute.ScaleFactor(), 0)
}

func Test_UnitOf(t *testing.T) {
	t.Parallel()

	metre := NewUnit[Scalar]("Metre", "m", 1)
	inch := UnitOf("Inch", "in", NewScalar(metre.ToSI(0.0254)))

	assert.InDelta(t, 0.0254, inch.ScaleFactor(), 0)
	assert.InDelta(t, 1.0, inch.FromSI(0.0254).Magnitude(), 1e-15)
}

func Test_Unit_Derivations(t *testing.T) {
	t.Parallel()

	metre := NewUnit[Scalar]("Metre", "m", 1)
	byteUnit := NewUnit[Scalar]("Byte", "B", 1)

	tests := []struct {
		name string
		give Unit[Scalar]
		want float64
	}{
		{
			name: "metric prefix",
			give: metre.WithPrefix(Kilo, "Kilometre", "km"),
			want: 1000,
		},
		{
			name: "metric prefix below one",
			give: metre.WithPrefix(Milli, "Millimetre", "mm"),
			want: 0.001,
		},
		{
			name: "binary prefix",
			give: byteUnit.WithBinaryPrefix(Kibi, "Kibibyte", "KiB"),
			want: 1024,
		},
		{
			name: "scaled",
			give: metre.WithPrefix(Milli, "Millimetre", "mm").ScaledBy(25.4, "Inch", "in"),
			want: 0.0254,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tt.want, tt.give.ScaleFactor(), 1e-15)
			assert.InDelta(t, 0.0, tt.give.Bias(), 0)
		})
	}
}

func Test_Unit_Bias(t *testing.T) {
	t.Parallel()

	celsius := NewUnit[Scalar]("DegreeCelsius", "°C", 1).WithBias(273.15)
	fahrenheit := NewUnit[Scalar]("DegreeRankine", "°R", 5.0/9).
		ScaledBy(1, "DegreeFahrenheit", "°F").
		WithBias(459.67)

	assert.False(t, celsius.IsSI())
	assert.InDelta(t, 373.15, celsius.ToSI(100), 1e-9)
	assert.InDelta(t, 100.0, celsius.FromSI(373.15).Magnitude(), 1e-9)
	assert.InDelta(t, 273.15, fahrenheit.ToSI(32), 1e-9)
	assert.InDelta(t, 212.0, fahrenheit.FromSI(373.15).Magnitude(), 1e-9)

	// scaling keeps the zero point where it was
	milli := celsius.ScaledBy(0.001, "MilliDegreeCelsius", "m°C")
	assert.InDelta(t, 273.15, milli.ToSI(0), 1e-9)
	assert.InDelta(t, 274.15, milli.ToSI(1000), 1e-9)
}

func Test_Unit_ZeroFactor(t *testing.T) {
	t.Parallel()

	broken := NewUnit[Scalar]("Broken", "?", 0)

	require.InDelta(t, 0.0, broken.ToSI(5), 0)
	assert.True(t, math.IsInf(broken.FromSI(1).Magnitude(), 1))
}
