package quantity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_MetricPrefix(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1e3, Kilo.Factor(), 0)
	assert.InDelta(t, 1e-24, Yocto.Factor(), 0)
	assert.Equal(t, Milli, TenToThePower(-3))
	assert.Equal(t, Mega, ThousandToThePower(2))
	assert.Equal(t, Micro, ThousandToThePower(-2))
}

func Test_BinaryPrefix(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1024.0, Kibi.Factor(), 0)
	assert.Equal(t, Mebi, TwoToThePower(20))
	assert.Equal(t, Yobi, TwoToThePower(80))
}

func Test_NewPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    float64
		wantErr bool
	}{
		{name: "finite", give: 12},
		{name: "zero", give: 0},
		{name: "NaN", give: math.NaN(), wantErr: true},
		{name: "positive infinity", give: math.Inf(1), wantErr: true},
		{name: "negative infinity", give: math.Inf(-1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			metric, err := NewMetricPrefix(tt.give)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidArgument)
			} else {
				require.NoError(t, err)
				assert.InDelta(t, tt.give, metric.Factor(), 0)
			}

			binary, err := NewBinaryPrefix(tt.give)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidArgument)
			} else {
				require.NoError(t, err)
				assert.InDelta(t, tt.give, binary.Factor(), 0)
			}
		})
	}
}
