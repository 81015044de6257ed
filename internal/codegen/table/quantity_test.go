package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	second = Unit{Name: "Second", Symbol: "s", Factor: 1}
	minute = Unit{Name: "Minute", Symbol: "min", Factor: 60}
)

func Test_Quantity_ScaleFactor(t *testing.T) {
	t.Parallel()

	length := Quantity{
		Name: "Length",
		Units: []Unit{
			{Name: "Metre", Symbol: "m", Factor: 1},
			{Name: "Kilometre", Symbol: "km", Prefix: "Kilo", Base: "Metre"},
		},
	}

	tests := []struct {
		name    string
		give    Unit
		want    float64
		wantErr string
	}{
		{
			name: "factor",
			give: Unit{Name: "Inch", Factor: 0.0254},
			want: 0.0254,
		},
		{
			name: "fraction",
			give: Unit{Name: "KilometrePerHour", Factor: 1000, Divisor: 3600},
			want: 1000.0 / 3600.0,
		},
		{
			name: "prefix",
			give: Unit{Name: "Millimetre", Prefix: "Milli", Base: "Metre"},
			want: 0.001,
		},
		{
			name:    "unknown prefix",
			give:    Unit{Name: "Foometre", Prefix: "Foo", Base: "Metre"},
			wantErr: `unknown metric prefix "Foo"`,
		},
		{
			name:    "missing base",
			give:    Unit{Name: "Kiloinch", Prefix: "Kilo", Base: "Inch"},
			wantErr: `base unit "Inch" not found`,
		},
		{
			name:    "prefixed base",
			give:    Unit{Name: "Megakilometre", Prefix: "Mega", Base: "Kilometre"},
			wantErr: `base unit "Kilometre" must not be prefixed`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := length.ScaleFactor(tt.give)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-15)
		})
	}
}

func Test_Quantity_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    Quantity
		wantErr string
	}{
		{
			name: "valid",
			give: Quantity{Name: "Time", Units: []Unit{second, minute}},
		},
		{
			name: "valid unit_of",
			give: Quantity{Name: "Duration", UnitOf: "Time"},
		},
		{
			name:    "missing name",
			give:    Quantity{Units: []Unit{second}},
			wantErr: "name is required",
		},
		{
			name:    "unexported name",
			give:    Quantity{Name: "time", Units: []Unit{second}},
			wantErr: `name "time" must be exported`,
		},
		{
			name:    "invalid identifier",
			give:    Quantity{Name: "Time Squared", Units: []Unit{second}},
			wantErr: `name "Time Squared" is not a valid Go identifier`,
		},
		{
			name:    "no units",
			give:    Quantity{Name: "Time"},
			wantErr: "at least one unit is required",
		},
		{
			name:    "units with unit_of",
			give:    Quantity{Name: "Duration", UnitOf: "Time", Units: []Unit{second}},
			wantErr: "units must not be declared when unit_of is set to Time",
		},
		{
			name:    "no SI unit",
			give:    Quantity{Name: "Time", Units: []Unit{minute}},
			wantErr: "exactly one SI unit (factor 1, no bias) is required, found 0",
		},
		{
			name: "two SI units",
			give: Quantity{Name: "Time", Units: []Unit{
				second,
				{Name: "OtherSecond", Symbol: "s", Factor: 1},
			}},
			wantErr: "exactly one SI unit (factor 1, no bias) is required, found 2",
		},
		{
			name:    "biased unit is not SI",
			give:    Quantity{Name: "Temperature", Units: []Unit{{Name: "DegreeCelsius", Symbol: "°C", Factor: 1, Bias: 273.15}}},
			wantErr: "exactly one SI unit (factor 1, no bias) is required, found 0",
		},
		{
			name:    "zero factor",
			give:    Quantity{Name: "Time", Units: []Unit{second, {Name: "Minute", Symbol: "min"}}},
			wantErr: "unit Minute: factor must be non-zero",
		},
		{
			name:    "duplicate unit",
			give:    Quantity{Name: "Time", Units: []Unit{second, minute, minute}},
			wantErr: "unit Minute: declared more than once",
		},
		{
			name: "colliding plurals",
			give: Quantity{Name: "Frequency", Units: []Unit{
				{Name: "Hertz", Plural: "Hertz", Symbol: "Hz", Factor: 1},
				{Name: "Cycle", Plural: "Hertz", Symbol: "c", Factor: 2},
			}},
			wantErr: "unit Cycle: plural Hertz is used by another unit",
		},
		{
			name:    "plural shadows a method",
			give:    Quantity{Name: "Time", Units: []Unit{second, {Name: "Magnitude", Plural: "Magnitude", Symbol: "M", Factor: 2}}},
			wantErr: "unit Magnitude: plural Magnitude collides with a generated method",
		},
		{
			name:    "missing symbol",
			give:    Quantity{Name: "Time", Units: []Unit{second, {Name: "Minute", Factor: 60}}},
			wantErr: "unit Minute: symbol is required",
		},
		{
			name:    "prefix without base",
			give:    Quantity{Name: "Time", Units: []Unit{second, {Name: "Millisecond", Symbol: "ms", Prefix: "Milli"}}},
			wantErr: "unit Millisecond: prefix and base must be set together",
		},
		{
			name: "prefix with factor",
			give: Quantity{Name: "Time", Units: []Unit{
				second,
				{Name: "Millisecond", Symbol: "ms", Prefix: "Milli", Base: "Second", Factor: 2},
			}},
			wantErr: "unit Millisecond: factor must not be set on a prefixed unit",
		},
		{
			name:    "divisor without factor",
			give:    Quantity{Name: "Time", Units: []Unit{second, {Name: "Third", Symbol: "t", Divisor: 3}}},
			wantErr: "unit Third: divisor requires a factor",
		},
		{
			name: "unknown derivation op",
			give: Quantity{
				Name:        "Time",
				Units:       []Unit{second},
				Derivations: []Derivation{{Name: "TimeFromPair", Op: "add", Operands: []string{"Time", "Time"}}},
			},
			wantErr: `derivation TimeFromPair: op must be multiply or divide, got "add"`,
		},
		{
			name: "single operand",
			give: Quantity{
				Name:        "Time",
				Units:       []Unit{second},
				Derivations: []Derivation{{Name: "TimeFromTime", Op: OpMultiply, Operands: []string{"Time"}}},
			},
			wantErr: "derivation TimeFromTime: at least two operands are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.give.Validate()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.EqualError(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func Test_Quantity_SIUnit(t *testing.T) {
	t.Parallel()

	q := Quantity{Name: "Time", Units: []Unit{minute, second}}

	got, ok := q.SIUnit()
	require.True(t, ok)
	assert.Equal(t, second, got)

	_, ok = Quantity{Name: "Time", Units: []Unit{minute}}.SIUnit()
	assert.False(t, ok)
}

func Test_Unit_PluralName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Seconds", second.PluralName())
	assert.Equal(t, "Feet", Unit{Name: "Foot", Plural: "Feet"}.PluralName())
}

func Test_Quantity_References(t *testing.T) {
	t.Parallel()

	q := Quantity{
		Name:       "Time",
		Invert:     "Frequency",
		Square:     "TimeSquared",
		Associated: []string{"Duration"},
		Derivations: []Derivation{
			{Name: "TimeFromDistanceSpeed", Op: OpDivide, Operands: []string{"Distance", "Speed"}},
		},
	}

	assert.Equal(t, []string{"Frequency", "TimeSquared", "Duration", "Distance", "Speed"}, q.References())
}
