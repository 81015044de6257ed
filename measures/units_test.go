package measures

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smartcontractkit/quantities/quantity"
)

var magnitudes = []float64{0, 1, -2.5, 1234.5678, 6.02214076e23}

// tolerance is the absolute error accepted when comparing against want.
func tolerance(want float64) float64 {
	return 1e-9 * math.Max(1, math.Abs(want))
}

// unitReader is implemented by every quantity measured in units of U.
type unitReader[U any] interface {
	quantity.Measure
	InUnit(unit quantity.Unit[U]) quantity.Scalar
}

// roundTrip checks that a magnitude read back in the unit it was constructed in is unchanged.
func roundTrip[Q unitReader[U], U any](newQ func(float64, quantity.Unit[U]) Q, units ...quantity.Unit[U]) func(*testing.T) {
	return func(t *testing.T) {
		for _, u := range units {
			for _, m := range magnitudes {
				got := newQ(m, u).InUnit(u).Magnitude()
				assert.InDelta(t, m, got, tolerance(m), "%v %s", m, u.Name())
			}
		}
	}
}

// siIdentity checks that constructing from the SI unit stores the magnitude as is.
func siIdentity[Q quantity.Measure, U any](newQ func(float64, quantity.Unit[U]) Q, si quantity.Unit[U]) func(*testing.T) {
	return func(t *testing.T) {
		assert.True(t, si.IsSI())
		assert.Equal(t, 1.0, si.ScaleFactor())

		for _, m := range magnitudes {
			assert.Equal(t, m, newQ(m, si).Magnitude())
		}
	}
}

func Test_Units_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		check func(*testing.T)
	}{
		{
			name:  "Acceleration",
			check: roundTrip(NewAcceleration, MetrePerSecondSquared, Gal),
		},
		{
			name:  "AngularVelocity",
			check: roundTrip(NewAngularVelocity, RadianPerSecond, DegreePerSecond, RevolutionPerMinute),
		},
		{
			name:  "Area",
			check: roundTrip(NewArea, SquareMetre, SquareKilometre, SquareCentimetre, SquareMillimetre, Hectare, Acre, SquareFoot, SquareInch),
		},
		{
			name:  "Distance",
			check: roundTrip(NewDistance, Metre, Kilometre, Centimetre, Millimetre, Micrometre, Inch, Foot, Yard, Mile, NauticalMile, AstronomicalUnit),
		},
		{
			name:  "Energy",
			check: roundTrip(NewEnergy, Joule, Kilojoule, Megajoule, WattHour, KilowattHour, Calorie, Kilocalorie, Electronvolt),
		},
		{
			name:  "Force",
			check: roundTrip(NewForce, Newton, Kilonewton, Meganewton, PoundForce, Dyne),
		},
		{
			name:  "Frequency",
			check: roundTrip(NewFrequency, Hertz, Kilohertz, Megahertz, Gigahertz, PerMinute),
		},
		{
			name:  "FrequencyDrift",
			check: roundTrip(NewFrequencyDrift, HertzPerSecond, KilohertzPerSecond),
		},
		{
			name:  "Impulse",
			check: roundTrip(NewImpulse, KilogramMetrePerSecond, GramCentimetrePerSecond),
		},
		{
			name:  "Length",
			check: roundTrip(NewLength, Metre, Kilometre, Centimetre, Millimetre, Micrometre, Inch, Foot, Yard, Mile, NauticalMile, AstronomicalUnit),
		},
		{
			name:  "Mass",
			check: roundTrip(NewMass, Kilogram, Gram, Milligram, Tonne, Pound, Ounce),
		},
		{
			name:  "Momentum",
			check: roundTrip(NewMomentum, KilogramMetrePerSecond, GramCentimetrePerSecond),
		},
		{
			name:  "PotentialEnergy",
			check: roundTrip(NewPotentialEnergy, Joule, Kilojoule, Megajoule, WattHour, KilowattHour, Calorie, Kilocalorie, Electronvolt),
		},
		{
			name:  "Power",
			check: roundTrip(NewPower, Watt, Milliwatt, Kilowatt, Megawatt, Gigawatt, Horsepower),
		},
		{
			name:  "SpatialFrequency",
			check: roundTrip(NewSpatialFrequency, PerMetre, PerCentimetre, PerMillimetre),
		},
		{
			name:  "SpecificAngularMomentum",
			check: roundTrip(NewSpecificAngularMomentum, SquareMetrePerSecond),
		},
		{
			name:  "Speed",
			check: roundTrip(NewSpeed, MetrePerSecond, KilometrePerHour, MilePerHour, Knot, FootPerSecond),
		},
		{
			name:  "SpeedSquared",
			check: roundTrip(NewSpeedSquared, SquareMetrePerSquareSecond),
		},
		{
			name:  "Temperature",
			check: roundTrip(NewTemperature, Kelvin, DegreeCelsius, DegreeFahrenheit, DegreeRankine),
		},
		{
			name:  "TemperatureDifference",
			check: roundTrip(NewTemperatureDifference, KelvinDifference, FahrenheitDifference),
		},
		{
			name:  "Time",
			check: roundTrip(NewTime, Second, Millisecond, Microsecond, Nanosecond, Minute, Hour, Day, Week, Year),
		},
		{
			name:  "TimeSquared",
			check: roundTrip(NewTimeSquared, SquareSecond, SquareMinute, SquareHour),
		},
		{
			name:  "Volume",
			check: roundTrip(NewVolume, CubicMetre, Litre, Millilitre, CubicCentimetre, USGallon),
		},
		{
			name:  "VolumetricFlowRate",
			check: roundTrip(NewVolumetricFlowRate, CubicMetrePerSecond, LitrePerSecond, LitrePerMinute),
		},
		{
			name:  "Weight",
			check: roundTrip(NewWeight, Newton, Kilonewton, Meganewton, PoundForce, Dyne),
		},
		{
			name:  "Work",
			check: roundTrip(NewWork, Joule, Kilojoule, Megajoule, WattHour, KilowattHour, Calorie, Kilocalorie, Electronvolt),
		},
		{
			name:  "Yank",
			check: roundTrip(NewYank, NewtonPerSecond, KilonewtonPerSecond),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tt.check(t)
		})
	}
}

func Test_Units_SIIdentity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		check func(*testing.T)
	}{
		{
			name:  "Acceleration",
			check: siIdentity(NewAcceleration, MetrePerSecondSquared),
		},
		{
			name:  "AngularVelocity",
			check: siIdentity(NewAngularVelocity, RadianPerSecond),
		},
		{
			name:  "Area",
			check: siIdentity(NewArea, SquareMetre),
		},
		{
			name:  "Distance",
			check: siIdentity(NewDistance, Metre),
		},
		{
			name:  "Energy",
			check: siIdentity(NewEnergy, Joule),
		},
		{
			name:  "Force",
			check: siIdentity(NewForce, Newton),
		},
		{
			name:  "Frequency",
			check: siIdentity(NewFrequency, Hertz),
		},
		{
			name:  "FrequencyDrift",
			check: siIdentity(NewFrequencyDrift, HertzPerSecond),
		},
		{
			name:  "Impulse",
			check: siIdentity(NewImpulse, KilogramMetrePerSecond),
		},
		{
			name:  "Length",
			check: siIdentity(NewLength, Metre),
		},
		{
			name:  "Mass",
			check: siIdentity(NewMass, Kilogram),
		},
		{
			name:  "Momentum",
			check: siIdentity(NewMomentum, KilogramMetrePerSecond),
		},
		{
			name:  "PotentialEnergy",
			check: siIdentity(NewPotentialEnergy, Joule),
		},
		{
			name:  "Power",
			check: siIdentity(NewPower, Watt),
		},
		{
			name:  "SpatialFrequency",
			check: siIdentity(NewSpatialFrequency, PerMetre),
		},
		{
			name:  "SpecificAngularMomentum",
			check: siIdentity(NewSpecificAngularMomentum, SquareMetrePerSecond),
		},
		{
			name:  "Speed",
			check: siIdentity(NewSpeed, MetrePerSecond),
		},
		{
			name:  "SpeedSquared",
			check: siIdentity(NewSpeedSquared, SquareMetrePerSquareSecond),
		},
		{
			name:  "Temperature",
			check: siIdentity(NewTemperature, Kelvin),
		},
		{
			name:  "TemperatureDifference",
			check: siIdentity(NewTemperatureDifference, KelvinDifference),
		},
		{
			name:  "Time",
			check: siIdentity(NewTime, Second),
		},
		{
			name:  "TimeSquared",
			check: siIdentity(NewTimeSquared, SquareSecond),
		},
		{
			name:  "Volume",
			check: siIdentity(NewVolume, CubicMetre),
		},
		{
			name:  "VolumetricFlowRate",
			check: siIdentity(NewVolumetricFlowRate, CubicMetrePerSecond),
		},
		{
			name:  "Weight",
			check: siIdentity(NewWeight, Newton),
		},
		{
			name:  "Work",
			check: siIdentity(NewWork, Joule),
		},
		{
			name:  "Yank",
			check: siIdentity(NewYank, NewtonPerSecond),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tt.check(t)
		})
	}
}

func Test_Units_ScaleFactor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		give quantity.UnitDescriptor
		want float64
	}{
		{name: "prefixed", give: Kilometre, want: 1000},
		{name: "prefix of a non-SI unit", give: Millilitre, want: 1e-6},
		{name: "prefix of a derived unit", give: KilowattHour, want: 3.6e6},
		{name: "fraction", give: KilometrePerHour, want: 1 / 3.6},
		{name: "biased", give: DegreeFahrenheit, want: 5.0 / 9},
		{name: "from a quantity", give: StandardGravity, want: 9.80665},
		{name: "from a large quantity", give: LightYear, want: 9460730472580800},
		{name: "from a quantity of a shared unit type", give: KilogramForce, want: 9.80665},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tt.want, tt.give.ScaleFactor(), tolerance(tt.want))
		})
	}
}

func Test_Temperature_InUnit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		give Temperature
		unit TemperatureUnit
		want float64
	}{
		{name: "freezing point in kelvin", give: NewTemperature(0, DegreeCelsius), unit: Kelvin, want: 273.15},
		{name: "freezing point in fahrenheit", give: NewTemperature(0, DegreeCelsius), unit: DegreeFahrenheit, want: 32},
		{name: "boiling point in celsius", give: NewTemperature(212, DegreeFahrenheit), unit: DegreeCelsius, want: 100},
		{name: "absolute zero in fahrenheit", give: ZeroTemperature, unit: DegreeFahrenheit, want: -459.67},
		{name: "rankine to celsius", give: NewTemperature(491.67, DegreeRankine), unit: DegreeCelsius, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tt.want, tt.give.InUnit(tt.unit).Magnitude(), tolerance(tt.want))
		})
	}
}

func Test_TemperatureDifference_InUnit(t *testing.T) {
	t.Parallel()

	diff := NewTemperatureDifference(9, FahrenheitDifference)

	assert.InDelta(t, 5, diff.Kelvins().Magnitude(), tolerance(5))
	assert.InDelta(t, 9, diff.DegreesFahrenheit().Magnitude(), tolerance(9))
}

func Test_Units_FromQuantity(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 19.6133, NewAcceleration(2, StandardGravity).MetresPerSecondSquared().Magnitude(), tolerance(19.6133))
	assert.InDelta(t, 63241.07708426628, NewLength(1, LightYear).InUnit(AstronomicalUnit).Magnitude(), 1e-6)

	weight := ForceFromMassAcceleration(OneMassKilogram, NewAcceleration(1, StandardGravity))
	assert.InDelta(t, 1, weight.InUnit(KilogramForce).Magnitude(), tolerance(1))
	assert.Equal(t, "kgf", KilogramForce.Symbol())
}
