package measures

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/quantities/quantity"
)

type additive[Q any] interface {
	quantity.Measure
	quantity.Additive[Q]
	Negate() Q
}

// additiveLaws checks the group laws of Add, Subtract and Negate on a and b.
func additiveLaws[Q additive[Q]](a, b Q) func(*testing.T) {
	return func(t *testing.T) {
		assert.InDelta(t, a.Magnitude(), a.Add(b).Subtract(b).Magnitude(), tolerance(a.Magnitude()))
		assert.Equal(t, a.Add(b), b.Add(a))
		assert.Equal(t, a, a.Negate().Negate())
	}
}

// scalingLaws checks that scaling q is linear. q must have a positive magnitude.
func scalingLaws[Q quantity.Scalable[Q]](q, zero Q) func(*testing.T) {
	return func(t *testing.T) {
		for _, k := range []float64{-3, 0.5, 7, 1e-3} {
			assert.InDelta(t, q.Magnitude(), q.Multiply(k).Divide(k).Magnitude(), tolerance(q.Magnitude()), "k=%v", k)
		}

		assert.Equal(t, q, q.Multiply(1))
		assert.Equal(t, zero, q.Multiply(0))
	}
}

func Test_Quantity_AdditiveLaws(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		check func(*testing.T)
	}{
		{
			name:  "Length",
			check: additiveLaws(NewLength(3, Kilometre), NewLength(-250, Foot)),
		},
		{
			name:  "Time",
			check: additiveLaws(NewTime(1.5, Hour), NewTime(20, Minute)),
		},
		{
			name:  "Power",
			check: additiveLaws(NewPower(2, Kilowatt), NewPower(1, Horsepower)),
		},
		{
			name:  "AngularVelocity",
			check: additiveLaws(NewAngularVelocity(90, DegreePerSecond), NewAngularVelocity(33, RevolutionPerMinute)),
		},
		{
			name:  "SpecificAngularMomentum",
			check: additiveLaws(NewSpecificAngularMomentum(4.5, SquareMetrePerSecond), NewSpecificAngularMomentum(-1, SquareMetrePerSecond)),
		},
		{
			name:  "Energy",
			check: additiveLaws(NewEnergy(1, KilowattHour), NewEnergy(250, Kilocalorie)),
		},
		{
			name:  "Impulse",
			check: additiveLaws(NewImpulse(12, KilogramMetrePerSecond), NewImpulse(3, GramCentimetrePerSecond)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tt.check(t)
		})
	}
}

func Test_Quantity_ScalingLaws(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		check func(*testing.T)
	}{
		{
			name:  "Area",
			check: scalingLaws(NewArea(3, SquareKilometre), ZeroArea),
		},
		{
			name:  "Force",
			check: scalingLaws(NewForce(12, Kilonewton), ZeroForce),
		},
		{
			name:  "Weight",
			check: scalingLaws(NewWeight(700, Newton), ZeroWeight),
		},
		{
			name:  "Momentum",
			check: scalingLaws(NewMomentum(30000, KilogramMetrePerSecond), ZeroMomentum),
		},
		{
			name:  "Work",
			check: scalingLaws(NewWork(2, Megajoule), ZeroWork),
		},
		{
			name:  "PotentialEnergy",
			check: scalingLaws(NewPotentialEnergy(5, Joule), ZeroPotentialEnergy),
		},
		{
			name:  "Yank",
			check: scalingLaws(NewYank(3, KilonewtonPerSecond), ZeroYank),
		},
		{
			name:  "Temperature",
			check: scalingLaws(NewTemperature(20, DegreeCelsius), ZeroTemperature),
		},
		{
			name:  "TemperatureDifference",
			check: scalingLaws(NewTemperatureDifference(18, FahrenheitDifference), ZeroTemperatureDifference),
		},
		{
			name:  "SpatialFrequency",
			check: scalingLaws(NewSpatialFrequency(2, PerCentimetre), ZeroSpatialFrequency),
		},
		{
			name:  "TimeSquared",
			check: scalingLaws(NewTimeSquared(4, SquareMinute), ZeroTimeSquared),
		},
		{
			name:  "VolumetricFlowRate",
			check: scalingLaws(NewVolumetricFlowRate(40, LitrePerMinute), ZeroVolumetricFlowRate),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tt.check(t)
		})
	}
}

func Test_Quantity_DivideSameType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		give quantity.Scalar
		want float64
	}{
		{name: "Length by itself", give: NewLength(3, Mile).DivideLength(NewLength(3, Mile)), want: 1},
		{name: "Time by itself", give: NewTime(2, Day).DivideTime(NewTime(2, Day)), want: 1},
		{name: "Time ratio", give: NewTime(1, Hour).DivideTime(NewTime(1, Minute)), want: 60},
		{name: "Power ratio", give: NewPower(3, Kilowatt).DividePower(NewPower(1.5, Kilowatt)), want: 2},
		{name: "Temperature ratio", give: NewTemperature(300, Kelvin).DivideTemperature(NewTemperature(150, Kelvin)), want: 2},
		{
			name: "AngularVelocity by itself",
			give: NewAngularVelocity(10, RadianPerSecond).DivideAngularVelocity(NewAngularVelocity(10, RadianPerSecond)),
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tt.want, tt.give.Magnitude(), tolerance(tt.want))
		})
	}
}

func Test_Quantity_InvertInvolution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		give quantity.Measure
		got  quantity.Measure
	}{
		{name: "Time", give: NewTime(1.5, Minute), got: NewTime(1.5, Minute).Invert().Invert()},
		{name: "Frequency", give: NewFrequency(50, Hertz), got: NewFrequency(50, Hertz).Invert().Invert()},
		{name: "Distance", give: NewDistance(7, Centimetre), got: NewDistance(7, Centimetre).Invert().Invert()},
		{name: "TimeSquared", give: NewTimeSquared(9, SquareSecond), got: NewTimeSquared(9, SquareSecond).Invert().Invert()},
		{
			name: "FrequencyDrift",
			give: NewFrequencyDrift(3, KilohertzPerSecond),
			got:  NewFrequencyDrift(3, KilohertzPerSecond).Invert().Invert(),
		},
		{
			name: "SpatialFrequency",
			give: NewSpatialFrequency(4, PerMillimetre),
			got:  NewSpatialFrequency(4, PerMillimetre).Invert().Invert(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tt.give.Magnitude(), tt.got.Magnitude(), tolerance(tt.give.Magnitude()))
		})
	}
}

func Test_Quantity_SquareAndRoot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		give quantity.Measure
		got  quantity.Measure
	}{
		{name: "Speed", give: NewSpeed(10, MetrePerSecond), got: NewSpeed(10, MetrePerSecond).Square().SquareRoot()},
		{name: "negative Speed", give: NewSpeed(10, MetrePerSecond), got: NewSpeed(-10, MetrePerSecond).Square().SquareRoot()},
		{name: "Length", give: NewLength(12, Foot), got: NewLength(12, Foot).Square().SquareRoot()},
		{name: "Time", give: NewTime(90, Second), got: NewTime(-90, Second).Square().SquareRoot()},
		{name: "Length cubed", give: NewLength(3, Centimetre), got: NewLength(3, Centimetre).Cube().CubeRoot()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tt.give.Magnitude(), tt.got.Magnitude(), tolerance(tt.give.Magnitude()))
		})
	}
}

func Test_Quantity_OrderingConsistency(t *testing.T) {
	t.Parallel()

	values := []Length{
		NewLength(-1, Metre),
		ZeroLength,
		NewLength(2.5, Metre),
		NewLength(2500, Millimetre),
		NewLength(1, Kilometre),
		LengthFromFloat64(math.Inf(1)),
	}

	for _, a := range values {
		for _, b := range values {
			var want int
			switch d := a.Magnitude() - b.Magnitude(); {
			case a.Magnitude() == b.Magnitude():
				want = 0
			case d < 0:
				want = -1
			default:
				want = 1
			}

			msg := fmt.Sprintf("%v vs %v", a, b)
			assert.Equal(t, want, a.Compare(b), msg)
			assert.Equal(t, want < 0, a.Less(b), msg)
			assert.Equal(t, want > 0, a.Greater(b), msg)
			assert.Equal(t, want <= 0, a.LessOrEqual(b), msg)
			assert.Equal(t, want >= 0, a.GreaterOrEqual(b), msg)
		}
	}
}

func Test_Quantity_GenericArithmetic(t *testing.T) {
	t.Parallel()

	area, err := quantity.Multiply(NewLength(4, Metre), NewLength(5, Metre), AreaFromFloat64)
	require.NoError(t, err)
	assert.Equal(t, AreaFromFloat64(20), area)

	speed, err := quantity.Divide(NewLength(100, Metre), NewTime(8, Second), SpeedFromFloat64)
	require.NoError(t, err)
	assert.Equal(t, SpeedFromFloat64(12.5), speed)

	var factory func(float64) Area
	_, err = quantity.Multiply(NewLength(4, Metre), NewLength(5, Metre), factory)
	require.ErrorIs(t, err, quantity.ErrInvalidArgument)

	_, err = quantity.Divide(NewLength(4, Metre), NewLength(5, Metre), factory)
	require.ErrorIs(t, err, quantity.ErrInvalidArgument)

	product, err := NewForce(2, Newton).MultiplyQuantity(NewLength(3, Metre))
	require.NoError(t, err)
	assert.Equal(t, quantity.NewUnhandled(6), product)

	quotient, err := NewForce(2, Newton).DivideQuantity(NewTime(4, Second))
	require.NoError(t, err)
	assert.Equal(t, quantity.NewUnhandled(0.5), quotient)

	_, err = NewForce(1, Newton).MultiplyQuantity(nil)
	require.ErrorIs(t, err, quantity.ErrInvalidArgument)

	_, err = NewTime(1, Second).DivideQuantity(nil)
	require.ErrorIs(t, err, quantity.ErrInvalidArgument)

	var untyped quantity.GenericallyMultiplicable = NewPower(2, Watt)
	_, err = untyped.MultiplyQuantity(nil)
	require.ErrorIs(t, err, quantity.ErrInvalidArgument)
	assert.Equal(t, quantity.NewUnhandled(10), NewMass(5, Kilogram).MultiplyUnhandled(quantity.NewUnhandled(2)))
}

func Test_Derivations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		give quantity.Measure
		want float64
	}{
		{name: "Area", give: AreaFromLengths(NewLength(4, Metre), NewLength(5, Metre)), want: 20},
		{name: "Speed", give: SpeedFromDistanceTime(NewDistance(3, Kilometre), NewTime(15, Minute)), want: 3000.0 / 900},
		{name: "Speed from Acceleration", give: SpeedFromAccelerationTime(NewAcceleration(2, MetrePerSecondSquared), NewTime(5, Second)), want: 10},
		{name: "Acceleration", give: AccelerationFromSpeedTime(NewSpeed(100, KilometrePerHour), NewTime(10, Second)), want: 100 / 36.0},
		{name: "Acceleration from Force", give: AccelerationFromForceMass(NewForce(10, Newton), NewMass(4, Kilogram)), want: 2.5},
		{name: "Force", give: ForceFromMassAcceleration(NewMass(2, Kilogram), NewAcceleration(1, StandardGravity)), want: 19.6133},
		{name: "Force from Momentum", give: ForceFromMomentumTime(NewMomentum(30, KilogramMetrePerSecond), NewTime(3, Second)), want: 10},
		{name: "Weight", give: WeightFromMassAcceleration(NewMass(70, Kilogram), NewAcceleration(10, MetrePerSecondSquared)), want: 700},
		{name: "Momentum", give: MomentumFromMassSpeed(NewMass(1.5, Tonne), NewSpeed(20, MetrePerSecond)), want: 30000},
		{name: "Impulse", give: ImpulseFromForceTime(NewForce(10, Newton), NewTime(2, Second)), want: 20},
		{name: "Yank", give: YankFromForceTime(NewForce(10, Newton), NewTime(4, Second)), want: 2.5},
		{name: "Energy", give: EnergyFromPowerTime(NewPower(2, Kilowatt), NewTime(30, Minute)), want: 3.6e6},
		{name: "Work", give: WorkFromForceDistance(NewForce(5, Newton), NewDistance(3, Metre)), want: 15},
		{name: "PotentialEnergy", give: PotentialEnergyFromWeightDistance(NewWeight(10, Newton), NewDistance(2, Metre)), want: 20},
		{name: "Power", give: PowerFromEnergyTime(NewEnergy(1, KilowattHour), NewTime(1, Hour)), want: 1000},
		{name: "Power from Force", give: PowerFromForceSpeed(NewForce(100, Newton), NewSpeed(3, MetrePerSecond)), want: 300},
		{name: "Time", give: TimeFromDistanceSpeed(NewDistance(100, Kilometre), NewSpeed(50, KilometrePerHour)), want: 7200},
		{name: "FrequencyDrift", give: FrequencyDriftFromFrequencyTime(NewFrequency(1, Kilohertz), NewTime(10, Second)), want: 100},
		{name: "Volume", give: VolumeFromVolumetricFlowRateTime(NewVolumetricFlowRate(2, LitrePerSecond), NewTime(10, Second)), want: 0.02},
		{name: "VolumetricFlowRate", give: VolumetricFlowRateFromVolumeTime(NewVolume(120, Litre), NewTime(1, Minute)), want: 0.002},
		{
			name: "SpecificAngularMomentum",
			give: SpecificAngularMomentumFromDistanceSpeed(NewDistance(2, Metre), NewSpeed(3, MetrePerSecond)),
			want: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tt.want, tt.give.Magnitude(), tolerance(tt.want))
		})
	}
}

func Test_Quantity_Associated(t *testing.T) {
	t.Parallel()

	d := NewLength(2, Kilometre).AsDistance()
	assert.IsType(t, Distance{}, d)
	assert.Equal(t, NewLength(2, Kilometre), d.AsLength())

	w := NewEnergy(5, Kilojoule).AsWork()
	assert.IsType(t, Work{}, w)
	assert.Equal(t, NewEnergy(5, Kilojoule), w.AsEnergy())
	assert.Equal(t, NewPotentialEnergy(5, Kilojoule), NewEnergy(5, Kilojoule).AsPotentialEnergy())

	assert.Equal(t, NewMomentum(3, KilogramMetrePerSecond), NewImpulse(3, KilogramMetrePerSecond).AsMomentum())

	dt := NewTemperature(20, DegreeCelsius).AsTemperatureDifference()
	assert.IsType(t, TemperatureDifference{}, dt)
	assert.InDelta(t, 293.15, dt.Kelvins().Magnitude(), tolerance(293.15))
	assert.Equal(t, NewTemperature(10, Kelvin), NewTemperatureDifference(10, KelvinDifference).AsTemperature())
}

func Test_Quantity_SharedUnits(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 2000, NewWeight(2, Kilonewton).Newtons().Magnitude(), tolerance(2000))
	assert.InDelta(t, 0.5, NewDistance(500, Metre).Kilometres().Magnitude(), tolerance(0.5))
	assert.InDelta(t, 1, NewWork(3600, Joule).WattHours().Magnitude(), tolerance(1))
}

func Test_Quantity_Rounding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		give Length
		want Length
	}{
		{name: "abs", give: NewLength(-2.5, Metre).Abs(), want: LengthFromFloat64(2.5)},
		{name: "floor", give: NewLength(-2.5, Metre).Floor(), want: LengthFromFloat64(-3)},
		{name: "ceil", give: NewLength(2.25, Metre).Ceil(), want: LengthFromFloat64(3)},
		{name: "round half to even", give: NewLength(2.5, Metre).Round(), want: LengthFromFloat64(2)},
		{name: "round", give: NewLength(3.5, Metre).Round(), want: LengthFromFloat64(4)},
		{name: "remainder", give: NewLength(7, Metre).Remainder(3), want: LengthFromFloat64(1)},
		{name: "remainder by scalar", give: NewLength(7, Metre).RemainderScalar(quantity.NewScalar(4)), want: LengthFromFloat64(3)},
		{name: "plus", give: NewLength(7, Metre).Plus(), want: LengthFromFloat64(7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.give)
		})
	}
}

func Test_Quantity_Predicates(t *testing.T) {
	t.Parallel()

	assert.True(t, NewTime(-1, Second).IsNegative())
	assert.True(t, NewTime(1, Second).IsPositive())
	assert.True(t, ZeroTime.IsZero())
	assert.True(t, TimeFromFloat64(math.NaN()).IsNaN())
	assert.True(t, TimeFromFloat64(math.Inf(1)).IsPositiveInfinity())
	assert.True(t, TimeFromFloat64(math.Inf(-1)).IsNegativeInfinity())
	assert.True(t, TimeFromFloat64(math.Inf(-1)).IsInfinite())
	assert.False(t, TimeFromFloat64(math.Inf(-1)).IsFinite())

	// Division by zero follows IEEE-754 rather than failing.
	assert.True(t, NewTime(1, Second).Divide(0).IsPositiveInfinity())
	assert.True(t, ZeroTime.Invert().IsPositiveInfinity())
}

func Test_Quantity_Aggregates(t *testing.T) {
	t.Parallel()

	lengths := []Length{NewLength(1, Metre), NewLength(2, Metre), NewLength(6, Metre)}

	assert.Equal(t, NewLength(9, Metre), quantity.Sum(lengths...))
	assert.Equal(t, NewLength(3, Metre), quantity.Average(lengths...))
	assert.Equal(t, NewLength(1, Metre), quantity.Min(lengths[0], lengths[1:]...))
	assert.Equal(t, NewLength(6, Metre), quantity.Max(lengths[0], lengths[1:]...))
	assert.Equal(t, ZeroTime, quantity.Sum[Time]())
}

func Test_Quantity_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		give fmt.Stringer
		want string
	}{
		{name: "force", give: NewForce(5, Newton), want: "5 [N]"},
		{name: "area", give: NewArea(3.2, SquareMetre), want: "3.2 [m²]"},
		{name: "converted", give: NewLength(1.5, Kilometre), want: "1500 [m]"},
		{name: "temperature", give: ZeroTemperature, want: "0 [K]"},
		{name: "volume", give: NewVolume(2, Litre), want: "0.002 [m³]"},
		{name: "vector", give: NewForce3(10, 20, 30, Newton), want: "(10, 20, 30) [N]"},
		{name: "shared unit vector", give: NewWeight3(1, 0, -1, Newton), want: "(1, 0, -1) [N]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.give.String())
		})
	}
}

func Test_Vector3(t *testing.T) {
	t.Parallel()

	v := NewVelocity3(3, 4, 0, MetrePerSecond)
	assert.Equal(t, NewSpeed(5, MetrePerSecond), v.Magnitude())
	assert.Equal(t, quantity.NewUnhandled(25), v.SquaredMagnitude())
	assert.Equal(t, NewSpeed(3, MetrePerSecond), v.X())
	assert.Equal(t, ZeroSpeed, v.Z())

	n := v.Normalize()
	assert.InDelta(t, 0.6, n.X().Magnitude(), tolerance(0.6))
	assert.InDelta(t, 0.8, n.Y().Magnitude(), tolerance(0.8))

	kmh := NewVelocity3(36, 0, 0, KilometrePerHour)
	assert.InDelta(t, 10, kmh.X().MetresPerSecond().Magnitude(), tolerance(10))
	assert.InDelta(t, 36, kmh.KilometresPerHour().X, tolerance(36))

	assert.Equal(t, NewVelocity3(4, 4, 1, MetrePerSecond), v.Add(NewVelocity3(1, 0, 1, MetrePerSecond)))
	assert.Equal(t, NewVelocity3(2, 4, -1, MetrePerSecond), v.Subtract(NewVelocity3(1, 0, 1, MetrePerSecond)))
	assert.Equal(t, NewVelocity3(-3, -4, 0, MetrePerSecond), v.Negate())
	assert.Equal(t, NewVelocity3(6, 8, 0, MetrePerSecond), v.Multiply(2))
	assert.Equal(t, NewVelocity3(1.5, 2, 0, MetrePerSecond), v.DivideScalar(quantity.NewScalar(2)))
	assert.Equal(t, NewVelocity3(1, 0, 0, MetrePerSecond), v.RemainderScalar(quantity.NewScalar(2)))
	assert.Equal(t, v.Remainder(2), v.RemainderScalar(quantity.NewScalar(2)))

	f := NewForce3(1, 0, 0, Newton)
	assert.Equal(t, NewForce3(0, 0, 1, Newton), f.Cross(quantity.NewVector3(0, 1, 0)))
	assert.Equal(t, NewForce(1, Newton), f.Dot(quantity.NewVector3(1, 1, 1)))
	assert.Equal(t, quantity.NewUnhandled3(2, 0, 0), f.MultiplyUnhandled(quantity.NewUnhandled(2)))

	w := Weight3FromComponents(NewWeight(1, Newton), NewWeight(2, Newton), NewWeight(3, Newton))
	assert.Equal(t, quantity.NewVector3(0.001, 0.002, 0.003), w.Kilonewtons())
	assert.Equal(t, ZeroWeight3, w.Subtract(w))
	assert.True(t, ZeroMomentum3.IsZero())
	assert.True(t, NewAcceleration3(math.NaN(), 0, 0, MetrePerSecondSquared).IsNaN())
}

func Test_Scenarios(t *testing.T) {
	t.Parallel()

	t.Run("area in square metres", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, quantity.NewScalar(3e6), NewArea(3, SquareKilometre).SquareMetres())
	})

	t.Run("area from lengths", func(t *testing.T) {
		t.Parallel()

		area := AreaFromLengths(NewLength(4, Metre), NewLength(5, Metre))
		assert.Equal(t, NewArea(20, SquareMetre), area)
	})

	t.Run("inverted time", func(t *testing.T) {
		t.Parallel()

		var frequency Frequency = NewTime(1, Minute).Invert()
		assert.InDelta(t, 1.0/60, frequency.Magnitude(), tolerance(1.0/60))
	})

	t.Run("squared speed", func(t *testing.T) {
		t.Parallel()

		var squared SpeedSquared = NewSpeed(10, MetrePerSecond).Square()
		assert.Equal(t, 100.0, squared.Magnitude())

		var root Speed = squared.SquareRoot()
		assert.Equal(t, 10.0, root.Magnitude())
	})

	t.Run("force times vector", func(t *testing.T) {
		t.Parallel()

		var force Force3 = NewForce(10, Newton).MultiplyVector3(quantity.NewVector3(1, 2, 3))
		x, y, z := force.Components()
		assert.Equal(t, []float64{10, 20, 30}, []float64{x, y, z})
	})

	t.Run("weight as force", func(t *testing.T) {
		t.Parallel()

		var force Force = OneWeightNewton.AsForce()
		assert.Equal(t, OneForceNewton, force)
		assert.Equal(t, OneWeightNewton.Magnitude(), OneForceNewton.Magnitude())
		assert.NotEqual(t, any(OneWeightNewton), any(OneForceNewton))
	})
}
