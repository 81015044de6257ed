package quantity

// UnitDescriptor is the capability every unit exposes, regardless of how its table defines
// it. ScaleFactor is the number of SI units in one of this unit.
type UnitDescriptor interface {
	Name() string
	Symbol() string
	ScaleFactor() float64
}

// Unit is a named unit of the quantity Q. The type parameter is a phantom: it keeps a unit of
// one quantity from being used to construct or read another.
//
// A magnitude m expressed in the unit corresponds to (m + bias) * factor SI units. The bias is
// zero for every unit except affine ones such as degrees Celsius.
type Unit[Q any] struct {
	name   string
	symbol string
	factor float64
	bias   float64
}

var _ UnitDescriptor = Unit[Scalar]{}

// NewUnit returns the unit worth factor SI units of Q.
func NewUnit[Q any](name, symbol string, factor float64) Unit[Q] {
	return Unit[Q]{name: name, symbol: symbol, factor: factor}
}

// UnitOf returns the unit for which one is the quantity of exactly one unit.
func UnitOf[Q Measure](name, symbol string, one Q) Unit[Q] {
	return Unit[Q]{name: name, symbol: symbol, factor: one.Magnitude()}
}

// Name returns the identifier of u, such as "Kilometre".
func (u Unit[Q]) Name() string { return u.name }

// Symbol returns the printed symbol of u, such as "km".
func (u Unit[Q]) Symbol() string { return u.symbol }

// ScaleFactor returns the number of SI units in one of u.
func (u Unit[Q]) ScaleFactor() float64 { return u.factor }

// Bias returns the offset added to a magnitude in u before scaling.
func (u Unit[Q]) Bias() float64 { return u.bias }

// IsSI reports whether u is the SI unit of Q.
func (u Unit[Q]) IsSI() bool { return u.factor == 1 && u.bias == 0 }

// ToSI converts magnitude, expressed in u, to SI units.
func (u Unit[Q]) ToSI(magnitude float64) float64 {
	return (magnitude + u.bias) * u.factor
}

// FromSI expresses the SI magnitude si in u.
func (u Unit[Q]) FromSI(si float64) Scalar {
	return Scalar{si/u.factor - u.bias}
}

// WithPrefix derives the unit prefix times larger than u.
func (u Unit[Q]) WithPrefix(prefix MetricPrefix, name, symbol string) Unit[Q] {
	return u.ScaledBy(prefix.Factor(), name, symbol)
}

// WithBinaryPrefix derives the unit prefix times larger than u.
func (u Unit[Q]) WithBinaryPrefix(prefix BinaryPrefix, name, symbol string) Unit[Q] {
	return u.ScaledBy(prefix.Factor(), name, symbol)
}

// ScaledBy derives the unit scale times larger than u. The zero point of an affine unit is
// preserved.
func (u Unit[Q]) ScaledBy(scale float64, name, symbol string) Unit[Q] {
	scaled := Unit[Q]{name: name, symbol: symbol, factor: u.factor * scale}
	if u.bias != 0 {
		scaled.bias = u.bias / scale
	}

	return scaled
}

// WithBias returns a copy of u whose zero point is offset by bias units.
func (u Unit[Q]) WithBias(bias float64) Unit[Q] {
	u.bias = bias
	return u
}

// String returns the symbol of u.
func (u Unit[Q]) String() string { return u.symbol }
