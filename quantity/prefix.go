package quantity

import (
	"fmt"
	"math"
)

// MetricPrefix is an SI prefix, a power of ten scaling a unit.
type MetricPrefix struct {
	factor float64
}

var (
	Yotta = MetricPrefix{1e24}
	Zetta = MetricPrefix{1e21}
	Exa   = MetricPrefix{1e18}
	Peta  = MetricPrefix{1e15}
	Tera  = MetricPrefix{1e12}
	Giga  = MetricPrefix{1e9}
	Mega  = MetricPrefix{1e6}
	Kilo  = MetricPrefix{1e3}
	Hecto = MetricPrefix{1e2}
	Deca  = MetricPrefix{1e1}
	Deci  = MetricPrefix{1e-1}
	Centi = MetricPrefix{1e-2}
	Milli = MetricPrefix{1e-3}
	Micro = MetricPrefix{1e-6}
	Nano  = MetricPrefix{1e-9}
	Pico  = MetricPrefix{1e-12}
	Femto = MetricPrefix{1e-15}
	Atto  = MetricPrefix{1e-18}
	Zepto = MetricPrefix{1e-21}
	Yocto = MetricPrefix{1e-24}
)

// NewMetricPrefix returns a prefix of an arbitrary factor. NaN and infinite factors are
// rejected.
func NewMetricPrefix(factor float64) (MetricPrefix, error) {
	if err := validatePrefixFactor(factor); err != nil {
		return MetricPrefix{}, err
	}

	return MetricPrefix{factor: factor}, nil
}

// TenToThePower returns the prefix 10^exponent.
func TenToThePower(exponent int) MetricPrefix {
	return MetricPrefix{math.Pow10(exponent)}
}

// ThousandToThePower returns the prefix 1000^exponent.
func ThousandToThePower(exponent int) MetricPrefix {
	return MetricPrefix{math.Pow10(3 * exponent)}
}

// Factor returns the scale of p.
func (p MetricPrefix) Factor() float64 { return p.factor }

// BinaryPrefix is an IEC prefix, a power of two scaling a unit.
type BinaryPrefix struct {
	factor float64
}

var (
	Kibi = BinaryPrefix{0x1p10}
	Mebi = BinaryPrefix{0x1p20}
	Gibi = BinaryPrefix{0x1p30}
	Tebi = BinaryPrefix{0x1p40}
	Pebi = BinaryPrefix{0x1p50}
	Exbi = BinaryPrefix{0x1p60}
	Zebi = BinaryPrefix{0x1p70}
	Yobi = BinaryPrefix{0x1p80}
)

// NewBinaryPrefix returns a prefix of an arbitrary factor. NaN and infinite factors are
// rejected.
func NewBinaryPrefix(factor float64) (BinaryPrefix, error) {
	if err := validatePrefixFactor(factor); err != nil {
		return BinaryPrefix{}, err
	}

	return BinaryPrefix{factor: factor}, nil
}

// TwoToThePower returns the prefix 2^exponent.
func TwoToThePower(exponent int) BinaryPrefix {
	return BinaryPrefix{math.Ldexp(1, exponent)}
}

// Factor returns the scale of p.
func (p BinaryPrefix) Factor() float64 { return p.factor }

func validatePrefixFactor(factor float64) error {
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		return fmt.Errorf("prefix factor %v must be finite: %w", factor, ErrInvalidArgument)
	}

	return nil
}
