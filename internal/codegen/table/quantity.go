package table

import (
	"errors"
	"fmt"
	"go/token"
	"math"
	"slices"
	"unicode"
	"unicode/utf8"
)

// Operations supported by a Derivation.
const (
	OpMultiply = "multiply"
	OpDivide   = "divide"
)

// Quantity is a single entry of the quantity table. The capability fields select the methods
// generated for the quantity. An empty reference leaves the capability out.
type Quantity struct {
	Name   string `yaml:"name" toml:"name"`
	Symbol string `yaml:"symbol,omitempty" toml:"symbol,omitempty"` // SI symbol used by String, defaults to the SI unit symbol
	// UnitOf names the quantity whose units this quantity shares. A quantity either owns units
	// or shares them, never both.
	UnitOf      string       `yaml:"unit_of,omitempty" toml:"unit_of,omitempty"`
	Additive    bool         `yaml:"additive,omitempty" toml:"additive,omitempty"`
	Cancels     bool         `yaml:"cancels,omitempty" toml:"cancels,omitempty"`
	Invert      string       `yaml:"invert,omitempty" toml:"invert,omitempty"`
	Square      string       `yaml:"square,omitempty" toml:"square,omitempty"`
	SquareRoot  string       `yaml:"square_root,omitempty" toml:"square_root,omitempty"`
	Cube        string       `yaml:"cube,omitempty" toml:"cube,omitempty"`
	CubeRoot    string       `yaml:"cube_root,omitempty" toml:"cube_root,omitempty"`
	Associated  []string     `yaml:"associated,omitempty" toml:"associated,omitempty"`
	Vector      string       `yaml:"vector,omitempty" toml:"vector,omitempty"`
	Units       []Unit       `yaml:"units,omitempty" toml:"units,omitempty"`
	Derivations []Derivation `yaml:"derivations,omitempty" toml:"derivations,omitempty"`
}

// Unit is a named unit of a quantity. The scale factor is either given directly, as a
// fraction factor/divisor, or as a metric prefix applied to another unit of the same quantity.
type Unit struct {
	Name    string  `yaml:"name" toml:"name"`
	Plural  string  `yaml:"plural,omitempty" toml:"plural,omitempty"`
	Symbol  string  `yaml:"symbol" toml:"symbol"`
	Factor  float64 `yaml:"factor,omitempty" toml:"factor,omitempty"`
	Divisor float64 `yaml:"divisor,omitempty" toml:"divisor,omitempty"`
	Bias    float64 `yaml:"bias,omitempty" toml:"bias,omitempty"`
	Prefix  string  `yaml:"prefix,omitempty" toml:"prefix,omitempty"`
	Base    string  `yaml:"base,omitempty" toml:"base,omitempty"`
}

// PluralName returns the name of the accessor expressing a quantity in u.
func (u Unit) PluralName() string {
	if u.Plural != "" {
		return u.Plural
	}

	return u.Name + "s"
}

// Derivation declares a function building the owning quantity from the magnitudes of its
// operands: their product for OpMultiply, the first divided by the rest for OpDivide.
type Derivation struct {
	Name     string   `yaml:"name" toml:"name"`
	Op       string   `yaml:"op" toml:"op"`
	Operands []string `yaml:"operands" toml:"operands"`
}

// Vector declares the three-dimensional counterpart of a scalar quantity.
type Vector struct {
	Name   string `yaml:"name" toml:"name"`
	Scalar string `yaml:"scalar" toml:"scalar"`
}

// OwnsUnits reports whether q declares its own units rather than sharing another's.
func (q Quantity) OwnsUnits() bool {
	return q.UnitOf == ""
}

// Unit returns the unit of q with the given name.
func (q Quantity) Unit(name string) (Unit, bool) {
	for _, u := range q.Units {
		if u.Name == name {
			return u, true
		}
	}

	return Unit{}, false
}

// ScaleFactor resolves the number of SI units in one u, where u is a unit of q.
func (q Quantity) ScaleFactor(u Unit) (float64, error) {
	if u.Prefix != "" {
		prefix, ok := metricPrefixes[u.Prefix]
		if !ok {
			return 0, fmt.Errorf("unknown metric prefix %q", u.Prefix)
		}

		base, ok := q.Unit(u.Base)
		if !ok {
			return 0, fmt.Errorf("base unit %q not found", u.Base)
		}

		if base.Prefix != "" {
			return 0, fmt.Errorf("base unit %q must not be prefixed", u.Base)
		}

		factor, err := q.ScaleFactor(base)
		if err != nil {
			return 0, err
		}

		return factor * prefix, nil
	}

	if u.Divisor != 0 {
		return u.Factor / u.Divisor, nil
	}

	return u.Factor, nil
}

// IsSI reports whether u is the SI unit of q.
func (q Quantity) IsSI(u Unit) bool {
	factor, err := q.ScaleFactor(u)

	return err == nil && factor == 1 && u.Bias == 0
}

// SIUnit returns the SI unit among the units of q.
func (q Quantity) SIUnit() (Unit, bool) {
	for _, u := range q.Units {
		if q.IsSI(u) {
			return u, true
		}
	}

	return Unit{}, false
}

// Validate checks q on its own. References to other quantities are checked by
// [Table.Validate].
func (q Quantity) Validate() error {
	if err := validateIdentifier(q.Name); err != nil {
		return err
	}

	if !q.OwnsUnits() {
		if len(q.Units) > 0 {
			return fmt.Errorf("units must not be declared when unit_of is set to %s", q.UnitOf)
		}

		return q.validateDerivations()
	}

	if len(q.Units) == 0 {
		return errors.New("at least one unit is required")
	}

	seen := make(map[string]bool, len(q.Units))
	plurals := make(map[string]bool, len(q.Units))
	siCount := 0
	for _, u := range q.Units {
		if err := q.validateUnit(u); err != nil {
			return fmt.Errorf("unit %s: %w", u.Name, err)
		}

		if seen[u.Name] {
			return fmt.Errorf("unit %s: declared more than once", u.Name)
		}
		seen[u.Name] = true

		if plurals[u.PluralName()] {
			return fmt.Errorf("unit %s: plural %s is used by another unit", u.Name, u.PluralName())
		}
		plurals[u.PluralName()] = true

		if q.IsSI(u) {
			siCount++
		}
	}

	if siCount != 1 {
		return fmt.Errorf("exactly one SI unit (factor 1, no bias) is required, found %d", siCount)
	}

	return q.validateDerivations()
}

func (q Quantity) validateUnit(u Unit) error {
	if err := validateIdentifier(u.Name); err != nil {
		return err
	}

	if u.Plural != "" {
		if err := validateIdentifier(u.Plural); err != nil {
			return fmt.Errorf("plural: %w", err)
		}
	}

	if slices.Contains(reservedMethods, u.PluralName()) {
		return fmt.Errorf("plural %s collides with a generated method", u.PluralName())
	}

	if u.Symbol == "" {
		return errors.New("symbol is required")
	}

	if (u.Prefix == "") != (u.Base == "") {
		return errors.New("prefix and base must be set together")
	}

	if u.Prefix != "" && (u.Factor != 0 || u.Divisor != 0) {
		return errors.New("factor must not be set on a prefixed unit")
	}

	if u.Prefix == "" && u.Divisor != 0 && u.Factor == 0 {
		return errors.New("divisor requires a factor")
	}

	if math.IsNaN(u.Bias) || math.IsInf(u.Bias, 0) {
		return errors.New("bias must be finite")
	}

	factor, err := q.ScaleFactor(u)
	if err != nil {
		return err
	}

	if factor == 0 {
		return errors.New("factor must be non-zero")
	}

	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		return errors.New("factor must be finite")
	}

	return nil
}

func (q Quantity) validateDerivations() error {
	for _, d := range q.Derivations {
		if err := validateIdentifier(d.Name); err != nil {
			return fmt.Errorf("derivation: %w", err)
		}

		if d.Op != OpMultiply && d.Op != OpDivide {
			return fmt.Errorf("derivation %s: op must be %s or %s, got %q", d.Name, OpMultiply, OpDivide, d.Op)
		}

		if len(d.Operands) < 2 {
			return fmt.Errorf("derivation %s: at least two operands are required", d.Name)
		}
	}

	return nil
}

// References returns the names of every quantity q refers to, including derivation operands.
func (q Quantity) References() []string {
	var refs []string
	for _, ref := range []string{q.UnitOf, q.Invert, q.Square, q.SquareRoot, q.Cube, q.CubeRoot} {
		if ref != "" {
			refs = append(refs, ref)
		}
	}

	refs = append(refs, q.Associated...)
	for _, d := range q.Derivations {
		refs = append(refs, d.Operands...)
	}

	return refs
}

func validateIdentifier(name string) error {
	if name == "" {
		return errors.New("name is required")
	}

	if !token.IsIdentifier(name) {
		return fmt.Errorf("name %q is not a valid Go identifier", name)
	}

	if r, _ := utf8.DecodeRuneInString(name); !unicode.IsUpper(r) {
		return fmt.Errorf("name %q must be exported", name)
	}

	return nil
}

// metricPrefixes holds the factors of the prefixes exported by the quantity package.
var metricPrefixes = map[string]float64{
	"Yotta": 1e24,
	"Zetta": 1e21,
	"Exa":   1e18,
	"Peta":  1e15,
	"Tera":  1e12,
	"Giga":  1e9,
	"Mega":  1e6,
	"Kilo":  1e3,
	"Hecto": 1e2,
	"Deca":  1e1,
	"Deci":  1e-1,
	"Centi": 1e-2,
	"Milli": 1e-3,
	"Micro": 1e-6,
	"Nano":  1e-9,
	"Pico":  1e-12,
	"Femto": 1e-15,
	"Atto":  1e-18,
	"Zepto": 1e-21,
	"Yocto": 1e-24,
}
