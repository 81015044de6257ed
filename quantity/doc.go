// Package quantity holds the dimension-independent core shared by every generated quantity
// type: the [Measure] capability and its narrower capability interfaces, the dimensionless
// [Scalar], the type-erased [Unhandled] result, the [Vector3] helper, the phantom-typed
// [Unit] descriptor and the metric/binary prefixes used to derive units.
//
// Concrete quantities (Length, Time, Force, ...) are not defined here. They are generated
// from a declarative table by cmd/quantitygen into package measures, and every generated
// method is a one-line application of the rules implemented in this package.
//
// # Magnitudes
//
// A quantity holds one float64 magnitude, always expressed in the SI unit of its dimension.
// Converting to or from a named unit multiplies or divides by the unit's scale factor:
//
//	minute := quantity.NewUnit[Time]("Minute", "min", 60)
//	minute.ToSI(2)     // 120
//	minute.FromSI(120) // Scalar(2)
//
// # Failure semantics
//
// Arithmetic follows IEEE 754: division by zero yields an infinity and invalid operations
// yield NaN. The only explicit validation is the nil check of the generic [Multiply] and
// [Divide] fallbacks, which report [ErrInvalidArgument].
package quantity
