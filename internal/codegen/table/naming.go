package table

// Names of the identifiers generated for a table entry. The renderer and the uniqueness check
// both use them, so the two cannot drift apart.

// UnitTypeName returns the name of the unit type of the quantity owning the units.
func UnitTypeName(owner string) string { return owner + "Unit" }

// ZeroName returns the name of the zero value of a quantity or vector.
func ZeroName(name string) string { return "Zero" + name }

// OneName returns the name of the quantity of one unit.
func OneName(quantity, unit string) string { return "One" + quantity + unit }

// FactoryName returns the name of the function deriving result from a single source quantity.
func FactoryName(result, source string) string { return result + "From" + source }

// identifiers lists the package-level identifiers generated for q, given the quantity that
// owns its units.
func identifiers(q Quantity, owner Quantity) []string {
	ids := []string{
		q.Name,
		ZeroName(q.Name),
		"New" + q.Name,
		"New" + q.Name + "FromScalar",
		q.Name + "FromFloat64",
		q.Name + "FromScalar",
	}

	if q.OwnsUnits() {
		ids = append(ids, UnitTypeName(q.Name))
		for _, u := range q.Units {
			ids = append(ids, u.Name)
		}
	}

	for _, u := range owner.Units {
		ids = append(ids, OneName(q.Name, u.Name))
	}

	for _, result := range []string{q.Invert, q.Square, q.SquareRoot, q.Cube, q.CubeRoot} {
		if result != "" {
			ids = append(ids, FactoryName(result, q.Name))
		}
	}

	for _, d := range q.Derivations {
		ids = append(ids, d.Name)
	}

	return ids
}

// vectorIdentifiers lists the package-level identifiers generated for v.
func vectorIdentifiers(v Vector) []string {
	return []string{
		v.Name,
		ZeroName(v.Name),
		"New" + v.Name,
		"New" + v.Name + "FromVector3",
		v.Name + "FromComponents",
		v.Name + "FromVector3",
	}
}

// reservedMethods are the methods generated for every quantity or vector. Unit accessors must
// not shadow them.
var reservedMethods = []string{
	"Abs", "Add", "Ceil", "Compare", "Components", "Cross", "Cube", "CubeRoot", "Divide",
	"DivideQuantity", "DivideScalar", "DivideUnhandled", "Dot", "Floor", "Greater",
	"GreaterOrEqual", "InUnit", "Invert", "IsFinite", "IsInfinite", "IsNaN", "IsNegative",
	"IsNegativeInfinity", "IsPositive", "IsPositiveInfinity", "IsZero", "Less", "LessOrEqual",
	"Magnitude", "Multiply", "MultiplyComponents", "MultiplyQuantity", "MultiplyScalar",
	"MultiplyScalarComponents", "MultiplyUnhandled", "MultiplyVector3", "Negate", "Normalize",
	"Plus", "Remainder", "RemainderScalar", "Round", "Square", "SquareRoot", "SquaredMagnitude",
	"String", "Subtract", "ToFloat64", "ToScalar", "ToVector3", "X", "Y", "Z",
}
