package render

import (
	"fmt"
	"go/token"
	"path"
	"strconv"
	"strings"
	"unicode"

	"github.com/smartcontractkit/quantities/internal/codegen/table"
)

// header holds the values shared by every generated file.
type header struct {
	Package    string
	CoreImport string
	Core       string // package name of CoreImport
}

// unitView is a unit as seen by the templates.
type unitView struct {
	Name   string
	Plural string
	Symbol string
	Init   string // expression constructing the unit
}

// factoryView is a single-source factory such as FrequencyFromTime, with the method calling it.
type factoryView struct {
	Name   string
	Method string
	Result string
	Param  string
	Doc    string
	Expr   string
}

// derivationView is a function building a quantity from the product or quotient of others.
type derivationView struct {
	Name   string
	Params string
	Doc    string
	Expr   string
}

type quantityView struct {
	header
	Name        string
	Recv        string
	Symbol      string
	UnitType    string
	OwnsUnits   bool
	Units       []unitView
	Assertions  []string
	Additive    bool
	Cancels     bool
	Factories   []factoryView
	Derivations []derivationView
	Associated  []string
	Vector      string
}

type vectorView struct {
	header
	Name     string
	Scalar   string
	Recv     string
	Symbol   string
	UnitType string
	Units    []unitView
}

// capability pairs a table field with the method and factory it generates.
type capability struct {
	method string
	doc    string
	expr   func(recv string) string
	result func(q table.Quantity) string
}

var capabilities = []capability{
	{
		method: "Invert",
		doc:    "reciprocal of",
		expr:   func(r string) string { return "1 / " + r + ".magnitude" },
		result: func(q table.Quantity) string { return q.Invert },
	},
	{
		method: "Square",
		doc:    "square of",
		expr:   func(r string) string { return "math.Pow(" + r + ".magnitude, 2)" },
		result: func(q table.Quantity) string { return q.Square },
	},
	{
		method: "SquareRoot",
		doc:    "square root of",
		expr:   func(r string) string { return "math.Sqrt(" + r + ".magnitude)" },
		result: func(q table.Quantity) string { return q.SquareRoot },
	},
	{
		method: "Cube",
		doc:    "cube of",
		expr:   func(r string) string { return "math.Pow(" + r + ".magnitude, 3)" },
		result: func(q table.Quantity) string { return q.Cube },
	},
	{
		method: "CubeRoot",
		doc:    "cube root of",
		expr:   func(r string) string { return "math.Cbrt(" + r + ".magnitude)" },
		result: func(q table.Quantity) string { return q.CubeRoot },
	},
}

// capabilityInterfaces maps generated methods to the core interface asserting them.
var capabilityInterfaces = map[string]string{
	"Invert":     "Invertible",
	"Square":     "Squarable",
	"SquareRoot": "SquareRootable",
	"Cube":       "Cubable",
	"CubeRoot":   "CubeRootable",
}

func newHeader(pkg, coreImport string) header {
	return header{
		Package:    pkg,
		CoreImport: coreImport,
		Core:       path.Base(coreImport),
	}
}

func newQuantityView(h header, t *table.Table, q table.Quantity) (quantityView, error) {
	owner, err := t.UnitOwner(q)
	if err != nil {
		return quantityView{}, err
	}

	symbol, err := t.Symbol(q)
	if err != nil {
		return quantityView{}, err
	}

	units, err := newUnitViews(h, owner)
	if err != nil {
		return quantityView{}, err
	}

	v := quantityView{
		header:     h,
		Name:       q.Name,
		Recv:       receiver(q.Name),
		Symbol:     symbol,
		UnitType:   table.UnitTypeName(owner.Name),
		OwnsUnits:  q.OwnsUnits(),
		Units:      units,
		Additive:   q.Additive,
		Cancels:    q.Cancels,
		Associated: q.Associated,
		Vector:     q.Vector,
	}

	v.Assertions = []string{
		h.Core + ".Measure",
		h.Core + ".Scalable[" + q.Name + "]",
		h.Core + ".Ordered[" + q.Name + "]",
		h.Core + ".GenericallyMultiplicable",
	}
	if q.Additive {
		v.Assertions = append(v.Assertions, h.Core+".Additive["+q.Name+"]")
	}

	for _, c := range capabilities {
		result := c.result(q)
		if result == "" {
			continue
		}

		v.Factories = append(v.Factories, factoryView{
			Name:   table.FactoryName(result, q.Name),
			Method: c.method,
			Result: result,
			Param:  v.Recv,
			Doc:    c.doc,
			Expr:   c.expr(v.Recv),
		})
		v.Assertions = append(v.Assertions, h.Core+"."+capabilityInterfaces[c.method]+"["+result+"]")
	}

	if q.Vector != "" {
		v.Assertions = append(v.Assertions, h.Core+".Vector3Liftable["+q.Vector+"]")
	}

	for _, d := range q.Derivations {
		v.Derivations = append(v.Derivations, newDerivationView(h, d))
	}

	return v, nil
}

func newVectorView(h header, t *table.Table, vec table.Vector) (vectorView, error) {
	scalar, err := t.Quantity(vec.Scalar)
	if err != nil {
		return vectorView{}, fmt.Errorf("vector %s: %w", vec.Name, err)
	}

	owner, err := t.UnitOwner(scalar)
	if err != nil {
		return vectorView{}, fmt.Errorf("vector %s: %w", vec.Name, err)
	}

	symbol, err := t.Symbol(scalar)
	if err != nil {
		return vectorView{}, fmt.Errorf("vector %s: %w", vec.Name, err)
	}

	units, err := newUnitViews(h, owner)
	if err != nil {
		return vectorView{}, fmt.Errorf("vector %s: %w", vec.Name, err)
	}

	return vectorView{
		header:   h,
		Name:     vec.Name,
		Scalar:   vec.Scalar,
		Recv:     receiver(vec.Name),
		Symbol:   symbol,
		UnitType: table.UnitTypeName(owner.Name),
		Units:    units,
	}, nil
}

func newUnitViews(h header, owner table.Quantity) ([]unitView, error) {
	views := make([]unitView, 0, len(owner.Units))
	for _, u := range owner.Units {
		init, err := unitInit(h, owner, u)
		if err != nil {
			return nil, fmt.Errorf("quantity %s: unit %s: %w", owner.Name, u.Name, err)
		}

		views = append(views, unitView{
			Name:   u.Name,
			Plural: u.PluralName(),
			Symbol: u.Symbol,
			Init:   init,
		})
	}

	return views, nil
}

// unitInit returns the expression constructing u: a prefixed copy of its base unit, or a new
// unit of the owner's type with an explicit scale factor.
func unitInit(h header, owner table.Quantity, u table.Unit) (string, error) {
	name := strconv.Quote(u.Name)
	symbol := strconv.Quote(u.Symbol)

	var b strings.Builder
	if u.Prefix != "" {
		if _, ok := owner.Unit(u.Base); !ok {
			return "", fmt.Errorf("base unit %q not found", u.Base)
		}
		fmt.Fprintf(&b, "%s.WithPrefix(%s.%s, %s, %s)", u.Base, h.Core, u.Prefix, name, symbol)
	} else {
		factor := floatLiteral(u.Factor)
		if u.Divisor != 0 {
			factor += " / " + floatLiteral(u.Divisor)
		}
		fmt.Fprintf(&b, "%s.NewUnit[%s](%s, %s, %s)", h.Core, owner.Name, name, symbol, factor)
	}

	if u.Bias != 0 {
		fmt.Fprintf(&b, ".WithBias(%s)", floatLiteral(u.Bias))
	}

	return b.String(), nil
}

func newDerivationView(h header, d table.Derivation) derivationView {
	names := operandNames(h, d.Operands)

	params := make([]string, len(names))
	terms := make([]string, len(names))
	for i, name := range names {
		params[i] = name + " " + d.Operands[i]
		terms[i] = name + ".magnitude"
	}

	op, noun := " * ", "product"
	if d.Op == table.OpDivide {
		op, noun = " / ", "quotient"
	}

	return derivationView{
		Name:   d.Name,
		Params: strings.Join(params, ", "),
		Doc:    "the " + noun + " of " + list(names),
		Expr:   strings.Join(terms, op),
	}
}

// operandNames derives parameter names from operand types, numbering repeated types.
func operandNames(h header, operands []string) []string {
	count := make(map[string]int, len(operands))
	for _, o := range operands {
		count[o]++
	}

	seen := make(map[string]int, len(operands))
	names := make([]string, len(operands))
	for i, o := range operands {
		name := lowerFirst(o)
		if token.IsKeyword(name) || name == h.Core || name == "math" {
			name += "Value"
		}

		if count[o] > 1 {
			seen[o]++
			name += strconv.Itoa(seen[o])
		}
		names[i] = name
	}

	return names
}

// list joins names as prose: "a", "a and b", "a, b and c".
func list(names []string) string {
	if len(names) < 2 {
		return strings.Join(names, "")
	}

	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}

// floatLiteral renders x as a Go floating-point literal in its shortest exact form.
func floatLiteral(x float64) string {
	s := strconv.FormatFloat(x, 'g', -1, 64)
	if strings.IndexFunc(s, func(r rune) bool { return r != '-' && !unicode.IsDigit(r) }) < 0 {
		s += ".0"
	}

	return s
}

// receiver returns the receiver name used for methods of the type name.
func receiver(name string) string {
	r := []rune(name)

	return string(unicode.ToLower(r[0]))
}

func lowerFirst(s string) string {
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])

	return string(r)
}

// fileName returns the generated file name of the type name, as in zz_generated_time_squared.go.
func fileName(prefix, name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}

	return prefix + b.String() + ".go"
}
