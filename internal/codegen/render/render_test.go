package render

import (
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/quantities/internal/codegen/table"
)

const coreImport = "github.com/smartcontractkit/quantities/quantity"

func testTable() *table.Table {
	return table.NewTable(
		[]table.Quantity{
			{
				Name:     "Time",
				Additive: true,
				Cancels:  true,
				Invert:   "Frequency",
				Units: []table.Unit{
					{Name: "Second", Symbol: "s", Factor: 1},
					{Name: "Minute", Symbol: "min", Factor: 60},
					{Name: "Millisecond", Symbol: "ms", Prefix: "Milli", Base: "Second"},
				},
			},
			{
				Name:   "Frequency",
				Invert: "Time",
				Units:  []table.Unit{{Name: "Hertz", Plural: "Hertz", Symbol: "Hz", Factor: 1}},
			},
			{
				Name:   "Length",
				Square: "Area",
				Units: []table.Unit{
					{Name: "Metre", Symbol: "m", Factor: 1},
					{Name: "Foot", Plural: "Feet", Symbol: "ft", Factor: 0.3048},
				},
			},
			{
				Name:       "Area",
				Symbol:     "m²",
				SquareRoot: "Length",
				Units:      []table.Unit{{Name: "SquareMetre", Symbol: "m²", Factor: 1}},
				Derivations: []table.Derivation{
					{Name: "AreaFromLengths", Op: table.OpMultiply, Operands: []string{"Length", "Length"}},
				},
			},
			{
				Name: "Temperature",
				Units: []table.Unit{
					{Name: "Kelvin", Symbol: "K", Factor: 1},
					{Name: "DegreeCelsius", Plural: "DegreesCelsius", Symbol: "°C", Factor: 1, Bias: 273.15},
					{Name: "DegreeFahrenheit", Plural: "DegreesFahrenheit", Symbol: "°F", Factor: 5, Divisor: 9, Bias: 459.67},
				},
			},
			{
				Name:   "Force",
				Vector: "Force3",
				Units:  []table.Unit{{Name: "Newton", Symbol: "N", Factor: 1}},
			},
			{
				Name:   "Weight",
				UnitOf: "Force",
				Derivations: []table.Derivation{
					{Name: "WeightFromForceTime", Op: table.OpDivide, Operands: []string{"Force", "Time"}},
				},
				Associated: []string{"Force"},
			},
		},
		[]table.Vector{{Name: "Force3", Scalar: "Force"}},
	)
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()

	r, err := NewRenderer("measures", coreImport, "zz_generated_")
	require.NoError(t, err)

	return r
}

func renderQuantity(t *testing.T, name string) string {
	t.Helper()

	tbl := testTable()
	q, err := tbl.Quantity(name)
	require.NoError(t, err)

	f, err := newTestRenderer(t).RenderQuantity(tbl, q)
	require.NoError(t, err)

	return string(f.Content)
}

func Test_Renderer_Render(t *testing.T) {
	t.Parallel()

	files, err := newTestRenderer(t).Render(testTable())
	require.NoError(t, err)

	names := make([]string, 0, len(files))
	fset := token.NewFileSet()
	for _, f := range files {
		names = append(names, f.Name)

		_, err := parser.ParseFile(fset, f.Name, f.Content, parser.AllErrors)
		require.NoError(t, err, f.Name)
	}

	assert.Equal(t, []string{
		"zz_generated_area.go",
		"zz_generated_force.go",
		"zz_generated_frequency.go",
		"zz_generated_length.go",
		"zz_generated_temperature.go",
		"zz_generated_time.go",
		"zz_generated_weight.go",
		"zz_generated_force3.go",
	}, names)
}

func Test_Renderer_RenderQuantity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    string
		want    []string
		notWant []string
	}{
		{
			name: "unit owner with capabilities",
			give: "Time",
			want: []string{
				"// Code generated by quantitygen. DO NOT EDIT.",
				"package measures",
				"type Time struct {\n\tmagnitude float64\n}",
				"type TimeUnit = quantity.Unit[Time]",
				`quantity.NewUnit[Time]("Second", "s", 1.0)`,
				`quantity.NewUnit[Time]("Minute", "min", 60.0)`,
				`Second.WithPrefix(quantity.Milli, "Millisecond", "ms")`,
				"_ quantity.Additive[Time]",
				"_ quantity.Invertible[Frequency]",
				"OneTimeMinute",
				"func NewTime(magnitude float64, unit TimeUnit) Time {\n\treturn Time{unit.ToSI(magnitude)}\n}",
				"func FrequencyFromTime(t Time) Frequency {\n\treturn Frequency{1 / t.magnitude}\n}",
				"func (t Time) Invert() Frequency {\n\treturn FrequencyFromTime(t)\n}",
				"func (t Time) Minutes() quantity.Scalar {\n\treturn t.InUnit(Minute)\n}",
				"func (t Time) Add(term Time) Time {\n\treturn Time{t.magnitude + term.magnitude}\n}",
				"func (t Time) DivideTime(divisor Time) quantity.Scalar {",
				"func (t Time) IsNegativeInfinity() bool {\n\treturn quantity.IsNegativeInfinity(t)\n}",
				"func (t Time) LessOrEqual(other Time) bool {\n\treturn t.magnitude <= other.magnitude\n}",
				"return quantity.Format(t, \"s\")",
				"func (t Time) MultiplyQuantity(factor quantity.Measure) (quantity.Unhandled, error) {\n\treturn quantity.Product(t, factor)\n}",
				"func (t Time) DivideQuantity(divisor quantity.Measure) (quantity.Unhandled, error) {\n\treturn quantity.Quotient(t, divisor)\n}",
			},
			notWant: []string{"MultiplyVector3"},
		},
		{
			name: "scaling only with derivation",
			give: "Area",
			want: []string{
				"func AreaFromLengths(length1 Length, length2 Length) Area {\n\treturn Area{length1.magnitude * length2.magnitude}\n}",
				"func LengthFromArea(a Area) Length {\n\treturn Length{math.Sqrt(a.magnitude)}\n}",
				"_ quantity.SquareRootable[Length]",
				"return quantity.Format(a, \"m²\")",
			},
			notWant: []string{"func (a Area) Add(", "func (a Area) DivideArea("},
		},
		{
			name: "biased units",
			give: "Temperature",
			want: []string{
				`quantity.NewUnit[Temperature]("DegreeCelsius", "°C", 1.0).WithBias(273.15)`,
				`quantity.NewUnit[Temperature]("DegreeFahrenheit", "°F", 5.0/9.0).WithBias(459.67)`,
				"func (t Temperature) DegreesCelsius() quantity.Scalar {",
			},
		},
		{
			name: "square",
			give: "Length",
			want: []string{
				"func AreaFromLength(l Length) Area {\n\treturn Area{math.Pow(l.magnitude, 2)}\n}",
				"func (l Length) Feet() quantity.Scalar {",
			},
		},
		{
			name: "vector liftable",
			give: "Force",
			want: []string{
				"_ quantity.Vector3Liftable[Force3]",
				"func (f Force) MultiplyVector3(factor quantity.Vector3) Force3 {",
				"func (f Force) MultiplyScalarComponents(x, y, z quantity.Scalar) Force3 {",
			},
		},
		{
			name: "shared units",
			give: "Weight",
			want: []string{
				"func NewWeight(magnitude float64, unit ForceUnit) Weight {",
				"OneWeightNewton",
				"func (w Weight) Newtons() quantity.Scalar {",
				"func WeightFromForceTime(force Force, time Time) Weight {\n\treturn Weight{force.magnitude / time.magnitude}\n}",
				"func (w Weight) AsForce() Force {\n\treturn Force{w.magnitude}\n}",
			},
			notWant: []string{"type WeightUnit", "quantity.NewUnit[Force]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := renderQuantity(t, tt.give)
			for _, want := range tt.want {
				assert.Contains(t, got, want)
			}
			for _, notWant := range tt.notWant {
				assert.NotContains(t, got, notWant)
			}
		})
	}
}

func Test_Renderer_RenderVector(t *testing.T) {
	t.Parallel()

	tbl := testTable()
	v, err := tbl.Vector("Force3")
	require.NoError(t, err)

	f, err := newTestRenderer(t).RenderVector(tbl, v)
	require.NoError(t, err)

	got := string(f.Content)
	for _, want := range []string{
		"type Force3 struct {\n\tx, y, z float64\n}",
		"var _ quantity.Vector3Measure = Force3{}",
		"func NewForce3(x, y, z float64, unit ForceUnit) Force3 {",
		"func Force3FromComponents(x, y, z Force) Force3 {",
		"func (f Force3) X() Force {\n\treturn Force{f.x}\n}",
		"func (f Force3) Newtons() quantity.Vector3 {",
		"func (f Force3) Magnitude() Force {",
		"func (f Force3) MultiplyUnhandled(factor quantity.Unhandled) quantity.Unhandled3 {",
		"func (f Force3) Cross(other quantity.Vector3) Force3 {",
		"func (f Force3) RemainderScalar(divisor quantity.Scalar) Force3 {\n\treturn f.Remainder(divisor.Magnitude())\n}",
		"return quantity.FormatVector(f, \"N\")",
	} {
		assert.Contains(t, got, want)
	}
	assert.Equal(t, "zz_generated_force3.go", f.Name)
}

func Test_Renderer_RenderVector_UnknownScalar(t *testing.T) {
	t.Parallel()

	tbl := table.NewTable(nil, nil)

	_, err := newTestRenderer(t).RenderVector(tbl, table.Vector{Name: "Force3", Scalar: "Force"})
	require.ErrorContains(t, err, "vector Force3: quantity Force not found in table")
}

func Test_floatLiteral(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give float64
		want string
	}{
		{give: 1, want: "1.0"},
		{give: -60, want: "-60.0"},
		{give: 0.3048, want: "0.3048"},
		{give: 1e6, want: "1e+06"},
		{give: 1.5e-5, want: "1.5e-05"},
		{give: 149597870700, want: "1.495978707e+11"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, floatLiteral(tt.give))
		})
	}
}

func Test_fileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give string
		want string
	}{
		{give: "Time", want: "zz_generated_time.go"},
		{give: "TimeSquared", want: "zz_generated_time_squared.go"},
		{give: "Force3", want: "zz_generated_force3.go"},
		{give: "SpecificAngularMomentum", want: "zz_generated_specific_angular_momentum.go"},
	}

	for _, tt := range tests {
		t.Run(tt.give, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, fileName("zz_generated_", tt.give))
		})
	}
}

func Test_operandNames(t *testing.T) {
	t.Parallel()

	h := newHeader("measures", coreImport)

	tests := []struct {
		name string
		give []string
		want []string
	}{
		{name: "distinct", give: []string{"Distance", "Time"}, want: []string{"distance", "time"}},
		{name: "repeated", give: []string{"Length", "Length", "Time"}, want: []string{"length1", "length2", "time"}},
		{name: "keyword", give: []string{"Type", "Range"}, want: []string{"typeValue", "rangeValue"}},
		{name: "core package", give: []string{"Quantity", "Time"}, want: []string{"quantityValue", "time"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, operandNames(h, tt.give))
		})
	}
}
