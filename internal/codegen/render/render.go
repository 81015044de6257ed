// Package render turns a quantity table into Go source files, one per quantity and vector.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"text/template"

	"github.com/smartcontractkit/quantities/internal/codegen/table"
)

//go:embed templates/*
var templates embed.FS

const (
	scalarTemplate = "scalar.go.tmpl"
	vectorTemplate = "vector.go.tmpl"
)

// File is a rendered source file.
type File struct {
	Name    string // base name, including the file prefix
	Content []byte // gofmt-formatted source
}

// Renderer renders the quantities and vectors of a table.
type Renderer struct {
	header
	filePrefix string
	tmpls      *template.Template
}

// NewRenderer parses the embedded templates. pkg is the package clause of the generated files,
// coreImport the import path of the core quantity package and filePrefix the prefix of every
// generated file name.
func NewRenderer(pkg, coreImport, filePrefix string) (*Renderer, error) {
	tmpls, err := template.New("").Funcs(funcs).ParseFS(templates, "templates/*")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Renderer{
		header:     newHeader(pkg, coreImport),
		filePrefix: filePrefix,
		tmpls:      tmpls,
	}, nil
}

// Render renders every quantity and vector of t. t is expected to be valid.
func (r *Renderer) Render(t *table.Table) ([]File, error) {
	files := make([]File, 0, t.Len())
	for _, q := range t.Quantities() {
		f, err := r.RenderQuantity(t, q)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}

	for _, v := range t.Vectors() {
		f, err := r.RenderVector(t, v)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}

	return files, nil
}

// RenderQuantity renders the file declaring q.
func (r *Renderer) RenderQuantity(t *table.Table, q table.Quantity) (File, error) {
	view, err := newQuantityView(r.header, t, q)
	if err != nil {
		return File{}, fmt.Errorf("quantity %s: %w", q.Name, err)
	}

	return r.render(scalarTemplate, q.Name, view)
}

// RenderVector renders the file declaring v.
func (r *Renderer) RenderVector(t *table.Table, v table.Vector) (File, error) {
	view, err := newVectorView(r.header, t, v)
	if err != nil {
		return File{}, err
	}

	return r.render(vectorTemplate, v.Name, view)
}

func (r *Renderer) render(tmpl, name string, view any) (File, error) {
	var b bytes.Buffer
	if err := r.tmpls.ExecuteTemplate(&b, tmpl, view); err != nil {
		return File{}, fmt.Errorf("failed to render %s: %w", name, err)
	}

	src, err := format.Source(b.Bytes())
	if err != nil {
		return File{}, fmt.Errorf("failed to format %s: %w", name, err)
	}

	return File{Name: fileName(r.filePrefix, name), Content: src}, nil
}

type comparison struct {
	Name string
	Doc  string
	Op   string
}

var funcs = template.FuncMap{
	"zero": table.ZeroName,
	"one":  table.OneName,
	"predicates": func() []string {
		return []string{
			"IsNaN", "IsZero", "IsPositive", "IsNegative",
			"IsFinite", "IsInfinite", "IsPositiveInfinity", "IsNegativeInfinity",
		}
	},
	"comparisons": func() []comparison {
		return []comparison{
			{Name: "Less", Doc: "is less than", Op: "<"},
			{Name: "Greater", Doc: "is greater than", Op: ">"},
			{Name: "LessOrEqual", Doc: "is less than or equal to", Op: "<="},
			{Name: "GreaterOrEqual", Doc: "is greater than or equal to", Op: ">="},
		}
	},
}
