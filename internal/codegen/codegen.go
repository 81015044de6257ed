// Package codegen loads quantity tables and generates the Go source of their quantities.
package codegen

import (
	"context"
	"fmt"

	"github.com/smartcontractkit/quantities/internal/codegen/config"
	"github.com/smartcontractkit/quantities/internal/codegen/render"
	"github.com/smartcontractkit/quantities/internal/codegen/table"
	"github.com/smartcontractkit/quantities/pkg/logger"
)

// TableLoaderFunc loads and validates the tables at paths.
type TableLoaderFunc func(paths []string, opts ...table.LoadOption) (*table.Table, error)

// WriterFunc writes rendered files into dir, pruning stale files with the prefix.
type WriterFunc func(dir, prefix string, files []render.File) (render.Result, error)

// Generator renders the tables named by a Config.
type Generator struct {
	lggr     logger.Logger
	cfg      *config.Config
	renderer *render.Renderer

	loadTable TableLoaderFunc
	write     WriterFunc
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithTableLoader replaces table.Load.
func WithTableLoader(fn TableLoaderFunc) GeneratorOption {
	return func(g *Generator) {
		if fn != nil {
			g.loadTable = fn
		}
	}
}

// WithWriter replaces render.Write.
func WithWriter(fn WriterFunc) GeneratorOption {
	return func(g *Generator) {
		if fn != nil {
			g.write = fn
		}
	}
}

// NewGenerator validates cfg and returns a Generator for it.
func NewGenerator(lggr logger.Logger, cfg *config.Config, opts ...GeneratorOption) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator config: %w", err)
	}

	renderer, err := render.NewRenderer(cfg.Package, cfg.CoreImport, cfg.FilePrefix)
	if err != nil {
		return nil, err
	}

	g := &Generator{
		lggr:      lggr,
		cfg:       cfg,
		renderer:  renderer,
		loadTable: table.Load,
		write:     render.Write,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Load loads and validates the configured tables, keeping the quantities accepted by filters.
func (g *Generator) Load(filters ...table.QuantityFilter) (*table.Table, error) {
	t, err := g.loadTable(g.cfg.Tables,
		table.WithSchemaConstraint(g.cfg.SchemaConstraint),
		table.WithFilters(filters...),
	)
	if err != nil {
		return nil, err
	}

	g.lggr.Infow("Loaded quantity table",
		"tables", g.cfg.Tables,
		"quantities", len(t.Quantities()),
		"vectors", len(t.Vectors()),
	)

	return t, nil
}

// Report summarises a generation run.
type Report struct {
	// Files are the rendered files, in the order they were rendered.
	Files []render.File
	// Result is the outcome of writing the files. It is empty for a dry run.
	Result render.Result
	// DryRun reports whether the files were rendered without being written.
	DryRun bool
}

// Generate renders every quantity and vector of the configured tables and writes them into the
// output directory. With dryRun set the files are rendered but not written.
func (g *Generator) Generate(ctx context.Context, dryRun bool) (Report, error) {
	t, err := g.Load()
	if err != nil {
		return Report{}, err
	}

	if err = ctx.Err(); err != nil {
		return Report{}, err
	}

	files, err := g.renderer.Render(t)
	if err != nil {
		return Report{}, fmt.Errorf("failed to render quantity table: %w", err)
	}

	for _, f := range files {
		g.lggr.Debugw("Rendered file", "file", f.Name, "bytes", len(f.Content))
	}

	report := Report{Files: files, DryRun: dryRun}
	if dryRun {
		g.lggr.Infow("Dry run, no files written", "files", len(files))

		return report, nil
	}

	if err = ctx.Err(); err != nil {
		return Report{}, err
	}

	report.Result, err = g.write(g.cfg.OutputDir, g.cfg.FilePrefix, files)
	if err != nil {
		return Report{}, fmt.Errorf("failed to write generated files to %s: %w", g.cfg.OutputDir, err)
	}

	for _, name := range report.Result.Removed {
		g.lggr.Warnw("Removed stale generated file", "file", name)
	}

	g.lggr.Infow("Generated quantities",
		"dir", g.cfg.OutputDir,
		"written", len(report.Result.Written),
		"unchanged", len(report.Result.Unchanged),
		"removed", len(report.Result.Removed),
	)

	return report, nil
}
