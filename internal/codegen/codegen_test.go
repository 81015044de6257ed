package codegen

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/smartcontractkit/quantities/internal/codegen/config"
	"github.com/smartcontractkit/quantities/internal/codegen/render"
	"github.com/smartcontractkit/quantities/internal/codegen/table"
	"github.com/smartcontractkit/quantities/pkg/logger"
)

const quantitiesYAML = `schema_version: 1.0.0
quantities:
  - name: Time
    additive: true
    cancels: true
    invert: Frequency
    units:
      - {name: Second, symbol: s, factor: 1}
      - {name: Minute, symbol: min, factor: 60}
  - name: Frequency
    additive: true
    invert: Time
    units:
      - {name: Hertz, plural: Hertz, symbol: Hz, factor: 1}
  - name: Force
    vector: Force3
    units:
      - {name: Newton, symbol: N, factor: 1}
vectors:
  - {name: Force3, scalar: Force}
`

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()
	fp := filepath.Join(dir, "quantities.yaml")
	require.NoError(t, os.WriteFile(fp, []byte(quantitiesYAML), 0o600))

	return &config.Config{
		Tables:           []string{fp},
		OutputDir:        filepath.Join(dir, "measures"),
		Package:          config.DefaultPackage,
		CoreImport:       config.DefaultCoreImport,
		FilePrefix:       config.DefaultFilePrefix,
		SchemaConstraint: config.DefaultSchemaConstraint,
	}
}

func Test_NewGenerator_InvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.Package = "not-a-package"

	_, err := NewGenerator(logger.Nop(), cfg)
	require.ErrorContains(t, err, `invalid generator config: package "not-a-package" is not a valid Go package name`)
}

func Test_Generator_Generate(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	lggr, logs := logger.TestObserved(t, zapcore.InfoLevel)

	g, err := NewGenerator(lggr, cfg)
	require.NoError(t, err)

	report, err := g.Generate(t.Context(), false)
	require.NoError(t, err)

	wantFiles := []string{
		"zz_generated_force.go",
		"zz_generated_frequency.go",
		"zz_generated_time.go",
		"zz_generated_force3.go",
	}
	assert.Equal(t, wantFiles, report.Result.Written)
	assert.Empty(t, report.Result.Unchanged)
	assert.False(t, report.DryRun)
	for _, name := range wantFiles {
		assert.FileExists(t, filepath.Join(cfg.OutputDir, name))
	}

	entries := logs.FilterMessage("Generated quantities").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(4), entries[0].ContextMap()["written"])
	assert.Equal(t, 1, logs.FilterMessage("Loaded quantity table").Len())

	// A second run finds every file up to date.
	report, err = g.Generate(t.Context(), false)
	require.NoError(t, err)
	assert.Empty(t, report.Result.Written)
	assert.Equal(t, wantFiles, report.Result.Unchanged)
}

func Test_Generator_Generate_DryRun(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	lggr, logs := logger.TestObserved(t, zapcore.InfoLevel)

	g, err := NewGenerator(lggr, cfg)
	require.NoError(t, err)

	report, err := g.Generate(t.Context(), true)
	require.NoError(t, err)

	assert.True(t, report.DryRun)
	assert.Len(t, report.Files, 4)
	assert.Equal(t, render.Result{}, report.Result)
	assert.NoDirExists(t, cfg.OutputDir)
	assert.Equal(t, 1, logs.FilterMessage("Dry run, no files written").Len())
}

func Test_Generator_Generate_Errors(t *testing.T) {
	t.Parallel()

	errWrite := errors.New("disk full")
	errLoad := errors.New("no such table")

	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name    string
		ctx     context.Context //nolint:containedctx // test input
		opts    []GeneratorOption
		wantErr error
		wantMsg string
	}{
		{
			name: "load failure",
			ctx:  context.Background(),
			opts: []GeneratorOption{WithTableLoader(func([]string, ...table.LoadOption) (*table.Table, error) {
				return nil, errLoad
			})},
			wantErr: errLoad,
		},
		{
			name: "write failure",
			ctx:  context.Background(),
			opts: []GeneratorOption{WithWriter(func(string, string, []render.File) (render.Result, error) {
				return render.Result{}, errWrite
			})},
			wantErr: errWrite,
			wantMsg: "failed to write generated files",
		},
		{
			name:    "canceled",
			ctx:     canceled,
			wantErr: context.Canceled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g, err := NewGenerator(logger.Test(t), testConfig(t), tt.opts...)
			require.NoError(t, err)

			_, err = g.Generate(tt.ctx, false)
			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.ErrorContains(t, err, tt.wantMsg)
			}
		})
	}
}

func Test_Generator_Load_Filters(t *testing.T) {
	t.Parallel()

	g, err := NewGenerator(logger.Nop(), testConfig(t))
	require.NoError(t, err)

	got, err := g.Load(table.AdditiveFilter())
	require.NoError(t, err)

	names := make([]string, 0, 2)
	for _, q := range got.Quantities() {
		names = append(names, q.Name)
	}
	assert.Equal(t, []string{"Frequency", "Time"}, names)
	assert.Empty(t, got.Vectors())
}
