package quantitygen

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

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
    invert: Time
    units:
      - {name: Hertz, plural: Hertz, symbol: Hz, factor: 1}
  - name: Force
    associated: [Weight]
    units:
      - {name: Newton, symbol: N, factor: 1}
  - name: Weight
    unit_of: Force
    associated: [Force]
`

const configYAML = `tables:
  - quantities.yaml
output_dir: measures
`

// writeFixtures writes a config and its table into a temporary directory and returns the
// config path.
func writeFixtures(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quantities.yaml"), []byte(quantitiesYAML), 0o600))

	fp := filepath.Join(dir, "quantitygen.yaml")
	require.NoError(t, os.WriteFile(fp, []byte(configYAML), 0o600))

	return fp
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) error {
	t.Helper()

	cmd.SetArgs(args)

	return cmd.Execute()
}

func Test_Generate(t *testing.T) {
	t.Parallel()

	fp := writeFixtures(t)

	cmd, err := NewGenerateCommand(Config{Logger: logger.Test(t)})
	require.NoError(t, err)

	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)

	require.NoError(t, execute(t, cmd, "-c", fp))

	outDir := filepath.Join(filepath.Dir(fp), "measures")
	assert.Contains(t, out.String(), "Generated 4 files in "+outDir+": 4 written, 0 unchanged, 0 removed")
	assert.FileExists(t, filepath.Join(outDir, "zz_generated_weight.go"))
}

func Test_Generate_OutFlag(t *testing.T) {
	t.Parallel()

	fp := writeFixtures(t)
	outDir := filepath.Join(t.TempDir(), "elsewhere")

	var writtenTo string
	cmd, err := NewGenerateCommand(Config{
		Logger: logger.Nop(),
		Deps: Deps{
			FileWriter: func(dir, _ string, files []render.File) (render.Result, error) {
				writtenTo = dir
				return render.Result{Written: []string{files[0].Name}}, nil
			},
		},
	})
	require.NoError(t, err)
	cmd.SetOut(new(bytes.Buffer))

	require.NoError(t, execute(t, cmd, "-c", fp, "-o", outDir))
	assert.Equal(t, outDir, writtenTo)
}

func Test_Generate_DryRun(t *testing.T) {
	t.Parallel()

	fp := writeFixtures(t)

	cmd, err := NewGenerateCommand(Config{
		Logger: logger.Nop(),
		Deps: Deps{
			FileWriter: func(string, string, []render.File) (render.Result, error) {
				t.Fatal("FileWriter should not be called on a dry run")
				return render.Result{}, nil
			},
		},
	})
	require.NoError(t, err)

	out := new(bytes.Buffer)
	cmd.SetOut(out)

	require.NoError(t, execute(t, cmd, "-c", fp, "--dry-run"))
	assert.Contains(t, out.String(), "zz_generated_time.go (")
	assert.NoDirExists(t, filepath.Join(filepath.Dir(fp), "measures"))
}

func Test_Generate_ConfigLoadError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("permission denied")

	cmd, err := NewGenerateCommand(Config{
		Logger: logger.Nop(),
		Deps: Deps{
			ConfigLoader: func(string) (*config.Config, error) {
				return nil, wantErr
			},
		},
	})
	require.NoError(t, err)
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	err = execute(t, cmd, "-c", "quantitygen.yaml")
	require.ErrorIs(t, err, wantErr)
	assert.ErrorContains(t, err, "failed to load config quantitygen.yaml")
}

func Test_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		loader  func([]string, ...table.LoadOption) (*table.Table, error)
		want    string
		wantErr string
	}{
		{
			name: "valid",
			want: "Quantity table is valid: 4 quantities, 0 vectors",
		},
		{
			name: "invalid",
			loader: func([]string, ...table.LoadOption) (*table.Table, error) {
				return nil, errors.New("failed to validate quantity table: quantity Time: at least one unit is required")
			},
			wantErr: "at least one unit is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd, err := NewValidateCommand(Config{Logger: logger.Nop(), Deps: Deps{TableLoader: tt.loader}})
			require.NoError(t, err)

			out := new(bytes.Buffer)
			cmd.SetOut(out)
			cmd.SetErr(out)

			err = execute(t, cmd, "-c", writeFixtures(t))
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func Test_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{
			name: "all",
			want: []string{"QUANTITY", "Frequency", "Time", "additive, cancels, invert Frequency", "of Force", "as Weight"},
		},
		{
			name:    "additive",
			args:    []string{"--additive"},
			want:    []string{"Time"},
			notWant: []string{"Hz", "Weight"},
		},
		{
			name:    "names",
			args:    []string{"--name", "Force,Weight"},
			want:    []string{"Force", "Weight"},
			notWant: []string{"Frequency"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd, err := NewListCommand(Config{Logger: logger.Nop()})
			require.NoError(t, err)

			out := new(bytes.Buffer)
			cmd.SetOut(out)

			require.NoError(t, execute(t, cmd, append([]string{"-c", writeFixtures(t)}, tt.args...)...))

			for _, want := range tt.want {
				assert.Contains(t, out.String(), want)
			}
			for _, notWant := range tt.notWant {
				assert.NotContains(t, out.String(), notWant)
			}
		})
	}
}

func Test_List_YAML(t *testing.T) {
	t.Parallel()

	cmd, err := NewListCommand(Config{Logger: logger.Nop()})
	require.NoError(t, err)

	out := new(bytes.Buffer)
	cmd.SetOut(out)

	require.NoError(t, execute(t, cmd, "-c", writeFixtures(t), "--yaml"))

	var m table.Manifest
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &m))
	assert.Equal(t, table.SchemaVersion, m.SchemaVersion)
	assert.Len(t, m.Quantities, 4)
	assert.Equal(t, "Force", m.Quantities[0].Name)
}
