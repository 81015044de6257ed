package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fileYAML = `tables:
  - quantities.yaml
  - /etc/quantities/extra.toml
output_dir: out
package: units
`

// envVars is the environment variables that used to set the config.
var envVars = map[string]string{
	"QUANTITYGEN_TABLES":            "a.yaml,b.toml",
	"QUANTITYGEN_OUTPUT_DIR":        "/tmp/generated",
	"QUANTITYGEN_PACKAGE":           "physics",
	"QUANTITYGEN_CORE_IMPORT":       "example.com/core",
	"QUANTITYGEN_FILE_PREFIX":       "gen_",
	"QUANTITYGEN_SCHEMA_CONSTRAINT": "~1.2.0",
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	fp := filepath.Join(t.TempDir(), "quantitygen.yaml")
	require.NoError(t, os.WriteFile(fp, []byte(content), 0o600))

	return fp
}

func Test_Load_File(t *testing.T) {
	t.Parallel()

	fp := writeConfig(t, fileYAML)
	dir := filepath.Dir(fp)

	got, err := Load(fp)
	require.NoError(t, err)

	assert.Equal(t, &Config{
		Tables:           []string{filepath.Join(dir, "quantities.yaml"), "/etc/quantities/extra.toml"},
		OutputDir:        filepath.Join(dir, "out"),
		Package:          "units",
		CoreImport:       DefaultCoreImport,
		FilePrefix:       DefaultFilePrefix,
		SchemaConstraint: DefaultSchemaConstraint,
	}, got)
	require.NoError(t, got.Validate())
}

func Test_Load_InvalidFile(t *testing.T) {
	t.Parallel()

	fp := writeConfig(t, "tables: [unclosed\n")

	_, err := Load(fp)
	require.Error(t, err)
}

func Test_Load_EnvOverride(t *testing.T) { //nolint:paralleltest // see comment in setupEnvVars
	setupEnvVars(t, map[string]string{"QUANTITYGEN_PACKAGE": "physics"})

	got, err := Load(writeConfig(t, fileYAML))
	require.NoError(t, err)

	assert.Equal(t, "physics", got.Package)
	assert.Len(t, got.Tables, 2)
}

func Test_Load_MissingFile(t *testing.T) { //nolint:paralleltest // see comment in setupEnvVars
	setupEnvVars(t, envVars)

	got, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, []string{"a.yaml", "b.toml"}, got.Tables)
	assert.Equal(t, "/tmp/generated", got.OutputDir)
}

func Test_LoadEnv(t *testing.T) { //nolint:paralleltest // see comment in setupEnvVars
	setupEnvVars(t, envVars)

	got, err := LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, &Config{
		Tables:           []string{"a.yaml", "b.toml"},
		OutputDir:        "/tmp/generated",
		Package:          "physics",
		CoreImport:       "example.com/core",
		FilePrefix:       "gen_",
		SchemaConstraint: "~1.2.0",
	}, got)
}

func Test_Config_Validate(t *testing.T) {
	t.Parallel()

	valid := func() *Config {
		return &Config{
			Tables:           []string{"quantities.yaml"},
			OutputDir:        ".",
			Package:          "measures",
			CoreImport:       DefaultCoreImport,
			FilePrefix:       DefaultFilePrefix,
			SchemaConstraint: DefaultSchemaConstraint,
		}
	}

	tests := []struct {
		name    string
		give    func(*Config)
		wantErr string
	}{
		{
			name: "valid",
			give: func(*Config) {},
		},
		{
			name:    "no tables",
			give:    func(c *Config) { c.Tables = nil },
			wantErr: "at least one table is required",
		},
		{
			name:    "no output dir",
			give:    func(c *Config) { c.OutputDir = "" },
			wantErr: "output_dir is required",
		},
		{
			name:    "invalid package",
			give:    func(c *Config) { c.Package = "my-measures" },
			wantErr: `package "my-measures" is not a valid Go package name`,
		},
		{
			name:    "no core import",
			give:    func(c *Config) { c.CoreImport = "" },
			wantErr: "core_import is required",
		},
		{
			name:    "no file prefix",
			give:    func(c *Config) { c.FilePrefix = "" },
			wantErr: "file_prefix is required",
		},
		{
			name:    "invalid schema constraint",
			give:    func(c *Config) { c.SchemaConstraint = "one point oh" },
			wantErr: `schema_constraint "one point oh"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			tt.give(cfg)

			err := cfg.Validate()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorContains(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// setupEnvVars sets up the environment variables for the test.
//
// CAUTION: Because this function uses t.Setenv which affects the entire process, tests which call
// this function cannot be run in parallel.
func setupEnvVars(t *testing.T, envVars map[string]string) {
	t.Helper()

	for key, value := range envVars {
		t.Setenv(key, value)
	}
}
