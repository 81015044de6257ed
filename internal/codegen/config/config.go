package config

import (
	"errors"
	"fmt"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/viper"
)

// Defaults applied when neither the config file nor the environment sets a value.
const (
	DefaultOutputDir        = "."
	DefaultPackage          = "measures"
	DefaultCoreImport       = "github.com/smartcontractkit/quantities/quantity"
	DefaultFilePrefix       = "zz_generated_"
	DefaultSchemaConstraint = "^1.0.0"
)

// Config is the configuration of the quantity generator.
type Config struct {
	Tables           []string `mapstructure:"tables" yaml:"tables"`                       // Paths of the quantity tables, merged in order
	OutputDir        string   `mapstructure:"output_dir" yaml:"output_dir"`               // Directory the generated files are written to
	Package          string   `mapstructure:"package" yaml:"package"`                     // Package clause of the generated files
	CoreImport       string   `mapstructure:"core_import" yaml:"core_import"`             // Import path of the quantity core package
	FilePrefix       string   `mapstructure:"file_prefix" yaml:"file_prefix"`             // Prefix of every generated file name
	SchemaConstraint string   `mapstructure:"schema_constraint" yaml:"schema_constraint"` // Accepted range of table schema versions
}

// Validate ensures that the configuration can drive a generation run.
func (c *Config) Validate() error {
	if len(c.Tables) == 0 {
		return errors.New("at least one table is required")
	}

	if c.OutputDir == "" {
		return errors.New("output_dir is required")
	}

	if !token.IsIdentifier(c.Package) {
		return fmt.Errorf("package %q is not a valid Go package name", c.Package)
	}

	if c.CoreImport == "" {
		return errors.New("core_import is required")
	}

	if c.FilePrefix == "" {
		return errors.New("file_prefix is required")
	}

	if _, err := semver.NewConstraint(c.SchemaConstraint); err != nil {
		return fmt.Errorf("schema_constraint %q: %w", c.SchemaConstraint, err)
	}

	return nil
}

// Load loads the config from the file path, falling back to env vars if the file does not exist.
// If the file exists, any env vars that are set will override the values loaded from the file,
// and relative table and output paths are resolved against the directory of the file.
func Load(filePath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(filePath)

	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	// If the config file exists, we continue to read it, otherwise we fallback to using
	// environment variables
	fileRead := false
	if _, err := os.Stat(filePath); !errors.Is(err, fs.ErrNotExist) {
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
		fileRead = true
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if fileRead {
		cfg.resolvePaths(filepath.Dir(filePath))
	}

	return cfg, nil
}

// LoadEnv loads the config from the environment variables.
func LoadEnv() (*Config, error) {
	v := newViper()

	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	cfg := &Config{}
	err := v.Unmarshal(cfg)

	return cfg, err
}

// resolvePaths makes relative table and output paths relative to dir.
func (c *Config) resolvePaths(dir string) {
	for i, table := range c.Tables {
		if !filepath.IsAbs(table) {
			c.Tables[i] = filepath.Join(dir, table)
		}
	}

	if !filepath.IsAbs(c.OutputDir) {
		c.OutputDir = filepath.Join(dir, c.OutputDir)
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("output_dir", DefaultOutputDir)
	v.SetDefault("package", DefaultPackage)
	v.SetDefault("core_import", DefaultCoreImport)
	v.SetDefault("file_prefix", DefaultFilePrefix)
	v.SetDefault("schema_constraint", DefaultSchemaConstraint)

	return v
}

var (
	// envBindings defines how environment variables map to configuration keys used by Viper.
	// Each entry maps a config key to the environment variables that can provide its value,
	// checked in order.
	envBindings = map[string][]string{
		"tables":            {"QUANTITYGEN_TABLES"},
		"output_dir":        {"QUANTITYGEN_OUTPUT_DIR"},
		"package":           {"QUANTITYGEN_PACKAGE"},
		"core_import":       {"QUANTITYGEN_CORE_IMPORT"},
		"file_prefix":       {"QUANTITYGEN_FILE_PREFIX"},
		"schema_constraint": {"QUANTITYGEN_SCHEMA_CONSTRAINT"},
	}
)

// bindEnvs binds the environment variables to the viper instance.
func bindEnvs(v *viper.Viper) error {
	for key, envs := range envBindings {
		// Prepend the env key to the start of the arguments
		inputs := slices.Insert(slices.Clone(envs), 0, key)

		if err := v.BindEnv(inputs...); err != nil {
			return err
		}
	}

	return nil
}
