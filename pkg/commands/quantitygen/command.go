// Package quantitygen provides the commands of the quantity generator CLI.
package quantitygen

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/quantities/internal/codegen"
	"github.com/smartcontractkit/quantities/internal/codegen/config"
	"github.com/smartcontractkit/quantities/pkg/commands/flags"
	"github.com/smartcontractkit/quantities/pkg/logger"
)

// Config holds the configuration for the quantitygen commands.
type Config struct {
	// Logger is the logger to use for command output. Required.
	Logger logger.Logger

	// Deps holds optional dependencies that can be overridden.
	// If fields are nil, production defaults are used.
	Deps Deps
}

// Validate checks that all required configuration fields are set.
func (c Config) Validate() error {
	if c.Logger == nil {
		return errors.New("quantitygen.Config: missing required fields: Logger")
	}

	return nil
}

// deps returns the Deps with defaults applied.
func (c *Config) deps() *Deps {
	c.Deps.applyDefaults()

	return &c.Deps
}

// NewGenerateCommand creates the "generate" command.
func NewGenerateCommand(cfg Config) (*cobra.Command, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.deps()

	return newGenerateCmd(cfg), nil
}

// NewValidateCommand creates the "validate" command.
func NewValidateCommand(cfg Config) (*cobra.Command, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.deps()

	return newValidateCmd(cfg), nil
}

// NewListCommand creates the "list" command.
func NewListCommand(cfg Config) (*cobra.Command, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.deps()

	return newListCmd(cfg), nil
}

// newGenerator loads the config named by the --config flag, applies the --out flag when the
// command has one and returns a Generator for it.
func newGenerator(cmd *cobra.Command, cfg Config) (*codegen.Generator, *config.Config, error) {
	deps := cfg.deps()

	path := flags.MustString(cmd.Flags().GetString("config"))
	genCfg, err := deps.ConfigLoader(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	if f := cmd.Flags().Lookup("out"); f != nil && f.Value.String() != "" {
		genCfg.OutputDir = f.Value.String()
	}

	g, err := codegen.NewGenerator(cfg.Logger, genCfg,
		codegen.WithTableLoader(deps.TableLoader),
		codegen.WithWriter(deps.FileWriter),
	)
	if err != nil {
		return nil, nil, err
	}

	return g, genCfg, nil
}
