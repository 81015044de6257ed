// Package commands provides the commands of the quantitygen CLI.
//
// There are two ways to use commands from this package:
//
// 1. Via the Commands factory (recommended for most use cases):
//
//	cmds := commands.New(lggr)
//	generateCmd, err := cmds.Generate()
//	if err != nil {
//	    return err
//	}
//	app.AddCommand(generateCmd)
//
// 2. Via direct package imports (for advanced DI/testing):
//
//	import "github.com/smartcontractkit/quantities/pkg/commands/quantitygen"
//
//	cmd, err := quantitygen.NewGenerateCommand(quantitygen.Config{
//	    Logger: lggr,
//	    Deps:   quantitygen.Deps{...},  // inject fakes for testing
//	})
package commands

import (
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/quantities/pkg/commands/quantitygen"
	"github.com/smartcontractkit/quantities/pkg/logger"
)

// Commands provides a factory for creating CLI commands with shared configuration.
// This allows setting the logger once and reusing it across all commands.
type Commands struct {
	lggr logger.Logger
}

// New creates a new Commands factory with the given logger.
// The logger will be shared across all commands created by this factory.
func New(lggr logger.Logger) *Commands {
	return &Commands{lggr: lggr}
}

// Generate creates the command generating the quantity types.
func (c *Commands) Generate() (*cobra.Command, error) {
	return quantitygen.NewGenerateCommand(quantitygen.Config{Logger: c.named("generate")})
}

// Validate creates the command validating the quantity tables.
func (c *Commands) Validate() (*cobra.Command, error) {
	return quantitygen.NewValidateCommand(quantitygen.Config{Logger: c.named("validate")})
}

// List creates the command listing the quantities of the tables.
func (c *Commands) List() (*cobra.Command, error) {
	return quantitygen.NewListCommand(quantitygen.Config{Logger: c.named("list")})
}

// named returns the shared logger named for a command, or nil when no logger was given.
func (c *Commands) named(name string) logger.Logger {
	if c.lggr == nil {
		return nil
	}

	return c.lggr.Named(name)
}

// All creates every command of the CLI.
func (c *Commands) All() ([]*cobra.Command, error) {
	ctors := []func() (*cobra.Command, error){c.Generate, c.Validate, c.List}

	cmds := make([]*cobra.Command, 0, len(ctors))
	for _, ctor := range ctors {
		cmd, err := ctor()
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}

	return cmds, nil
}
