package quantitygen

import (
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/quantities/pkg/commands/flags"
)

// newValidateCmd creates the "validate" subcommand.
func newValidateCmd(cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the quantity tables without generating code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, _, err := newGenerator(cmd, cfg)
			if err != nil {
				return err
			}

			t, err := g.Load()
			if err != nil {
				return err
			}

			cmd.Printf("Quantity table is valid: %d quantities, %d vectors\n", len(t.Quantities()), len(t.Vectors()))

			return nil
		},
	}

	flags.Config(cmd)

	return cmd
}
