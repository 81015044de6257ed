package quantitygen

import (
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/quantities/pkg/commands/flags"
	"github.com/smartcontractkit/quantities/pkg/commands/text"
)

var (
	generateShort = "Generate the quantity types from the quantity tables"

	generateLong = text.LongDesc(`
		Loads the quantity tables named by the config, validates them and writes one Go file per
		quantity and vector into the output directory.

		Files already up to date are left untouched. Generated files of quantities that are no
		longer in the tables are removed.
	`)

	generateExample = text.Examples(`
		# Generate into the directory of the config file
		quantitygen generate -c measures/quantitygen.yaml

		# Print the files that would be written
		quantitygen generate -c measures/quantitygen.yaml --dry-run
	`)
)

// newGenerateCmd creates the "generate" subcommand.
func newGenerateCmd(cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Short:   generateShort,
		Long:    generateLong,
		Example: generateExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, cfg)
		},
	}

	flags.Config(cmd)
	flags.Output(cmd)
	flags.DryRun(cmd)

	return cmd
}

// runGenerate executes the generate command logic.
func runGenerate(cmd *cobra.Command, cfg Config) error {
	g, genCfg, err := newGenerator(cmd, cfg)
	if err != nil {
		return err
	}

	dryRun := flags.MustBool(cmd.Flags().GetBool("dry-run"))

	report, err := g.Generate(cmd.Context(), dryRun)
	if err != nil {
		return err
	}

	if report.DryRun {
		for _, f := range report.Files {
			cmd.Printf("%s (%d bytes)\n", f.Name, len(f.Content))
		}

		return nil
	}

	cmd.Printf("Generated %d files in %s: %d written, %d unchanged, %d removed\n",
		len(report.Files), genCfg.OutputDir,
		len(report.Result.Written), len(report.Result.Unchanged), len(report.Result.Removed),
	)

	return nil
}
