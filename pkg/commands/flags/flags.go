// Package flags provides the flags shared by the quantitygen commands.
//
// Command-specific flags are defined locally in the command file.
package flags

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// DefaultConfigPath is the config file read when --config is not given.
const DefaultConfigPath = "quantitygen.yaml"

// MustString returns the string value, ignoring the error.
// Safe to use with registered flags where GetString cannot fail.
func MustString(s string, _ error) string { return s }

// MustBool returns the bool value, ignoring the error.
// Safe to use with registered flags where GetBool cannot fail.
func MustBool(b bool, _ error) bool { return b }

// Config adds the persistent --config/-c flag naming the generator config file.
// Retrieve the value with cmd.Flags().GetString("config").
func Config(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("config", "c", DefaultConfigPath, "Path of the generator config file")
}

// LogLevel adds the persistent --log-level flag (default: info).
// Retrieve the value with cmd.Flags().GetString("log-level").
func LogLevel(cmd *cobra.Command) {
	cmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")
}

// Output adds the --out/-o flag overriding the output directory of the config.
// Also accepts --output-dir and --output_dir, the spelling of the config key.
// Retrieve the value with cmd.Flags().GetString("out").
//
// Usage:
//
//	flags.Output(cmd)
//	// later in RunE:
//	outDir, _ := cmd.Flags().GetString("out")
func Output(cmd *cobra.Command) {
	cmd.Flags().StringP("out", "o", "", "Output directory, overrides output_dir of the config")

	existingNormalize := cmd.Flags().GetNormalizeFunc()
	cmd.Flags().SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == "output-dir" || name == "output_dir" {
			return pflag.NormalizedName("out")
		}
		if existingNormalize != nil {
			return existingNormalize(f, name)
		}

		return pflag.NormalizedName(name)
	})
}

// DryRun adds the --dry-run flag, which renders files without writing them.
// Retrieve the value with cmd.Flags().GetBool("dry-run").
func DryRun(cmd *cobra.Command) {
	cmd.Flags().Bool("dry-run", false, "Render the files without writing them")
}
