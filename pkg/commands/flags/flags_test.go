package flags

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Output(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "long", args: []string{"--out", "measures"}, want: "measures"},
		{name: "short", args: []string{"-o", "measures"}, want: "measures"},
		{name: "config key spelling", args: []string{"--output_dir", "measures"}, want: "measures"},
		{name: "dashed alias", args: []string{"--output-dir=measures"}, want: "measures"},
		{name: "unset", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd := &cobra.Command{Use: "generate", RunE: func(*cobra.Command, []string) error { return nil }}
			Output(cmd)
			cmd.SetArgs(tt.args)

			require.NoError(t, cmd.Execute())
			assert.Equal(t, tt.want, MustString(cmd.Flags().GetString("out")))
		})
	}
}

func Test_Flags_Registered(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{Use: "generate"}
	Config(cmd)
	LogLevel(cmd)
	Output(cmd)
	DryRun(cmd)

	tests := []struct {
		name       string
		persistent bool
		wantShort  string
		wantValue  string
	}{
		{name: "config", persistent: true, wantShort: "c", wantValue: DefaultConfigPath},
		{name: "log-level", persistent: true, wantValue: "info"},
		{name: "out", wantShort: "o"},
		{name: "dry-run", wantValue: "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var flag *pflag.Flag
			if tt.persistent {
				flag = cmd.PersistentFlags().Lookup(tt.name)
			} else {
				flag = cmd.Flags().Lookup(tt.name)
			}

			require.NotNil(t, flag, "flag %q not found", tt.name)
			assert.Equal(t, tt.wantShort, flag.Shorthand)
			assert.Equal(t, tt.wantValue, flag.DefValue)
		})
	}
}
