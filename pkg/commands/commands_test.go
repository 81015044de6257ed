package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/quantities/pkg/logger"
)

func Test_New(t *testing.T) {
	t.Parallel()

	lggr := logger.Nop()
	cmds := New(lggr)

	require.NotNil(t, cmds)
	assert.Equal(t, lggr, cmds.lggr)
}

func Test_Commands_All(t *testing.T) {
	t.Parallel()

	all, err := New(logger.Nop()).All()
	require.NoError(t, err)

	uses := make([]string, 0, len(all))
	for _, cmd := range all {
		uses = append(uses, cmd.Use)

		// Every command reads the generator config.
		f := cmd.PersistentFlags().Lookup("config")
		require.NotNil(t, f, cmd.Use)
		assert.Equal(t, "c", f.Shorthand)
	}

	assert.Equal(t, []string{"generate", "validate", "list"}, uses)
}

func Test_Commands_Generate_Flags(t *testing.T) {
	t.Parallel()

	cmd, err := New(logger.Nop()).Generate()
	require.NoError(t, err)

	out := cmd.Flags().Lookup("out")
	require.NotNil(t, out)
	assert.Equal(t, "o", out.Shorthand)
	assert.Empty(t, out.Value.String())

	dryRun := cmd.Flags().Lookup("dry-run")
	require.NotNil(t, dryRun)
	assert.Equal(t, "false", dryRun.Value.String())
}

func Test_Commands_NilLogger(t *testing.T) {
	t.Parallel()

	_, err := New(nil).Validate()
	require.ErrorContains(t, err, "missing required fields: Logger")
}
