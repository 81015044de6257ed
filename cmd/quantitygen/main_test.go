package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/smartcontractkit/quantities/pkg/logger"
)

func Test_newRootCmd_LogLevel(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	table := "schema_version: 1.0.0\nquantities:\n  - name: Mass\n    units:\n      - {name: Kilogram, symbol: kg, factor: 1}\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quantities.yaml"), []byte(table), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quantitygen.yaml"), []byte("tables: [quantities.yaml]\n"), 0o600))

	tests := []struct {
		name      string
		giveLevel string
		want      zapcore.Level
		wantErr   string
	}{
		{name: "debug", giveLevel: "debug", want: zapcore.DebugLevel},
		{name: "warn", giveLevel: "warn", want: zapcore.WarnLevel},
		{name: "invalid", giveLevel: "chatty", wantErr: `unrecognized level: "chatty"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
			root, err := newRootCmd(logger.Test(t), level)
			require.NoError(t, err)

			out := new(bytes.Buffer)
			root.SetOut(out)
			root.SetErr(out)
			root.SetArgs([]string{"validate", "--log-level", tt.giveLevel, "-c", filepath.Join(dir, "quantitygen.yaml")})

			err = root.Execute()
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, level.Level())
			assert.Contains(t, out.String(), "Quantity table is valid: 1 quantities, 0 vectors")
		})
	}
}

func Test_newRootCmd_Commands(t *testing.T) {
	t.Parallel()

	root, err := newRootCmd(logger.Nop(), zap.NewAtomicLevel())
	require.NoError(t, err)

	names := make([]string, 0, 3)
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}

	// cobra sorts commands by name.
	assert.Equal(t, []string{"generate", "list", "validate"}, names)
}
