package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func Test_ParseConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		giveLevel    string
		giveEncoding string
		want         Config
		wantErr      string
	}{
		{
			name:      "defaults",
			giveLevel: "info",
			want:      Config{Level: zapcore.InfoLevel},
		},
		{
			name:         "json debug",
			giveLevel:    "debug",
			giveEncoding: EncodingJSON,
			want:         Config{Level: zapcore.DebugLevel, Encoding: EncodingJSON},
		},
		{
			name:      "invalid level",
			giveLevel: "loud",
			wantErr:   `unrecognized level: "loud"`,
		},
		{
			name:         "invalid encoding",
			giveLevel:    "warn",
			giveEncoding: "xml",
			wantErr:      `unrecognized log encoding: "xml"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseConfig(tt.giveLevel, tt.giveEncoding)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_Config_New(t *testing.T) {
	t.Parallel()

	lggr, err := Config{Level: zapcore.WarnLevel, Encoding: EncodingJSON}.New()
	require.NoError(t, err)

	assert.Equal(t, "quantitygen", lggr.Named("quantitygen").Name())
}

func Test_TestObserved(t *testing.T) {
	t.Parallel()

	lggr, logs := TestObserved(t, zapcore.InfoLevel)
	lggr.Debugw("dropped", "file", "zz_generated_time.go")
	lggr.Named("render").Infow("rendered", "file", "zz_generated_time.go")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "rendered", entries[0].Message)
	assert.Equal(t, "render", entries[0].LoggerName)
	assert.Equal(t, "zz_generated_time.go", entries[0].ContextMap()["file"])
}

func Test_Nop(t *testing.T) {
	t.Parallel()

	lggr := Nop()
	lggr.Errorf("ignored %d", 1)

	assert.Empty(t, lggr.Name())
}
