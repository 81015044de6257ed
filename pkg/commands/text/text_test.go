package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_LongDesc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		give string
		want string
	}{
		{
			name: "empty string",
			give: "",
			want: "",
		},
		{
			name: "single line",
			give: "Generate quantities.",
			want: "Generate quantities.",
		},
		{
			name: "raw literal",
			give: `
				Generate the quantity types.

				  Nested lines keep their relative indentation.
			`,
			want: "Generate the quantity types.\n\n  Nested lines keep their relative indentation.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, LongDesc(tt.give))
		})
	}
}

func Test_Examples(t *testing.T) {
	t.Parallel()

	got := Examples(`
		# Generate into the configured directory
		quantitygen generate -c measures/quantitygen.yaml
	`)

	assert.Equal(t, "  # Generate into the configured directory\n  quantitygen generate -c measures/quantitygen.yaml", got)
}
