package quantity

import (
	"strconv"
	"strings"
)

// Format renders the SI magnitude of m followed by symbol, as in "5 [N]".
func Format(m Measure, symbol string) string {
	return formatFloat(m.Magnitude()) + " [" + symbol + "]"
}

// FormatVector renders the SI components of v followed by symbol, as in "(1, 2, 3) [N]".
func FormatVector(v Vector3Measure, symbol string) string {
	x, y, z := v.Components()
	return formatComponents(x, y, z) + " [" + symbol + "]"
}

func formatComponents(x, y, z float64) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(formatFloat(x))
	b.WriteString(", ")
	b.WriteString(formatFloat(y))
	b.WriteString(", ")
	b.WriteString(formatFloat(z))
	b.WriteByte(')')

	return b.String()
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
