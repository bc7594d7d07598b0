package endf

import (
	"fmt"
	"strings"
)

// formatTestLine builds an 80-column record from a payload (padded to 66
// columns) and the identifier trailer values.
func formatTestLine(payload string, mat, mf, mt, ns int) string {
	return fmt.Sprintf("%-66s%4d%2d%3d%5d", payload, mat, mf, mt, ns)
}

// fieldsOf renders values as consecutive 11-column fields. Floats use a
// marked exponent, which the field decoder accepts unchanged.
func fieldsOf(vals ...any) string {
	var b strings.Builder
	for _, v := range vals {
		switch x := v.(type) {
		case int:
			fmt.Fprintf(&b, "%11d", x)
		case float64:
			fmt.Fprintf(&b, "%11.4e", x)
		default:
			fmt.Fprintf(&b, "%11s", v)
		}
	}
	return b.String()
}
