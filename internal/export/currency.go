package export

import (
	"fmt"
	"strings"
)

// FormatCurrency renders a value in the report's locale style: "." as the
// thousands separator and "," as the decimal separator, e.g. R$ 1.234,56.
// This is presentation-only; the CSV form keeps machine formatting.
func FormatCurrency(value float64) string {
	negative := value < 0
	if negative {
		value = -value
	}

	text := fmt.Sprintf("%.2f", value)
	intPart, fracPart, _ := strings.Cut(text, ".")

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	out := "R$ " + grouped.String() + "," + fracPart
	if negative {
		out = "-" + out
	}
	return out
}
