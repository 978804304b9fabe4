package handler

import (
	"math"
	"strconv"
	"strings"
)

// formatCLP renders a price in the storefront's single supported
// display format: Chilean pesos, dot thousands separators, no decimals
// (e.g. 44990 → "$44.990").
func formatCLP(v float64) string {
	n := int64(math.Round(v))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return sign + "$" + b.String()
}
