package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatRupiah renders an amount as an Indonesian rupiah string with dot
// thousand separators, e.g. 15000.5 -> "Rp 15.000,50". Whole amounts omit
// the decimal part: 200000 -> "Rp 200.000".
func FormatRupiah(amount float64) string {
	negative := amount < 0
	amount = math.Abs(amount)

	// Two-decimal cents, carried separately so grouping only sees the
	// integer part.
	cents := int(math.Round(amount * 100))
	integer := cents / 100
	fraction := cents % 100

	digits := fmt.Sprintf("%d", integer)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	out := "Rp " + strings.Join(groups, ".")
	if fraction > 0 {
		out = fmt.Sprintf("%s,%02d", out, fraction)
	}
	if negative {
		out = "-" + out
	}
	return out
}
