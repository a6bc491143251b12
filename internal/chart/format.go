package chart

import (
	"math"

	"github.com/dustin/go-humanize"
)

// FormatCount renders an award count with thousands separators: 1234 -> "1,234".
func FormatCount(n int64) string {
	return humanize.Comma(n)
}

// FormatDollars renders a dollar total with a leading "$", thousands separators
// and no decimals: 1234.4 -> "$1,234". Negative totals keep the sign after the
// currency symbol ("$-5"). Totals beyond the int64 range are grouped from
// their float value instead of being truncated.
func FormatDollars(v float64) string {
	r := math.RoundToEven(v)
	if r >= -maxExactInt && r <= maxExactInt {
		return "$" + humanize.Comma(int64(r))
	}
	return "$" + humanize.Commaf(r)
}

// maxExactInt stays below the int64 range so the conversion cannot wrap.
const maxExactInt = 9.2e18
