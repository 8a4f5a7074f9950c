package interp

import "strconv"

// parseInt parses s as a signed decimal integer in invariant format.
func parseInt(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// formatInt renders v as a decimal integer with no separators.
func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

// formatHalfSum renders the arithmetic mean of two integers as the literal
// text produced by default formatting of the exact half-sum as a real
// number: a whole mean prints without a decimal point ("3"), a fractional
// one prints with the minimal number of digits needed ("2.5").
func formatHalfSum(sum int64) string {
	return strconv.FormatFloat(float64(sum)/2, 'f', -1, 64)
}
