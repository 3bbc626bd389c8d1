package pqtext

import "golang.org/x/exp/constraints"

// maxRenderedInt is room for the digits of a 64-bit value plus sign,
// with a little margin.
const maxRenderedInt = 24

// minLiterals holds the exact decimal text of each signed width's most
// negative value. In two's complement that value cannot be negated within
// the same width, so rendering returns these literals instead of negating.
var minLiterals = map[int]string{
	8:  "-128",
	16: "-32768",
	32: "-2147483648",
	64: "-9223372036854775808",
}

// parseSigned converts wire text to a signed integer. Length-bounded
// scanning; never reads past len(s) and never assumes a trailing sentinel.
func parseSigned[T constraints.Signed](s, typeName string) (T, error) {
	var result T
	i := 0
	neg := i < len(s) && s[i] == '-'
	if neg {
		i++
	}
	if i >= len(s) || !isDigit(s[i]) {
		return 0, syntaxError(typeName, s, "invalid integer")
	}
	var err error
	for ; i < len(s) && isDigit(s[i]); i++ {
		if neg {
			result, err = absorbDigitNegative(result, digitValue(s[i]))
		} else {
			result, err = absorbDigitPositive(result, digitValue(s[i]))
		}
		if err != nil {
			return 0, rangeError(typeName, s)
		}
	}
	if i < len(s) {
		return 0, syntaxError(typeName, s, "unexpected text after integer")
	}
	return result, nil
}

// parseUnsigned converts wire text to an unsigned integer. A leading '-'
// is rejected outright.
func parseUnsigned[T constraints.Unsigned](s, typeName string) (T, error) {
	var result T
	if len(s) == 0 || !isDigit(s[0]) {
		return 0, syntaxError(typeName, s, "invalid unsigned integer")
	}
	var err error
	i := 0
	for ; i < len(s) && isDigit(s[i]); i++ {
		result, err = absorbDigitPositive(result, digitValue(s[i]))
		if err != nil {
			return 0, rangeError(typeName, s)
		}
	}
	if i < len(s) {
		return 0, syntaxError(typeName, s, "unexpected text after integer")
	}
	return result, nil
}

// renderUnsigned renders a nonnegative value by writing digits backward
// from the end of a fixed stack buffer.
func renderUnsigned[T constraints.Integer](v T, negative bool) string {
	if v == 0 {
		return "0"
	}
	var buf [maxRenderedInt]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if negative {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// renderSigned renders any signed value. The single most-negative value
// per width comes from the precomputed literal table, since negating it
// would overflow same-width arithmetic.
func renderSigned[T constraints.Signed](v T) string {
	if v >= 0 {
		return renderUnsigned(v, false)
	}
	if lo, _ := intLimits[T](); v == lo {
		return minLiterals[bitWidth[T]()]
	}
	return renderUnsigned(-v, true)
}
