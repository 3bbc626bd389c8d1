package pqtext

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// isInfinityText reports whether s is a recognized infinity spelling,
// case-insensitively: "inf" or "infinity".
func isInfinityText(s string) bool {
	return strings.EqualFold(s, "inf") || strings.EqualFold(s, "infinity")
}

// isNaNText reports whether s spells NaN: exactly three letters, any case.
func isNaNText(s string) bool {
	return len(s) == 3 &&
		(s[0] == 'n' || s[0] == 'N') &&
		(s[1] == 'a' || s[1] == 'A') &&
		(s[2] == 'n' || s[2] == 'N')
}

// scanFloatText validates s against the wire grammar for finite floats:
// optional '-', one or more digits, optional '.' followed by one or more
// digits, optional exponent marker with optional sign and one or more
// digits. No leading '+', no hex forms, no digit separators, and the
// whole input must be consumed.
func scanFloatText(s string) bool {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == start {
		return false
	}
	if i < len(s) && s[i] == '.' {
		i++
		start = i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i == start {
			return false
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		start = i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i == start {
			return false
		}
	}
	return i == len(s)
}

// parseFloat converts wire text to a floating-point value. Special
// spellings are dispatched on the first byte; anything else must match
// the finite-value grammar exactly before the locale-independent binary
// conversion runs.
func parseFloat[T constraints.Float](s, typeName string, bits int) (T, error) {
	if len(s) == 0 {
		return 0, syntaxError(typeName, s, "invalid numeric value")
	}
	switch s[0] {
	case 'n', 'N':
		if isNaNText(s) {
			return T(math.NaN()), nil
		}
	case 'i', 'I':
		if isInfinityText(s) {
			return T(math.Inf(1)), nil
		}
	case '-':
		if isInfinityText(s[1:]) {
			return T(math.Inf(-1)), nil
		}
	}
	if !scanFloatText(s) {
		return 0, syntaxError(typeName, s, "invalid numeric value")
	}
	f, err := strconv.ParseFloat(s, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, rangeError(typeName, s)
		}
		return 0, syntaxError(typeName, s, "invalid numeric value")
	}
	return T(f), nil
}

// renderFloat renders a floating-point value. Finite values use the
// shortest text that re-parses to the exact same bits; the three special
// values use the fixed wire spellings.
func renderFloat[T constraints.Float](v T, bits int) string {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "infinity"
	case math.IsInf(f, -1):
		return "-infinity"
	}
	return strconv.FormatFloat(f, 'g', -1, bits)
}
