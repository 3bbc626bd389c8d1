package pqtext

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// errOverflow marks an overflow detected by the checked accumulators.
// Callers rewrap it with the input text and destination type name.
var errOverflow = &ConvError{Kind: KindRange, Cause: "value out of range"}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// digitValue computes the numeric value of a textual digit
// (assuming that it is a digit).
func digitValue(c byte) int { return int(c - '0') }

// intLimits reports the representable range of T without wrapping
// arithmetic: the positive bound is computed in uint64 and converted.
func intLimits[T constraints.Integer]() (lo, hi T) {
	if ^T(0) > 0 {
		return 0, ^T(0)
	}
	bits := uint(unsafe.Sizeof(lo)) * 8
	hi = T(uint64(1)<<(bits-1) - 1)
	lo = ^hi
	return lo, hi
}

// bitWidth returns the size of T in bits.
func bitWidth[T constraints.Integer]() int {
	var v T
	return int(unsafe.Sizeof(v)) * 8
}

// mulTenChecked returns 10*n, or errOverflow if the result would not fit.
func mulTenChecked[T constraints.Integer](n T) (T, error) {
	lo, hi := intLimits[T]()
	if n > hi/10 {
		return 0, errOverflow
	}
	if lo != 0 && n < lo/10 {
		return 0, errOverflow
	}
	return n * 10, nil
}

// absorbDigitPositive returns value*10 + digit with overflow checking.
func absorbDigitPositive[T constraints.Integer](value T, digit int) (T, error) {
	v, err := mulTenChecked(value)
	if err != nil {
		return 0, err
	}
	_, hi := intLimits[T]()
	d := T(digit)
	if v > hi-d {
		return 0, errOverflow
	}
	return v + d, nil
}

// absorbDigitNegative returns value*10 - digit with overflow checking.
// Accumulating negatively means a signed type's most negative value never
// needs its magnitude represented in the positive range.
func absorbDigitNegative[T constraints.Signed](value T, digit int) (T, error) {
	v, err := mulTenChecked(value)
	if err != nil {
		return 0, err
	}
	lo, _ := intLimits[T]()
	d := T(digit)
	if v < lo+d {
		return 0, errOverflow
	}
	return v - d, nil
}
