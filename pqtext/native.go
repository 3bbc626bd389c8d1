package pqtext

import (
	"errors"
	"strconv"
)

// The native engine wraps the standard library's locale-independent
// numeric primitives. strconv is more permissive than the wire grammar
// (it accepts a leading '+'), so a prescan rejects the difference before
// delegating; strconv's own errors are translated onto the package's
// taxonomy.

func nativeParseSigned(s, typeName string, bits int) (int64, error) {
	if len(s) > 0 && s[0] == '+' {
		return 0, syntaxError(typeName, s, "invalid integer")
	}
	n, err := strconv.ParseInt(s, 10, bits)
	if err != nil {
		return 0, translateNumError(err, typeName, s, "invalid integer")
	}
	return n, nil
}

func nativeParseUnsigned(s, typeName string, bits int) (uint64, error) {
	if len(s) > 0 && s[0] == '+' {
		return 0, syntaxError(typeName, s, "invalid unsigned integer")
	}
	n, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		return 0, translateNumError(err, typeName, s, "invalid unsigned integer")
	}
	return n, nil
}

func translateNumError(err error, typeName, input, cause string) error {
	if errors.Is(err, strconv.ErrRange) {
		return rangeError(typeName, input)
	}
	return syntaxError(typeName, input, cause)
}
