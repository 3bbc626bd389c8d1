package pqtext

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a conversion failure.
type ErrorKind uint8

const (
	// KindNull: a null field was forced into a non-nullable destination.
	KindNull ErrorKind = iota + 1
	// KindSyntax: the input is not a valid lexical form for the type.
	KindSyntax
	// KindRange: the input is lexically valid but exceeds the type's range.
	KindRange
	// KindRender: an internal rendering invariant failed. Defensive;
	// unreachable in correct operation.
	KindRender
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindNull:
		return "null conversion"
	case KindSyntax:
		return "syntax"
	case KindRange:
		return "range"
	case KindRender:
		return "render"
	default:
		return "unknown"
	}
}

// ConvError is the error type for every conversion failure in this package.
type ConvError struct {
	Kind  ErrorKind
	Type  string // destination type's diagnostic name
	Input string // offending text (empty for null conversions)
	Cause string // specific cause phrase, when determinable
}

func (e *ConvError) Error() string {
	switch e.Kind {
	case KindNull:
		return fmt.Sprintf("pqtext: attempt to convert null to %s", e.Type)
	case KindRender:
		if e.Cause != "" {
			return fmt.Sprintf("pqtext: could not render %s: %s", e.Type, e.Cause)
		}
		return fmt.Sprintf("pqtext: could not render %s", e.Type)
	}
	if e.Cause != "" {
		return fmt.Sprintf("pqtext: could not convert %q to %s: %s", e.Input, e.Type, e.Cause)
	}
	return fmt.Sprintf("pqtext: could not convert %q to %s", e.Input, e.Type)
}

// Kind returns the classification of err, or zero if err is not a ConvError.
func Kind(err error) ErrorKind {
	var ce *ConvError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return 0
}

// IsSyntax reports whether err is a lexical conversion failure.
func IsSyntax(err error) bool { return Kind(err) == KindSyntax }

// IsRange reports whether err is an out-of-range conversion failure.
func IsRange(err error) bool { return Kind(err) == KindRange }

// IsNull reports whether err is a null-conversion failure.
func IsNull(err error) bool { return Kind(err) == KindNull }

// NullError returns the error raised when a null field is forced into a
// non-nullable destination of the named type. It is reported before any
// textual parsing is attempted.
func NullError(typeName string) error {
	return &ConvError{Kind: KindNull, Type: typeName}
}

func syntaxError(typeName, input, cause string) error {
	return &ConvError{Kind: KindSyntax, Type: typeName, Input: input, Cause: cause}
}

func rangeError(typeName, input string) error {
	return &ConvError{Kind: KindRange, Type: typeName, Input: input, Cause: "value out of range"}
}

func renderError(typeName, cause string) error {
	return &ConvError{Kind: KindRender, Type: typeName, Cause: cause}
}
