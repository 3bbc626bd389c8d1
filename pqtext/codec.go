package pqtext

// Scalar is the closed set of supported destination types. Adding a type
// means adding one codec binding in the dispatch files and one arm in the
// generic entry points; shared logic never changes.
type Scalar interface {
	bool |
		int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// codec pairs a parse and a render strategy with the diagnostic type name
// used in error messages. One codec exists per supported scalar type; the
// engine binding lives in dispatch_native.go / dispatch_portable.go.
type codec[T any] struct {
	name   string
	parse  func(string) (T, error)
	render func(T) string
}

// Typed entry points. Parse fails with a *ConvError on any invalid input
// and never writes a partial result; Render is total for every value of a
// supported type.

func ParseBool(s string) (bool, error)       { return boolCodec.parse(s) }
func ParseInt8(s string) (int8, error)       { return int8Codec.parse(s) }
func ParseInt16(s string) (int16, error)     { return int16Codec.parse(s) }
func ParseInt32(s string) (int32, error)     { return int32Codec.parse(s) }
func ParseInt64(s string) (int64, error)     { return int64Codec.parse(s) }
func ParseUint8(s string) (uint8, error)     { return uint8Codec.parse(s) }
func ParseUint16(s string) (uint16, error)   { return uint16Codec.parse(s) }
func ParseUint32(s string) (uint32, error)   { return uint32Codec.parse(s) }
func ParseUint64(s string) (uint64, error)   { return uint64Codec.parse(s) }
func ParseFloat32(s string) (float32, error) { return float32Codec.parse(s) }
func ParseFloat64(s string) (float64, error) { return float64Codec.parse(s) }

func RenderBool(v bool) string       { return boolCodec.render(v) }
func RenderInt8(v int8) string       { return int8Codec.render(v) }
func RenderInt16(v int16) string     { return int16Codec.render(v) }
func RenderInt32(v int32) string     { return int32Codec.render(v) }
func RenderInt64(v int64) string     { return int64Codec.render(v) }
func RenderUint8(v uint8) string     { return uint8Codec.render(v) }
func RenderUint16(v uint16) string   { return uint16Codec.render(v) }
func RenderUint32(v uint32) string   { return uint32Codec.render(v) }
func RenderUint64(v uint64) string   { return uint64Codec.render(v) }
func RenderFloat32(v float32) string { return float32Codec.render(v) }
func RenderFloat64(v float64) string { return float64Codec.render(v) }

// Parse converts wire text to a value of T. The type switch is exhaustive
// over the Scalar set; there is no default fall-through because no other
// type satisfies the constraint.
func Parse[T Scalar](s string) (T, error) {
	var out T
	var err error
	switch p := any(&out).(type) {
	case *bool:
		*p, err = ParseBool(s)
	case *int8:
		*p, err = ParseInt8(s)
	case *int16:
		*p, err = ParseInt16(s)
	case *int32:
		*p, err = ParseInt32(s)
	case *int64:
		*p, err = ParseInt64(s)
	case *uint8:
		*p, err = ParseUint8(s)
	case *uint16:
		*p, err = ParseUint16(s)
	case *uint32:
		*p, err = ParseUint32(s)
	case *uint64:
		*p, err = ParseUint64(s)
	case *float32:
		*p, err = ParseFloat32(s)
	case *float64:
		*p, err = ParseFloat64(s)
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Render converts a value of T to canonical wire text.
func Render[T Scalar](v T) string {
	switch x := any(v).(type) {
	case bool:
		return RenderBool(x)
	case int8:
		return RenderInt8(x)
	case int16:
		return RenderInt16(x)
	case int32:
		return RenderInt32(x)
	case int64:
		return RenderInt64(x)
	case uint8:
		return RenderUint8(x)
	case uint16:
		return RenderUint16(x)
	case uint32:
		return RenderUint32(x)
	case uint64:
		return RenderUint64(x)
	case float32:
		return RenderFloat32(x)
	case float64:
		return RenderFloat64(x)
	}
	panic("pqtext: unreachable: type outside Scalar set")
}

// TypeName returns the diagnostic name used in error messages for T.
func TypeName[T Scalar]() string {
	switch any(*new(T)).(type) {
	case bool:
		return boolCodec.name
	case int8:
		return int8Codec.name
	case int16:
		return int16Codec.name
	case int32:
		return int32Codec.name
	case int64:
		return int64Codec.name
	case uint8:
		return uint8Codec.name
	case uint16:
		return uint16Codec.name
	case uint32:
		return uint32Codec.name
	case uint64:
		return uint64Codec.name
	case float32:
		return float32Codec.name
	case float64:
		return float64Codec.name
	}
	panic("pqtext: unreachable: type outside Scalar set")
}
