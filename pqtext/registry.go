package pqtext

import "reflect"

// ScanCodec is the dynamic form of a codec, for callers that only know
// the destination type at runtime (row scanning, CLI dispatch). Parse
// returns a value of the codec's base type; Render fails with a render
// error if handed a value of the wrong type.
type ScanCodec struct {
	Name   string
	Parse  func(s string) (any, error)
	Render func(v any) (string, error)
}

func dynamic[T Scalar](c codec[T]) ScanCodec {
	return ScanCodec{
		Name: c.name,
		Parse: func(s string) (any, error) {
			v, err := c.parse(s)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
		Render: func(v any) (string, error) {
			x, ok := v.(T)
			if !ok {
				return "", renderError(c.name, "value is not of the registered type")
			}
			return c.render(x), nil
		},
	}
}

// The registration tables are static and exhaustive over the supported
// type set; an unregistered type is a lookup miss, never a silent default.
var (
	codecsByKind map[reflect.Kind]ScanCodec
	codecsByName map[string]ScanCodec
)

func init() {
	all := []struct {
		kind reflect.Kind
		sc   ScanCodec
	}{
		{reflect.Bool, dynamic(boolCodec)},
		{reflect.Int8, dynamic(int8Codec)},
		{reflect.Int16, dynamic(int16Codec)},
		{reflect.Int32, dynamic(int32Codec)},
		{reflect.Int64, dynamic(int64Codec)},
		{reflect.Uint8, dynamic(uint8Codec)},
		{reflect.Uint16, dynamic(uint16Codec)},
		{reflect.Uint32, dynamic(uint32Codec)},
		{reflect.Uint64, dynamic(uint64Codec)},
		{reflect.Float32, dynamic(float32Codec)},
		{reflect.Float64, dynamic(float64Codec)},
	}
	codecsByKind = make(map[reflect.Kind]ScanCodec, len(all))
	codecsByName = make(map[string]ScanCodec, len(all))
	for _, e := range all {
		codecsByKind[e.kind] = e.sc
		codecsByName[e.sc.Name] = e.sc
	}
}

// CodecFor returns the codec for a destination type, matching on the
// type's kind so defined types over a supported base type also resolve.
func CodecFor(t reflect.Type) (ScanCodec, bool) {
	sc, ok := codecsByKind[t.Kind()]
	return sc, ok
}

// CodecByName returns the codec registered under a diagnostic type name
// ("bool", "int16", "float64", ...).
func CodecByName(name string) (ScanCodec, bool) {
	sc, ok := codecsByName[name]
	return sc, ok
}

// TypeNames lists the registered diagnostic type names.
func TypeNames() []string {
	names := make([]string, 0, len(codecsByName))
	for name := range codecsByName {
		names = append(names, name)
	}
	return names
}
