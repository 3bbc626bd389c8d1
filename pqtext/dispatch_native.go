//go:build !pqtext_portable

package pqtext

import "strconv"

// Native engine bindings: integer conversion through the standard
// library's locale-independent primitives, wrapped with the wire-grammar
// prescan and uniform error translation.

var (
	int8Codec = codec[int8]{
		name: "int8",
		parse: func(s string) (int8, error) {
			n, err := nativeParseSigned(s, "int8", 8)
			return int8(n), err
		},
		render: func(v int8) string { return strconv.FormatInt(int64(v), 10) },
	}
	int16Codec = codec[int16]{
		name: "int16",
		parse: func(s string) (int16, error) {
			n, err := nativeParseSigned(s, "int16", 16)
			return int16(n), err
		},
		render: func(v int16) string { return strconv.FormatInt(int64(v), 10) },
	}
	int32Codec = codec[int32]{
		name: "int32",
		parse: func(s string) (int32, error) {
			n, err := nativeParseSigned(s, "int32", 32)
			return int32(n), err
		},
		render: func(v int32) string { return strconv.FormatInt(int64(v), 10) },
	}
	int64Codec = codec[int64]{
		name: "int64",
		parse: func(s string) (int64, error) {
			return nativeParseSigned(s, "int64", 64)
		},
		render: func(v int64) string { return strconv.FormatInt(v, 10) },
	}

	uint8Codec = codec[uint8]{
		name: "uint8",
		parse: func(s string) (uint8, error) {
			n, err := nativeParseUnsigned(s, "uint8", 8)
			return uint8(n), err
		},
		render: func(v uint8) string { return strconv.FormatUint(uint64(v), 10) },
	}
	uint16Codec = codec[uint16]{
		name: "uint16",
		parse: func(s string) (uint16, error) {
			n, err := nativeParseUnsigned(s, "uint16", 16)
			return uint16(n), err
		},
		render: func(v uint16) string { return strconv.FormatUint(uint64(v), 10) },
	}
	uint32Codec = codec[uint32]{
		name: "uint32",
		parse: func(s string) (uint32, error) {
			n, err := nativeParseUnsigned(s, "uint32", 32)
			return uint32(n), err
		},
		render: func(v uint32) string { return strconv.FormatUint(uint64(v), 10) },
	}
	uint64Codec = codec[uint64]{
		name: "uint64",
		parse: func(s string) (uint64, error) {
			return nativeParseUnsigned(s, "uint64", 64)
		},
		render: func(v uint64) string { return strconv.FormatUint(v, 10) },
	}
)
