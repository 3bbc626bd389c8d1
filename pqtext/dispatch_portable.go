//go:build pqtext_portable

package pqtext

// Portable engine bindings: the hand-rolled, digit-by-digit integer
// implementation with overflow-checked accumulation. Selected at build
// time with the "pqtext_portable" tag.

var (
	int8Codec = codec[int8]{
		name:   "int8",
		parse:  func(s string) (int8, error) { return parseSigned[int8](s, "int8") },
		render: renderSigned[int8],
	}
	int16Codec = codec[int16]{
		name:   "int16",
		parse:  func(s string) (int16, error) { return parseSigned[int16](s, "int16") },
		render: renderSigned[int16],
	}
	int32Codec = codec[int32]{
		name:   "int32",
		parse:  func(s string) (int32, error) { return parseSigned[int32](s, "int32") },
		render: renderSigned[int32],
	}
	int64Codec = codec[int64]{
		name:   "int64",
		parse:  func(s string) (int64, error) { return parseSigned[int64](s, "int64") },
		render: renderSigned[int64],
	}

	uint8Codec = codec[uint8]{
		name:   "uint8",
		parse:  func(s string) (uint8, error) { return parseUnsigned[uint8](s, "uint8") },
		render: func(v uint8) string { return renderUnsigned(v, false) },
	}
	uint16Codec = codec[uint16]{
		name:   "uint16",
		parse:  func(s string) (uint16, error) { return parseUnsigned[uint16](s, "uint16") },
		render: func(v uint16) string { return renderUnsigned(v, false) },
	}
	uint32Codec = codec[uint32]{
		name:   "uint32",
		parse:  func(s string) (uint32, error) { return parseUnsigned[uint32](s, "uint32") },
		render: func(v uint32) string { return renderUnsigned(v, false) },
	}
	uint64Codec = codec[uint64]{
		name:   "uint64",
		parse:  func(s string) (uint64, error) { return parseUnsigned[uint64](s, "uint64") },
		render: func(v uint64) string { return renderUnsigned(v, false) },
	}
)
