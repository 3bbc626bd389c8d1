package pqtext

// Engine-independent codec bindings. Boolean conversion is always
// hand-rolled; the float engines converge on the same implementation
// because Go's native float primitive still needs the special-value
// recognition and wire-grammar prescan on top (see parseFloat).

var boolCodec = codec[bool]{
	name:   "bool",
	parse:  parseBoolText,
	render: renderBoolText,
}

var float32Codec = codec[float32]{
	name:   "float32",
	parse:  func(s string) (float32, error) { return parseFloat[float32](s, "float32", 32) },
	render: func(v float32) string { return renderFloat(v, 32) },
}

var float64Codec = codec[float64]{
	name:   "float64",
	parse:  func(s string) (float64, error) { return parseFloat[float64](s, "float64", 64) },
	render: func(v float64) string { return renderFloat(v, 64) },
}
