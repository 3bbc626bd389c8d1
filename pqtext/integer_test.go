package pqtext

import "testing"

// ============================================================
// Portable engine: parsing
// ============================================================

func TestParseSigned_Int16(t *testing.T) {
	tests := []struct {
		input   string
		want    int16
		wantErr ErrorKind
	}{
		{"0", 0, 0},
		{"1", 1, 0},
		{"-1", -1, 0},
		{"32767", 32767, 0},
		{"-32768", -32768, 0},
		{"007", 7, 0},
		{"-0", 0, 0},
		{"32768", 0, KindRange},
		{"-32769", 0, KindRange},
		{"99999999999999999999", 0, KindRange},
		{"", 0, KindSyntax},
		{"-", 0, KindSyntax},
		{"+1", 0, KindSyntax},
		{"123x", 0, KindSyntax},
		{"12 3", 0, KindSyntax},
		{" 12", 0, KindSyntax},
		{"12 ", 0, KindSyntax},
		{"1.5", 0, KindSyntax},
		{"abc", 0, KindSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseSigned[int16](tt.input, "int16")
			if tt.wantErr != 0 {
				if err == nil {
					t.Fatalf("parseSigned(%q) = %d, want %v error", tt.input, got, tt.wantErr)
				}
				if Kind(err) != tt.wantErr {
					t.Fatalf("parseSigned(%q) error kind = %v, want %v", tt.input, Kind(err), tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseSigned(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("parseSigned(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSigned_Int64Bounds(t *testing.T) {
	if v, err := parseSigned[int64]("9223372036854775807", "int64"); err != nil || v != 9223372036854775807 {
		t.Errorf("max int64: got %d, %v", v, err)
	}
	if v, err := parseSigned[int64]("-9223372036854775808", "int64"); err != nil || v != -9223372036854775808 {
		t.Errorf("min int64: got %d, %v", v, err)
	}
	if _, err := parseSigned[int64]("9223372036854775808", "int64"); Kind(err) != KindRange {
		t.Errorf("max+1 int64: want range error, got %v", err)
	}
	if _, err := parseSigned[int64]("-9223372036854775809", "int64"); Kind(err) != KindRange {
		t.Errorf("min-1 int64: want range error, got %v", err)
	}
}

func TestParseUnsigned_Uint32(t *testing.T) {
	tests := []struct {
		input   string
		want    uint32
		wantErr ErrorKind
	}{
		{"0", 0, 0},
		{"4294967295", 4294967295, 0},
		{"4294967296", 0, KindRange},
		{"-1", 0, KindSyntax},
		{"-0", 0, KindSyntax},
		{"+1", 0, KindSyntax},
		{"", 0, KindSyntax},
		{"17x", 0, KindSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseUnsigned[uint32](tt.input, "uint32")
			if Kind(err) != tt.wantErr {
				t.Fatalf("parseUnsigned(%q) error kind = %v (%v), want %v", tt.input, Kind(err), err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("parseUnsigned(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseUnsigned_Uint64Max(t *testing.T) {
	v, err := parseUnsigned[uint64]("18446744073709551615", "uint64")
	if err != nil || v != 18446744073709551615 {
		t.Errorf("max uint64: got %d, %v", v, err)
	}
	if _, err := parseUnsigned[uint64]("18446744073709551616", "uint64"); Kind(err) != KindRange {
		t.Errorf("max+1 uint64: want range error, got %v", err)
	}
}

// ============================================================
// Portable engine: rendering
// ============================================================

func TestRenderSigned_MinimumLiterals(t *testing.T) {
	if got := renderSigned[int8](-128); got != "-128" {
		t.Errorf("int8 min = %q", got)
	}
	if got := renderSigned[int16](-32768); got != "-32768" {
		t.Errorf("int16 min = %q", got)
	}
	if got := renderSigned[int32](-2147483648); got != "-2147483648" {
		t.Errorf("int32 min = %q", got)
	}
	if got := renderSigned[int64](-9223372036854775808); got != "-9223372036854775808" {
		t.Errorf("int64 min = %q", got)
	}
}

func TestRenderSigned(t *testing.T) {
	tests := []struct {
		v    int64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{-1, "-1"},
		{42, "42"},
		{-305, "-305"},
		{9223372036854775807, "9223372036854775807"},
	}
	for _, tt := range tests {
		if got := renderSigned(tt.v); got != tt.want {
			t.Errorf("renderSigned(%d) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestRenderUnsigned(t *testing.T) {
	tests := []struct {
		v    uint64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{10, "10"},
		{18446744073709551615, "18446744073709551615"},
	}
	for _, tt := range tests {
		if got := renderUnsigned(tt.v, false); got != tt.want {
			t.Errorf("renderUnsigned(%d) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

// ============================================================
// Native engine wrappers
// ============================================================

func TestNativeParseSigned(t *testing.T) {
	if v, err := nativeParseSigned("-32768", "int16", 16); err != nil || v != -32768 {
		t.Errorf("native int16 min: got %d, %v", v, err)
	}
	if _, err := nativeParseSigned("32768", "int16", 16); Kind(err) != KindRange {
		t.Errorf("native int16 max+1: want range error, got %v", err)
	}
	if _, err := nativeParseSigned("+5", "int16", 16); Kind(err) != KindSyntax {
		t.Errorf("native leading plus: want syntax error, got %v", err)
	}
	if _, err := nativeParseSigned("123x", "int16", 16); Kind(err) != KindSyntax {
		t.Errorf("native trailing garbage: want syntax error, got %v", err)
	}
}

func TestNativeParseUnsigned(t *testing.T) {
	if _, err := nativeParseUnsigned("-1", "uint32", 32); Kind(err) != KindSyntax {
		t.Errorf("native uint leading minus: want syntax error, got %v", err)
	}
	if v, err := nativeParseUnsigned("4294967295", "uint32", 32); err != nil || v != 4294967295 {
		t.Errorf("native uint32 max: got %d, %v", v, err)
	}
}

// ============================================================
// Engine agreement and round trips
// ============================================================

func TestEnginesAgree_Int32(t *testing.T) {
	inputs := []string{
		"0", "-0", "1", "-1", "2147483647", "-2147483648",
		"2147483648", "-2147483649", "", "-", "+7", "12x", "007",
	}
	for _, in := range inputs {
		pv, perr := parseSigned[int32](in, "int32")
		nv, nerr := nativeParseSigned(in, "int32", 32)
		if Kind(perr) != Kind(nerr) {
			t.Errorf("%q: portable kind %v, native kind %v", in, Kind(perr), Kind(nerr))
			continue
		}
		if perr == nil && pv != int32(nv) {
			t.Errorf("%q: portable %d, native %d", in, pv, nv)
		}
	}
}

func TestIntegerRoundTrip(t *testing.T) {
	for _, v := range []int16{-32768, -32767, -1, 0, 1, 9, 10, 32767} {
		text := renderSigned(v)
		back, err := parseSigned[int16](text, "int16")
		if err != nil {
			t.Fatalf("round trip %d: parse(%q) failed: %v", v, text, err)
		}
		if back != v {
			t.Errorf("round trip %d: got %d via %q", v, back, text)
		}
	}
	for _, v := range []uint16{0, 1, 255, 256, 65535} {
		text := renderUnsigned(v, false)
		back, err := parseUnsigned[uint16](text, "uint16")
		if err != nil || back != v {
			t.Errorf("round trip %d: got %d via %q (%v)", v, back, text, err)
		}
	}
}

// ============================================================
// Checked accumulator primitives
// ============================================================

func TestMulTenChecked(t *testing.T) {
	if v, err := mulTenChecked[int8](12); err != nil || v != 120 {
		t.Errorf("mulTenChecked(12) = %d, %v", v, err)
	}
	if _, err := mulTenChecked[int8](13); err == nil {
		t.Error("mulTenChecked(13) on int8 should overflow")
	}
	if _, err := mulTenChecked[int8](-13); err == nil {
		t.Error("mulTenChecked(-13) on int8 should overflow")
	}
	if v, err := mulTenChecked[uint8](25); err != nil || v != 250 {
		t.Errorf("mulTenChecked(25) = %d, %v", v, err)
	}
	if _, err := mulTenChecked[uint8](26); err == nil {
		t.Error("mulTenChecked(26) on uint8 should overflow")
	}
}

func TestAbsorbDigit(t *testing.T) {
	if v, err := absorbDigitPositive[int8](12, 7); err != nil || v != 127 {
		t.Errorf("absorbDigitPositive(12, 7) = %d, %v", v, err)
	}
	if _, err := absorbDigitPositive[int8](12, 8); err == nil {
		t.Error("absorbDigitPositive(12, 8) on int8 should overflow")
	}
	if v, err := absorbDigitNegative[int8](-12, 8); err != nil || v != -128 {
		t.Errorf("absorbDigitNegative(-12, 8) = %d, %v", v, err)
	}
	if _, err := absorbDigitNegative[int8](-12, 9); err == nil {
		t.Error("absorbDigitNegative(-12, 9) on int8 should overflow")
	}
}
