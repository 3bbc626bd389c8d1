// Package pqtext converts between Postgres wire-format text and native Go
// scalar values, in both directions, independently of the process locale.
//
// The package guarantees:
//   - No silent wraparound or truncation: out-of-range input is an error.
//   - Round-trip fidelity: Parse(Render(v)) == v for every representable
//     value, bit-for-bit for floats, including NaN and signed infinity.
//   - Canonical output: no grouping separators, fixed decimal point, no
//     leading zeros beyond "0", fixed special-value spellings
//     ("nan", "infinity", "-infinity", "true", "false").
//
// # Engines
//
// Two interchangeable engines implement the same contract. The native
// engine wraps the standard library's locale-independent numeric
// primitives with a strict wire-grammar prescan and uniform error
// translation. The portable engine is a hand-rolled, digit-by-digit
// implementation with overflow-checked accumulation. The default binding
// is the native engine; building with the "pqtext_portable" tag selects
// the portable one. Both are always compiled and tested.
//
// # Errors
//
// Every failure is a *ConvError carrying a kind (null conversion, syntax,
// range, render), the offending input, and the destination type name.
// A failed parse never writes to the destination.
//
// All conversions are pure and reentrant; working state lives in local
// stack buffers, so unrestricted parallel use is safe.
package pqtext
