// Package rowset provides a thin accessor layer over a captured tabular
// query result: fixed-width rows of nullable text cells, addressed by
// column index or name, with windowed row slices.
//
// Cells hold wire-format text; value conversion goes through pqtext, so a
// Field is a borrowed view that never owns or copies the underlying text.
package rowset

import (
	"fmt"

	"github.com/lib/pq/oid"
)

// Column describes one result column.
type Column struct {
	Name string
	Type oid.Oid
}

// Result is an immutable captured result set. A nil cell is SQL NULL.
type Result struct {
	cols []Column
	rows [][]*string
}

// NewResult builds a Result from captured data. Every row must have
// exactly one cell per column.
func NewResult(cols []Column, rows [][]*string) (*Result, error) {
	for i, row := range rows {
		if len(row) != len(cols) {
			return nil, fmt.Errorf("rowset: row %d has %d cells, want %d", i, len(row), len(cols))
		}
	}
	return &Result{cols: cols, rows: rows}, nil
}

// Len returns the number of rows.
func (r *Result) Len() int { return len(r.rows) }

// Columns returns the column descriptors.
func (r *Result) Columns() []Column { return r.cols }

// ColumnNumber returns the index of the named column.
func (r *Result) ColumnNumber(name string) (int, error) {
	for i := range r.cols {
		if r.cols[i].Name == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("rowset: no column named %q", name)
}

// Row returns the i-th row as a full-width window.
func (r *Result) Row(i int) (Row, error) {
	if i < 0 || i >= len(r.rows) {
		return Row{}, fmt.Errorf("rowset: row index %d out of range (len=%d)", i, len(r.rows))
	}
	return Row{res: r, index: i, begin: 0, end: len(r.cols)}, nil
}

// Row is a [begin, end) window over the columns of one result row.
// The zero Row is empty.
type Row struct {
	res   *Result
	index int
	begin int
	end   int
}

// Len returns the number of fields in the window.
func (w Row) Len() int { return w.end - w.begin }

// Field returns the i-th field of the window.
func (w Row) Field(i int) (Field, error) {
	if i < 0 || i >= w.Len() {
		return Field{}, fmt.Errorf("rowset: field index %d out of range (len=%d)", i, w.Len())
	}
	return Field{row: w, col: w.begin + i}, nil
}

// FieldByName returns the named field. A column that exists in the result
// but falls outside this window is an error, same as an unknown name.
func (w Row) FieldByName(name string) (Field, error) {
	n, err := w.res.ColumnNumber(name)
	if err != nil {
		return Field{}, err
	}
	if n < w.begin || n >= w.end {
		return Field{}, fmt.Errorf("rowset: column %q falls outside row slice", name)
	}
	return Field{row: w, col: n}, nil
}

// Slice narrows the window to [sbegin, send) relative to it.
func (w Row) Slice(sbegin, send int) (Row, error) {
	if sbegin < 0 || sbegin > send || send > w.Len() {
		return Row{}, fmt.Errorf("rowset: invalid field range [%d, %d)", sbegin, send)
	}
	return Row{res: w.res, index: w.index, begin: w.begin + sbegin, end: w.begin + send}, nil
}

// Fields returns all fields in the window, in column order.
func (w Row) Fields() []Field {
	fields := make([]Field, w.Len())
	for i := range fields {
		fields[i] = Field{row: w, col: w.begin + i}
	}
	return fields
}

// Field is a borrowed view of one cell. It never owns the text.
type Field struct {
	row Row
	col int
}

// Name returns the field's column name.
func (f Field) Name() string { return f.row.res.cols[f.col].Name }

// Type returns the field's column type OID.
func (f Field) Type() oid.Oid { return f.row.res.cols[f.col].Type }

// IsNull reports whether the cell is SQL NULL.
func (f Field) IsNull() bool { return f.cell() == nil }

// Text returns the cell's wire text. NULL yields the empty string; use
// IsNull to distinguish it from an empty value.
func (f Field) Text() string {
	if c := f.cell(); c != nil {
		return *c
	}
	return ""
}

// Len returns the length of the cell's text.
func (f Field) Len() int { return len(f.Text()) }

func (f Field) cell() *string {
	return f.row.res.rows[f.row.index][f.col]
}
