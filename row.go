package sqlitekit

import (
	"unicode/utf16"

	"github.com/sqlitekit/sqlitekit/capi"
)

// Row is a non-owning view over the row a statement is currently
// positioned on. It stays valid until the statement steps, resets, or
// finalizes. The zero Row reads nothing.
type Row struct {
	rt   *capi.Runtime
	stmt uintptr
}

func (r Row) Int32(col int32) int32 {
	return r.rt.ColumnInt32(r.stmt, col)
}

func (r Row) Int64(col int32) int64 {
	return r.rt.ColumnInt64(r.stmt, col)
}

func (r Row) Float64(col int32) float64 {
	return r.rt.ColumnFloat64(r.stmt, col)
}

// Text reads the column through the engine's UTF-8 entry point.
func (r Row) Text(col int32) string {
	return r.rt.ColumnText(r.stmt, col)
}

// Text16 reads the column through the engine's UTF-16 entry point and
// decodes it to a Go string.
func (r Row) Text16(col int32) string {
	return string(utf16.Decode(r.rt.ColumnText16(r.stmt, col)))
}

// Blob returns a copy of the column's blob value. NULL reads as nil.
func (r Row) Blob(col int32) []byte {
	return r.rt.ColumnBlob(r.stmt, col)
}

// TextLen reports the value's length in bytes when read as UTF-8 text.
func (r Row) TextLen(col int32) int32 {
	return r.rt.ColumnBytes(r.stmt, col)
}

// TextLen16 reports the value's length in UTF-16 code units.
func (r Row) TextLen16(col int32) int32 {
	return r.rt.ColumnBytes16(r.stmt, col) / 2
}

// BlobLen reports the value's length in bytes when read as a blob.
func (r Row) BlobLen(col int32) int32 {
	return r.rt.ColumnBytes(r.stmt, col)
}

// Type reports the value's storage class. Ask before reading through a
// typed getter; getters of another type trigger a conversion that
// changes what Type reports afterwards.
func (r Row) Type(col int32) ColumnType {
	tag := r.rt.ColumnType(r.stmt, col)
	if t := ColumnTypes.Parse(tag); t != nil {
		return *t
	}
	return ColumnType{}
}

// Count reports the number of result columns.
func (r Row) Count() int32 {
	return r.rt.ColumnCount(r.stmt)
}

// Name returns the name of a result column.
func (r Row) Name(col int32) string {
	return r.rt.ColumnName(r.stmt, col)
}

// RowIterator walks a statement's remaining rows front to back. The
// first Next performs the first step. Once exhausted, or once a step
// fails, the iterator stays finished; check Err after the loop.
//
// Iteration consumes the statement's cursor. To traverse again, Reset
// the statement and take a fresh iterator.
type RowIterator struct {
	stmt *Statement
	err  error
}

// Next advances to the next row. It returns false when the rows are
// exhausted or a step fails.
func (it *RowIterator) Next() bool {
	if it.stmt == nil {
		return false
	}
	row, err := it.stmt.Step()
	if err != nil {
		it.err = err
		it.stmt = nil
		return false
	}
	if !row {
		it.stmt = nil
		return false
	}
	return true
}

// Row returns the currently positioned row. Only valid after a Next that
// returned true.
func (it *RowIterator) Row() Row {
	if it.stmt == nil {
		return Row{}
	}
	return it.stmt.Row()
}

// Err reports the step failure that ended iteration, if any.
func (it *RowIterator) Err() error {
	return it.err
}
