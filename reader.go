package sqlitekit

import (
	"github.com/orsinium-labs/enum"

	"github.com/sqlitekit/sqlitekit/capi"
)

// ColumnType is the storage class of a result value.
type ColumnType enum.Member[int32]

var (
	TypeInteger = ColumnType{capi.TypeInteger}
	TypeFloat   = ColumnType{capi.TypeFloat}
	TypeText    = ColumnType{capi.TypeText}
	TypeBlob    = ColumnType{capi.TypeBlob}
	TypeNull    = ColumnType{capi.TypeNull}

	ColumnTypes = enum.New(TypeInteger, TypeFloat, TypeText, TypeBlob, TypeNull)
)

func (t ColumnType) String() string {
	switch t {
	case TypeInteger:
		return "Integer"
	case TypeFloat:
		return "Float"
	case TypeText:
		return "Text"
	case TypeBlob:
		return "Blob"
	case TypeNull:
		return "Null"
	default:
		return "Invalid"
	}
}

// Reader is the column-access capability over a positioned row. Both Row
// and *Statement satisfy it; a Statement reads through its currently
// positioned row. Column indexes are 0-based. Reading a column of a
// mismatched type follows the engine's conversion rules.
type Reader interface {
	Int32(col int32) int32
	Int64(col int32) int64
	Float64(col int32) float64
	Text(col int32) string
	Text16(col int32) string
	Blob(col int32) []byte
	TextLen(col int32) int32
	TextLen16(col int32) int32
	BlobLen(col int32) int32
	Type(col int32) ColumnType
	Count() int32
	Name(col int32) string
}

var (
	_ Reader = Row{}
	_ Reader = (*Statement)(nil)
)

func (s *Statement) Int32(col int32) int32     { return s.Row().Int32(col) }
func (s *Statement) Int64(col int32) int64     { return s.Row().Int64(col) }
func (s *Statement) Float64(col int32) float64 { return s.Row().Float64(col) }
func (s *Statement) Text(col int32) string     { return s.Row().Text(col) }
func (s *Statement) Text16(col int32) string   { return s.Row().Text16(col) }
func (s *Statement) Blob(col int32) []byte     { return s.Row().Blob(col) }
func (s *Statement) TextLen(col int32) int32   { return s.Row().TextLen(col) }
func (s *Statement) TextLen16(col int32) int32 { return s.Row().TextLen16(col) }
func (s *Statement) BlobLen(col int32) int32   { return s.Row().BlobLen(col) }
func (s *Statement) Type(col int32) ColumnType { return s.Row().Type(col) }
func (s *Statement) Count() int32              { return s.Row().Count() }
func (s *Statement) Name(col int32) string     { return s.Row().Name(col) }
