package sqlitekit

import "unicode/utf16"

type valueKind int

const (
	kindNull valueKind = iota
	kindInt32
	kindInt64
	kindFloat64
	kindText
	kindText16
	kindBlob
)

// Value is one parameter value for positional binding. Build it with the
// constructors below; the zero Value binds SQL NULL.
type Value struct {
	kind   valueKind
	i64    int64
	f64    float64
	text   string
	text16 []uint16
	blob   []byte
}

// Int binds a 32-bit integer.
func Int(v int32) Value { return Value{kind: kindInt32, i64: int64(v)} }

// Int64 binds a 64-bit integer.
func Int64(v int64) Value { return Value{kind: kindInt64, i64: v} }

// Float binds a 64-bit float.
func Float(v float64) Value { return Value{kind: kindFloat64, f64: v} }

// Text binds a string through the engine's UTF-8 entry point.
func Text(v string) Value { return Value{kind: kindText, text: v} }

// Text16 binds a string through the engine's UTF-16 entry point.
func Text16(v string) Value {
	return Value{kind: kindText16, text16: utf16.Encode([]rune(v))}
}

// Blob binds a byte slice. A nil slice binds SQL NULL.
func Blob(v []byte) Value { return Value{kind: kindBlob, blob: v} }

// Null binds SQL NULL.
func Null() Value { return Value{kind: kindNull} }
