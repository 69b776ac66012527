package sqlitekit

import (
	"errors"
	"fmt"
)

// Error is a failure reported by the engine. Code is the extended result
// code and Message the engine's own text, both captured from the failing
// session at the moment of the failure and never translated.
type Error struct {
	Code    int32
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("sqlite: %s (%d)", e.Message, e.Code)
}

// ErrUnexpectedRow is returned by Statement.Execute when a statement that
// was expected to produce no rows produces one.
var ErrUnexpectedRow = errors.New("sqlite: statement produced a row")
