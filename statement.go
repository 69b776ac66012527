package sqlitekit

import (
	"unicode/utf16"

	"github.com/sqlitekit/sqlitekit/capi"
)

// Statement owns one prepared statement. Prepare it, bind parameters,
// then drive it with Step (or Execute for statements that must not
// produce rows). Reset rewinds it for another run; bound parameters
// survive a Reset.
//
// A Statement must not outlive the Connection it was prepared on.
type Statement struct {
	rt *capi.Runtime
	h  Handle
}

// Prepare compiles the first statement of sql on conn and binds values
// in order (the first value goes to parameter position 1). A prepare
// failure reports through the connection, since no statement exists yet;
// a bind failure finalizes the fresh statement before returning.
//
// SQL with no statement in it (empty or whitespace) yields a Statement
// whose Valid reports false; stepping it is a caller error.
func Prepare(conn *Connection, sql string, enc Encoding, values ...Value) (*Statement, error) {
	rt := conn.rt

	var ptr uintptr
	var rc int32
	if enc.wide() {
		ptr, rc = rt.Prepare16(conn.h.Get(), utf16.Encode([]rune(sql)))
	} else {
		ptr, rc = rt.Prepare(conn.h.Get(), sql)
	}
	if rc != capi.StatusOK {
		return nil, conn.LastError()
	}

	s := &Statement{rt: rt}
	s.h = NewHandle(func(p uintptr) {
		rt.Finalize(p)
	})
	s.h.Reset(ptr)

	if err := s.BindAll(values...); err != nil {
		s.Finalize()
		return nil, err
	}
	return s, nil
}

// Exec prepares, runs, and finalizes a statement that must not produce
// rows, binding values in order. It is the one-shot form of
// Prepare + Execute + Finalize.
func Exec(conn *Connection, sql string, enc Encoding, values ...Value) error {
	stmt, err := Prepare(conn, sql, enc, values...)
	if err != nil {
		return err
	}
	if err := stmt.Execute(); err != nil {
		stmt.Finalize()
		return err
	}
	return stmt.Finalize()
}

// Valid reports whether the statement holds a compiled statement.
func (s *Statement) Valid() bool {
	return s.h.Valid()
}

// Raw exposes the native statement handle. Ownership stays with the
// Statement.
func (s *Statement) Raw() uintptr {
	return s.h.Get()
}

// lastError captures the error state of the session this statement was
// prepared on.
func (s *Statement) lastError() *Error {
	db := s.rt.DBHandle(s.h.Get())
	return &Error{
		Code:    s.rt.ExtendedErrCode(db),
		Message: s.rt.ErrMsg(db),
	}
}

func (s *Statement) check(rc int32) error {
	if rc == capi.StatusOK {
		return nil
	}
	return s.lastError()
}

// Bind binds one value at a 1-based parameter position.
func (s *Statement) Bind(pos int32, v Value) error {
	switch v.kind {
	case kindInt32:
		return s.BindInt32(pos, int32(v.i64))
	case kindInt64:
		return s.BindInt64(pos, v.i64)
	case kindFloat64:
		return s.BindFloat64(pos, v.f64)
	case kindText:
		return s.BindText(pos, v.text)
	case kindText16:
		return s.check(s.rt.BindText16(s.h.Get(), pos, v.text16))
	case kindBlob:
		return s.BindBlob(pos, v.blob)
	default:
		return s.BindNull(pos)
	}
}

// BindAll binds values left to right starting at position 1.
func (s *Statement) BindAll(values ...Value) error {
	for i, v := range values {
		if err := s.Bind(int32(i)+1, v); err != nil {
			return err
		}
	}
	return nil
}

func (s *Statement) BindInt32(pos int32, v int32) error {
	return s.check(s.rt.BindInt32(s.h.Get(), pos, v))
}

func (s *Statement) BindInt64(pos int32, v int64) error {
	return s.check(s.rt.BindInt64(s.h.Get(), pos, v))
}

func (s *Statement) BindFloat64(pos int32, v float64) error {
	return s.check(s.rt.BindFloat64(s.h.Get(), pos, v))
}

// BindText binds a string through the engine's UTF-8 entry point.
func (s *Statement) BindText(pos int32, v string) error {
	return s.check(s.rt.BindText(s.h.Get(), pos, v))
}

// BindText16 binds a string through the engine's UTF-16 entry point.
func (s *Statement) BindText16(pos int32, v string) error {
	return s.check(s.rt.BindText16(s.h.Get(), pos, utf16.Encode([]rune(v))))
}

// BindBlob binds a byte slice. A nil slice binds SQL NULL.
func (s *Statement) BindBlob(pos int32, v []byte) error {
	return s.check(s.rt.BindBlob(s.h.Get(), pos, v))
}

func (s *Statement) BindNull(pos int32) error {
	return s.check(s.rt.BindNull(s.h.Get(), pos))
}

// Step advances the statement. It returns true when a row is positioned
// and false when the statement ran to completion. Any other engine
// answer is returned as the session's error; the statement is left as
// the engine left it, so the caller decides whether to Reset.
func (s *Statement) Step() (bool, error) {
	switch rc := s.rt.Step(s.h.Get()); rc {
	case capi.StatusRow:
		return true, nil
	case capi.StatusDone:
		return false, nil
	default:
		return false, s.lastError()
	}
}

// Execute runs a statement that must not produce rows. It returns
// ErrUnexpectedRow if one appears.
func (s *Statement) Execute() error {
	row, err := s.Step()
	if err != nil {
		return err
	}
	if row {
		return ErrUnexpectedRow
	}
	return nil
}

// Reset rewinds the statement for another run. Bound parameters keep
// their values.
func (s *Statement) Reset() error {
	return s.check(s.rt.Reset(s.h.Get()))
}

// Finalize destroys the statement and reports the finalize status, which
// repeats the error of the most recent failed Step if there was one.
// Finalizing an already-finalized statement is a no-op. After Finalize
// the close strategy will not run again.
func (s *Statement) Finalize() error {
	ptr := s.h.Release()
	if ptr == 0 {
		return nil
	}
	db := s.rt.DBHandle(ptr)
	if rc := s.rt.Finalize(ptr); rc != capi.StatusOK {
		return &Error{
			Code:    s.rt.ExtendedErrCode(db),
			Message: s.rt.ErrMsg(db),
		}
	}
	return nil
}

// Row returns a view over the currently positioned row. The view shares
// the statement's handle and is invalidated by the next Step, Reset, or
// Finalize.
func (s *Statement) Row() Row {
	return Row{rt: s.rt, stmt: s.h.Get()}
}

// Rows returns a forward-only iterator over the statement's remaining
// rows. The iterator is not restartable; Reset the statement and take a
// new one to traverse again.
func (s *Statement) Rows() *RowIterator {
	return &RowIterator{stmt: s}
}
