package sqlitekit

import (
	"time"
	"unicode/utf16"

	"github.com/sqlitekit/sqlitekit/capi"
)

// memoryPath is the engine's reserved name for a private in-memory
// database.
const memoryPath = ":memory:"

// Connection owns one database session. The zero Connection is invalid;
// open one with Open, Memory, or the Open method.
//
// A Connection is not safe for concurrent use.
type Connection struct {
	rt *capi.Runtime
	h  Handle
}

// Open opens the database at path. On failure the half-opened session is
// interrogated for the error and closed before Open returns, so no
// partially opened Connection ever escapes.
func Open(path string, enc Encoding) (*Connection, error) {
	rt := capi.NewRuntime()

	var db uintptr
	var rc int32
	if enc.wide() {
		db, rc = rt.Open16(utf16.Encode([]rune(path)))
	} else {
		db, rc = rt.Open(path)
	}
	if rc != capi.StatusOK {
		var err *Error
		if db != 0 {
			err = &Error{Code: rt.ExtendedErrCode(db), Message: rt.ErrMsg(db)}
			rt.CloseSession(db)
		} else {
			err = &Error{Code: rc, Message: rt.ErrStr(rc)}
		}
		rt.Close()
		return nil, err
	}

	c := &Connection{rt: rt}
	c.h = NewHandle(func(ptr uintptr) {
		rt.ReleaseProfile(ptr)
		rt.CloseSession(ptr)
	})
	c.h.Reset(db)
	return c, nil
}

// OpenPath opens the database at path with UTF-8 semantics.
func OpenPath(path string) (*Connection, error) {
	return Open(path, EncodingUTF8)
}

// Memory opens a private in-memory database.
func Memory() (*Connection, error) {
	return Open(memoryPath, EncodingUTF8)
}

// Memory16 opens a private in-memory database through the UTF-16 entry
// point.
func Memory16() (*Connection, error) {
	return Open(memoryPath, EncodingUTF16)
}

// Open replaces the receiver's session with a newly opened one. The new
// session is fully opened into a temporary before the receiver is
// touched; on failure the receiver keeps its current session.
func (c *Connection) Open(path string, enc Encoding) error {
	tmp, err := Open(path, enc)
	if err != nil {
		return err
	}
	oldRT := c.rt
	c.h.Swap(&tmp.h)
	c.rt = tmp.rt
	if oldRT != nil {
		oldRT.Close()
	}
	return nil
}

// Valid reports whether the connection holds an open session.
func (c *Connection) Valid() bool {
	return c.h.Valid()
}

// Raw exposes the native session handle. Ownership stays with the
// Connection.
func (c *Connection) Raw() uintptr {
	return c.h.Get()
}

// RowID reports the rowid of the most recent successful insert on this
// session.
func (c *Connection) RowID() int64 {
	return c.rt.LastInsertRowID(c.h.Get())
}

// Changes reports the number of rows modified by the most recently
// completed statement on this session.
func (c *Connection) Changes() int32 {
	return c.rt.Changes(c.h.Get())
}

// LastError captures the session's current error state.
func (c *Connection) LastError() *Error {
	return &Error{
		Code:    c.rt.ExtendedErrCode(c.h.Get()),
		Message: c.rt.ErrMsg(c.h.Get()),
	}
}

// Profile registers fn to run after each statement on this session
// completes, with the statement's SQL and wall time. A nil fn removes
// the hook.
func (c *Connection) Profile(fn func(sql string, elapsed time.Duration)) {
	if fn == nil {
		c.rt.Profile(c.h.Get(), nil)
		return
	}
	c.rt.Profile(c.h.Get(), func(sql string, elapsedNs int64) {
		fn(sql, time.Duration(elapsedNs))
	})
}

// Close releases the session. Statements prepared on it must be
// finalized first; a session closed with live statements is torn down by
// the engine once they finish. The close status is deliberately not
// reported: by this point the owner can do nothing with it.
func (c *Connection) Close() error {
	c.h.Reset(0)
	if c.rt != nil {
		c.rt.Close()
		c.rt = nil
	}
	return nil
}
