package capi

import (
	"sync"
	"unsafe"

	"modernc.org/libc"
	"modernc.org/libc/sys/types"
	lib "modernc.org/sqlite/lib"
)

// Status codes returned by the engine. Only the codes the upper layer
// branches on are named here; everything else travels as the raw int32.
const (
	StatusOK   = lib.SQLITE_OK
	StatusRow  = lib.SQLITE_ROW
	StatusDone = lib.SQLITE_DONE
)

// Column type tags as reported by sqlite3_column_type.
const (
	TypeInteger = lib.SQLITE_INTEGER
	TypeFloat   = lib.SQLITE_FLOAT
	TypeText    = lib.SQLITE_TEXT
	TypeBlob    = lib.SQLITE_BLOB
	TypeNull    = lib.SQLITE_NULL
)

var ptrSize = types.Size_t(unsafe.Sizeof(uintptr(0)))

var initOnce sync.Once

// Runtime carries the libc thread state every engine call needs. One
// Runtime serves one session; the engine's serialized threading mode
// handles cross-goroutine use of the session itself.
type Runtime struct {
	tls *libc.TLS
}

// NewRuntime initializes the engine (once per process) and allocates a
// thread state for a new session.
func NewRuntime() *Runtime {
	rt := &Runtime{tls: libc.NewTLS()}
	initOnce.Do(func() {
		lib.Xsqlite3_initialize(rt.tls)
	})
	return rt
}

// Close releases the thread state. The caller must have closed every
// session and statement that used it first.
func (rt *Runtime) Close() {
	rt.tls.Close()
}

// Open opens a database session with UTF-8 path semantics. It returns the
// session handle and the status code; on failure the handle may still be
// non-zero and must be passed to CloseSession after error capture.
func (rt *Runtime) Open(path string) (uintptr, int32) {
	cpath, err := libc.CString(path)
	if err != nil {
		return 0, lib.SQLITE_NOMEM
	}
	defer libc.Xfree(rt.tls, cpath)

	pdb := libc.Xmalloc(rt.tls, ptrSize)
	if pdb == 0 {
		return 0, lib.SQLITE_NOMEM
	}
	defer libc.Xfree(rt.tls, pdb)

	rc := lib.Xsqlite3_open(rt.tls, cpath, pdb)
	return *(*uintptr)(unsafe.Pointer(pdb)), rc
}

// Open16 opens a database session with UTF-16 path semantics. The path is
// converted to native-order UTF-16 with a terminating NUL.
func (rt *Runtime) Open16(path []uint16) (uintptr, int32) {
	cpath := libc.Xmalloc(rt.tls, types.Size_t(len(path)*2+2))
	if cpath == 0 {
		return 0, lib.SQLITE_NOMEM
	}
	defer libc.Xfree(rt.tls, cpath)
	dst := unsafe.Slice((*uint16)(unsafe.Pointer(cpath)), len(path)+1)
	copy(dst, path)
	dst[len(path)] = 0

	pdb := libc.Xmalloc(rt.tls, ptrSize)
	if pdb == 0 {
		return 0, lib.SQLITE_NOMEM
	}
	defer libc.Xfree(rt.tls, pdb)

	rc := lib.Xsqlite3_open16(rt.tls, cpath, pdb)
	return *(*uintptr)(unsafe.Pointer(pdb)), rc
}

// CloseSession closes a session handle. Uses close_v2 so a session with
// unfinalized statements enters zombie state instead of failing.
func (rt *Runtime) CloseSession(db uintptr) int32 {
	return lib.Xsqlite3_close_v2(rt.tls, db)
}

// ExtendedErrCode returns the extended result code of the most recent
// failed call on the session.
func (rt *Runtime) ExtendedErrCode(db uintptr) int32 {
	return lib.Xsqlite3_extended_errcode(rt.tls, db)
}

// ErrMsg returns the UTF-8 error message of the most recent failed call
// on the session.
func (rt *Runtime) ErrMsg(db uintptr) string {
	return libc.GoString(lib.Xsqlite3_errmsg(rt.tls, db))
}

// ErrStr returns the generic English description of a result code. Used
// when no session handle exists to ask for details.
func (rt *Runtime) ErrStr(rc int32) string {
	return libc.GoString(lib.Xsqlite3_errstr(rt.tls, rc))
}

// LastInsertRowID reports the rowid of the most recent successful insert
// on the session.
func (rt *Runtime) LastInsertRowID(db uintptr) int64 {
	return lib.Xsqlite3_last_insert_rowid(rt.tls, db)
}

// Changes reports the number of rows modified by the most recently
// completed statement on the session.
func (rt *Runtime) Changes(db uintptr) int32 {
	return lib.Xsqlite3_changes(rt.tls, db)
}
