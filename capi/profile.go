package capi

import (
	"sync"
	"unsafe"

	"modernc.org/libc"
	lib "modernc.org/sqlite/lib"
)

// ProfileFunc receives the SQL text of a completed statement and its wall
// time in nanoseconds.
type ProfileFunc func(sql string, elapsedNs int64)

// profileFuncs maps a session handle to its registered callback. The
// engine calls back through a single C trampoline, which looks the Go
// function up here.
var profileFuncs sync.Map // uintptr -> ProfileFunc

var profileTrampolinePtr = cFuncPointer(profileTrampoline)

func profileTrampoline(tls *libc.TLS, mask uint32, pCtx, pStmt, pElapsed uintptr) int32 {
	if mask != lib.SQLITE_TRACE_PROFILE {
		return 0
	}
	v, ok := profileFuncs.Load(pCtx)
	if !ok {
		return 0
	}
	sql := libc.GoString(lib.Xsqlite3_sql(tls, pStmt))
	elapsed := *(*int64)(unsafe.Pointer(pElapsed))
	v.(ProfileFunc)(sql, elapsed)
	return 0
}

// Profile registers fn to be invoked each time a statement on the
// session finishes running. A nil fn removes the registration.
func (rt *Runtime) Profile(db uintptr, fn ProfileFunc) {
	if fn == nil {
		profileFuncs.Delete(db)
		lib.Xsqlite3_trace_v2(rt.tls, db, 0, 0, 0)
		return
	}
	profileFuncs.Store(db, fn)
	lib.Xsqlite3_trace_v2(rt.tls, db, lib.SQLITE_TRACE_PROFILE, profileTrampolinePtr, db)
}

// ReleaseProfile drops the callback registered for a session. Called when
// the session closes so the registry does not leak.
func (rt *Runtime) ReleaseProfile(db uintptr) {
	profileFuncs.Delete(db)
}
