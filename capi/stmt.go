package capi

import (
	"unsafe"

	"modernc.org/libc"
	"modernc.org/libc/sys/types"
	lib "modernc.org/sqlite/lib"
)

// Prepare compiles the first statement of sql (UTF-8) against the
// session. A whitespace-only sql yields status OK and a zero statement
// handle.
func (rt *Runtime) Prepare(db uintptr, sql string) (uintptr, int32) {
	csql, err := libc.CString(sql)
	if err != nil {
		return 0, lib.SQLITE_NOMEM
	}
	defer libc.Xfree(rt.tls, csql)

	pstmt := libc.Xmalloc(rt.tls, ptrSize)
	if pstmt == 0 {
		return 0, lib.SQLITE_NOMEM
	}
	defer libc.Xfree(rt.tls, pstmt)

	rc := lib.Xsqlite3_prepare_v2(rt.tls, db, csql, -1, pstmt, 0)
	return *(*uintptr)(unsafe.Pointer(pstmt)), rc
}

// Prepare16 compiles the first statement of sql (native-order UTF-16)
// against the session.
func (rt *Runtime) Prepare16(db uintptr, sql []uint16) (uintptr, int32) {
	csql := libc.Xmalloc(rt.tls, types.Size_t(len(sql)*2+2))
	if csql == 0 {
		return 0, lib.SQLITE_NOMEM
	}
	defer libc.Xfree(rt.tls, csql)
	dst := unsafe.Slice((*uint16)(unsafe.Pointer(csql)), len(sql)+1)
	copy(dst, sql)
	dst[len(sql)] = 0

	pstmt := libc.Xmalloc(rt.tls, ptrSize)
	if pstmt == 0 {
		return 0, lib.SQLITE_NOMEM
	}
	defer libc.Xfree(rt.tls, pstmt)

	rc := lib.Xsqlite3_prepare16_v2(rt.tls, db, csql, -1, pstmt, 0)
	return *(*uintptr)(unsafe.Pointer(pstmt)), rc
}

// Step advances the statement. StatusRow means a row is positioned,
// StatusDone means the statement ran to completion.
func (rt *Runtime) Step(stmt uintptr) int32 {
	return lib.Xsqlite3_step(rt.tls, stmt)
}

// Reset rewinds the statement so it can be stepped again. Bound
// parameters keep their values.
func (rt *Runtime) Reset(stmt uintptr) int32 {
	return lib.Xsqlite3_reset(rt.tls, stmt)
}

// Finalize destroys the statement handle.
func (rt *Runtime) Finalize(stmt uintptr) int32 {
	return lib.Xsqlite3_finalize(rt.tls, stmt)
}

// DBHandle returns the session a statement was prepared against. That is
// where error details for a failed statement call live.
func (rt *Runtime) DBHandle(stmt uintptr) uintptr {
	return lib.Xsqlite3_db_handle(rt.tls, stmt)
}

// Bind parameter positions are 1-based.

func (rt *Runtime) BindInt32(stmt uintptr, pos int32, v int32) int32 {
	return lib.Xsqlite3_bind_int(rt.tls, stmt, pos, v)
}

func (rt *Runtime) BindInt64(stmt uintptr, pos int32, v int64) int32 {
	return lib.Xsqlite3_bind_int64(rt.tls, stmt, pos, v)
}

func (rt *Runtime) BindFloat64(stmt uintptr, pos int32, v float64) int32 {
	return lib.Xsqlite3_bind_double(rt.tls, stmt, pos, v)
}

func (rt *Runtime) BindNull(stmt uintptr, pos int32) int32 {
	return lib.Xsqlite3_bind_null(rt.tls, stmt, pos)
}

// BindText binds UTF-8 text. The bytes are copied into engine-owned
// memory; the engine frees the copy when it no longer needs it.
func (rt *Runtime) BindText(stmt uintptr, pos int32, v string) int32 {
	n := len(v)
	p := libc.Xmalloc(rt.tls, types.Size_t(n+1))
	if p == 0 {
		return lib.SQLITE_NOMEM
	}
	if n > 0 {
		copy(unsafe.Slice((*byte)(unsafe.Pointer(p)), n), v)
	}
	*(*byte)(unsafe.Pointer(p + uintptr(n))) = 0
	return lib.Xsqlite3_bind_text(rt.tls, stmt, pos, p, int32(n), freeFuncPtr)
}

// BindText16 binds native-order UTF-16 text. The length passed to the
// engine is in bytes.
func (rt *Runtime) BindText16(stmt uintptr, pos int32, v []uint16) int32 {
	n := len(v)
	p := libc.Xmalloc(rt.tls, types.Size_t(n*2+2))
	if p == 0 {
		return lib.SQLITE_NOMEM
	}
	dst := unsafe.Slice((*uint16)(unsafe.Pointer(p)), n+1)
	copy(dst, v)
	dst[n] = 0
	return lib.Xsqlite3_bind_text16(rt.tls, stmt, pos, p, int32(n*2), freeFuncPtr)
}

// BindBlob binds a byte slice. A nil slice binds SQL NULL; an empty
// non-nil slice binds a zero-length blob.
func (rt *Runtime) BindBlob(stmt uintptr, pos int32, v []byte) int32 {
	if v == nil {
		return rt.BindNull(stmt, pos)
	}
	n := len(v)
	p := libc.Xmalloc(rt.tls, types.Size_t(max(n, 1)))
	if p == 0 {
		return lib.SQLITE_NOMEM
	}
	if n > 0 {
		copy(unsafe.Slice((*byte)(unsafe.Pointer(p)), n), v)
	}
	return lib.Xsqlite3_bind_blob(rt.tls, stmt, pos, p, int32(n), freeFuncPtr)
}

// Column indexes are 0-based.

func (rt *Runtime) ColumnInt32(stmt uintptr, col int32) int32 {
	return lib.Xsqlite3_column_int(rt.tls, stmt, col)
}

func (rt *Runtime) ColumnInt64(stmt uintptr, col int32) int64 {
	return lib.Xsqlite3_column_int64(rt.tls, stmt, col)
}

func (rt *Runtime) ColumnFloat64(stmt uintptr, col int32) float64 {
	return lib.Xsqlite3_column_double(rt.tls, stmt, col)
}

// ColumnText returns the column value as UTF-8 text. The bytes are copied
// out before the engine's buffer can be invalidated.
func (rt *Runtime) ColumnText(stmt uintptr, col int32) string {
	p := lib.Xsqlite3_column_text(rt.tls, stmt, col)
	if p == 0 {
		return ""
	}
	n := lib.Xsqlite3_column_bytes(rt.tls, stmt, col)
	return string(unsafe.Slice((*byte)(unsafe.Pointer(p)), n))
}

// ColumnText16 returns the column value as native-order UTF-16 code
// units, copied out of the engine's buffer.
func (rt *Runtime) ColumnText16(stmt uintptr, col int32) []uint16 {
	p := lib.Xsqlite3_column_text16(rt.tls, stmt, col)
	if p == 0 {
		return nil
	}
	n := lib.Xsqlite3_column_bytes16(rt.tls, stmt, col) / 2
	out := make([]uint16, n)
	copy(out, unsafe.Slice((*uint16)(unsafe.Pointer(p)), n))
	return out
}

// ColumnBlob returns a copy of the column's blob value. NULL and
// zero-length blobs both return nil.
func (rt *Runtime) ColumnBlob(stmt uintptr, col int32) []byte {
	p := lib.Xsqlite3_column_blob(rt.tls, stmt, col)
	n := lib.Xsqlite3_column_bytes(rt.tls, stmt, col)
	if p == 0 || n == 0 {
		return nil
	}
	return libc.GoBytes(p, int(n))
}

// ColumnBytes reports the value's length in bytes when read as UTF-8
// text or blob.
func (rt *Runtime) ColumnBytes(stmt uintptr, col int32) int32 {
	return lib.Xsqlite3_column_bytes(rt.tls, stmt, col)
}

// ColumnBytes16 reports the value's length in bytes when read as UTF-16
// text.
func (rt *Runtime) ColumnBytes16(stmt uintptr, col int32) int32 {
	return lib.Xsqlite3_column_bytes16(rt.tls, stmt, col)
}

// ColumnType returns the value's storage class tag (TypeInteger and
// friends). Only meaningful before a typed getter forces a conversion.
func (rt *Runtime) ColumnType(stmt uintptr, col int32) int32 {
	return lib.Xsqlite3_column_type(rt.tls, stmt, col)
}

// ColumnCount reports the number of columns the statement produces.
func (rt *Runtime) ColumnCount(stmt uintptr) int32 {
	return lib.Xsqlite3_column_count(rt.tls, stmt)
}

// ColumnName returns the name of a result column.
func (rt *Runtime) ColumnName(stmt uintptr, col int32) string {
	p := lib.Xsqlite3_column_name(rt.tls, stmt, col)
	if p == 0 {
		return ""
	}
	return libc.GoString(p)
}
