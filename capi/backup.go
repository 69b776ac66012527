package capi

import (
	"modernc.org/libc"
	lib "modernc.org/sqlite/lib"
)

// BackupInit starts an online backup from a schema of the source session
// into a schema of the destination session. A zero return means the
// initialization failed and the destination session holds the error.
func (rt *Runtime) BackupInit(dst uintptr, dstName string, src uintptr, srcName string) uintptr {
	cdst, err := libc.CString(dstName)
	if err != nil {
		return 0
	}
	defer libc.Xfree(rt.tls, cdst)
	csrc, err := libc.CString(srcName)
	if err != nil {
		return 0
	}
	defer libc.Xfree(rt.tls, csrc)

	return lib.Xsqlite3_backup_init(rt.tls, dst, cdst, src, csrc)
}

// BackupStep copies up to pages pages; pages < 0 copies everything that
// remains. StatusOK means more pages remain, StatusDone means the copy is
// complete.
func (rt *Runtime) BackupStep(backup uintptr, pages int32) int32 {
	return lib.Xsqlite3_backup_step(rt.tls, backup, pages)
}

// BackupFinish releases the backup handle and reports the first error
// encountered during the backup, if any.
func (rt *Runtime) BackupFinish(backup uintptr) int32 {
	return lib.Xsqlite3_backup_finish(rt.tls, backup)
}
