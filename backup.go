package sqlitekit

import (
	"github.com/sqlitekit/sqlitekit/capi"
)

// Backup owns one online backup operation copying pages from a source
// connection into a destination connection. Drive it with Step until it
// reports completion; dropping it early just abandons the copy.
//
// Both connections must stay open for the life of the Backup.
type Backup struct {
	rt   *capi.Runtime
	h    Handle
	dest *Connection
}

// NewBackup starts a backup of srcName (usually "main") on src into
// dstName on dst. An initialization failure reports through the
// destination connection, which is where the engine leaves the error.
func NewBackup(dst, src *Connection, dstName, srcName string) (*Backup, error) {
	rt := dst.rt
	ptr := rt.BackupInit(dst.h.Get(), dstName, src.h.Get(), srcName)
	if ptr == 0 {
		return nil, dst.LastError()
	}

	b := &Backup{rt: rt, dest: dst}
	b.h = NewHandle(func(p uintptr) {
		rt.BackupFinish(p)
	})
	b.h.Reset(ptr)
	return b, nil
}

// Step copies up to pages pages; pages < 0 copies everything that
// remains. It returns true while pages remain and false once the backup
// is complete. On any other engine answer the backup is finished first,
// then the error is captured from the destination connection, so the
// error reported is the backup's own rather than a later one.
func (b *Backup) Step(pages int32) (bool, error) {
	switch rc := b.rt.BackupStep(b.h.Get(), pages); rc {
	case capi.StatusOK:
		return true, nil
	case capi.StatusDone:
		return false, nil
	default:
		b.h.Reset(0)
		return false, b.dest.LastError()
	}
}

// Finish releases the backup handle and reports the first error the
// backup ran into, if any. Finishing twice is a no-op.
func (b *Backup) Finish() error {
	ptr := b.h.Release()
	if ptr == 0 {
		return nil
	}
	if rc := b.rt.BackupFinish(ptr); rc != capi.StatusOK {
		return b.dest.LastError()
	}
	return nil
}

// Raw exposes the native backup handle. Ownership stays with the Backup.
func (b *Backup) Raw() uintptr {
	return b.h.Get()
}
