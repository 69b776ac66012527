package capi

import (
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
)

func utf16z(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// openMemory opens an in-memory session and registers cleanup.
func openMemory(t *testing.T) (*Runtime, uintptr) {
	t.Helper()
	rt := NewRuntime()
	db, rc := rt.Open(":memory:")
	assert.Equal(t, int32(StatusOK), rc)
	assert.NotEqual(t, uintptr(0), db)
	t.Cleanup(func() {
		rt.CloseSession(db)
		rt.Close()
	})
	return rt, db
}

// exec prepares, steps, and finalizes one statement.
func exec(t *testing.T, rt *Runtime, db uintptr, sql string) {
	t.Helper()
	stmt, rc := rt.Prepare(db, sql)
	assert.Equal(t, int32(StatusOK), rc, rt.ErrMsg(db))
	assert.Equal(t, int32(StatusDone), rt.Step(stmt))
	assert.Equal(t, int32(StatusOK), rt.Finalize(stmt))
}

func TestRuntime(t *testing.T) {
	t.Run("OpenClose", func(t *testing.T) {
		rt := NewRuntime()
		db, rc := rt.Open(":memory:")
		assert.Equal(t, int32(StatusOK), rc)
		assert.Equal(t, int32(StatusOK), rt.CloseSession(db))
		rt.Close()
	})

	t.Run("Open16", func(t *testing.T) {
		rt := NewRuntime()
		db, rc := rt.Open16(utf16z(":memory:"))
		assert.Equal(t, int32(StatusOK), rc)
		assert.Equal(t, int32(StatusOK), rt.CloseSession(db))
		rt.Close()
	})

	t.Run("OpenFailure", func(t *testing.T) {
		rt := NewRuntime()
		defer rt.Close()

		db, rc := rt.Open("/nonexistent-dir-for-sure/zzz.db")
		assert.NotEqual(t, int32(StatusOK), rc)
		if db != 0 {
			assert.NotZero(t, rt.ExtendedErrCode(db))
			assert.NotEmpty(t, rt.ErrMsg(db))
			rt.CloseSession(db)
		}
	})

	t.Run("PrepareStepColumns", func(t *testing.T) {
		rt, db := openMemory(t)
		exec(t, rt, db, "CREATE TABLE t (i INTEGER, f REAL, s TEXT, b BLOB)")

		stmt, rc := rt.Prepare(db, "INSERT INTO t VALUES (?, ?, ?, ?)")
		assert.Equal(t, int32(StatusOK), rc)
		assert.Equal(t, int32(StatusOK), rt.BindInt64(stmt, 1, 1<<40))
		assert.Equal(t, int32(StatusOK), rt.BindFloat64(stmt, 2, 2.5))
		assert.Equal(t, int32(StatusOK), rt.BindText(stmt, 3, "hola"))
		assert.Equal(t, int32(StatusOK), rt.BindBlob(stmt, 4, []byte{1, 2, 3}))
		assert.Equal(t, int32(StatusDone), rt.Step(stmt))
		assert.Equal(t, int32(StatusOK), rt.Finalize(stmt))

		stmt, rc = rt.Prepare(db, "SELECT i, f, s, b FROM t")
		assert.Equal(t, int32(StatusOK), rc)
		assert.Equal(t, int32(StatusRow), rt.Step(stmt))

		assert.Equal(t, int32(4), rt.ColumnCount(stmt))
		assert.Equal(t, "i", rt.ColumnName(stmt, 0))
		assert.Equal(t, int32(TypeInteger), rt.ColumnType(stmt, 0))
		assert.Equal(t, int64(1<<40), rt.ColumnInt64(stmt, 0))
		assert.Equal(t, 2.5, rt.ColumnFloat64(stmt, 1))
		assert.Equal(t, "hola", rt.ColumnText(stmt, 2))
		assert.Equal(t, int32(4), rt.ColumnBytes(stmt, 2))
		assert.Equal(t, []byte{1, 2, 3}, rt.ColumnBlob(stmt, 3))

		assert.Equal(t, int32(StatusDone), rt.Step(stmt))
		assert.Equal(t, int32(StatusOK), rt.Finalize(stmt))
	})

	t.Run("UTF16TextBothDirections", func(t *testing.T) {
		rt, db := openMemory(t)
		exec(t, rt, db, "CREATE TABLE w (s TEXT)")

		stmt, rc := rt.Prepare16(db, utf16z("INSERT INTO w VALUES (?)"))
		assert.Equal(t, int32(StatusOK), rc)
		assert.Equal(t, int32(StatusOK), rt.BindText16(stmt, 1, utf16z("señal")))
		assert.Equal(t, int32(StatusDone), rt.Step(stmt))
		assert.Equal(t, int32(StatusOK), rt.Finalize(stmt))

		stmt, rc = rt.Prepare(db, "SELECT s FROM w")
		assert.Equal(t, int32(StatusOK), rc)
		assert.Equal(t, int32(StatusRow), rt.Step(stmt))
		assert.Equal(t, "señal", rt.ColumnText(stmt, 0))
		assert.Equal(t, utf16z("señal"), rt.ColumnText16(stmt, 0))
		assert.Equal(t, int32(10), rt.ColumnBytes16(stmt, 0))
		assert.Equal(t, int32(StatusOK), rt.Finalize(stmt))
	})

	t.Run("StepErrorAndIntrospection", func(t *testing.T) {
		rt, db := openMemory(t)
		exec(t, rt, db, "CREATE TABLE u (v TEXT UNIQUE)")
		exec(t, rt, db, "INSERT INTO u VALUES ('dup')")

		stmt, rc := rt.Prepare(db, "INSERT INTO u VALUES ('dup')")
		assert.Equal(t, int32(StatusOK), rc)

		rc = rt.Step(stmt)
		assert.NotEqual(t, int32(StatusRow), rc)
		assert.NotEqual(t, int32(StatusDone), rc)

		assert.Equal(t, db, rt.DBHandle(stmt))
		assert.NotZero(t, rt.ExtendedErrCode(db))
		assert.Contains(t, rt.ErrMsg(db), "UNIQUE")

		assert.NotEqual(t, int32(StatusOK), rt.Finalize(stmt))
	})

	t.Run("RowIDAndChanges", func(t *testing.T) {
		rt, db := openMemory(t)
		exec(t, rt, db, "CREATE TABLE c (id INTEGER PRIMARY KEY)")
		exec(t, rt, db, "INSERT INTO c (id) VALUES (41)")
		assert.Equal(t, int64(41), rt.LastInsertRowID(db))
		exec(t, rt, db, "DELETE FROM c")
		assert.Equal(t, int32(1), rt.Changes(db))
	})

	t.Run("Backup", func(t *testing.T) {
		rt, src := openMemory(t)
		exec(t, rt, src, "CREATE TABLE b (v TEXT)")
		exec(t, rt, src, "INSERT INTO b VALUES ('copied')")

		dst, rc := rt.Open(":memory:")
		assert.Equal(t, int32(StatusOK), rc)
		defer rt.CloseSession(dst)

		bk := rt.BackupInit(dst, "main", src, "main")
		assert.NotEqual(t, uintptr(0), bk)
		assert.Equal(t, int32(StatusDone), rt.BackupStep(bk, -1))
		assert.Equal(t, int32(StatusOK), rt.BackupFinish(bk))

		stmt, rc := rt.Prepare(dst, "SELECT v FROM b")
		assert.Equal(t, int32(StatusOK), rc)
		assert.Equal(t, int32(StatusRow), rt.Step(stmt))
		assert.Equal(t, "copied", rt.ColumnText(stmt, 0))
		assert.Equal(t, int32(StatusOK), rt.Finalize(stmt))
	})

	t.Run("ProfileHook", func(t *testing.T) {
		rt, db := openMemory(t)

		var sqls []string
		rt.Profile(db, func(sql string, elapsedNs int64) {
			sqls = append(sqls, sql)
			assert.GreaterOrEqual(t, elapsedNs, int64(0))
		})
		defer rt.ReleaseProfile(db)

		exec(t, rt, db, "CREATE TABLE p (id INTEGER)")
		assert.Contains(t, sqls, "CREATE TABLE p (id INTEGER)")

		rt.Profile(db, nil)
		n := len(sqls)
		exec(t, rt, db, "INSERT INTO p VALUES (1)")
		assert.Equal(t, n, len(sqls))
	})
}
