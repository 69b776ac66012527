package sqlitekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowIterator(t *testing.T) {
	newSeq := func(t *testing.T) *Connection {
		t.Helper()
		conn, err := Memory()
		assert.NoError(t, err)
		t.Cleanup(func() { conn.Close() })

		mustExec(t, conn, "CREATE TABLE seq (id INTEGER PRIMARY KEY, val TEXT)")
		for _, v := range []string{"uno", "dos", "tres"} {
			mustExec(t, conn, "INSERT INTO seq (val) VALUES (?)", Text(v))
		}
		return conn
	}

	t.Run("WalksAllRows", func(t *testing.T) {
		conn := newSeq(t)

		stmt, err := Prepare(conn, "SELECT id, val FROM seq ORDER BY id", EncodingUTF8)
		assert.NoError(t, err)
		defer stmt.Finalize()

		var vals []string
		it := stmt.Rows()
		for it.Next() {
			vals = append(vals, it.Row().Text(1))
		}
		assert.NoError(t, it.Err())
		assert.Equal(t, []string{"uno", "dos", "tres"}, vals)
	})

	t.Run("MatchesManualStepping", func(t *testing.T) {
		conn := newSeq(t)

		stmt, err := Prepare(conn, "SELECT id FROM seq", EncodingUTF8)
		assert.NoError(t, err)
		defer stmt.Finalize()

		manual := 0
		for {
			row, err := stmt.Step()
			assert.NoError(t, err)
			if !row {
				break
			}
			manual++
		}

		assert.NoError(t, stmt.Reset())
		iterated := 0
		it := stmt.Rows()
		for it.Next() {
			iterated++
		}
		assert.NoError(t, it.Err())
		assert.Equal(t, manual, iterated)
	})

	t.Run("ExhaustedStaysExhausted", func(t *testing.T) {
		conn := newSeq(t)

		stmt, err := Prepare(conn, "SELECT id FROM seq", EncodingUTF8)
		assert.NoError(t, err)
		defer stmt.Finalize()

		it := stmt.Rows()
		for it.Next() {
		}
		assert.False(t, it.Next())
		assert.False(t, it.Next())
		assert.NoError(t, it.Err())
	})

	t.Run("RestartViaResetAndNewIterator", func(t *testing.T) {
		conn := newSeq(t)

		stmt, err := Prepare(conn, "SELECT id FROM seq", EncodingUTF8)
		assert.NoError(t, err)
		defer stmt.Finalize()

		count := func() int {
			n := 0
			it := stmt.Rows()
			for it.Next() {
				n++
			}
			assert.NoError(t, it.Err())
			return n
		}

		assert.Equal(t, 3, count())
		assert.NoError(t, stmt.Reset())
		assert.Equal(t, 3, count())
	})

	t.Run("RowSnapshotReadsAllColumns", func(t *testing.T) {
		conn := newSeq(t)

		stmt, err := Prepare(conn, "SELECT id, val FROM seq WHERE id = 2", EncodingUTF8)
		assert.NoError(t, err)
		defer stmt.Finalize()

		it := stmt.Rows()
		assert.True(t, it.Next())

		row := it.Row()
		assert.Equal(t, int32(2), row.Count())
		assert.Equal(t, "id", row.Name(0))
		assert.Equal(t, int64(2), row.Int64(0))
		assert.Equal(t, "dos", row.Text(1))
		assert.Equal(t, TypeInteger, row.Type(0))

		assert.False(t, it.Next())
	})
}
