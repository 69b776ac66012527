package sqlitekit

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestStatement(t *testing.T) {
	t.Run("BindAndStep", func(t *testing.T) {
		conn, err := Memory()
		assert.NoError(t, err)
		defer conn.Close()

		stmt, err := Prepare(conn, "SELECT ?", EncodingUTF8, Int(42))
		assert.NoError(t, err)
		defer stmt.Finalize()

		row, err := stmt.Step()
		assert.NoError(t, err)
		assert.True(t, row)
		assert.Equal(t, int32(42), stmt.Int32(0))

		row, err = stmt.Step()
		assert.NoError(t, err)
		assert.False(t, row)
	})

	t.Run("PrepareFailure", func(t *testing.T) {
		conn, err := Memory()
		assert.NoError(t, err)
		defer conn.Close()

		stmt, err := Prepare(conn, "SELECT FROM WHERE", EncodingUTF8)
		assert.Nil(t, stmt)
		assert.Error(t, err)

		var serr *Error
		assert.ErrorAs(t, err, &serr)
		assert.NotZero(t, serr.Code)
		assert.NotEmpty(t, serr.Message)
	})

	t.Run("Prepare16", func(t *testing.T) {
		conn, err := Memory()
		assert.NoError(t, err)
		defer conn.Close()

		stmt, err := Prepare(conn, "SELECT 'ancho' || 'x'", EncodingUTF16)
		assert.NoError(t, err)
		defer stmt.Finalize()

		row, err := stmt.Step()
		assert.NoError(t, err)
		assert.True(t, row)
		assert.Equal(t, "anchox", stmt.Text(0))
		assert.Equal(t, "anchox", stmt.Text16(0))
	})

	t.Run("BindAllOrder", func(t *testing.T) {
		conn, err := Memory()
		assert.NoError(t, err)
		defer conn.Close()

		mustExec(t, conn, "CREATE TABLE trio (a INTEGER, b REAL, c TEXT)")
		mustExec(t, conn,
			"INSERT INTO trio (a, b, c) VALUES (?, ?, ?)",
			Int64(9000000000), Float(3.14), Text("tres"),
		)

		stmt, err := Prepare(conn, "SELECT a, b, c FROM trio", EncodingUTF8)
		assert.NoError(t, err)
		defer stmt.Finalize()

		row, err := stmt.Step()
		assert.NoError(t, err)
		assert.True(t, row)
		assert.Equal(t, int64(9000000000), stmt.Int64(0))
		assert.Equal(t, 3.14, stmt.Float64(1))
		assert.Equal(t, "tres", stmt.Text(2))
	})

	t.Run("TextRoundTripBothWidths", func(t *testing.T) {
		conn, err := Memory()
		assert.NoError(t, err)
		defer conn.Close()

		mustExec(t, conn, "CREATE TABLE txt (narrow TEXT, wide TEXT)")

		value := "camión π " + uuid.NewString()
		stmt, err := Prepare(conn, "INSERT INTO txt (narrow, wide) VALUES (?, ?)", EncodingUTF8)
		assert.NoError(t, err)
		assert.NoError(t, stmt.BindText(1, value))
		assert.NoError(t, stmt.BindText16(2, value))
		assert.NoError(t, stmt.Execute())
		assert.NoError(t, stmt.Finalize())

		sel, err := Prepare(conn, "SELECT narrow, wide FROM txt", EncodingUTF8)
		assert.NoError(t, err)
		defer sel.Finalize()

		row, err := sel.Step()
		assert.NoError(t, err)
		assert.True(t, row)
		assert.Equal(t, value, sel.Text(0))
		assert.Equal(t, value, sel.Text16(0))
		assert.Equal(t, value, sel.Text(1))
		assert.Equal(t, value, sel.Text16(1))
	})

	t.Run("BlobAndNull", func(t *testing.T) {
		conn, err := Memory()
		assert.NoError(t, err)
		defer conn.Close()

		mustExec(t, conn, "CREATE TABLE bin (data BLOB, hole TEXT)")
		payload := []byte{0x00, 0x01, 0xFF, 0x7F}
		mustExec(t, conn, "INSERT INTO bin (data, hole) VALUES (?, ?)", Blob(payload), Null())

		stmt, err := Prepare(conn, "SELECT data, hole FROM bin", EncodingUTF8)
		assert.NoError(t, err)
		defer stmt.Finalize()

		row, err := stmt.Step()
		assert.NoError(t, err)
		assert.True(t, row)
		assert.Equal(t, TypeBlob, stmt.Type(0))
		assert.Equal(t, payload, stmt.Blob(0))
		assert.Equal(t, int32(len(payload)), stmt.BlobLen(0))
		assert.Equal(t, TypeNull, stmt.Type(1))
	})

	t.Run("ColumnTypesAndNames", func(t *testing.T) {
		conn, err := Memory()
		assert.NoError(t, err)
		defer conn.Close()

		stmt, err := Prepare(conn, "SELECT 1 AS uno, 2.5 AS dos, 'tres' AS tres", EncodingUTF8)
		assert.NoError(t, err)
		defer stmt.Finalize()

		row, err := stmt.Step()
		assert.NoError(t, err)
		assert.True(t, row)

		assert.Equal(t, int32(3), stmt.Count())
		assert.Equal(t, "uno", stmt.Name(0))
		assert.Equal(t, "dos", stmt.Name(1))
		assert.Equal(t, "tres", stmt.Name(2))

		assert.Equal(t, TypeInteger, stmt.Type(0))
		assert.Equal(t, TypeFloat, stmt.Type(1))
		assert.Equal(t, TypeText, stmt.Type(2))
		assert.Equal(t, "Integer", stmt.Type(0).String())
		assert.Equal(t, "Float", stmt.Type(1).String())
		assert.Equal(t, "Text", stmt.Type(2).String())
	})

	t.Run("TextLengths", func(t *testing.T) {
		conn, err := Memory()
		assert.NoError(t, err)
		defer conn.Close()

		stmt, err := Prepare(conn, "SELECT 'camión'", EncodingUTF8)
		assert.NoError(t, err)
		defer stmt.Finalize()

		row, err := stmt.Step()
		assert.NoError(t, err)
		assert.True(t, row)
		assert.Equal(t, int32(7), stmt.TextLen(0))   // UTF-8 bytes
		assert.Equal(t, int32(6), stmt.TextLen16(0)) // UTF-16 code units
	})

	t.Run("ExecOneShot", func(t *testing.T) {
		conn, err := Memory()
		assert.NoError(t, err)
		defer conn.Close()

		assert.NoError(t, Exec(conn, "CREATE TABLE one (id INTEGER PRIMARY KEY, val TEXT)", EncodingUTF8))
		assert.NoError(t, Exec(conn, "INSERT INTO one (val) VALUES (?)", EncodingUTF8, Text("shot")))
		assert.Equal(t, int64(1), conn.RowID())

		// A failing prepare reports through the connection.
		err = Exec(conn, "INSERT INTO nowhere VALUES (1)", EncodingUTF8)
		var serr *Error
		assert.ErrorAs(t, err, &serr)
		assert.NotZero(t, serr.Code)

		// A statement that yields a row is rejected.
		assert.ErrorIs(t, Exec(conn, "SELECT val FROM one", EncodingUTF8), ErrUnexpectedRow)
	})

	t.Run("ExecuteRejectsRows", func(t *testing.T) {
		conn, err := Memory()
		assert.NoError(t, err)
		defer conn.Close()

		stmt, err := Prepare(conn, "SELECT 1", EncodingUTF8)
		assert.NoError(t, err)
		defer stmt.Finalize()

		assert.ErrorIs(t, stmt.Execute(), ErrUnexpectedRow)
	})

	t.Run("ResetKeepsBindings", func(t *testing.T) {
		conn, err := Memory()
		assert.NoError(t, err)
		defer conn.Close()

		stmt, err := Prepare(conn, "SELECT ?", EncodingUTF8, Text("sticky"))
		assert.NoError(t, err)
		defer stmt.Finalize()

		for i := 0; i < 3; i++ {
			row, err := stmt.Step()
			assert.NoError(t, err)
			assert.True(t, row)
			assert.Equal(t, "sticky", stmt.Text(0))
			assert.NoError(t, stmt.Reset())
		}
	})

	t.Run("StepFailureReportsSessionError", func(t *testing.T) {
		conn, err := Memory()
		assert.NoError(t, err)
		defer conn.Close()

		mustExec(t, conn, "CREATE TABLE uniq (id INTEGER PRIMARY KEY, val TEXT UNIQUE)")
		mustExec(t, conn, "INSERT INTO uniq (val) VALUES ('dup')")

		stmt, err := Prepare(conn, "INSERT INTO uniq (val) VALUES ('dup')", EncodingUTF8)
		assert.NoError(t, err)
		defer stmt.Finalize()

		_, err = stmt.Step()
		assert.Error(t, err)

		var serr *Error
		assert.ErrorAs(t, err, &serr)
		assert.NotZero(t, serr.Code)
		assert.Contains(t, serr.Message, "UNIQUE")
	})

	t.Run("FinalizeTwice", func(t *testing.T) {
		conn, err := Memory()
		assert.NoError(t, err)
		defer conn.Close()

		stmt, err := Prepare(conn, "SELECT 1", EncodingUTF8)
		assert.NoError(t, err)
		assert.NoError(t, stmt.Finalize())
		assert.False(t, stmt.Valid())
		assert.NoError(t, stmt.Finalize())
	})

	t.Run("WhitespaceSQLIsInvalidStatement", func(t *testing.T) {
		conn, err := Memory()
		assert.NoError(t, err)
		defer conn.Close()

		stmt, err := Prepare(conn, "  \n\t", EncodingUTF8)
		assert.NoError(t, err)
		assert.False(t, stmt.Valid())
		assert.NoError(t, stmt.Finalize())
	})
}
