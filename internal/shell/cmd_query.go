package shell

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/sqlitekit/sqlitekit"
)

func newQueryTableWriter() table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Header = text.FormatDefault
	tw.Style().Color = table.ColorOptions{
		Header:       text.Colors{text.FgHiWhite, text.Bold},
		IndexColumn:  text.Colors{text.FgWhite},
		Row:          text.Colors{text.FgWhite},
		RowAlternate: text.Colors{text.FgWhite},
		Footer:       text.Colors{text.FgWhite},
	}
	return tw
}

func renderError(err error) {
	tw := newQueryTableWriter()
	tw.AppendHeader(table.Row{"Error"})
	tw.AppendRow(table.Row{err.Error()})
	fmt.Println(tw.Render())
}

func cmdQuery(s *Shell, input string) {
	stmt, err := sqlitekit.Prepare(s.conn, input, s.conf.ParsedEncoding)
	if err != nil {
		renderError(err)
		return
	}
	defer stmt.Finalize()

	if !stmt.Valid() {
		return
	}

	if stmt.Count() == 0 {
		if err := stmt.Execute(); err != nil {
			renderError(err)
			return
		}

		tw := newQueryTableWriter()
		tw.AppendHeader(table.Row{"-", "Rows Affected", "Last Insert ID"})
		tw.AppendRow(table.Row{"OK", s.conn.Changes(), s.conn.RowID()})
		fmt.Println(tw.Render())
		return
	}

	tw := newQueryTableWriter()
	header := table.Row{}
	for i := int32(0); i < stmt.Count(); i++ {
		header = append(header, stmt.Name(i))
	}
	tw.AppendHeader(header)

	it := stmt.Rows()
	for it.Next() {
		row := it.Row()
		cells := table.Row{}
		for i := int32(0); i < row.Count(); i++ {
			cells = append(cells, renderCell(row, i))
		}
		tw.AppendRow(cells)
	}
	if err := it.Err(); err != nil {
		renderError(err)
		return
	}

	fmt.Println(tw.Render())
}

// renderCell formats one column of the positioned row by its storage
// class.
func renderCell(row sqlitekit.Row, col int32) string {
	switch row.Type(col) {
	case sqlitekit.TypeNull:
		return "NULL"
	case sqlitekit.TypeInteger:
		return fmt.Sprintf("%d", row.Int64(col))
	case sqlitekit.TypeFloat:
		return fmt.Sprintf("%g", row.Float64(col))
	case sqlitekit.TypeBlob:
		return fmt.Sprintf("x'%x'", row.Blob(col))
	default:
		return row.Text(col)
	}
}

// quoteIdent wraps a user-supplied identifier in double quotes for safe
// interpolation into schema queries.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func cmdCount(s *Shell, tableName string) {
	if tableName == "" {
		renderError(fmt.Errorf("usage: .count table_name"))
		return
	}
	cmdQuery(s, fmt.Sprintf("SELECT COUNT(*) AS count FROM %s", quoteIdent(tableName)))
}

func cmdColumns(s *Shell, tableName string) {
	if tableName == "" {
		renderError(fmt.Errorf("usage: .columns table_name"))
		return
	}
	cmdQuery(s, fmt.Sprintf("SELECT name, type, \"notnull\", dflt_value, pk FROM pragma_table_info(%s)", quoteSQLString(tableName)))
}

// quoteSQLString wraps a user-supplied value in single quotes for safe
// interpolation where a parameter cannot be bound.
func quoteSQLString(v string) string {
	return "'" + strings.ReplaceAll(v, "'", "''") + "'"
}
