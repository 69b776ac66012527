package bench

import (
	"database/sql"
	"fmt"
	"os"
	"path"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sqlitekit/sqlitekit"
	"github.com/sqlitekit/sqlitekit/internal/pool"
)

// runner is the driver surface the workloads run against, so the same
// benchmark code exercises both the sqlitekit wrapper and a
// database/sql driver.
type runner interface {
	// Exec runs one statement, draining any rows it produces, and
	// reports the number of rows it changed.
	Exec(sqlText string, args ...any) (int64, error)
	// QueryCount runs a query, reads every column of every row, and
	// reports how many rows were read.
	QueryCount(sqlText string) (uint64, error)
	Close() error
}

// --- sqlitekit runner ---

// kitRunner drives the wrapper directly. Connections are not safe for
// concurrent use, so it checks them out of a pool per call.
type kitRunner struct {
	conns *pool.Pool[*sqlitekit.Connection]
}

func newKitRunner(dir string, maxConns int) (*kitRunner, error) {
	dbPath := path.Join(dir, "sqlitekit", "bench.db")
	if err := os.MkdirAll(path.Dir(dbPath), 0755); err != nil {
		return nil, err
	}
	fmt.Println("sqlitekit db path:", dbPath)

	conns, err := pool.New(pool.Config[*sqlitekit.Connection]{
		MaxItems: maxConns,
		MaxIdle:  maxConns,
		NewFunc: func() (*sqlitekit.Connection, error) {
			conn, err := sqlitekit.OpenPath(dbPath)
			if err != nil {
				return nil, err
			}
			if err := drain(conn, "PRAGMA busy_timeout = 5000"); err != nil {
				conn.Close()
				return nil, err
			}
			return conn, nil
		},
		CloseFunc: func(conn *sqlitekit.Connection) error {
			return conn.Close()
		},
	})
	if err != nil {
		return nil, err
	}
	return &kitRunner{conns: conns}, nil
}

// drain steps a statement to completion, discarding any rows. PRAGMA
// statements report their value as a row, so Execute is too strict
// here.
func drain(conn *sqlitekit.Connection, sqlText string, values ...sqlitekit.Value) error {
	stmt, err := sqlitekit.Prepare(conn, sqlText, sqlitekit.EncodingUTF8, values...)
	if err != nil {
		return err
	}
	defer stmt.Finalize()

	if !stmt.Valid() {
		return nil
	}
	for {
		row, err := stmt.Step()
		if err != nil {
			return err
		}
		if !row {
			return nil
		}
	}
}

func (r *kitRunner) Exec(sqlText string, args ...any) (int64, error) {
	conn, err := r.conns.Get()
	if err != nil {
		return 0, err
	}
	defer func() { _ = r.conns.Put(conn) }()

	values := make([]sqlitekit.Value, 0, len(args))
	for _, arg := range args {
		values = append(values, toValue(arg))
	}
	if err := drain(conn, sqlText, values...); err != nil {
		return 0, err
	}
	return int64(conn.Changes()), nil
}

func (r *kitRunner) QueryCount(sqlText string) (uint64, error) {
	conn, err := r.conns.Get()
	if err != nil {
		return 0, err
	}
	defer func() { _ = r.conns.Put(conn) }()

	stmt, err := sqlitekit.Prepare(conn, sqlText, sqlitekit.EncodingUTF8)
	if err != nil {
		return 0, err
	}
	defer stmt.Finalize()

	var reads uint64
	it := stmt.Rows()
	for it.Next() {
		row := it.Row()
		for col := int32(0); col < row.Count(); col++ {
			readColumn(row, col)
		}
		reads++
	}
	if err := it.Err(); err != nil {
		return 0, err
	}
	return reads, nil
}

// readColumn pulls the value through the getter matching its storage
// class, the way a real consumer would.
func readColumn(row sqlitekit.Row, col int32) {
	switch row.Type(col) {
	case sqlitekit.TypeInteger:
		_ = row.Int64(col)
	case sqlitekit.TypeFloat:
		_ = row.Float64(col)
	case sqlitekit.TypeBlob:
		_ = row.Blob(col)
	case sqlitekit.TypeNull:
	default:
		_ = row.Text(col)
	}
}

func (r *kitRunner) Close() error {
	return r.conns.Close()
}

func toValue(arg any) sqlitekit.Value {
	switch v := arg.(type) {
	case nil:
		return sqlitekit.Null()
	case int:
		return sqlitekit.Int64(int64(v))
	case int32:
		return sqlitekit.Int(v)
	case int64:
		return sqlitekit.Int64(v)
	case float64:
		return sqlitekit.Float(v)
	case string:
		return sqlitekit.Text(v)
	case []byte:
		return sqlitekit.Blob(v)
	default:
		return sqlitekit.Text(fmt.Sprint(v))
	}
}

// --- mattn/go-sqlite3 runner ---

type mattnRunner struct {
	db *sql.DB
}

func newMattnRunner(dir string) (*mattnRunner, error) {
	dbPath := path.Join(dir, "mattn", "bench.db")
	if err := os.MkdirAll(path.Dir(dbPath), 0755); err != nil {
		return nil, err
	}
	fmt.Println("mattn/go-sqlite3 db path:", dbPath)

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return &mattnRunner{db: db}, nil
}

func (r *mattnRunner) Exec(sqlText string, args ...any) (int64, error) {
	res, err := r.db.Exec(sqlText, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *mattnRunner) QueryCount(sqlText string) (uint64, error) {
	rows, err := r.db.Query(sqlText)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return 0, err
	}

	var reads uint64
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return 0, err
		}
		reads++
	}
	return reads, rows.Err()
}

func (r *mattnRunner) Close() error {
	return r.db.Close()
}
