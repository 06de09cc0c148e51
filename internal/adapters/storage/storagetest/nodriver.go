package storagetest

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"sync"
	"testing"
)

// ErrRowsAffected es lo que devuelve Result.RowsAffected en la base de OpenNoRowsAffectedDB.
var ErrRowsAffected = errors.New("driver cannot report rows affected")

const noRowsAffectedDriver = "storagetest-no-rows-affected"

var registerOnce sync.Once

// OpenNoRowsAffectedDB abre un *sql.DB cuyo driver acepta cualquier Exec
// pero no sabe informar filas afectadas.
func OpenNoRowsAffectedDB(t *testing.T) *sql.DB {
	t.Helper()
	registerOnce.Do(func() { sql.Register(noRowsAffectedDriver, noRowsDriver{}) })

	db, err := sql.Open(noRowsAffectedDriver, "")
	if err != nil {
		t.Fatalf("open fake db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

type noRowsDriver struct{}

func (noRowsDriver) Open(string) (driver.Conn, error) { return noRowsConn{}, nil }

type noRowsConn struct{}

func (noRowsConn) Prepare(string) (driver.Stmt, error) { return noRowsStmt{}, nil }
func (noRowsConn) Close() error                        { return nil }
func (noRowsConn) Begin() (driver.Tx, error)           { return nil, errors.New("transactions not supported") }

func (noRowsConn) ExecContext(context.Context, string, []driver.NamedValue) (driver.Result, error) {
	return noRowsResult{}, nil
}

type noRowsStmt struct{}

func (noRowsStmt) Close() error                               { return nil }
func (noRowsStmt) NumInput() int                              { return -1 }
func (noRowsStmt) Exec([]driver.Value) (driver.Result, error) { return noRowsResult{}, nil }
func (noRowsStmt) Query([]driver.Value) (driver.Rows, error)  { return nil, errors.New("queries not supported") }

type noRowsResult struct{}

func (noRowsResult) LastInsertId() (int64, error) { return 0, ErrRowsAffected }
func (noRowsResult) RowsAffected() (int64, error) { return 0, ErrRowsAffected }
