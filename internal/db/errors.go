package db

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-sql-driver/mysql"
	"github.com/godror/godror"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

var (
	ErrUnknownDriver  = errors.New("unknown database driver")
	ErrInvalidCharset = errors.New("invalid character set")
)

// ConnectionError is returned when a session cannot be established.
type ConnectionError struct {
	Driver   string
	Host     string
	Database string
	Err      error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connect to %s database %q on %q: %v", e.Driver, e.Database, e.Host, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// Op names the stage of the pipeline that failed.
type Op string

const (
	OpPrepare Op = "prepare"
	OpBind    Op = "bind"
	OpExecute Op = "execute"
	OpFetch   Op = "fetch"
)

// StatementError is returned when a statement fails after the session is up.
// Code carries the server error code when the driver exposes one.
type StatementError struct {
	Op   Op
	SQL  string
	Code string
	Err  error
}

func newStatementError(op Op, query string, err error) *StatementError {
	return &StatementError{Op: op, SQL: query, Code: driverCode(err), Err: err}
}

func (e *StatementError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s statement (code %s): %v", e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("%s statement: %v", e.Op, e.Err)
}

func (e *StatementError) Unwrap() error { return e.Err }

func driverCode(err error) string {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return strconv.Itoa(int(myErr.Number))
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return strconv.Itoa(int(liteErr.Code))
	}
	if oraErr, ok := godror.AsOraErr(err); ok {
		return strconv.Itoa(oraErr.Code())
	}
	return ""
}

// driverMessage is the text a fail-fast Connection prints before exiting:
// the driver's own message without our wrapping.
func driverMessage(err error) string {
	var connErr *ConnectionError
	if errors.As(err, &connErr) && connErr.Err != nil {
		return connErr.Err.Error()
	}
	var stmtErr *StatementError
	if errors.As(err, &stmtErr) && stmtErr.Err != nil {
		return stmtErr.Err.Error()
	}
	return err.Error()
}
