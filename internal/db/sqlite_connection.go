package db

import (
	"context"
	"database/sql"
	"database/sql/driver"

	"github.com/mattn/go-sqlite3"
)

// sqliteDialect treats DBName as the database file. Host, user and password
// are ignored; text is always stored as UTF-8 so no charset command runs.
type sqliteDialect struct{}

func (sqliteDialect) Name() string { return "sqlite3" }

func (sqliteDialect) Open(s Settings) (*sql.DB, error) {
	dsn := s.DBName
	if dsn == "" {
		dsn = ":memory:"
	}
	return sql.OpenDB(&sqliteConnector{dsn: dsn}), nil
}

func (sqliteDialect) Syntax() Syntax { return StandardSyntax }

func (sqliteDialect) InitCommands(Settings) ([]string, error) {
	return nil, nil
}

type sqliteConnector struct {
	dsn string
	drv sqlite3.SQLiteDriver
}

func (c *sqliteConnector) Connect(context.Context) (driver.Conn, error) {
	return c.drv.Open(c.dsn)
}

func (c *sqliteConnector) Driver() driver.Driver {
	return &c.drv
}
