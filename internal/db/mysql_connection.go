package db

import (
	"database/sql"
	"net"

	"github.com/go-sql-driver/mysql"
)

type mysqlDialect struct{}

func (mysqlDialect) Name() string { return "mysql" }

func (mysqlDialect) Open(s Settings) (*sql.DB, error) {
	connector, err := mysql.NewConnector(mysqlConfig(s))
	if err != nil {
		return nil, err
	}
	return sql.OpenDB(connector), nil
}

func (mysqlDialect) Syntax() Syntax { return MySQLSyntax }

func (mysqlDialect) InitCommands(s Settings) ([]string, error) {
	if s.Charset == "" {
		return nil, nil
	}
	if err := validateCharset(s.Charset); err != nil {
		return nil, err
	}
	return []string{"SET NAMES " + s.Charset}, nil
}

func mysqlConfig(s Settings) *mysql.Config {
	host, port := hostPort(s.Host, "127.0.0.1", "3306")

	cfg := mysql.NewConfig()
	cfg.User = s.User
	cfg.Passwd = s.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(host, port)
	cfg.DBName = s.DBName
	// Statements are prepared on the server; the driver never splices
	// arguments into the SQL text.
	cfg.InterpolateParams = false
	cfg.ParseTime = true
	return cfg
}
