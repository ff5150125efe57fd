package db

import (
	"database/sql"
	"fmt"
	"net"

	"github.com/godror/godror"
)

// oracleDialect uses DBName as the service name. The session character set
// comes from NLS_LANG in the client environment.
type oracleDialect struct{}

func (oracleDialect) Name() string { return "godror" }

func (oracleDialect) Open(s Settings) (*sql.DB, error) {
	params, err := godror.ParseDSN(oracleDSN(s))
	if err != nil {
		return nil, err
	}
	return sql.OpenDB(godror.NewConnector(params)), nil
}

func (oracleDialect) Syntax() Syntax { return StandardSyntax }

func (oracleDialect) InitCommands(Settings) ([]string, error) {
	return nil, nil
}

func oracleDSN(s Settings) string {
	host, port := hostPort(s.Host, "localhost", "1521")
	connectString := net.JoinHostPort(host, port) + "/" + s.DBName
	return fmt.Sprintf("user=%q password=%q connectString=%q", s.User, s.Password, connectString)
}
