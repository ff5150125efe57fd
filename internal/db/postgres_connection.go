package db

import (
	"database/sql"
	"strings"

	"github.com/lib/pq"
)

type postgresDialect struct{}

func (postgresDialect) Name() string { return "postgres" }

func (postgresDialect) Open(s Settings) (*sql.DB, error) {
	connector, err := pq.NewConnector(postgresDSN(s))
	if err != nil {
		return nil, err
	}
	return sql.OpenDB(connector), nil
}

func (postgresDialect) Syntax() Syntax { return StandardSyntax }

func (postgresDialect) InitCommands(s Settings) ([]string, error) {
	if s.Charset == "" {
		return nil, nil
	}
	if err := validateCharset(s.Charset); err != nil {
		return nil, err
	}
	return []string{"SET client_encoding TO '" + s.Charset + "'"}, nil
}

var pqValueEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func postgresDSN(s Settings) string {
	host, port := hostPort(s.Host, "localhost", "5432")

	parts := []string{
		"host=" + pqValue(host),
		"port=" + pqValue(port),
	}
	if s.DBName != "" {
		parts = append(parts, "dbname="+pqValue(s.DBName))
	}
	if s.User != "" {
		parts = append(parts, "user="+pqValue(s.User))
	}
	if s.Password != "" {
		parts = append(parts, "password="+pqValue(s.Password))
	}
	return strings.Join(parts, " ")
}

func pqValue(v string) string {
	return "'" + pqValueEscaper.Replace(v) + "'"
}
