package db

import (
	"strings"
)

// InferDriver guesses the driver from a host or database name. It returns an
// empty string when nothing matches.
func InferDriver(host, dbname string) string {
	h := strings.ToLower(strings.TrimSpace(host))

	switch {
	case strings.HasPrefix(h, "postgres://"), strings.HasPrefix(h, "postgresql://"):
		return "postgres"
	case strings.HasPrefix(h, "mysql://"), strings.HasPrefix(h, "mariadb://"):
		return "mysql"
	case strings.HasPrefix(h, "oracle://"):
		return "oracle"
	}

	if _, port, ok := strings.Cut(h, ":"); ok {
		switch port {
		case "3306":
			return "mysql"
		case "5432":
			return "postgres"
		case "1521":
			return "oracle"
		}
	}

	name := strings.ToLower(dbname)
	if h == "" && (name == ":memory:" ||
		strings.HasSuffix(name, ".db") ||
		strings.HasSuffix(name, ".sqlite") ||
		strings.HasSuffix(name, ".sqlite3")) {
		return "sqlite"
	}

	return ""
}
