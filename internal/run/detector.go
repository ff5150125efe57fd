package run

import "github.com/eduardofuncao/dbkit/internal/db"

var sqlVerbs = map[string]bool{
	"select": true, "insert": true, "update": true, "delete": true,
	"create": true, "drop": true, "alter": true, "truncate": true,
	"with": true, "show": true, "describe": true, "desc": true,
	"explain": true, "grant": true, "revoke": true, "replace": true,
	"begin": true, "commit": true, "rollback": true, "pragma": true,
	"set": true, "use": true, "call": true, "merge": true,
}

// IsLikelySQL reports whether s starts with a statement keyword, as opposed
// to naming a saved query.
func IsLikelySQL(s string) bool {
	return sqlVerbs[db.Verb(s)]
}
