package params

import (
	"strings"

	"github.com/eduardofuncao/dbkit/internal/db"
)

// ParseArgs splits command-line words into key=value pairs and positional
// values. A leading colon on the key is dropped.
func ParseArgs(args []string) (map[string]string, []string) {
	named := make(map[string]string)
	var positionals []string

	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if ok && isParamName(strings.TrimPrefix(key, ":")) {
			named[strings.TrimPrefix(key, ":")] = value
			continue
		}
		positionals = append(positionals, arg)
	}
	return named, positionals
}

func isParamName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}

// MapPositionalArgs assigns positional values to parameters in the order
// they first appear in sql. Extra values are ignored.
func MapPositionalArgs(syntax db.Syntax, sql string, positionals []string) map[string]string {
	result := make(map[string]string)
	if len(positionals) == 0 {
		return result
	}

	for i, name := range ParameterNames(syntax, sql) {
		if i >= len(positionals) {
			break
		}
		result[name] = positionals[i]
	}
	return result
}
