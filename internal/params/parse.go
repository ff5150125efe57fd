package params

import (
	"regexp"
	"strings"

	"github.com/eduardofuncao/dbkit/internal/db"
)

// Matches the |default_value that may follow a placeholder name. Group 1 is
// the default, which may be a quoted string with spaces: 'Green apple'.
var defaultRegex = regexp.MustCompile(`^\|('(?:[^'\\]|\\.)*'|(?:[^'\s\\,)]+))`)

// placeholder is one :name or :name|default occurrence in a statement.
type placeholder struct {
	Name    string
	Default string
	Start   int
	End     int
}

// scan finds placeholders with the same rules the database layer binds
// with, then reads an optional default after each name. Placeholders inside
// a default are part of that default.
func scan(syntax db.Syntax, sql string) []placeholder {
	var found []placeholder
	end := 0
	for _, p := range syntax.Placeholders(sql) {
		if p.Start < end {
			continue
		}
		ph := placeholder{Name: p.Name, Start: p.Start, End: p.End}
		if m := defaultRegex.FindStringSubmatchIndex(sql[p.End:]); m != nil {
			ph.Default = unquoteDefault(sql[p.End+m[2] : p.End+m[3]])
			ph.End = p.End + m[1]
		}
		end = ph.End
		found = append(found, ph)
	}
	return found
}

func unquoteDefault(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 2 && strings.HasPrefix(v, "'") && strings.HasSuffix(v, "'") {
		v = v[1 : len(v)-1]
		v = strings.ReplaceAll(v, "''", "'")
		v = strings.ReplaceAll(v, "\\'", "'")
	}
	return v
}

// ExtractParameters maps every parameter name to its default value, empty
// when none is given. The first default written for a name wins.
func ExtractParameters(syntax db.Syntax, sql string) map[string]string {
	params := make(map[string]string)
	for _, p := range scan(syntax, sql) {
		if _, seen := params[p.Name]; !seen {
			params[p.Name] = p.Default
		}
	}
	return params
}

// ParameterNames lists parameter names in order of first appearance.
func ParameterNames(syntax db.Syntax, sql string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, p := range scan(syntax, sql) {
		if !seen[p.Name] {
			seen[p.Name] = true
			names = append(names, p.Name)
		}
	}
	return names
}
