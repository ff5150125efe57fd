package db

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Syntax holds the lexical rules that differ between servers.
type Syntax struct {
	// HashComments makes # start a line comment.
	HashComments bool
	// BackslashEscapes lets \ escape the next byte inside quoted text.
	BackslashEscapes bool
}

var (
	// MySQLSyntax is used by MySQL and MariaDB.
	MySQLSyntax = Syntax{HashComments: true, BackslashEscapes: true}
	// StandardSyntax follows ANSI SQL: quotes are only escaped by doubling.
	// PostgreSQL behaves this way with standard_conforming_strings on.
	StandardSyntax = Syntax{}
)

// SyntaxFor returns the lexical rules of driver. Unknown drivers get
// StandardSyntax.
func SyntaxFor(driver string) Syntax {
	if driver == "" {
		driver = defaultDriver
	}
	d, err := lookupDialect(driver)
	if err != nil {
		return StandardSyntax
	}
	return d.Syntax()
}

// Placeholder is one :name occurrence. Start and End are byte offsets of
// the colon and of the byte after the name.
type Placeholder struct {
	Name  string
	Start int
	End   int
}

// Placeholders finds every :name outside quoted text and comments. A name
// starts with a letter or underscore, so the colons of a :: cast or of an
// array slice like a[1:2] never start one.
func (s Syntax) Placeholders(query string) []Placeholder {
	var found []Placeholder
	for i := 0; i < len(query); {
		if end := s.skip(query, i); end > i {
			i = end
			continue
		}
		if query[i] == ':' && i+1 < len(query) && isNameStart(query[i+1]) {
			j := i + 2
			for j < len(query) && isNameByte(query[j]) {
				j++
			}
			found = append(found, Placeholder{Name: query[i+1 : j], Start: i, End: j})
			i = j
			continue
		}
		i++
	}
	return found
}

// skip returns the index just past the comment, quoted text or :: starting
// at i, or i when none starts there.
func (s Syntax) skip(query string, i int) int {
	rest := query[i:]
	switch c := query[i]; {
	case strings.HasPrefix(rest, "--"):
		return skipTo(query, i+2, "\n")
	case c == '#' && s.HashComments:
		return skipTo(query, i+1, "\n")
	case strings.HasPrefix(rest, "/*"):
		return skipTo(query, i+2, "*/")
	case c == '\'' || c == '"' || c == '`':
		return s.closingQuote(query, i, c)
	case strings.HasPrefix(rest, "::"):
		return i + 2
	}
	return i
}

// compileNamed replaces each :name placeholder with the bindvar of bindType
// and returns the matching arguments in order.
func compileNamed(query string, syntax Syntax, bindType int, values map[string]any) (string, []any, error) {
	var (
		out  strings.Builder
		args []any
		last int
	)
	out.Grow(len(query))

	for _, p := range syntax.Placeholders(query) {
		v, ok := values[p.Name]
		if !ok {
			return "", nil, fmt.Errorf("no value bound for :%s", p.Name)
		}
		args = append(args, v)
		out.WriteString(query[last:p.Start])
		out.WriteString(bindvar(bindType, len(args)))
		last = p.End
	}
	out.WriteString(query[last:])
	return out.String(), args, nil
}

func bindvar(bindType, n int) string {
	switch bindType {
	case sqlx.DOLLAR:
		return "$" + strconv.Itoa(n)
	case sqlx.NAMED:
		return ":arg" + strconv.Itoa(n)
	case sqlx.AT:
		return "@p" + strconv.Itoa(n)
	default:
		return "?"
	}
}

func isNameStart(b byte) bool {
	return b == '_' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func isNameByte(b byte) bool {
	return isNameStart(b) || b >= '0' && b <= '9'
}

// skipTo returns the index just past end, or len(query) when end is missing.
func skipTo(query string, from int, end string) int {
	idx := strings.Index(query[from:], end)
	if idx < 0 {
		return len(query)
	}
	return from + idx + len(end)
}

// closingQuote returns the index just past the quote closing the literal at
// start. A doubled quote never closes it, and neither does an escaped one
// when the syntax has backslash escapes.
func (s Syntax) closingQuote(query string, start int, quote byte) int {
	for i := start + 1; i < len(query); i++ {
		switch query[i] {
		case '\\':
			if s.BackslashEscapes {
				i++
			}
		case quote:
			if i+1 < len(query) && query[i+1] == quote {
				i++
				continue
			}
			return i + 1
		}
	}
	return len(query)
}
