package params

import (
	"strconv"
	"strings"

	"github.com/eduardofuncao/dbkit/internal/db"
)

// StripDefaults rewrites :name|default into plain :name so the statement can
// be handed to the database.
func StripDefaults(syntax db.Syntax, sql string) string {
	return rewrite(syntax, sql, func(p placeholder) string {
		return ":" + p.Name
	})
}

// GenerateDisplaySQL shows sql with values in place of placeholders. It is
// for display only; statements are always executed with bound parameters.
func GenerateDisplaySQL(syntax db.Syntax, sql string, paramValues map[string]string) string {
	return rewrite(syntax, sql, func(p placeholder) string {
		value, ok := paramValues[p.Name]
		if !ok {
			return sql[p.Start:p.End]
		}
		if isNumeric(value) || strings.EqualFold(value, "null") {
			return value
		}
		return "'" + strings.ReplaceAll(value, "'", "''") + "'"
	})
}

func rewrite(syntax db.Syntax, sql string, replace func(placeholder) string) string {
	found := scan(syntax, sql)
	if len(found) == 0 {
		return sql
	}

	var b strings.Builder
	last := 0
	for _, p := range found {
		b.WriteString(sql[last:p.Start])
		b.WriteString(replace(p))
		last = p.End
	}
	b.WriteString(sql[last:])
	return b.String()
}

// ConvertValues turns command-line text into typed values: integers, true
// and false, null, and quoted or plain strings.
func ConvertValues(values map[string]string) map[string]any {
	converted := make(map[string]any, len(values))
	for name, value := range values {
		converted[name] = ConvertValue(value)
	}
	return converted
}

func ConvertValue(s string) any {
	switch strings.ToLower(s) {
	case "null":
		return nil
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if len(s) >= 2 {
		if q := s[0]; (q == '\'' || q == '"') && s[len(s)-1] == q {
			return s[1 : len(s)-1]
		}
	}
	return s
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}

	hasDigits := false
	hasDot := false

	for i, r := range s {
		if r >= '0' && r <= '9' {
			hasDigits = true
		} else if r == '.' && !hasDot && i > 0 && i < len(s)-1 {
			hasDot = true
		} else if (r == '-' || r == '+') && i == 0 {
			// leading sign
		} else {
			return false
		}
	}

	return hasDigits
}
