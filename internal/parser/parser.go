package parser

import (
	"regexp"
	"strings"

	"github.com/eduardofuncao/dbkit/internal/styles"
)

// Clause keywords that start a new line, longest first so compound forms win.
var sqlKeywords = []string{
	"FULL OUTER JOIN", "LEFT OUTER JOIN", "RIGHT OUTER JOIN",
	"LEFT JOIN", "RIGHT JOIN", "INNER JOIN", "FULL JOIN", "CROSS JOIN",
	"INSERT INTO", "DELETE FROM", "GROUP BY", "ORDER BY",
	"UNION ALL", "FETCH FIRST",
	"SELECT", "FROM", "WHERE", "ON", "HAVING",
	"LIMIT", "OFFSET", "UNION", "UPDATE", "VALUES", "SET", "RETURNING",
}

var highlightWords = []string{
	"SELECT", "FROM", "WHERE", "JOIN", "LEFT", "RIGHT", "INNER", "FULL", "CROSS", "OUTER",
	"ON", "GROUP", "BY", "HAVING", "ORDER", "LIMIT", "OFFSET", "UNION", "ALL",
	"INSERT", "INTO", "UPDATE", "DELETE", "VALUES", "SET", "AND", "OR", "NOT",
	"IN", "EXISTS", "BETWEEN", "LIKE", "IS", "NULL", "DISTINCT", "AS",
	"CASE", "WHEN", "THEN", "ELSE", "END", "FETCH", "FIRST", "ROWS", "ONLY",
	"CREATE", "DROP", "ALTER", "TABLE", "INDEX", "SHOW", "RETURNING",
}

var (
	lineBreakPattern = keywordPattern(`\s*`, sqlKeywords, `\s*`)
	keywordHighlight = keywordPattern("", highlightWords, "")
	stringLiteral    = regexp.MustCompile(`'(?:[^']|'')*'`)
)

func keywordPattern(prefix string, keywords []string, suffix string) *regexp.Regexp {
	alternatives := make([]string, len(keywords))
	for i, kw := range keywords {
		alternatives[i] = strings.ReplaceAll(regexp.QuoteMeta(kw), " ", `\s+`)
	}
	return regexp.MustCompile(`(?i)` + prefix + `\b(` + strings.Join(alternatives, "|") + `)\b` + suffix)
}

// FormatSQLWithLineBreaks puts each clause of sql on its own line.
func FormatSQLWithLineBreaks(sql string) string {
	if sql == "" {
		return ""
	}

	formatted := strings.Join(strings.Fields(sql), " ")
	formatted = lineBreakPattern.ReplaceAllString(formatted, "\n$1 ")

	lines := strings.Split(formatted, "\n")
	var cleanedLines []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			cleanedLines = append(cleanedLines, trimmed)
		}
	}

	return strings.Join(cleanedLines, "\n")
}

// HighlightSQL colors keywords and single-quoted strings.
func HighlightSQL(sql string) string {
	var result strings.Builder
	last := 0
	for _, loc := range stringLiteral.FindAllStringIndex(sql, -1) {
		result.WriteString(highlightKeywords(sql[last:loc[0]]))
		result.WriteString(styles.SQLString.Render(sql[loc[0]:loc[1]]))
		last = loc[1]
	}
	result.WriteString(highlightKeywords(sql[last:]))
	return result.String()
}

func highlightKeywords(s string) string {
	return keywordHighlight.ReplaceAllStringFunc(s, func(match string) string {
		return styles.SQLKeyword.Render(match)
	})
}
