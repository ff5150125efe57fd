package db

import (
	"regexp"
	"strings"
)

// StatementKind decides the shape of an execution's result.
type StatementKind int

const (
	StatementOther StatementKind = iota
	StatementRead
	StatementWrite
)

func (k StatementKind) String() string {
	switch k {
	case StatementRead:
		return "read"
	case StatementWrite:
		return "write"
	default:
		return "other"
	}
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalize removes the two-character text `\r` (a backslash followed by r,
// not a carriage return byte), collapses whitespace runs into single spaces
// and trims the result.
func Normalize(query string) string {
	query = strings.ReplaceAll(query, `\r`, "")
	query = whitespaceRun.ReplaceAllString(query, " ")
	return strings.TrimSpace(query)
}

// Verb returns the lower-cased first token of query, ignoring leading
// comments.
func Verb(query string) string {
	query = strings.ReplaceAll(query, `\r`, "")
	normalized := Normalize(skipLeadingComments(query))
	token, _, _ := strings.Cut(normalized, " ")
	return strings.ToLower(token)
}

// Classify is purely lexical: it never parses past the first token.
func Classify(query string) StatementKind {
	switch Verb(query) {
	case "select", "show":
		return StatementRead
	case "insert", "update", "delete":
		return StatementWrite
	default:
		return StatementOther
	}
}

func skipLeadingComments(query string) string {
	for {
		query = strings.TrimLeft(query, " \t\r\n\f\v")
		switch {
		case strings.HasPrefix(query, "--"), strings.HasPrefix(query, "#"):
			_, rest, found := strings.Cut(query, "\n")
			if !found {
				return ""
			}
			query = rest
		case strings.HasPrefix(query, "/*"):
			_, rest, found := strings.Cut(query[2:], "*/")
			if !found {
				return ""
			}
			query = rest
		default:
			return query
		}
	}
}
