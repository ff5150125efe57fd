package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/eduardofuncao/dbkit/internal/db"
	"github.com/eduardofuncao/dbkit/internal/parser"
	"github.com/eduardofuncao/dbkit/internal/styles"
)

type listFlags struct {
	oneline    bool
	searchTerm string
}

func parseListFlags(args []string) (listFlags, []string) {
	flags := listFlags{}
	remainingArgs := []string{}

	for _, arg := range args {
		if arg == "--oneline" || arg == "-o" {
			flags.oneline = true
		} else if !strings.HasPrefix(arg, "-") {
			remainingArgs = append(remainingArgs, arg)
		}
	}

	return flags, remainingArgs
}

func (a *App) handleList() {
	var rest []string
	if len(a.args) > 2 {
		rest = a.args[2:]
	}
	flags, args := parseListFlags(rest)

	objectType := "queries"
	switch {
	case len(args) == 0:
	case args[0] == "queries" || args[0] == "connections":
		objectType = args[0]
		if len(args) > 1 {
			flags.searchTerm = args[1]
		}
	default:
		flags.searchTerm = args[0]
	}

	switch objectType {
	case "connections":
		a.listConnections(flags)
	case "queries":
		a.listQueries(flags)
	}
}

func (a *App) listConnections(flags listFlags) {
	if len(a.config.Connections) == 0 {
		fmt.Fprintln(a.out, styles.Faint.Render("No connections configured"))
		return
	}

	names := make([]string, 0, len(a.config.Connections))
	for name := range a.config.Connections {
		if flags.searchTerm == "" || strings.Contains(strings.ToLower(name), strings.ToLower(flags.searchTerm)) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		connection := a.config.Connections[name]
		marker := styles.Faint.Render("◆")
		if name == a.config.CurrentConnection {
			marker = styles.Success.Render("●")
		}
		fmt.Fprintf(a.out, "%s %s %s\n",
			marker,
			styles.Title.Render(highlightMatches(name, flags.searchTerm)),
			styles.Faint.Render(fmt.Sprintf("(%s)", connection.Settings)))
	}
}

func (a *App) listQueries(flags listFlags) {
	conn := a.currentConnection()
	if len(conn.Queries) == 0 {
		fmt.Fprintln(a.out, styles.Faint.Render("No queries saved"))
		return
	}

	queryList := filterQueries(conn.Queries, flags.searchTerm)
	if flags.searchTerm != "" && len(queryList) == 0 {
		fmt.Fprintln(a.out, styles.Faint.Render(fmt.Sprintf("No queries found matching '%s'", flags.searchTerm)))
		return
	}

	if flags.oneline {
		for _, query := range queryList {
			fmt.Fprintf(a.out, "%s %s %s\n",
				styles.Faint.Render(fmt.Sprintf("%d", query.Id)),
				styles.Title.Render(query.Name),
				statementLabel(query.SQL))
		}
		return
	}

	for _, query := range queryList {
		item := fmt.Sprintf("◆ %d/%s (%s)", query.Id, highlightMatches(query.Name, flags.searchTerm), statementLabel(query.SQL))
		fmt.Fprintln(a.out, styles.Title.Render(item))
		fmt.Fprint(a.out, parser.HighlightSQL(parser.FormatSQLWithLineBreaks(highlightMatches(query.SQL, flags.searchTerm))))
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out)
	}
}

// filterQueries returns the queries whose name or SQL contains term,
// ordered by id.
func filterQueries(queries map[string]db.Query, term string) []db.Query {
	termLower := strings.ToLower(term)
	queryList := make([]db.Query, 0, len(queries))
	for _, query := range queries {
		if term == "" ||
			strings.Contains(strings.ToLower(query.Name), termLower) ||
			strings.Contains(strings.ToLower(query.SQL), termLower) {
			queryList = append(queryList, query)
		}
	}

	sort.Slice(queryList, func(i, j int) bool {
		return queryList[i].Id < queryList[j].Id
	})
	return queryList
}

// statementLabel names the kind of statement, e.g. "select, read".
func statementLabel(sql string) string {
	verb := db.Verb(sql)
	if verb == "" {
		verb = "<empty>"
	}
	return fmt.Sprintf("%s, %s", verb, db.Classify(sql))
}

func highlightMatches(text, searchTerm string) string {
	if searchTerm == "" {
		return text
	}

	searchLower := strings.ToLower(searchTerm)
	var result strings.Builder
	index := 0

	for {
		pos := strings.Index(strings.ToLower(text[index:]), searchLower)
		if pos == -1 {
			result.WriteString(text[index:])
			break
		}

		result.WriteString(text[index : index+pos])
		result.WriteString(styles.SearchMatch.Render(text[index+pos : index+pos+len(searchTerm)]))
		index += pos + len(searchTerm)
	}

	return result.String()
}
