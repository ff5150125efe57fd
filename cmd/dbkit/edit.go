package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/eduardofuncao/dbkit/internal/config"
	"github.com/eduardofuncao/dbkit/internal/db"
	"github.com/eduardofuncao/dbkit/internal/editor"
	"github.com/eduardofuncao/dbkit/internal/styles"
)

// queryMarker starts a query block in the edited queries file.
const queryMarker = "-- @"

func (a *App) handleEdit() {
	editType := "config"
	if len(a.args) >= 3 {
		editType = a.args[2]
	}

	switch editType {
	case "config":
		a.editConfig()
		fmt.Fprintln(a.out, styles.Success.Render("✓ Config file edited"))
	case "queries":
		a.editQueries()
		fmt.Fprintln(a.out, styles.Success.Render(fmt.Sprintf("✓ Updated queries for connection: %s", a.config.CurrentConnection)))
	default:
		printError("Unknown edit type: %s. Use 'config' or 'queries'", editType)
	}
}

func (a *App) editConfig() {
	if err := editor.Open(a.config.Path()); err != nil {
		printError("Failed to open editor: %v", err)
	}

	cfg, err := config.LoadConfig(a.config.Path())
	if err != nil {
		printError("Edited config is invalid: %v", err)
	}
	a.config = cfg
}

func (a *App) editQueries() {
	conn := a.currentConnection()

	tmpFile, err := editor.CreateTempFile("dbkit-queries-", renderQueriesFile(conn))
	if err != nil {
		printError("Failed to create temp file: %v", err)
	}
	tmpPath := tmpFile.Name()
	tmpFile.Close()
	defer os.Remove(tmpPath)

	if err := editor.Open(tmpPath); err != nil {
		printError("Failed to open editor: %v", err)
	}

	editedData, err := os.ReadFile(tmpPath)
	if err != nil {
		printError("Failed to read edited file: %v", err)
	}

	conn.Queries = parseSQLQueriesFile(string(editedData), conn.Queries)
	if err := a.config.Save(); err != nil {
		printError("Failed to save config: %v", err)
	}
}

func renderQueriesFile(conn *config.ConnectionYAML) string {
	var content strings.Builder
	fmt.Fprintf(&content, "-- Editing queries for connection: %s (%s)\n", conn.Name, conn.DriverName())
	fmt.Fprintf(&content, "-- Start each query with a line '%sname' followed by its SQL\n", queryMarker)
	content.WriteString("-- Save and close to update\n\n")

	queries := make([]db.Query, 0, len(conn.Queries))
	for _, q := range conn.Queries {
		queries = append(queries, q)
	}
	sort.Slice(queries, func(i, j int) bool { return queries[i].Id < queries[j].Id })

	for _, query := range queries {
		content.WriteString(queryMarker + query.Name + "\n")
		content.WriteString(strings.TrimSpace(query.SQL))
		content.WriteString("\n\n")
	}
	return content.String()
}

// parseSQLQueriesFile reads blocks of the form
//
//	-- @name
//	SQL text
//
// Queries that keep their name keep their id; new names get fresh ids.
// Blocks with no SQL are dropped.
func parseSQLQueriesFile(content string, previous map[string]db.Query) map[string]db.Query {
	type block struct {
		name string
		sql  strings.Builder
	}
	var blocks []*block
	var current *block

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if name, ok := strings.CutPrefix(trimmed, queryMarker); ok {
			current = &block{name: strings.TrimSpace(name)}
			blocks = append(blocks, current)
			continue
		}
		if current == nil {
			continue
		}
		current.sql.WriteString(line)
		current.sql.WriteString("\n")
	}

	queries := make(map[string]db.Query)
	for _, b := range blocks {
		sql := strings.TrimSpace(b.sql.String())
		if b.name == "" || sql == "" {
			continue
		}
		q := db.Query{Name: b.name, SQL: sql}
		if old, ok := previous[b.name]; ok {
			q.Id = old.Id
		} else {
			q.Id = db.NextQueryID(mergeQueries(previous, queries))
		}
		queries[b.name] = q
	}
	return queries
}

func mergeQueries(a, b map[string]db.Query) map[string]db.Query {
	merged := make(map[string]db.Query, len(a)+len(b))
	for k, v := range a {
		merged[k] = v
	}
	for k, v := range b {
		merged[k] = v
	}
	return merged
}
