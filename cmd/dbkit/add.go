package main

import (
	"fmt"

	"github.com/eduardofuncao/dbkit/internal/db"
	"github.com/eduardofuncao/dbkit/internal/editor"
	"github.com/eduardofuncao/dbkit/internal/styles"
)

func (a *App) handleAdd() {
	if len(a.args) < 3 {
		printError("Usage: dbkit add <query-name> [sql]")
	}

	conn := a.currentConnection()
	queryName := a.args[2]
	querySQL := a.arg(3)

	if querySQL == "" {
		header := fmt.Sprintf("-- Creating new query: %s\n-- Connection: %s (%s)\n", queryName, conn.Name, conn.DriverName())
		edited, err := editor.EditTempFileWithTemplate(header+editor.Instructions(queryName), "dbkit-new-query-")
		if err != nil {
			printError("Failed to open editor: %v", err)
		}
		querySQL = edited
		if querySQL == "" {
			printError("No SQL provided. Query not saved")
		}
	}

	saved, err := a.config.SaveQueryToConnection(conn.Name, db.Query{Name: queryName, SQL: querySQL, Id: -1})
	if err != nil {
		printError("Could not save query: %v", err)
	}

	fmt.Fprintln(a.out, styles.Success.Render(fmt.Sprintf("✓ Added query '%s' with ID %d", saved.Name, saved.Id)))
}
