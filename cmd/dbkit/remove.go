package main

import (
	"fmt"

	"github.com/eduardofuncao/dbkit/internal/styles"
)

func (a *App) handleRemove() {
	if len(a.args) < 3 {
		printError("Usage: dbkit remove <query-name|id>")
	}

	conn := a.currentConnection()
	query, err := a.config.RemoveQuery(conn.Name, a.args[2])
	if err != nil {
		printError("Could not remove query: %v", err)
	}

	fmt.Fprintln(a.out, styles.Success.Render(fmt.Sprintf("✓ Removed query '%s'", query.Name)))
}
