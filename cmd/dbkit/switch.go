package main

import (
	"fmt"

	"github.com/eduardofuncao/dbkit/internal/styles"
)

func (a *App) handleSwitch() {
	if len(a.args) < 3 {
		printError("Usage: dbkit switch/use <connection>")
	}

	connName := a.args[2]
	if err := a.config.SwitchConnection(connName); err != nil {
		printError("Could not switch to '%s': %v", connName, err)
	}

	conn := a.config.Connections[connName]
	fmt.Fprintln(a.out, styles.Success.Render("⇄ Switched to:"), styles.Title.Render(fmt.Sprintf("%s/%s", conn.DriverName(), connName)))
}
