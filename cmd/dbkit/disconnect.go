package main

import (
	"fmt"

	"github.com/eduardofuncao/dbkit/internal/styles"
)

func (a *App) handleDisconnect() {
	if a.config.CurrentConnection == "" {
		fmt.Fprintln(a.out, styles.Faint.Render("No active connection"))
		return
	}

	previousConnection := a.config.CurrentConnection
	if err := a.config.Disconnect(); err != nil {
		printError("Could not save config: %v", err)
	}

	fmt.Fprintln(a.out, styles.Success.Render(fmt.Sprintf("✓ Disconnected from '%s'", previousConnection)))
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, styles.Faint.Render("Use 'dbkit switch <connection>' to connect to a database"))
}
