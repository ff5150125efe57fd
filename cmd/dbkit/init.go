package main

import (
	"errors"
	"fmt"

	"github.com/eduardofuncao/dbkit/internal/config"
	"github.com/eduardofuncao/dbkit/internal/db"
	"github.com/eduardofuncao/dbkit/internal/initui"
	"github.com/eduardofuncao/dbkit/internal/spinner"
	"github.com/eduardofuncao/dbkit/internal/styles"
)

func (a *App) handleInit() {
	name := a.arg(2)
	settings := db.Settings{
		Driver:   a.arg(3),
		Host:     a.arg(4),
		DBName:   a.arg(5),
		User:     a.arg(6),
		Password: a.arg(7),
		Charset:  a.arg(8),
	}

	if len(a.args) < 6 {
		if !a.interactive {
			printError("Usage: dbkit init <name> <driver> <host> <dbname> [user] [password] [charset]")
		}
		var err error
		name, settings, err = initui.CollectInitParameters(name, settings)
		if errors.Is(err, initui.ErrAborted) {
			printError("Cancelled")
		}
		if err != nil {
			printError("Could not read connection settings: %v", err)
		}
	}

	if name == "" {
		printError("Connection name is required")
	}

	ctx, cancel := signalContext()
	defer cancel()

	var spin *spinner.Spinner
	if a.interactive {
		spin = spinner.Start(a.errOut)
	}
	conn, err := a.open(ctx, settings)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		printError("Could not establish connection to %s: %v", settings, err)
	}
	conn.Close()

	if err := a.config.AddConnection(config.NewConnectionYAML(name, settings)); err != nil {
		printError("Could not save configuration file: %v", err)
	}

	fmt.Fprintln(a.out, styles.Success.Render("✓ Connection created:"), styles.Title.Render(fmt.Sprintf("%s/%s", settings.DriverName(), name)))
}
