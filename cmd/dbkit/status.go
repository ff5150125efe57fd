package main

import (
	"context"
	"fmt"
	"time"

	"github.com/eduardofuncao/dbkit/internal/spinner"
	"github.com/eduardofuncao/dbkit/internal/styles"
)

const statusTimeout = 5 * time.Second

func (a *App) handleStatus() {
	if a.config.CurrentConnection == "" {
		fmt.Fprintln(a.out, styles.Faint.Render("No active connection"))
		return
	}

	currConn := a.currentConnection()
	connInfo := fmt.Sprintf("%s/%s", currConn.DriverName(), currConn.Name)

	ctx, cancel := signalContext()
	defer cancel()
	ctx, cancelTimeout := context.WithTimeout(ctx, statusTimeout)
	defer cancelTimeout()

	var spin *spinner.Spinner
	if a.interactive {
		spin = spinner.Start(a.errOut)
	}
	conn, err := a.open(ctx, currConn.Settings)
	if spin != nil {
		spin.Stop()
	}
	reachable := err == nil
	if reachable {
		conn.Close()
	}

	circleIcon, statusText := "●", "reachable"
	if !reachable {
		circleIcon, statusText = "○", "unreachable"
	}

	fmt.Fprintf(a.out, "%s Using %s\n", styles.Success.Render(circleIcon), styles.Title.Render(connInfo))
	fmt.Fprintf(a.out, "  %s %s\n", styles.Label.Render("target:"), currConn.Settings)
	fmt.Fprintf(a.out, "  %d saved queries, %s\n", len(currConn.Queries), styles.Faint.Render(statusText))
	if err != nil {
		fmt.Fprintf(a.out, "  %s\n", styles.Faint.Render(err.Error()))
	}
}
