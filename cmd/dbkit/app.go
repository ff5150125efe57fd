package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/eduardofuncao/dbkit/internal/config"
	"github.com/eduardofuncao/dbkit/internal/db"
	"github.com/eduardofuncao/dbkit/internal/styles"
)

type App struct {
	config      *config.Config
	args        []string
	logger      *zap.Logger
	out         io.Writer
	errOut      io.Writer
	interactive bool
}

func NewApp(cfg *config.Config, args []string, logger *zap.Logger) *App {
	return &App{
		config:      cfg,
		args:        args,
		logger:      logger,
		out:         os.Stdout,
		errOut:      os.Stderr,
		interactive: isTerminal(os.Stdout) && isTerminal(os.Stdin),
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (a *App) Run() {
	if len(a.args) < 2 {
		a.printUsage()
		os.Exit(1)
	}

	command := a.args[1]
	switch command {
	case "init", "create":
		a.handleInit()
	case "switch", "use":
		a.handleSwitch()
	case "disconnect":
		a.handleDisconnect()
	case "add", "save":
		a.handleAdd()
	case "remove", "delete":
		a.handleRemove()
	case "query", "run":
		a.handleRun()
	case "list", "ls":
		a.handleList()
	case "edit":
		a.handleEdit()
	case "status":
		a.handleStatus()
	case "help", "--help", "-h":
		a.handleHelp()
	default:
		printError("Unknown command: %s. Run 'dbkit help' for usage", command)
	}
}

func (a *App) printUsage() {
	fmt.Fprintln(a.out, "Usage:")
	fmt.Fprintln(a.out, "dbkit init <name> <driver> <host> <dbname> [user] [password] [charset]")
	fmt.Fprintln(a.out, "dbkit switch <connection>")
	fmt.Fprintln(a.out, "dbkit add <query-name> [sql]")
	fmt.Fprintln(a.out, "dbkit run <query-name|id|sql> [key=value ...] [--edit] [--last]")
	fmt.Fprintln(a.out, "dbkit help [command]")
}

// arg returns the i-th argument or an empty string.
func (a *App) arg(i int) string {
	if i < len(a.args) {
		return a.args[i]
	}
	return ""
}

// currentConnection returns the active entry or exits with an error.
func (a *App) currentConnection() *config.ConnectionYAML {
	conn, err := a.config.Current()
	if err != nil {
		printError("No active connection. Use 'dbkit switch <connection>' or 'dbkit init' first")
	}
	return conn
}

// open connects with the given settings, logging through the app logger.
func (a *App) open(ctx context.Context, settings db.Settings) (*db.Connection, error) {
	return db.NewConnection(ctx, settings, db.WithLogger(a.logger.With(zap.String("connection", a.config.CurrentConnection))))
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, styles.Error.Render("✗ Error:"), msg)
	os.Exit(1)
}
