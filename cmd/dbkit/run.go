package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/eduardofuncao/dbkit/internal/config"
	"github.com/eduardofuncao/dbkit/internal/db"
	"github.com/eduardofuncao/dbkit/internal/editor"
	"github.com/eduardofuncao/dbkit/internal/params"
	"github.com/eduardofuncao/dbkit/internal/run"
	"github.com/eduardofuncao/dbkit/internal/table"
)

func (a *App) handleRun() {
	conn := a.currentConnection()

	var rest []string
	if len(a.args) > 2 {
		rest = a.args[2:]
	}
	flags, err := parseRunFlags(rest)
	if err != nil {
		printError("%v", err)
	}
	format, err := table.ParseFormat(flags.Format)
	if err != nil {
		printError("%v", err)
	}

	resolved, err := run.ResolveQuery(flags, conn)
	if err != nil {
		printError("%v", err)
	}

	if run.ShouldCreateNewQuery(resolved) {
		resolved.Query = a.createNewQuery()
		resolved.Saveable = true
	}

	if flags.EditMode && !flags.LastQuery {
		resolved.Query = a.editQueryOrExit(resolved.Query)
	}

	if a.interactive && format == "" && !flags.Copy {
		editor.ShowQuery(a.out, resolved.Query)
	}

	var prompt run.Prompter
	if a.interactive {
		prompt = params.CollectParameters
	}
	bound, err := run.BindArguments(db.SyntaxFor(conn.DriverName()), resolved.Query.SQL, flags.Args, prompt)
	if errors.Is(err, params.ErrAborted) {
		printError("Cancelled")
	}
	if err != nil {
		printError("%v", err)
	}

	ctx, cancel := signalContext()
	defer cancel()

	dbConn, err := a.open(ctx, conn.Settings)
	if err != nil {
		printError("%v", err)
	}
	defer dbConn.Close()

	err = run.Execute(ctx, run.ExecutionParams{
		Query:       resolved.Query,
		Bound:       bound,
		Connection:  dbConn,
		Format:      format,
		Copy:        flags.Copy,
		Interactive: a.interactive,
		CellWidth:   table.DefaultCellWidth,
		Out:         a.out,
		Err:         a.errOut,
	})
	if err != nil {
		dbConn.Close()
		printError("%v", err)
	}

	if resolved.Saveable {
		if err := a.config.SaveQueryAndLast(conn.Name, resolved.Query, true); err != nil {
			printError("Failed to save query: %v", err)
		}
	}
}

// parseRunFlags splits run arguments into flags, the query selector and
// parameter values. The first bare argument is the selector unless --last
// is given.
func parseRunFlags(args []string) (run.Flags, error) {
	flags := run.Flags{}
	var bare []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--edit" || arg == "-e":
			flags.EditMode = true
		case arg == "--last" || arg == "-l":
			flags.LastQuery = true
		case arg == "--copy" || arg == "-c":
			flags.Copy = true
		case arg == "--format" || arg == "-f":
			if i+1 >= len(args) {
				return run.Flags{}, fmt.Errorf("%s requires a value", arg)
			}
			i++
			flags.Format = args[i]
		case strings.HasPrefix(arg, "--format="):
			flags.Format = strings.TrimPrefix(arg, "--format=")
		default:
			bare = append(bare, arg)
		}
	}

	if !flags.LastQuery && len(bare) > 0 {
		flags.Selector = bare[0]
		bare = bare[1:]
	}
	flags.Args = bare
	return flags, nil
}

func (a *App) createNewQuery() db.Query {
	if !a.interactive {
		printError("No query given. Use 'dbkit run <query-name|id|sql>'")
	}
	editedSQL, err := editor.EditTempFileWithTemplate(editor.Instructions("new query"), "dbkit-run-")
	if err != nil {
		printError("Error opening editor: %v", err)
	}
	if editedSQL == "" {
		printError("Empty SQL, cancelled")
	}
	return db.Query{Name: config.InlineQueryName, SQL: editedSQL, Id: -1}
}

func (a *App) editQueryOrExit(query db.Query) db.Query {
	edited, submitted, err := editor.EditQuery(query)
	if err != nil {
		printError("Error opening editor: %v", err)
	}
	if !submitted {
		printError("Edit cancelled")
	}
	return edited
}
