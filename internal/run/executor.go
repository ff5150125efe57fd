package run

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/eduardofuncao/dbkit/internal/db"
	"github.com/eduardofuncao/dbkit/internal/parser"
	"github.com/eduardofuncao/dbkit/internal/spinner"
	"github.com/eduardofuncao/dbkit/internal/styles"
	"github.com/eduardofuncao/dbkit/internal/table"
)

// Executor is the part of *db.Connection the run command needs.
type Executor interface {
	Execute(ctx context.Context, query string, params map[string]any, mode ...db.FetchMode) (db.Result, error)
	LastInsertID() (string, bool)
}

type ExecutionParams struct {
	Query      db.Query
	Bound      Bound
	Connection Executor
	Format     table.Format
	Copy       bool
	// Interactive enables the spinner and the table browser.
	Interactive bool
	CellWidth   int
	Out         io.Writer
	Err         io.Writer
}

// Execute runs the bound statement and prints its result.
func Execute(ctx context.Context, p ExecutionParams) error {
	start := time.Now()
	var spin *spinner.Spinner
	if p.Interactive {
		spin = spinner.Start(p.Err)
	}

	result, err := p.Connection.Execute(ctx, p.Bound.SQL, p.Bound.Values)
	elapsed := time.Since(start)
	if spin != nil {
		elapsed = spin.Stop()
	}
	if err != nil {
		return err
	}

	switch r := result.(type) {
	case *db.RowSet:
		return showRows(p, r, elapsed)

	case db.AffectedCount:
		noun := "rows"
		if r == 1 {
			noun = "row"
		}
		fmt.Fprintln(p.Out, styles.Success.Render(fmt.Sprintf("✓ %d %s affected in %.2fs", int64(r), noun, elapsed.Seconds())))
		if db.Verb(p.Bound.SQL) == "insert" {
			if id, ok := p.Connection.LastInsertID(); ok {
				fmt.Fprintln(p.Out, styles.Label.Render("last insert id: ")+id)
			}
		}

	default:
		fmt.Fprintln(p.Out, styles.Success.Render(fmt.Sprintf("✓ Command executed successfully in %.2fs", elapsed.Seconds())))
	}

	fmt.Fprintln(p.Out, styles.Faint.Render("\nExecuted SQL:"))
	fmt.Fprintln(p.Out, parser.HighlightSQL(displaySQL(p)))
	return nil
}

func showRows(p ExecutionParams, set *db.RowSet, elapsed time.Duration) error {
	headers, rows := table.Cells(set)

	if p.Format != "" || p.Copy {
		format := p.Format
		if format == "" {
			format = table.FormatTSV
		}
		content, err := table.Export(format, headers, rows)
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		if p.Copy {
			if err := table.CopyToClipboard(content); err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}
			fmt.Fprintln(p.Err, styles.Success.Render(fmt.Sprintf("✓ Copied %s as %s", table.Summary(len(rows), elapsed), format)))
			if p.Format == "" {
				return nil
			}
		}
		_, err = io.WriteString(p.Out, content)
		return err
	}

	if len(rows) == 0 {
		fmt.Fprintln(p.Out, "No results found")
		return nil
	}

	if p.Interactive {
		if _, err := table.Render(p.Query.Name, headers, rows, elapsed, p.CellWidth); err != nil {
			return fmt.Errorf("error rendering table: %w", err)
		}
		return nil
	}

	if err := table.Print(p.Out, headers, rows, p.CellWidth); err != nil {
		return err
	}
	fmt.Fprintln(p.Out, styles.Faint.Render(table.Summary(len(rows), elapsed)))
	return nil
}

func displaySQL(p ExecutionParams) string {
	if p.Bound.DisplaySQL != "" {
		return p.Bound.DisplaySQL
	}
	return p.Bound.SQL
}
