package main

import (
	"fmt"
	"strings"

	"github.com/eduardofuncao/dbkit/internal/db"
	"github.com/eduardofuncao/dbkit/internal/styles"
)

type commandHelp struct {
	name        string
	aliases     []string
	summary     string
	usage       []string
	description []string
	examples    []string
}

var commands = []commandHelp{
	{
		name:    "init",
		aliases: []string{"create"},
		summary: "Create and save a new database connection",
		usage:   []string{"dbkit init <name> <driver> <host> <dbname> [user] [password] [charset]"},
		description: []string{
			"Connects once to verify the settings, then saves them and makes the",
			"connection active. Run without arguments in a terminal to fill in a form.",
			"Drivers: " + strings.Join(db.SupportedDrivers(), ", ") + ". Host may carry a port, e.g. db:5433.",
			"For sqlite, dbname is the database file and host is ignored.",
		},
		examples: []string{
			"dbkit init dev postgres localhost shop app secret UTF8",
			"dbkit init local sqlite - ./shop.db",
			"dbkit init legacy mysql 127.0.0.1:3306 shop root secret utf8mb4",
		},
	},
	{
		name:     "switch",
		aliases:  []string{"use"},
		summary:  "Switch the active connection",
		usage:    []string{"dbkit switch <connection>"},
		examples: []string{"dbkit switch dev", "dbkit use prod"},
	},
	{
		name:    "disconnect",
		summary: "Clear the active connection",
		usage:   []string{"dbkit disconnect"},
	},
	{
		name:    "status",
		summary: "Show the active connection and whether it is reachable",
		usage:   []string{"dbkit status"},
	},
	{
		name:    "add",
		aliases: []string{"save"},
		summary: "Save a new named query",
		usage:   []string{"dbkit add <query-name> [sql]"},
		description: []string{
			"Without [sql], $EDITOR (default: vim) opens to write the query.",
			"Queries may use :name placeholders, with an optional default: :limit|10",
		},
		examples: []string{
			"dbkit add list_users \"SELECT * FROM users\"",
			"dbkit add user_by_id \"SELECT * FROM users WHERE id = :id\"",
		},
	},
	{
		name:     "remove",
		aliases:  []string{"delete"},
		summary:  "Remove a saved query by name or id",
		usage:    []string{"dbkit remove <query-name|id>"},
		examples: []string{"dbkit remove list_users", "dbkit remove 3"},
	},
	{
		name:    "run",
		aliases: []string{"query"},
		summary: "Run a saved query, an id or inline SQL",
		usage: []string{
			"dbkit run <query-name|id|sql> [key=value ...] [value ...]",
			"dbkit run --last",
			"dbkit run <query> --format csv|tsv|json|markdown|html [--copy]",
		},
		description: []string{
			"Parameters are bound by name. Missing values are asked for in a",
			"terminal and are an error otherwise. Values null, true, false and",
			"integers bind as such; everything else binds as text.",
			"Reads show a table, writes print the affected row count.",
			"--edit, -e      edit the query before running it",
			"--last, -l      run the last query again",
			"--format, -f    print rows in the given format",
			"--copy, -c      copy rows to the clipboard",
		},
		examples: []string{
			"dbkit run list_users",
			"dbkit run user_by_id id=7",
			"dbkit run \"SELECT * FROM orders WHERE total > :min\" 100",
			"dbkit run 2 --edit",
			"dbkit run list_users -f json",
		},
	},
	{
		name:    "list",
		aliases: []string{"ls"},
		summary: "List connections or queries",
		usage:   []string{"dbkit list [connections|queries] [search-term] [--oneline]"},
		examples: []string{
			"dbkit list",
			"dbkit list queries emp",
			"dbkit list connections",
		},
	},
	{
		name:    "edit",
		summary: "Open the config or the saved queries in your editor",
		usage:   []string{"dbkit edit [config|queries]"},
	},
	{
		name:    "help",
		summary: "Show help for dbkit or a specific command",
		usage:   []string{"dbkit help [command]"},
	},
}

func findCommand(name string) (commandHelp, bool) {
	name = strings.ToLower(name)
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
		for _, alias := range c.aliases {
			if alias == name {
				return c, true
			}
		}
	}
	return commandHelp{}, false
}

func (a *App) handleHelp() {
	if len(a.args) < 3 {
		a.printGeneralHelp()
		return
	}
	c, ok := findCommand(a.args[2])
	if !ok {
		printError("Unknown command: %s", a.args[2])
	}
	a.printCommandHelp(c)
}

func (a *App) printGeneralHelp() {
	fmt.Fprintln(a.out, styles.Title.Render("dbkit - run named SQL against your databases"))
	fmt.Fprintln(a.out, styles.Faint.Render("Save, edit and run parameterized SQL across connections."))
	fmt.Fprintln(a.out)

	fmt.Fprintln(a.out, styles.Title.Render("Usage"))
	fmt.Fprintln(a.out, styles.Separator.Render("  dbkit [--verbose] <command> [arguments]"))
	fmt.Fprintln(a.out)

	fmt.Fprintln(a.out, styles.Title.Render("Commands"))
	for _, c := range commands {
		summary := c.summary
		if len(c.aliases) > 0 {
			summary += " (alias: " + strings.Join(c.aliases, ", ") + ")"
		}
		fmt.Fprintf(a.out, "  %-12s%s\n", c.name, styles.Faint.Render(summary))
	}
	fmt.Fprintln(a.out)

	fmt.Fprintln(a.out, styles.Title.Render("Help"))
	fmt.Fprintln(a.out, "  dbkit help              "+styles.Faint.Render("Show this help"))
	fmt.Fprintln(a.out, "  dbkit help <command>    "+styles.Faint.Render("Show detailed help for a specific command"))
}

func (a *App) printCommandHelp(c commandHelp) {
	section := func(title string) {
		fmt.Fprintln(a.out, styles.Title.Render(title))
	}

	section("Command: " + c.name)
	fmt.Fprintln(a.out, styles.Faint.Render(c.summary))
	fmt.Fprintln(a.out)

	section("Usage")
	for _, line := range c.usage {
		fmt.Fprintln(a.out, "  "+line)
	}

	if len(c.description) > 0 {
		fmt.Fprintln(a.out)
		section("Description")
		for _, line := range c.description {
			fmt.Fprintln(a.out, "  "+line)
		}
	}

	if len(c.examples) > 0 {
		fmt.Fprintln(a.out)
		section("Examples")
		for _, line := range c.examples {
			fmt.Fprintln(a.out, "  "+line)
		}
	}
}
