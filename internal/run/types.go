package run

import "github.com/eduardofuncao/dbkit/internal/db"

// Flags represents command-line flags for the run command
type Flags struct {
	EditMode  bool
	LastQuery bool
	Copy      bool
	Format    string
	Selector  string
	// Args are parameter values, key=value or positional.
	Args []string
}

// ResolvedQuery represents a query that has been resolved from user input
type ResolvedQuery struct {
	Query    db.Query
	Saveable bool // will be saved to config file
}
