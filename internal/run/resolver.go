package run

import (
	"fmt"

	"github.com/eduardofuncao/dbkit/internal/config"
	"github.com/eduardofuncao/dbkit/internal/db"
)

const newQueryName = "<new>"

// ResolveQuery determines which query to run based on flags and the active
// connection. Priority:
//  1. Last query (if --last/-l flag)
//  2. Inline SQL (if selector looks like SQL)
//  3. Saved query by name/ID
//  4. Create new in editor (default)
func ResolveQuery(flags Flags, conn *config.ConnectionYAML) (ResolvedQuery, error) {
	if flags.LastQuery {
		if conn.LastQuery.SQL == "" {
			return ResolvedQuery{}, fmt.Errorf("no last query found. Run a query first, then use dbkit run --last")
		}
		return ResolvedQuery{
			Query:    conn.LastQuery,
			Saveable: true,
		}, nil
	}

	if flags.Selector != "" && IsLikelySQL(flags.Selector) {
		return ResolvedQuery{
			Query:    db.Query{Name: config.InlineQueryName, SQL: flags.Selector, Id: -1},
			Saveable: true,
		}, nil
	}

	if flags.Selector != "" {
		q, found := db.FindQueryWithSelector(conn.Queries, flags.Selector)
		if !found {
			return ResolvedQuery{}, fmt.Errorf("could not find query with name/id: %v", flags.Selector)
		}
		return ResolvedQuery{
			Query:    q,
			Saveable: true,
		}, nil
	}

	return ResolvedQuery{
		Query:    db.Query{Name: newQueryName, Id: -1},
		Saveable: false,
	}, nil
}

// ShouldCreateNewQuery returns true if the resolved query indicates a new query should be created
func ShouldCreateNewQuery(resolved ResolvedQuery) bool {
	return resolved.Query.Name == newQueryName && resolved.Query.SQL == ""
}
