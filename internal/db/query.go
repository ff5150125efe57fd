package db

import (
	"strconv"
)

// Query is a saved statement.
type Query struct {
	Name string `yaml:"name"`
	Id   int    `yaml:"id"`
	SQL  string `yaml:"sql"`
}

// FindQueryWithSelector looks a query up by numeric id or by name.
func FindQueryWithSelector(queries map[string]Query, selector string) (Query, bool) {
	if id, err := strconv.Atoi(selector); err == nil {
		for _, q := range queries {
			if q.Id == id {
				return q, true
			}
		}
		return Query{}, false
	}
	q, ok := queries[selector]
	return q, ok
}

// NextQueryID returns one past the highest id in use.
func NextQueryID(queries map[string]Query) int {
	maxID := 0
	for _, q := range queries {
		if q.Id > maxID {
			maxID = q.Id
		}
	}
	return maxID + 1
}
