package config

import (
	"fmt"

	"github.com/eduardofuncao/dbkit/internal/db"
)

// InlineQueryName marks statements typed on the command line.
const InlineQueryName = "<inline>"

// SaveQueryToConnection saves a query to a connection, generating an ID if needed.
// If query.Id == -1 a new ID is generated and an existing query with the same
// name is an error.
func (c *Config) SaveQueryToConnection(connName string, query db.Query) (db.Query, error) {
	connData, err := c.Connection(connName)
	if err != nil {
		return db.Query{}, err
	}
	if connData.Queries == nil {
		connData.Queries = make(map[string]db.Query)
	}

	if query.Id == -1 {
		if _, exists := connData.Queries[query.Name]; exists {
			return db.Query{}, fmt.Errorf("query '%s' already exists", query.Name)
		}
		query.Id = db.NextQueryID(connData.Queries)
	}

	connData.Queries[query.Name] = query

	if err := c.Save(); err != nil {
		return db.Query{}, err
	}
	return query, nil
}

// RemoveQuery deletes a saved query by name or id.
func (c *Config) RemoveQuery(connName, selector string) (db.Query, error) {
	connData, err := c.Connection(connName)
	if err != nil {
		return db.Query{}, err
	}

	query, ok := db.FindQueryWithSelector(connData.Queries, selector)
	if !ok {
		return db.Query{}, fmt.Errorf("query %q not found in connection %s", selector, connName)
	}
	delete(connData.Queries, query.Name)
	return query, c.Save()
}

func (c *Config) UpdateLastQuery(connName string, query db.Query) error {
	connData, err := c.Connection(connName)
	if err != nil {
		return err
	}
	connData.LastQuery = query
	return c.Save()
}

// SaveQueryAndLast stores a named query, and optionally records it as the last
// one run. Inline statements are only ever recorded as last.
func (c *Config) SaveQueryAndLast(connName string, query db.Query, saveAsLast bool) error {
	connData, err := c.Connection(connName)
	if err != nil {
		return err
	}

	if query.Name != InlineQueryName && query.Name != "" && query.SQL != "" {
		if connData.Queries == nil {
			connData.Queries = make(map[string]db.Query)
		}
		connData.Queries[query.Name] = query
	}

	if saveAsLast {
		connData.LastQuery = query
	}

	return c.Save()
}
