package db

import "database/sql"

// Dialect knows how to reach one kind of database server.
type Dialect interface {
	// Name is the database/sql driver name. sqlx derives the bindvar style from it.
	Name() string
	// Open returns a handle for the settings. It must not dial the server yet.
	Open(s Settings) (*sql.DB, error)
	// InitCommands run once on every fresh session, before any statement.
	InitCommands(s Settings) ([]string, error)
	// Syntax tells the placeholder scanner how comments and quotes work.
	Syntax() Syntax
}
