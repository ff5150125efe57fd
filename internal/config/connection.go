package config

import (
	"github.com/eduardofuncao/dbkit/internal/db"
)

// ConnectionYAML is one named entry under connections.
type ConnectionYAML struct {
	Name        string `yaml:"name"`
	db.Settings `yaml:",inline"`
	Queries     map[string]db.Query `yaml:"queries"`
	LastQuery   db.Query            `yaml:"last_query,omitempty"`
}

func NewConnectionYAML(name string, settings db.Settings) *ConnectionYAML {
	return &ConnectionYAML{
		Name:     name,
		Settings: settings,
		Queries:  make(map[string]db.Query),
	}
}

// AddConnection stores conn under its name and makes it current.
func (c *Config) AddConnection(conn *ConnectionYAML) error {
	if c.Connections == nil {
		c.Connections = make(map[string]*ConnectionYAML)
	}
	c.Connections[conn.Name] = conn
	c.CurrentConnection = conn.Name
	return c.Save()
}

func (c *Config) SwitchConnection(name string) error {
	if _, err := c.Connection(name); err != nil {
		return err
	}
	c.CurrentConnection = name
	return c.Save()
}

// Disconnect clears the active connection without removing it.
func (c *Config) Disconnect() error {
	if c.CurrentConnection == "" {
		return ErrNoCurrentConnection
	}
	c.CurrentConnection = ""
	return c.Save()
}
