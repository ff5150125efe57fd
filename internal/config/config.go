package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/eduardofuncao/dbkit/internal/db"
)

var CfgPath = os.ExpandEnv("$HOME/.config/dbkit/")
var CfgFile = filepath.Join(CfgPath, "config.yaml")

var (
	ErrNoCurrentConnection = errors.New("no active connection")
	ErrUnknownConnection   = errors.New("connection not found")
)

type Config struct {
	CurrentConnection string                     `yaml:"current_connection"`
	Connections       map[string]*ConnectionYAML `yaml:"connections"`
	Log               Log                        `yaml:"log"`

	path string
}

type Log struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// LoadConfig reads the config at path, writing a blank one when the file
// does not exist yet.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(os.Stderr, "Creating blank config file at", path)
			cfg := &Config{
				Connections: make(map[string]*ConnectionYAML),
				path:        path,
			}
			if err := cfg.Save(); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Connections == nil {
		cfg.Connections = make(map[string]*ConnectionYAML)
	}
	for name, conn := range cfg.Connections {
		if conn.Queries == nil {
			conn.Queries = make(map[string]db.Query)
		}
		if conn.Name == "" {
			conn.Name = name
		}
	}
	cfg.path = path
	return &cfg, nil
}

func (c *Config) Path() string {
	if c.path == "" {
		return CfgFile
	}
	return c.path
}

func (c *Config) Save() error {
	path := c.Path()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	// Passwords live in this file.
	return os.WriteFile(path, data, 0600)
}

// LogFile is where the CLI writes its log, next to the config by default.
func (c *Config) LogFile() string {
	if c.Log.File != "" {
		return os.ExpandEnv(c.Log.File)
	}
	return filepath.Join(filepath.Dir(c.Path()), "dbkit.log")
}

// Current returns the active connection entry.
func (c *Config) Current() (*ConnectionYAML, error) {
	if c.CurrentConnection == "" {
		return nil, ErrNoCurrentConnection
	}
	return c.Connection(c.CurrentConnection)
}

func (c *Config) Connection(name string) (*ConnectionYAML, error) {
	conn, ok := c.Connections[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownConnection, name)
	}
	return conn, nil
}
