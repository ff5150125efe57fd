package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eduardofuncao/dbkit/internal/db"
)

func TestLoadConfig_CreatesBlankFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if len(cfg.Connections) != 0 {
		t.Errorf("Connections = %v, want empty", cfg.Connections)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not written: %v", err)
	}
	if got := cfg.LogFile(); got != filepath.Join(filepath.Dir(path), "dbkit.log") {
		t.Errorf("LogFile() = %s", got)
	}
}

func TestConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	settings := db.Settings{Driver: "mysql", Host: "db.local", DBName: "app", User: "root", Password: "pw", Charset: "utf8mb4"}
	if err := cfg.AddConnection(NewConnectionYAML("dev", settings)); err != nil {
		t.Fatalf("AddConnection() error = %v", err)
	}
	if _, err := cfg.SaveQueryToConnection("dev", db.Query{Name: "users", Id: -1, SQL: "SELECT * FROM users"}); err != nil {
		t.Fatalf("SaveQueryToConnection() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"current_connection: dev", "driver: mysql", "dbname: app", "charset: utf8mb4"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("saved config missing %q:\n%s", key, data)
		}
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	conn, err := loaded.Current()
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if conn.Settings != settings {
		t.Errorf("Settings = %+v, want %+v", conn.Settings, settings)
	}
	if q := conn.Queries["users"]; q.Id != 1 || q.SQL != "SELECT * FROM users" {
		t.Errorf("Queries[users] = %+v", q)
	}
}

func TestConfig_SwitchAndDisconnect(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := cfg.Current(); !errors.Is(err, ErrNoCurrentConnection) {
		t.Errorf("Current() error = %v, want ErrNoCurrentConnection", err)
	}

	cfg.AddConnection(NewConnectionYAML("a", db.Settings{Driver: "sqlite", DBName: "a.db"}))
	cfg.AddConnection(NewConnectionYAML("b", db.Settings{Driver: "sqlite", DBName: "b.db"}))

	if err := cfg.SwitchConnection("a"); err != nil {
		t.Fatalf("SwitchConnection(a) error = %v", err)
	}
	if cfg.CurrentConnection != "a" {
		t.Errorf("CurrentConnection = %s, want a", cfg.CurrentConnection)
	}
	if err := cfg.SwitchConnection("missing"); !errors.Is(err, ErrUnknownConnection) {
		t.Errorf("SwitchConnection(missing) error = %v, want ErrUnknownConnection", err)
	}

	if err := cfg.Disconnect(); err != nil {
		t.Fatalf("Disconnect() error = %v", err)
	}
	if err := cfg.Disconnect(); !errors.Is(err, ErrNoCurrentConnection) {
		t.Errorf("second Disconnect() error = %v", err)
	}
}

func TestSaveQuery(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	cfg.AddConnection(NewConnectionYAML("dev", db.Settings{Driver: "sqlite"}))

	first, err := cfg.SaveQueryToConnection("dev", db.Query{Name: "one", Id: -1, SQL: "SELECT 1"})
	if err != nil {
		t.Fatal(err)
	}
	second, err := cfg.SaveQueryToConnection("dev", db.Query{Name: "two", Id: -1, SQL: "SELECT 2"})
	if err != nil {
		t.Fatal(err)
	}
	if first.Id != 1 || second.Id != 2 {
		t.Errorf("ids = %d, %d, want 1, 2", first.Id, second.Id)
	}

	if _, err := cfg.SaveQueryToConnection("dev", db.Query{Name: "one", Id: -1, SQL: "SELECT 3"}); err == nil {
		t.Error("saving a duplicate name should fail")
	}
	if _, err := cfg.SaveQueryToConnection("nope", db.Query{Name: "x", Id: -1}); !errors.Is(err, ErrUnknownConnection) {
		t.Errorf("unknown connection error = %v", err)
	}

	removed, err := cfg.RemoveQuery("dev", "1")
	if err != nil || removed.Name != "one" {
		t.Fatalf("RemoveQuery(1) = %+v, %v", removed, err)
	}
	if _, ok := cfg.Connections["dev"].Queries["one"]; ok {
		t.Error("query one still present after removal")
	}
}

func TestSaveQueryAndLast(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	cfg.AddConnection(NewConnectionYAML("dev", db.Settings{Driver: "sqlite"}))

	inline := db.Query{Name: InlineQueryName, SQL: "SELECT 1"}
	if err := cfg.SaveQueryAndLast("dev", inline, true); err != nil {
		t.Fatal(err)
	}
	conn := cfg.Connections["dev"]
	if len(conn.Queries) != 0 {
		t.Errorf("inline query was saved: %v", conn.Queries)
	}
	if conn.LastQuery != inline {
		t.Errorf("LastQuery = %+v, want %+v", conn.LastQuery, inline)
	}
}
