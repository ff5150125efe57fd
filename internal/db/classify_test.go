package db

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		wantVerb string
		wantKind StatementKind
	}{
		{"select with leading spaces", "  SELECT * FROM t", "select", StatementRead},
		{"show", "SHOW TABLES", "show", StatementRead},
		{"lowercase select", "select 1", "select", StatementRead},
		{"tabs and newlines", "SELECT\t\n  1", "select", StatementRead},
		{"insert", "INSERT INTO users (name) VALUES (:name)", "insert", StatementWrite},
		{"update", "UPDATE t SET x=1 WHERE id=:id", "update", StatementWrite},
		{"delete", "\n\tDelete FROM t", "delete", StatementWrite},
		{"create table", "CREATE TABLE t (id INT)", "create", StatementOther},
		{"transaction control", "BEGIN", "begin", StatementOther},
		{"with clause is not a read", "WITH x AS (SELECT 1) SELECT * FROM x", "with", StatementOther},
		{"escaped carriage return text", `\rSELECT 1`, "select", StatementRead},
		{"escape inside verb", `SEL\rECT 1`, "select", StatementRead},
		{"carriage return byte", "\r\nUPDATE t SET x = 1", "update", StatementWrite},
		{"line comment", "-- fetch users\nSELECT * FROM users", "select", StatementRead},
		{"hash comment", "# mysql comment\nDELETE FROM t", "delete", StatementWrite},
		{"block comment", "/* header */ INSERT INTO t VALUES (1)", "insert", StatementWrite},
		{"unterminated comment", "/* nothing", "", StatementOther},
		{"empty", "", "", StatementOther},
		{"whitespace only", " \t\n ", "", StatementOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Verb(tt.sql); got != tt.wantVerb {
				t.Errorf("Verb(%q) = %q, want %q", tt.sql, got, tt.wantVerb)
			}
			if got := Classify(tt.sql); got != tt.wantKind {
				t.Errorf("Classify(%q) = %s, want %s", tt.sql, got, tt.wantKind)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		sql  string
		want string
	}{
		{"SELECT\t\n  1", "SELECT 1"},
		{"  a \t\t b\n\n\nc  ", "a b c"},
		{`x\ry`, "xy"},
		{"x\ry", "x y"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.sql); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.sql, got, tt.want)
		}
	}
}
