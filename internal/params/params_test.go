package params

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eduardofuncao/dbkit/internal/db"
)

func TestExtractParameters(t *testing.T) {
	tests := []struct {
		name   string
		sql    string
		syntax db.Syntax
		want   map[string]string
	}{
		{
			name: "plain names",
			sql:  "SELECT * FROM users WHERE id = :id AND name = :name",
			want: map[string]string{"id": "", "name": ""},
		},
		{
			name: "defaults",
			sql:  "SELECT * FROM fruit WHERE kind = :kind|'Green apple' AND qty > :qty|5",
			want: map[string]string{"kind": "Green apple", "qty": "5"},
		},
		{
			name: "first default wins",
			sql:  "SELECT :a|1, :a|2",
			want: map[string]string{"a": "1"},
		},
		{
			name: "default before closing paren",
			sql:  "INSERT INTO t (x) VALUES (:x|7)",
			want: map[string]string{"x": "7"},
		},
		{
			name: "comments and literals ignored",
			sql:  "-- :skip\nSELECT ':not', \"col:umn\" /* :nope */ FROM t WHERE a = :a",
			want: map[string]string{"a": ""},
		},
		{
			name: "postgres cast",
			sql:  "SELECT :id::int, created_at::date FROM t",
			want: map[string]string{"id": ""},
		},
		{
			name: "no params",
			sql:  "SELECT 1",
			want: map[string]string{},
		},
		{
			name:   "mysql hash comment with apostrophe",
			sql:    "# don't touch\nSELECT * FROM t WHERE id = :id",
			syntax: db.MySQLSyntax,
			want:   map[string]string{"id": ""},
		},
		{
			name: "array slice is not a parameter",
			sql:  "SELECT a[1:2] FROM t WHERE id = :id",
			want: map[string]string{"id": ""},
		},
		{
			name: "colon inside default",
			sql:  "SELECT * FROM t WHERE at > :at|10:30",
			want: map[string]string{"at": "10:30"},
		},
		{
			name: "standard strings keep backslash",
			sql:  `SELECT 'C:\' FROM t WHERE id = :id`,
			want: map[string]string{"id": ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractParameters(tt.syntax, tt.sql)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractParameters() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParameterNames(t *testing.T) {
	got := ParameterNames(db.MySQLSyntax, "UPDATE t SET b = :b, a = :a WHERE b = :b AND c = :c|3")
	want := []string{"b", "a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParameterNames() = %v, want %v", got, want)
	}
}

func TestParseArgs(t *testing.T) {
	named, positionals := ParseArgs([]string{"id=5", ":name=Ada", "42", "a b=c", "x==y"})

	wantNamed := map[string]string{"id": "5", "name": "Ada", "x": "=y"}
	if !reflect.DeepEqual(named, wantNamed) {
		t.Errorf("named = %v, want %v", named, wantNamed)
	}
	wantPos := []string{"42", "a b=c"}
	if !reflect.DeepEqual(positionals, wantPos) {
		t.Errorf("positionals = %v, want %v", positionals, wantPos)
	}
}

func TestMapPositionalArgs(t *testing.T) {
	sql := "SELECT * FROM t WHERE b = :b AND a = :a"

	got := MapPositionalArgs(db.MySQLSyntax, sql, []string{"1", "2", "3"})
	want := map[string]string{"b": "1", "a": "2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MapPositionalArgs() = %v, want %v", got, want)
	}

	if got := MapPositionalArgs(db.MySQLSyntax, sql, nil); len(got) != 0 {
		t.Errorf("MapPositionalArgs(nil) = %v, want empty", got)
	}
}

func TestResolveParameters(t *testing.T) {
	defs := map[string]string{"id": "", "limit": "10", "name": ""}
	cli := map[string]string{"id": "3", "other": "x"}

	resolved := ResolveParameters(defs, cli)
	want := map[string]string{"id": "3", "limit": "10", "name": ""}
	if !reflect.DeepEqual(resolved, want) {
		t.Errorf("ResolveParameters() = %v, want %v", resolved, want)
	}

	if missing := GetMissingRequired(defs, resolved); !reflect.DeepEqual(missing, []string{"name"}) {
		t.Errorf("GetMissingRequired() = %v, want [name]", missing)
	}

	if err := ValidateCLIValues(cli, defs); err == nil {
		t.Error("ValidateCLIValues() should reject unknown parameter")
	}
	if err := ValidateParamNames(map[string]string{"edit": ""}); err == nil {
		t.Error("ValidateParamNames() should reject reserved name")
	}
}

func TestStripDefaults(t *testing.T) {
	got := StripDefaults(db.MySQLSyntax, "SELECT * FROM t WHERE kind = :kind|'a b' AND n > :n|3 AND s = ':x|1'")
	want := "SELECT * FROM t WHERE kind = :kind AND n > :n AND s = ':x|1'"
	if got != want {
		t.Errorf("StripDefaults() = %q, want %q", got, want)
	}
}

func TestGenerateDisplaySQL(t *testing.T) {
	got := GenerateDisplaySQL(db.MySQLSyntax, "SELECT * FROM t WHERE id = :id AND name = :name|x AND z = :z",
		map[string]string{"id": "5", "name": "O'Brien"})
	want := "SELECT * FROM t WHERE id = 5 AND name = 'O''Brien' AND z = :z"
	if got != want {
		t.Errorf("GenerateDisplaySQL() = %q, want %q", got, want)
	}
}

func TestConvertValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"42", int64(42)},
		{"-7", int64(-7)},
		{"true", true},
		{"FALSE", false},
		{"null", nil},
		{"Ada", "Ada"},
		{"'42'", "42"},
		{`"true"`, "true"},
		{"3.14", "3.14"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ConvertValue(tt.in); got != tt.want {
			t.Errorf("ConvertValue(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}

func TestInputModel(t *testing.T) {
	m := NewInputModel("SELECT :a, :b", []string{"a", "b"}, map[string]string{"b": "x"})

	var model tea.Model = m
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hé")})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})

	got := model.(InputModel).GetValues()
	want := map[string]string{"a": "h", "b": "xy"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GetValues() = %v, want %v", got, want)
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !model.(InputModel).WasAborted() {
		t.Error("Esc should abort")
	}
}

func TestInputModelEnterAdvances(t *testing.T) {
	var model tea.Model = NewInputModel("SELECT :a, :b", []string{"a", "b"}, nil)

	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := model.(InputModel).focus; got != 1 {
		t.Fatalf("focus after first enter = %d, want 1", got)
	}
	if model.(InputModel).done {
		t.Error("first enter should not submit")
	}

	model, cmd = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !model.(InputModel).done || cmd == nil {
		t.Error("enter on the last field should submit")
	}
	if model.(InputModel).WasAborted() {
		t.Error("submit is not an abort")
	}
}

func TestValueKind(t *testing.T) {
	tests := map[string]string{
		"NULL":  "null",
		"true":  "bool",
		"-12":   "int",
		"1.5":   "text",
		"'42'":  "text",
		"hello": "text",
	}
	for in, want := range tests {
		if got := valueKind(in); got != want {
			t.Errorf("valueKind(%q) = %q, want %q", in, got, want)
		}
	}
}
