package table

import (
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eduardofuncao/dbkit/internal/db"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "NULL"},
		{"bytes", []byte("abc"), "abc"},
		{"int64", int64(42), "42"},
		{"float", 1.5, "1.5"},
		{"bool", true, "true"},
		{"date", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "2024-03-01"},
		{"datetime", time.Date(2024, 3, 1, 13, 4, 5, 0, time.UTC), "2024-03-01 13:04:05"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatValue(tt.in); got != tt.want {
				t.Errorf("FormatValue(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCells(t *testing.T) {
	columns := []string{"id", "name"}

	tests := []struct {
		name        string
		set         *db.RowSet
		wantHeaders []string
		wantRows    [][]string
	}{
		{
			name: "assoc keeps column order",
			set: &db.RowSet{Mode: db.FetchAssoc, Columns: columns, Assoc: []map[string]any{
				{"name": "Ada", "id": int64(1)},
				{"name": nil, "id": int64(2)},
			}},
			wantHeaders: columns,
			wantRows:    [][]string{{"1", "Ada"}, {"2", "NULL"}},
		},
		{
			name:        "num",
			set:         &db.RowSet{Mode: db.FetchNum, Columns: columns, Rows: [][]any{{int64(1), "Ada"}}},
			wantHeaders: columns,
			wantRows:    [][]string{{"1", "Ada"}},
		},
		{
			name:        "column",
			set:         &db.RowSet{Mode: db.FetchColumn, Columns: columns, Column: []any{int64(1), int64(2)}},
			wantHeaders: []string{"id"},
			wantRows:    [][]string{{"1"}, {"2"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers, rows := Cells(tt.set)
			if strings.Join(headers, ",") != strings.Join(tt.wantHeaders, ",") {
				t.Errorf("headers = %v, want %v", headers, tt.wantHeaders)
			}
			if len(rows) != len(tt.wantRows) {
				t.Fatalf("rows = %v, want %v", rows, tt.wantRows)
			}
			for i := range rows {
				if strings.Join(rows[i], ",") != strings.Join(tt.wantRows[i], ",") {
					t.Errorf("row %d = %v, want %v", i, rows[i], tt.wantRows[i])
				}
			}
		})
	}
}

func TestExport(t *testing.T) {
	headers := []string{"id", "note"}
	rows := [][]string{{"1", `say "hi", ok`}, {"2", "a|b"}}

	tests := []struct {
		format Format
		want   string
	}{
		{FormatCSV, "id,note\n1,\"say \"\"hi\"\", ok\"\n2,a|b\n"},
		{FormatTSV, "id\tnote\n1\tsay \"hi\", ok\n2\ta|b\n"},
		{FormatMarkdown, "| id | note |\n| --- | --- |\n| 1 | say \"hi\", ok |\n| 2 | a\\|b |\n"},
		{FormatJSON, "[\n  {\n    \"id\": \"1\",\n    \"note\": \"say \\\"hi\\\", ok\"\n  },\n  {\n    \"id\": \"2\",\n    \"note\": \"a|b\"\n  }\n]\n"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			got, err := Export(tt.format, headers, rows)
			if err != nil {
				t.Fatalf("Export() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Export() = %q, want %q", got, tt.want)
			}
		})
	}

	html, err := Export(FormatHTML, []string{"<b>"}, [][]string{{"x&y"}})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, "<th>&lt;b&gt;</th>") || !strings.Contains(html, "<td>x&amp;y</td>") {
		t.Errorf("Export(html) = %s", html)
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatTable, "CSV": FormatCSV, "md": FormatMarkdown, "j": FormatJSON} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v, want %q", in, got, err, want)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestPrint(t *testing.T) {
	var b strings.Builder
	err := Print(&b, []string{"id", "name"}, [][]string{{"1", "Ada Lovelace"}, {"22", "NULL"}}, 5)
	if err != nil {
		t.Fatal(err)
	}

	got := ansi.ReplaceAllString(b.String(), "")
	want := "id │ name \n───┼──────\n1  │ Ada …\n22 │ NULL \n"
	if got != want {
		t.Errorf("Print() =\n%s\nwant\n%s", got, want)
	}
}

func TestSummary(t *testing.T) {
	if got := Summary(1, 1500*time.Millisecond); got != "1 row in 1.50s" {
		t.Errorf("Summary() = %q", got)
	}
	if got := Summary(3, 0); got != "3 rows in 0.00s" {
		t.Errorf("Summary() = %q", got)
	}
}

func TestModel_Copy(t *testing.T) {
	var copied string
	orig := CopyToClipboard
	t.Cleanup(func() { CopyToClipboard = orig })
	CopyToClipboard = func(s string) error {
		copied = s
		return nil
	}

	m := New("users", []string{"id", "name"}, [][]string{{"1", "Ada"}, {"2", "Grace"}}, time.Second, 0)

	var model tea.Model = m
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})

	if copied != "id\tname\n2\tGrace\n" {
		t.Errorf("copied = %q", copied)
	}
	if got := model.(Model).status; got != "Copied 1 row as tsv" {
		t.Errorf("status = %q", got)
	}

	CopyToClipboard = func(string) error { return errors.New("no clipboard") }
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Y")})
	if got := model.(Model).status; !strings.HasPrefix(got, "Copy failed") {
		t.Errorf("status = %q", got)
	}

	view := ansi.ReplaceAllString(model.View(), "")
	if !strings.Contains(view, "2 rows in 1.00s") {
		t.Errorf("View() missing summary:\n%s", view)
	}

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not return tea.Quit")
	}
}
