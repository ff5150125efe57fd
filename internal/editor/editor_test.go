package editor

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eduardofuncao/dbkit/internal/db"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestStripInstructions(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "template with sql",
			content: Instructions("users") + "\nSELECT * FROM users\n\n",
			want:    "SELECT * FROM users",
		},
		{
			name:    "template left empty",
			content: Instructions("users"),
			want:    "",
		},
		{
			name:    "no separator",
			content: "  SELECT 1\n",
			want:    "SELECT 1",
		},
		{
			name:    "comments after separator kept",
			content: "-- header\n--\n-- note\nSELECT 1",
			want:    "-- note\nSELECT 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripInstructions(tt.content); got != tt.want {
				t.Errorf("StripInstructions() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommand(t *testing.T) {
	t.Setenv("EDITOR", "nano -w")
	if got := Command(); got != "nano -w" {
		t.Errorf("Command() = %q", got)
	}
	t.Setenv("EDITOR", "")
	if got := Command(); got != "vim" {
		t.Errorf("Command() = %q, want vim", got)
	}
}

func TestEditorModel_Submit(t *testing.T) {
	m := NewEditor(db.Query{Name: "users", SQL: "select 1"})

	var model tea.Model = m
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnd})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("0")})
	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	if cmd == nil {
		t.Fatal("Ctrl+D should quit")
	}

	q, submitted := model.(EditorModel).GetQuery()
	if !submitted {
		t.Fatal("query not submitted")
	}
	if q.SQL != "select 10" {
		t.Errorf("SQL = %q, want %q", q.SQL, "select 10")
	}
}

func TestEditorModel_Cancel(t *testing.T) {
	var model tea.Model = NewEditor(db.Query{Name: "x", SQL: "select 1"})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if _, submitted := model.(EditorModel).GetQuery(); submitted {
		t.Error("Esc should cancel")
	}
}

func TestShowQuery(t *testing.T) {
	var buf bytes.Buffer
	ShowQuery(&buf, db.Query{Name: "users", SQL: "SELECT * FROM users"})

	got := ansi.ReplaceAllString(buf.String(), "")
	if !strings.Contains(got, "◆ users") || !strings.Contains(got, "SELECT * FROM users") {
		t.Errorf("ShowQuery() = %q", got)
	}
}
