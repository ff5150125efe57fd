package parser

import (
	"regexp"
	"testing"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestFormatSQLWithLineBreaks(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want string
	}{
		{
			name: "select with where",
			sql:  "select id, name from users where id = :id order by name",
			want: "select id, name\nfrom users\nwhere id = :id\norder by name",
		},
		{
			name: "compound keyword stays together",
			sql:  "DELETE   FROM t WHERE x = 1",
			want: "DELETE FROM t\nWHERE x = 1",
		},
		{
			name: "join",
			sql:  "SELECT * FROM a LEFT JOIN b ON a.id = b.a_id",
			want: "SELECT *\nFROM a\nLEFT JOIN b\nON a.id = b.a_id",
		},
		{
			name: "keywords inside identifiers untouched",
			sql:  "SELECT settings FROM fromage",
			want: "SELECT settings\nFROM fromage",
		},
		{
			name: "empty",
			sql:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSQLWithLineBreaks(tt.sql); got != tt.want {
				t.Errorf("FormatSQLWithLineBreaks() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHighlightSQL_KeepsText(t *testing.T) {
	sql := "SELECT name FROM users WHERE note = 'select it''s' AND id = 1"
	got := ansi.ReplaceAllString(HighlightSQL(sql), "")
	if got != sql {
		t.Errorf("HighlightSQL() text = %q, want %q", got, sql)
	}
}
