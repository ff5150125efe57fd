package table

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/eduardofuncao/dbkit/internal/db"
)

const NullText = "NULL"

// FormatValue renders one scanned value as cell text.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return NullText
	case []byte:
		return string(x)
	case string:
		return x
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 {
			return x.Format("2006-01-02")
		}
		return x.Format("2006-01-02 15:04:05")
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// Cells flattens a RowSet into a header row and text cells, whatever its
// fetch mode.
func Cells(set *db.RowSet) ([]string, [][]string) {
	headers := append([]string(nil), set.Columns...)

	switch set.Mode {
	case db.FetchNum:
		rows := make([][]string, len(set.Rows))
		for i, values := range set.Rows {
			rows[i] = formatRow(values)
		}
		return headers, rows

	case db.FetchColumn:
		if len(headers) > 1 {
			headers = headers[:1]
		}
		rows := make([][]string, len(set.Column))
		for i, v := range set.Column {
			rows[i] = []string{FormatValue(v)}
		}
		return headers, rows

	default:
		rows := make([][]string, len(set.Assoc))
		for i, record := range set.Assoc {
			row := make([]string, len(headers))
			for j, col := range headers {
				row[j] = FormatValue(record[col])
			}
			rows[i] = row
		}
		return headers, rows
	}
}

func formatRow(values []any) []string {
	row := make([]string, len(values))
	for i, v := range values {
		row[i] = FormatValue(v)
	}
	return row
}

// truncate fits s into width terminal cells, flattening newlines.
func truncate(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", "↵")
	s = strings.ReplaceAll(s, "\t", " ")
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// columnWidths sizes each column to its widest cell, capped at maxWidth.
func columnWidths(headers []string, rows [][]string, maxWidth int) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			if w := runewidth.StringWidth(truncate(row[i], 0)); w > widths[i] {
				widths[i] = w
			}
		}
	}
	if maxWidth > 0 {
		for i := range widths {
			widths[i] = min(widths[i], maxWidth)
		}
	}
	return widths
}
