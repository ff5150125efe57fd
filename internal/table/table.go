package table

import (
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/eduardofuncao/dbkit/internal/styles"
)

const DefaultCellWidth = 40

// Render shows the rows in an interactive table until the user quits.
func Render(title string, headers []string, rows [][]string, elapsed time.Duration, cellWidth int) (Model, error) {
	model := New(title, headers, rows, elapsed, cellWidth)
	p := tea.NewProgram(model)
	finalModel, err := p.Run()
	if err != nil {
		return model, err
	}
	return finalModel.(Model), nil
}

// Print writes a plain bordered table, for output that is not a terminal.
func Print(w io.Writer, headers []string, rows [][]string, cellWidth int) error {
	widths := columnWidths(headers, rows, cellWidth)
	sep := styles.TableBorder.Render(" │ ")

	line := func(cells []string, style func(string) string) string {
		parts := make([]string, len(widths))
		for i, width := range widths {
			cell := ""
			if i < len(cells) {
				cell = truncate(cells[i], width)
			}
			parts[i] = style(runewidth.FillRight(cell, width))
		}
		return strings.Join(parts, sep)
	}

	rule := make([]string, len(widths))
	for i, width := range widths {
		rule[i] = strings.Repeat("─", width)
	}

	var b strings.Builder
	b.WriteString(line(headers, func(s string) string { return styles.TableHeader.Render(s) }) + "\n")
	b.WriteString(styles.TableBorder.Render(strings.Join(rule, "─┼─")) + "\n")
	for _, row := range rows {
		b.WriteString(line(row, renderCell) + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func renderCell(s string) string {
	if strings.TrimSpace(s) == NullText {
		return styles.TableNull.Render(s)
	}
	return styles.TableCell.Render(s)
}

// Summary is the footer line shown under a result.
func Summary(rowCount int, elapsed time.Duration) string {
	noun := "rows"
	if rowCount == 1 {
		noun = "row"
	}
	return fmt.Sprintf("%d %s in %.2fs", rowCount, noun, elapsed.Seconds())
}
