package table

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eduardofuncao/dbkit/internal/styles"
)

// Model is a read-only result browser built on the bubbles table.
type Model struct {
	title   string
	headers []string
	data    [][]string
	elapsed time.Duration
	table   table.Model
	width   int
	height  int
	status  string
}

type clearStatusMsg struct{}

func New(title string, headers []string, data [][]string, elapsed time.Duration, cellWidth int) Model {
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}

	widths := columnWidths(headers, data, cellWidth)
	columns := make([]table.Column, len(headers))
	for i, h := range headers {
		columns[i] = table.Column{Title: truncate(h, widths[i]), Width: widths[i]}
	}

	rows := make([]table.Row, len(data))
	for i, record := range data {
		row := make(table.Row, len(headers))
		for j := range headers {
			if j < len(record) {
				row[j] = truncate(record[j], widths[j])
			}
		}
		rows[i] = row
	}

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(styles.ColorFaint)).
		BorderBottom(true).
		Foreground(lipgloss.Color(styles.ColorAccent)).
		Bold(true)
	s.Cell = s.Cell.Foreground(lipgloss.Color(styles.ColorCellNormal))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(styles.ColorSelected)).
		Background(lipgloss.Color(styles.ColorHighlight)).
		Bold(true)

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+1, 20)),
	)
	t.SetStyles(s)

	return Model{
		title:   title,
		headers: headers,
		data:    data,
		elapsed: elapsed,
		table:   t,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		// title, footer and help lines
		m.table.SetHeight(max(3, msg.Height-4))
		m.table.SetWidth(msg.Width)
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// SelectedRow returns the full, untruncated cells of the row under the cursor.
func (m Model) SelectedRow() []string {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.data) {
		return nil
	}
	return m.data[i]
}
