package table

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit

	case "y":
		row := m.SelectedRow()
		if row == nil {
			return m, nil
		}
		return m.copy(FormatTSV, [][]string{row})

	case "Y":
		return m.copy(FormatCSV, m.data)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) copy(format Format, rows [][]string) (tea.Model, tea.Cmd) {
	content, err := Export(format, m.headers, rows)
	if err == nil {
		err = CopyToClipboard(content)
	}

	if err != nil {
		m.status = fmt.Sprintf("Copy failed: %v", err)
	} else {
		noun := "rows"
		if len(rows) == 1 {
			noun = "row"
		}
		m.status = fmt.Sprintf("Copied %d %s as %s", len(rows), noun, format)
	}

	return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
