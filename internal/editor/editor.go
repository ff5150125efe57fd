package editor

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eduardofuncao/dbkit/internal/db"
	"github.com/eduardofuncao/dbkit/internal/parser"
	"github.com/eduardofuncao/dbkit/internal/styles"
)

const (
	placeholderText = "Enter your query..."
	charLimit       = 10000
	initialWidth    = 80
	minLineHeight   = 3
	maxLineHeight   = 15
	widthMargin     = 4
	maxWidth        = 120
	separatorLine   = "──────────────────────────────────────────────────────────"
	queryBullet     = "◆ "
	helpText        = "Ctrl+D: Execute Query | Esc/Ctrl+C: Cancel"
)

type EditorModel struct {
	textArea  textarea.Model
	width     int
	height    int
	query     db.Query
	submitted bool
}

func NewEditor(initialQuery db.Query) EditorModel {
	ta := textarea.New()
	ta.Placeholder = placeholderText
	ta.Focus()
	ta.CharLimit = charLimit
	ta.SetWidth(initialWidth)

	formattedSQL := parser.FormatSQLWithLineBreaks(initialQuery.SQL)
	ta.SetValue(formattedSQL)
	ta.SetHeight(lineHeight(formattedSQL))

	return EditorModel{
		textArea: ta,
		query:    initialQuery,
	}
}

func lineHeight(s string) int {
	lines := strings.Count(s, "\n") + 1
	return min(max(lines, minLineHeight), maxLineHeight)
}

func (m EditorModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlD:
			m.query.SQL = strings.TrimSpace(m.textArea.Value())
			m.submitted = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textArea.SetWidth(min(m.width-widthMargin, maxWidth))
	}

	m.textArea, cmd = m.textArea.Update(msg)

	if h := lineHeight(m.textArea.Value()); h != m.textArea.Height() {
		m.textArea.SetHeight(h)
	}

	return m, cmd
}

func (m EditorModel) View() string {
	title := styles.Title.Render(queryBullet + m.query.Name)
	separator := styles.Separator.Render(separatorLine)

	if m.submitted {
		return fmt.Sprintf("%s\n%s\n%s\n", title, parser.HighlightSQL(m.query.SQL), separator)
	}
	return fmt.Sprintf("%s\n%s\n%s\n%s\n", title, m.textArea.View(), styles.Faint.Render(helpText), separator)
}

func (m EditorModel) GetQuery() (db.Query, bool) {
	return m.query, m.submitted
}

// ShowQuery prints the query header and highlighted SQL without editing.
func ShowQuery(w io.Writer, query db.Query) {
	m := EditorModel{query: query, submitted: true}
	fmt.Fprint(w, m.View())
}

// EditQuery opens the inline editor. The boolean is false when the user
// cancelled.
func EditQuery(query db.Query) (db.Query, bool, error) {
	p := tea.NewProgram(NewEditor(query))

	finalModel, err := p.Run()
	if err != nil {
		return db.Query{}, false, err
	}

	edited, submitted := finalModel.(EditorModel).GetQuery()
	return edited, submitted, nil
}
