package params

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/eduardofuncao/dbkit/internal/parser"
	"github.com/eduardofuncao/dbkit/internal/styles"
)

var ErrAborted = errors.New("parameter input aborted")

var (
	focusedPrompt = lipgloss.NewStyle().Foreground(lipgloss.Color(styles.ColorAccent)).Bold(true)
	blurredPrompt = lipgloss.NewStyle().Foreground(lipgloss.Color(styles.ColorCellNormal))
)

// InputModel asks for one value per missing parameter. Enter moves to the
// next field and submits on the last one.
type InputModel struct {
	sql     string
	names   []string
	inputs  []textinput.Model
	focus   int
	aborted bool
	done    bool
}

func NewInputModel(sql string, missingParams []string, defaults map[string]string) InputModel {
	m := InputModel{
		sql:    sql,
		names:  missingParams,
		inputs: make([]textinput.Model, len(missingParams)),
	}
	for i, name := range missingParams {
		in := textinput.New()
		in.Prompt = name + " > "
		in.Placeholder = "null, true, 42 or text"
		in.SetValue(defaults[name])
		in.CursorEnd()
		m.inputs[i] = in
	}
	m.setFocus(0)
	return m
}

func (m *InputModel) setFocus(i int) tea.Cmd {
	m.focus = i
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == i {
			m.inputs[j].PromptStyle = focusedPrompt
			cmd = m.inputs[j].Focus()
		} else {
			m.inputs[j].PromptStyle = blurredPrompt
			m.inputs[j].Blur()
		}
	}
	return cmd
}

func (m InputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m InputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			if m.focus == len(m.inputs)-1 {
				m.done = true
				return m, tea.Quit
			}
			return m, m.setFocus(m.focus + 1)
		case "down", "tab":
			if m.focus < len(m.inputs)-1 {
				return m, m.setFocus(m.focus + 1)
			}
			return m, nil
		case "up", "shift+tab":
			if m.focus > 0 {
				return m, m.setFocus(m.focus - 1)
			}
			return m, nil
		}
	}

	if len(m.inputs) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m InputModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Enter parameter values"))
	b.WriteString("\n")
	b.WriteString(parser.HighlightSQL(parser.FormatSQLWithLineBreaks(m.sql)))
	b.WriteString("\n\n")

	for i, in := range m.inputs {
		b.WriteString(in.View())
		if v := in.Value(); v != "" {
			b.WriteString("  " + styles.Faint.Render("("+valueKind(v)+")"))
		}
		if i < len(m.inputs)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n")
	b.WriteString(styles.Faint.Render("↑/↓: move  Enter: next/run  Esc: cancel"))
	return b.String()
}

// valueKind names how a typed value will be bound.
func valueKind(v string) string {
	switch ConvertValue(v).(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case int64:
		return "int"
	default:
		return "text"
	}
}

func (m InputModel) GetValues() map[string]string {
	values := make(map[string]string, len(m.inputs))
	for i, name := range m.names {
		values[name] = m.inputs[i].Value()
	}
	return values
}

func (m InputModel) WasAborted() bool {
	return m.aborted
}

// CollectParameters prompts for every name in missingParams and returns the
// values typed, prefilled with defaults.
func CollectParameters(sql string, missingParams []string, defaults map[string]string) (map[string]string, error) {
	if len(missingParams) == 0 {
		return map[string]string{}, nil
	}

	finalModel, err := tea.NewProgram(NewInputModel(sql, missingParams, defaults)).Run()
	if err != nil {
		return nil, err
	}

	inputModel := finalModel.(InputModel)
	if inputModel.WasAborted() {
		return nil, ErrAborted
	}
	return inputModel.GetValues(), nil
}
