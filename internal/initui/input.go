package initui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eduardofuncao/dbkit/internal/db"
	"github.com/eduardofuncao/dbkit/internal/styles"
)

const (
	fieldName = iota
	fieldDriver
	fieldHost
	fieldDBName
	fieldUser
	fieldPassword
	fieldCharset
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Connection name",
	"Driver",
	"Host",
	"Database",
	"User",
	"Password",
	"Charset",
}

// Drivers offered in the form. Aliases stay valid on the command line.
var Drivers = []string{"mysql", "postgres", "sqlite", "oracle"}

var ErrAborted = errors.New("init input aborted")

type InitInputModel struct {
	values      [fieldCount][]rune
	cursors     [fieldCount]int
	cursorIndex int
	aborted     bool
}

func NewInitInputModel(name string, s db.Settings) InitInputModel {
	if s.Driver == "" {
		s.Driver = db.InferDriver(s.Host, s.DBName)
	}

	m := InitInputModel{}
	for i, v := range []string{name, s.Driver, s.Host, s.DBName, s.User, s.Password, s.Charset} {
		m.values[i] = []rune(v)
		m.cursors[i] = len(m.values[i])
	}
	return m
}

func (m InitInputModel) Init() tea.Cmd {
	return nil
}

func (m InitInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit

	case "enter":
		if missing := m.firstMissing(); missing >= 0 {
			m.cursorIndex = missing
			return m, nil
		}
		return m, tea.Quit

	case "down", "tab":
		if m.cursorIndex < fieldCount-1 {
			m.cursorIndex++
		}

	case "up", "shift+tab":
		if m.cursorIndex > fieldName {
			m.cursorIndex--
		}

	case "right":
		if m.cursorIndex == fieldDriver {
			m.cycleDriver(1)
		} else if m.cursors[m.cursorIndex] < len(m.values[m.cursorIndex]) {
			m.cursors[m.cursorIndex]++
		}

	case "left":
		if m.cursorIndex == fieldDriver {
			m.cycleDriver(-1)
		} else if m.cursors[m.cursorIndex] > 0 {
			m.cursors[m.cursorIndex]--
		}

	case "backspace":
		i, c := m.cursorIndex, m.cursors[m.cursorIndex]
		if i != fieldDriver && c > 0 {
			m.values[i] = append(m.values[i][:c-1:c-1], m.values[i][c:]...)
			m.cursors[i]--
		}

	default:
		if key.Type == tea.KeyRunes || key.Type == tea.KeySpace {
			m.insert(key.Runes)
		}
	}

	return m, nil
}

func (m *InitInputModel) insert(runes []rune) {
	i := m.cursorIndex
	if i == fieldDriver {
		// digits pick a driver from the list
		if len(runes) == 1 && runes[0] >= '1' && int(runes[0]-'1') < len(Drivers) {
			m.values[i] = []rune(Drivers[runes[0]-'1'])
		}
		return
	}

	c := m.cursors[i]
	value := make([]rune, 0, len(m.values[i])+len(runes))
	value = append(value, m.values[i][:c]...)
	value = append(value, runes...)
	value = append(value, m.values[i][c:]...)
	m.values[i] = value
	m.cursors[i] += len(runes)
}

func (m *InitInputModel) cycleDriver(dir int) {
	current := string(m.values[fieldDriver])
	idx := -1
	for i, d := range Drivers {
		if d == current {
			idx = i
			break
		}
	}
	if idx == -1 {
		m.values[fieldDriver] = []rune(Drivers[0])
		return
	}
	idx = (idx + dir + len(Drivers)) % len(Drivers)
	m.values[fieldDriver] = []rune(Drivers[idx])
}

// firstMissing returns the first required field left empty, or -1. SQLite
// needs no host.
func (m InitInputModel) firstMissing() int {
	required := []int{fieldName, fieldDriver, fieldDBName}
	if d := string(m.values[fieldDriver]); d != "sqlite" && d != "sqlite3" {
		required = append(required, fieldHost)
	}
	for _, f := range required {
		if len(m.values[f]) == 0 {
			return f
		}
	}
	return -1
}

func (m InitInputModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Initialize new connection"))
	b.WriteString("\n")

	for i := 0; i < fieldCount; i++ {
		m.renderField(&b, i)
	}

	b.WriteString("\n")
	b.WriteString(styles.Faint.Render("↑/↓: field  ←/→: move cursor/cycle driver  Enter: submit  Esc: cancel"))
	return b.String()
}

func (m InitInputModel) renderField(b *strings.Builder, i int) {
	value := string(m.values[i])
	if i == fieldPassword {
		value = strings.Repeat("•", len(m.values[i]))
	}
	if i == fieldDriver && value == "" {
		value = "<select>"
	}

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(styles.ColorCellNormal))

	if i != m.cursorIndex {
		b.WriteString(muted.Render(fieldLabels[i]+"   ") + muted.Render(value) + "\n")
		return
	}

	prompt := styles.Title.Render(fieldLabels[i] + " > ")
	if i == fieldDriver {
		b.WriteString(prompt + muted.Render(value+" ▼") + "\n")
		b.WriteString(styles.Faint.Render("  Available: "))
		for j, d := range Drivers {
			if j > 0 {
				b.WriteString(styles.Faint.Render(", "))
			}
			if d == string(m.values[fieldDriver]) {
				b.WriteString(styles.Title.Render(d))
			} else {
				b.WriteString(styles.Faint.Render(d))
			}
		}
		b.WriteString("\n")
		return
	}

	runes := []rune(value)
	c := min(m.cursors[i], len(runes))
	b.WriteString(prompt + muted.Render(string(runes[:c])+"▏"+string(runes[c:])) + "\n")
}

func (m InitInputModel) Name() string {
	return string(m.values[fieldName])
}

func (m InitInputModel) Settings() db.Settings {
	return db.Settings{
		Driver:   string(m.values[fieldDriver]),
		Host:     string(m.values[fieldHost]),
		DBName:   string(m.values[fieldDBName]),
		User:     string(m.values[fieldUser]),
		Password: string(m.values[fieldPassword]),
		Charset:  string(m.values[fieldCharset]),
	}
}

func (m InitInputModel) WasAborted() bool {
	return m.aborted
}

// CollectInitParameters prompts for connection settings, prefilled with what
// was given on the command line.
func CollectInitParameters(name string, s db.Settings) (string, db.Settings, error) {
	program := tea.NewProgram(NewInitInputModel(name, s))

	finalModel, err := program.Run()
	if err != nil {
		return "", db.Settings{}, err
	}

	inputModel := finalModel.(InitInputModel)
	if inputModel.WasAborted() {
		return "", db.Settings{}, ErrAborted
	}
	return inputModel.Name(), inputModel.Settings(), nil
}
