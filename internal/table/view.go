package table

import (
	"strings"

	"github.com/eduardofuncao/dbkit/internal/styles"
)

func (m Model) View() string {
	var b strings.Builder

	if m.title != "" {
		b.WriteString(styles.Title.Render(m.title))
		b.WriteString("\n")
	}

	if len(m.data) == 0 {
		b.WriteString(styles.Faint.Render("No results found"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderFooter() string {
	footer := styles.Faint.Render(Summary(len(m.data), m.elapsed))
	if m.status != "" {
		footer += "  " + styles.Success.Render(m.status)
	}

	help := []string{
		styles.TableHeader.Render("↑↓") + styles.Faint.Render(" move"),
		styles.TableHeader.Render("y") + styles.Faint.Render(" copy row"),
		styles.TableHeader.Render("Y") + styles.Faint.Render(" copy all"),
		styles.TableHeader.Render("q") + styles.Faint.Render(" quit"),
	}
	return footer + "\n" + strings.Join(help, styles.Separator.Render("  "))
}
