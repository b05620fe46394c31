package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.screen == screenProjects {
		b.WriteString(m.renderProjects())
	} else {
		b.WriteString(m.renderFilters())
		b.WriteString("\n\n")
		b.WriteString(m.renderTasks())
	}

	if m.mode != modeBrowse {
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
	}

	if m.state.Alert != "" {
		b.WriteString("\n\n")
		b.WriteString(m.styles.Alert.Render(m.state.Alert))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.helpKeys()))
	return b.String()
}

func (m Model) helpKeys() help.KeyMap {
	switch {
	case m.mode != modeBrowse:
		return inputKeys{m.keys}
	case m.screen == screenTasks:
		return taskKeys{m.keys}
	default:
		return projectKeys{m.keys}
	}
}

func (m Model) renderHeader() string {
	title := m.styles.Header.Render("taskboard")
	crumb := "Projects"
	if m.state.Selected != nil {
		crumb = "Projects / " + m.state.Selected.Name
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, title, m.styles.Breadcrumb.Render(crumb))
}

func (m Model) renderProjects() string {
	if len(m.state.Projects) == 0 {
		return m.styles.Empty.Render("No projects yet. Press a to add one.")
	}

	lines := make([]string, 0, len(m.state.Projects))
	for i, p := range m.state.Projects {
		lines = append(lines, m.renderRow(i, p.Name))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderFilters() string {
	parts := make([]string, 0, len(Filters))
	for _, f := range Filters {
		style := m.styles.Filter
		if f == m.state.Filter {
			style = m.styles.FilterOn
		}
		parts = append(parts, style.Render(f.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderTasks() string {
	visible := m.state.Visible()
	if len(visible) == 0 {
		return m.styles.Empty.Render(EmptyMessage(m.state.Filter, len(m.state.Tasks)))
	}

	lines := make([]string, 0, len(visible))
	for i, t := range visible {
		box := "[ ]"
		style := m.styles.Pending
		if t.Status.Done() {
			box = "[x]"
			style = m.styles.Done
		}
		lines = append(lines, m.renderRow(i, fmt.Sprintf("%s %s", box, style.Render(t.Name))))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderRow(i int, text string) string {
	if i == m.cursor && m.mode == modeBrowse {
		return m.styles.Cursor.Render("> ") + text
	}
	return m.styles.Item.Render(text)
}
