package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/runoshun/todo/internal/domain"
)

// minContentWidth is the narrowest layout the list is rendered at.
const minContentWidth = 40

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.mode == ModeHelp {
		return m.styles.App.Render(m.viewHelp())
	}
	return m.styles.App.Render(m.viewMain())
}

// viewMain renders the main task list view.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n\n")
	}

	if m.mode == ModeAdd {
		b.WriteString(m.styles.InputPrompt.Render("New: "))
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
	}

	b.WriteString(m.viewTaskList())

	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return b.String()
}

// viewHeader renders "Tasks" and the filter tabs.
func (m *Model) viewHeader() string {
	title := m.styles.HeaderText.Render("Tasks")

	tabs := make([]string, 0, len(domain.AllFilters()))
	for _, f := range domain.AllFilters() {
		if f == m.filter {
			tabs = append(tabs, m.styles.TabSelected.Render(f.Label()))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(f.Label()))
		}
	}
	right := strings.Join(tabs, m.styles.Tab.Render("|"))

	headerWidth := max(m.contentWidth(), minContentWidth)
	spacing := max(headerWidth-lipgloss.Width(title)-lipgloss.Width(right), 1)

	return m.styles.Header.Render(title + strings.Repeat(" ", spacing) + right)
}

// viewTaskList renders the tasks of the current filter.
func (m *Model) viewTaskList() string {
	if len(m.tasks) == 0 {
		return m.viewEmptyState()
	}

	rowWidth := max(m.contentWidth(), minContentWidth)

	var b strings.Builder
	for i, task := range m.tasks {
		selected := i == m.cursor
		editing := m.mode == ModeEdit && task.ID == m.editID

		var line string
		if editing {
			line = m.renderEditRow()
		} else {
			line = m.renderTaskItem(task, selected, rowWidth)
		}

		if selected {
			b.WriteString(m.styles.TaskSelected.Width(rowWidth).Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	return m.styles.TaskList.Render(b.String())
}

// viewEmptyState renders the message for an empty filtered list.
func (m *Model) viewEmptyState() string {
	var b strings.Builder
	b.WriteString(m.styles.Empty.Render("  No tasks found"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Footer.Render("  Press "))
	b.WriteString(m.styles.FooterKey.Render("n"))
	b.WriteString(m.styles.Footer.Render(" to add a task"))
	b.WriteString("\n")
	return b.String()
}

// renderTaskItem renders a single row: "> [x] Buy milk".
func (m *Model) renderTaskItem(task domain.Task, selected bool, width int) string {
	indicator := " "
	if selected {
		indicator = m.styles.CursorSelected.Render(">")
	}

	checkbox := m.styles.Checkbox.Render("[ ]")
	if task.Completed {
		checkbox = m.styles.CheckboxDone.Render("[x]")
	}

	// indicator + space + checkbox + space
	text := truncate(singleLine(task.Text), width-6)
	switch {
	case task.Completed:
		text = m.styles.TaskTextCompleted.Render(text)
	case selected:
		text = m.styles.TaskTextSelected.Render(text)
	default:
		text = m.styles.TaskText.Render(text)
	}

	return indicator + " " + checkbox + " " + text
}

// renderEditRow renders the inline rename input in place of a row.
func (m *Model) renderEditRow() string {
	return m.styles.CursorSelected.Render(">") + " " + m.styles.InputPrompt.Render("Edit: ") + m.input.View()
}

// viewFooter renders the items-left count and key hints.
func (m *Model) viewFooter() string {
	left := m.styles.ItemsLeft.Render(m.itemsLeft)

	var hints string
	if m.mode.IsInputMode() {
		hints = m.help.ShortHelpView(m.keys.InputHelp())
	} else {
		hints = m.help.ShortHelpView(m.keys.ShortHelp())
	}

	return left + m.styles.Footer.Render("  •  ") + hints
}

// viewHelp renders the full key reference.
func (m *Model) viewHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render(m.styles.HeaderText.Render("Keybindings")))
	b.WriteString("\n")
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Footer.Render("Press ? or esc to close"))
	return m.styles.Help.Render(b.String())
}

// contentWidth is the terminal width minus the app padding.
func (m *Model) contentWidth() int {
	return m.width - 6
}

// singleLine replaces line breaks with spaces for single-line display.
func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// truncate shortens s to at most width display cells, adding an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}
