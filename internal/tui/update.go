package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/todo/internal/domain"
)

// inputWidth is the visible width of the text input.
const inputWidth = 60

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = min(inputWidth, max(msg.Width-12, 10))
		return m, nil

	case MsgTasksLoaded:
		// A result for a filter that is no longer selected may come from a
		// mutation that committed after the new filter's load; query again.
		if msg.Filter != m.filter {
			return m, m.loadTasks()
		}
		m.tasks = msg.Tasks
		m.itemsLeft = msg.ItemsLeft
		m.active = msg.Active
		m.clampCursor()
		return m, nil

	case MsgError:
		m.err = msg.Err
		return m, nil
	}

	if m.mode.IsInputMode() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKeyMsg handles keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear error on any key press
	if m.err != nil {
		m.err = nil
	}

	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeAdd:
		return m.handleAddMode(msg)
	case ModeEdit:
		return m.handleEditMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	}

	return m, nil
}

// handleNormalMode handles keys in normal mode.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.cursor--
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.cursor++
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		task, ok := m.SelectedTask()
		if !ok {
			return m, nil
		}
		return m, m.toggleTask(task.ID)

	case key.Matches(msg, m.keys.New):
		m.mode = ModeAdd
		m.input.Reset()
		m.input.Placeholder = "What needs to be done?"
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Edit):
		task, ok := m.SelectedTask()
		if !ok {
			return m, nil
		}
		m.mode = ModeEdit
		m.editID = task.ID
		m.input.Placeholder = ""
		m.input.SetValue(task.Text)
		m.input.CursorEnd()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Delete):
		task, ok := m.SelectedTask()
		if !ok {
			return m, nil
		}
		return m, m.deleteTask(task.ID)

	case key.Matches(msg, m.keys.Clear):
		return m, m.clearCompleted()

	case key.Matches(msg, m.keys.NextFilter):
		return m, m.setFilter(m.filter.Next())

	case key.Matches(msg, m.keys.FilterAll):
		return m, m.setFilter(domain.FilterAll)

	case key.Matches(msg, m.keys.FilterActive):
		return m, m.setFilter(domain.FilterActive)

	case key.Matches(msg, m.keys.FilterCompleted):
		return m, m.setFilter(domain.FilterCompleted)

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil
	}

	return m, nil
}

// handleAddMode handles keys while typing a new task.
// The input stays open after submit so several tasks can be added in a row.
func (m *Model) handleAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		m.closeInput()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		text := m.input.Value()
		m.input.Reset()
		return m, m.createTask(text)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleEditMode handles keys while renaming a task.
// Submitting always leaves edit mode and re-renders, even when the rename is
// rejected or changes nothing.
func (m *Model) handleEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		m.closeInput()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		taskID, text := m.editID, m.input.Value()
		m.closeInput()
		return m, m.editTask(taskID, text)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleHelpMode handles keys in help mode.
func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Quit):
		m.mode = ModeNormal
	}
	return m, nil
}

// setFilter selects a filter and reloads the list for it.
func (m *Model) setFilter(f domain.Filter) tea.Cmd {
	m.filter = f
	m.cursor = 0
	return m.loadTasks()
}

// closeInput blurs and clears the input and returns to normal mode.
func (m *Model) closeInput() {
	m.input.Blur()
	m.input.Reset()
	m.editID = 0
	m.mode = ModeNormal
}

// clampCursor keeps the cursor inside the visible list.
func (m *Model) clampCursor() {
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
