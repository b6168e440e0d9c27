package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	err       error

	// State
	tasks     domain.TaskList // Query result for the current filter
	filter    domain.Filter
	itemsLeft string

	// Components
	keys   KeyMap
	styles Styles
	help   help.Model
	input  textinput.Model

	// Numeric state (smaller types last)
	editID int64
	mode   Mode
	width  int
	height int
	cursor int
	active int
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = 0
	ti.Prompt = ""

	return &Model{
		container: c,
		filter:    c.DefaultFilter(),
		itemsLeft: domain.ItemsLeft(0),
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		help:      help.New(),
		input:     ti,
		mode:      ModeNormal,
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return m.loadTasks()
}

// Filter returns the selected filter.
func (m *Model) Filter() domain.Filter {
	return m.filter
}

// Mode returns the current UI mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// Tasks returns the tasks currently on screen.
func (m *Model) Tasks() domain.TaskList {
	return m.tasks.Clone()
}

// SelectedTask returns the task under the cursor.
func (m *Model) SelectedTask() (domain.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return domain.Task{}, false
	}
	return m.tasks[m.cursor], true
}

// loadTasks returns a command that queries the current filter.
func (m *Model) loadTasks() tea.Cmd {
	filter := m.filter
	return func() tea.Msg {
		return m.list(context.Background(), filter)
	}
}

// list runs the query and packs it into a message.
func (m *Model) list(ctx context.Context, filter domain.Filter) tea.Msg {
	out, err := m.container.ListTasksUseCase().Execute(ctx, usecase.ListTasksInput{Filter: filter})
	if err != nil {
		return MsgError{Err: err}
	}
	return MsgTasksLoaded{
		Tasks:     out.Tasks,
		Filter:    out.Filter,
		ItemsLeft: out.ItemsLeft,
		Active:    out.ActiveCount,
	}
}

// createTask returns a command that creates a task.
// Empty text is a silent no-op; the list is re-rendered either way.
func (m *Model) createTask(text string) tea.Cmd {
	filter := m.filter
	return func() tea.Msg {
		ctx := context.Background()
		if _, err := m.container.AddTaskUseCase().Execute(ctx, usecase.AddTaskInput{Text: text}); err != nil {
			return MsgError{Err: err}
		}
		return m.list(ctx, filter)
	}
}

// toggleTask returns a command that flips a task's completed flag.
func (m *Model) toggleTask(taskID int64) tea.Cmd {
	filter := m.filter
	return func() tea.Msg {
		ctx := context.Background()
		if _, err := m.container.ToggleTaskUseCase().Execute(ctx, usecase.ToggleTaskInput{TaskID: taskID}); err != nil {
			return MsgError{Err: err}
		}
		return m.list(ctx, filter)
	}
}

// editTask returns a command that renames a task.
func (m *Model) editTask(taskID int64, text string) tea.Cmd {
	filter := m.filter
	return func() tea.Msg {
		ctx := context.Background()
		if _, err := m.container.EditTaskUseCase().Execute(ctx, usecase.EditTaskInput{TaskID: taskID, Text: text}); err != nil {
			return MsgError{Err: err}
		}
		return m.list(ctx, filter)
	}
}

// deleteTask returns a command that deletes a task.
func (m *Model) deleteTask(taskID int64) tea.Cmd {
	filter := m.filter
	return func() tea.Msg {
		ctx := context.Background()
		if _, err := m.container.DeleteTaskUseCase().Execute(ctx, usecase.DeleteTaskInput{TaskID: taskID}); err != nil {
			return MsgError{Err: err}
		}
		return m.list(ctx, filter)
	}
}

// clearCompleted returns a command that removes all completed tasks.
func (m *Model) clearCompleted() tea.Cmd {
	filter := m.filter
	return func() tea.Msg {
		ctx := context.Background()
		if _, err := m.container.ClearCompletedUseCase().Execute(ctx, usecase.ClearCompletedInput{}); err != nil {
			return MsgError{Err: err}
		}
		return m.list(ctx, filter)
	}
}
