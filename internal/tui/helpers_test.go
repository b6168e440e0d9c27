package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/infra/memstore"
	"github.com/runoshun/todo/internal/taskstore"
	"github.com/runoshun/todo/internal/testutil"
	"github.com/runoshun/todo/internal/usecase"
)

// newTestContainer creates a container backed by the in-memory store.
func newTestContainer(t *testing.T) *app.Container {
	t.Helper()

	clock := &testutil.MockClock{NowTime: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	store, err := taskstore.Load(memstore.New(), taskstore.Options{Clock: clock})
	require.NoError(t, err)

	cfg := app.Config{DataDir: t.TempDir(), GlobalConfigDir: t.TempDir()}
	return app.NewWithDeps(cfg, store, clock, &testutil.MockLogger{})
}

// newTestModel creates a sized model with texts already added and loaded.
func newTestModel(t *testing.T, texts ...string) *Model {
	t.Helper()

	c := newTestContainer(t)
	for _, text := range texts {
		_, err := c.AddTaskUseCase().Execute(context.Background(), usecase.AddTaskInput{Text: text})
		require.NoError(t, err)
	}

	m := New(c)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	apply(t, m, m.Init())
	return m
}

// keyMsg builds a key message for a key name or literal runes.
func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// press sends a key and returns the resulting command without running it.
func press(m *Model, k string) tea.Cmd {
	_, cmd := m.Update(keyMsg(k))
	return cmd
}

// pressAndApply sends a key and feeds the store command's result back.
func pressAndApply(t *testing.T, m *Model, k string) {
	t.Helper()
	apply(t, m, press(m, k))
}

// apply runs a store command synchronously and feeds its message to Update.
func apply(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd, "expected a command")
	msg := cmd()
	_, ok := msg.(Msg)
	require.True(t, ok, "expected a tui message, got %T", msg)
	m.Update(msg)
}

// texts returns the text of every task on screen.
func texts(m *Model) []string {
	out := make([]string, 0, len(m.tasks))
	for _, task := range m.Tasks() {
		out = append(out, task.Text)
	}
	return out
}
