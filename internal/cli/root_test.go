package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todo/internal/app"
)

func mockTUI(t *testing.T) *bool {
	t.Helper()

	// Save original function and restore after test
	originalFunc := launchTUIFunc
	t.Cleanup(func() { launchTUIFunc = originalFunc })

	called := false
	launchTUIFunc = func(_ *app.Container) error {
		called = true
		return nil
	}
	return &called
}

func TestNewRootCommand_NoArgs_LaunchesTUI(t *testing.T) {
	called := mockTUI(t)

	_, _, err := run(t, nil)

	assert.NoError(t, err)
	assert.True(t, *called, "launchTUIFunc should be called when no arguments are provided")
}

func TestNewRootCommand_TUISubcommand_LaunchesTUI(t *testing.T) {
	called := mockTUI(t)

	_, _, err := run(t, nil, "tui")

	assert.NoError(t, err)
	assert.True(t, *called)
}

func TestNewRootCommand_WithHelp_ShowsHelp(t *testing.T) {
	called := mockTUI(t)

	out, _, err := run(t, nil, "--help")

	assert.NoError(t, err)
	assert.False(t, *called, "launchTUIFunc should NOT be called when --help is provided")
	assert.Contains(t, out, "Task Commands:")
	assert.Contains(t, out, "add")
	assert.Contains(t, out, "--ephemeral")
}

func TestNewRootCommand_Version(t *testing.T) {
	out, _, err := run(t, nil, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "test")
}

func TestNewRootCommand_EphemeralFlagAccepted(t *testing.T) {
	called := mockTUI(t)

	_, _, err := run(t, nil, "--ephemeral")

	assert.NoError(t, err)
	assert.True(t, *called)
}

func TestNewRootCommand_PrintsConfigWarnings(t *testing.T) {
	c, _ := newTestContainer(t)
	c.AppConfig.Warnings = []string{"unknown key in [store]: color"}

	_, stderr, err := run(t, c, "count")

	require.NoError(t, err)
	assert.Contains(t, stderr, "Warning: unknown key in [store]: color")
}

func TestNewRootCommand_RejectsUnknownArgs(t *testing.T) {
	mockTUI(t)

	_, _, err := run(t, nil, "frobnicate")
	assert.Error(t, err)
}
