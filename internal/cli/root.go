// Package cli provides the command-line interface for todo.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/todo/internal/app"
)

// Command group IDs.
const (
	groupTask  = "task"
	groupSetup = "setup"
)

// EphemeralFlag is the global flag selecting the in-memory backend.
// main scans for it before the container is built.
const EphemeralFlag = "ephemeral"

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for todo.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var ephemeral bool

	root := &cobra.Command{
		Use:   "todo",
		Short: "Local task list manager",
		Long: `todo keeps a single list of tasks on this machine.

Run without arguments to open the interactive view, or use the
subcommands below from scripts. Tasks are stored in the data directory
($TODO_HOME, $XDG_DATA_HOME/todo or ~/.local/share/todo) using the
backend selected in config.toml.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil || c.AppConfig == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	root.PersistentFlags().BoolVar(&ephemeral, EphemeralFlag, false, "Keep tasks in memory only (nothing is read or written)")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	taskCommands := []*cobra.Command{
		newAddCommand(c),
		newListCommand(c),
		newDoneCommand(c),
		newEditCommand(c),
		newRmCommand(c),
		newClearCommand(c),
		newCountCommand(c),
		newExportCommand(c),
		newImportCommand(c),
		newTUICommand(c),
	}
	for _, cmd := range taskCommands {
		cmd.GroupID = groupTask
	}

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(taskCommands...)
	root.AddCommand(configCmd)

	return root
}
