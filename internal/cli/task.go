package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
)

// emptyListMessage is printed when the filtered list is empty.
const emptyListMessage = "No tasks found"

// newAddCommand creates the add command for creating tasks.
func newAddCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Create a new task",
		Long: `Create a new task. All arguments are joined with spaces.
Leading and trailing whitespace is trimmed; empty text is rejected.

Examples:
  todo add Buy milk
  todo add "Call the plumber"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.AddTaskUseCase().Execute(cmd.Context(), usecase.AddTaskInput{
				Text: strings.Join(args, " "),
			})
			if err != nil {
				return err
			}
			if err := out.Outcome.Err(); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task #%d: %s\n", out.Task.ID, out.Task.Text)
			return nil
		},
	}
}

// newListCommand creates the list command for listing tasks.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Filter    string
		Active    bool
		Completed bool
		JSON      bool
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Long: `Display the task list in insertion order.

Output format is tab-separated with columns:
  ID, DONE, TEXT
followed by the number of active tasks.

Examples:
  # List every task
  todo list

  # Only tasks that are not done
  todo list --filter active
  todo list -a

  # Only done tasks, as JSON
  todo list -c --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.Active && opts.Completed {
				return errors.New("cannot use --active and --completed together")
			}
			filter := domain.ParseFilter(opts.Filter)
			if opts.Active {
				filter = domain.FilterActive
			}
			if opts.Completed {
				filter = domain.FilterCompleted
			}

			out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{Filter: filter})
			if err != nil {
				return err
			}

			if opts.JSON {
				return printTaskListJSON(cmd.OutOrStdout(), out.Tasks)
			}
			printTaskList(cmd.OutOrStdout(), out.Tasks)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.ItemsLeft)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Filter, "filter", "f", string(domain.FilterAll), "Filter: all, active, completed")
	cmd.Flags().BoolVarP(&opts.Active, "active", "a", false, "Show only active tasks")
	cmd.Flags().BoolVarP(&opts.Completed, "completed", "c", false, "Show only completed tasks")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output as JSON")

	return cmd
}

// printTaskList prints tasks in TSV format.
func printTaskList(w io.Writer, tasks domain.TaskList) {
	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(w, emptyListMessage)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "ID\tDONE\tTEXT")
	for _, task := range tasks {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\n", task.ID, checkbox(task.Completed), task.Text)
	}
}

// printTaskListJSON prints tasks in the stored JSON shape.
func printTaskListJSON(w io.Writer, tasks domain.TaskList) error {
	if tasks == nil {
		tasks = domain.TaskList{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tasks)
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

// newDoneCommand creates the done command for toggling completion.
func newDoneCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "done <id>",
		Aliases: []string{"toggle"},
		Short:   "Toggle a task between active and completed",
		Long: `Mark a task completed, or active again if it is already completed.

Examples:
  todo done 1700000000000
  todo toggle "#1700000000000"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			out, err := c.ToggleTaskUseCase().Execute(cmd.Context(), usecase.ToggleTaskInput{TaskID: id})
			if err != nil {
				return err
			}
			if err := out.Outcome.Err(); err != nil {
				return fmt.Errorf("#%d: %w", id, err)
			}

			verb := "Reopened"
			if out.Task.Completed {
				verb = "Completed"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s task #%d: %s\n", verb, id, out.Task.Text)
			return nil
		},
	}
}

// newEditCommand creates the edit command for renaming a task.
func newEditCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> <text...>",
		Short: "Change the text of a task",
		Long: `Replace the text of a task. Arguments after the id are joined with spaces.
Nothing is written when the new text is the same as the current one.

Examples:
  todo edit 1700000000000 Buy oat milk`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			out, err := c.EditTaskUseCase().Execute(cmd.Context(), usecase.EditTaskInput{
				TaskID: id,
				Text:   strings.Join(args[1:], " "),
			})
			if err != nil {
				return err
			}
			if err := out.Outcome.Err(); err != nil {
				return fmt.Errorf("#%d: %w", id, err)
			}

			w := cmd.OutOrStdout()
			if out.Outcome == domain.OutcomeUnchanged {
				_, _ = fmt.Fprintf(w, "Task #%d unchanged\n", id)
				return nil
			}
			_, _ = fmt.Fprintf(w, "Updated task #%d: %s\n", id, out.Task.Text)
			return nil
		},
	}
}

// newRmCommand creates the rm command for deleting a task.
func newRmCommand(c *app.Container) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Long: `Delete a task.

With --force, a missing task is not an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			out, err := c.DeleteTaskUseCase().Execute(cmd.Context(), usecase.DeleteTaskInput{TaskID: id})
			if err != nil {
				return err
			}
			if out.Outcome == domain.OutcomeRejectedNotFound {
				if force {
					return nil
				}
				return fmt.Errorf("#%d: %w", id, domain.ErrTaskNotFound)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task #%d: %s\n", id, out.Task.Text)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Ignore missing tasks")

	return cmd
}

// newClearCommand creates the clear command for removing completed tasks.
func newClearCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all completed tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ClearCompletedUseCase().Execute(cmd.Context(), usecase.ClearCompletedInput{})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d completed task(s)\n", out.Removed)
			return nil
		},
	}
}

// newCountCommand creates the count command.
func newCountCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Show the number of active tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{Filter: domain.FilterActive})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.ItemsLeft)
			return nil
		},
	}
}

// parseTaskID parses a task ID string (with or without # prefix).
func parseTaskID(s string) (int64, error) {
	// Remove leading # if present
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidTaskID, s)
	}
	if id <= 0 {
		return 0, fmt.Errorf("%w: must be positive", domain.ErrInvalidTaskID)
	}
	return id, nil
}
