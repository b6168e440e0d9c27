package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
)

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Format string
		Filter string
		Output string
	}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the task list as JSON or YAML",
		Long: `Write the task list to stdout or a file.

JSON output has the same shape as the stored list. When --output names a
.yaml/.yml file and --format is not given, YAML is written.

Examples:
  todo export > backup.json
  todo export --format yaml --filter active -o active.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveFormat(cmd, opts.Format, opts.Output)
			if err != nil {
				return err
			}

			out, err := c.ExportTasksUseCase().Execute(cmd.Context(), usecase.ExportTasksInput{
				Filter: domain.ParseFilter(opts.Filter),
				Format: format,
			})
			if err != nil {
				return err
			}

			if opts.Output == "" {
				_, err = cmd.OutOrStdout().Write(out.Data)
				return err
			}
			if err := os.WriteFile(opts.Output, out.Data, 0o600); err != nil {
				return fmt.Errorf("write %s: %w", opts.Output, err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d task(s) to %s\n", out.Count, opts.Output)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "", "Output format: json, yaml (default: from --output extension, else json)")
	cmd.Flags().StringVarP(&opts.Filter, "filter", "f", string(domain.FilterAll), "Filter: all, active, completed")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Write to file instead of stdout")

	return cmd
}

// newImportCommand creates the import command.
func newImportCommand(c *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Append tasks from a JSON or YAML file",
		Long: `Append tasks from a file written by 'todo export'.

Each entry becomes a new task with a fresh id; entries marked completed
are completed after creation. Entries with empty text are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := resolveFormat(cmd, format, path)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			out, err := c.ImportTasksUseCase().Execute(cmd.Context(), usecase.ImportTasksInput{
				Data:   data,
				Format: f,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Imported %d task(s)", out.Created)
			if out.Skipped > 0 {
				_, _ = fmt.Fprintf(w, ", skipped %d empty", out.Skipped)
			}
			_, _ = fmt.Fprintln(w)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Input format: json, yaml (default: from file extension, else json)")

	return cmd
}

// resolveFormat honors an explicit --format and otherwise guesses from path.
func resolveFormat(cmd *cobra.Command, format, path string) (usecase.Format, error) {
	if cmd.Flags().Changed("format") {
		return usecase.ParseFormat(format)
	}
	return usecase.FormatFromPath(path, usecase.FormatJSON), nil
}
