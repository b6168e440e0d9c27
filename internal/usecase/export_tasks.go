package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/runoshun/todo/internal/domain"
)

// ExportTasksInput contains the parameters for exporting tasks.
type ExportTasksInput struct {
	Filter domain.Filter // Tasks to export
	Format Format        // Output format (default JSON)
}

// ExportTasksOutput contains the serialized task list.
type ExportTasksOutput struct {
	Data  []byte // Serialized tasks
	Count int    // Number of tasks exported
}

// ExportTasks serializes the task list.
// JSON output uses the same shape as the stored list.
type ExportTasks struct {
	tasks domain.TaskStore
}

// NewExportTasks creates a new ExportTasks use case.
func NewExportTasks(tasks domain.TaskStore) *ExportTasks {
	return &ExportTasks{tasks: tasks}
}

// Execute serializes the tasks matching the filter.
func (uc *ExportTasks) Execute(_ context.Context, in ExportTasksInput) (*ExportTasksOutput, error) {
	tasks := uc.tasks.Query(in.Filter)
	if tasks == nil {
		tasks = domain.TaskList{}
	}

	var (
		data []byte
		err  error
	)
	switch in.Format {
	case FormatJSON, "":
		data, err = json.MarshalIndent(tasks, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case FormatYAML:
		data, err = yaml.Marshal([]domain.Task(tasks))
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownFormat, in.Format)
	}
	if err != nil {
		return nil, fmt.Errorf("encode tasks: %w", err)
	}

	return &ExportTasksOutput{Data: data, Count: len(tasks)}, nil
}
