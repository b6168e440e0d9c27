package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/runoshun/todo/internal/domain"
)

// ImportTasksInput contains the parameters for importing tasks.
type ImportTasksInput struct {
	Data   []byte // Serialized task list
	Format Format // Input format (default JSON)
}

// ImportTasksOutput contains the result of importing tasks.
// Fields are ordered to minimize memory padding.
type ImportTasksOutput struct {
	Tasks   domain.TaskList // Full list after the import
	Created int             // Tasks created
	Skipped int             // Entries with empty text
}

// importEntry is one element of an imported list. Ids are reassigned on import.
type importEntry struct {
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// ImportTasks appends tasks read from an exported list.
// Each entry goes through create, then toggle when it was completed.
type ImportTasks struct {
	tasks  domain.TaskStore
	logger domain.Logger
}

// NewImportTasks creates a new ImportTasks use case.
func NewImportTasks(tasks domain.TaskStore, logger domain.Logger) *ImportTasks {
	return &ImportTasks{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute imports the entries in order.
// A persistence error stops the import; entries created before it are kept.
func (uc *ImportTasks) Execute(_ context.Context, in ImportTasksInput) (*ImportTasksOutput, error) {
	var entries []importEntry
	switch in.Format {
	case FormatJSON, "":
		if err := json.Unmarshal(in.Data, &entries); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(in.Data, &entries); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownFormat, in.Format)
	}

	out := &ImportTasksOutput{}
	for _, entry := range entries {
		res, err := uc.tasks.Create(entry.Text)
		if err != nil {
			return nil, fmt.Errorf("create task: %w", err)
		}
		if !res.Outcome.Mutated() {
			out.Skipped++
			continue
		}
		out.Created++
		if entry.Completed {
			if _, err := uc.tasks.ToggleCompleted(res.Task.ID); err != nil {
				return nil, fmt.Errorf("toggle task: %w", err)
			}
		}
	}
	out.Tasks = uc.tasks.Query(domain.FilterAll)

	if uc.logger != nil {
		uc.logger.Info(0, "task", fmt.Sprintf("imported %d tasks (%d skipped)", out.Created, out.Skipped))
	}

	return out, nil
}
