package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// EditTaskInput contains the parameters for renaming a task.
type EditTaskInput struct {
	Text   string // New text (trimmed)
	TaskID int64  // Task to rename
}

// EditTaskOutput contains the result of renaming a task.
// Fields are ordered to minimize memory padding.
type EditTaskOutput struct {
	Tasks   domain.TaskList // Full list after the operation
	Task    domain.Task     // The task after the operation (zero if not found)
	Outcome domain.Outcome  // Accepted, Unchanged, RejectedEmptyText or RejectedNotFound
}

// EditTask is the use case for renaming a task.
// Only a non-empty text that differs from the current one is written.
type EditTask struct {
	tasks  domain.TaskStore
	logger domain.Logger
}

// NewEditTask creates a new EditTask use case.
func NewEditTask(tasks domain.TaskStore, logger domain.Logger) *EditTask {
	return &EditTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute renames the task.
func (uc *EditTask) Execute(_ context.Context, in EditTaskInput) (*EditTaskOutput, error) {
	res, err := uc.tasks.Rename(in.TaskID, in.Text)
	if err != nil {
		return nil, fmt.Errorf("rename task: %w", err)
	}

	if res.Outcome.Mutated() && uc.logger != nil {
		uc.logger.Info(in.TaskID, "task", fmt.Sprintf("renamed: %q", res.Task.Text))
	}

	return &EditTaskOutput{
		Tasks:   res.Tasks,
		Task:    res.Task,
		Outcome: res.Outcome,
	}, nil
}
