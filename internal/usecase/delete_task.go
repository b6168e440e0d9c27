package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	TaskID int64 // Task to delete
}

// DeleteTaskOutput contains the result of deleting a task.
// Fields are ordered to minimize memory padding.
type DeleteTaskOutput struct {
	Tasks   domain.TaskList // Full list after the operation
	Task    domain.Task     // The deleted task (zero if not found)
	Outcome domain.Outcome  // Accepted or RejectedNotFound
}

// DeleteTask is the use case for deleting a task.
type DeleteTask struct {
	tasks  domain.TaskStore
	logger domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(tasks domain.TaskStore, logger domain.Logger) *DeleteTask {
	return &DeleteTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute deletes the task. A missing task is reported through Outcome.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	res, err := uc.tasks.Delete(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("delete task: %w", err)
	}

	if res.Outcome.Mutated() && uc.logger != nil {
		uc.logger.Info(in.TaskID, "task", fmt.Sprintf("deleted: %q", res.Task.Text))
	}

	return &DeleteTaskOutput{
		Tasks:   res.Tasks,
		Task:    res.Task,
		Outcome: res.Outcome,
	}, nil
}
