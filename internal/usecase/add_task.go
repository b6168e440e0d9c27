// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// AddTaskInput contains the parameters for creating a new task.
type AddTaskInput struct {
	Text string // Task text (trimmed; empty is rejected)
}

// AddTaskOutput contains the result of creating a new task.
// Fields are ordered to minimize memory padding.
type AddTaskOutput struct {
	Tasks   domain.TaskList // Full list after the operation
	Task    domain.Task     // The created task (zero if rejected)
	Outcome domain.Outcome  // Accepted or RejectedEmptyText
}

// AddTask is the use case for creating a new task.
type AddTask struct {
	tasks  domain.TaskStore
	logger domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(tasks domain.TaskStore, logger domain.Logger) *AddTask {
	return &AddTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute creates a new task with the given input.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	res, err := uc.tasks.Create(in.Text)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	if res.Outcome.Mutated() && uc.logger != nil {
		uc.logger.Info(res.Task.ID, "task", fmt.Sprintf("created: %q", res.Task.Text))
	}

	return &AddTaskOutput{
		Tasks:   res.Tasks,
		Task:    res.Task,
		Outcome: res.Outcome,
	}, nil
}
