package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// ToggleTaskInput contains the parameters for toggling a task.
type ToggleTaskInput struct {
	TaskID int64 // Task to toggle
}

// ToggleTaskOutput contains the result of toggling a task.
// Fields are ordered to minimize memory padding.
type ToggleTaskOutput struct {
	Tasks   domain.TaskList // Full list after the operation
	Task    domain.Task     // The task after toggling (zero if not found)
	Outcome domain.Outcome  // Accepted or RejectedNotFound
}

// ToggleTask flips the completed flag of a task.
type ToggleTask struct {
	tasks  domain.TaskStore
	logger domain.Logger
}

// NewToggleTask creates a new ToggleTask use case.
func NewToggleTask(tasks domain.TaskStore, logger domain.Logger) *ToggleTask {
	return &ToggleTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute toggles the task.
func (uc *ToggleTask) Execute(_ context.Context, in ToggleTaskInput) (*ToggleTaskOutput, error) {
	res, err := uc.tasks.ToggleCompleted(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("toggle task: %w", err)
	}

	if res.Outcome.Mutated() && uc.logger != nil {
		state := "active"
		if res.Task.Completed {
			state = "completed"
		}
		uc.logger.Info(in.TaskID, "task", "marked "+state)
	}

	return &ToggleTaskOutput{
		Tasks:   res.Tasks,
		Task:    res.Task,
		Outcome: res.Outcome,
	}, nil
}
