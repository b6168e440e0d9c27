package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// ClearCompletedInput contains the parameters for clearing completed tasks.
type ClearCompletedInput struct{}

// ClearCompletedOutput contains the result of clearing completed tasks.
type ClearCompletedOutput struct {
	Tasks   domain.TaskList // Remaining tasks
	Removed int             // Number of tasks removed
}

// ClearCompleted removes every completed task.
type ClearCompleted struct {
	tasks  domain.TaskStore
	logger domain.Logger
}

// NewClearCompleted creates a new ClearCompleted use case.
func NewClearCompleted(tasks domain.TaskStore, logger domain.Logger) *ClearCompleted {
	return &ClearCompleted{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute removes completed tasks.
func (uc *ClearCompleted) Execute(_ context.Context, _ ClearCompletedInput) (*ClearCompletedOutput, error) {
	res, err := uc.tasks.ClearCompleted()
	if err != nil {
		return nil, fmt.Errorf("clear completed: %w", err)
	}

	if res.Removed > 0 && uc.logger != nil {
		uc.logger.Info(0, "task", fmt.Sprintf("cleared %d completed", res.Removed))
	}

	return &ClearCompletedOutput{
		Tasks:   res.Tasks,
		Removed: res.Removed,
	}, nil
}
