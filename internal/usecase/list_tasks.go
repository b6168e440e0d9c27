package usecase

import (
	"context"

	"github.com/runoshun/todo/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	Filter domain.Filter // Unrecognized values behave as all
}

// ListTasksOutput contains the result of listing tasks.
// Fields are ordered to minimize memory padding.
type ListTasksOutput struct {
	Tasks       domain.TaskList // Tasks matching the filter, in insertion order
	Filter      domain.Filter   // Filter that was applied
	ItemsLeft   string          // "1 item left" / "N items left"
	ActiveCount int             // Active tasks across the whole list
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	tasks domain.TaskStore
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskStore) *ListTasks {
	return &ListTasks{tasks: tasks}
}

// Execute lists tasks matching the filter.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	filter := in.Filter
	if !filter.IsValid() {
		filter = domain.FilterAll
	}
	active := uc.tasks.ActiveCount()
	return &ListTasksOutput{
		Tasks:       uc.tasks.Query(filter),
		Filter:      filter,
		ActiveCount: active,
		ItemsLeft:   domain.ItemsLeft(active),
	}, nil
}
