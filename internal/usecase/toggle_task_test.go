package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
)

func TestToggleTask_Execute(t *testing.T) {
	f := newFixture(t)
	a := f.add(t, "A")
	uc := usecase.NewToggleTask(f.store, f.logger)

	out, err := uc.Execute(context.Background(), usecase.ToggleTaskInput{TaskID: a.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAccepted, out.Outcome)
	assert.True(t, out.Task.Completed)
	assert.Equal(t, 0, f.store.ActiveCount())

	out, err = uc.Execute(context.Background(), usecase.ToggleTaskInput{TaskID: a.ID})
	require.NoError(t, err)
	assert.False(t, out.Task.Completed)
	assert.Equal(t, 1, f.store.ActiveCount())

	assert.Equal(t, []string{
		"INFO task: marked completed",
		"INFO task: marked active",
	}, f.logger.Messages())
}

func TestToggleTask_Execute_NotFound(t *testing.T) {
	f := newFixture(t)
	f.add(t, "A")
	writes := f.kv.SetCalls
	uc := usecase.NewToggleTask(f.store, f.logger)

	out, err := uc.Execute(context.Background(), usecase.ToggleTaskInput{TaskID: 42})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeRejectedNotFound, out.Outcome)
	assert.ErrorIs(t, out.Outcome.Err(), domain.ErrTaskNotFound)
	assert.Len(t, out.Tasks, 1)
	assert.Equal(t, writes, f.kv.SetCalls)
}
