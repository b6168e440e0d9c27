package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
)

func TestEditTask_Execute(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		id       int64 // 0 = the created task
		wantText string
		want     domain.Outcome
		wantSave bool
	}{
		{name: "renames", text: "A2", wantText: "A2", want: domain.OutcomeAccepted, wantSave: true},
		{name: "trims", text: "  A2 ", wantText: "A2", want: domain.OutcomeAccepted, wantSave: true},
		{name: "same text", text: "A", wantText: "A", want: domain.OutcomeUnchanged},
		{name: "same text after trim", text: " A ", wantText: "A", want: domain.OutcomeUnchanged},
		{name: "empty", text: "", wantText: "A", want: domain.OutcomeRejectedEmptyText},
		{name: "blank", text: "   ", wantText: "A", want: domain.OutcomeRejectedEmptyText},
		{name: "not found", text: "Z", id: 99, wantText: "A", want: domain.OutcomeRejectedNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			a := f.add(t, "A")
			writes := f.kv.SetCalls
			uc := usecase.NewEditTask(f.store, f.logger)

			id := tt.id
			if id == 0 {
				id = a.ID
			}
			out, err := uc.Execute(context.Background(), usecase.EditTaskInput{TaskID: id, Text: tt.text})

			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Outcome)
			task, ok := f.store.Query(domain.FilterAll).Find(a.ID)
			require.True(t, ok)
			assert.Equal(t, tt.wantText, task.Text)
			if tt.wantSave {
				assert.Equal(t, writes+1, f.kv.SetCalls)
			} else {
				assert.Equal(t, writes, f.kv.SetCalls)
			}
		})
	}
}

func TestEditTask_Execute_SecondIdenticalRenameDoesNotWrite(t *testing.T) {
	f := newFixture(t)
	a := f.add(t, "A")
	uc := usecase.NewEditTask(f.store, f.logger)

	_, err := uc.Execute(context.Background(), usecase.EditTaskInput{TaskID: a.ID, Text: "A2"})
	require.NoError(t, err)
	writes := f.kv.SetCalls

	out, err := uc.Execute(context.Background(), usecase.EditTaskInput{TaskID: a.ID, Text: "A2"})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeUnchanged, out.Outcome)
	assert.Equal(t, "A2", out.Task.Text)
	assert.Equal(t, writes, f.kv.SetCalls)
}
