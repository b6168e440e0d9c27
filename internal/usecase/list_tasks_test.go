package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
)

func TestListTasks_Execute(t *testing.T) {
	f := newFixture(t)
	a := f.add(t, "A")
	b := f.add(t, "B")
	f.complete(t, a.ID)
	uc := usecase.NewListTasks(f.store)

	tests := []struct {
		filter     domain.Filter
		wantFilter domain.Filter
		want       []int64
	}{
		{domain.FilterAll, domain.FilterAll, []int64{a.ID, b.ID}},
		{domain.FilterActive, domain.FilterActive, []int64{b.ID}},
		{domain.FilterCompleted, domain.FilterCompleted, []int64{a.ID}},
		{"", domain.FilterAll, []int64{a.ID, b.ID}},
		{"someday", domain.FilterAll, []int64{a.ID, b.ID}},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			out, err := uc.Execute(context.Background(), usecase.ListTasksInput{Filter: tt.filter})
			require.NoError(t, err)
			assert.Equal(t, tt.wantFilter, out.Filter)
			assert.Equal(t, tt.want, ids(out.Tasks))
			assert.Equal(t, 1, out.ActiveCount)
			assert.Equal(t, "1 item left", out.ItemsLeft)
		})
	}
}

func TestListTasks_Execute_Empty(t *testing.T) {
	f := newFixture(t)
	uc := usecase.NewListTasks(f.store)

	out, err := uc.Execute(context.Background(), usecase.ListTasksInput{})
	require.NoError(t, err)
	assert.Empty(t, out.Tasks)
	assert.Equal(t, "0 items left", out.ItemsLeft)
}
