package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/taskstore"
	"github.com/runoshun/todo/internal/testutil"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// fixture wires a real Task Store to in-memory test doubles.
type fixture struct {
	store  *taskstore.Store
	kv     *testutil.MockKeyValueStore
	clock  *testutil.MockClock
	logger *testutil.MockLogger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		kv:     testutil.NewMockKeyValueStore(),
		clock:  &testutil.MockClock{NowTime: epoch},
		logger: &testutil.MockLogger{},
	}
	s, err := taskstore.Load(f.kv, taskstore.Options{Clock: f.clock, Logger: f.logger})
	require.NoError(t, err)
	f.store = s
	return f
}

func (f *fixture) add(t *testing.T, text string) domain.Task {
	t.Helper()
	res, err := f.store.Create(text)
	require.NoError(t, err)
	require.Equal(t, domain.OutcomeAccepted, res.Outcome)
	f.clock.Advance(time.Millisecond)
	return res.Task
}

func (f *fixture) complete(t *testing.T, id int64) {
	t.Helper()
	res, err := f.store.ToggleCompleted(id)
	require.NoError(t, err)
	require.Equal(t, domain.OutcomeAccepted, res.Outcome)
}
