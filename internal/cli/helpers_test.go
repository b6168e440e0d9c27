package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/infra/memstore"
	"github.com/runoshun/todo/internal/taskstore"
	"github.com/runoshun/todo/internal/testutil"
)

// epochMillis is the id of the first task created by a test container.
const epochMillis = int64(1704067200000) // 2024-01-01T00:00:00Z

// newTestContainer creates a container backed by the in-memory store.
func newTestContainer(t *testing.T) (*app.Container, *testutil.MockClock) {
	t.Helper()

	clock := &testutil.MockClock{NowTime: time.UnixMilli(epochMillis).UTC()}
	store, err := taskstore.Load(memstore.New(), taskstore.Options{Clock: clock})
	require.NoError(t, err)

	cfg := app.Config{
		DataDir:         t.TempDir(),
		GlobalConfigDir: t.TempDir(),
	}
	return app.NewWithDeps(cfg, store, clock, &testutil.MockLogger{}), clock
}

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, c *app.Container, args ...string) (string, string, error) {
	t.Helper()

	root := NewRootCommand(c, "test")
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
