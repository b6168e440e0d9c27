package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/infra/memstore"
	"github.com/runoshun/todo/internal/taskstore"
	"github.com/runoshun/todo/internal/testutil"
	"github.com/runoshun/todo/internal/usecase"
)

func newTestConfig(t *testing.T) Config {
	t.Helper()
	return Config{
		DataDir:         t.TempDir(),
		GlobalConfigDir: t.TempDir(),
	}
}

func writeLocalConfig(t *testing.T, cfg Config, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(cfg.DataDir, domain.ConfigFileName), []byte(content), 0o644)
	require.NoError(t, err)
}

func addAndReopen(t *testing.T, cfg Config) domain.TaskList {
	t.Helper()

	c, err := New(cfg)
	require.NoError(t, err)
	_, err = c.AddTaskUseCase().Execute(context.Background(), usecase.AddTaskInput{Text: "Buy milk"})
	require.NoError(t, err)
	require.NoError(t, c.Close())

	reopened, err := New(cfg)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()
	return reopened.Tasks.Query(domain.FilterAll)
}

func TestNew_DefaultJSONBackend(t *testing.T) {
	cfg := newTestConfig(t)

	tasks := addAndReopen(t, cfg)

	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Text)
	assert.FileExists(t, filepath.Join(cfg.DataDir, domain.JSONStoreName))
	assert.FileExists(t, domain.GlobalLogPath(cfg.DataDir))
}

func TestNew_CorruptJSONStoreStartsEmpty(t *testing.T) {
	cfg := newTestConfig(t)
	storePath := filepath.Join(cfg.DataDir, domain.JSONStoreName)
	require.NoError(t, os.WriteFile(storePath, []byte("{not json"), 0o600))

	c, err := New(cfg)
	require.NoError(t, err)
	assert.Empty(t, c.Tasks.Query(domain.FilterAll))
	_, err = c.AddTaskUseCase().Execute(context.Background(), usecase.AddTaskInput{Text: "Buy milk"})
	require.NoError(t, err)
	require.NoError(t, c.Close())

	logContent, err := os.ReadFile(domain.GlobalLogPath(cfg.DataDir))
	require.NoError(t, err)
	assert.Contains(t, string(logContent), "unparsable store file")

	tasks := addAndReopen(t, cfg)
	assert.Len(t, tasks, 2)
}

func TestNew_SQLiteBackend(t *testing.T) {
	cfg := newTestConfig(t)
	writeLocalConfig(t, cfg, "[store]\nbackend = \"sqlite\"\n")

	tasks := addAndReopen(t, cfg)

	require.Len(t, tasks, 1)
	assert.FileExists(t, filepath.Join(cfg.DataDir, domain.SQLiteStoreName))
}

func TestNew_GitBackend(t *testing.T) {
	cfg := newTestConfig(t)
	repo := filepath.Join(t.TempDir(), "tasks.git")
	writeLocalConfig(t, cfg, "[store]\nbackend = \"git\"\ngit_repo = \""+repo+"\"\nnamespace = \"mine\"\n")

	tasks := addAndReopen(t, cfg)

	require.Len(t, tasks, 1)
	assert.FileExists(t, filepath.Join(repo, "refs", "mine", "items", "todos"))
}

func TestNew_Ephemeral(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.Ephemeral = true

	tasks := addAndReopen(t, cfg)

	assert.Empty(t, tasks)
	assert.Equal(t, domain.BackendMemory, func() string {
		c, err := New(cfg)
		require.NoError(t, err)
		defer func() { _ = c.Close() }()
		return c.AppConfig.Store.Backend
	}())
	assert.NoFileExists(t, filepath.Join(cfg.DataDir, domain.JSONStoreName))
}

func TestNew_CustomKey(t *testing.T) {
	cfg := newTestConfig(t)
	writeLocalConfig(t, cfg, "[store]\nbackend = \"sqlite\"\nkey = \"work\"\n")

	c, err := New(cfg)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	store, ok := c.Tasks.(*taskstore.Store)
	require.True(t, ok)
	assert.Equal(t, "work", store.Key())
}

func TestNew_UnknownBackend(t *testing.T) {
	cfg := newTestConfig(t)
	writeLocalConfig(t, cfg, "[store]\nbackend = \"redis\"\n")

	_, err := New(cfg)
	assert.ErrorIs(t, err, domain.ErrUnknownBackend)
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := newTestConfig(t)
	writeLocalConfig(t, cfg, "[store")

	_, err := New(cfg)
	assert.Error(t, err)
}

func TestNew_UsesDataDirEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(domain.DataDirEnvVar, dir)

	c, err := New(Config{GlobalConfigDir: t.TempDir()})
	require.NoError(t, err)
	defer func() { _ = c.Close() }()
	assert.Equal(t, dir, c.Config.DataDir)
}

func TestContainer_DefaultFilter(t *testing.T) {
	cfg := newTestConfig(t)
	writeLocalConfig(t, cfg, "[tui]\ndefault_filter = \"active\"\n")

	c, err := New(cfg)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()
	assert.Equal(t, domain.FilterActive, c.DefaultFilter())
}

func TestNewWithDeps(t *testing.T) {
	cfg := newTestConfig(t)
	store, err := taskstore.Load(memstore.New(), taskstore.Options{})
	require.NoError(t, err)
	logger := &testutil.MockLogger{}

	c := NewWithDeps(cfg, store, domain.RealClock{}, logger)

	out, err := c.AddTaskUseCase().Execute(context.Background(), usecase.AddTaskInput{Text: "A"})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAccepted, out.Outcome)
	assert.Len(t, logger.Entries, 1)
	assert.Equal(t, domain.FilterAll, c.DefaultFilter())
	assert.NoError(t, c.Close())
}

func TestOpenKeyValueStore_Unknown(t *testing.T) {
	_, err := OpenKeyValueStore(domain.StoreConfig{Backend: "etcd"}, t.TempDir(), nil)
	assert.ErrorIs(t, err, domain.ErrUnknownBackend)
}

func TestNew_GitBackendDefaultRepo(t *testing.T) {
	cfg := newTestConfig(t)
	writeLocalConfig(t, cfg, "[store]\nbackend = \"git\"\n")

	tasks := addAndReopen(t, cfg)

	require.Len(t, tasks, 1)
	assert.FileExists(t, filepath.Join(cfg.DataDir, domain.GitStoreName, "refs", "todo", "items", "todos"))
}

func TestNew_GitBackendEncrypted(t *testing.T) {
	t.Setenv(domain.EncryptionKeyEnv, "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")
	cfg := newTestConfig(t)
	writeLocalConfig(t, cfg, "[store]\nbackend = \"git\"\nencrypt = true\n")

	tasks := addAndReopen(t, cfg)

	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Text)

	// Without the key the blob is opaque.
	plain, err := OpenKeyValueStore(domain.StoreConfig{Backend: domain.BackendGit}, cfg.DataDir, nil)
	require.NoError(t, err)
	raw, ok, err := plain.GetItem(domain.DefaultStoreKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotContains(t, raw, "Buy milk")
}

func TestNew_GitBackendEncryptedWithoutKey(t *testing.T) {
	t.Setenv(domain.EncryptionKeyEnv, "")
	cfg := newTestConfig(t)
	writeLocalConfig(t, cfg, "[store]\nbackend = \"git\"\nencrypt = true\n")

	_, err := New(cfg)

	assert.ErrorIs(t, err, domain.ErrMissingKey)
}
