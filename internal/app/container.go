// Package app provides the dependency injection container for the application.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/infra/config"
	"github.com/runoshun/todo/internal/infra/crypto"
	"github.com/runoshun/todo/internal/infra/gitstore"
	"github.com/runoshun/todo/internal/infra/jsonstore"
	"github.com/runoshun/todo/internal/infra/logging"
	"github.com/runoshun/todo/internal/infra/memstore"
	"github.com/runoshun/todo/internal/infra/sqlitestore"
	"github.com/runoshun/todo/internal/taskstore"
	"github.com/runoshun/todo/internal/usecase"
)

// Config holds the application paths and startup switches.
type Config struct {
	DataDir         string // Directory holding the store, local config and logs (default: domain.DefaultDataDir)
	GlobalConfigDir string // Directory holding the global config (default: domain.DefaultGlobalConfigDir)
	Ephemeral       bool   // Use the in-memory backend regardless of config
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
// Fields are ordered to minimize memory padding.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks         domain.TaskStore
	Clock         domain.Clock
	Logger        domain.Logger
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager

	// Pointer fields
	AppConfig *domain.Config

	closers []io.Closer

	// Configuration
	Config Config
}

// New creates a Container: it loads configuration, opens the configured
// key-value backend and loads the task list from it.
func New(cfg Config) (*Container, error) {
	cfg, err := resolvePaths(cfg)
	if err != nil {
		return nil, err
	}

	configLoader := config.NewLoaderWithGlobalDir(cfg.DataDir, cfg.GlobalConfigDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.Ephemeral {
		appConfig.Store.Backend = domain.BackendMemory
	}

	logger := logging.New(cfg.DataDir, logging.ParseLevel(appConfig.Log.Level))

	kv, err := OpenKeyValueStore(appConfig.Store, cfg.DataDir, logger)
	if err != nil {
		_ = logger.Close()
		return nil, err
	}

	clock := domain.RealClock{}
	tasks, err := taskstore.Load(kv, taskstore.Options{
		Clock:  clock,
		Logger: logger,
		Key:    appConfig.Store.Key,
	})
	if err != nil {
		_ = kv.Close()
		_ = logger.Close()
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	logger.Debug(0, "app", fmt.Sprintf("opened %s store", appConfig.Store.Backend))

	return &Container{
		Tasks:         tasks,
		Clock:         clock,
		Logger:        logger,
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManagerWithGlobalDir(cfg.DataDir, cfg.GlobalConfigDir),
		AppConfig:     appConfig,
		closers:       []io.Closer{kv, logger},
		Config:        cfg,
	}, nil
}

// NewConfigOnly creates a Container that can only show and initialize
// configuration. It reads no config file and opens no store, so it works
// when New fails on a broken config or backend.
func NewConfigOnly(cfg Config) (*Container, error) {
	cfg, err := resolvePaths(cfg)
	if err != nil {
		return nil, err
	}
	return &Container{
		ConfigLoader:  config.NewLoaderWithGlobalDir(cfg.DataDir, cfg.GlobalConfigDir),
		ConfigManager: config.NewManagerWithGlobalDir(cfg.DataDir, cfg.GlobalConfigDir),
		Config:        cfg,
	}, nil
}

// resolvePaths fills in the default data and global config directories.
func resolvePaths(cfg Config) (Config, error) {
	if cfg.DataDir == "" {
		dir, err := domain.DefaultDataDir()
		if err != nil {
			return cfg, err
		}
		cfg.DataDir = dir
	}
	if cfg.GlobalConfigDir == "" {
		cfg.GlobalConfigDir = domain.DefaultGlobalConfigDir()
	}
	return cfg, nil
}

// OpenKeyValueStore opens the backend named by store.Backend.
// File-based backends live under dataDir; the git backend uses store.GitRepo
// when set and seals blobs when store.Encrypt is on. logger may be nil.
func OpenKeyValueStore(store domain.StoreConfig, dataDir string, logger domain.Logger) (domain.KeyValueStore, error) {
	switch store.Backend {
	case domain.BackendJSON, "":
		return jsonstore.NewWithLogger(filepath.Join(dataDir, domain.JSONStoreName), logger), nil
	case domain.BackendSQLite:
		return sqlitestore.New(filepath.Join(dataDir, domain.SQLiteStoreName))
	case domain.BackendGit:
		repoPath := store.GitRepo
		if repoPath == "" {
			repoPath = filepath.Join(dataDir, domain.GitStoreName)
		}
		if !store.Encrypt {
			return gitstore.Open(repoPath, store.Namespace)
		}
		hexKey := os.Getenv(domain.EncryptionKeyEnv)
		if hexKey == "" {
			return nil, domain.ErrMissingKey
		}
		encryptor, err := crypto.NewEncryptor(hexKey)
		if err != nil {
			return nil, err
		}
		return gitstore.OpenWithEncryptor(repoPath, store.Namespace, encryptor)
	case domain.BackendMemory:
		return memstore.New(), nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownBackend, store.Backend)
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, tasks domain.TaskStore, clock domain.Clock, logger domain.Logger) *Container {
	return &Container{
		Tasks:         tasks,
		Clock:         clock,
		Logger:        logger,
		ConfigLoader:  config.NewLoaderWithGlobalDir(cfg.DataDir, cfg.GlobalConfigDir),
		ConfigManager: config.NewManagerWithGlobalDir(cfg.DataDir, cfg.GlobalConfigDir),
		AppConfig:     domain.NewDefaultConfig(),
		Config:        cfg,
	}
}

// Close releases the store backend and the log file.
func (c *Container) Close() error {
	var errs []error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

// DefaultFilter returns the filter the TUI starts with.
func (c *Container) DefaultFilter() domain.Filter {
	if c.AppConfig == nil {
		return domain.DefaultFilter
	}
	return domain.ParseFilter(c.AppConfig.TUI.DefaultFilter)
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Tasks, c.Logger)
}

// ToggleTaskUseCase returns a new ToggleTask use case.
func (c *Container) ToggleTaskUseCase() *usecase.ToggleTask {
	return usecase.NewToggleTask(c.Tasks, c.Logger)
}

// EditTaskUseCase returns a new EditTask use case.
func (c *Container) EditTaskUseCase() *usecase.EditTask {
	return usecase.NewEditTask(c.Tasks, c.Logger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks, c.Logger)
}

// ClearCompletedUseCase returns a new ClearCompleted use case.
func (c *Container) ClearCompletedUseCase() *usecase.ClearCompleted {
	return usecase.NewClearCompleted(c.Tasks, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks)
}

// ExportTasksUseCase returns a new ExportTasks use case.
func (c *Container) ExportTasksUseCase() *usecase.ExportTasks {
	return usecase.NewExportTasks(c.Tasks)
}

// ImportTasksUseCase returns a new ImportTasks use case.
func (c *Container) ImportTasksUseCase() *usecase.ImportTasks {
	return usecase.NewImportTasks(c.Tasks, c.Logger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
