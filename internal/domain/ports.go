package domain

import "time"

// KeyValueStore is a process-local string key-value store.
// It plays the role of browser local storage: the task list is kept as one
// serialized value under a single key.
type KeyValueStore interface {
	// GetItem returns the value stored under key. ok is false if the key is absent.
	GetItem(key string) (value string, ok bool, err error)

	// SetItem stores value under key, replacing any previous value.
	SetItem(key, value string) error

	// RemoveItem deletes key. Removing an absent key is not an error.
	RemoveItem(key string) error

	// Close releases resources held by the store.
	Close() error
}

// TaskStore owns the authoritative task list and its persistence.
// Mutations return a Result with an explicit Outcome; the error is reserved
// for persistence failures.
type TaskStore interface {
	// Create appends a new task with the given text.
	Create(text string) (Result, error)

	// ToggleCompleted flips the completed flag of a task.
	ToggleCompleted(id int64) (Result, error)

	// Rename replaces the text of a task if the new text is non-empty and different.
	Rename(id int64, text string) (Result, error)

	// Delete removes a task.
	Delete(id int64) (Result, error)

	// ClearCompleted removes every completed task.
	ClearCompleted() (Result, error)

	// Query returns the tasks matching filter in insertion order.
	Query(filter Filter) TaskList

	// ActiveCount returns the number of tasks that are not completed.
	ActiveCount() int
}

// Result is returned by every mutating TaskStore operation.
// Fields are ordered to minimize memory padding.
type Result struct {
	Tasks   TaskList // Full list after the operation
	Task    Task     // Task that was created or modified (zero for bulk operations)
	Outcome Outcome  // What the operation did
	Removed int      // Number of tasks removed (Delete, ClearCompleted)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Logger writes operational log entries.
// taskID 0 means the entry is not about a specific task.
type Logger interface {
	Debug(taskID int64, category, msg string)
	Info(taskID int64, category, msg string)
	Warn(taskID int64, category, msg string)
	Error(taskID int64, category, msg string)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (default <- global <- local).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)
}

// ConfigManager inspects and creates configuration files.
type ConfigManager interface {
	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// GetLocalConfigInfo returns information about the data-directory config file.
	GetLocalConfigInfo() ConfigInfo

	// InitGlobalConfig writes the default template to the global config path.
	InitGlobalConfig(cfg *Config) error

	// InitLocalConfig writes the default template to the local config path.
	InitLocalConfig(cfg *Config) error
}

// ConfigInfo describes a configuration file on disk.
type ConfigInfo struct {
	Path    string // Absolute path
	Content string // File content (empty if missing)
	Exists  bool   // Whether the file exists
}
