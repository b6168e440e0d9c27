package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string    `toml:"-"`
	Store    StoreConfig `toml:"store"`
	Log      LogConfig   `toml:"log"`
	TUI      TUIConfig   `toml:"tui"`
}

// StoreConfig holds persistence settings from [store] section.
type StoreConfig struct {
	Backend   string `toml:"backend,omitempty"`   // "json" (default), "sqlite", "git" or "memory"
	Key       string `toml:"key,omitempty"`       // Key the task list is stored under
	Namespace string `toml:"namespace,omitempty"` // Ref namespace for the git backend
	GitRepo   string `toml:"git_repo,omitempty"`  // Repository path for the git backend (default: data dir)
	Encrypt   bool   `toml:"encrypt,omitempty"`   // Seal git blobs with the key from $TODO_ENCRYPTION_KEY

	// EncryptSet reports whether a single config file named encrypt, so that
	// an explicit false can override an earlier true. Merged configs leave it unset.
	EncryptSet bool `toml:"-"`
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
}

// TUIConfig holds TUI settings from [tui] section.
type TUIConfig struct {
	DefaultFilter string `toml:"default_filter,omitempty"` // Filter selected at startup
}

// Store backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendGit    = "git"
	BackendMemory = "memory"
)

// Default configuration values.
const (
	DefaultStoreKey       = "todos"
	DefaultStoreBackend   = BackendJSON
	DefaultStoreNamespace = "todo"
	DefaultLogLevel       = "info"
	DefaultFilter         = FilterAll
)

// File and directory names.
const (
	AppDirName       = "todo"                // Directory name under XDG config/data homes
	ConfigFileName   = "config.toml"         // Config file name
	JSONStoreName    = "todos.json"          // JSON backend file name
	SQLiteStoreName  = "todos.db"            // SQLite backend file name
	GitStoreName     = "todos.git"           // Bare repository created for the git backend
	LogsDirName      = "logs"                // Log directory under the data dir
	GlobalLogName    = "todo.log"            // Global log file name
	DataDirEnvVar    = "TODO_HOME"           // Overrides the data directory
	ConfigDirEnvVar  = "TODO_CONFIG"         // Overrides the global config directory
	EncryptionKeyEnv = "TODO_ENCRYPTION_KEY" // Hex key for [store] encrypt
	xdgDataHomeEnv   = "XDG_DATA_HOME"
	xdgConfigHomeEnv = "XDG_CONFIG_HOME"
)

// NewDefaultConfig returns a Config populated with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Backend:   DefaultStoreBackend,
			Key:       DefaultStoreKey,
			Namespace: DefaultStoreNamespace,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		TUI: TUIConfig{
			DefaultFilter: string(DefaultFilter),
		},
	}
}

// IsKnownBackend reports whether name is a supported store backend.
func IsKnownBackend(name string) bool {
	switch name {
	case BackendJSON, BackendSQLite, BackendGit, BackendMemory:
		return true
	}
	return false
}

// DefaultDataDir returns the data directory.
// Resolution order: $TODO_HOME, $XDG_DATA_HOME/todo, ~/.local/share/todo.
func DefaultDataDir() (string, error) {
	if dir := os.Getenv(DataDirEnvVar); dir != "" {
		return dir, nil
	}
	if dataHome := os.Getenv(xdgDataHomeEnv); dataHome != "" {
		return filepath.Join(dataHome, AppDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", AppDirName), nil
}

// DefaultGlobalConfigDir returns the global config directory, or "" if it cannot be resolved.
// Resolution order: $TODO_CONFIG, $XDG_CONFIG_HOME/todo, ~/.config/todo.
func DefaultGlobalConfigDir() string {
	if dir := os.Getenv(ConfigDirEnvVar); dir != "" {
		return dir
	}
	configHome := os.Getenv(xdgConfigHomeEnv)
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, AppDirName)
}

// GlobalLogPath returns the path to the log file under the data directory.
func GlobalLogPath(dataDir string) string {
	return filepath.Join(dataDir, LogsDirName, GlobalLogName)
}

// templateData holds all data for rendering the config template.
type templateData struct {
	Backend       string
	Key           string
	Namespace     string
	LogLevel      string
	DefaultFilter string
}

// RenderConfigTemplate renders the commented config template from cfg's values.
func RenderConfigTemplate(cfg *Config) string {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	data := templateData{
		Backend:       cfg.Store.Backend,
		Key:           cfg.Store.Key,
		Namespace:     cfg.Store.Namespace,
		LogLevel:      cfg.Log.Level,
		DefaultFilter: cfg.TUI.DefaultFilter,
	}

	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}
	return buf.String()
}
