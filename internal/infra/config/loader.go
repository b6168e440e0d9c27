// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/todo/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	dataDir       string // Path to the data directory holding the local config
	globalConfDir string // Path to global config directory (e.g., ~/.config/todo)
}

// NewLoaderWithGlobalDir creates a new Loader.
// An empty globalConfDir disables the global config.
func NewLoaderWithGlobalDir(dataDir, globalConfDir string) *Loader {
	return &Loader{
		dataDir:       dataDir,
		globalConfDir: globalConfDir,
	}
}

// Load returns the merged configuration (local + global).
// Local config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	// Load global config first
	global, err := l.LoadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	local, err := l.LoadLocal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	// Merge: default <- global <- local (later takes precedence)
	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if local != nil {
		base = mergeConfigs(base, local)
	}

	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// LoadLocal returns only the data-directory configuration.
func (l *Loader) LoadLocal() (*domain.Config, error) {
	if l.dataDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.dataDir, domain.ConfigFileName))
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	// str and flag read a typed value, warning when the key holds another type.
	str := func(section, k string, v any) (string, bool) {
		s, ok := v.(string)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("invalid type for %s in [%s]: expected string", k, section))
		}
		return s, ok
	}
	flag := func(section, k string, v any) (bool, bool) {
		b, ok := v.(bool)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("invalid type for %s in [%s]: expected boolean", k, section))
		}
		return b, ok
	}

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "store":
			for k, v := range m {
				switch k {
				case "backend":
					if s, ok := str(section, k, v); ok {
						res.Store.Backend = s
						if !domain.IsKnownBackend(s) {
							warnings = append(warnings, fmt.Sprintf("unknown backend in [store]: %s", s))
						}
					}
				case "key":
					if s, ok := str(section, k, v); ok {
						res.Store.Key = s
					}
				case "namespace":
					if s, ok := str(section, k, v); ok {
						res.Store.Namespace = s
					}
				case "git_repo":
					if s, ok := str(section, k, v); ok {
						res.Store.GitRepo = s
					}
				case "encrypt":
					if b, ok := flag(section, k, v); ok {
						res.Store.Encrypt = b
						res.Store.EncryptSet = true
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [store]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := str(section, k, v); ok {
						res.Log.Level = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		case "tui":
			for k, v := range m {
				switch k {
				case "default_filter":
					if s, ok := str(section, k, v); ok {
						res.TUI.DefaultFilter = s
						if !domain.Filter(strings.ToLower(strings.TrimSpace(s))).IsValid() {
							warnings = append(warnings, fmt.Sprintf("unknown filter in [tui]: %s", s))
						}
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [tui]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		Store:    base.Store,
		Log:      base.Log,
		TUI:      base.TUI,
		Warnings: append([]string{}, base.Warnings...),
	}

	// Add override warnings
	result.Warnings = append(result.Warnings, override.Warnings...)

	if override.Store.Backend != "" {
		result.Store.Backend = override.Store.Backend
	}
	if override.Store.Key != "" {
		result.Store.Key = override.Store.Key
	}
	if override.Store.Namespace != "" {
		result.Store.Namespace = override.Store.Namespace
	}
	if override.Store.GitRepo != "" {
		result.Store.GitRepo = override.Store.GitRepo
	}
	if override.Store.EncryptSet {
		result.Store.Encrypt = override.Store.Encrypt
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if override.TUI.DefaultFilter != "" {
		result.TUI.DefaultFilter = override.TUI.DefaultFilter
	}

	return result
}
