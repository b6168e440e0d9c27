// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"time"

	"github.com/runoshun/todo/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// Advance moves the clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.NowTime = m.NowTime.Add(d)
}

// MockKeyValueStore is a test double for domain.KeyValueStore.
// Fields are ordered to minimize memory padding.
type MockKeyValueStore struct {
	Items     map[string]string
	GetErr    error
	SetErr    error
	RemoveErr error
	SetCalls  int
	Closed    bool
}

// NewMockKeyValueStore creates a new MockKeyValueStore with an initialized map.
func NewMockKeyValueStore() *MockKeyValueStore {
	return &MockKeyValueStore{
		Items: make(map[string]string),
	}
}

// GetItem returns the stored value.
func (m *MockKeyValueStore) GetItem(key string) (string, bool, error) {
	if m.GetErr != nil {
		return "", false, m.GetErr
	}
	v, ok := m.Items[key]
	return v, ok, nil
}

// SetItem stores a value and counts the call.
func (m *MockKeyValueStore) SetItem(key, value string) error {
	m.SetCalls++
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Items[key] = value
	return nil
}

// RemoveItem deletes a value.
func (m *MockKeyValueStore) RemoveItem(key string) error {
	if m.RemoveErr != nil {
		return m.RemoveErr
	}
	delete(m.Items, key)
	return nil
}

// Close marks the store closed.
func (m *MockKeyValueStore) Close() error {
	m.Closed = true
	return nil
}

// LogEntry is a single entry captured by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
	TaskID   int64
}

// MockLogger is a test double for domain.Logger that records entries.
type MockLogger struct {
	Entries []LogEntry
}

// Debug records a debug entry.
func (m *MockLogger) Debug(taskID int64, category, msg string) {
	m.record("DEBUG", taskID, category, msg)
}

// Info records an info entry.
func (m *MockLogger) Info(taskID int64, category, msg string) {
	m.record("INFO", taskID, category, msg)
}

// Warn records a warn entry.
func (m *MockLogger) Warn(taskID int64, category, msg string) {
	m.record("WARN", taskID, category, msg)
}

// Error records an error entry.
func (m *MockLogger) Error(taskID int64, category, msg string) {
	m.record("ERROR", taskID, category, msg)
}

func (m *MockLogger) record(level string, taskID int64, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: level, TaskID: taskID, Category: category, Msg: msg})
}

// Messages returns the recorded entries formatted as "LEVEL category: msg".
func (m *MockLogger) Messages() []string {
	out := make([]string, 0, len(m.Entries))
	for _, e := range m.Entries {
		out = append(out, fmt.Sprintf("%s %s: %s", e.Level, e.Category, e.Msg))
	}
	return out
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config *domain.Config
	Err    error
}

// Load returns the configured config.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// LoadGlobal returns the configured config.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	return m.Load()
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitErr          error
	GlobalInfo       domain.ConfigInfo
	LocalInfo        domain.ConfigInfo
	InitGlobalCalled bool
	InitLocalCalled  bool
}

// GetGlobalConfigInfo returns the configured info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalInfo
}

// GetLocalConfigInfo returns the configured info.
func (m *MockConfigManager) GetLocalConfigInfo() domain.ConfigInfo {
	return m.LocalInfo
}

// InitGlobalConfig records the call.
func (m *MockConfigManager) InitGlobalConfig(_ *domain.Config) error {
	m.InitGlobalCalled = true
	return m.InitErr
}

// InitLocalConfig records the call.
func (m *MockConfigManager) InitLocalConfig(_ *domain.Config) error {
	m.InitLocalCalled = true
	return m.InitErr
}

// Compile-time interface checks.
var (
	_ domain.Clock         = (*MockClock)(nil)
	_ domain.KeyValueStore = (*MockKeyValueStore)(nil)
	_ domain.Logger        = (*MockLogger)(nil)
	_ domain.ConfigLoader  = (*MockConfigLoader)(nil)
	_ domain.ConfigManager = (*MockConfigManager)(nil)
)
