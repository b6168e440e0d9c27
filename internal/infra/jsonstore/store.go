// Package jsonstore provides a JSON file-based implementation of KeyValueStore.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/runoshun/todo/internal/domain"
)

// Ensure Store implements domain.KeyValueStore.
var _ domain.KeyValueStore = (*Store)(nil)

// storeData represents the JSON file structure.
type storeData struct {
	Items map[string]string `json:"items"`
}

// Store implements domain.KeyValueStore using a single JSON file.
// Every call takes an flock on a sibling .lock file, so several processes
// can share the same file.
type Store struct {
	logger   domain.Logger
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first write.
func New(path string) *Store {
	return NewWithLogger(path, nil)
}

// NewWithLogger creates a Store that reports an unreadable file to logger.
func NewWithLogger(path string, logger domain.Logger) *Store {
	return &Store{
		logger:   logger,
		path:     path,
		lockPath: path + ".lock",
	}
}

// Path returns the file path backing the store.
func (s *Store) Path() string {
	return s.path
}

// GetItem returns the value stored under key.
func (s *Store) GetItem(key string) (string, bool, error) {
	var (
		value string
		ok    bool
	)
	err := s.withLock(func(data *storeData) error {
		value, ok = data.Items[key]
		return nil
	})
	return value, ok, err
}

// SetItem stores value under key.
func (s *Store) SetItem(key, value string) error {
	return s.withLockWrite(func(data *storeData) error {
		data.Items[key] = value
		return nil
	})
}

// RemoveItem deletes key.
func (s *Store) RemoveItem(key string) error {
	return s.withLockWrite(func(data *storeData) error {
		delete(data.Items, key)
		return nil
	})
}

// Close is a no-op; the file is opened per call.
func (s *Store) Close() error {
	return nil
}

// withLock executes fn with a shared (read) lock.
func (s *Store) withLock(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	return fn(data)
}

// withLockWrite executes fn with an exclusive (write) lock and writes the result.
func (s *Store) withLockWrite(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	if err := fn(data); err != nil {
		return err
	}

	return s.write(data)
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

// read loads the file. A missing or unparsable file is an empty store, not an
// error; the next write replaces it.
func (s *Store) read() (*storeData, error) {
	data := &storeData{Items: make(map[string]string)}

	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return data, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}
	if len(content) == 0 {
		return data, nil
	}

	if err := json.Unmarshal(content, data); err != nil {
		if s.logger != nil {
			s.logger.Warn(0, "store", fmt.Sprintf("unparsable store file %s, starting empty: %v", s.path, err))
		}
		return &storeData{Items: make(map[string]string)}, nil
	}

	// Ensure map is initialized
	if data.Items == nil {
		data.Items = make(map[string]string)
	}

	return data, nil
}

func (s *Store) write(data *storeData) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store data: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
