// Package taskstore owns the authoritative task list and its persistence.
//
// The whole list is kept in memory and written back as a single JSON blob
// under one key of a domain.KeyValueStore after every mutation. A mutation
// computes the next list, persists it, and only then replaces the in-memory
// list, so a failed write leaves the store exactly as it was.
package taskstore

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/runoshun/todo/internal/domain"
)

// Ensure Store implements domain.TaskStore.
var _ domain.TaskStore = (*Store)(nil)

// Store is the Task Store.
// Fields are ordered to minimize memory padding.
type Store struct {
	kv     domain.KeyValueStore
	clock  domain.Clock
	logger domain.Logger
	key    string
	tasks  domain.TaskList
	mu     sync.Mutex
}

// Options configures Load. Zero values select defaults.
type Options struct {
	Clock  domain.Clock  // Defaults to domain.RealClock
	Logger domain.Logger // Optional
	Key    string        // Defaults to domain.DefaultStoreKey
}

// Load reads the task list from kv and returns a Store owning it.
// An absent or unparsable value yields an empty list; only a read error
// from kv itself is returned.
func Load(kv domain.KeyValueStore, opts Options) (*Store, error) {
	s := &Store{
		kv:     kv,
		clock:  opts.Clock,
		logger: opts.Logger,
		key:    opts.Key,
	}
	if s.clock == nil {
		s.clock = domain.RealClock{}
	}
	if s.key == "" {
		s.key = domain.DefaultStoreKey
	}

	raw, ok, err := kv.GetItem(s.key)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", s.key, err)
	}
	s.tasks = s.decode(raw, ok)
	return s, nil
}

// decode parses the stored blob, falling back to an empty list.
// Records are not validated beyond what JSON decoding enforces.
func (s *Store) decode(raw string, ok bool) domain.TaskList {
	if !ok || raw == "" {
		return domain.TaskList{}
	}
	var tasks domain.TaskList
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		s.warn(fmt.Sprintf("ignoring unparsable data under %q: %v", s.key, err))
		return domain.TaskList{}
	}
	if tasks == nil {
		return domain.TaskList{}
	}
	return tasks
}

// Key returns the key the list is persisted under.
func (s *Store) Key() string {
	return s.key
}

// Create appends a new task. Text that is empty after trimming is rejected.
func (s *Store) Create(text string) (domain.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	text = domain.NormalizeText(text)
	if text == "" {
		return s.unchanged(domain.OutcomeRejectedEmptyText), nil
	}

	task := domain.Task{
		ID:   s.nextID(),
		Text: text,
	}
	next := s.tasks.Append(task)
	if err := s.commit(next); err != nil {
		return s.unchanged(domain.OutcomeUnchanged), err
	}
	return domain.Result{Tasks: s.tasks.Clone(), Task: task, Outcome: domain.OutcomeAccepted}, nil
}

// ToggleCompleted flips the completed flag of every task with the given id.
func (s *Store) ToggleCompleted(id int64) (domain.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := s.tasks.Toggle(id)
	if !ok {
		return s.unchanged(domain.OutcomeRejectedNotFound), nil
	}
	if err := s.commit(next); err != nil {
		return s.unchanged(domain.OutcomeUnchanged), err
	}
	task, _ := s.tasks.Find(id)
	return domain.Result{Tasks: s.tasks.Clone(), Task: task, Outcome: domain.OutcomeAccepted}, nil
}

// Rename replaces a task's text when the trimmed text is non-empty and differs
// from the current one. Nothing is persisted otherwise.
func (s *Store) Rename(id int64, text string) (domain.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, outcome := s.tasks.Rename(id, text)
	if !outcome.Mutated() {
		res := s.unchanged(outcome)
		res.Task, _ = s.tasks.Find(id)
		return res, nil
	}
	if err := s.commit(next); err != nil {
		return s.unchanged(domain.OutcomeUnchanged), err
	}
	task, _ := s.tasks.Find(id)
	return domain.Result{Tasks: s.tasks.Clone(), Task: task, Outcome: domain.OutcomeAccepted}, nil
}

// Delete removes every task with the given id.
func (s *Store) Delete(id int64) (domain.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, _ := s.tasks.Find(id)
	next, ok := s.tasks.Remove(id)
	if !ok {
		return s.unchanged(domain.OutcomeRejectedNotFound), nil
	}
	removed := len(s.tasks) - len(next)
	if err := s.commit(next); err != nil {
		return s.unchanged(domain.OutcomeUnchanged), err
	}
	return domain.Result{Tasks: s.tasks.Clone(), Task: task, Outcome: domain.OutcomeAccepted, Removed: removed}, nil
}

// ClearCompleted removes all completed tasks. The list is persisted even when
// nothing was removed.
func (s *Store) ClearCompleted() (domain.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, removed := s.tasks.WithoutCompleted()
	if err := s.commit(next); err != nil {
		return s.unchanged(domain.OutcomeUnchanged), err
	}
	outcome := domain.OutcomeAccepted
	if removed == 0 {
		outcome = domain.OutcomeUnchanged
	}
	return domain.Result{Tasks: s.tasks.Clone(), Outcome: outcome, Removed: removed}, nil
}

// Query returns a copy of the tasks matching filter, in insertion order.
func (s *Store) Query(filter domain.Filter) domain.TaskList {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tasks.Filter(filter)
}

// ActiveCount returns the number of tasks that are not completed.
func (s *Store) ActiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tasks.ActiveCount()
}

// nextID returns the creation timestamp in milliseconds, bumped past the
// largest existing id so ids stay unique under a coarse clock.
func (s *Store) nextID() int64 {
	id := s.clock.Now().UnixMilli()
	if maxID := s.tasks.MaxID(); id <= maxID {
		id = maxID + 1
	}
	return id
}

// commit persists next and swaps it in. The in-memory list is untouched on error.
func (s *Store) commit(next domain.TaskList) error {
	if next == nil {
		next = domain.TaskList{}
	}
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	if err := s.kv.SetItem(s.key, string(data)); err != nil {
		return fmt.Errorf("write %q: %w", s.key, err)
	}
	s.tasks = next
	return nil
}

func (s *Store) unchanged(outcome domain.Outcome) domain.Result {
	return domain.Result{Tasks: s.tasks.Clone(), Outcome: outcome}
}

func (s *Store) warn(msg string) {
	if s.logger != nil {
		s.logger.Warn(0, "store", msg)
	}
}
