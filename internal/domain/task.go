// Package domain contains core business entities and interfaces.
package domain

import (
	"fmt"
	"strings"
)

// Task is a single to-do entry.
// The JSON field names are the persisted blob format and must not change.
type Task struct {
	Text      string `json:"text" yaml:"text"`
	ID        int64  `json:"id" yaml:"id"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// IsActive returns true if the task is not completed.
func (t Task) IsActive() bool {
	return !t.Completed
}

// String returns a short human-readable form, e.g. "#1700000000000 [x] Buy milk".
func (t Task) String() string {
	mark := " "
	if t.Completed {
		mark = "x"
	}
	return fmt.Sprintf("#%d [%s] %s", t.ID, mark, t.Text)
}

// NormalizeText trims surrounding whitespace from user-entered task text.
// An empty result means the text is rejected.
func NormalizeText(text string) string {
	return strings.TrimSpace(text)
}
