package tui

import "github.com/runoshun/todo/internal/domain"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTasksLoaded carries the query result for the current filter.
// Every mutation ends with one of these so the view always re-renders.
type MsgTasksLoaded struct {
	Tasks     domain.TaskList
	Filter    domain.Filter
	ItemsLeft string
	Active    int
}

func (MsgTasksLoaded) sealed() {}

// MsgError is sent when a store call fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}
