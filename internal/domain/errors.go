package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrEmptyText        = errors.New("text cannot be empty")
	ErrInvalidTaskID    = errors.New("invalid task ID")
	ErrUnknownBackend   = errors.New("unknown store backend")
	ErrUnknownFormat    = errors.New("unknown format")
	ErrConfigExists     = errors.New("config file already exists")
	ErrNoConfigLocation = errors.New("config directory not available")
	ErrMissingKey       = errors.New("encryption enabled but TODO_ENCRYPTION_KEY is not set")
)
