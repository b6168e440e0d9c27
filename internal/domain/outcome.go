package domain

// Outcome describes what a Task Store operation did.
// Rejections are not errors: the list is simply left unchanged.
type Outcome int

// Outcome values.
const (
	OutcomeAccepted          Outcome = iota // List changed and was persisted
	OutcomeUnchanged                        // Request was valid but had no effect
	OutcomeRejectedEmptyText                // Text was empty after trimming
	OutcomeRejectedNotFound                 // No task matched the id
)

// String returns the string representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeRejectedEmptyText:
		return "rejected: empty text"
	case OutcomeRejectedNotFound:
		return "rejected: not found"
	}
	return "unknown"
}

// Mutated reports whether the list was changed.
func (o Outcome) Mutated() bool {
	return o == OutcomeAccepted
}

// Err maps a rejection to its sentinel error. Accepted and unchanged return nil.
func (o Outcome) Err() error {
	switch o {
	case OutcomeRejectedEmptyText:
		return ErrEmptyText
	case OutcomeRejectedNotFound:
		return ErrTaskNotFound
	case OutcomeAccepted, OutcomeUnchanged:
		return nil
	}
	return nil
}
