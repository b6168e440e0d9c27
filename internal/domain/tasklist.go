package domain

// TaskList is an ordered sequence of tasks in insertion order.
//
// All transitions return a new slice and leave the receiver untouched, so a
// caller can compute the next state, persist it, and only then swap it in.
type TaskList []Task

// Clone returns a copy of the list that shares no backing array with l.
func (l TaskList) Clone() TaskList {
	if l == nil {
		return TaskList{}
	}
	out := make(TaskList, len(l))
	copy(out, l)
	return out
}

// IndexOf returns the index of the task with the given id, or -1.
func (l TaskList) IndexOf(id int64) int {
	for i := range l {
		if l[i].ID == id {
			return i
		}
	}
	return -1
}

// Find returns the task with the given id.
func (l TaskList) Find(id int64) (Task, bool) {
	if i := l.IndexOf(id); i >= 0 {
		return l[i], true
	}
	return Task{}, false
}

// MaxID returns the largest id in the list, or 0 for an empty list.
func (l TaskList) MaxID() int64 {
	var highest int64
	for _, t := range l {
		if t.ID > highest {
			highest = t.ID
		}
	}
	return highest
}

// Append returns a new list with task added at the end.
func (l TaskList) Append(task Task) TaskList {
	out := make(TaskList, 0, len(l)+1)
	out = append(out, l...)
	return append(out, task)
}

// Toggle flips the completed flag of every task with the given id.
// Stored data is not validated, so ids may repeat; each match is flipped.
// The boolean is false when no task matches.
func (l TaskList) Toggle(id int64) (TaskList, bool) {
	if l.IndexOf(id) < 0 {
		return l, false
	}
	out := l.Clone()
	for i := range out {
		if out[i].ID == id {
			out[i].Completed = !out[i].Completed
		}
	}
	return out, true
}

// Rename replaces the text of every task with the given id.
// The text is normalized first; an empty text, or one every match already
// carries, leaves the list unchanged.
func (l TaskList) Rename(id int64, text string) (TaskList, Outcome) {
	text = NormalizeText(text)
	if l.IndexOf(id) < 0 {
		return l, OutcomeRejectedNotFound
	}
	if text == "" {
		return l, OutcomeRejectedEmptyText
	}
	changed := false
	out := l.Clone()
	for i := range out {
		if out[i].ID == id && out[i].Text != text {
			out[i].Text = text
			changed = true
		}
	}
	if !changed {
		return l, OutcomeUnchanged
	}
	return out, OutcomeAccepted
}

// Remove drops every task with the given id.
// The boolean is false when no task matches.
func (l TaskList) Remove(id int64) (TaskList, bool) {
	out := make(TaskList, 0, len(l))
	for _, t := range l {
		if t.ID != id {
			out = append(out, t)
		}
	}
	if len(out) == len(l) {
		return l, false
	}
	return out, true
}

// WithoutCompleted drops every completed task and reports how many were removed.
func (l TaskList) WithoutCompleted() (TaskList, int) {
	return l.Filter(FilterActive), l.CompletedCount()
}

// Filter returns the tasks matching f, preserving order.
func (l TaskList) Filter(f Filter) TaskList {
	out := make(TaskList, 0, len(l))
	for _, t := range l {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// ActiveCount returns the number of tasks that are not completed.
func (l TaskList) ActiveCount() int {
	n := 0
	for _, t := range l {
		if t.IsActive() {
			n++
		}
	}
	return n
}

// CompletedCount returns the number of completed tasks.
func (l TaskList) CompletedCount() int {
	return len(l) - l.ActiveCount()
}
