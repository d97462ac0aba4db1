package types

import (
	"slices"
	"time"
)

// ChecklistRecord is a titled, timestamped collection of ordered tasks with a
// completion state. It is persisted as a JSON value under the key
// "checklist-<id>" and mutated entirely by callers; the store layer is
// agnostic to its shape.
//
// Tasks keeps insertion order and is never reordered. Done holds the tasks
// marked complete and must remain a subset of Tasks; RemoveTask prunes Done in
// the same update so the invariant only bends inside a single call.
type ChecklistRecord struct {
	// ID is a positive integer allocated from a persisted monotonic
	// sequence. Immutable after creation.
	ID int64 `json:"id"`

	// Title is the user-supplied checklist name. Required, non-empty.
	Title string `json:"title"`

	// Time is the creation timestamp in milliseconds since epoch. Immutable.
	Time int64 `json:"time"`

	// Tasks is the ordered sequence of task descriptions.
	Tasks []string `json:"tasks"`

	// Done lists the tasks marked complete. Order carries no meaning.
	Done []string `json:"done"`

	// Complete is set by an explicit user action, never derived from Done
	// matching Tasks.
	Complete bool `json:"complete"`

	// Rev is the revision counter compared on write for optimistic
	// concurrency. Incremented by the repository on every successful save.
	Rev int64 `json:"rev"`
}

// NewChecklistRecord returns an unsaved record with the given title and tasks
// and the creation time stamped to now. The ID is zero until the repository
// persists it.
func NewChecklistRecord(title string, tasks []string) *ChecklistRecord {
	return &ChecklistRecord{
		Title: title,
		Time:  time.Now().UnixMilli(),
		Tasks: append([]string{}, tasks...),
		Done:  []string{},
	}
}

// Validate checks that the record is well-formed: positive ID (zero allowed
// for unsaved records), non-empty title, and Done a subset of Tasks.
func (r *ChecklistRecord) Validate() error {
	if r.ID < 0 {
		return ErrInvalidID
	}
	if r.Title == "" {
		return ErrInvalidTitle
	}
	for _, task := range r.Done {
		if !slices.Contains(r.Tasks, task) {
			return ErrDoneNotSubset
		}
	}
	return nil
}

// Rename replaces the checklist title.
// Returns ErrInvalidTitle if the new title is empty.
func (r *ChecklistRecord) Rename(title string) error {
	if title == "" {
		return ErrInvalidTitle
	}
	r.Title = title
	return nil
}

// AddTask appends a task description to the end of the list.
// Returns ErrInvalidTask for an empty description and ErrDuplicateTask if the
// description is already present; task strings double as identity.
func (r *ChecklistRecord) AddTask(task string) error {
	if task == "" {
		return ErrInvalidTask
	}
	if slices.Contains(r.Tasks, task) {
		return ErrDuplicateTask
	}
	r.Tasks = append(r.Tasks, task)
	return nil
}

// RemoveTask deletes a task and, in the same update, prunes it from Done so
// the subset invariant holds. Returns ErrTaskNotFound if the task is absent.
func (r *ChecklistRecord) RemoveTask(task string) error {
	i := slices.Index(r.Tasks, task)
	if i < 0 {
		return ErrTaskNotFound
	}
	r.Tasks = slices.Delete(r.Tasks, i, i+1)
	if j := slices.Index(r.Done, task); j >= 0 {
		r.Done = slices.Delete(r.Done, j, j+1)
	}
	return nil
}

// ToggleTask flips a task's membership in Done: present means it is removed,
// absent means it is appended. No ordering is guaranteed within Done.
// Returns ErrTaskNotFound if the task is not in Tasks.
func (r *ChecklistRecord) ToggleTask(task string) error {
	if !slices.Contains(r.Tasks, task) {
		return ErrTaskNotFound
	}
	if i := slices.Index(r.Done, task); i >= 0 {
		r.Done = slices.Delete(r.Done, i, i+1)
		return nil
	}
	r.Done = append(r.Done, task)
	return nil
}

// SetComplete marks the whole checklist done: Done is replaced wholesale with
// a copy of Tasks and Complete is set true, so the change lands in a single
// write when the caller persists.
func (r *ChecklistRecord) SetComplete() {
	r.Done = slices.Clone(r.Tasks)
	r.Complete = true
}

// IsDone reports whether the given task is marked complete.
func (r *ChecklistRecord) IsDone(task string) bool {
	return slices.Contains(r.Done, task)
}

// Clone returns a deep copy of the record. The repository hands out clones so
// caller mutations never leak into another caller's view.
func (r *ChecklistRecord) Clone() *ChecklistRecord {
	c := *r
	c.Tasks = slices.Clone(r.Tasks)
	c.Done = slices.Clone(r.Done)
	return &c
}
