package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Status is the stored state of a task.
// The column is free text; only StatusCompleted counts as done.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
)

// Done reports whether s is the completed state.
func (s Status) Done() bool {
	return s == StatusCompleted
}

// Toggle flips between Pending and Completed. Any unknown value toggles to Completed.
func (s Status) Toggle() Status {
	if s.Done() {
		return StatusPending
	}
	return StatusCompleted
}

// StatusFromDone maps the boolean view back onto a status value.
func StatusFromDone(done bool) Status {
	if done {
		return StatusCompleted
	}
	return StatusPending
}

// Task is a named unit of work belonging to exactly one project.
type Task struct {
	ID        uuid.UUID `json:"id" db:"id"`
	ProjectID uuid.UUID `json:"project_id" db:"project_id"`
	Name      string    `json:"name" db:"name"`
	Status    Status    `json:"status" db:"status"`
}

// TaskView is a task as returned by the per-project listing,
// carrying the derived done flag next to the stored fields.
type TaskView struct {
	Task
	Done bool `json:"done"`
}

// NewTaskView attaches the derived done flag to t.
func NewTaskView(t Task) TaskView {
	return TaskView{Task: t, Done: t.Status.Done()}
}

// NewTaskViews converts a slice of tasks into views. Returns an empty slice (not nil) for no tasks.
func NewTaskViews(tasks []Task) []TaskView {
	views := make([]TaskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, NewTaskView(t))
	}
	return views
}

// CreateTaskRequest is the payload for creating a task under a project.
type CreateTaskRequest struct {
	Name   string `json:"name"`
	Status Status `json:"status,omitempty"`
}

// ErrTaskNameRequired is returned when a task name is empty after trimming.
var ErrTaskNameRequired = errors.New("Task name is required")

// Normalize validates the request and fills the default status.
// The name itself is stored untrimmed.
func (r CreateTaskRequest) Normalize() (CreateTaskRequest, error) {
	if strings.TrimSpace(r.Name) == "" {
		return r, ErrTaskNameRequired
	}
	if r.Status == "" {
		r.Status = StatusPending
	}
	return r, nil
}

// UpdateTaskRequest is the body of a partial task update.
// Absent and empty-string fields are left untouched.
type UpdateTaskRequest struct {
	Name   *string `json:"name,omitempty"`
	Status *Status `json:"status,omitempty"`
	Done   *bool   `json:"done,omitempty"`
}

// ErrEmptyUpdate is returned when an update request carries no usable field.
var ErrEmptyUpdate = errors.New("At least one field (name, status, or done) must be provided.")

// TaskField names a column that a partial update may write.
type TaskField string

const (
	FieldName   TaskField = "name"
	FieldStatus TaskField = "status"
)

// taskFieldOrder fixes the order of SET clauses so statements are deterministic.
var taskFieldOrder = []TaskField{FieldName, FieldStatus}

// TaskUpdate maps allowed fields to their new values.
type TaskUpdate map[TaskField]string

// Assignment is one field/value pair of a TaskUpdate.
type Assignment struct {
	Field TaskField
	Value string
}

// Assignments returns the update's pairs in a stable column order.
func (u TaskUpdate) Assignments() []Assignment {
	out := make([]Assignment, 0, len(u))
	for _, f := range taskFieldOrder {
		if v, ok := u[f]; ok {
			out = append(out, Assignment{Field: f, Value: v})
		}
	}
	return out
}

// Update translates the request into a TaskUpdate.
//
// done is not stored: it is converted into a status value. When both status
// and done are supplied, the explicit status wins.
func (r UpdateTaskRequest) Update() (TaskUpdate, error) {
	u := TaskUpdate{}
	if r.Name != nil && *r.Name != "" {
		u[FieldName] = *r.Name
	}
	switch {
	case r.Status != nil && *r.Status != "":
		u[FieldStatus] = string(*r.Status)
	case r.Done != nil:
		u[FieldStatus] = string(StatusFromDone(*r.Done))
	}
	if len(u) == 0 {
		return nil, ErrEmptyUpdate
	}
	return u, nil
}

// Apply returns a copy of t with the update applied.
func (u TaskUpdate) Apply(t Task) Task {
	if v, ok := u[FieldName]; ok {
		t.Name = v
	}
	if v, ok := u[FieldStatus]; ok {
		t.Status = Status(v)
	}
	return t
}
