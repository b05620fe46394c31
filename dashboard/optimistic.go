package dashboard

import (
	"fmt"

	"github.com/google/uuid"

	"taskboard/models"
)

// FailurePolicy decides what happens to a tentative change when the server
// rejects it or cannot be reached. Either way the failure is logged.
type FailurePolicy int

const (
	// KeepTentative leaves the optimistic state in place.
	KeepTentative FailurePolicy = iota
	// RollBack restores the task as it was before the change.
	RollBack
)

func (p FailurePolicy) String() string {
	switch p {
	case KeepTentative:
		return "keep"
	case RollBack:
		return "rollback"
	default:
		return "unknown"
	}
}

func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch s {
	case "", "keep":
		return KeepTentative, nil
	case "rollback":
		return RollBack, nil
	default:
		return KeepTentative, fmt.Errorf("unknown failure policy %q (want keep or rollback)", s)
	}
}

// Transition is a tentative change to one task awaiting the server.
type Transition struct {
	Before models.TaskView
	After  models.TaskView
}

// TaskID is the task the transition applies to.
func (tr Transition) TaskID() uuid.UUID {
	return tr.Before.ID
}

// BeginToggle flips the task's status locally and returns the transition to
// settle once the update call returns. It reports false when id is not in
// the current list.
func (s *State) BeginToggle(id uuid.UUID) (Transition, bool) {
	before, ok := s.FindTask(id)
	if !ok {
		return Transition{}, false
	}

	after := before
	after.Status = before.Status.Toggle()
	after.Done = after.Status.Done()
	s.ReplaceTask(after)

	return Transition{Before: before, After: after}, true
}

// Settle resolves a transition. On success the server's row replaces the
// tentative one. On failure RollBack restores the previous row, unless the
// task has changed again since.
func (s *State) Settle(tr Transition, server *models.Task, err error, policy FailurePolicy) {
	if err == nil && server != nil {
		s.ReplaceTask(models.NewTaskView(*server))
		return
	}

	if policy != RollBack {
		return
	}
	if current, ok := s.FindTask(tr.TaskID()); ok && current == tr.After {
		s.ReplaceTask(tr.Before)
	}
}
