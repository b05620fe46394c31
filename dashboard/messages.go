package dashboard

import (
	"github.com/google/uuid"

	"taskboard/models"
)

// Messages delivered to the model when API calls complete.

// ProjectsLoadedMsg carries the full project list.
type ProjectsLoadedMsg struct {
	Projects []models.Project
	Err      error
}

type ProjectCreatedMsg struct {
	Project *models.Project
	Err     error
}

type ProjectDeletedMsg struct {
	ProjectID uuid.UUID
	Err       error
}

// TasksLoadedMsg carries the task list of ProjectID, which may no longer
// be the selected project by the time it arrives.
type TasksLoadedMsg struct {
	ProjectID uuid.UUID
	Tasks     []models.TaskView
	Err       error
}

type TaskCreatedMsg struct {
	ProjectID uuid.UUID
	Task      *models.Task
	Err       error
}

// TaskToggledMsg settles an optimistic status flip.
type TaskToggledMsg struct {
	Transition Transition
	Task       *models.Task
	Err        error
}

// TaskRenamedMsg reports a name change. The new name is applied locally
// only after the server accepted it.
type TaskRenamedMsg struct {
	TaskID uuid.UUID
	Name   string
	Err    error
}

type TaskDeletedMsg struct {
	TaskID    uuid.UUID
	ProjectID uuid.UUID
	Err       error
}
