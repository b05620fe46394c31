package dashboard

import (
	"github.com/google/uuid"

	"taskboard/models"
)

// State is the in-memory mirror of server resources. All methods are pure
// state transitions; network calls live in the Bubble Tea model.
type State struct {
	Projects []models.Project
	Selected *models.Project
	Tasks    []models.TaskView
	Filter   Filter
	Input    string
	Alert    string
}

func (s *State) SetProjects(projects []models.Project) {
	s.Projects = append([]models.Project(nil), projects...)
}

// AddProject appends a created project without re-fetching the list.
func (s *State) AddProject(p models.Project) {
	projects := make([]models.Project, 0, len(s.Projects)+1)
	s.Projects = append(append(projects, s.Projects...), p)
}

// RemoveProject drops a project. If it was selected, the selection and the
// task list are cleared and true is returned.
func (s *State) RemoveProject(id uuid.UUID) bool {
	kept := make([]models.Project, 0, len(s.Projects))
	for _, p := range s.Projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.Projects = kept

	if s.Selected != nil && s.Selected.ID == id {
		s.Deselect()
		return true
	}
	return false
}

// Select makes p current and clears the task list until it is fetched.
func (s *State) Select(p models.Project) {
	s.Selected = &p
	s.Tasks = nil
}

func (s *State) Deselect() {
	s.Selected = nil
	s.Tasks = nil
}

// IsSelected reports whether id is the selected project.
func (s *State) IsSelected(id uuid.UUID) bool {
	return s.Selected != nil && s.Selected.ID == id
}

// SetTasks installs a fetched task list. Lists for a project that is no
// longer selected are discarded and false is returned.
func (s *State) SetTasks(projectID uuid.UUID, tasks []models.TaskView) bool {
	if !s.IsSelected(projectID) {
		return false
	}
	s.Tasks = append([]models.TaskView(nil), tasks...)
	return true
}

// FindTask returns the task with id and whether it is present.
func (s *State) FindTask(id uuid.UUID) (models.TaskView, bool) {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return models.TaskView{}, false
}

// ReplaceTask swaps in t by id. Tasks not in the list are ignored.
// The slice is copied so earlier snapshots of the state are unaffected.
func (s *State) ReplaceTask(t models.TaskView) bool {
	for i := range s.Tasks {
		if s.Tasks[i].ID == t.ID {
			tasks := append([]models.TaskView(nil), s.Tasks...)
			tasks[i] = t
			s.Tasks = tasks
			return true
		}
	}
	return false
}

func (s *State) RemoveTask(id uuid.UUID) {
	kept := make([]models.TaskView, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.Tasks = kept
}

// Visible is the task list after applying the active filter.
func (s *State) Visible() []models.TaskView {
	return FilterTasks(s.Tasks, s.Filter)
}
