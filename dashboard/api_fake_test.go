package dashboard

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"taskboard/models"
)

var errAPIDown = errors.New("connection refused")

// fakeAPI is an in-memory Store API that records which calls were made.
type fakeAPI struct {
	mu       sync.Mutex
	projects []models.Project
	tasks    []models.Task
	calls    []string

	updateErr error
	deleteErr error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{}
}

func (f *fakeAPI) addProject(name string) models.Project {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := models.Project{ID: uuid.New(), Name: name}
	f.projects = append(f.projects, p)
	return p
}

func (f *fakeAPI) addTask(projectID uuid.UUID, name string, status models.Status) models.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := models.Task{ID: uuid.New(), ProjectID: projectID, Name: name, Status: status}
	f.tasks = append(f.tasks, t)
	return t
}

func (f *fakeAPI) record(call string) {
	f.calls = append(f.calls, call)
}

func (f *fakeAPI) count(call string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fakeAPI) ListProjects(_ context.Context) ([]models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ListProjects")
	return append([]models.Project{}, f.projects...), nil
}

func (f *fakeAPI) CreateProject(_ context.Context, name string) (*models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("CreateProject")
	p := models.Project{ID: uuid.New(), Name: name}
	f.projects = append(f.projects, p)
	return &p, nil
}

func (f *fakeAPI) DeleteProject(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DeleteProject")
	for i, p := range f.projects {
		if p.ID == id {
			f.projects = append(f.projects[:i], f.projects[i+1:]...)
			return nil
		}
	}
	return errors.New("project not found")
}

func (f *fakeAPI) ListProjectTasks(_ context.Context, projectID uuid.UUID) ([]models.TaskView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ListProjectTasks")
	var out []models.Task
	for _, t := range f.tasks {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return models.NewTaskViews(out), nil
}

func (f *fakeAPI) CreateTask(_ context.Context, projectID uuid.UUID, req models.CreateTaskRequest) (*models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("CreateTask")
	req, err := req.Normalize()
	if err != nil {
		return nil, err
	}
	t := models.Task{ID: uuid.New(), ProjectID: projectID, Name: req.Name, Status: req.Status}
	f.tasks = append(f.tasks, t)
	return &t, nil
}

func (f *fakeAPI) UpdateTask(_ context.Context, id uuid.UUID, req models.UpdateTaskRequest) (*models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UpdateTask")
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	u, err := req.Update()
	if err != nil {
		return nil, err
	}
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks[i] = u.Apply(t)
			updated := f.tasks[i]
			return &updated, nil
		}
	}
	return nil, errors.New("task not found")
}

func (f *fakeAPI) DeleteTask(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DeleteTask")
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return errors.New("task not found")
}
