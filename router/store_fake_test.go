package router

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"taskboard/database"
	"taskboard/models"
)

var errStoreDown = errors.New("connection refused")

// fakeStore is an in-memory handlers.Store with the same not-found and
// cascade behavior as the Postgres store.
type fakeStore struct {
	mu       sync.Mutex
	projects []models.Project
	tasks    []models.Task
	down     bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{}
}

func (s *fakeStore) CreateProject(_ context.Context, name string) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.down {
		return nil, errStoreDown
	}
	p := models.Project{ID: uuid.New(), Name: name}
	s.projects = append(s.projects, p)
	return &p, nil
}

func (s *fakeStore) ListProjects(_ context.Context) ([]models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.down {
		return nil, errStoreDown
	}
	return append([]models.Project{}, s.projects...), nil
}

func (s *fakeStore) GetProject(_ context.Context, id uuid.UUID) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.down {
		return nil, errStoreDown
	}
	for _, p := range s.projects {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, &database.NotFoundError{Resource: "project", ID: id.String()}
}

func (s *fakeStore) DeleteProject(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.down {
		return errStoreDown
	}
	for i, p := range s.projects {
		if p.ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			kept := s.tasks[:0]
			for _, t := range s.tasks {
				if t.ProjectID != id {
					kept = append(kept, t)
				}
			}
			s.tasks = kept
			return nil
		}
	}
	return &database.NotFoundError{Resource: "project", ID: id.String()}
}

func (s *fakeStore) CreateTask(_ context.Context, projectID uuid.UUID, req models.CreateTaskRequest) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.down {
		return nil, errStoreDown
	}
	t := models.Task{ID: uuid.New(), ProjectID: projectID, Name: req.Name, Status: req.Status}
	s.tasks = append(s.tasks, t)
	return &t, nil
}

func (s *fakeStore) ListTasksByProject(_ context.Context, projectID uuid.UUID) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.down {
		return nil, errStoreDown
	}
	out := []models.Task{}
	for _, t := range s.tasks {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *fakeStore) ListTasks(_ context.Context) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.down {
		return nil, errStoreDown
	}
	return append([]models.Task{}, s.tasks...), nil
}

func (s *fakeStore) GetTask(_ context.Context, id uuid.UUID) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.down {
		return nil, errStoreDown
	}
	for _, t := range s.tasks {
		if t.ID == id {
			t := t
			return &t, nil
		}
	}
	return nil, &database.NotFoundError{Resource: "task", ID: id.String()}
}

func (s *fakeStore) UpdateTask(_ context.Context, id uuid.UUID, u models.TaskUpdate) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.down {
		return nil, errStoreDown
	}
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks[i] = u.Apply(t)
			updated := s.tasks[i]
			return &updated, nil
		}
	}
	return nil, &database.NotFoundError{Resource: "task", ID: id.String()}
}

func (s *fakeStore) DeleteTask(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.down {
		return errStoreDown
	}
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return &database.NotFoundError{Resource: "task", ID: id.String()}
}

func (s *fakeStore) setDown(down bool) {
	s.mu.Lock()
	s.down = down
	s.mu.Unlock()
}

func (s *fakeStore) taskCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}
