package handlers

import (
	"context"

	"github.com/google/uuid"

	"taskboard/models"
)

// Store is the persistence surface the handlers need. *database.DB
// satisfies it; tests substitute an in-memory fake.
type Store interface {
	CreateProject(ctx context.Context, name string) (*models.Project, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, projectID uuid.UUID) (*models.Project, error)
	DeleteProject(ctx context.Context, projectID uuid.UUID) error

	CreateTask(ctx context.Context, projectID uuid.UUID, req models.CreateTaskRequest) (*models.Task, error)
	ListTasksByProject(ctx context.Context, projectID uuid.UUID) ([]models.Task, error)
	ListTasks(ctx context.Context) ([]models.Task, error)
	GetTask(ctx context.Context, taskID uuid.UUID) (*models.Task, error)
	UpdateTask(ctx context.Context, taskID uuid.UUID, u models.TaskUpdate) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID uuid.UUID) error
}
