package dashboard

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"taskboard/models"
)

// API is the subset of the Store API the dashboard drives.
// *client.Client satisfies it.
type API interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	CreateProject(ctx context.Context, name string) (*models.Project, error)
	DeleteProject(ctx context.Context, projectID uuid.UUID) error
	ListProjectTasks(ctx context.Context, projectID uuid.UUID) ([]models.TaskView, error)
	CreateTask(ctx context.Context, projectID uuid.UUID, req models.CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, taskID uuid.UUID, req models.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID uuid.UUID) error
}

const defaultRequestTimeout = 10 * time.Second

func (m Model) requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), m.timeout)
}

func (m Model) loadProjects() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		projects, err := m.api.ListProjects(ctx)
		return ProjectsLoadedMsg{Projects: projects, Err: err}
	}
}

func (m Model) createProject(name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		project, err := m.api.CreateProject(ctx, name)
		return ProjectCreatedMsg{Project: project, Err: err}
	}
}

func (m Model) deleteProject(id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		return ProjectDeletedMsg{ProjectID: id, Err: m.api.DeleteProject(ctx, id)}
	}
}

func (m Model) loadTasks(projectID uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		tasks, err := m.api.ListProjectTasks(ctx, projectID)
		return TasksLoadedMsg{ProjectID: projectID, Tasks: tasks, Err: err}
	}
}

func (m Model) createTask(projectID uuid.UUID, name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		task, err := m.api.CreateTask(ctx, projectID, models.CreateTaskRequest{Name: name})
		return TaskCreatedMsg{ProjectID: projectID, Task: task, Err: err}
	}
}

func (m Model) toggleTask(tr Transition) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		status := tr.After.Status
		task, err := m.api.UpdateTask(ctx, tr.TaskID(), models.UpdateTaskRequest{Status: &status})
		return TaskToggledMsg{Transition: tr, Task: task, Err: err}
	}
}

func (m Model) renameTask(id uuid.UUID, name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		_, err := m.api.UpdateTask(ctx, id, models.UpdateTaskRequest{Name: &name})
		return TaskRenamedMsg{TaskID: id, Name: name, Err: err}
	}
}

func (m Model) deleteTask(id, projectID uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		return TaskDeletedMsg{TaskID: id, ProjectID: projectID, Err: m.api.DeleteTask(ctx, id)}
	}
}
