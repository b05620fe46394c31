package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// recorded is the last request the test server saw.
type recorded struct {
	mu     sync.Mutex
	method string
	path   string
	body   map[string]interface{}
}

type request struct {
	method string
	path   string
	body   map[string]interface{}
}

func (r *recorded) get() request {
	r.mu.Lock()
	defer r.mu.Unlock()
	return request{method: r.method, path: r.path, body: r.body}
}

func newTestServer(t *testing.T, setup func(r *gin.Engine, last *recorded)) (*Client, *recorded) {
	t.Helper()
	last := &recorded{}
	r := gin.New()
	r.Use(func(c *gin.Context) {
		var body map[string]interface{}
		if c.Request.ContentLength > 0 {
			_ = json.NewDecoder(c.Request.Body).Decode(&body)
		}
		last.mu.Lock()
		last.method = c.Request.Method
		last.path = c.Request.URL.Path
		last.body = body
		last.mu.Unlock()
		c.Next()
	})
	setup(r, last)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return New(srv.URL + "/"), last
}

func TestClient_Health(t *testing.T) {
	c, _ := newTestServer(t, func(r *gin.Engine, _ *recorded) {
		r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	})
	assert.NoError(t, c.Health(context.Background()))
}

func TestClient_Projects(t *testing.T) {
	projectID := uuid.New()
	c, last := newTestServer(t, func(r *gin.Engine, _ *recorded) {
		r.GET("/projects", func(c *gin.Context) {
			c.JSON(http.StatusOK, []models.Project{{ID: projectID, Name: "Groceries"}})
		})
		r.POST("/projects", func(c *gin.Context) {
			c.JSON(http.StatusCreated, models.Project{ID: projectID, Name: "Groceries"})
		})
		r.DELETE("/projects/:id", func(c *gin.Context) {
			c.JSON(http.StatusOK, models.MessageResponse{Message: "Project " + c.Param("id") + " deleted successfully"})
		})
	})
	ctx := context.Background()

	projects, err := c.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, projectID, projects[0].ID)

	created, err := c.CreateProject(ctx, "Groceries")
	require.NoError(t, err)
	assert.Equal(t, projectID, created.ID)
	assert.Equal(t, http.MethodPost, last.get().method)
	assert.Equal(t, "Groceries", last.get().body["name"])

	require.NoError(t, c.DeleteProject(ctx, projectID))
	assert.Equal(t, "/projects/"+projectID.String(), last.get().path)
}

func TestClient_Tasks(t *testing.T) {
	projectID := uuid.New()
	taskID := uuid.New()
	task := models.Task{ID: taskID, ProjectID: projectID, Name: "Buy milk", Status: models.StatusPending}

	c, last := newTestServer(t, func(r *gin.Engine, _ *recorded) {
		r.GET("/projects/:id/tasks", func(c *gin.Context) {
			c.JSON(http.StatusOK, models.NewTaskViews([]models.Task{task}))
		})
		r.POST("/projects/:id/tasks", func(c *gin.Context) {
			c.JSON(http.StatusCreated, task)
		})
		r.GET("/api/tasks", func(c *gin.Context) {
			c.JSON(http.StatusOK, []models.Task{task})
		})
		r.PUT("/tasks/:id", func(c *gin.Context) {
			done := task
			done.Status = models.StatusCompleted
			c.JSON(http.StatusOK, done)
		})
		r.DELETE("/tasks/:id", func(c *gin.Context) {
			c.JSON(http.StatusOK, models.MessageResponse{Message: "ok"})
		})
	})
	ctx := context.Background()

	views, err := c.ListProjectTasks(ctx, projectID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.False(t, views[0].Done)
	assert.Equal(t, "Buy milk", views[0].Name)

	created, err := c.CreateTask(ctx, projectID, models.CreateTaskRequest{Name: "Buy milk"})
	require.NoError(t, err)
	assert.Equal(t, taskID, created.ID)
	assert.Equal(t, "/projects/"+projectID.String()+"/tasks", last.get().path)
	assert.NotContains(t, last.get().body, "status", "empty status is omitted")

	all, err := c.ListAllTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	status := models.StatusCompleted
	updated, err := c.UpdateTask(ctx, taskID, models.UpdateTaskRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)
	assert.Equal(t, http.MethodPut, last.get().method)
	assert.Equal(t, map[string]interface{}{"status": "Completed"}, last.get().body)

	require.NoError(t, c.DeleteTask(ctx, taskID))
	assert.Equal(t, http.MethodDelete, last.get().method)
}

func TestClient_APIError(t *testing.T) {
	c, _ := newTestServer(t, func(r *gin.Engine, _ *recorded) {
		r.GET("/projects/:id/tasks", func(c *gin.Context) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Project not found"})
		})
		r.GET("/projects", func(c *gin.Context) {
			c.String(http.StatusBadGateway, "upstream down")
		})
	})
	ctx := context.Background()

	_, err := c.ListProjectTasks(ctx, uuid.New())
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Project not found", apiErr.Message)

	_, err = c.ListProjects(ctx)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "upstream down", apiErr.Message)
	assert.False(t, IsNotFound(err))
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(url)
	_, err := c.ListProjects(context.Background())
	require.Error(t, err)
	assert.False(t, IsNotFound(err))
}

func TestNew_TimeoutOptions(t *testing.T) {
	c := New("http://localhost:8080/", WithTimeout(time.Second))
	assert.Equal(t, "http://localhost:8080", c.BaseURL())
	assert.Equal(t, time.Second, c.httpClient.Timeout)

	shared := &http.Client{Timeout: 3 * time.Second}
	c = New("http://localhost:8080", WithHTTPClient(shared), WithTimeout(time.Second))
	assert.Same(t, shared, c.httpClient)
	assert.Equal(t, 3*time.Second, shared.Timeout)

	c = New("http://localhost:8080", WithTimeout(time.Second), WithHTTPClient(shared))
	assert.Equal(t, 3*time.Second, c.httpClient.Timeout)
}

func TestAPIError_Error(t *testing.T) {
	assert.Equal(t, "api error: status 500", (&APIError{StatusCode: 500}).Error())
	assert.Equal(t, "api error: status 404: Task not found",
		(&APIError{StatusCode: 404, Message: "Task not found"}).Error())
	assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", &APIError{StatusCode: 404})))
}
