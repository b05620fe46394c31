package handlers

import (
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"taskboard/models"
)

// ListProjectTasks returns the tasks of one project with the derived done
// flag. A missing project is a 404, never an empty list.
func ListProjectTasks(store Store, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, ok := pathID(c, msgInvalidProjectID)
		if !ok {
			return
		}

		ctx := c.Request.Context()
		if _, err := store.GetProject(ctx, projectID); err != nil {
			respondStoreError(c, logger, err, msgProjectNotFound, "Failed to fetch tasks")
			return
		}

		tasks, err := store.ListTasksByProject(ctx, projectID)
		if err != nil {
			respondInternalError(c, logger, err, "Failed to fetch tasks")
			return
		}

		c.JSON(http.StatusOK, models.NewTaskViews(tasks))
	}
}

func CreateTask(store Store, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, ok := pathID(c, msgInvalidProjectID)
		if !ok {
			return
		}

		raw, err := c.GetRawData()
		if err != nil {
			respondError(c, http.StatusBadRequest, "failed to read request body")
			return
		}

		var req models.CreateTaskRequest
		if err := decodeBody(raw, createTaskSchema, &req); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}

		req, err = req.Normalize()
		if err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}

		ctx := c.Request.Context()
		if _, err := store.GetProject(ctx, projectID); err != nil {
			respondStoreError(c, logger, err, msgProjectNotFound, "Failed to create task")
			return
		}

		task, err := store.CreateTask(ctx, projectID, req)
		if err != nil {
			respondStoreError(c, logger, err, msgProjectNotFound, "Failed to create task")
			return
		}

		logger.Info("Task created", "task_id", task.ID, "project_id", projectID)
		c.JSON(http.StatusCreated, task)
	}
}

// ListAllTasks returns every task without the done flag.
func ListAllTasks(store Store, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		tasks, err := store.ListTasks(ctx)
		if err != nil {
			respondInternalError(c, logger, err, "Failed to fetch tasks")
			return
		}

		c.JSON(http.StatusOK, tasks)
	}
}

// UpdateTask applies a partial update. The body is checked before the task
// is looked up, so an empty body is a 400 even for an unknown id.
func UpdateTask(store Store, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		taskID, ok := pathID(c, msgInvalidTaskID)
		if !ok {
			return
		}

		raw, err := c.GetRawData()
		if err != nil {
			respondError(c, http.StatusBadRequest, "failed to read request body")
			return
		}

		var req models.UpdateTaskRequest
		if err := decodeBody(raw, updateTaskSchema, &req); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}

		update, err := req.Update()
		if err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}

		ctx := c.Request.Context()
		if _, err := store.GetTask(ctx, taskID); err != nil {
			respondStoreError(c, logger, err, msgTaskNotFound, "Failed to update task")
			return
		}

		task, err := store.UpdateTask(ctx, taskID, update)
		if err != nil {
			respondStoreError(c, logger, err, msgTaskNotFound, "Failed to update task")
			return
		}

		logger.Info("Task updated", "task_id", taskID)
		c.JSON(http.StatusOK, task)
	}
}

func DeleteTask(store Store, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		taskID, ok := pathID(c, msgInvalidTaskID)
		if !ok {
			return
		}

		ctx := c.Request.Context()
		if err := store.DeleteTask(ctx, taskID); err != nil {
			respondStoreError(c, logger, err, msgTaskNotFound, "Failed to delete task")
			return
		}

		logger.Info("Task deleted", "task_id", taskID)
		c.JSON(http.StatusOK, models.MessageResponse{
			Message: fmt.Sprintf("Task %s deleted successfully", taskID),
		})
	}
}
