package handlers

import (
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"taskboard/models"
)

func CreateProject(store Store, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.GetRawData()
		if err != nil {
			respondError(c, http.StatusBadRequest, "failed to read request body")
			return
		}

		var req models.CreateProjectRequest
		if err := decodeBody(raw, createProjectSchema, &req); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}

		ctx := c.Request.Context()
		project, err := store.CreateProject(ctx, req.Name)
		if err != nil {
			respondInternalError(c, logger, err, "Failed to create project")
			return
		}

		logger.Info("Project created", "project_id", project.ID)
		c.JSON(http.StatusCreated, project)
	}
}

func ListProjects(store Store, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		projects, err := store.ListProjects(ctx)
		if err != nil {
			respondInternalError(c, logger, err, "Failed to fetch projects")
			return
		}

		c.JSON(http.StatusOK, projects)
	}
}

func GetProject(store Store, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, ok := pathID(c, msgInvalidProjectID)
		if !ok {
			return
		}

		ctx := c.Request.Context()
		project, err := store.GetProject(ctx, projectID)
		if err != nil {
			respondStoreError(c, logger, err, msgProjectNotFound, "Failed to fetch project")
			return
		}

		c.JSON(http.StatusOK, project)
	}
}

// DeleteProject removes a project. Its tasks go with it.
func DeleteProject(store Store, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, ok := pathID(c, msgInvalidProjectID)
		if !ok {
			return
		}

		ctx := c.Request.Context()
		if err := store.DeleteProject(ctx, projectID); err != nil {
			respondStoreError(c, logger, err, msgProjectNotFound, "Failed to delete project")
			return
		}

		logger.Info("Project deleted", "project_id", projectID)
		c.JSON(http.StatusOK, models.MessageResponse{
			Message: fmt.Sprintf("Project %s deleted successfully", projectID),
		})
	}
}
