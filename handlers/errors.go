package handlers

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskboard/database"
	"taskboard/models"
)

const (
	msgInvalidProjectID = "invalid project ID"
	msgInvalidTaskID    = "invalid task ID"
	msgProjectNotFound  = "Project not found"
	msgTaskNotFound     = "Task not found"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, models.ErrorResponse{Error: message})
}

// respondStoreError answers 404 for not-found errors and 500 otherwise.
// The cause of a 500 is logged and never sent to the client.
func respondStoreError(c *gin.Context, logger *log.Logger, err error, notFound, failed string) {
	if database.IsNotFound(err) {
		respondError(c, http.StatusNotFound, notFound)
		return
	}
	respondInternalError(c, logger, err, failed)
}

// respondInternalError answers 500 with a fixed message for store calls
// that have no not-found outcome.
func respondInternalError(c *gin.Context, logger *log.Logger, err error, failed string) {
	logger.Error(failed, "method", c.Request.Method, "path", c.Request.URL.Path, "err", err)
	respondError(c, http.StatusInternalServerError, failed)
}

// pathID parses the ":id" path parameter, answering 400 when it is not a UUID.
func pathID(c *gin.Context, invalid string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, invalid)
		return uuid.Nil, false
	}
	return id, true
}
