package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Root is the plain-text liveness probe.
func Root(c *gin.Context) {
	c.String(http.StatusOK, "API is running")
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
