package router

import (
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"taskboard/config"
	"taskboard/handlers"
	"taskboard/middleware"
)

// New builds the Store API engine. Every project route uses the ":id"
// parameter name because gin requires one name per path segment.
func New(store handlers.Store, cfg *config.Config, logger *log.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORS))

	r.GET("/", handlers.Root)
	r.GET("/health", handlers.HealthCheck)

	projects := r.Group("/projects")
	{
		projects.GET("", handlers.ListProjects(store, logger))
		projects.POST("", handlers.CreateProject(store, logger))
		projects.GET("/:id", handlers.GetProject(store, logger))
		projects.DELETE("/:id", handlers.DeleteProject(store, logger))
		projects.GET("/:id/tasks", handlers.ListProjectTasks(store, logger))
		projects.POST("/:id/tasks", handlers.CreateTask(store, logger))
	}

	tasks := r.Group("/tasks")
	{
		tasks.PUT("/:id", handlers.UpdateTask(store, logger))
		tasks.DELETE("/:id", handlers.DeleteTask(store, logger))
	}

	r.GET("/api/tasks", handlers.ListAllTasks(store, logger))

	return r
}
