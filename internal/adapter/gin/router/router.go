package router

import (
	"net/http"

	"taskflow/internal/adapter/gin/handler"
	"taskflow/internal/adapter/gin/middleware"
	"taskflow/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Config carries the values the router reports on the health endpoints.
type Config struct {
	ServiceVersion string
}

// SetupRouter configures and returns a Gin router with all routes and middleware
func SetupRouter(
	userHandler *handler.UserHandler,
	taskHandler *handler.TaskHandler,
	chatHandler *handler.ChatHandler,
	cfg Config,
	log *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware
	router.Use(middleware.Recovery(log))
	router.Use(logger.RequestID())
	router.Use(middleware.Logger(log))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "TaskFlow API is running!",
			"status":  "healthy",
			"version": cfg.ServiceVersion,
		})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": cfg.ServiceVersion,
		})
	})

	users := router.Group("/users")
	{
		users.POST("", userHandler.CreateUser)
		users.GET("/:userId", userHandler.GetUser)
	}

	api := router.Group("/api")
	{
		api.POST("/chat", chatHandler.Chat)

		tasks := api.Group("/:userId/tasks")
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:taskId", taskHandler.GetTask)
			tasks.PUT("/:taskId", taskHandler.UpdateTask)
			tasks.PATCH("/:taskId/complete", taskHandler.ToggleTask)
			tasks.DELETE("/:taskId", taskHandler.DeleteTask)
		}
	}

	return router
}
