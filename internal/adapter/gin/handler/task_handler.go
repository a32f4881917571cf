package handler

import (
	"net/http"
	"time"

	"taskflow/internal/usecase/task"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TaskHandler handles HTTP requests for task operations
type TaskHandler struct {
	uc  task.Usecase
	log *zap.Logger
}

// NewTaskHandler creates a new TaskHandler instance
func NewTaskHandler(uc task.Usecase, log *zap.Logger) *TaskHandler {
	return &TaskHandler{
		uc:  uc,
		log: log,
	}
}

// CreateTaskRequest represents the HTTP request body for creating a task
type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
	Priority    *int    `json:"priority"`
}

// UpdateTaskRequest represents the HTTP request body for a partial task
// update. Fields absent from the payload are left unchanged; an explicit
// null clears the description and is rejected everywhere else.
type UpdateTaskRequest struct {
	Title       task.Optional[string] `json:"title"`
	Description task.Optional[string] `json:"description"`
	Completed   task.Optional[bool]   `json:"completed"`
	Priority    task.Optional[int]    `json:"priority"`
}

// TaskResponse represents the HTTP response for task data
type TaskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	Priority    int       `json:"priority"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toTaskResponse(t *task.TaskResponse) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Priority:    t.Priority,
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// CreateTask handles POST /api/:userId/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid create task request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.uc.CreateTask(c.Request.Context(), task.CreateTaskRequest{
		UserID:      c.Param("userId"),
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		Priority:    req.Priority,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toTaskResponse(resp))
}

// ListTasks handles GET /api/:userId/tasks
func (h *TaskHandler) ListTasks(c *gin.Context) {
	resp, err := h.uc.ListTasks(c.Request.Context(), task.ListTasksRequest{
		UserID: c.Param("userId"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	tasks := make([]TaskResponse, len(resp))
	for i := range resp {
		tasks[i] = toTaskResponse(&resp[i])
	}
	c.JSON(http.StatusOK, tasks)
}

// GetTask handles GET /api/:userId/tasks/:taskId
func (h *TaskHandler) GetTask(c *gin.Context) {
	resp, err := h.uc.GetTask(c.Request.Context(), task.GetTaskRequest{
		UserID: c.Param("userId"),
		TaskID: c.Param("taskId"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTaskResponse(resp))
}

// UpdateTask handles PUT /api/:userId/tasks/:taskId
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid update task request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.uc.UpdateTask(c.Request.Context(), task.UpdateTaskRequest{
		UserID:      c.Param("userId"),
		TaskID:      c.Param("taskId"),
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		Priority:    req.Priority,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTaskResponse(resp))
}

// ToggleTask handles PATCH /api/:userId/tasks/:taskId/complete
func (h *TaskHandler) ToggleTask(c *gin.Context) {
	resp, err := h.uc.ToggleTaskCompletion(c.Request.Context(), task.GetTaskRequest{
		UserID: c.Param("userId"),
		TaskID: c.Param("taskId"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTaskResponse(resp))
}

// DeleteTask handles DELETE /api/:userId/tasks/:taskId
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	err := h.uc.DeleteTask(c.Request.Context(), task.GetTaskRequest{
		UserID: c.Param("userId"),
		TaskID: c.Param("taskId"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
	})
}
