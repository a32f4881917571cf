package task

import "time"

// CreateTaskRequest represents the request payload for creating a task.
// Completed and Priority are optional; absent fields take their defaults
// (false and 1 respectively).
type CreateTaskRequest struct {
	UserID      string `validate:"required"`
	Title       string `validate:"required,max=255"`
	Description *string
	Completed   *bool
	Priority    *int
}

// UpdateTaskRequest represents a partial update. Each field is tri-state:
// absent fields are left unchanged, explicit null is only legal for
// Description (which it clears).
type UpdateTaskRequest struct {
	UserID      string `validate:"required"`
	TaskID      string `validate:"required"`
	Title       Optional[string]
	Description Optional[string]
	Completed   Optional[bool]
	Priority    Optional[int]
}

// GetTaskRequest identifies a task within a user's collection.
type GetTaskRequest struct {
	UserID string
	TaskID string
}

// ListTasksRequest represents the request payload for listing a user's tasks.
type ListTasksRequest struct {
	UserID string
}

// TaskResponse represents the task payload returned by the usecase.
type TaskResponse struct {
	ID          string
	Title       string
	Description *string
	Completed   bool
	Priority    int
	UserID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
