package task

import "context"

// Usecase defines the interface for task business logic operations.
type Usecase interface {
	CreateTask(ctx context.Context, in CreateTaskRequest) (*TaskResponse, error)
	GetTask(ctx context.Context, in GetTaskRequest) (*TaskResponse, error)
	ListTasks(ctx context.Context, in ListTasksRequest) ([]TaskResponse, error)
	UpdateTask(ctx context.Context, in UpdateTaskRequest) (*TaskResponse, error)
	ToggleTaskCompletion(ctx context.Context, in GetTaskRequest) (*TaskResponse, error)
	DeleteTask(ctx context.Context, in GetTaskRequest) error
}
