package task

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	domain "taskflow/internal/domain/task"
	apperrors "taskflow/pkg/errors"

	"github.com/go-playground/validator/v10"
)

const defaultPriority = 1

// Repository defines the interface for task data access operations.
// Lookups are always scoped to the owning user; a task belonging to a
// different user is indistinguishable from a missing one.
type Repository interface {
	Create(ctx context.Context, t *domain.Task) (*domain.Task, error)
	GetByID(ctx context.Context, userID, taskID string) (*domain.Task, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Task, error)
	Update(ctx context.Context, t *domain.Task) (*domain.Task, error)
	Delete(ctx context.Context, userID, taskID string) error
}

// UserChecker verifies that a user exists. Satisfied by the user repository.
type UserChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// Service implements the business logic for task management operations.
type Service struct {
	repo     Repository          // Repository for task data access
	users    UserChecker         // Referential integrity check against users
	log      *zap.Logger         // Logger for structured logging
	validate *validator.Validate // Validator for request validation
}

// New creates a new instance of Service.
func New(r Repository, users UserChecker, log *zap.Logger) *Service {
	return &Service{repo: r, users: users, log: log, validate: validator.New()}
}

// formatValidationError converts validator.ValidationErrors into a ValidationError
// with a human-readable message.
func formatValidationError(err error) error {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range validationErrors {
			switch e.Tag() {
			case "required":
				messages = append(messages, fmt.Sprintf("%s is required", e.Field()))
			case "max":
				messages = append(messages, fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param()))
			default:
				messages = append(messages, fmt.Sprintf("%s is invalid", e.Field()))
			}
		}
		return apperrors.NewValidationError("", strings.Join(messages, ", "))
	}
	return err
}

// requireUser fails with NotFound unless the user exists. Task creation,
// listing, and every task lookup path go through the user check so orphaned
// tasks cannot be created and missing users surface uniformly.
func (s *Service) requireUser(ctx context.Context, userID string) error {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		s.log.Error("failed to check user existence", zap.String("user_id", userID), zap.Error(err))
		return apperrors.NewInternalError("failed to verify user", err)
	}
	if !exists {
		s.log.Warn("user not found", zap.String("user_id", userID))
		return apperrors.NewNotFoundError("user", "user not found")
	}
	return nil
}

// CreateTask creates a task for an existing user. Absent completed and
// priority fields take their defaults (false, 1).
func (s *Service) CreateTask(ctx context.Context, in CreateTaskRequest) (*TaskResponse, error) {
	s.log.Info("creating task", zap.String("user_id", in.UserID), zap.String("title", in.Title))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	if err := s.requireUser(ctx, in.UserID); err != nil {
		return nil, err
	}

	t := &domain.Task{
		Title:       in.Title,
		Description: in.Description,
		Completed:   false,
		Priority:    defaultPriority,
		UserID:      in.UserID,
	}
	if in.Completed != nil {
		t.Completed = *in.Completed
	}
	if in.Priority != nil {
		t.Priority = *in.Priority
	}

	created, err := s.repo.Create(ctx, t)
	if err != nil {
		s.log.Error("failed to create task", zap.String("user_id", in.UserID), zap.Error(err))
		return nil, err
	}

	return toResponse(created), nil
}

// GetTask retrieves a task scoped to its owning user.
func (s *Service) GetTask(ctx context.Context, in GetTaskRequest) (*TaskResponse, error) {
	if in.UserID == "" || in.TaskID == "" {
		return nil, apperrors.NewValidationError("", "user id and task id are required")
	}

	t, err := s.repo.GetByID(ctx, in.UserID, in.TaskID)
	if err != nil {
		s.log.Warn("failed to get task", zap.String("user_id", in.UserID), zap.String("task_id", in.TaskID), zap.Error(err))
		return nil, err
	}

	return toResponse(t), nil
}

// ListTasks returns all tasks owned by the user, newest-created first.
// A user with no tasks gets an empty slice.
func (s *Service) ListTasks(ctx context.Context, in ListTasksRequest) ([]TaskResponse, error) {
	if in.UserID == "" {
		return nil, apperrors.NewValidationError("user_id", "user id is required")
	}

	if err := s.requireUser(ctx, in.UserID); err != nil {
		return nil, err
	}

	tasks, err := s.repo.ListByUser(ctx, in.UserID)
	if err != nil {
		s.log.Error("failed to list tasks", zap.String("user_id", in.UserID), zap.Error(err))
		return nil, err
	}

	out := make([]TaskResponse, len(tasks))
	for i := range tasks {
		out[i] = *toResponse(&tasks[i])
	}
	return out, nil
}

// UpdateTask merges the fields present in the request over the stored task.
// Absent fields are left unchanged. Explicit null clears the description and
// is rejected for every other field. updated_at is refreshed on success.
func (s *Service) UpdateTask(ctx context.Context, in UpdateTaskRequest) (*TaskResponse, error) {
	s.log.Info("updating task", zap.String("user_id", in.UserID), zap.String("task_id", in.TaskID))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	if in.Title.Set {
		if in.Title.Null {
			return nil, apperrors.NewValidationError("title", "title must not be null")
		}
		if strings.TrimSpace(in.Title.Value) == "" {
			return nil, apperrors.NewValidationError("title", "title must not be empty")
		}
	}
	if in.Completed.Set && in.Completed.Null {
		return nil, apperrors.NewValidationError("completed", "completed must not be null")
	}
	if in.Priority.Set && in.Priority.Null {
		return nil, apperrors.NewValidationError("priority", "priority must not be null")
	}

	existing, err := s.repo.GetByID(ctx, in.UserID, in.TaskID)
	if err != nil {
		s.log.Warn("task to update not found", zap.String("user_id", in.UserID), zap.String("task_id", in.TaskID), zap.Error(err))
		return nil, err
	}

	if in.Title.Set {
		existing.Title = in.Title.Value
	}
	if in.Description.Set {
		if in.Description.Null {
			existing.Description = nil
		} else {
			v := in.Description.Value
			existing.Description = &v
		}
	}
	if in.Completed.Set {
		existing.Completed = in.Completed.Value
	}
	if in.Priority.Set {
		existing.Priority = in.Priority.Value
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		s.log.Error("failed to update task", zap.String("task_id", in.TaskID), zap.Error(err))
		return nil, err
	}

	return toResponse(updated), nil
}

// ToggleTaskCompletion flips the completed flag and refreshes updated_at.
func (s *Service) ToggleTaskCompletion(ctx context.Context, in GetTaskRequest) (*TaskResponse, error) {
	s.log.Info("toggling task completion", zap.String("user_id", in.UserID), zap.String("task_id", in.TaskID))

	existing, err := s.repo.GetByID(ctx, in.UserID, in.TaskID)
	if err != nil {
		s.log.Warn("task to toggle not found", zap.String("user_id", in.UserID), zap.String("task_id", in.TaskID), zap.Error(err))
		return nil, err
	}

	existing.Completed = !existing.Completed

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		s.log.Error("failed to toggle task", zap.String("task_id", in.TaskID), zap.Error(err))
		return nil, err
	}

	return toResponse(updated), nil
}

// DeleteTask removes the task if it exists under the given user.
func (s *Service) DeleteTask(ctx context.Context, in GetTaskRequest) error {
	s.log.Info("deleting task", zap.String("user_id", in.UserID), zap.String("task_id", in.TaskID))

	if err := s.repo.Delete(ctx, in.UserID, in.TaskID); err != nil {
		s.log.Warn("failed to delete task", zap.String("user_id", in.UserID), zap.String("task_id", in.TaskID), zap.Error(err))
		return err
	}
	return nil
}

func toResponse(t *domain.Task) *TaskResponse {
	return &TaskResponse{
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
