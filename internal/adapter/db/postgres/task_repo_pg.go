package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskflow/internal/domain/task"
	apperrors "taskflow/pkg/errors"
)

// TaskRepoPG implements the task Repository interface using PostgreSQL and GORM.
type TaskRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewTaskRepoPG creates a new instance of TaskRepoPG.
func NewTaskRepoPG(db *gorm.DB, log *zap.Logger) *TaskRepoPG {
	return &TaskRepoPG{db: db, log: log}
}

// TaskSchema represents the database schema for the tasks table.
type TaskSchema struct {
	ID          string    `gorm:"primaryKey"`             // Server-generated UUID
	Title       string    `gorm:"not null"`               // Required short description
	Description *string   // Optional free text, nullable
	Completed   bool      `gorm:"not null;default:false"` // Completion flag
	UserID      string    `gorm:"not null;index"`         // Owning user
	Priority    int       `gorm:"not null;default:1"`     // Open-ended ordinal
	CreatedAt   time.Time `gorm:"not null"`               // Assigned at creation, immutable
	UpdatedAt   time.Time `gorm:"not null"`               // Refreshed on every mutation
}

// TableName specifies the table name for the TaskSchema model.
func (TaskSchema) TableName() string {
	return "tasks"
}

func (m *TaskSchema) toDomain() *task.Task {
	return &task.Task{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Completed:   m.Completed,
		Priority:    m.Priority,
		UserID:      m.UserID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// Create inserts a new task, generating the identifier server-side.
// Creation and update timestamps are assigned from a single clock read so
// they are equal on a fresh record.
func (r *TaskRepoPG) Create(ctx context.Context, t *task.Task) (*task.Task, error) {
	if t == nil {
		return nil, errors.New("task cannot be nil")
	}

	now := time.Now().UTC()
	model := TaskSchema{
		ID:          uuid.New().String(),
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		UserID:      t.UserID,
		Priority:    t.Priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create task in db", zap.Error(err), zap.String("user_id", t.UserID))
		return nil, apperrors.NewInternalError("failed to create task", err)
	}

	r.log.Info("task created in db", zap.String("id", model.ID), zap.String("user_id", model.UserID))
	return model.toDomain(), nil
}

// GetByID retrieves a task only if it belongs to the given user. A task
// owned by another user surfaces as NotFound, same as an absent one.
func (r *TaskRepoPG) GetByID(ctx context.Context, userID, taskID string) (*task.Task, error) {
	var model TaskSchema
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", taskID, userID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Warn("task not found", zap.String("task_id", taskID), zap.String("user_id", userID))
			return nil, apperrors.NewNotFoundError("task", "task not found")
		}
		r.log.Error("failed to get task from db", zap.Error(err), zap.String("task_id", taskID))
		return nil, apperrors.NewInternalError("failed to get task", err)
	}

	return model.toDomain(), nil
}

// ListByUser retrieves all tasks owned by the user, newest-created first.
// The id tiebreak keeps the order deterministic for equal timestamps.
func (r *TaskRepoPG) ListByUser(ctx context.Context, userID string) ([]task.Task, error) {
	var models []TaskSchema
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id").
		Find(&models).Error
	if err != nil {
		r.log.Error("failed to list tasks from db", zap.Error(err), zap.String("user_id", userID))
		return nil, apperrors.NewInternalError("failed to list tasks", err)
	}

	tasks := make([]task.Task, len(models))
	for i := range models {
		tasks[i] = *models[i].toDomain()
	}
	return tasks, nil
}

// Update persists the full task record, refreshing updated_at. created_at
// is written back unchanged.
func (r *TaskRepoPG) Update(ctx context.Context, t *task.Task) (*task.Task, error) {
	if t == nil {
		return nil, errors.New("task cannot be nil")
	}

	model := TaskSchema{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		UserID:      t.UserID,
		Priority:    t.Priority,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   time.Now().UTC(),
	}

	res := r.db.WithContext(ctx).
		Model(&TaskSchema{}).
		Where("id = ? AND user_id = ?", t.ID, t.UserID).
		Select("Title", "Description", "Completed", "Priority", "UpdatedAt").
		Updates(&model)
	if res.Error != nil {
		r.log.Error("failed to update task in db", zap.Error(res.Error), zap.String("task_id", t.ID))
		return nil, apperrors.NewInternalError("failed to update task", res.Error)
	}
	if res.RowsAffected == 0 {
		r.log.Warn("task to update not found", zap.String("task_id", t.ID), zap.String("user_id", t.UserID))
		return nil, apperrors.NewNotFoundError("task", "task not found")
	}

	r.log.Info("task updated in db", zap.String("id", t.ID))
	return r.GetByID(ctx, t.UserID, t.ID)
}

// Delete removes the task if it exists under the given user.
func (r *TaskRepoPG) Delete(ctx context.Context, userID, taskID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", taskID, userID).
		Delete(&TaskSchema{})
	if res.Error != nil {
		r.log.Error("failed to delete task in db", zap.Error(res.Error), zap.String("task_id", taskID))
		return apperrors.NewInternalError("failed to delete task", res.Error)
	}
	if res.RowsAffected == 0 {
		r.log.Warn("task to delete not found", zap.String("task_id", taskID), zap.String("user_id", userID))
		return apperrors.NewNotFoundError("task", "task not found")
	}

	r.log.Info("task deleted in db", zap.String("id", taskID))
	return nil
}
