package task

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	domain "taskflow/internal/domain/task"
	apperrors "taskflow/pkg/errors"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, userID, taskID string) (*domain.Task, error) {
	args := m.Called(ctx, userID, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockRepository) ListByUser(ctx context.Context, userID string) ([]domain.Task, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, userID, taskID string) error {
	args := m.Called(ctx, userID, taskID)
	return args.Error(0)
}

// MockUserChecker is a mock implementation of the UserChecker interface
type MockUserChecker struct {
	mock.Mock
}

func (m *MockUserChecker) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func setupTestService(t *testing.T) (*Service, *MockRepository, *MockUserChecker) {
	mockRepo := new(MockRepository)
	mockUsers := new(MockUserChecker)
	svc := New(mockRepo, mockUsers, zaptest.NewLogger(t))
	return svc, mockRepo, mockUsers
}

func boolPtr(b bool) *bool    { return &b }
func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func TestCreateTask_Defaults(t *testing.T) {
	svc, mockRepo, mockUsers := setupTestService(t)
	ctx := context.Background()

	mockUsers.On("Exists", ctx, "user-1").Return(true, nil)
	mockRepo.On("Create", ctx, mock.MatchedBy(func(task *domain.Task) bool {
		return task.Title == "Buy milk" &&
			task.UserID == "user-1" &&
			!task.Completed &&
			task.Priority == 1 &&
			task.Description == nil
	})).Return(&domain.Task{
		ID:       "task-1",
		Title:    "Buy milk",
		Priority: 1,
		UserID:   "user-1",
	}, nil)

	resp, err := svc.CreateTask(ctx, CreateTaskRequest{
		UserID: "user-1",
		Title:  "Buy milk",
	})

	require.NoError(t, err)
	assert.Equal(t, "task-1", resp.ID)
	assert.Equal(t, 1, resp.Priority)
	assert.False(t, resp.Completed)
	mockRepo.AssertExpectations(t)
}

func TestCreateTask_ExplicitFields(t *testing.T) {
	svc, mockRepo, mockUsers := setupTestService(t)
	ctx := context.Background()

	mockUsers.On("Exists", ctx, "user-1").Return(true, nil)
	mockRepo.On("Create", ctx, mock.MatchedBy(func(task *domain.Task) bool {
		return task.Completed && task.Priority == 3 &&
			task.Description != nil && *task.Description == "with details"
	})).Return(&domain.Task{ID: "task-1", UserID: "user-1"}, nil)

	_, err := svc.CreateTask(ctx, CreateTaskRequest{
		UserID:      "user-1",
		Title:       "Detailed",
		Description: strPtr("with details"),
		Completed:   boolPtr(true),
		Priority:    intPtr(3),
	})

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestCreateTask_UserNotFound(t *testing.T) {
	svc, mockRepo, mockUsers := setupTestService(t)
	ctx := context.Background()

	mockUsers.On("Exists", ctx, "ghost").Return(false, nil)

	resp, err := svc.CreateTask(ctx, CreateTaskRequest{UserID: "ghost", Title: "Orphan"})

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, apperrors.IsNotFound(err))
	// Nothing must be persisted for a missing user
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateTask_MissingTitle(t *testing.T) {
	svc, mockRepo, _ := setupTestService(t)

	resp, err := svc.CreateTask(context.Background(), CreateTaskRequest{UserID: "user-1"})

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, apperrors.IsValidation(err))
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestListTasks_UserNotFound(t *testing.T) {
	svc, mockRepo, mockUsers := setupTestService(t)
	ctx := context.Background()

	mockUsers.On("Exists", ctx, "ghost").Return(false, nil)

	resp, err := svc.ListTasks(ctx, ListTasksRequest{UserID: "ghost"})

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, apperrors.IsNotFound(err))
	mockRepo.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
}

func TestListTasks_Empty(t *testing.T) {
	svc, mockRepo, mockUsers := setupTestService(t)
	ctx := context.Background()

	mockUsers.On("Exists", ctx, "user-1").Return(true, nil)
	mockRepo.On("ListByUser", ctx, "user-1").Return([]domain.Task{}, nil)

	resp, err := svc.ListTasks(ctx, ListTasksRequest{UserID: "user-1"})

	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Empty(t, resp)
}

func TestUpdateTask_PartialMerge(t *testing.T) {
	svc, mockRepo, _ := setupTestService(t)
	ctx := context.Background()

	existing := &domain.Task{
		ID:       "task-1",
		Title:    "A",
		Priority: 1,
		UserID:   "user-1",
	}
	mockRepo.On("GetByID", ctx, "user-1", "task-1").Return(existing, nil)
	mockRepo.On("Update", ctx, mock.MatchedBy(func(task *domain.Task) bool {
		// Untouched fields survive the merge
		return task.Title == "A" && task.Priority == 2
	})).Return(&domain.Task{
		ID:       "task-1",
		Title:    "A",
		Priority: 2,
		UserID:   "user-1",
	}, nil)

	resp, err := svc.UpdateTask(ctx, UpdateTaskRequest{
		UserID:   "user-1",
		TaskID:   "task-1",
		Priority: Some(2),
	})

	require.NoError(t, err)
	assert.Equal(t, "A", resp.Title)
	assert.Equal(t, 2, resp.Priority)
	mockRepo.AssertExpectations(t)
}

func TestUpdateTask_NullClearsDescription(t *testing.T) {
	svc, mockRepo, _ := setupTestService(t)
	ctx := context.Background()

	existing := &domain.Task{
		ID:          "task-1",
		Title:       "A",
		Description: strPtr("old text"),
		Priority:    1,
		UserID:      "user-1",
	}
	mockRepo.On("GetByID", ctx, "user-1", "task-1").Return(existing, nil)
	mockRepo.On("Update", ctx, mock.MatchedBy(func(task *domain.Task) bool {
		return task.Description == nil
	})).Return(&domain.Task{ID: "task-1", Title: "A", Priority: 1, UserID: "user-1"}, nil)

	resp, err := svc.UpdateTask(ctx, UpdateTaskRequest{
		UserID:      "user-1",
		TaskID:      "task-1",
		Description: Null[string](),
	})

	require.NoError(t, err)
	assert.Nil(t, resp.Description)
}

func TestUpdateTask_NullRejectedForNonNullableFields(t *testing.T) {
	svc, mockRepo, _ := setupTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  UpdateTaskRequest
	}{
		{"null title", UpdateTaskRequest{UserID: "u", TaskID: "t", Title: Null[string]()}},
		{"null completed", UpdateTaskRequest{UserID: "u", TaskID: "t", Completed: Null[bool]()}},
		{"null priority", UpdateTaskRequest{UserID: "u", TaskID: "t", Priority: Null[int]()}},
		{"empty title", UpdateTaskRequest{UserID: "u", TaskID: "t", Title: Some("  ")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.UpdateTask(ctx, tt.req)
			assert.Error(t, err)
			assert.Nil(t, resp)
			assert.True(t, apperrors.IsValidation(err))
		})
	}

	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateTask_NotFound(t *testing.T) {
	svc, mockRepo, _ := setupTestService(t)
	ctx := context.Background()

	mockRepo.On("GetByID", ctx, "user-1", "missing-id").
		Return(nil, apperrors.NewNotFoundError("task", "task not found"))

	resp, err := svc.UpdateTask(ctx, UpdateTaskRequest{
		UserID: "user-1",
		TaskID: "missing-id",
		Title:  Some("anything"),
	})

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestToggleTaskCompletion(t *testing.T) {
	svc, mockRepo, _ := setupTestService(t)
	ctx := context.Background()

	mockRepo.On("GetByID", ctx, "user-1", "task-1").Return(&domain.Task{
		ID:        "task-1",
		Title:     "A",
		Completed: false,
		Priority:  1,
		UserID:    "user-1",
	}, nil).Once()
	mockRepo.On("Update", ctx, mock.MatchedBy(func(task *domain.Task) bool {
		return task.Completed
	})).Return(&domain.Task{
		ID:        "task-1",
		Completed: true,
		UserID:    "user-1",
		UpdatedAt: time.Now().UTC(),
	}, nil).Once()

	resp, err := svc.ToggleTaskCompletion(ctx, GetTaskRequest{UserID: "user-1", TaskID: "task-1"})
	require.NoError(t, err)
	assert.True(t, resp.Completed)

	// Toggling again returns to the original value
	mockRepo.On("GetByID", ctx, "user-1", "task-1").Return(&domain.Task{
		ID:        "task-1",
		Completed: true,
		UserID:    "user-1",
	}, nil).Once()
	mockRepo.On("Update", ctx, mock.MatchedBy(func(task *domain.Task) bool {
		return !task.Completed
	})).Return(&domain.Task{
		ID:        "task-1",
		Completed: false,
		UserID:    "user-1",
	}, nil).Once()

	resp, err = svc.ToggleTaskCompletion(ctx, GetTaskRequest{UserID: "user-1", TaskID: "task-1"})
	require.NoError(t, err)
	assert.False(t, resp.Completed)

	mockRepo.AssertExpectations(t)
}

func TestDeleteTask(t *testing.T) {
	svc, mockRepo, _ := setupTestService(t)
	ctx := context.Background()

	mockRepo.On("Delete", ctx, "user-1", "task-1").Return(nil)
	require.NoError(t, svc.DeleteTask(ctx, GetTaskRequest{UserID: "user-1", TaskID: "task-1"}))

	mockRepo.On("Delete", ctx, "user-1", "missing-id").
		Return(apperrors.NewNotFoundError("task", "task not found"))
	err := svc.DeleteTask(ctx, GetTaskRequest{UserID: "user-1", TaskID: "missing-id"})
	assert.True(t, apperrors.IsNotFound(err))
}
