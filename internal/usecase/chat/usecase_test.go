package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	apperrors "taskflow/pkg/errors"
)

type MockUserChecker struct {
	mock.Mock
}

func (m *MockUserChecker) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestService_Respond(t *testing.T) {
	users := new(MockUserChecker)
	users.On("Exists", mock.Anything, "user-1").Return(true, nil)

	svc := New(users, zaptest.NewLogger(t))

	reply, err := svc.Respond(context.Background(), Request{UserID: "user-1", Message: "please add a task"})
	require.NoError(t, err)
	assert.Equal(t, "suggest_create_task", reply.ActionTaken)
	users.AssertExpectations(t)
}

func TestService_Respond_UserNotFound(t *testing.T) {
	users := new(MockUserChecker)
	users.On("Exists", mock.Anything, "ghost").Return(false, nil)

	svc := New(users, zaptest.NewLogger(t))

	reply, err := svc.Respond(context.Background(), Request{UserID: "ghost", Message: "hello"})
	assert.Nil(t, reply)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestService_Respond_InvalidMessage(t *testing.T) {
	tests := []struct {
		name    string
		message string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"too long", strings.Repeat("a", 501)},
		{"control characters", "hello\x00world"},
	}

	users := new(MockUserChecker)
	svc := New(users, zaptest.NewLogger(t))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, err := svc.Respond(context.Background(), Request{UserID: "user-1", Message: tt.message})
			assert.Nil(t, reply)
			assert.True(t, apperrors.IsValidation(err))
		})
	}

	users.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestService_Respond_MissingUserID(t *testing.T) {
	users := new(MockUserChecker)
	svc := New(users, zaptest.NewLogger(t))

	reply, err := svc.Respond(context.Background(), Request{Message: "hello"})
	assert.Nil(t, reply)
	assert.True(t, apperrors.IsValidation(err))
}

func TestService_Respond_ExistsCheckFails(t *testing.T) {
	users := new(MockUserChecker)
	users.On("Exists", mock.Anything, "user-1").Return(false, errors.New("db down"))

	svc := New(users, zaptest.NewLogger(t))

	reply, err := svc.Respond(context.Background(), Request{UserID: "user-1", Message: "hello"})
	assert.Nil(t, reply)
	assert.Error(t, err)
	assert.False(t, apperrors.IsNotFound(err))
}
