package chat

import (
	"context"

	"go.uber.org/zap"

	apperrors "taskflow/pkg/errors"
	"taskflow/pkg/security"
)

// Request represents an incoming chat message from a user.
type Request struct {
	UserID  string
	Message string
}

// UserChecker verifies that a user exists. Satisfied by the user repository.
type UserChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// Usecase defines the interface for chat operations.
type Usecase interface {
	Respond(ctx context.Context, in Request) (*Reply, error)
}

// Service validates the message and the requesting user, then delegates to
// the stateless responder. No persistence writes happen here.
type Service struct {
	users UserChecker
	log   *zap.Logger
}

// New creates a new chat Service.
func New(users UserChecker, log *zap.Logger) *Service {
	return &Service{users: users, log: log}
}

// Respond answers a chat message for an existing user.
func (s *Service) Respond(ctx context.Context, in Request) (*Reply, error) {
	if in.UserID == "" {
		return nil, apperrors.NewValidationError("user_id", "user id is required")
	}

	message, err := security.ValidateMessage(in.Message)
	if err != nil {
		s.log.Warn("invalid chat message", zap.String("user_id", in.UserID), zap.Error(err))
		return nil, apperrors.NewValidationError("message", err.Error())
	}

	exists, err := s.users.Exists(ctx, in.UserID)
	if err != nil {
		s.log.Error("failed to check user existence", zap.String("user_id", in.UserID), zap.Error(err))
		return nil, apperrors.NewInternalError("failed to verify user", err)
	}
	if !exists {
		s.log.Warn("chat from unknown user", zap.String("user_id", in.UserID))
		return nil, apperrors.NewNotFoundError("user", "user not found")
	}

	reply := Respond(message)
	s.log.Info("chat message answered",
		zap.String("user_id", in.UserID),
		zap.String("action_taken", reply.ActionTaken),
	)
	return &reply, nil
}
