package user

import "time"

// CreateUserRequest represents the request payload for creating a new user.
type CreateUserRequest struct {
	Name  string `validate:"required,min=1,max=100"`
	Email string `validate:"required,email"`
}

// GetUserRequest represents the request payload for retrieving a user.
type GetUserRequest struct {
	ID string
}

// UserResponse represents the user payload returned by the usecase.
type UserResponse struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
}
