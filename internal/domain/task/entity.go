package task

import "time"

// Task represents a user-owned unit of work.
type Task struct {
	ID          string    `json:"id"`          // ID is the server-generated unique identifier
	Title       string    `json:"title"`       // Title is the short description of the task (required)
	Description *string   `json:"description"` // Description is optional free text; nil when unset
	Completed   bool      `json:"completed"`   // Completed marks whether the task is done
	Priority    int       `json:"priority"`    // Priority is an open-ended ordinal, 1 by default
	UserID      string    `json:"user_id"`     // UserID references the owning user
	CreatedAt   time.Time `json:"created_at"`  // CreatedAt is assigned at creation and immutable
	UpdatedAt   time.Time `json:"updated_at"`  // UpdatedAt is refreshed on every successful mutation
}
