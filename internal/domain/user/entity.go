package user

import "time"

// User represents a user account in the system. Accounts are created once
// and never updated or deleted.
type User struct {
	ID        string    `json:"id"`         // ID is the server-generated unique identifier
	Name      string    `json:"name"`       // Name is the full name of the user
	Email     string    `json:"email"`      // Email is the unique email address of the user
	CreatedAt time.Time `json:"created_at"` // CreatedAt is assigned at creation and immutable
}
