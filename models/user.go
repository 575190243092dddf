package models

import "time"

// Roles assignable to a user account. Role is a closed set: every
// authorization decision in the application compares against these two
// constants and nothing else.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// Email is the unique login identifier of the account.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext, and is never
	// serialized to JSON.
	PasswordHash string `json:"-"`

	// Role is either RoleAdmin or RoleUser.
	Role string `json:"role"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// IsAdmin reports whether the user carries the administrator role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Public returns the projection of the account that is safe to hand to
// clients: identifier, email and role only.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Email: u.Email,
		Role:  u.Role,
	}
}

// PublicUser is the client-facing projection of a User. It carries no
// credential material.
type PublicUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
