package model

import "time"

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleUser  UserRole = "user"  // Default role
	UserRoleAdmin UserRole = "admin" // May manage groups
)

// User represents a user account
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Hash      *string   `json:"-"` // Never expose password hash
	Firstname *string   `json:"firstname,omitempty"`
	Lastname  *string   `json:"lastname,omitempty"`
	Role      UserRole  `json:"role"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// IsAdmin returns true if the user has admin role
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// Identity is the acting caller of a request, resolved by the auth
// middleware from a validated token. The zero value is the anonymous
// visitor.
type Identity struct {
	UserID   string   `json:"user_id"`
	Username string   `json:"username"`
	Role     UserRole `json:"role"`
}

// Authenticated returns true if the identity belongs to a signed-in user
func (i Identity) Authenticated() bool {
	return i.UserID != ""
}

// IsAdmin returns true if the identity carries the admin role
func (i Identity) IsAdmin() bool {
	return i.Authenticated() && i.Role == UserRoleAdmin
}

// RegisterRequest represents a signup request
type RegisterRequest struct {
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Firstname *string `json:"firstname,omitempty"`
	Lastname  *string `json:"lastname,omitempty"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validation constants
const (
	MaxUsernameLength = 150
	MinPasswordLength = 8
	MaxPasswordLength = 128
)
