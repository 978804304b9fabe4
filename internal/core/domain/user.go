package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrNoSession = errors.New("no active session")
var ErrForbidden = errors.New("access forbidden")

// User models a registered account. Emails are unique case-insensitively;
// the stored value keeps whatever casing the user typed at registration.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Session is the denormalized projection of the currently authenticated
// User. At most one session record exists at a time.
type Session struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// IsAdmin reports whether the session belongs to an admin account.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
