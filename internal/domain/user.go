package domain

import (
	"strings"
	"time"
)

// User represents a registered account.
type User struct {
	ID           int64
	Email        string
	DisplayName  string
	PasswordHash string // bcrypt; empty for demo-directory accounts
	Role         Role
	Department   string
	CreatedAt    time.Time
}

// Actor identifies who is performing an operation, independent of how
// they authenticated (session cookie or API token).
type Actor struct {
	Email string
	Role  Role
}

// RegisterUserRequest holds parameters for self-service registration.
type RegisterUserRequest struct {
	Email       string
	DisplayName string
	Password    string
	Department  string
}

// Validate checks that the request is well-formed.
func (r *RegisterUserRequest) Validate() error {
	if r.Email == "" {
		return ErrValidation("email is required")
	}
	if !strings.Contains(r.Email, "@") {
		return ErrValidation("email %q is not a valid address", r.Email)
	}
	if r.DisplayName == "" {
		return ErrValidation("display name is required")
	}
	if len(r.Password) < 6 {
		return ErrValidation("password must be at least 6 characters")
	}
	return nil
}
