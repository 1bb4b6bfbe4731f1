package models

import "time"

// User represents a row in the PostgreSQL users table.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"` // bcrypt hash, never serialize
	CreatedAt time.Time `json:"created_at"`
}

// Identity is the authenticated-user view attached to request context and
// embedded into posts at creation time.
type Identity struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// FieldError is a single validation failure, reported in 400 responses.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RegisterRequest is the JSON body for POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks the registration payload: username must be 3-20
// alphanumeric characters, password must be non-empty.
func (r *RegisterRequest) Validate() []FieldError {
	var errs []FieldError
	switch {
	case r.Username == "":
		errs = append(errs, FieldError{"username", "username is required"})
	case len(r.Username) < 3 || len(r.Username) > 20:
		errs = append(errs, FieldError{"username", "username must be 3-20 characters"})
	case !isAlphanumeric(r.Username):
		errs = append(errs, FieldError{"username", "username must be alphanumeric"})
	}
	if r.Password == "" {
		errs = append(errs, FieldError{"password", "password is required"})
	}
	return errs
}

// LoginRequest is the JSON body for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Username == "" {
		errs = append(errs, FieldError{"username", "username is required"})
	}
	if r.Password == "" {
		errs = append(errs, FieldError{"password", "password is required"})
	}
	return errs
}

func isAlphanumeric(s string) bool {
	for _, c := range s {
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9') {
			return false
		}
	}
	return true
}
