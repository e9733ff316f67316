//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	domainauth "github.com/casernelab/firequiz/internal/domain/auth"
)

const (
	maxUsernameLen = 64
	maxNameLen     = 128
	// MinPasswordLen is the minimum accepted password length.
	MinPasswordLen = 6
)

// User represents a stored account. PasswordHash holds a bcrypt digest and is
// never serialized; accounts provisioned through SSO keep it empty.
type User struct {
	ID           string          `json:"id"         db:"id"`
	Username     string          `json:"username"   db:"username"`
	Email        string          `json:"email"      db:"email"`
	PasswordHash string          `json:"-"          db:"password_hash"`
	FirstName    string          `json:"first_name" db:"first_name"`
	LastName     string          `json:"last_name"  db:"last_name"`
	Role         domainauth.Role `json:"role"       db:"role"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at" db:"updated_at"`
}

// DisplayName returns "First Last", falling back to the username when both
// name fields are empty.
func (u *User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

// CreateUserRequest represents parameters to create a User. PasswordHash must
// already be hashed by the caller; the data layer never sees a plaintext
// password.
type CreateUserRequest struct {
	Username     string          `json:"username"`
	Email        string          `json:"email"`
	PasswordHash string          `json:"-"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	Role         domainauth.Role `json:"role"`
}

// Validate validates CreateUserRequest.
func (r *CreateUserRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)

	if r.Username == "" {
		return errors.New("username is required")
	}
	if utf8.RuneCountInString(r.Username) > maxUsernameLen {
		return errors.New("username cannot exceed 64 characters")
	}
	if r.Email == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("email is not a valid address")
	}
	if utf8.RuneCountInString(r.FirstName) > maxNameLen || utf8.RuneCountInString(r.LastName) > maxNameLen {
		return errors.New("name cannot exceed 128 characters")
	}
	if !r.Role.Valid() {
		return errors.New("invalid role")
	}
	return nil
}

// UpdateUserRequest represents parameters to update a User. Nil fields are
// left untouched.
type UpdateUserRequest struct {
	Email     *string          `json:"email,omitempty"`
	FirstName *string          `json:"first_name,omitempty"`
	LastName  *string          `json:"last_name,omitempty"`
	Role      *domainauth.Role `json:"role,omitempty"`
}

// HasUpdates reports whether any field is set.
func (r *UpdateUserRequest) HasUpdates() bool {
	return r.Email != nil || r.FirstName != nil || r.LastName != nil || r.Role != nil
}

// Validate validates UpdateUserRequest.
func (r *UpdateUserRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Email != nil {
		e := strings.TrimSpace(strings.ToLower(*r.Email))
		if e == "" {
			return errors.New("email cannot be empty")
		}
		if _, err := mail.ParseAddress(e); err != nil {
			return errors.New("email is not a valid address")
		}
		*r.Email = e
	}
	if r.Role != nil && !r.Role.Valid() {
		return errors.New("invalid role")
	}
	return nil
}

// UsersListOptions controls paging and filtering for listing users.
// Q matches username or email via ILIKE substring; Role matches exactly.
type UsersListOptions struct {
	Limit  int
	Offset int
	Q      *string
	Role   *domainauth.Role
	Sort   string // allowed: "created_at", "username"
	Dir    string // allowed: "asc", "desc"
}
