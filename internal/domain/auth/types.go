// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.
package auth

import "time"

// Role represents an application's authorization role.
// Keep string form for easy persistence and cookies.
// Valid values are defined as constants below.
type Role string

const (
	// RoleAdmin manages everything, including user accounts.
	RoleAdmin Role = "admin"
	// RoleEncadrant is a session facilitator: manages quizzes and game
	// sessions but not user accounts.
	RoleEncadrant Role = "encadrant"
	// RolePlayer is the default role assigned at registration.
	RolePlayer Role = "player"
)

// Valid reports whether the role is one of the supported values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEncadrant, RolePlayer:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether the role is admin.
func (r Role) IsAdmin() bool { return r == RoleAdmin }

// IsEncadrant reports whether the role is encadrant.
func (r Role) IsEncadrant() bool { return r == RoleEncadrant }

// CanManageQuizzes reports whether the role may create and edit quizzes and
// run game sessions. Capabilities are derived from the role on every call and
// must never be cached apart from it.
func (r Role) CanManageQuizzes() bool { return r == RoleAdmin || r == RoleEncadrant }

// CanManageUsers reports whether the role may administer user accounts.
func (r Role) CanManageUsers() bool { return r == RoleAdmin }

// Identity represents the authenticated principal backing a session.
// The service layer maps a stored user row into this shape.
type Identity struct {
	UserID    string
	Username  string
	FirstName string
	LastName  string
	Email     string
	Role      Role
}

// Session is the server-side record we persist for an authenticated user.
// ID is an opaque session identifier (e.g., random URL-safe string).
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsAdmin reports whether the session belongs to an admin.
func (s Session) IsAdmin() bool { return s.Role.IsAdmin() }

// IsEncadrant reports whether the session belongs to an encadrant.
func (s Session) IsEncadrant() bool { return s.Role.IsEncadrant() }

// CanManageQuizzes reports whether the session may manage quizzes.
func (s Session) CanManageQuizzes() bool { return s.Role.CanManageQuizzes() }

// CanManageUsers reports whether the session may manage user accounts.
func (s Session) CanManageUsers() bool { return s.Role.CanManageUsers() }

// RememberCredential is the client-side half of a persistent login: the pair
// of values mirrored into long-lived cookies. The server keeps only a digest
// of Token.
type RememberCredential struct {
	UserID    string
	Token     string
	ExpiresAt time.Time
}
