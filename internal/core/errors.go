package core

import "errors"

// Sentinel errors returned by repositories and services. Handlers translate
// these to HTTP statuses; callers match with errors.Is.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrEmailTaken          = errors.New("email already registered")
	ErrQuizNotFound        = errors.New("quiz not found")
	ErrQuestionNotFound    = errors.New("question not found")
	ErrGameSessionNotFound = errors.New("game session not found")
	ErrJoinCodeTaken       = errors.New("join code already in use")
	ErrSessionNotJoinable  = errors.New("game session is not accepting players")

	ErrRememberTokenInvalid = errors.New("remember token invalid or expired")

	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSessionNotFound    = errors.New("session not found")
	ErrForbidden          = errors.New("insufficient role for this action")
)
