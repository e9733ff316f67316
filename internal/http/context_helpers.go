package httpx

import (
	"context"

	domainauth "github.com/casernelab/firequiz/internal/domain/auth"
)

// sessionKey is an unexported context key type to avoid collisions across packages.
// Centralized in this file so all handlers/middleware use the same key.
type sessionKey struct{}

// WithSession returns a child context that carries the given session.
// If session is nil, the original ctx is returned unchanged.
func WithSession(ctx context.Context, session *domainauth.Session) context.Context {
	if session == nil {
		return ctx
	}
	return context.WithValue(ctx, sessionKey{}, session)
}

// SessionFrom returns the session from context and a boolean indicating presence.
func SessionFrom(ctx context.Context) (*domainauth.Session, bool) {
	if session, ok := ctx.Value(sessionKey{}).(*domainauth.Session); ok && session != nil {
		return session, true
	}
	return nil, false
}

// MustSession retrieves the session from a context that has already passed an
// authentication guard. It returns the zero session if the guard was skipped;
// handlers behind a guard can rely on a populated value.
func MustSession(ctx context.Context) domainauth.Session {
	if s, ok := SessionFrom(ctx); ok {
		return *s
	}
	return domainauth.Session{}
}
