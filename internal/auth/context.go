package auth

import "context"

// Session is the authenticated identity for the current request.
// It is placed in the request context by the auth middleware and read by
// handlers and services; only the sign-in/sign-up/sign-out surfaces create
// or discard sessions.
type Session struct {
	UserID string
	Email  string
}

type contextKey struct{}

// WithSession returns a context carrying the given session.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// SessionFrom returns the session attached to the context, if any.
func SessionFrom(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(contextKey{}).(Session)
	return s, ok
}
