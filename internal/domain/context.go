package domain

import "context"

type sessionKey struct{}

// WithSession stores the authenticated session in the context.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext extracts the session from the context.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	if !ok || s == nil || s.Email == "" {
		return nil, false
	}
	return s, true
}
