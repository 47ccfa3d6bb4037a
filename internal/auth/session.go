package auth

import "context"

type ctxKey string

const sessionKey ctxKey = "session"

// Session is the request-scoped identity populated once by the auth
// middleware and passed down through the request context. It is never
// stored in package-level state.
type Session struct {
	UserID string
	Email  string
	Role   string
}

// WithSession returns a context carrying the session.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFrom extracts the session from ctx; ok is false on
// unauthenticated requests.
func SessionFrom(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey).(Session)
	return s, ok
}
