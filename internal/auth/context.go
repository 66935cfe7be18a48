package auth

import "context"

type sessionCtxKey struct{}

// WithSession attaches the resolved session to ctx.
func WithSession(ctx context.Context, session Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, session)
}

func SessionFromContext(ctx context.Context) (Session, bool) {
	session, ok := ctx.Value(sessionCtxKey{}).(Session)
	return session, ok
}

// UserIDFromContext returns the user id of the request's session, or "" when the
// request carries none.
func UserIDFromContext(ctx context.Context) string {
	session, ok := SessionFromContext(ctx)
	if !ok {
		return ""
	}
	return session.UserID
}
