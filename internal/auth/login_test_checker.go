package auth

import "context"

// LoginTestChecker resolves tokens from a fixed map, for tests and local runs
// without Redis.
type LoginTestChecker struct {
	Sessions map[string]Session
}

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		Sessions: map[string]Session{},
	}
}

func (c *LoginTestChecker) Session(_ context.Context, token string) (Session, bool, error) {
	session, ok := c.Sessions[token]
	return session, ok, nil
}
