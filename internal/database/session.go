package database

import (
	"context"
	"errors"
	"net/http"

	"gorm.io/gorm"
)

type contextKey string

const contextKeySession contextKey = "session"

// ErrNoSession is returned when a resolver runs outside Middleware.
var ErrNoSession = errors.New("no database session in request context")

// WithSession stores session in ctx.
func WithSession(ctx context.Context, session *gorm.DB) context.Context {
	return context.WithValue(ctx, contextKeySession, session)
}

// SessionFromContext returns the session stored by Middleware.
func SessionFromContext(ctx context.Context) (*gorm.DB, error) {
	if session, ok := ctx.Value(contextKeySession).(*gorm.DB); ok && session != nil {
		return session, nil
	}
	return nil, ErrNoSession
}

// Middleware returns an HTTP middleware that opens one session per request.
// A nil factory passes requests through without a session.
func Middleware(sessions *SessionFactory) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if sessions == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			ctx = WithSession(ctx, sessions.NewSession(ctx))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
