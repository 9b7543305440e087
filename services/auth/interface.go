package auth

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidCredentials is returned by SignIn when the email/password pair is rejected.
var ErrInvalidCredentials = errors.New("invalid email or password")

// DefaultSessionID addresses the session of callers that never set one.
const DefaultSessionID = "default"

// Session is an authenticated identity held by the provider.
type Session struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"createdAt"`
}

// IdentityProvider signs users in and tracks the session addressed by the context.
type IdentityProvider interface {
	SignIn(ctx context.Context, email, password string) (*Session, error)
	// CurrentSession returns nil, nil when no valid session is active.
	CurrentSession(ctx context.Context) (*Session, error)
	SignOut(ctx context.Context) error
}

// SessionStore persists sessions by id.
type SessionStore interface {
	Save(ctx context.Context, sessionID string, session Session, ttl time.Duration) error
	// Load returns nil, nil when the session does not exist.
	Load(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}

// SignInError carries the identity provider's own rejection message.
type SignInError struct {
	Message string
}

func (e *SignInError) Error() string {
	return e.Message
}

type sessionIDKey struct{}

// WithSessionID scopes the identity operations made with ctx to one session.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, sessionID)
}

// SessionIDFrom returns the session id set by WithSessionID, or DefaultSessionID.
func SessionIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey{}).(string); ok && id != "" {
		return id
	}
	return DefaultSessionID
}
