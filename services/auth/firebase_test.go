package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	firebaseAuth "firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPasswords struct {
	session *Session
	err     error
}

func (s stubPasswords) VerifyPassword(context.Context, string, string) (*Session, error) {
	return s.session, s.err
}

type stubTokens struct {
	tokens map[string]*firebaseAuth.Token
}

func (s stubTokens) VerifyIDToken(_ context.Context, idToken string) (*firebaseAuth.Token, error) {
	if tok, ok := s.tokens[idToken]; ok {
		return tok, nil
	}
	return nil, errors.New("ID token has expired")
}

func TestFirebaseProvider_SignInAndCurrentSession(t *testing.T) {
	sessions := newMemorySessions()
	p := &FirebaseProvider{
		Passwords: stubPasswords{session: &Session{UserID: "uid-1", Email: "owner@example.com", Token: "id-token"}},
		Tokens: stubTokens{tokens: map[string]*firebaseAuth.Token{
			"id-token": {UID: "uid-1", Claims: map[string]interface{}{"email": "owner@example.com"}},
		}},
		Sessions: sessions,
	}
	ctx := WithSessionID(context.Background(), "s1")

	session, err := p.SignIn(ctx, "owner@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", session.UserID)
	assert.Equal(t, time.Hour, sessions.ttls["s1"])

	current, err := p.CurrentSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "owner@example.com", current.Email)
	assert.Equal(t, "uid-1", current.UserID)

	require.NoError(t, p.SignOut(ctx))
	current, err = p.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestFirebaseProvider_SignInRejected(t *testing.T) {
	sessions := newMemorySessions()
	p := &FirebaseProvider{
		Passwords: stubPasswords{err: &SignInError{Message: "INVALID_PASSWORD"}},
		Sessions:  sessions,
	}

	_, err := p.SignIn(context.Background(), "owner@example.com", "bad")
	var signInErr *SignInError
	require.ErrorAs(t, err, &signInErr)
	assert.Equal(t, "INVALID_PASSWORD", signInErr.Message)
	assert.Empty(t, sessions.sessions)
}

func TestFirebaseProvider_ExpiredTokenEndsSession(t *testing.T) {
	sessions := newMemorySessions()
	p := &FirebaseProvider{Tokens: stubTokens{}, Sessions: sessions}
	ctx := WithSessionID(context.Background(), "s1")
	require.NoError(t, sessions.Save(ctx, "s1", Session{Email: "owner@example.com", Token: "stale"}, time.Hour))

	current, err := p.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
	assert.NotContains(t, sessions.sessions, "s1")
}
