// File: services/auth/firebase.go
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	firebaseAuth "firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
	identitytoolkit "google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// firebaseTokenLifetime is how long Firebase ID tokens stay valid.
const firebaseTokenLifetime = time.Hour

// PasswordVerifier exchanges an email/password pair for a Firebase ID token.
type PasswordVerifier interface {
	VerifyPassword(ctx context.Context, email, password string) (*Session, error)
}

// TokenVerifier is satisfied by *auth.Client from the Firebase Admin SDK.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseAuth.Token, error)
}

// IdentityToolkitVerifier signs in through the Identity Toolkit relying-party API.
type IdentityToolkitVerifier struct {
	Service *identitytoolkit.Service
}

// NewIdentityToolkitVerifier builds a verifier authenticated by the project's web API key.
func NewIdentityToolkitVerifier(ctx context.Context, apiKey string) (*IdentityToolkitVerifier, error) {
	svc, err := identitytoolkit.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("firebase: error creating identity toolkit client: %w", err)
	}
	return &IdentityToolkitVerifier{Service: svc}, nil
}

func (v *IdentityToolkitVerifier) VerifyPassword(ctx context.Context, email, password string) (*Session, error) {
	resp, err := v.Service.Relyingparty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusBadRequest {
			return nil, &SignInError{Message: apiErr.Message}
		}
		return nil, fmt.Errorf("firebase sign-in failed: %w", err)
	}
	return &Session{
		UserID:    resp.LocalId,
		Email:     resp.Email,
		Token:     resp.IdToken,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// FirebaseProvider delegates credentials to Firebase Authentication and keeps
// the resulting ID token in the session store.
type FirebaseProvider struct {
	Passwords PasswordVerifier
	Tokens    TokenVerifier
	Sessions  SessionStore
	Logger    *zap.Logger
}

func (p *FirebaseProvider) log() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}
	return p.Logger
}

func (p *FirebaseProvider) SignIn(ctx context.Context, email, password string) (*Session, error) {
	session, err := p.Passwords.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := p.Sessions.Save(ctx, SessionIDFrom(ctx), *session, firebaseTokenLifetime); err != nil {
		return nil, err
	}
	return session, nil
}

func (p *FirebaseProvider) CurrentSession(ctx context.Context) (*Session, error) {
	sessionID := SessionIDFrom(ctx)
	session, err := p.Sessions.Load(ctx, sessionID)
	if err != nil || session == nil {
		return nil, err
	}
	token, err := p.Tokens.VerifyIDToken(ctx, session.Token)
	if err != nil {
		p.log().Debug("CurrentSession: discarding rejected ID token", zap.String("session", sessionID), zap.Error(err))
		_ = p.Sessions.Delete(ctx, sessionID)
		return nil, nil
	}
	if email, ok := token.Claims["email"].(string); ok && email != "" {
		session.Email = email
	}
	session.UserID = token.UID
	return session, nil
}

func (p *FirebaseProvider) SignOut(ctx context.Context) error {
	return p.Sessions.Delete(ctx, SessionIDFrom(ctx))
}
