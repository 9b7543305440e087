// File: services/auth/password.go
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookingsite/database"
	userRepo "bookingsite/database/repository/user"
	"bookingsite/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// PasswordProvider checks bcrypt hashes from the users collection and issues
// HS256 session tokens.
type PasswordProvider struct {
	Users    userRepo.UserRepository
	Sessions SessionStore
	Secret   []byte
	TTL      time.Duration
	Logger   *zap.Logger
}

func (p *PasswordProvider) ttl() time.Duration {
	if p.TTL <= 0 {
		return utils.DefaultSessionTTL
	}
	return p.TTL
}

func (p *PasswordProvider) log() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}
	return p.Logger
}

func (p *PasswordProvider) SignIn(ctx context.Context, email, password string) (*Session, error) {
	userRec, err := p.Users.GetByEmail(ctx, email)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		p.log().Error("SignIn: failed to fetch user", zap.String("email", email), zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(p.Secret, userRec.ID, userRec.Email, p.ttl())
	if err != nil {
		p.log().Error("SignIn: failed to sign token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	session := Session{UserID: userRec.ID, Email: userRec.Email, Token: token, CreatedAt: time.Now().UTC()}
	if err := p.Sessions.Save(ctx, SessionIDFrom(ctx), session, p.ttl()); err != nil {
		return nil, err
	}
	return &session, nil
}

// CurrentSession drops sessions whose token no longer validates.
func (p *PasswordProvider) CurrentSession(ctx context.Context) (*Session, error) {
	sessionID := SessionIDFrom(ctx)
	session, err := p.Sessions.Load(ctx, sessionID)
	if err != nil || session == nil {
		return nil, err
	}
	claims, err := utils.ValidateToken(p.Secret, session.Token)
	if err != nil {
		p.log().Debug("CurrentSession: discarding invalid token", zap.String("session", sessionID), zap.Error(err))
		_ = p.Sessions.Delete(ctx, sessionID)
		return nil, nil
	}
	session.Email = claims.Email
	return session, nil
}

func (p *PasswordProvider) SignOut(ctx context.Context) error {
	return p.Sessions.Delete(ctx, SessionIDFrom(ctx))
}

// HashPassword is used when seeding users.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
