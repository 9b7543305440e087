package booking

import (
	"context"

	"bookingsite/models"
	"bookingsite/services/auth"

	"go.uber.org/zap"
)

// AdminLogin signs in and keeps the session only if the email is allow-listed.
func (s *BookingStore) AdminLogin(ctx context.Context, email, password string) models.Result[models.AdminSession] {
	logger := s.log()
	if email == "" || password == "" {
		return fail[models.AdminSession](newValidationError("credentials", "email and password are required"))
	}

	session, err := s.Identity.SignIn(ctx, email, password)
	if err != nil {
		logger.Warn("AdminLogin: sign-in rejected", zap.String("email", email), zap.Error(err))
		return fail[models.AdminSession](err)
	}

	allowed, err := s.Admins.IsAllowed(ctx, email)
	if err != nil || !allowed {
		if signOutErr := s.Identity.SignOut(ctx); signOutErr != nil {
			logger.Error("AdminLogin: failed to revert session", zap.String("email", email), zap.Error(signOutErr))
		}
		if err != nil {
			logger.Error("AdminLogin: allow-list lookup failed", zap.String("email", email), zap.Error(err))
			return fail[models.AdminSession](err)
		}
		logger.Warn("AdminLogin: email not on the admin allow-list", zap.String("email", email))
		return fail[models.AdminSession](ErrNotAdmin)
	}

	logger.Info("AdminLogin: admin signed in", zap.String("email", session.Email))
	return models.Ok(models.AdminSession{Email: email, SessionID: auth.SessionIDFrom(ctx)})
}

func (s *BookingStore) AdminLogout(ctx context.Context) models.Result[models.Empty] {
	if err := s.Identity.SignOut(ctx); err != nil {
		s.log().Error("AdminLogout: failed to end session", zap.Error(err))
		return fail[models.Empty](err)
	}
	return models.Ok(models.Empty{})
}

// IsAdmin reports whether the context's session belongs to an allow-listed
// email. Lookup failures are logged and read as "not an admin".
func (s *BookingStore) IsAdmin(ctx context.Context) bool {
	session, err := s.Identity.CurrentSession(ctx)
	if err != nil {
		s.log().Error("IsAdmin: failed to read session", zap.Error(err))
		return false
	}
	if session == nil {
		return false
	}
	allowed, err := s.Admins.IsAllowed(ctx, session.Email)
	if err != nil {
		s.log().Error("IsAdmin: allow-list lookup failed", zap.String("email", session.Email), zap.Error(err))
		return false
	}
	return allowed
}
