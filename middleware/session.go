package middleware

import (
	"bookingsite/services/auth"
	"bookingsite/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionMiddleware scopes identity operations to the X-Session-ID header.
// Requests without one, or naming the reserved default session, get a
// throwaway id instead.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(utils.SessionHeader)
		if sessionID == "" || sessionID == auth.DefaultSessionID {
			sessionID = "anon-" + uuid.New().String()
		}
		c.Request = c.Request.WithContext(auth.WithSessionID(c.Request.Context(), sessionID))
		c.Next()
	}
}

// RequestLogger stores a request-scoped logger under "logger".
func RequestLogger(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("logger", base.With(
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.String("ip", getClientIP(c)),
		))
		c.Next()
	}
}
