package middleware

import (
	"context"
	"net/http"

	"bookingsite/models"

	"github.com/gin-gonic/gin"
)

// AdminChecker is satisfied by the booking store.
type AdminChecker interface {
	IsAdmin(ctx context.Context) bool
}

// RequireAdmin lets a request through only when its session is an allow-listed admin.
func RequireAdmin(checker AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !checker.IsAdmin(c.Request.Context()) {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				models.Fail[models.Empty](models.KindUnauthorized, "Unauthorized admin access"))
			return
		}
		c.Set("isAdmin", true)
		c.Next()
	}
}
