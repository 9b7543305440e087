// File: bookingsite/handlers/admin.go
package handlers

import (
	"net/http"

	"bookingsite/services/auth"
	"bookingsite/services/booking"
	"bookingsite/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AdminHandler covers the admin session endpoints.
type AdminHandler struct {
	Service booking.BookingService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(svc booking.BookingService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

// LoginHandler starts an admin session under a newly minted id, returned in the
// X-Session-ID header and the response body. Any id the client sent is ignored.
func (ah *AdminHandler) LoginHandler(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "email and password are required")
		return
	}

	ctx := auth.WithSessionID(c.Request.Context(), uuid.New().String())

	res := ah.Service.AdminLogin(ctx, body.Email, body.Password)
	if res.Success {
		c.Header(utils.SessionHeader, res.Data.SessionID)
	} else {
		getLogger(c).Info("Admin login refused", zap.String("email", body.Email), zap.String("kind", string(res.Kind)))
	}
	respond(c, http.StatusOK, res)
}

func (ah *AdminHandler) LogoutHandler(c *gin.Context) {
	respond(c, http.StatusOK, ah.Service.AdminLogout(c.Request.Context()))
}

// StatusHandler reports whether the caller's session is an admin session.
func (ah *AdminHandler) StatusHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "isAdmin": ah.Service.IsAdmin(c.Request.Context())})
}
