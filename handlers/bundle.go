// File: bookingsite/handlers/bundle.go
package handlers

import (
	"net/http"

	"bookingsite/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Booking *BookingHandler
	Admin   *AdminHandler
}

// HealthHandler serves the latest health snapshot.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
