package routes

import (
	"strings"
	"time"

	"bookingsite/handlers"
	"bookingsite/middleware"
	"bookingsite/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, admin middleware.AdminChecker, corsOrigins string) {
	r.Use(corsMiddleware(corsOrigins))
	r.GET("/health", handlers.HealthHandler)

	api := r.Group("/api")
	api.Use(middleware.SessionMiddleware())

	RegisterPublicRoutes(api, hb)
	RegisterAdminRoutes(api, hb, admin)
}

// RegisterPublicRoutes registers the endpoints the booking website calls anonymously.
func RegisterPublicRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api.GET("/activities", hb.Booking.GetActivitiesHandler)
	api.GET("/availability/:date", hb.Booking.GetAvailabilityHandler)
	api.POST("/bookings", hb.Booking.CreateBookingHandler)

	api.POST("/admin/login", hb.Admin.LoginHandler)
	api.POST("/admin/logout", hb.Admin.LogoutHandler)
	api.GET("/admin/status", hb.Admin.StatusHandler)
}

// RegisterAdminRoutes registers the endpoints that require an allow-listed session.
func RegisterAdminRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle, admin middleware.AdminChecker) {
	protected := api.Group("")
	protected.Use(middleware.RequireAdmin(admin))
	{
		protected.GET("/bookings", hb.Booking.ListBookingsHandler)
		protected.GET("/bookings/:id", hb.Booking.GetBookingHandler)
		protected.PATCH("/bookings/:id", hb.Booking.UpdateBookingHandler)
		protected.DELETE("/bookings/:id", hb.Booking.DeleteBookingHandler)
		protected.POST("/availability/:date/:time", hb.Booking.UpdateAvailabilityHandler)
	}
}

func corsMiddleware(origins string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", utils.SessionHeader},
		ExposeHeaders:    []string{utils.SessionHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if origins == "" || origins == "*" {
		cfg.AllowAllOrigins = true
	} else {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowOrigins = append(cfg.AllowOrigins, o)
			}
		}
	}
	return cors.New(cfg)
}
