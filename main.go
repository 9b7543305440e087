// File: bookingsite/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookingsite/config"
	activityRepo "bookingsite/database/repository/activity"
	adminRepo "bookingsite/database/repository/admin"
	availabilityRepo "bookingsite/database/repository/availability"
	bookingRepo "bookingsite/database/repository/booking"
	"bookingsite/handlers"
	"bookingsite/middleware"
	"bookingsite/routes"
	"bookingsite/services/booking"
	"bookingsite/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	backend, err := openBackend(ctx, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to open document store: %v", err)
	}
	defer backend.Close()

	identity, err := newIdentityProvider(ctx, backend, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize identity provider: %v", err)
	}

	// repositories.
	admins := adminRepo.NewAdminRepo(backend.Store)
	bookingStore := &booking.BookingStore{
		Bookings:     bookingRepo.NewBookingRepo(backend.Store),
		Availability: availabilityRepo.NewAvailabilityRepo(backend.Store),
		Activities:   activityRepo.NewActivityRepo(backend.Store),
		Admins:       admins,
		Identity:     identity,
		Slots: booking.SlotConfig{
			StartHour: config.AppConfig.SlotStartHour,
			EndHour:   config.AppConfig.SlotEndHour,
			Capacity:  config.AppConfig.SlotCapacity,
		},
		Logger: logger.Named("booking"),
	}

	if err := bootstrapAdmin(ctx, backend, admins, logger); err != nil {
		logger.Sugar().Fatalf("main: failed to bootstrap admin: %v", err)
	}

	utils.StartHealthMonitor(ctx, time.Minute, backend.Checks)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger.Named("http")))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	handlerBundle := &handlers.HandlerBundle{
		Booking: handlers.NewBookingHandler(bookingStore),
		Admin:   handlers.NewAdminHandler(bookingStore),
	}
	routes.RegisterRoutes(router, handlerBundle, bookingStore, config.AppConfig.CORSOrigins)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s (store=%s, auth=%s)...",
		srv.Addr, config.AppConfig.StoreBackend, config.AppConfig.AuthProvider)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
