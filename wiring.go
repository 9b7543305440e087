// File: bookingsite/wiring.go
package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bookingsite/config"
	"bookingsite/database"
	fsstore "bookingsite/database/firestore"
	"bookingsite/database/memstore"
	"bookingsite/database/mongostore"
	adminRepo "bookingsite/database/repository/admin"
	bookingRepo "bookingsite/database/repository/booking"
	userRepo "bookingsite/database/repository/user"
	"bookingsite/models"
	"bookingsite/services/auth"
	"bookingsite/utils"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
)

// backend is the opened document store plus what is needed to watch and close it.
type backend struct {
	Store    database.DocumentStore
	Firebase *firebase.App
	Checks   map[string]utils.HealthCheck
	closers  []func()
}

func (b *backend) Close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
}

func (b *backend) firebaseApp(ctx context.Context) (*firebase.App, error) {
	if b.Firebase != nil {
		return b.Firebase, nil
	}
	app, err := utils.FirebaseApp(ctx)
	if err != nil {
		return nil, err
	}
	b.Firebase = app
	return app, nil
}

func indexSpecs() []database.IndexSpec {
	var specs []database.IndexSpec
	specs = append(specs, bookingRepo.Indexes()...)
	specs = append(specs, adminRepo.Indexes()...)
	specs = append(specs, userRepo.Indexes()...)
	return specs
}

// openBackend selects the document store named by STORE_BACKEND.
func openBackend(ctx context.Context, logger *zap.Logger) (*backend, error) {
	b := &backend{Checks: map[string]utils.HealthCheck{}}

	switch strings.ToLower(config.AppConfig.StoreBackend) {
	case "mongo", "":
		client, err := database.ConnectMongo(ctx, config.AppConfig.DatabaseURL, logger)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, func() { _ = client.Disconnect(context.Background()) })
		b.Checks["mongo"] = func(ctx context.Context) error { return client.Ping(ctx, nil) }
		b.Store = mongostore.New(client.Database(config.AppConfig.DatabaseName))

	case "firestore":
		app, err := b.firebaseApp(ctx)
		if err != nil {
			return nil, err
		}
		client, err := app.Firestore(ctx)
		if err != nil {
			return nil, fmt.Errorf("firebase: error getting Firestore client: %w", err)
		}
		b.closers = append(b.closers, func() { _ = client.Close() })
		b.Checks["firestore"] = func(ctx context.Context) error {
			_, err := client.Collections(ctx).Next()
			if errors.Is(err, iterator.Done) {
				return nil
			}
			return err
		}
		b.Store = fsstore.New(client)
		logger.Info("Connected to Firestore successfully")

	case "memory":
		b.Store = memstore.New()
		logger.Warn("Using the in-memory document store; data is lost on restart")

	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", config.AppConfig.StoreBackend)
	}

	if indexer, ok := b.Store.(database.Indexer); ok {
		if err := indexer.EnsureIndexes(ctx, indexSpecs()); err != nil {
			logger.Warn("failed to create indexes", zap.Error(err))
		}
	}
	return b, nil
}

// newIdentityProvider selects the provider named by AUTH_PROVIDER. Both keep
// their sessions in Redis.
func newIdentityProvider(ctx context.Context, b *backend, logger *zap.Logger) (auth.IdentityProvider, error) {
	redisClient, err := utils.GetAuthCacheClient()
	if err != nil {
		return nil, err
	}
	b.closers = append(b.closers, func() { _ = redisClient.Close() })
	b.Checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	sessions := auth.NewRedisSessionStore(redisClient)

	switch strings.ToLower(config.AppConfig.AuthProvider) {
	case "password", "":
		if config.AppConfig.JWTSecret == "" {
			return nil, errors.New("JWT_SECRET is required for the password identity provider")
		}
		return &auth.PasswordProvider{
			Users:    userRepo.NewUserRepo(b.Store),
			Sessions: sessions,
			Secret:   []byte(config.AppConfig.JWTSecret),
			TTL:      config.AppConfig.SessionTTL,
			Logger:   logger.Named("auth"),
		}, nil

	case "firebase":
		app, err := b.firebaseApp(ctx)
		if err != nil {
			return nil, err
		}
		authClient, err := app.Auth(ctx)
		if err != nil {
			return nil, fmt.Errorf("firebase: error getting Auth client: %w", err)
		}
		verifier, err := auth.NewIdentityToolkitVerifier(ctx, config.AppConfig.FirebaseAPIKey)
		if err != nil {
			return nil, err
		}
		return &auth.FirebaseProvider{
			Passwords: verifier,
			Tokens:    authClient,
			Sessions:  sessions,
			Logger:    logger.Named("auth"),
		}, nil

	default:
		return nil, fmt.Errorf("unknown AUTH_PROVIDER %q", config.AppConfig.AuthProvider)
	}
}

// bootstrapAdmin allow-lists BOOTSTRAP_ADMIN_EMAIL and, for the password
// provider, creates its user when a password is configured and none exists.
func bootstrapAdmin(ctx context.Context, b *backend, admins adminRepo.AdminRepository, logger *zap.Logger) error {
	email := config.AppConfig.BootstrapAdminEmail
	if email == "" {
		return nil
	}
	if err := admins.Add(ctx, email); err != nil {
		return err
	}
	logger.Info("admin allow-list bootstrapped", zap.String("email", email))

	password := config.AppConfig.BootstrapAdminPassword
	if password == "" || !strings.EqualFold(config.AppConfig.AuthProvider, "password") {
		return nil
	}
	users := userRepo.NewUserRepo(b.Store)
	_, err := users.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, database.ErrNotFound) {
		return err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	if _, err := users.Create(ctx, models.User{Email: email, PasswordHash: hash}); err != nil {
		return err
	}
	logger.Info("bootstrap admin user created", zap.String("email", email))
	return nil
}
