// File: utils/cache.go
package utils

import (
	"bookingsite/config"
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// AuthCacheClient is the dedicated client for admin sessions.
var AuthCacheClient *redis.Client

// InitAuthCache initializes the Redis client for admin sessions (DB from AppConfig).
func InitAuthCache() error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return fmt.Errorf("failed to connect to Redis (Auth Cache): %w", err)
	}
	AuthCacheClient = client
	return nil
}

// GetAuthCacheClient returns the Redis client for admin sessions, connecting on first use.
func GetAuthCacheClient() (*redis.Client, error) {
	if AuthCacheClient == nil {
		if err := InitAuthCache(); err != nil {
			return nil, err
		}
	}
	return AuthCacheClient, nil
}
