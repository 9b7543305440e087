package utils

import (
	"context"
	"sync"
	"time"
)

// HealthCheck pings one external dependency.
type HealthCheck func(ctx context.Context) error

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Services  map[string]bool `json:"services"`
	CheckedAt time.Time       `json:"checkedAt"`
}

// Healthy reports whether every checked service answered.
func (h HealthStatus) Healthy() bool {
	for _, ok := range h.Services {
		if !ok {
			return false
		}
	}
	return true
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// RunHealthChecks executes every check once and stores the snapshot.
func RunHealthChecks(ctx context.Context, checks map[string]HealthCheck) HealthStatus {
	status := HealthStatus{Services: make(map[string]bool, len(checks)), CheckedAt: time.Now()}
	for name, check := range checks {
		checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		status.Services[name] = check(checkCtx) == nil
		cancel()
	}

	mu.Lock()
	currentHealth = status
	mu.Unlock()
	return status
}

// StartHealthMonitor performs periodic health checks until ctx is cancelled.
func StartHealthMonitor(ctx context.Context, interval time.Duration, checks map[string]HealthCheck) {
	RunHealthChecks(ctx, checks)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				RunHealthChecks(ctx, checks)
			}
		}
	}()
}
