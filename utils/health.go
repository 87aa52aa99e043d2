package utils

import (
	"context"
	"sync"
	"time"
)

// Pinger is anything whose reachability can be probed, typically the KV store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Backend   string    `json:"backend"`
	Store     bool      `json:"store"`
	Error     string    `json:"error,omitempty"`
	CheckedAt time.Time `json:"checkedAt"`
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

// CheckHealth pings the store, records the snapshot and returns it.
func CheckHealth(ctx context.Context, backend string, store Pinger) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := HealthStatus{Backend: backend, Store: true, CheckedAt: time.Now()}
	if err := store.Ping(ctx); err != nil {
		status.Store = false
		status.Error = err.Error()
	}

	mu.Lock()
	currentHealth = status
	mu.Unlock()
	return status
}
