// Package kvstore provides the durable string-keyed storage the front desk
// repositories persist their records into.
package kvstore

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when a key has never been written or was deleted.
var ErrNotFound = errors.New("kvstore: key not found")

// Store is a synchronous string-keyed key-value store.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

// TTLSetter is implemented by backends that can expire keys natively.
type TTLSetter interface {
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
}
