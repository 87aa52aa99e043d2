package database

import (
	"context"
	"testing"

	"frontdesk/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenStoreMemory(t *testing.T) {
	store, err := OpenStore(context.Background(), config.Config{StoreBackend: config.BackendMemory})
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), "rooms", "[]"))
	assert.NoError(t, store.Ping(context.Background()))
}

func TestOpenStoreRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	store, err := OpenStore(context.Background(), config.Config{
		StoreBackend:   config.BackendRedis,
		RedisAddr:      mr.Addr(),
		RedisKeyPrefix: "hotel:",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Set(context.Background(), "rooms", "[]"))
	got, err := mr.Get("hotel:rooms")
	require.NoError(t, err)
	assert.Equal(t, "[]", got)
}

func TestOpenStoreRedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := OpenStore(context.Background(), config.Config{StoreBackend: config.BackendRedis, RedisAddr: addr})
	assert.ErrorContains(t, err, "failed to connect to Redis")
}

func TestOpenStoreUnknownBackend(t *testing.T) {
	_, err := OpenStore(context.Background(), config.Config{StoreBackend: "sqlite"})
	assert.ErrorContains(t, err, "unsupported store backend")
}
