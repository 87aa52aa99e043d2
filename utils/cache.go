package utils

import (
	"context"
	"fmt"
	"time"

	"frontdesk/config"

	"github.com/go-redis/redis/v8"
)

// NewRedisClient connects to the Redis DB that holds the front desk store.
func NewRedisClient(cfg config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisStoreDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis (store): %w", err)
	}
	return client, nil
}
