package database

import (
	"context"
	"database/sql"
	"fmt"

	"frontdesk/config"
	"frontdesk/database/kvstore"
	"frontdesk/utils"

	_ "github.com/lib/pq"
)

// OpenStore connects the key-value backend selected by STORE_BACKEND.
func OpenStore(ctx context.Context, cfg config.Config) (kvstore.Store, error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		return kvstore.NewMemoryStore(), nil

	case config.BackendRedis:
		client, err := utils.NewRedisClient(cfg)
		if err != nil {
			return nil, err
		}
		return kvstore.NewRedisStore(client, cfg.RedisKeyPrefix), nil

	case config.BackendMongo:
		client, err := ConnectMongo(cfg)
		if err != nil {
			return nil, err
		}
		return kvstore.NewMongoStore(client, cfg.MongoDatabase, cfg.MongoCollection), nil

	case config.BackendPostgres:
		db, err := sql.Open("postgres", cfg.PostgresURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open Postgres: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
		}
		store, err := kvstore.NewPostgresStore(ctx, db, cfg.PostgresTable)
		if err != nil {
			db.Close()
			return nil, err
		}
		return store, nil

	case config.BackendDynamo:
		client, err := NewDynamoClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		store := kvstore.NewDynamoStore(client, cfg.DynamoTable)
		if err := store.Ping(ctx); err != nil {
			return nil, fmt.Errorf("failed to reach DynamoDB table %s: %w", cfg.DynamoTable, err)
		}
		return store, nil
	}
	return nil, fmt.Errorf("unsupported store backend %q", cfg.StoreBackend)
}
