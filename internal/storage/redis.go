package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/techvault/storefront/internal/config"
	"github.com/techvault/storefront/internal/models"
)

// Redis persists the cart as a single JSON blob under one key. No TTL is
// set; a cart never expires. Concurrent sessions writing the same key get
// last-writer-wins, there is no merge.
type Redis struct {
	client *redis.Client
	key    string
}

func NewRedisClient(cfg *config.Config) (*redis.Client, error) {

	redisURL := cfg.RedisConnect.GetDSN()
	slog.Info("Connecting to Redis", slog.String("addr", fmt.Sprintf("%s:%s", cfg.RedisConnect.Host, cfg.RedisConnect.Port)))

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		slog.Error("Failed to parse Redis URL", slog.Any("error", err))
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	opt.DB = cfg.RedisConnect.DB

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		slog.Error("Failed to connect to Redis", slog.Any("error", err))
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("✅ Successfully connected to Redis")
	return client, nil
}

func NewRedis(client *redis.Client, key string) *Redis {
	return &Redis{client: client, key: key}
}

func (r *Redis) Load(ctx context.Context) ([]models.LineItem, bool, error) {

	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {

		if err == redis.Nil {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("failed to get key %s from redis: %w", r.key, err)
	}

	var items []models.LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cart data for key %s: %w", r.key, err)
	}

	return items, true, nil
}

func (r *Redis) Save(ctx context.Context, items []models.LineItem) error {

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart for key %s: %w", r.key, err)
	}

	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set key %s in redis: %w", r.key, err)
	}

	return nil
}
