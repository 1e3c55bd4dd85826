package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/almasezhe/warauction/internal/config"
	"github.com/redis/go-redis/v9"
)

func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	redisURL := cfg.RedisConnect.GetDSN()
	slog.Info("Connecting to Redis",
		slog.String("url", fmt.Sprintf("redis://%s:<password>@%s:%s", cfg.RedisConnect.Username, cfg.RedisConnect.Host, cfg.RedisConnect.Port)),
	)

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
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("✅ Successfully connected to Redis")

	return client, nil
}
