package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"servija-api/config"
)

// NewClient returns nil without error when no redis host is configured.
func NewClient(ctx context.Context, logger *zap.Logger, cfg config.Config) (*redis.Client, error) {
	addr := cfg.RedisAddr()
	if addr == "" {
		logger.Info("redis not configured, category cache disabled")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("redis connected successfully", zap.String("addr", addr))

	return client, nil
}
