package cache

import (
	"context"

	"rocket_help/pkg/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ConnectRedis opens a client and pings it once.
func ConnectRedis(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if _, err := client.Ping(ctx).Result(); err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err), zap.String("address", cfg.Address))
	}
	logger.Info("redis client configured", zap.String("address", cfg.Address), zap.Int("db", cfg.DB))
	return client
}
