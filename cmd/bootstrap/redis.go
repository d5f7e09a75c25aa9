package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"viajes-backoffice/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
	),
)

// NewRedisClient returns nil when Redis is unreachable; the cache middleware
// treats a nil client as caching disabled. Availability listings degrade to
// direct reads instead of the service failing to boot.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unreachable, response caching disabled", "addr", cfg.Redis.Addr, "error", err.Error())
		_ = client.Close()
		return nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}
