// Package cache wires the optional redis client. An empty REDIS_ADDR disables
// caching; services treat a nil client as cache-off and read through to the
// store.
package cache

import (
	"context"
	"time"

	"github.com/kasirhq/kasir/internal/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	TTLShort  = 5 * time.Minute
	TTLMedium = 30 * time.Minute
)

// NewClient builds the redis client, or nil when no address is configured.
func NewClient(cfg config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

func registerHooks(lc fx.Lifecycle, client *redis.Client, log *zap.Logger) {
	if client == nil {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			defer cancel()
			if err := client.Ping(pingCtx).Err(); err != nil {
				// Cache is best-effort; a dead redis must not block startup.
				log.Warn("redis unreachable, caching disabled", zap.Error(err))
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			_ = ctx
			return client.Close()
		},
	})
}

// Module wires the redis client and its lifecycle.
var Module = fx.Module("cache",
	fx.Provide(NewClient),
	fx.Invoke(registerHooks),
)
