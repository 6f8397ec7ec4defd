package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/greentouch-site/internal/config"
	"github.com/spec-kit/greentouch-site/internal/events"
)

// Redis wraps the go-redis client.
type Redis struct {
	Client *redis.Client
}

// NewRedis connects to Redis using the provided configuration. An empty
// address leaves the client unset. An unreachable server is logged and
// retried lazily by the client.
func NewRedis(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) *Redis {
	if cfg.Addr == "" {
		logger.Info("REDIS_ADDR not provided; event bus disabled")
		return &Redis{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &Redis{Client: client}
}

// Enabled reports whether a client is configured.
func (r *Redis) Enabled() bool {
	return r != nil && r.Client != nil
}

// Close closes the client.
func (r *Redis) Close() {
	if r.Enabled() {
		_ = r.Client.Close()
	}
}

// Ping verifies Redis connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if !r.Enabled() {
		return ErrDisabled
	}
	return r.Client.Ping(ctx).Err()
}

// RedisEventBus publishes site events as JSON on a pub/sub channel.
type RedisEventBus struct {
	client  *redis.Client
	channel string
}

// NewRedisEventBus returns a bus publishing to channel.
func NewRedisEventBus(client *redis.Client, channel string) *RedisEventBus {
	return &RedisEventBus{client: client, channel: channel}
}

// Publish sends the event to all current subscribers.
func (b *RedisEventBus) Publish(ctx context.Context, event events.Event) error {
	if b == nil || b.client == nil {
		return ErrDisabled
	}
	raw, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event %s: %w", event.ID, err)
	}
	if err := b.client.Publish(ctx, b.channel, raw).Err(); err != nil {
		return fmt.Errorf("publish event %s: %w", event.ID, err)
	}
	return nil
}
