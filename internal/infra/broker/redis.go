// Package broker provides the Redis connection used to relay ledger changes.
package broker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/ledger/config"
)

// Client wraps the Redis connection.
type Client struct {
	rdb *redis.Client
	cfg *config.RedisConfig
}

// NewRedisClient connects to Redis using the configured URL.
// Password and DB override whatever the URL carries when set.
func NewRedisClient(cfg *config.RedisConfig) (*Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	slog.Info("Redis connection established",
		"addr", opts.Addr,
		"db", opts.DB,
		"channel", cfg.Channel,
	)

	return &Client{rdb: rdb, cfg: cfg}, nil
}

// Redis returns the underlying client.
func (c *Client) Redis() *redis.Client {
	return c.rdb
}

// HealthCheck verifies the connection is alive.
func (c *Client) HealthCheck() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return c.rdb.Ping(ctx).Err() == nil
}

// Close closes the connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}
