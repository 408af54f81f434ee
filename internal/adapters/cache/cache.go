package cache

import (
	"context"
	"errors"
	"messenger/internal/platform/cache/redis"
	"messenger/internal/platform/logger"
	"sync"

	"messenger/internal/config"
)

var ErrNotConnected = errors.New("cache connection is not initialized")

// Lifecycle owns the Redis client. Start never fails on an unreachable
// server; the readiness probe reports that state instead.
type Lifecycle struct {
	cfg    *config.CacheConfig
	logger logger.Logger
	client *redis.Client
	mu     sync.Mutex
}

func NewCacheLifecycle(cfg *config.CacheConfig, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		cfg:    cfg,
		logger: log,
	}
}

func (c *Lifecycle) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		c.logger.Warn("Redis client already exists, closing existing client")
		if err := c.client.Close(); err != nil {
			c.logger.Error("Failed to close existing redis client", logger.Error(err))
		}
		c.client = nil
	}

	c.logger.Info("Starting redis client", logger.String("addr", c.cfg.Redis.Addr))

	client := redis.New(&c.cfg.Redis)

	pingCtx, cancel := context.WithTimeout(ctx, c.cfg.Redis.GetDialTimeout())
	defer cancel()
	if err := client.CheckHealth(pingCtx); err != nil {
		c.logger.Warn("Redis is not reachable yet", logger.Error(err))
	} else {
		c.logger.Info("Successfully connected to redis")
	}

	c.client = client
	return nil
}

func (c *Lifecycle) Stop(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil {
		return nil
	}

	c.logger.Info("Closing redis client")
	err := c.client.Close()
	c.client = nil
	if err != nil {
		c.logger.Error("Error closing redis client", logger.Error(err))
		return err
	}
	return nil
}

func (c *Lifecycle) Client() *redis.Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.client
}

func (c *Lifecycle) CheckHealth(ctx context.Context) error {
	client := c.Client()
	if client == nil {
		return ErrNotConnected
	}
	return client.CheckHealth(ctx)
}
